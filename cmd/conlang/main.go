package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/conlang/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	f := &flags{}

	root := &cobra.Command{
		Use:   "conlang",
		Short: "Generate names from constructed-language morpheme tables",
		Long: `conlang composes names and their meanings from morpheme tables
(prefixes, roots, suffixes and modifiers) of constructed languages.

Tables are JSON or YAML documents stored as <dir>/<Language>/<Language>.<ext>
in a local directory, S3, Redis, PostgreSQL or MongoDB. A language may declare
subsets (dialects) that override parts of its table, and several languages
can be merged into a hybrid.

Configuration is read from CONLANG_* environment variables and .env files;
flags override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cfg, cmd.ErrOrStderr())
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&f.envFiles, "env-file", []string{config.DefaultEnvFile}, "dotenv files to load")
	pf.StringVar(&f.backend, "backend", "", "storage backend: fs, s3, redis, postgres or mongo")
	pf.StringVar(&f.dataDir, "data-dir", "", "root directory of the fs backend")
	pf.StringVar(&f.ext, "ext", "", "document extension: json or yaml")
	pf.StringSliceVar(&f.languages, "languages", nil, "languages to discover instead of listing the backend")
	pf.Uint64Var(&f.seed, "seed", 0, "random seed for reproducible names")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newGenerateCmd(a),
		newHybridCmd(a),
		newSearchCmd(a),
		newLanguagesCmd(a),
		newServeCmd(a),
		newSeedCmd(a),
		newIndexCmd(a),
	)
	return root
}
