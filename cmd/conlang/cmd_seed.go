package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/conlang/pkg/logger"
	"github.com/dmitrymomot/conlang/pkg/source"
)

func newSeedCmd(a *app) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "seed <dir>",
		Short: "Copy language documents from a local directory into the backend",
		Long: `Validates every JSON and YAML document under <dir> and writes it to the
configured backend under the same key. Other files are skipped.

Example:
  CONLANG_BACKEND=postgres conlang seed .`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			start := time.Now()

			n, err := source.Copy(ctx, source.NewDir(args[0]), a.backend, prefix)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "documents seeded",
				logger.Backend(a.cfg.Backend),
				logger.Count(n),
				logger.Duration(time.Since(start)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d documents into %s\n", n, a.cfg.Backend)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "only copy keys starting with prefix")
	return cmd
}
