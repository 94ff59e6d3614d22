package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lang "github.com/dmitrymomot/conlang/pkg/conlang"
	"github.com/dmitrymomot/conlang/pkg/logger"
	"github.com/dmitrymomot/conlang/svc/conlang"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		subset string
		count  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "generate <language>",
		Short: "Generate names from one language",
		Long: `Generates names from the table of a language, optionally layered with
one of its subsets.

Examples:
  conlang generate elvish
  conlang generate elvish --subset dark-elven -n 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := conlang.Request{Language: args[0], Subset: subset}
			list, err := a.service().GenerateN(cmd.Context(), req, count)
			if err != nil {
				return err
			}
			a.log.DebugContext(cmd.Context(), "names generated",
				logger.Language(req.Language), logger.Subset(req.Subset), logger.Count(len(list)))
			return writeNames(cmd.OutOrStdout(), list, asJSON)
		},
	}
	cmd.Flags().StringVarP(&subset, "subset", "s", "", "subset (dialect) of the language")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of names")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newHybridCmd(a *app) *cobra.Command {
	var (
		count  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "hybrid <language[:subset]>...",
		Short: "Generate names from several languages merged in order",
		Long: `Merges the tables of the given languages in order, later ones winning
on shared morphemes, and generates names from the result.

Example:
  conlang hybrid elvish:dark-elven human -n 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(args)
			if err != nil {
				return err
			}
			list, err := a.service().GenerateN(cmd.Context(), conlang.Request{Hybrid: pairs}, count)
			if err != nil {
				return err
			}
			return writeNames(cmd.OutOrStdout(), list, asJSON)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of names")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// parsePairs reads "language" and "language:subset" arguments.
func parsePairs(args []string) ([]lang.Pair, error) {
	pairs := make([]lang.Pair, 0, len(args))
	for _, arg := range args {
		language, subset, _ := strings.Cut(arg, ":")
		if strings.TrimSpace(language) == "" {
			return nil, fmt.Errorf("invalid language %q", arg)
		}
		pairs = append(pairs, lang.Pair{Language: language, Subset: subset})
	}
	return pairs, nil
}
