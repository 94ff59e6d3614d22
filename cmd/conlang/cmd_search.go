package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/conlang/svc/conlang"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		language string
		subset   string
		useIndex bool
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search morphemes and meanings in every language",
		Long: `Finds morphemes whose text or meaning contains the term, ignoring case,
in every language and subset. With --language only that table is searched
and each match is listed with its category.

Examples:
  conlang search shadow
  conlang search mor --language elvish --subset dark-elven`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			term := args[0]

			if language != "" {
				matches, err := a.service().Find(ctx, conlang.Request{Language: language, Subset: subset}, term)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), matches)
				}
				for _, m := range matches {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.Category, m.Key, m.Gloss)
				}
				return nil
			}

			var opts []conlang.Option
			if useIndex || a.cfg.SearchIndex {
				idx, _, err := a.indexer(ctx)
				if err != nil {
					return err
				}
				opts = append(opts, conlang.WithSearchIndex(idx))
			}
			results, err := a.service(opts...).Search(ctx, term)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), results, asJSON)
		},
	}
	cmd.Flags().StringVarP(&language, "language", "l", "", "search a single language")
	cmd.Flags().StringVarP(&subset, "subset", "s", "", "subset of --language")
	cmd.Flags().BoolVar(&useIndex, "index", false, "query the OpenSearch index")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newLanguagesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages and their subsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handles, err := a.service().Handles(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]string, 0, len(handles))
			for _, h := range handles {
				out = append(out, h.Name)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, name := range out {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
