package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/conlang/pkg/logger"
)

func newIndexCmd(a *app) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Mirror every language into the OpenSearch index",
		Long: `Discovers every language and subset, then bulk-indexes their morphemes
into CONLANG_OPENSEARCH_INDEX so that search can be served by OpenSearch.
Use --reset to drop the index first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			start := time.Now()

			idx, _, err := a.indexer(ctx)
			if err != nil {
				return err
			}
			if reset {
				if err := idx.Reset(ctx); err != nil {
					return err
				}
			}

			handles, err := a.service().Handles(ctx)
			if err != nil {
				return err
			}
			n, err := idx.Sync(ctx, handles)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "search index synced",
				logger.Component("searchsync"),
				logger.Count(n),
				logger.Duration(time.Since(start)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d morphemes from %d tables into %s\n", n, len(handles), idx.Index())
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "delete the index before syncing")
	return cmd
}
