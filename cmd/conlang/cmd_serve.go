package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/conlang/modules/names"
	"github.com/dmitrymomot/conlang/pkg/clientip"
	"github.com/dmitrymomot/conlang/pkg/httpserver"
	"github.com/dmitrymomot/conlang/pkg/logger"
	"github.com/dmitrymomot/conlang/pkg/ratelimiter"
	"github.com/dmitrymomot/conlang/svc/conlang"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Starts the HTTP API and blocks until interrupted.

Endpoints:
  GET  /languages
  GET  /names?language=&subset=&count=
  GET  /languages/{language}/names?subset=&count=
  POST /names/hybrid
  GET  /search?q=[&language=&subset=]
  GET  /health/live
  GET  /health/ready`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var opts []conlang.Option
			if a.cfg.SearchIndex {
				idx, check, err := a.indexer(ctx)
				if err != nil {
					return err
				}
				opts = append(opts, conlang.WithSearchIndex(idx))
				a.checks["opensearch"] = check
			}

			proxies, err := clientip.ParsePrefixes(a.cfg.TrustedProxies)
			if err != nil {
				return err
			}
			routerOpts := names.RouterOptions{
				Names:          names.NewModule(a.service(opts...), a.log),
				Health:         names.NewHealth(a.cfg.HTTP.ReadTimeout, a.checks),
				Logger:         a.log,
				TrustedProxies: proxies,
			}
			if a.cfg.RateLimit.Enabled() {
				store := ratelimiter.NewMemoryStore()
				defer store.Close()
				bucket, err := ratelimiter.NewBucket(store, a.cfg.RateLimit)
				if err != nil {
					return err
				}
				routerOpts.RateLimit = bucket
			}
			router := names.Router(routerOpts)

			serverOpts := []httpserver.Option{httpserver.WithLogger(a.log)}
			if addr != "" {
				serverOpts = append(serverOpts, httpserver.WithAddr(addr))
			}
			a.log.InfoContext(ctx, "serving names API", logger.Backend(a.cfg.Backend))
			return httpserver.NewFromConfig(a.cfg.HTTP, serverOpts...).Run(ctx, router)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides CONLANG_HTTP_ADDR")
	return cmd
}
