// Package httpserver runs the conlang HTTP API with graceful shutdown.
//
// Run binds the listener up front, so address errors surface before the
// process reports readiness, then serves until the context is canceled:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
package httpserver
