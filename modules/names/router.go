package names

import (
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/conlang/handler"
	"github.com/dmitrymomot/conlang/pkg/clientip"
	"github.com/dmitrymomot/conlang/pkg/logger"
	"github.com/dmitrymomot/conlang/pkg/ratelimiter"
	"github.com/dmitrymomot/conlang/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the HTTP surface. Nil parts are not mounted.
type RouterOptions struct {
	Names  Mountable
	Health Mountable
	Logger *slog.Logger

	// RateLimit, when set, limits the names routes per client address.
	// Health checks are never limited.
	RateLimit *ratelimiter.Bucket

	// TrustedProxies are the networks whose forwarding headers are
	// believed. Empty means clients are identified by connection address.
	TrustedProxies []netip.Prefix
}

// Router builds the application router:
//
//	r := names.Router(names.RouterOptions{
//		Names:  names.NewModule(svc, log),
//		Health: names.NewHealth(2*time.Second, map[string]names.Check{"postgres": pg.Healthcheck(pool)}),
//		Logger: log,
//	})
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.NewResolver(opts.TrustedProxies...).Middleware)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	if opts.Health != nil {
		r.Mount("/health", opts.Health.Handle())
	}
	if opts.Names != nil {
		h := opts.Names.Handle()
		if opts.RateLimit != nil {
			h = ratelimiter.Middleware(opts.RateLimit, ratelimiter.ByClientIP,
				ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
					_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
				}),
				ratelimiter.WithFailureHandler(func(w http.ResponseWriter, r *http.Request, err error) {
					log.ErrorContext(r.Context(), "rate limiter failed", logger.Error(err), logger.Component("http"))
					_ = handler.JSONError(handler.ErrInternalServerError).Render(w, r)
				}),
			)(h)
		}
		r.Mount("/", h)
	}

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.LogAttrs(r.Context(), slog.LevelInfo, "request",
				logger.RequestID(requestid.FromContext(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("client_ip", clientip.FromContext(r.Context())),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
				logger.Component("http"),
			)
		})
	}
}
