package names

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/conlang/handler"
)

// Check is a readiness probe such as pg.Healthcheck or redis.Healthcheck.
type Check func(ctx context.Context) error

// Health serves liveness and readiness probes.
type Health struct {
	checks  map[string]Check
	timeout time.Duration
}

// NewHealth returns probes running checks with a per-request timeout.
func NewHealth(timeout time.Duration, checks map[string]Check) *Health {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Health{checks: checks, timeout: timeout}
}

func (h *Health) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/live", handler.Wrap(h.live))
	r.Get("/ready", handler.Wrap(h.ready))
	return r
}

func (h *Health) live(handler.Context, struct{}) handler.Response {
	return handler.JSON(map[string]string{"status": "ok"})
}

func (h *Health) ready(ctx handler.Context, _ struct{}) handler.Response {
	cctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		if err := h.checks[name](cctx); err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		return handler.JSONError(handler.ErrServiceUnavailable, handler.WithJSONMeta(map[string]any{"checks": status}))
	}
	return handler.JSON(map[string]any{"status": "ok", "checks": status})
}
