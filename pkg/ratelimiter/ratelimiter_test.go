package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conlang/pkg/clientip"
	"github.com/dmitrymomot/conlang/pkg/ratelimiter"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *clock) {
	t.Helper()
	clk := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clk.Now), ratelimiter.WithSweep(0, 0))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, clk
}

func TestNewBucket(t *testing.T) {
	t.Parallel()

	for name, cfg := range map[string]ratelimiter.Config{
		"zero capacity": {Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		"zero rate":     {Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		"zero interval": {Capacity: 1, RefillRate: 1},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithSweep(0, 0)), cfg)
			require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}

	assert.False(t, ratelimiter.Config{}.Enabled())
	assert.True(t, ratelimiter.Config{Capacity: 5}.Enabled())
}

func TestBucket(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second}

	t.Run("consumes and denies", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, cfg)

		for want := 2; want >= 0; want-- {
			res, err := b.Allow(ctx, "client")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := b.Allow(ctx, "client")
		require.NoError(t, err)
		assert.False(t, res.Allowed())

		other, err := b.Allow(ctx, "other")
		require.NoError(t, err)
		assert.True(t, other.Allowed())
	})

	t.Run("refills over time", func(t *testing.T) {
		t.Parallel()
		b, clk := newBucket(t, cfg)

		_, err := b.AllowN(ctx, "client", 3)
		require.NoError(t, err)
		res, _ := b.Allow(ctx, "client")
		require.False(t, res.Allowed())
		assert.Equal(t, time.Second, res.RetryAfter(clk.Now()))

		clk.Advance(2 * time.Second)
		res, err = b.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 1, res.Remaining)

		clk.Advance(time.Hour)
		res, _ = b.Allow(ctx, "client")
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("invalid count", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, cfg)
		_, err := b.AllowN(ctx, "client", 0)
		require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, cfg)
		_, _ = b.AllowN(ctx, "client", 3)
		require.NoError(t, b.Reset(ctx, "client"))
		res, _ := b.Allow(ctx, "client")
		assert.Equal(t, 2, res.Remaining)
	})
}

func TestMemoryStoreSweep(t *testing.T) {
	t.Parallel()
	clk := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clk.Now), ratelimiter.WithSweep(0, time.Minute))
	defer store.Close()

	cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}
	_, _, err := store.Take(context.Background(), "a", 1, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	clk.Advance(2 * time.Minute)
	store.Sweep()
	assert.Equal(t, 0, store.Len())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithSweep(0, 0))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	require.NoError(t, err)

	h := clientip.Middleware(ratelimiter.Middleware(b, ratelimiter.ByClientIP,
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, _ *http.Request, _ ratelimiter.Result) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("slow down"))
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	do := func(remote string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/names", nil)
		r.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	rec := do("192.0.2.1:1000")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do("192.0.2.1:1001")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "slow down", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = do("192.0.2.2:1000")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
