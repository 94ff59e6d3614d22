package source

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrymomot/conlang/pkg/cache"
)

// Cached keeps recently read documents in memory in front of a remote
// backend. Missing keys and failures are never cached. Writes go through
// to the backend and replace the cached copy.
type Cached struct {
	backend Backend
	docs    *cache.LRU[string, []byte]
}

// NewCached wraps backend with an LRU holding up to size documents for ttl.
// A zero ttl keeps documents until they are evicted.
func NewCached(backend Backend, size int, ttl time.Duration) *Cached {
	return &Cached{
		backend: backend,
		docs:    cache.NewLRU[string, []byte](size, ttl),
	}
}

func (c *Cached) Read(ctx context.Context, key string) ([]byte, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	if data, ok := c.docs.Get(key); ok {
		return slices.Clone(data), nil
	}
	data, err := c.backend.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	c.docs.Put(key, slices.Clone(data))
	return data, nil
}

// Keys is not cached so newly seeded languages show up immediately.
func (c *Cached) Keys(ctx context.Context, prefix string) ([]string, error) {
	return c.backend.Keys(ctx, prefix)
}

func (c *Cached) Write(ctx context.Context, key string, data []byte) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if err := c.backend.Write(ctx, key, data); err != nil {
		c.docs.Remove(key)
		return err
	}
	c.docs.Put(key, slices.Clone(data))
	return nil
}

// Purge drops every cached document.
func (c *Cached) Purge() {
	c.docs.Clear()
}
