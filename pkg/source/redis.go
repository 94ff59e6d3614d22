package source

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisNamespace prefixes every document key stored in Redis.
const DefaultRedisNamespace = "conlang:"

// RedisClient defines the commands used by Redis. *redis.Client and
// *redis.ClusterClient satisfy it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// Redis stores documents as string values.
type Redis struct {
	client    RedisClient
	namespace string
}

// RedisOption configures the Redis backend.
type RedisOption func(*Redis)

// WithNamespace replaces DefaultRedisNamespace.
func WithNamespace(ns string) RedisOption {
	return func(r *Redis) {
		r.namespace = ns
	}
}

// NewRedis returns a Redis backend using client.
func NewRedis(client RedisClient, opts ...RedisOption) *Redis {
	r := &Redis{client: client, namespace: DefaultRedisNamespace}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) Read(ctx context.Context, key string) ([]byte, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	data, err := r.client.Get(ctx, r.namespace+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(key, nil)
		}
		if ctxErr := contextError(err, "get"); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Keys walks the namespace with SCAN, so it never blocks the server.
func (r *Redis) Keys(ctx context.Context, prefix string) ([]string, error) {
	match := r.namespace + escapeGlob(prefix) + "*"

	seen := make(map[string]struct{})
	var cursor uint64
	for {
		batch, next, err := r.client.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			if ctxErr := contextError(err, "scan"); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("redis scan: %w", err)
		}
		for _, k := range batch {
			seen[strings.TrimPrefix(k, r.namespace)] = struct{}{}
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (r *Redis) Write(ctx context.Context, key string, data []byte) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.namespace+key, data, 0).Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// escapeGlob escapes the characters SCAN MATCH treats as patterns.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
