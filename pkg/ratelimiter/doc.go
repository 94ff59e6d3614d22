// Package ratelimiter implements token bucket rate limiting for the HTTP
// API.
//
// A Bucket holds up to Capacity tokens per key and adds RefillRate tokens
// every RefillInterval. Each request consumes one token; a request finding
// the bucket empty is denied until the next refill.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	r.Use(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP))
//
// Responses carry X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset headers, plus Retry-After when denied.
package ratelimiter
