// Package cache provides a size-bounded LRU cache with optional expiry.
//
//	c := cache.NewLRU[string, []byte](128, time.Minute)
//	c.Put("Conlangs/Elvish/Elvish.json", data)
//	data, ok := c.Get("Conlangs/Elvish/Elvish.json")
//
// Entries older than the TTL are dropped on access. A zero TTL never
// expires entries. All methods are safe for concurrent use.
package cache
