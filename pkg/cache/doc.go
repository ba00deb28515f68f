// Package cache provides a generic in-process LRU cache with optional
// per-entry expiry.
//
//	c := cache.NewLRU[string, []string](1024,
//	    cache.WithTTL[string, []string](24*time.Hour),
//	)
//	c.Put("600004", []string{"Mylapore", "Mandaveli"})
//	cities, ok := c.Get("600004")
//
// Get, Put and Remove are O(1). All methods are safe for concurrent use.
// Expired entries are dropped lazily when read or when pushed out by
// capacity. The eviction callback runs with the cache lock held and must
// not call back into the cache.
package cache
