// Package ratelimiter throttles requests with a token bucket per key.
//
// The enrollment API keys buckets by client address so that a misbehaving
// device cannot flood the keystroke validation endpoint:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       20,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	r.With(ratelimiter.Middleware(bucket, keyByIP)).Post("/fields/{field}", h)
//
// Store failures never block a request.
package ratelimiter
