// Package redis connects to Redis with retries and exposes a readiness check.
//
// It wraps github.com/redis/go-redis/v9. The service uses Redis as a shared
// cache for pincode lookups; when REDIS_URL is empty the cache is simply not
// wired.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    ...
//	    ready := redis.Healthcheck(client)
//	}
package redis
