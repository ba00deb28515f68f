package pincode

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goldsaver/memberkit/pkg/logger"
)

const defaultRedisPrefix = "memberkit:pincode:"

// RedisClient is the subset of a go-redis client used by RedisCache.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisCache shares lookups between service instances through Redis.
// Redis errors are logged and the lookup falls through to the next Directory.
type RedisCache struct {
	next   Directory
	client RedisClient
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

// WithKeyPrefix sets the prefix prepended to every key.
func WithKeyPrefix(prefix string) RedisCacheOption {
	return func(r *RedisCache) {
		r.prefix = prefix
	}
}

// WithRedisLogger sets the logger used to report Redis errors.
func WithRedisLogger(l *slog.Logger) RedisCacheOption {
	return func(r *RedisCache) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRedisCache wraps next with a Redis cache keeping entries for ttl.
func NewRedisCache(next Directory, client RedisClient, ttl time.Duration, opts ...RedisCacheOption) *RedisCache {
	r := &RedisCache{
		next:   next,
		client: client,
		ttl:    ttl,
		prefix: defaultRedisPrefix,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("pincode.redis"))
	return r
}

// Cities implements Directory. A stored empty list marks an unknown pincode.
func (r *RedisCache) Cities(ctx context.Context, pin string) ([]string, error) {
	pin, err := Normalize(pin)
	if err != nil {
		return nil, err
	}
	key := r.prefix + pin

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cities []string
		if jerr := json.Unmarshal(raw, &cities); jerr == nil {
			if len(cities) == 0 {
				return nil, ErrNotFound
			}
			return cities, nil
		}
		r.logger.WarnContext(ctx, "discarding malformed cache entry", logger.Pincode(pin))
	case !errors.Is(err, redis.Nil):
		r.logger.WarnContext(ctx, "redis get failed", logger.Pincode(pin), logger.Error(err))
	}

	cities, err := r.next.Cities(ctx, pin)
	switch {
	case err == nil:
		r.store(ctx, key, cities)
	case errors.Is(err, ErrNotFound):
		r.store(ctx, key, []string{})
	}
	return cities, err
}

func (r *RedisCache) store(ctx context.Context, key string, cities []string) {
	data, err := json.Marshal(cities)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "redis set failed", logger.Error(err))
	}
}
