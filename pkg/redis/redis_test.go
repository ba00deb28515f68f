package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldsaver/memberkit/pkg/redis"
)

func TestConnect_ConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	cfg := redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	}

	_, err := redis.Connect(context.Background(), cfg)
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestConnect_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := redis.Config{
		ConnectionURL: "redis://127.0.0.1:1/0",
		RetryAttempts: 5,
		RetryInterval: time.Hour,
	}

	start := time.Now()
	_, err := redis.Connect(ctx, cfg)
	require.ErrorIs(t, err, redis.ErrRedisNotReady)
	assert.Less(t, time.Since(start), time.Minute, "does not sleep through a cancelled context")
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.Enabled())
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", f.err)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, redis.Healthcheck(fakePinger{})(context.Background()))

	down := errors.New("connection refused")
	err := redis.Healthcheck(fakePinger{err: down})(context.Background())
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
	assert.ErrorIs(t, err, down)
}
