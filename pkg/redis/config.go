package redis

import "time"

// Config describes how to reach Redis. An empty ConnectionURL means Redis is
// not configured; callers decide whether that is fatal.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                              // ConnectionURL has the form "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`   // RetryInterval is the pause between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"` // ConnectTimeout bounds the whole Connect call.
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
