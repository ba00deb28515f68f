package pincode

import "time"

// Config configures the pincode directory stack built by the service.
type Config struct {
	BaseURL          string        `env:"PINCODE_API_URL" envDefault:"https://api.zippopotam.us/in"`
	Timeout          time.Duration `env:"PINCODE_API_TIMEOUT" envDefault:"5s"`
	RetryAttempts    int           `env:"PINCODE_RETRY_ATTEMPTS" envDefault:"2"`
	BreakerThreshold int           `env:"PINCODE_BREAKER_THRESHOLD" envDefault:"5"`
	BreakerCooldown  time.Duration `env:"PINCODE_BREAKER_COOLDOWN" envDefault:"30s"`
	CacheSize        int           `env:"PINCODE_CACHE_SIZE" envDefault:"4096"`
	CacheTTL         time.Duration `env:"PINCODE_CACHE_TTL" envDefault:"24h"`
	RedisTTL         time.Duration `env:"PINCODE_REDIS_TTL" envDefault:"168h"`
	StaticFile       string        `env:"PINCODE_STATIC_FILE"`
}
