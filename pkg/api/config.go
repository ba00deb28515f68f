package api

// Config holds the HTTP API limits read from the environment.
type Config struct {
	MaxBodyBytes       int64    `env:"API_MAX_BODY_BYTES" envDefault:"65536"`
	TrustedIPHeaders   []string `env:"API_TRUSTED_IP_HEADERS" envSeparator:","`
	FieldRateBurst     int      `env:"API_FIELD_RATE_BURST" envDefault:"30"`
	FieldRatePerSecond int      `env:"API_FIELD_RATE_PER_SECOND" envDefault:"10"`
}
