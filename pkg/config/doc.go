// Package config loads typed configuration from environment variables.
//
// Config structs declare their variables with `env` tags understood by
// github.com/caarlos0/env/v11. Load fills such a struct, reading ./.env
// through github.com/joho/godotenv the first time it runs, and caches the
// parsed value per type so repeated loads are cheap and consistent:
//
//	var cfg kyc.Config
//	config.MustLoad(&cfg)
//
// WithPrefix namespaces a struct's variables, WithEnvFiles loads extra
// dotenv files and WithoutCache forces a fresh parse. Reset clears the cache
// between tests.
package config
