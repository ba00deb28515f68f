package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the environment-driven logger setup.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"memberkit"`
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
}

// NewFromConfig builds a logger from the environment preset of cfg.Env,
// then applies the optional level and format overrides and finally opts.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	base := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("logger: invalid level %q: %w", cfg.Level, err)
		}
		base = append(base, WithLevel(level))
	}

	if cfg.Format != "" {
		switch f := Format(strings.ToLower(cfg.Format)); f {
		case FormatJSON, FormatText:
			base = append(base, WithFormat(f))
		default:
			return nil, fmt.Errorf("logger: invalid format %q", cfg.Format)
		}
	}

	return New(append(base, opts...)...), nil
}
