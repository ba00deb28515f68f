package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	prefix   string
	envFiles []string
	noCache  bool
}

// Option configures a single Load call.
type Option func(*options)

// WithPrefix prepends prefix to every env tag of the struct, so the same
// config type can be loaded for several instances ("CACHE_REDIS_URL",
// "SESSION_REDIS_URL"). Each prefix is cached separately.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files before parsing. Unlike the
// implicit ./.env, a missing file is an error. Existing variables win.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, files...)
	}
}

// WithoutCache parses the environment again and leaves the cache untouched.
func WithoutCache() Option {
	return func(o *options) {
		o.noCache = true
	}
}

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*cacheEntry)

	defaultEnvLoaded sync.Once
)

// Load fills v from environment variables using its `env` struct tags.
//
// The first call loads ./.env if present. Every config type (and prefix) is
// parsed once per process; later calls copy the cached value into v.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	defaultEnvLoaded.Do(func() {
		// ./.env is optional
		_ = godotenv.Load()
	})
	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if o.noCache {
		return parse(v, o.prefix)
	}

	key := o.prefix + typeName[T]()
	cacheMu.Lock()
	entry, ok := cache[key]
	if !ok {
		entry = &cacheEntry{}
		cache[key] = entry
	}
	cacheMu.Unlock()

	entry.once.Do(func() {
		var parsed T
		if entry.err = parse(&parsed, o.prefix); entry.err == nil {
			entry.value = parsed
		}
	})
	if entry.err != nil {
		// failed parses are retried on the next call
		cacheMu.Lock()
		if cache[key] == entry {
			delete(cache, key)
		}
		cacheMu.Unlock()
		return entry.err
	}

	*v = entry.value.(T)
	return nil
}

// MustLoad is Load that panics on error. Use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	cacheMu.Lock()
	cache = make(map[string]*cacheEntry)
	cacheMu.Unlock()
}

func parse[T any](v *T, prefix string) error {
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
