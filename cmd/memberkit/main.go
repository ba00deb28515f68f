// Command memberkit serves the enrollment validation API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/goldsaver/memberkit/pkg/api"
	"github.com/goldsaver/memberkit/pkg/clientip"
	"github.com/goldsaver/memberkit/pkg/config"
	"github.com/goldsaver/memberkit/pkg/enrollment"
	"github.com/goldsaver/memberkit/pkg/httpserver"
	"github.com/goldsaver/memberkit/pkg/kyc"
	"github.com/goldsaver/memberkit/pkg/logger"
	"github.com/goldsaver/memberkit/pkg/pincode"
	"github.com/goldsaver/memberkit/pkg/ratelimiter"
	"github.com/goldsaver/memberkit/pkg/redis"
	"github.com/goldsaver/memberkit/pkg/requestid"
)

type appConfig struct {
	Logger     logger.Config
	HTTP       httpserver.Config
	API        api.Config
	KYC        kyc.Config
	Enrollment enrollment.Config
	Pincode    pincode.Config
	Redis      redis.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "memberkit:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Logger, logger.WithContextExtractors(requestid.Extractor, clientip.Extractor))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	var rdb *goredis.Client
	if cfg.Redis.Enabled() {
		if rdb, err = redis.Connect(ctx, cfg.Redis); err != nil {
			return err
		}
		defer rdb.Close()
		log.InfoContext(ctx, "redis connected")
	}

	dir, err := buildDirectory(cfg.Pincode, rdb, log)
	if err != nil {
		return err
	}

	kycValidator, err := kyc.NewFromConfig(cfg.KYC)
	if err != nil {
		return err
	}

	svc, err := enrollment.NewServiceFromConfig(cfg.Enrollment, kycValidator,
		enrollment.WithDirectory(dir),
		enrollment.WithLogger(log),
	)
	if err != nil {
		return err
	}

	routerOpts := []api.Option{
		api.WithLogger(log),
		api.WithReadyTimeout(cfg.HTTP.ReadyCheckTimeout),
		api.WithMaxBodyBytes(cfg.API.MaxBodyBytes),
		api.WithTrustedIPHeaders(cfg.API.TrustedIPHeaders...),
	}
	if cfg.API.FieldRateBurst > 0 && cfg.API.FieldRatePerSecond > 0 {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
			Capacity:       cfg.API.FieldRateBurst,
			RefillRate:     cfg.API.FieldRatePerSecond,
			RefillInterval: time.Second,
		})
		if err != nil {
			return err
		}
		routerOpts = append(routerOpts, api.WithFieldRateLimit(bucket))
	}
	if rdb != nil {
		routerOpts = append(routerOpts, api.WithReadinessCheck("redis", redis.Healthcheck(rdb)))
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, api.NewRouter(svc, routerOpts...))
}

// buildDirectory layers the pincode lookups: the offline file first, then
// the remote API, behind the shared Redis cache and the in-process LRU.
func buildDirectory(cfg pincode.Config, rdb *goredis.Client, log *slog.Logger) (pincode.Directory, error) {
	var dir pincode.Directory = pincode.NewClientFromConfig(cfg)

	if cfg.StaticFile != "" {
		static, err := pincode.LoadStatic(cfg.StaticFile)
		if err != nil {
			return nil, err
		}
		log.Info("offline pincode directory loaded", slog.Int("pincodes", static.Len()))
		dir = pincode.Chain(static, dir)
	}

	if rdb != nil {
		dir = pincode.NewRedisCache(dir, rdb, cfg.RedisTTL, pincode.WithRedisLogger(log))
	}

	if cfg.CacheSize > 0 {
		dir = pincode.NewCached(dir, cfg.CacheSize, cfg.CacheTTL)
	}
	return dir, nil
}
