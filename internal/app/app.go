package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"surveyinsights/internal/cache"
	"surveyinsights/internal/config"
	"surveyinsights/internal/insight"
	"surveyinsights/internal/service"
)

const pingTimeout = 2 * time.Second

// App holds the wired components
type App struct {
	Engine    *insight.Engine
	Synthesis *service.SynthesisService
	Redis     *redis.Client // nil when REDIS_URI is unset or unreachable
	Logger    *zap.Logger
}

// Build wires the engine, the optional Redis cache and the synthesis service
// from configuration. An unreachable Redis is logged and skipped.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{Engine: engine, Logger: logger}

	var insightCache cache.InsightCache
	if cfg.RedisEnabled() {
		rdb, err := connectRedis(ctx, cfg, logger)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without shared cache",
				zap.String("addr", cfg.RedisAddress()),
				zap.Error(err),
			)
		} else {
			a.Redis = rdb
			insightCache = cache.NewInsightCache(rdb, cfg.RedisTTL)
		}
	}

	a.Synthesis, err = service.NewSynthesisService(engine, insightCache, cfg.MemoSize, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create synthesis service: %w", err)
	}
	return a, nil
}

// NewEngine builds an engine from the configured lexicon file and matcher
func NewEngine(cfg *config.Config) (*insight.Engine, error) {
	matcher, err := insight.MatcherByName(cfg.Matcher)
	if err != nil {
		return nil, err
	}
	opts := []insight.Option{insight.WithMatcher(matcher)}
	if cfg.LexiconFile != "" {
		tables, err := insight.LoadTables(cfg.LexiconFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, insight.WithTables(tables))
	}
	return insight.NewEngine(opts...), nil
}

// Close releases the Redis connection
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("close redis", zap.Error(err))
		}
	}
}

func connectRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddress(),
	})

	opts := append(cfg.RedisConnect.ToRetryOptions(),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("retrying redis ping", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	err := retry.Do(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return rdb.Ping(pingCtx).Err()
	}, opts...)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("Connected to Redis", zap.String("addr", cfg.RedisAddress()))
	return rdb, nil
}
