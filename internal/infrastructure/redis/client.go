package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/tweetfeed/config"
)

// NewClient creates a go-redis client
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewClientFx creates a client that is pinged on start and closed on stop
func NewClientFx(lc fx.Lifecycle, cfg *config.RedisConfig, logger zerolog.Logger) *redis.Client {
	client := NewClient(cfg)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
			}
			logger.Info().Str("addr", cfg.Addr).Msg("Redis connected successfully")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Closing redis connection")
			return client.Close()
		},
	})

	return client
}
