package rediscart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"

	"github.com/polkiloo/pricecompare/internal/config"
	"github.com/polkiloo/pricecompare/internal/domain/repository"
)

// Module wires the Redis client and cart repository.
var Module = fx.Options(
	fx.Provide(newClient, newStore),
	fx.Provide(
		func(s *Store) repository.CartRepository { return s },
		fx.Annotate(healthCheck, fx.ResultTags(repository.HealthGroup)),
	),
	fx.Invoke(registerLifecycle),
)

func newClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func newStore(client *redis.Client, cfg *config.Config, logger *slog.Logger) *Store {
	return New(client, cfg.CartTTL, logger)
}

func healthCheck(s *Store) repository.HealthCheck {
	return repository.HealthCheck{Name: "redis", Check: s.HealthCheck}
}

func registerLifecycle(lc fx.Lifecycle, client *redis.Client, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping redis: %w", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("closing redis client")
			return client.Close()
		},
	})
}
