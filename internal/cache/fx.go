package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Candratama/invow-sub000/internal/config"
)

var Module = fx.Module("cache",
	fx.Provide(NewClient),
	fx.Provide(New),
)

type ClientParams struct {
	fx.In

	LC  fx.Lifecycle
	Cfg config.Config
	Log *zap.Logger
}

// NewClient builds the shared Redis client. A nil client is returned when
// caching is disabled; consumers degrade to their no-op behavior.
func NewClient(p ClientParams) *redis.Client {
	if !p.Cfg.CacheEnabled {
		p.Log.Info("cache disabled, skipping redis connection")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     p.Cfg.RedisAddr,
		Password: p.Cfg.RedisPassword,
		DB:       p.Cfg.RedisDB,
	})

	p.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis ping: %w", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}

// New builds the settings cache on top of the shared client.
func New(client *redis.Client, log *zap.Logger) Store {
	if client == nil {
		return NewNoopStore()
	}
	return NewRedisStore(client, log)
}
