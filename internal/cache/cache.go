// Package cache provides a small Redis-backed read cache for hot settings
// lookups. Every operation degrades to a miss on backend trouble so callers
// can always fall through to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is a typed-through-JSON key/value cache.
type Store interface {
	// Get unmarshals the cached value into dest. The bool reports a hit.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// StoreSettingsKey is the cache key for a store's settings profile.
func StoreSettingsKey(storeID snowflake.ID) string {
	return fmt.Sprintf("invow:store:%d:settings", storeID)
}

// TaxPreferenceKey is the cache key for a store's tax preference.
func TaxPreferenceKey(storeID snowflake.ID) string {
	return fmt.Sprintf("invow:store:%d:tax", storeID)
}

// SubscriptionKey is the cache key for a store's active subscription tier.
func SubscriptionKey(storeID snowflake.ID) string {
	return fmt.Sprintf("invow:store:%d:tier", storeID)
}

type redisStore struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisStore wraps a Redis client. Backend errors are logged and reported
// as misses; only marshaling bugs surface to callers.
func NewRedisStore(client *redis.Client, log *zap.Logger) Store {
	return &redisStore{client: client, log: log.Named("cache")}
}

func (s *redisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		s.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Stale shape from an older build; drop it and miss.
		s.log.Warn("cache entry unreadable", zap.String("key", key), zap.Error(err))
		_ = s.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (s *redisStore) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn("cache del failed", zap.Strings("keys", keys), zap.Error(err))
	}
	return nil
}

type noopStore struct{}

// NewNoopStore returns a cache that always misses, for deployments without
// Redis and for tests.
func NewNoopStore() Store { return noopStore{} }

func (noopStore) Get(context.Context, string, any) (bool, error) { return false, nil }

func (noopStore) Set(context.Context, string, any, time.Duration) error { return nil }

func (noopStore) Del(context.Context, ...string) error { return nil }
