package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/idktogo/idk-to-go/internal/config"
)

// Score cache entries expire on their own; writers also invalidate them
// explicitly so readers never see counters older than the last transition.
const ScoreTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

// KeyForScores is the per-restaurant counter snapshot key.
func (c *RedisCache) KeyForScores(restaurantID uint64) string {
	return fmt.Sprintf("restaurant:scores:%d", restaurantID)
}

// KeyTrendingWeekly holds the weekly top list.
func (c *RedisCache) KeyTrendingWeekly() string { return "trending:weekly" }

// KeyTrendingAllTime holds the all-time top list.
func (c *RedisCache) KeyTrendingAllTime() string { return "trending:alltime" }

// GetJSON reads a key and unmarshals it into dest. Returns false on a miss.
func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// a corrupt entry is treated as a miss and dropped
		_ = c.Client.Del(ctx, key).Err()
		return false, nil
	}
	// refresh TTL on access, the entry is hot
	_ = c.Client.Expire(ctx, key, ScoreTTL).Err()
	return true, nil
}

// SetJSON marshals value and stores it under key with the given TTL.
func (c *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, ttl).Err()
}

// DelPattern removes every key matching the glob pattern via SCAN, so bulk
// invalidation (the weekly reset) never blocks Redis the way KEYS would.
func (c *RedisCache) DelPattern(ctx context.Context, pattern string) error {
	iter := c.Client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
