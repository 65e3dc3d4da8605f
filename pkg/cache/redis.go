package cache

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
)

const maxTTLJitter = 30 * time.Second

// RedisCache общий для нескольких инстансов кэш. Ошибки Redis трактуются как промах.
type RedisCache struct {
	client  *redis.Client
	logger  *slog.Logger
	prefix  string
	baseTTL time.Duration
}

func NewRedisCache(logger *slog.Logger, client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client:  client,
		logger:  logger.With(slog.String("cache", "redis")),
		prefix:  prefix,
		baseTTL: ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		observe(backendRedis, false)
		return nil, false
	}
	if err != nil {
		lookups.WithLabelValues(backendRedis, "error").Inc()
		c.logger.WarnContext(ctx, "redis get failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	observe(backendRedis, true)
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	// jitter, чтобы ключи, записанные одновременно, не протухали одновременно
	ttl := c.baseTTL + time.Duration(rand.Int64N(int64(maxTTLJitter)))
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis set failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis delete failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *RedisCache) key(key string) string {
	return c.prefix + ":" + key
}
