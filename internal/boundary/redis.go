package boundary

import (
	"context"
	"errors"
	"time"

	"fra-patta/internal/logger"

	"github.com/redis/go-redis/v9"
)

// RedisCache：以 Redis 字符串缓存原始边界文档
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(c *redis.Client, ttlSec int) *RedisCache {
	return &RedisCache{Client: c, TTL: time.Duration(ttlSec) * time.Second}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.L().Warn("boundary_cache_get_error", "key", key, "err", err)
		}
		return nil, false
	}
	return b, true
}

func (c *RedisCache) Set(ctx context.Context, key string, doc []byte) {
	if err := c.Client.Set(ctx, key, doc, c.TTL).Err(); err != nil {
		logger.L().Warn("boundary_cache_set_error", "key", key, "err", err)
	}
}

// Delete：导入新文档后失效旧缓存
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
