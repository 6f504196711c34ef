package lib

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss        = errors.New("cache: key not found")
	ErrCacheUnavailable = errors.New("cache: not configured")
)

// Cache is a string key/value store with per-key expiry.
type Cache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(c *redis.Client) *RedisCache {
	return &RedisCache{client: c}
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.client == nil {
		return ErrCacheUnavailable
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", ErrCacheUnavailable
	}
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return ErrCacheUnavailable
	}
	return r.client.Del(ctx, key).Err()
}

var cache Cache

// GetCache returns the shared cache, backed by redis unless replaced with NewCache.
// Without a usable redis client the returned cache reports ErrCacheUnavailable and
// the next call tries to connect again.
func GetCache() Cache {
	if cache != nil {
		return cache
	}
	rdb := GetRedisClient()
	if rdb == nil {
		return NewRedisCache(nil)
	}
	cache = NewRedisCache(rdb)
	return cache
}

func NewCache(c Cache) Cache {
	cache = c
	return cache
}
