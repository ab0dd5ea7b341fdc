// Package cache holds the derived raw-flag projection in Redis. Entries are
// disposable: they are invalidated synchronously on every write and expire on
// a TTL as a safety net, so the cache is never a source of truth.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlagCache is the key-value store with expiry consumed by the flag service.
type FlagCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RawFlagKey namespaces cache entries per tenant name and environment.
func RawFlagKey(tenantName, env string) string {
	return fmt.Sprintf("features:raw:%s:%s", tenantName, env)
}

type RedisFlagCache struct {
	client *redis.Client
}

func NewRedisFlagCache(client *redis.Client) *RedisFlagCache {
	return &RedisFlagCache{client: client}
}

func (c *RedisFlagCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (c *RedisFlagCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisFlagCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
