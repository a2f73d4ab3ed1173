package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DashboardCache stores rendered dashboard payloads in Redis under a short
// TTL so repeated student refreshes do not re-read three tables.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache constructs the cache. TTL values of zero or below
// disable expiry on the Redis side, so callers should pass a positive TTL.
func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key, or ("", false) on miss or error.
func (c *DashboardCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores the payload under key for the configured TTL.
func (c *DashboardCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Invalidate drops the cached payload for key.
func (c *DashboardCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
