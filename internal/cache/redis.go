package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const creatorAnalyticsPrefix = "analytics:creator:"

func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func CreatorAnalyticsKey(creatorID string) string {
	return creatorAnalyticsPrefix + creatorID
}

// RedisAnalyticsCache drops a creator's cached analytics once a new
// admission changes their numbers.
type RedisAnalyticsCache struct {
	client redis.Cmdable
}

func NewRedisAnalyticsCache(client redis.Cmdable) *RedisAnalyticsCache {
	return &RedisAnalyticsCache{client: client}
}

func (c *RedisAnalyticsCache) InvalidateCreator(ctx context.Context, creatorID string) error {
	if err := c.client.Del(ctx, CreatorAnalyticsKey(creatorID)).Err(); err != nil {
		return fmt.Errorf("invalidate creator analytics: %w", err)
	}
	return nil
}

// NopAnalyticsCache is used when Redis is not configured.
type NopAnalyticsCache struct{}

func (NopAnalyticsCache) InvalidateCreator(context.Context, string) error { return nil }
