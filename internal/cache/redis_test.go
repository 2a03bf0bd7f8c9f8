package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		url = "localhost:6379"
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client, err := Connect(ctx, url)
	if err != nil {
		t.Skipf("redis not reachable at %s: %v", url, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCreatorAnalyticsKey(t *testing.T) {
	assert.Equal(t, "analytics:creator:c1", CreatorAnalyticsKey("c1"))
}

func TestRedisAnalyticsCache_InvalidateCreator(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	key := CreatorAnalyticsKey("test-creator-invalidate")

	require.NoError(t, client.Set(ctx, key, `{"tickets_sold":3}`, time.Minute).Err())

	c := NewRedisAnalyticsCache(client)
	require.NoError(t, c.InvalidateCreator(ctx, "test-creator-invalidate"))

	n, err := client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, c.InvalidateCreator(ctx, "test-creator-invalidate"))
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), "redis://:bad@host:notaport/x")

	assert.Error(t, err)
}

func TestNopAnalyticsCache(t *testing.T) {
	assert.NoError(t, NopAnalyticsCache{}.InvalidateCreator(context.Background(), "c1"))
}
