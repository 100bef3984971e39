package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testStreamName() string {
	return "test:index:sync:" + uuid.NewString()
}

func TestStreamRepository_CreateConsumerGroupTwice(t *testing.T) {
	client := getTestRedisClient(t)
	repo := NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()
	stream := testStreamName()
	t.Cleanup(func() { client.Del(ctx, stream) })

	require.NoError(t, repo.CreateConsumerGroup(ctx, stream, "workers"))
	require.NoError(t, repo.CreateConsumerGroup(ctx, stream, "workers"))
}

func TestStreamRepository_PublishBeforeGroupIsConsumed(t *testing.T) {
	client := getTestRedisClient(t)
	repo := NewStreamRepository(client, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	stream := testStreamName()
	t.Cleanup(func() { client.Del(context.Background(), stream) })

	event := domain.NewIndexSyncEvent(domain.SyncBusinesses, "region updated")
	require.NoError(t, repo.PublishToStream(ctx, stream, event))
	require.NoError(t, repo.CreateConsumerGroup(ctx, stream, "workers"))

	messages, err := repo.ConsumeStream(ctx, stream, "workers", "consumer-1")
	require.NoError(t, err)

	select {
	case msg := <-messages:
		var got domain.IndexSyncEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Data), &got))
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, domain.SyncBusinesses, got.Target)
		assert.Equal(t, "region updated", got.Reason)

		require.NoError(t, repo.AckMessage(ctx, stream, "workers", msg.ID))
		pending, err := client.XPending(ctx, stream, "workers").Result()
		require.NoError(t, err)
		assert.Zero(t, pending.Count)
	case <-ctx.Done():
		t.Fatal("timed out waiting for the sync event")
	}
}

func TestStreamRepository_ConsumeStopsOnCancel(t *testing.T) {
	client := getTestRedisClient(t)
	repo := NewStreamRepository(client, zap.NewNop())
	stream := testStreamName()
	t.Cleanup(func() { client.Del(context.Background(), stream) })

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, repo.CreateConsumerGroup(ctx, stream, "workers"))
	messages, err := repo.ConsumeStream(ctx, stream, "workers", "consumer-1")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-messages:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop")
	}
}
