package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/okanara/markov/internal/adapters/redis"
	"github.com/okanara/markov/pkg/domain"
	"github.com/okanara/markov/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ports.RunStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))
	run := domain.NewRunRecord("coin-toss", "heads", 5, 9)
	require.NoError(t, store.Save(ctx, run))

	exists, err := client.Exists(ctx, "custom:"+run.ID).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestRedisStore_TTLIndexCleanup(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	store := redis.NewFromClient(client, redis.WithTTL(time.Nanosecond))
	run := domain.NewRunRecord("coin-toss", "heads", 5, 9)
	require.NoError(t, store.Save(ctx, run))

	// The index score is already in the past, so List prunes the entry.
	time.Sleep(10 * time.Millisecond)
	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, run.ID)
}
