package drafts

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
)

func TestKey(t *testing.T) {
	id := uuid.MustParse("5f1d7c2e-0b7a-4d36-9a51-6f0e2c1d9b10")
	assert.Equal(t, "booking:draft:5f1d7c2e-0b7a-4d36-9a51-6f0e2c1d9b10", key(id))
}

// Roda só com um Redis disponível: REDIS_TEST_ADDR=localhost:6379
func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })

	ctx := context.Background()
	store := NewRedisStore(rdb, time.Minute)

	w := booking.New(uuid.New(), time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, w))

	ttl, err := rdb.TTL(ctx, key(w.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	got, err := store.Load(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)
	assert.Equal(t, w.Step, got.Step)
	assert.Equal(t, "2025-10-01", got.ViewMonth)

	require.NoError(t, store.Delete(ctx, w.ID))
	_, err = store.Load(ctx, w.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
