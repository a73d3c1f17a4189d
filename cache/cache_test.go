package cache

import (
	"context"
	"testing"
	"time"

	"github.com/BSIT-Sanchez/LGC/database"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RedisClient = nil })

	c, err := NewCache()
	require.NoError(t, err)
	return c, mr
}

func TestNewCacheRequiresClient(t *testing.T) {
	database.RedisClient = nil
	_, err := NewCache()
	assert.Error(t, err)
}

func TestSetAndGet(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "patients_cache", `[{"id":"1"}]`, time.Hour))

	value, err := c.Get(ctx, "patients_cache")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestGetMissingKeyReturnsRedisNil(t *testing.T) {
	c, _ := setupCache(t)

	value, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, redis.Nil)
	assert.Empty(t, value)
}

func TestDelete(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "patient_cache:1", "x", time.Hour))
	require.NoError(t, c.Delete(ctx, "patient_cache:1"))

	_, err := c.Get(ctx, "patient_cache:1")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestDeleteAllByPattern(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "patient_cache:1", "a", time.Hour))
	require.NoError(t, c.Set(ctx, "patient_cache:2", "b", time.Hour))
	require.NoError(t, c.Set(ctx, "staff_cache:1", "c", time.Hour))

	require.NoError(t, c.DeleteAll(ctx, "patient_cache:*"))

	for _, key := range []string{"patient_cache:1", "patient_cache:2"} {
		_, err := c.Get(ctx, key)
		assert.ErrorIs(t, err, redis.Nil, key)
	}

	untouched, err := c.Get(ctx, "staff_cache:1")
	require.NoError(t, err)
	assert.Equal(t, "c", untouched)
}

func TestDeleteBatch(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", "1", time.Hour))
	require.NoError(t, c.Set(ctx, "b", "2", time.Hour))

	require.NoError(t, c.DeleteBatch(ctx, "a", "b"))

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestExpiry(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "lived", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, redis.Nil)
}
