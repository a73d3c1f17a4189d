package database

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { RedisClient = nil })
	return mr
}

func TestNewLockIsExclusive(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	locked, err := NewLock(ctx, "lock:test", "owner-a", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, locked)

	// A second holder cannot take the same lock.
	locked, err = NewLock(ctx, "lock:test", "owner-b", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestReleaseLockRequiresOwnership(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	locked, err := NewLock(ctx, "lock:test", "owner-a", 10*time.Second)
	require.NoError(t, err)
	require.True(t, locked)

	assert.Error(t, ReleaseLock(ctx, "lock:test", "owner-b"), "only the owner may release")
	assert.NoError(t, ReleaseLock(ctx, "lock:test", "owner-a"))

	// Released, so it can be acquired again.
	locked, err = NewLock(ctx, "lock:test", "owner-c", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestLockExpiresAfterTTL(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()

	locked, err := NewLock(ctx, "lock:test", "owner-a", 10*time.Second)
	require.NoError(t, err)
	require.True(t, locked)

	mr.FastForward(11 * time.Second)

	locked, err = NewLock(ctx, "lock:test", "owner-b", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, locked, "expired lock is up for grabs")
}
