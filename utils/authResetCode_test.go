package utils

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

func setupResetRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RedisClient = nil })
	return mr
}

func TestGenerateResetCodeFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateResetCode()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestVerifyResetCodeHappyPath(t *testing.T) {
	setupResetRedis(t)
	ctx := context.Background()

	require.NoError(t, SetResetCode(ctx, "user@clinic.test", "123456"))
	require.NoError(t, VerifyResetCode(ctx, "user@clinic.test", "123456"))

	// The code is single use.
	assert.ErrorIs(t, VerifyResetCode(ctx, "user@clinic.test", "123456"), ErrInvalidResetCode)
}

func TestVerifyResetCodeRejectsWrongCode(t *testing.T) {
	setupResetRedis(t)
	ctx := context.Background()

	require.NoError(t, SetResetCode(ctx, "user@clinic.test", "123456"))
	assert.ErrorIs(t, VerifyResetCode(ctx, "user@clinic.test", "654321"), ErrInvalidResetCode)

	// A failed attempt does not burn the stored code.
	assert.NoError(t, VerifyResetCode(ctx, "user@clinic.test", "123456"))
}

func TestResetCodeExpires(t *testing.T) {
	mr := setupResetRedis(t)
	ctx := context.Background()

	require.NoError(t, SetResetCode(ctx, "user@clinic.test", "123456"))
	mr.FastForward(16 * time.Minute)

	assert.ErrorIs(t, VerifyResetCode(ctx, "user@clinic.test", "123456"), ErrInvalidResetCode)
}

func TestResetCodeIsPerEmail(t *testing.T) {
	setupResetRedis(t)
	ctx := context.Background()

	require.NoError(t, SetResetCode(ctx, "a@clinic.test", "111111"))
	require.NoError(t, SetResetCode(ctx, "b@clinic.test", "222222"))

	assert.ErrorIs(t, VerifyResetCode(ctx, "a@clinic.test", "222222"), ErrInvalidResetCode)
	assert.NoError(t, VerifyResetCode(ctx, "a@clinic.test", "111111"))
	assert.NoError(t, VerifyResetCode(ctx, "b@clinic.test", "222222"))
}
