package utils

import (
	"context"
	"crypto/subtle"
	"fmt"
	"math/rand"
	"time"

	"github.com/BSIT-Sanchez/LGC/cache"
	"github.com/go-redis/redis/v8"
)

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// SetResetCode sets the reset code for a given email in Redis with an expiration time of 15 minutes.
func SetResetCode(ctx context.Context, email, code string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Set(ctx, "reset_code:"+email, code, 15*time.Minute)
}

// GetResetCode retrieves the reset code for a given email from Redis.
func GetResetCode(ctx context.Context, email string) (*string, error) {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return nil, err
	}
	code, err := cacheInstance.Get(ctx, "reset_code:"+email)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// DeleteResetCode deletes the reset code for a given email from Redis.
func DeleteResetCode(ctx context.Context, email string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Delete(ctx, "reset_code:"+email)
}

// VerifyResetCode compares the submitted code with the stored one and burns it
// on success. A missing or mismatched code fails with ErrInvalidResetCode.
func VerifyResetCode(ctx context.Context, email, code string) error {
	stored, err := GetResetCode(ctx, email)
	if err != nil {
		return err
	}
	if stored == nil || subtle.ConstantTimeCompare([]byte(*stored), []byte(code)) != 1 {
		return ErrInvalidResetCode
	}
	return DeleteResetCode(ctx, email)
}
