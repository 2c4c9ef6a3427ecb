// Package passwordreset keeps single-use password reset tokens in Redis.
// Only the SHA-256 of a token is stored, keyed to the user it was issued for.
package passwordreset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound = errors.New("reset token not found or expired")
	OpTimeout        = time.Second * 3
)

const keyPrefix = "password_reset:"

type Store interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	// Consume returns the user the token was issued for and invalidates it.
	Consume(ctx context.Context, token string) (int64, error)
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &RedisStore{rdb: rdb}
}

func key(token string) string {
	hash := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(hash[:])
}

func (s *RedisStore) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	if err := s.rdb.Set(ctx, key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

func (s *RedisStore) Consume(ctx context.Context, token string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	val, err := s.rdb.GetDel(ctx, key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrTokenNotFound
		}
		return 0, fmt.Errorf("consume reset token: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt reset token entry: %w", err)
	}
	return userID, nil
}
