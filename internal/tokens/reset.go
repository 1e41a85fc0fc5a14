package tokens

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ResetStore keeps single-use password-reset tokens in redis with a TTL, so
// expiry needs no sweeper and tokens vanish with the instance.
type ResetStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewResetStore(rdb *redis.Client, ttl time.Duration) *ResetStore {
	return &ResetStore{rdb: rdb, ttl: ttl}
}

func key(token string) string {
	return fmt.Sprintf("pwreset:%s", token)
}

// Issue creates a fresh token bound to an admin id.
func (s *ResetStore) Issue(ctx context.Context, adminID uint) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, key(token), strconv.FormatUint(uint64(adminID), 10), s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Consume resolves a token to its admin id and invalidates it. A missing or
// expired token yields (0, false, nil).
func (s *ResetStore) Consume(ctx context.Context, token string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	if err := s.rdb.Del(ctx, key(token)).Err(); err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}
