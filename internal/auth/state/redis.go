package state

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "oauth_state:"

// pendingMarker is the value stored under a state key while the login is in
// flight; the token itself carries all the information.
const pendingMarker = "pending"

// RedisStore keeps tokens in Redis. GETDEL makes redemption atomic, so two
// concurrent callbacks presenting the same state cannot both succeed, and
// Redis expires keys itself.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+token, pendingMarker, ttl).Err()
}

func (s *RedisStore) Consume(ctx context.Context, token string) (bool, error) {
	_, err := s.rdb.GetDel(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
