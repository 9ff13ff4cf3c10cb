package resettoken

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store tracks consumed password-reset tokens by jti so a link can only be
// used once. Entries need to outlive the token's own 20-minute expiry, after
// which the signature check rejects the token anyway.
type Store interface {
	MarkUsed(ctx context.Context, jti string, ttl time.Duration) error
	IsUsed(ctx context.Context, jti string) (bool, error)
}

const keyPrefix = "reset_token_used:"

// --------------------------------------------------
// Redis
// --------------------------------------------------

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (s *RedisStore) MarkUsed(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

func (s *RedisStore) IsUsed(ctx context.Context, jti string) (bool, error) {
	if err := s.client.Get(ctx, keyPrefix+jti).Err(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// --------------------------------------------------
// In-process fallback (single node, no Redis configured)
// --------------------------------------------------

type MemoryStore struct {
	mu   sync.Mutex
	used map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{used: make(map[string]time.Time)}
}

func (s *MemoryStore) MarkUsed(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, exp := range s.used {
		if exp.Before(now) {
			delete(s.used, k)
		}
	}

	s.used[jti] = now.Add(ttl)
	return nil
}

func (s *MemoryStore) IsUsed(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.used[jti]
	return ok && exp.After(time.Now()), nil
}
