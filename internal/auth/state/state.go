// Package state stores single-use anti-CSRF tokens for the OAuth login flow.
//
// A token is redeemable exactly once, and only before its TTL elapses. The
// in-memory backend serves development and tests; RedisStore shares tokens
// across instances and makes redemption atomic.
package state

import (
	"context"
	"sync"
	"time"
)

// TTL is how long an issued login state stays redeemable.
const TTL = 5 * time.Minute

// Store persists pending-login state tokens.
type Store interface {
	// Save records a freshly minted token.
	Save(ctx context.Context, token string, ttl time.Duration) error

	// Consume redeems a token. It returns true only the first time a live
	// token is presented; replayed, expired, and never-issued tokens all
	// return false.
	Consume(ctx context.Context, token string) (bool, error)
}

// MemoryStore keeps tokens in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]time.Time)}
}

func (s *MemoryStore) Save(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	delete(s.tokens, token)
	return time.Now().Before(expiry), nil
}
