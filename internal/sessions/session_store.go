package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session records an issued token so it can be revoked before its expiry.
type Session struct {
	TokenID string `json:"token_id"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// Store keeps issued-token sessions in redis, keyed by token id with a TTL
// matching the token expiry. A missing key means the token was revoked or
// never issued.
type Store struct {
	client *redis.Client
}

// NewStore returns a redis-backed session store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) key(tokenID string) string {
	return fmt.Sprintf("auth:sessions:%s", tokenID)
}

// Save caches the session for the lifetime of its token.
func (s *Store) Save(ctx context.Context, session Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(session.TokenID), data, ttl).Err()
}

// Exists reports whether the session is still live.
func (s *Store) Exists(ctx context.Context, tokenID string) (bool, error) {
	if _, err := s.client.Get(ctx, s.key(tokenID)).Result(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Revoke drops the session, invalidating its token immediately.
func (s *Store) Revoke(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, s.key(tokenID)).Err()
}
