package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the resolved company code in Redis keyed by an opaque
// session ID, so browsers that drop the companyCode query parameter on
// navigation keep their tenant binding.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore constructs the store.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create binds a new session ID to companyCode.
func (s *SessionStore) Create(ctx context.Context, companyCode string) (string, error) {
	sessionID := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(sessionID), companyCode, s.ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Lookup returns the company code bound to sessionID and refreshes its TTL.
// The second return value is false when the session is unknown or expired.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (string, bool) {
	if sessionID == "" {
		return "", false
	}
	companyCode, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil || companyCode == "" {
		return "", false
	}
	_ = s.client.Expire(ctx, sessionKey(sessionID), s.ttl).Err()
	return companyCode, true
}

// Destroy removes the session binding.
func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
