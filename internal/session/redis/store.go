package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/abarbosa/redator-server/internal/model"
)

var _ model.SessionStore = (*Store)(nil)

const keyPrefix = "session:"

// Store keeps sessions in Redis under an opaque token with a TTL, so
// expiry needs no in-process bookkeeping.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store on the given Redis client. Sessions
// expire ttl after creation.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Create stores the session and returns the fresh opaque token.
func (s *Store) Create(ctx context.Context, session model.Session) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Get resolves a token to its session. An unknown or expired token yields
// model.ErrNoSession.
func (s *Store) Get(ctx context.Context, token string) (model.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Session{}, model.ErrNoSession
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return model.Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return session, nil
}

// Destroy removes the session. Destroying an unknown token is not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
