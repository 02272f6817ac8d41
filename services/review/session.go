package review

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fitsched/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore owns review-session persistence between fetch and commit.
type SessionStore interface {
	Save(ctx context.Context, session *models.ReviewSession) error
	Load(ctx context.Context, sessionID string) (*models.ReviewSession, error)
	Delete(ctx context.Context, sessionID string)
}

const sessionKeyPrefix = "review:"

// RedisSessionStore caches review sessions in Redis with a TTL, keyed by
// session id. One trainer's reviewing session owns its entry exclusively.
type RedisSessionStore struct {
	Cache *redis.Client
	TTL   time.Duration
}

func NewRedisSessionStore(cache *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Cache: cache, TTL: ttl}
}

// Save caches the review session under its id with the configured TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session *models.ReviewSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal review session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache review session: %w", err)
	}
	return nil
}

// Load retrieves a review session by id.
func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.ReviewSession, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("review session not found or expired: %w", err)
	}
	var session models.ReviewSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse review session: %w", err)
	}
	return &session, nil
}

// Delete discards a review session.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) {
	s.Cache.Del(ctx, sessionKeyPrefix+sessionID)
}
