package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"itsourstudio/models"
	"itsourstudio/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds in-progress booking drafts. Drafts survive page
// reloads within the TTL and disappear on confirm or cancel.
type SessionStore interface {
	Save(ctx context.Context, draft *models.BookingDraft) error
	Get(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore implements SessionStore on the session Redis DB.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a session store backed by the given client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return utils.SessionCachePrefix + sessionID
}

// Save marshals and writes the draft, refreshing the TTL.
func (s *RedisSessionStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(draft.SessionID), data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

// Get returns the draft for a session, or nil when absent or expired.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

// Delete removes the draft.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}
