package order

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"washly/models"
	"washly/utils"

	"github.com/go-redis/redis/v8"
)

// Session TTL: an abandoned draft expires on its own after half an hour.
const sessionTTL = 30 * time.Minute

// SessionStore persists order sessions between step calls. Each session is
// exclusively owned by the flow that created it.
type SessionStore interface {
	Save(ctx context.Context, sess *models.OrderSession) error
	Get(ctx context.Context, sessionID string) (*models.OrderSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore returns the Redis-backed store used in production.
func NewRedisSessionStore() SessionStore {
	return &redisSessionStore{client: utils.GetOrderCacheClient()}
}

func (s *redisSessionStore) Save(ctx context.Context, sess *models.OrderSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal order session: %w", err)
	}
	if err := s.client.Set(ctx, sess.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store order session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.OrderSession, error) {
	data, err := s.client.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order session: %w", err)
	}
	var sess models.OrderSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse order session: %w", err)
	}
	return &sess, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionID).Err()
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewMemorySessionStore returns an in-process store; used in tests and as a
// degraded single-instance fallback when Redis is not configured.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string][]byte)}
}

func (s *memorySessionStore) Save(_ context.Context, sess *models.OrderSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.SessionID] = data
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, sessionID string) (*models.OrderSession, error) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var sess models.OrderSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
