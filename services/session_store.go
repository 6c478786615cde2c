package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore remembers which admin sessions are currently logged in.
type SessionStore interface {
	Set(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type RedisSessionStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, Prefix: "admin_session:"}
}

func (s *RedisSessionStore) key(id string) string {
	return s.Prefix + id
}

func (s *RedisSessionStore) Set(ctx context.Context, id string, ttl time.Duration) error {
	return s.Client.Set(ctx, s.key(id), "1", ttl).Err()
}

func (s *RedisSessionStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.Client.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.key(id)).Err()
}

// MemorySessionStore is used when Redis is not configured.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]time.Time), now: time.Now}
}

func (s *MemorySessionStore) Set(_ context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = s.now().Add(ttl)
	return nil
}

func (s *MemorySessionStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expires, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expires) {
		delete(s.sessions, id)
		return false, nil
	}
	return true, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
