package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"psybench/internal/domain"
)

// RunStatusStore registra el estado observable de corridas en segundo plano.
type RunStatusStore interface {
	Set(status domain.RunStatus) error
	Get(runID string) (domain.RunStatus, bool, error)
}

type memoryRunStatusStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryRunEntry
}

type memoryRunEntry struct {
	status  domain.RunStatus
	expires time.Time
}

func NewMemoryRunStatusStore(ttl time.Duration) RunStatusStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &memoryRunStatusStore{
		ttl:   ttl,
		items: make(map[string]memoryRunEntry),
	}
}

func (s *memoryRunStatusStore) Set(status domain.RunStatus) error {
	if strings.TrimSpace(status.RunID) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[status.RunID] = memoryRunEntry{
		status:  status,
		expires: time.Now().UTC().Add(s.ttl),
	}
	return nil
}

func (s *memoryRunStatusStore) Get(runID string) (domain.RunStatus, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[runID]
	if !ok {
		return domain.RunStatus{}, false, nil
	}
	if time.Now().UTC().After(entry.expires) {
		delete(s.items, runID)
		return domain.RunStatus{}, false, nil
	}
	return entry.status, true, nil
}

type redisRunStatusStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisRunStatusStore(client *redis.Client, ttl time.Duration) RunStatusStore {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisRunStatusStore{
		client: client,
		prefix: "assess:run:",
		ttl:    ttl,
	}
}

func (s *redisRunStatusStore) Set(status domain.RunStatus) error {
	if strings.TrimSpace(status.RunID) == "" {
		return nil
	}
	payload, err := json.Marshal(status)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+status.RunID, payload, s.ttl).Err()
}

func (s *redisRunStatusStore) Get(runID string) (domain.RunStatus, bool, error) {
	if strings.TrimSpace(runID) == "" {
		return domain.RunStatus{}, false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	payload, err := s.client.Get(ctx, s.prefix+runID).Bytes()
	if err == redis.Nil {
		return domain.RunStatus{}, false, nil
	}
	if err != nil {
		return domain.RunStatus{}, false, err
	}
	var status domain.RunStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return domain.RunStatus{}, false, err
	}
	return status, true, nil
}
