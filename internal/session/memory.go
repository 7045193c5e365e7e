package session

import (
	"context"
	"phoenix/internal/state"
	"phoenix/shared/timezone"
	"sync"
	"time"
)

type memoryEntry struct {
	snapshot  state.Snapshot
	expiresAt time.Time
}

// memoryStore keeps snapshots in-process. Sessions vanish on restart, which
// is fine for development and tests.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStore() Store {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
	}
}

func (s *memoryStore) Save(_ context.Context, id string, snapshot state.Snapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = memoryEntry{
		snapshot:  snapshot,
		expiresAt: timezone.Now().Add(ttl),
	}

	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (state.Snapshot, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || timezone.Now().After(entry.expiresAt) {
		return state.Snapshot{}, ErrNotFound
	}

	return entry.snapshot, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)

	return nil
}
