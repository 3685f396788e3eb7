package conversation

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and single-node deployments.
// Like the Redis store it grows without bound per session.
type MemoryStore struct {
	mu    sync.RWMutex
	turns map[string][]Turn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{turns: make(map[string][]Turn)}
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, turn Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[sessionID] = append(s.turns[sessionID], turn)
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, sessionID string, n int) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.turns[sessionID]
	if len(all) <= n {
		return append([]Turn(nil), all...), nil
	}
	return append([]Turn(nil), all[len(all)-n:]...), nil
}
