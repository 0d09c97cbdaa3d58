package state

import "sync"

// MemoryStore is a concurrency-safe in-memory Store. It backs nothing in
// production; orchestrator tests use it in place of a real backend.
type MemoryStore struct {
	mu sync.RWMutex
	st State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st, nil
}

func (s *MemoryStore) Save(st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
	return nil
}

func (s *MemoryStore) Close() error { return nil }
