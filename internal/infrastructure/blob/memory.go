package blob

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests as the injected
// persistence fake.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte

	// FailPuts makes every Put fail with the given error, for exercising
	// the "changes not saved" path.
	FailPuts error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	if s.FailPuts != nil {
		return s.FailPuts
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
