package display

import "sync"

// Store is the key/value backend persisted settings are written to.
// Get reports ok=false when the key has never been written.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemoryStore is an in-memory Store. It is the fallback when no database is
// available, and lasts only for the process lifetime.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
