package envvar

import (
	"os"
	"sync"
)

// Store is the key-value surface the resolver reads and writes. Keys are
// case-sensitive; absence of a key is distinct from presence with an empty value.
type Store interface {
	// Lookup returns the value for name and whether the entry exists.
	Lookup(name string) (string, bool)
	// Set writes value under name, creating or replacing the entry.
	Set(name, value string) error
	// Unset removes the entry for name. Removing a missing entry is not an error.
	Unset(name string) error
}

// OSStore is a Store backed by the real process environment.
type OSStore struct{}

func (OSStore) Lookup(name string) (string, bool) { return os.LookupEnv(name) }
func (OSStore) Set(name, value string) error      { return os.Setenv(name, value) }
func (OSStore) Unset(name string) error           { return os.Unsetenv(name) }

// MapStore is an in-memory Store for tests and for callers that must not touch
// the process environment. Safe for concurrent use.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{values: make(map[string]string)}
}

func (s *MapStore) Lookup(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[name]
	return value, ok
}

func (s *MapStore) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	return nil
}

func (s *MapStore) Unset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
	return nil
}

// Len returns the number of entries in the store.
func (s *MapStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
