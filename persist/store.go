// Package persist is the key-value byte store the SDK uses to keep the
// minimal session record across restarts. Implementations are expected
// to be small and dumb; the session manager treats every failure here
// as non-fatal.
package persist

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("persist: not found")

// Store is the persistence port.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// MemStore is an in-memory Store, mainly for tests.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Load returns the stored value or ErrNotFound.
func (m *MemStore) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Save stores a copy of value under key.
func (m *MemStore) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
