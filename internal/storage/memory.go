package storage

import (
	"sort"
	"strings"
	"sync"
)

// MemoryStore is a Store held in process memory. It backs tests and is the
// fallback when no durable store can be opened.
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string][]byte
	writeErr error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns a copy of the value for key.
func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores a copy of value, or fails with the error set by FailWrites.
func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Keys lists keys with prefix in ascending order.
func (m *MemoryStore) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

// FailWrites makes every later Set return err. A nil err restores writes.
func (m *MemoryStore) FailWrites(err error) {
	m.mu.Lock()
	m.writeErr = err
	m.mu.Unlock()
}
