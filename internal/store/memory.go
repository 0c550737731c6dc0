package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process KV, used in tests and when no database is
// configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

var _ KV = (*MemoryStore)(nil)

func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, profile, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[profile][key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Put(_ context.Context, profile, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[profile] == nil {
		m.data[profile] = make(map[string][]byte)
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[profile][key] = v
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, profile, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[profile], key)
	return nil
}
