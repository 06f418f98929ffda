package kv

import "context"

// Store is the draft persistence boundary: a plain key-value
// get/set with no transactional guarantees. A missing key reads
// as ("", false), never an error the caller must branch on.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Delete(ctx context.Context, key string)
}

// --------------------------------------------------
// In-memory store (tests, local runs)
// --------------------------------------------------

type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(_ context.Context, key, value string) {
	m.values[key] = value
}

func (m *MemoryStore) Delete(_ context.Context, key string) {
	delete(m.values, key)
}
