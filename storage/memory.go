package storage

import "sync"

// MemoryKV is a map-backed KV for tests and throwaway runs. Safe for
// concurrent use; values are copied on the way in and out.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites, when set, makes every Set return the given error. Tests
	// use it to simulate a full or broken backing store.
	FailWrites error
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemoryKV) Close() error { return nil }
