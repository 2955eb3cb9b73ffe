// Package keystore is the durable client-side key-value storage backing the
// session store. Keys and values are strings; nothing else is persisted on
// the client.
package keystore

import "sync"

type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(key string) (string, bool, error)
	Put(key, value string) error
	// Delete removes the given keys. Missing keys are not an error. All keys
	// are removed in one transaction or none are.
	Delete(keys ...string) error
	Close() error
}

// Memory is an in-process Store for tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *Memory) Close() error {
	return nil
}
