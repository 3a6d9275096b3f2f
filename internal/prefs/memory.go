package prefs

import (
	"context"
	"sync"

	perrors "github.com/zhubert/manus/internal/errors"
)

// MemoryStore is an in-process Store. Tests use FailGet/FailSet to simulate
// a broken backend.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	setErr error
	sets   int
}

// NewMemoryStore returns a store seeded with values (may be nil).
func NewMemoryStore(values map[string]string) *MemoryStore {
	m := &MemoryStore{values: map[string]string{}}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// FailGet makes every subsequent Get return err. Pass nil to heal.
func (m *MemoryStore) FailGet(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// FailSet makes every subsequent Set and Delete return err. Pass nil to heal.
func (m *MemoryStore) FailSet(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

// Writes reports how many successful Set calls were made.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, perrors.StoreReadFailed(key, m.getErr)
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return perrors.StoreWriteFailed(key, m.setErr)
	}
	m.values[key] = value
	m.sets++
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return perrors.StoreWriteFailed(key, m.setErr)
	}
	delete(m.values, key)
	return nil
}
