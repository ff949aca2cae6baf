// Package storage persists resume records through a process-wide key-value
// store abstraction. The active record and the saved-snapshots list live
// under two fixed slots; all operations on them are fail-soft: storage
// problems degrade to defaults or no-ops and are reported only through the
// diagnostic log and an optional observer hook, never to the caller.
package storage

import (
	"context"
	"errors"
	"sync"
)

// Storage slot keys. Fixed so exported state remains interchangeable with
// other frontends sharing the same layout.
const (
	// ResumeKey is the slot holding the active resume record.
	ResumeKey = "resume-builder-data"
	// SavedResumesKey is the slot holding the labeled snapshots list.
	SavedResumesKey = "resume-builder-saved"
)

// ErrNotFound is returned by a Store when a key has no value.
var ErrNotFound = errors.New("key not found")

// Store is a minimal key-value backend. Implementations must treat missing
// keys as ErrNotFound so callers can distinguish absence from failure.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryStore is an in-process Store used in tests and headless contexts
// where no durable backend is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Remove implements Store.
func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
