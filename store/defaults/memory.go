// File: memory.go
// Title: Memory Backend
// Description: Process local Store used by default and in tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package defaults

import (
	"context"
	"sync"
)

// MemoryStore keeps values in a map. Values are copied on the way in and out.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get implements Store
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Set implements Store
func (s *MemoryStore) Set(_ context.Context, key string, data []byte) error {
	if err := validateKey("defaults.MemoryStore.Set", key); err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = append([]byte(nil), data...)
	s.mu.Unlock()
	return nil
}

// Delete implements Store
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored keys
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Close implements Store
func (s *MemoryStore) Close() error {
	return nil
}
