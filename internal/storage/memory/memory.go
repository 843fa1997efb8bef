// Package memory provides an in-process key-value store.
package memory

import (
	"context"
	"sync"
)

// Store keeps values in a map. Nothing survives a restart.
type Store struct {
	values map[string][]byte
	mu     sync.RWMutex
}

// New creates an empty store.
func New() *Store {
	return &Store{
		values: make(map[string][]byte),
	}
}

// Get retrieves a value by key
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, exists := s.values[key]
	if !exists {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores a value
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes a value
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
