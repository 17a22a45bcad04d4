package memory

import (
	"context"
	"sync"
)

// Store keeps page element contents in process memory
type Store struct {
	mu       sync.RWMutex
	elements map[string]string
}

// NewStore creates an empty in-memory page store
func NewStore() *Store {
	return &Store{elements: make(map[string]string)}
}

// Load returns the element content, "" if never written
func (s *Store) Load(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elements[id], nil
}

// Save replaces the element content
func (s *Store) Save(_ context.Context, id, content string) error {
	s.mu.Lock()
	s.elements[id] = content
	s.mu.Unlock()
	return nil
}
