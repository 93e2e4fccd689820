// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package docstore

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in a map. Contents vanish on restart; it exists
// for tests and throwaway environments.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore creates an empty volatile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Load implements [Store].
func (s *MemoryStore) Load(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, found := s.docs[name]
	if !found {
		return nil, ErrNotFound
	}

	// Copy so callers cannot mutate the stored slice.
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// Save implements [Store].
func (s *MemoryStore) Save(_ context.Context, name string, content []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(content))
	copy(stored, content)
	s.docs[name] = stored
	return nil
}
