// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// cleanupThreshold bounds the entry map: once it grows past this size,
// expired windows are swept on the next check.
const cleanupThreshold = 1000

type windowEntry struct {
	count   int
	resetAt time.Time
}

// Memory is a per-process fixed-window [Limiter].
//
// # Concurrency
//
// All methods are safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*windowEntry

	// now is swapped in tests to step through windows deterministically.
	now func() time.Time
}

// NewMemory creates an in-process limiter.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// Allow implements [Limiter].
func (m *Memory) Allow(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	currentTime := m.now()

	if len(m.entries) > cleanupThreshold {
		m.sweep(currentTime)
	}

	entry, found := m.entries[key]
	if !found || !currentTime.Before(entry.resetAt) {
		entry = &windowEntry{resetAt: currentTime.Add(window)}
		m.entries[key] = entry
	}

	if entry.count >= limit {
		return Decision{Allowed: false, Remaining: 0, Reset: entry.resetAt}, nil
	}

	entry.count++
	return Decision{
		Allowed:   true,
		Remaining: limit - entry.count,
		Reset:     entry.resetAt,
	}, nil
}

// sweep removes entries whose window has already ended. Caller holds the lock.
func (m *Memory) sweep(currentTime time.Time) {
	for key, entry := range m.entries {
		if !currentTime.Before(entry.resetAt) {
			delete(m.entries, key)
		}
	}
}
