// Package memory provides the in-process audit store. Events are held in a
// bounded ring so a long-running server cannot grow without limit.
package memory

import (
	"context"
	"sync"

	"verid/internal/audit"
)

// DefaultCapacity bounds the retained event history.
const DefaultCapacity = 10000

type InMemoryStore struct {
	mu       sync.RWMutex
	events   []audit.Event
	capacity int
}

// NewInMemoryStore creates a store retaining at most capacity events; zero or
// negative means DefaultCapacity.
func NewInMemoryStore(capacity int) *InMemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryStore{capacity: capacity}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.capacity {
		s.events = s.events[len(s.events)-s.capacity:]
	}
	return nil
}

// ListRecent returns up to limit events, most recent last.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.events) - limit
	if limit <= 0 || start < 0 {
		start = 0
	}
	return append([]audit.Event{}, s.events[start:]...), nil
}

// Clear drops all retained events.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
