package ratelimit

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore implements Store with a per-key sliding window. Suitable for
// single-instance deployments; use RedisStore when running a fleet.
type InMemoryStore struct {
	mu      sync.Mutex
	buckets map[string][]time.Time
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{buckets: make(map[string][]time.Time)}
}

// Allow records a request and checks it against the sliding window.
func (s *InMemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)

	kept := s.buckets[key][:0]
	for _, ts := range s.buckets[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	s.buckets[key] = kept

	if len(kept) >= limit {
		// limit <= 0 rejects everything, including when the bucket is
		// empty and has no oldest entry to compute a reset from.
		resetAt := now.Add(window)
		if len(kept) > 0 {
			resetAt = kept[0].Add(window)
		}
		return &Result{
			Allowed:   false,
			Limit:     limit,
			Remaining: 0,
			ResetAt:   resetAt,
		}, nil
	}

	s.buckets[key] = append(kept, now)
	return &Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(s.buckets[key]),
		ResetAt:   s.buckets[key][0].Add(window),
	}, nil
}

// Reset clears the window for a key.
func (s *InMemoryStore) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
}
