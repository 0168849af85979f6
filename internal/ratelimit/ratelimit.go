// Package ratelimit protects the validation endpoints with a per-client
// fixed-window limiter. Two stores exist: an in-memory one for single
// instance deployments and a Redis one for fleets.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of a limiter check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store counts requests per key within a window. Implementations must be
// safe for concurrent use.
type Store interface {
	// Allow records one request for key and reports whether it fits within
	// limit for the current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)
}
