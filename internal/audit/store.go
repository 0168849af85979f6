package audit

import "context"

// Store is an append-only sink for audit events. Implementations must be
// safe for concurrent use.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
