package audit

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Publisher accepts audit events from request paths and hands them to the
// background worker through a buffered channel. Emit never blocks the
// request: when the buffer is full the event is dropped and counted, because
// validation latency matters more than a complete audit trail.
type Publisher struct {
	inbox   chan Event
	logger  *slog.Logger
	dropped atomic.Uint64
}

// NewPublisher creates a publisher with the given buffer size; zero or
// negative means an unbuffered channel.
func NewPublisher(bufferSize int, logger *slog.Logger) *Publisher {
	if bufferSize < 0 {
		bufferSize = 0
	}
	return &Publisher{
		inbox:  make(chan Event, bufferSize),
		logger: logger,
	}
}

// Emit enqueues an event for background persistence.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
		n := p.dropped.Add(1)
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit buffer full, event dropped",
				"dropped_total", n,
				"country", event.Country,
				"operation", event.Operation,
			)
		}
	}
}

// Events exposes the inbox for the worker.
func (p *Publisher) Events() <-chan Event {
	return p.inbox
}

// Dropped reports how many events were discarded because the buffer was full.
func (p *Publisher) Dropped() uint64 {
	return p.dropped.Load()
}
