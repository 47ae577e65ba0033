package events

import (
	"context"
	"log/slog"
	"sync"
)

// BestEffort wraps a Publisher so that failures are logged and swallowed.
// Domain operations never fail because the broker is down.
type BestEffort struct {
	next   Publisher
	logger *slog.Logger
}

// NewBestEffort wraps next. A nil next publishes nothing.
func NewBestEffort(next Publisher, logger *slog.Logger) *BestEffort {
	if next == nil {
		next = Nop{}
	}
	return &BestEffort{next: next, logger: logger}
}

func (b *BestEffort) Publish(ctx context.Context, e Event) error {
	if err := b.next.Publish(ctx, e); err != nil {
		b.logger.Warn("event publish failed", "type", e.Type, "user_id", e.UserID, "error", err)
	}
	return nil
}

func (b *BestEffort) Close() error { return b.next.Close() }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// OfType returns the recorded events with the given type.
func (r *Recorder) OfType(t Type) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
