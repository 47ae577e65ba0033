package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failing struct{ closed bool }

func (f *failing) Publish(context.Context, Event) error { return errors.New("broker down") }
func (f *failing) Close() error                         { f.closed = true; return nil }

func TestBestEffort_SwallowsErrors(t *testing.T) {
	f := &failing{}
	p := NewBestEffort(f, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := p.Publish(context.Background(), Event{Type: TypeSessionEnded, UserID: "u1"})
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
	assert.True(t, f.closed)
}

func TestBestEffort_NilIsNop(t *testing.T) {
	p := NewBestEffort(nil, slog.Default())
	assert.NoError(t, p.Publish(context.Background(), Event{}))
}

func TestRecorder_OfType(t *testing.T) {
	r := &Recorder{}
	ctx := context.Background()
	_ = r.Publish(ctx, Event{Type: TypeAttemptEvaluated})
	_ = r.Publish(ctx, Event{Type: TypeDifficultyChanged})
	_ = r.Publish(ctx, Event{Type: TypeAttemptEvaluated})

	assert.Len(t, r.OfType(TypeAttemptEvaluated), 2)
	assert.Len(t, r.OfType(TypeSessionEnded), 0)
}
