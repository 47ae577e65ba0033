package oracle

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is a canned reply for the MockOracle.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockOracle is a deterministic Oracle for tests and offline runs.
// It returns canned replies in FIFO order and records all prompts.
type MockOracle struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []Prompt
}

// NewMockOracle creates a MockOracle with the given canned replies.
func NewMockOracle(replies ...MockReply) *MockOracle {
	return &MockOracle{replies: replies}
}

// Ask returns the next canned reply, or *ErrUnavailable once the queue is
// empty.
func (m *MockOracle) Ask(_ context.Context, p Prompt) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, p)

	if len(m.replies) == 0 {
		return nil, &ErrUnavailable{}
	}

	r := m.replies[0]
	m.replies = m.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	if err := validateReply(p.Schema, r.Content); err != nil {
		return nil, err
	}

	return &Reply{
		Content:    r.Content,
		Usage:      r.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockOracle) ModelID() string {
	return "mock"
}

// AddReply appends a canned reply to the queue.
func (m *MockOracle) AddReply(r MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
}

// CallCount returns the number of Ask calls made.
func (m *MockOracle) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
