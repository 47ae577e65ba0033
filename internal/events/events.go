// Package events publishes domain events (attempts, difficulty changes,
// finished sessions) to a message broker.
package events

import (
	"context"
	"time"
)

// Type is the routing key of an event.
type Type string

const (
	TypeAttemptEvaluated  Type = "attempt.evaluated"
	TypeDifficultyChanged Type = "difficulty.changed"
	TypeSessionEnded      Type = "session.ended"
)

// Event is the JSON envelope sent to the broker.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	UserID     string    `json:"userId"`
	SubtopicID string    `json:"subtopicId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data,omitempty"`
}

// AttemptEvaluated is the payload of TypeAttemptEvaluated.
type AttemptEvaluated struct {
	AttemptID  int64  `json:"attemptId"`
	ExerciseID string `json:"exerciseId"`
	IsCorrect  bool   `json:"isCorrect"`
	HintsUsed  int    `json:"hintsUsed"`
}

// DifficultyChanged is the payload of TypeDifficultyChanged.
type DifficultyChanged struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Source string `json:"source"`
}

// SessionEnded is the payload of TypeSessionEnded.
type SessionEnded struct {
	SessionID string `json:"sessionId"`
	Reason    string `json:"reason"`
	Total     int    `json:"total"`
	Correct   int    `json:"correct"`
	Readiness string `json:"readiness"`
}

// Publisher sends events. Implementations are safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
