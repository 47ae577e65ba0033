// Package attempt checks learner submissions, records them and derives the
// performance window the difficulty adjuster works from.
package attempt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/problemgen"
	"github.com/abhisek/mathpath/internal/store"
)

// Submission is one answer as sent by the learner.
type Submission struct {
	ExerciseID       string
	UserID           string
	UserAnswer       *string
	HintsUsed        int
	TimeSpentSeconds *int
}

// Evaluation is the outcome of a recorded submission.
type Evaluation struct {
	IsCorrect     bool
	CorrectAnswer string
	Explanation   string
	Exercise      *store.Exercise
	Attempt       *store.Attempt

	// History is the window over attempts made before this one.
	History Window
}

// Evaluator checks and records submissions.
type Evaluator struct {
	exercises store.ExerciseRepo
	attempts  store.AttemptRepo
	lookback  int
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLookback sets how many recent attempts a Window covers.
func WithLookback(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.lookback = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithClock overrides the time source used for attempt timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) { e.now = now }
}

// NewEvaluator creates an Evaluator over the given repositories.
func NewEvaluator(exercises store.ExerciseRepo, attempts store.AttemptRepo, opts ...Option) *Evaluator {
	e := &Evaluator{
		exercises: exercises,
		attempts:  attempts,
		lookback:  DefaultLookback,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate checks a submission against its exercise and appends exactly one
// attempt. The history window is read before the insert so it only holds
// earlier attempts.
//
// On ErrPersistence the returned Evaluation is nil: correctness and the
// canonical answer are never revealed for an unrecorded attempt. Inserts are
// not retried.
func (e *Evaluator) Evaluate(ctx context.Context, sub Submission) (*Evaluation, error) {
	if err := validate(sub); err != nil {
		return nil, err
	}

	ex, err := e.exercises.GetExercise(ctx, sub.ExerciseID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrExerciseNotFound, sub.ExerciseID)
	}
	if err != nil {
		return nil, fmt.Errorf("load exercise: %w", err)
	}

	correct := problemgen.CheckAnswer(sub.UserAnswer, ex.CorrectAnswer)

	history, err := e.Window(ctx, sub.UserID, ex.SubtopicID, ex.Difficulty)
	if err != nil {
		return nil, err
	}

	a := &store.Attempt{
		ExerciseID:       ex.ID,
		UserID:           sub.UserID,
		UserAnswer:       sub.UserAnswer,
		IsCorrect:        correct,
		HintsUsed:        sub.HintsUsed,
		TimeSpentSeconds: sub.TimeSpentSeconds,
		CreatedAt:        e.now(),
	}
	if err := e.attempts.InsertAttempt(ctx, a); err != nil {
		e.logger.Error("attempt insert failed",
			"exercise_id", ex.ID,
			"user_id", sub.UserID,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	e.logger.Debug("attempt recorded",
		"attempt_id", a.ID,
		"exercise_id", ex.ID,
		"user_id", sub.UserID,
		"correct", correct,
		"hints_used", sub.HintsUsed,
	)

	return &Evaluation{
		IsCorrect:     correct,
		CorrectAnswer: ex.CorrectAnswer,
		Explanation:   ex.Explanation,
		Exercise:      ex,
		Attempt:       a,
		History:       history,
	}, nil
}

// Window loads the most recent attempts of userID in subtopicID and
// aggregates them relative to tier.
func (e *Evaluator) Window(ctx context.Context, userID, subtopicID string, tier difficulty.Tier) (Window, error) {
	recs, err := e.attempts.RecentAttempts(ctx, userID, subtopicID, e.lookback)
	if err != nil {
		return Window{}, fmt.Errorf("load history: %w", err)
	}
	return ComputeWindow(recs, tier), nil
}

func validate(sub Submission) error {
	switch {
	case sub.ExerciseID == "":
		return fmt.Errorf("%w: exerciseId is required", ErrInvalidSubmission)
	case sub.UserID == "":
		return fmt.Errorf("%w: userId is required", ErrInvalidSubmission)
	case sub.HintsUsed < 0:
		return fmt.Errorf("%w: hintsUsed must not be negative", ErrInvalidSubmission)
	case sub.TimeSpentSeconds != nil && *sub.TimeSpentSeconds < 0:
		return fmt.Errorf("%w: timeSpentSeconds must not be negative", ErrInvalidSubmission)
	}
	return nil
}
