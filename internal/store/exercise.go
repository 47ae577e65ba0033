package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathpath/ent"
	"github.com/abhisek/mathpath/ent/exercise"
	"github.com/abhisek/mathpath/internal/difficulty"
)

// exerciseRepo implements ExerciseRepo using the ent client.
type exerciseRepo struct {
	client *ent.Client
	now    func() time.Time
}

func (r *exerciseRepo) GetExercise(ctx context.Context, id string) (*Exercise, error) {
	e, err := r.client.Exercise.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("exercise %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query exercise: %w", err)
	}
	return entExerciseToExercise(e), nil
}

func (r *exerciseRepo) InsertExercise(ctx context.Context, ex *Exercise) error {
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = r.now()
	}
	_, err := r.client.Exercise.Create().
		SetID(ex.ID).
		SetSubtopicID(ex.SubtopicID).
		SetDifficulty(exercise.Difficulty(ex.Difficulty)).
		SetQuestion(ex.Question).
		SetCorrectAnswer(ex.CorrectAnswer).
		SetExplanation(ex.Explanation).
		SetHint(ex.Hint).
		SetCreatedAt(ex.CreatedAt.UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

func (r *exerciseRepo) ListExercises(ctx context.Context, subtopicID string, tier difficulty.Tier, limit int) ([]Exercise, error) {
	q := r.client.Exercise.Query().
		Where(exercise.SubtopicID(subtopicID))
	if tier != "" {
		q = q.Where(exercise.DifficultyEQ(exercise.Difficulty(tier)))
	}
	q = q.Order(ent.Asc(exercise.FieldCreatedAt, exercise.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	out := make([]Exercise, 0, len(rows))
	for _, e := range rows {
		out = append(out, *entExerciseToExercise(e))
	}
	return out, nil
}

func entExerciseToExercise(e *ent.Exercise) *Exercise {
	return &Exercise{
		ID:            e.ID,
		SubtopicID:    e.SubtopicID,
		Difficulty:    difficulty.Tier(e.Difficulty),
		Question:      e.Question,
		CorrectAnswer: e.CorrectAnswer,
		Explanation:   e.Explanation,
		Hint:          e.Hint,
		CreatedAt:     e.CreatedAt.UTC(),
	}
}
