package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathpath/ent"
	"github.com/abhisek/mathpath/ent/attempt"
	"github.com/abhisek/mathpath/ent/exercise"
	"github.com/abhisek/mathpath/internal/difficulty"
)

// attemptRepo implements AttemptRepo using the ent client. Rows are only
// ever created.
type attemptRepo struct {
	client *ent.Client
	now    func() time.Time
}

func (r *attemptRepo) InsertAttempt(ctx context.Context, a *Attempt) error {
	created := a.CreatedAt
	if created.IsZero() {
		created = r.now()
	}

	saved, err := r.client.Attempt.Create().
		SetExerciseID(a.ExerciseID).
		SetUserID(a.UserID).
		SetNillableUserAnswer(a.UserAnswer).
		SetIsCorrect(a.IsCorrect).
		SetHintsUsed(a.HintsUsed).
		SetNillableTimeSpentSeconds(a.TimeSpentSeconds).
		SetCreatedAt(created.UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}

	a.ID = int64(saved.ID)
	a.CreatedAt = saved.CreatedAt.UTC()
	return nil
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, userID, subtopicID string, limit int) ([]AttemptRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.client.Attempt.Query().
		Where(
			attempt.UserID(userID),
			attempt.HasExerciseWith(exercise.SubtopicID(subtopicID)),
		).
		WithExercise().
		Order(ent.Desc(attempt.FieldCreatedAt, attempt.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]AttemptRecord, 0, len(rows))
	for _, a := range rows {
		rec := AttemptRecord{
			Attempt: Attempt{
				ID:               int64(a.ID),
				ExerciseID:       a.ExerciseID,
				UserID:           a.UserID,
				UserAnswer:       a.UserAnswer,
				IsCorrect:        a.IsCorrect,
				HintsUsed:        a.HintsUsed,
				TimeSpentSeconds: a.TimeSpentSeconds,
				CreatedAt:        a.CreatedAt.UTC(),
			},
		}
		if ex := a.Edges.Exercise; ex != nil {
			rec.Difficulty = difficulty.Tier(ex.Difficulty)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *attemptRepo) CountAttempts(ctx context.Context, userID, subtopicID string) (int, error) {
	n, err := r.client.Attempt.Query().
		Where(
			attempt.UserID(userID),
			attempt.HasExerciseWith(exercise.SubtopicID(subtopicID)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}
