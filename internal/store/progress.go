package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathpath/ent"
	"github.com/abhisek/mathpath/ent/subtopicprogress"
	"github.com/abhisek/mathpath/internal/difficulty"
)

type progressRepo struct {
	client *ent.Client
	now    func() time.Time
}

func (r *progressRepo) GetProgress(ctx context.Context, userID, subtopicID string) (*Progress, error) {
	p, err := r.client.SubtopicProgress.Query().
		Where(
			subtopicprogress.UserID(userID),
			subtopicprogress.SubtopicID(subtopicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}

	return &Progress{
		UserID:     p.UserID,
		SubtopicID: p.SubtopicID,
		State:      difficulty.NewState(difficulty.Tier(p.Tier), p.SubLevel),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}, nil
}

func (r *progressRepo) UpsertProgress(ctx context.Context, p Progress) error {
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = r.now()
	}
	err := r.client.SubtopicProgress.Create().
		SetUserID(p.UserID).
		SetSubtopicID(p.SubtopicID).
		SetTier(subtopicprogress.Tier(p.State.Tier)).
		SetSubLevel(p.State.SubLevel).
		SetUpdatedAt(updated.UTC()).
		OnConflictColumns(subtopicprogress.FieldUserID, subtopicprogress.FieldSubtopicID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}
