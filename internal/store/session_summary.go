package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathpath/ent"
	"github.com/abhisek/mathpath/ent/sessionsummary"
	"github.com/abhisek/mathpath/internal/difficulty"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) SaveSessionSummary(ctx context.Context, s *SessionSummary) error {
	byTier := s.ByTier
	if byTier == nil {
		byTier = difficulty.Breakdown{}
	}

	_, err := r.client.SessionSummary.Create().
		SetID(s.ID).
		SetUserID(s.UserID).
		SetSubtopicID(s.SubtopicID).
		SetStartedAt(s.StartedAt.UTC()).
		SetEndedAt(s.EndedAt.UTC()).
		SetDurationSecs(s.DurationSecs).
		SetTotal(s.Total).
		SetCorrect(s.Correct).
		SetFinalDifficulty(string(s.FinalDifficulty)).
		SetAdaptations(s.Adaptations).
		SetReadiness(s.Readiness).
		SetEndReason(s.EndReason).
		SetByTier(byTier).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session summary: %w", err)
	}
	return nil
}

func (r *sessionRepo) ListSessionSummaries(ctx context.Context, userID string, limit int) ([]SessionSummary, error) {
	q := r.client.SessionSummary.Query().
		Where(sessionsummary.UserID(userID)).
		Order(ent.Desc(sessionsummary.FieldEndedAt, sessionsummary.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	out := make([]SessionSummary, 0, len(rows))
	for _, s := range rows {
		out = append(out, SessionSummary{
			ID:              s.ID,
			UserID:          s.UserID,
			SubtopicID:      s.SubtopicID,
			StartedAt:       s.StartedAt.UTC(),
			EndedAt:         s.EndedAt.UTC(),
			DurationSecs:    s.DurationSecs,
			Total:           s.Total,
			Correct:         s.Correct,
			FinalDifficulty: difficulty.Tier(s.FinalDifficulty),
			Adaptations:     s.Adaptations,
			Readiness:       s.Readiness,
			EndReason:       s.EndReason,
			ByTier:          s.ByTier,
		})
	}
	return out, nil
}
