package session

import (
	"context"
	"time"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/store"
)

// SummaryStore persists summaries of ended sessions.
// store.SessionRepo satisfies it.
type SummaryStore interface {
	SaveSessionSummary(ctx context.Context, s *store.SessionSummary) error
}

// Summary describes a finished session.
type Summary struct {
	SessionID       string               `json:"sessionId"`
	UserID          string               `json:"userId"`
	SubtopicID      string               `json:"subtopicId"`
	StartedAt       time.Time            `json:"startedAt"`
	EndedAt         time.Time            `json:"endedAt"`
	Elapsed         time.Duration        `json:"elapsed"`
	Total           int                  `json:"total"`
	Correct         int                  `json:"correct"`
	Accuracy        int                  `json:"accuracy"`
	FinalDifficulty difficulty.Tier      `json:"finalDifficulty"`
	Adaptations     int                  `json:"adaptations"`
	EndReason       string               `json:"endReason"`
	ByTier          difficulty.Breakdown `json:"byTier"`
	Readiness       Assessment           `json:"readiness"`
}

func buildSummary(s *ActiveSession, reason string, endedAt time.Time) *Summary {
	perf := s.Performance
	return &Summary{
		SessionID:       s.ID,
		UserID:          s.UserID,
		SubtopicID:      s.SubtopicID,
		StartedAt:       s.StartedAt,
		EndedAt:         endedAt,
		Elapsed:         s.Duration - s.Remaining,
		Total:           perf.Total,
		Correct:         perf.Correct,
		Accuracy:        perf.RecentAccuracy,
		FinalDifficulty: perf.CurrentDifficulty,
		Adaptations:     perf.AdaptationsMade,
		EndReason:       reason,
		ByTier:          s.ByTier.Clone(),
		Readiness:       AssessReadiness(perf.Correct, perf.Total, s.ByTier),
	}
}

// Record converts the summary to its stored form.
func (s *Summary) Record() *store.SessionSummary {
	return &store.SessionSummary{
		ID:              s.SessionID,
		UserID:          s.UserID,
		SubtopicID:      s.SubtopicID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		DurationSecs:    int(s.Elapsed / time.Second),
		Total:           s.Total,
		Correct:         s.Correct,
		FinalDifficulty: s.FinalDifficulty,
		Adaptations:     s.Adaptations,
		Readiness:       string(s.Readiness.Level),
		EndReason:       s.EndReason,
		ByTier:          s.ByTier,
	}
}
