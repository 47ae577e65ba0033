// Package report renders a learner's readiness for one subtopic in the
// terminal.
package report

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpath/internal/attempt"
	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/session"
	"github.com/abhisek/mathpath/internal/store"
)

// DefaultWidth is used when the caller has no terminal width.
const DefaultWidth = 64

// maxSessions bounds the recent-sessions table.
const maxSessions = 5

// Report is everything shown for one user and subtopic.
type Report struct {
	UserID     string
	SubtopicID string
	State      difficulty.State
	Attempts   int
	ByTier     difficulty.Breakdown
	Assessment session.Assessment
	Sessions   []store.SessionSummary
}

// Sources are the stores a report is built from.
type Sources struct {
	Evaluator *attempt.Evaluator
	Progress  store.ProgressRepo
	Sessions  store.SessionRepo
	Attempts  store.AttemptRepo
}

// Build gathers the report for userID in subtopicID.
func Build(ctx context.Context, src Sources, userID, subtopicID string) (*Report, error) {
	r := &Report{
		UserID:     userID,
		SubtopicID: subtopicID,
		State:      difficulty.NewState(difficulty.TierEasy, 1),
	}

	p, err := src.Progress.GetProgress(ctx, userID, subtopicID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if p != nil {
		r.State = p.State
	}

	w, err := src.Evaluator.Window(ctx, userID, subtopicID, r.State.Tier)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	r.ByTier = w.ByTier
	totals := w.ByTier.Totals()
	r.Assessment = session.AssessReadiness(totals.Correct, totals.Total, w.ByTier)

	if r.Attempts, err = src.Attempts.CountAttempts(ctx, userID, subtopicID); err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	all, err := src.Sessions.ListSessionSummaries(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	for _, s := range all {
		if s.SubtopicID != subtopicID {
			continue
		}
		r.Sessions = append(r.Sessions, s)
		if len(r.Sessions) == maxSessions {
			break
		}
	}
	return r, nil
}

// Render draws r in a bordered card width columns wide.
func Render(r *Report, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	inner := width - 6

	sections := []string{
		titleStyle.Render("Readiness: " + r.SubtopicID),
		subtitleStyle.Render(fmt.Sprintf("%s · level %s · %d attempts", r.UserID, r.State, r.Attempts)),
		"",
		levelStyle(string(r.Assessment.Level)).Render(strings.ToUpper(string(r.Assessment.Level))),
		bar("overall", 8, r.Assessment.Percentage, inner),
		"",
	}

	for _, t := range difficulty.Tiers {
		ts := r.ByTier[t]
		if ts.Total == 0 {
			sections = append(sections, labelStyle.Width(8).Render(string(t))+"  "+dimStyle.Render("no attempts"))
			continue
		}
		sections = append(sections, bar(string(t), 8, ts.Rate()*100, inner))
	}

	sections = append(sections, "", lipgloss.NewStyle().Width(inner).Render(r.Assessment.SpecificFeedback))

	if len(r.Sessions) > 0 {
		sections = append(sections, "", titleStyle.Render("Recent sessions"))
		for _, s := range r.Sessions {
			sections = append(sections, dimStyle.Render(fmt.Sprintf("%s  %2d/%-2d  %-6s  %-12s  %s",
				s.EndedAt.Local().Format("2006-01-02 15:04"),
				s.Correct, s.Total,
				s.FinalDifficulty,
				s.Readiness,
				s.EndReason,
			)))
		}
	}

	return cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
