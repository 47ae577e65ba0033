package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpath/internal/attempt"
	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/session"
	"github.com/abhisek/mathpath/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sources(s *store.Store) Sources {
	return Sources{
		Evaluator: attempt.NewEvaluator(s.Exercises(), s.Attempts()),
		Progress:  s.Progress(),
		Sessions:  s.Sessions(),
		Attempts:  s.Attempts(),
	}
}

func TestBuild_Empty(t *testing.T) {
	s := openStore(t)

	r, err := Build(context.Background(), sources(s), "u", "fractions")
	require.NoError(t, err)
	assert.Equal(t, difficulty.NewState(difficulty.TierEasy, 1), r.State)
	assert.Equal(t, session.NotReady, r.Assessment.Level)
	assert.Zero(t, r.Attempts)
	assert.Empty(t, r.Sessions)

	out := ansi.Strip(Render(r, 0))
	assert.Contains(t, out, "Readiness: fractions")
	assert.Contains(t, out, "NOT-READY")
	assert.Contains(t, out, "no attempts")
}

func TestBuild_FromHistory(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for _, ex := range []store.Exercise{
		{ID: "e1", SubtopicID: "fractions", Difficulty: difficulty.TierEasy, CorrectAnswer: "1/2"},
		{ID: "m1", SubtopicID: "fractions", Difficulty: difficulty.TierMedium, CorrectAnswer: "3/4"},
	} {
		require.NoError(t, s.Exercises().InsertExercise(ctx, &ex))
	}

	ev := attempt.NewEvaluator(s.Exercises(), s.Attempts())
	submit := func(id, ans string) {
		_, err := ev.Evaluate(ctx, attempt.Submission{ExerciseID: id, UserID: "u", UserAnswer: &ans})
		require.NoError(t, err)
	}
	submit("e1", "1/2")
	submit("e1", "1/2")
	submit("m1", "3/4")
	submit("m1", "1/4")

	require.NoError(t, s.Progress().UpsertProgress(ctx, store.Progress{
		UserID: "u", SubtopicID: "fractions", State: difficulty.NewState(difficulty.TierMedium, 2),
	}))
	ended := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.Sessions().SaveSessionSummary(ctx, &store.SessionSummary{
		ID: "s1", UserID: "u", SubtopicID: "fractions", StartedAt: ended.Add(-15 * time.Minute), EndedAt: ended,
		Total: 4, Correct: 3, FinalDifficulty: difficulty.TierMedium, Readiness: "almost-ready", EndReason: "user",
	}))
	require.NoError(t, s.Sessions().SaveSessionSummary(ctx, &store.SessionSummary{
		ID: "s2", UserID: "u", SubtopicID: "decimals", StartedAt: ended, EndedAt: ended,
	}))

	r, err := Build(ctx, sources(s), "u", "fractions")
	require.NoError(t, err)
	assert.Equal(t, 4, r.Attempts)
	assert.Equal(t, session.AlmostReady, r.Assessment.Level)
	assert.InDelta(t, 75.0, r.Assessment.Percentage, 0.001)
	assert.Equal(t, []difficulty.Tier{difficulty.TierEasy}, r.Assessment.Strengths)
	require.Len(t, r.Sessions, 1, "other subtopics are filtered out")

	out := ansi.Strip(Render(r, 72))
	assert.Contains(t, out, "medium/2")
	assert.Contains(t, out, "Recent sessions")
	assert.Contains(t, out, "ALMOST-READY")
	assert.Contains(t, out, "3/4")
}
