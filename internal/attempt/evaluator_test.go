package attempt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpath/internal/difficulty"
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

func seed(t *testing.T, s *store.Store, ex store.Exercise) {
	t.Helper()
	require.NoError(t, s.Exercises().InsertExercise(context.Background(), &ex))
}

func answer(s string) *string { return &s }

// failingAttempts records nothing and fails every insert.
type failingAttempts struct {
	store.AttemptRepo
}

func (failingAttempts) InsertAttempt(context.Context, *store.Attempt) error {
	return errors.New("disk I/O error")
}

func TestEvaluate_AnswerEquivalence(t *testing.T) {
	s := openStore(t)
	seed(t, s, store.Exercise{ID: "roots", SubtopicID: "quadratics", Difficulty: difficulty.TierMedium,
		CorrectAnswer: "x = 3, -3", Explanation: "Square root both sides."})
	ev := NewEvaluator(s.Exercises(), s.Attempts())
	ctx := context.Background()

	tests := []struct {
		input string
		want  bool
	}{
		{"X=3,-3", true},
		{"x = 3, −3", true},
		{"x=3,-3 ", true},
		{"x=3", false},
	}
	for _, tc := range tests {
		res, err := ev.Evaluate(ctx, Submission{ExerciseID: "roots", UserID: "u1", UserAnswer: answer(tc.input)})
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, res.IsCorrect, tc.input)
		assert.Equal(t, "x = 3, -3", res.CorrectAnswer)
		assert.Equal(t, "Square root both sides.", res.Explanation)
	}

	n, err := s.Attempts().CountAttempts(ctx, "u1", "quadratics")
	require.NoError(t, err)
	assert.Equal(t, len(tests), n, "every submission is recorded")
}

func TestEvaluate_MissingAnswerIsIncorrect(t *testing.T) {
	s := openStore(t)
	seed(t, s, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy, CorrectAnswer: "12"})
	ev := NewEvaluator(s.Exercises(), s.Attempts())

	res, err := ev.Evaluate(context.Background(), Submission{ExerciseID: "e", UserID: "u"})
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Nil(t, res.Attempt.UserAnswer)
}

func TestEvaluate_Validation(t *testing.T) {
	s := openStore(t)
	ev := NewEvaluator(s.Exercises(), s.Attempts())
	negative := -1

	for _, sub := range []Submission{
		{UserID: "u"},
		{ExerciseID: "e"},
		{ExerciseID: "e", UserID: "u", HintsUsed: -1},
		{ExerciseID: "e", UserID: "u", TimeSpentSeconds: &negative},
	} {
		_, err := ev.Evaluate(context.Background(), sub)
		assert.ErrorIs(t, err, ErrInvalidSubmission, "%+v", sub)
	}
}

func TestEvaluate_ExerciseNotFound(t *testing.T) {
	s := openStore(t)
	ev := NewEvaluator(s.Exercises(), s.Attempts())

	res, err := ev.Evaluate(context.Background(), Submission{ExerciseID: "ghost", UserID: "u", UserAnswer: answer("1")})
	assert.ErrorIs(t, err, ErrExerciseNotFound)
	assert.Nil(t, res)
}

func TestEvaluate_PersistenceFailureRevealsNothing(t *testing.T) {
	s := openStore(t)
	seed(t, s, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy,
		CorrectAnswer: "12", Explanation: "3 * 4"})
	ctx := context.Background()

	ev := NewEvaluator(s.Exercises(), failingAttempts{AttemptRepo: s.Attempts()})
	res, err := ev.Evaluate(ctx, Submission{ExerciseID: "e", UserID: "u", UserAnswer: answer("12")})

	require.ErrorIs(t, err, ErrPersistence)
	assert.Nil(t, res, "no evaluation may be returned")
	assert.NotContains(t, err.Error(), "12", "error must not leak the answer")

	n, err := s.Attempts().CountAttempts(ctx, "u", "st")
	require.NoError(t, err)
	assert.Zero(t, n)

	// A resubmission against a healthy store counts exactly once.
	ok := NewEvaluator(s.Exercises(), s.Attempts())
	res, err = ok.Evaluate(ctx, Submission{ExerciseID: "e", UserID: "u", UserAnswer: answer("12")})
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)

	n, err = s.Attempts().CountAttempts(ctx, "u", "st")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEvaluate_StreakMonotonicity(t *testing.T) {
	s := openStore(t)
	seed(t, s, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy, CorrectAnswer: "7"})
	ev := NewEvaluator(s.Exercises(), s.Attempts())
	ctx := context.Background()

	for n := 1; n <= 5; n++ {
		res, err := ev.Evaluate(ctx, Submission{ExerciseID: "e", UserID: "u", UserAnswer: answer("7")})
		require.NoError(t, err)
		w := res.Recommend(1).Window
		assert.Equal(t, n, w.ConsecutiveCorrect)
		assert.Zero(t, w.ConsecutiveWrong)
	}

	res, err := ev.Evaluate(ctx, Submission{ExerciseID: "e", UserID: "u", UserAnswer: answer("8")})
	require.NoError(t, err)
	w := res.Recommend(1).Window
	assert.Zero(t, w.ConsecutiveCorrect)
	assert.Equal(t, 1, w.ConsecutiveWrong)
}

func TestEvaluate_HistoryExcludesCurrentAttempt(t *testing.T) {
	s := openStore(t)
	seed(t, s, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy, CorrectAnswer: "7"})
	ev := NewEvaluator(s.Exercises(), s.Attempts())

	res, err := ev.Evaluate(context.Background(), Submission{ExerciseID: "e", UserID: "u", UserAnswer: answer("7")})
	require.NoError(t, err)
	assert.Zero(t, res.History.ByTier.Totals().Total)
	assert.Zero(t, res.History.ConsecutiveCorrect)
}

func TestEvaluate_LookbackBoundsWindow(t *testing.T) {
	s := openStore(t)
	seed(t, s, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy, CorrectAnswer: "7"})
	ev := NewEvaluator(s.Exercises(), s.Attempts(), WithLookback(3))
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := ev.Evaluate(ctx, Submission{ExerciseID: "e", UserID: "u", UserAnswer: answer("7")})
		require.NoError(t, err)
	}

	w, err := ev.Window(ctx, "u", "st", difficulty.TierEasy)
	require.NoError(t, err)
	assert.Equal(t, 3, w.ByTier[difficulty.TierEasy].Total)
	assert.Equal(t, 3, w.ConsecutiveCorrect)
}

// Exercise E (medium, answer "12"), learner at medium/2: two correct answers
// hold, the third moves to medium/3, the fourth reaches hard/1.
func TestEndToEndProgression(t *testing.T) {
	s := openStore(t)
	seed(t, s, store.Exercise{ID: "E", SubtopicID: "arith", Difficulty: difficulty.TierMedium, CorrectAnswer: "12"})
	ev := NewEvaluator(s.Exercises(), s.Attempts())
	ctx := context.Background()

	steps := []struct {
		subLevel int
		want     difficulty.State
	}{
		{2, difficulty.State{Tier: difficulty.TierMedium, SubLevel: 2}},
		{2, difficulty.State{Tier: difficulty.TierMedium, SubLevel: 2}},
		{2, difficulty.State{Tier: difficulty.TierMedium, SubLevel: 3}},
		{3, difficulty.State{Tier: difficulty.TierHard, SubLevel: 1}},
	}

	for i, step := range steps {
		res, err := ev.Evaluate(ctx, Submission{ExerciseID: "E", UserID: "student", UserAnswer: answer("12")})
		require.NoError(t, err)
		require.True(t, res.IsCorrect)

		got := res.Recommend(step.subLevel)
		assert.Equal(t, step.want, got.Decision.State, "call %d", i+1)
		assert.Equal(t, i+1, got.Window.ConsecutiveCorrect, "call %d", i+1)
	}
}

func TestRecommend_InsightIncludesCurrentAttempt(t *testing.T) {
	s := openStore(t)
	seed(t, s, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierHard, CorrectAnswer: "1"})
	ev := NewEvaluator(s.Exercises(), s.Attempts())

	res, err := ev.Evaluate(context.Background(), Submission{ExerciseID: "e", UserID: "u", UserAnswer: answer("1"), HintsUsed: 2})
	require.NoError(t, err)

	r := res.Recommend(1)
	assert.Equal(t, difficulty.TierHard, r.Insight.CurrentDifficulty)
	assert.Equal(t, 100, r.Insight.SuccessRates[difficulty.TierHard])
	assert.Equal(t, difficulty.DirectionHold, r.Decision.Direction)
}
