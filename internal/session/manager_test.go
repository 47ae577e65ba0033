package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/events"
	"github.com/abhisek/mathpath/internal/store"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type summaryRecorder struct {
	saved []*store.SessionSummary
	err   error
}

func (r *summaryRecorder) SaveSessionSummary(_ context.Context, s *store.SessionSummary) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, s)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tierStrings(ts []difficulty.Tier) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

func newTestManager(t *testing.T, opts ...Option) (*Manager, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	base := []Option{
		WithClock(clock.Now),
		WithRand(rand.New(rand.NewPCG(7, 11))),
		WithLogger(quietLogger()),
	}
	return NewManager(append(base, opts...)...), clock
}

func testPlan(start difficulty.Tier, n int) Plan {
	exs := make([]SessionExercise, n)
	for i := range exs {
		exs[i] = SessionExercise{ExerciseID: string(rune('a' + i)), Difficulty: start}
	}
	return Plan{
		UserID:     "u1",
		SubtopicID: "linear-equations",
		Start:      difficulty.NewState(start, 1),
		Duration:   10 * time.Minute,
		Exercises:  exs,
	}
}

func TestManager_Lifecycle(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	assert.ErrorIs(t, m.Pause(), ErrNoActiveSession)
	_, err := m.End(ctx, ReasonUser)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	s, err := m.Start(testPlan(difficulty.TierEasy, 3))
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, s.Status)
	assert.Equal(t, 10*time.Minute, s.Remaining)

	_, err = m.Start(testPlan(difficulty.TierEasy, 3))
	assert.ErrorIs(t, err, ErrSessionActive)

	assert.ErrorIs(t, m.Resume(), ErrInvalidTransition)
	require.NoError(t, m.Pause())
	assert.ErrorIs(t, m.Pause(), ErrInvalidTransition)
	assert.Nil(t, m.MarkExerciseComplete(true, 0), "paused sessions ignore completions")
	require.NoError(t, m.Resume())

	sum, err := m.End(ctx, ReasonUser)
	require.NoError(t, err)
	assert.Equal(t, ReasonUser, sum.EndReason)

	_, err = m.Current()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.Nil(t, m.MarkExerciseComplete(true, 0))
	assert.Nil(t, m.AdaptedExercise(ctx))

	_, err = m.Start(testPlan(difficulty.TierEasy, 3))
	assert.NoError(t, err, "a new session may start after the previous one ended")
}

func TestManager_StrugglingRegressesTier(t *testing.T) {
	m, _ := newTestManager(t, WithCooldown(0))
	_, err := m.Start(testPlan(difficulty.TierMedium, 5))
	require.NoError(t, err)

	res := m.MarkExerciseComplete(false, 1)
	require.NotNil(t, res)
	assert.True(t, res.ShouldAdjustDifficulty)
	assert.Equal(t, difficulty.TierEasy, res.NewDifficulty)
	assert.Equal(t, TipGuidance, res.TipType)
	assert.NotEmpty(t, res.TutorTip)

	s, _ := m.Current()
	assert.Equal(t, difficulty.TierEasy, s.Performance.CurrentDifficulty)
	assert.Zero(t, s.Performance.ConsecutiveWrong, "streaks reset on a difficulty change")
	assert.Equal(t, 1, s.Performance.AdaptationsMade)

	// At the floor the tip still fires but nothing changes.
	res = m.MarkExerciseComplete(false, 0)
	require.NotNil(t, res)
	assert.False(t, res.ShouldAdjustDifficulty)
	assert.Equal(t, TipGuidance, res.TipType)
}

func TestManager_ExcellingAdvancesTier(t *testing.T) {
	m, _ := newTestManager(t, WithCooldown(0))
	_, err := m.Start(testPlan(difficulty.TierEasy, 5))
	require.NoError(t, err)

	assert.Nil(t, m.MarkExerciseComplete(true, 0), "one correct answer fires nothing")

	res := m.MarkExerciseComplete(true, 0)
	require.NotNil(t, res)
	assert.False(t, res.ShouldAdjustDifficulty)
	assert.Equal(t, TipEncouragement, res.TipType, "improving")

	res = m.MarkExerciseComplete(true, 0)
	require.NotNil(t, res)
	assert.True(t, res.ShouldAdjustDifficulty)
	assert.Equal(t, difficulty.TierMedium, res.NewDifficulty)
	assert.Equal(t, TipCelebration, res.TipType)

	// Without an exercise source the easy content is dropped so the client
	// generates a medium exercise.
	next := m.AdaptedExercise(context.Background())
	require.NotNil(t, next)
	assert.Empty(t, next.ExerciseID)
	assert.Empty(t, next.Question)
	assert.Equal(t, difficulty.TierMedium, next.Difficulty)

	s, _ := m.Current()
	assert.Equal(t, difficulty.TierMedium, s.Exercises[3].Difficulty)
	assert.Empty(t, s.Exercises[3].ExerciseID)
	assert.Equal(t, "e", s.Exercises[4].ExerciseID, "later slots are replaced when reached")
}

func TestManager_AdaptedExerciseUsesStoredAtLiveTier(t *testing.T) {
	st := openPlannerStore(t)
	seed(t, st, "m1", difficulty.TierMedium)
	seed(t, st, "m2", difficulty.TierMedium)
	seed(t, st, "h1", difficulty.TierHard)

	m, _ := newTestManager(t, WithCooldown(0), WithExercises(st.Exercises()))
	plan := testPlan(difficulty.TierEasy, 5)
	plan.Exercises[4].ExerciseID = "m1"
	_, err := m.Start(plan)
	require.NoError(t, err)
	ctx := context.Background()

	first := m.AdaptedExercise(ctx)
	require.NotNil(t, first)
	assert.Equal(t, "a", first.ExerciseID, "planned content is kept while the tier matches")

	for range 3 {
		m.MarkExerciseComplete(true, 0)
	}
	s, _ := m.Current()
	require.Equal(t, difficulty.TierMedium, s.Performance.CurrentDifficulty)

	next := m.AdaptedExercise(ctx)
	require.NotNil(t, next)
	assert.Equal(t, "m2", next.ExerciseID, "m1 is already in the plan")
	assert.Equal(t, "stored m2", next.Question)
	assert.Equal(t, difficulty.TierMedium, next.Difficulty)

	again := m.AdaptedExercise(ctx)
	assert.Equal(t, next, again, "the replacement is kept")

	m.MarkExerciseComplete(true, 0)
	s, _ = m.Current()
	assert.Equal(t, "m2", s.Exercises[3].ExerciseID)
	assert.Equal(t, 1, s.ByTier[difficulty.TierMedium].Total)
}

func TestManager_ComebackTip(t *testing.T) {
	m, _ := newTestManager(t, WithCooldown(0))
	_, err := m.Start(testPlan(difficulty.TierEasy, 5))
	require.NoError(t, err)

	m.MarkExerciseComplete(false, 0)
	m.MarkExerciseComplete(false, 0)
	res := m.MarkExerciseComplete(true, 0)
	require.NotNil(t, res)
	assert.False(t, res.ShouldAdjustDifficulty)
	assert.Equal(t, TipEncouragement, res.TipType)

	s, _ := m.Current()
	last := s.Messages[len(s.Messages)-1]
	assert.Equal(t, CategoryComeback, last.Category)
}

func TestManager_TipsThrottledMutationNot(t *testing.T) {
	m, clock := newTestManager(t)
	_, err := m.Start(testPlan(difficulty.TierEasy, 9))
	require.NoError(t, err)

	m.MarkExerciseComplete(true, 0)
	res := m.MarkExerciseComplete(true, 0)
	require.NotNil(t, res)
	require.NotEmpty(t, res.TutorTip)

	clock.Advance(30 * time.Second)
	res = m.MarkExerciseComplete(true, 0)
	require.NotNil(t, res, "difficulty still adapts inside the cooldown")
	assert.True(t, res.ShouldAdjustDifficulty)
	assert.Empty(t, res.TutorTip)

	// Two more correct at medium: improving, but still throttled and no change.
	m.MarkExerciseComplete(true, 0)
	assert.Nil(t, m.MarkExerciseComplete(true, 0))

	clock.Advance(3 * time.Minute)
	res = m.MarkExerciseComplete(true, 0)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.TutorTip)
}

func TestManager_SessionLifetimeAccuracy(t *testing.T) {
	m, _ := newTestManager(t, WithCooldown(0))
	_, err := m.Start(testPlan(difficulty.TierEasy, 10))
	require.NoError(t, err)

	outcomes := []bool{true, true, false, true, true, true, false}
	for _, ok := range outcomes {
		m.MarkExerciseComplete(ok, 0)
	}
	s, _ := m.Current()
	assert.Equal(t, 7, s.Performance.Total)
	assert.Equal(t, 5, s.Performance.Correct)
	assert.Equal(t, 71, s.Performance.RecentAccuracy)
	assert.Equal(t, 7, s.ByTier.Totals().Total)
}

func TestManager_TimerExpiry(t *testing.T) {
	summaries := &summaryRecorder{}
	pub := &events.Recorder{}
	m, _ := newTestManager(t, WithSummaryStore(summaries), WithPublisher(pub))
	ctx := context.Background()

	plan := testPlan(difficulty.TierEasy, 3)
	plan.Duration = 3 * time.Second
	_, err := m.Start(plan)
	require.NoError(t, err)

	m.Tick(ctx, time.Second)
	require.NoError(t, m.Pause())
	m.Tick(ctx, time.Minute)
	s, _ := m.Current()
	assert.Equal(t, 2*time.Second, s.Remaining, "time does not pass while paused")

	require.NoError(t, m.Resume())
	m.MarkExerciseComplete(true, 0)
	m.Tick(ctx, time.Second)
	m.Tick(ctx, time.Second)

	_, err = m.Current()
	assert.ErrorIs(t, err, ErrNoActiveSession)

	require.Len(t, summaries.saved, 1)
	rec := summaries.saved[0]
	assert.Equal(t, ReasonTimeExpired, rec.EndReason)
	assert.Equal(t, 3, rec.DurationSecs)
	assert.Equal(t, 1, rec.Total)
	assert.Equal(t, string(Ready), rec.Readiness)

	ended := pub.OfType(events.TypeSessionEnded)
	require.Len(t, ended, 1)
	assert.Equal(t, "u1", ended[0].UserID)
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, events.Event) error {
	return errors.New("broker unreachable")
}

func (failingPublisher) Close() error { return nil }

func TestManager_PublishFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	summaries := &summaryRecorder{}
	m, _ := newTestManager(t,
		WithSummaryStore(summaries),
		WithPublisher(failingPublisher{}),
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	_, err := m.Start(testPlan(difficulty.TierEasy, 2))
	require.NoError(t, err)

	sum, err := m.End(context.Background(), ReasonUser)
	require.NoError(t, err, "a broker failure does not fail End")
	require.NotNil(t, sum)
	assert.Len(t, summaries.saved, 1)
	assert.Contains(t, buf.String(), "failed to publish session end")
	assert.Contains(t, buf.String(), "broker unreachable")
}

func TestManager_EndReturnsSummaryWhenSaveFails(t *testing.T) {
	m, _ := newTestManager(t, WithSummaryStore(&summaryRecorder{err: errors.New("disk full")}))
	_, err := m.Start(testPlan(difficulty.TierEasy, 2))
	require.NoError(t, err)

	sum, err := m.End(context.Background(), ReasonUser)
	require.Error(t, err)
	require.NotNil(t, sum)

	_, err = m.Current()
	assert.ErrorIs(t, err, ErrNoActiveSession, "the live session is discarded regardless")
}

func TestManager_EndPersistsToStore(t *testing.T) {
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	m, _ := newTestManager(t, WithSummaryStore(st.Sessions()))
	_, err = m.Start(testPlan(difficulty.TierEasy, 4))
	require.NoError(t, err)
	for range 4 {
		m.MarkExerciseComplete(true, 0)
	}
	sum, err := m.End(context.Background(), ReasonCompleted)
	require.NoError(t, err)
	assert.Equal(t, Ready, sum.Readiness.Level)

	got, err := st.Sessions().ListSessionSummaries(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sum.SessionID, got[0].ID)
	assert.Equal(t, 4, got[0].Correct)
	assert.Equal(t, difficulty.TierMedium, got[0].FinalDifficulty)
}

func TestManager_ProactiveTipPriority(t *testing.T) {
	m, clock := newTestManager(t)
	ctx := context.Background()
	_, err := m.Start(testPlan(difficulty.TierEasy, 2))
	require.NoError(t, err)

	assert.Nil(t, m.MarkExerciseComplete(true, 0))

	// Both the low-time tip and the 50% milestone are due; time wins.
	tip := m.Tick(ctx, 8*time.Minute+time.Second)
	require.NotNil(t, tip)
	assert.Equal(t, CategoryTimeLow, tip.Category)

	assert.Nil(t, m.ProactiveTip(clock.Now()), "cooldown")

	clock.Advance(3 * time.Minute)
	tip = m.ProactiveTip(clock.Now())
	require.NotNil(t, tip)
	assert.Equal(t, CategoryMilestone, tip.Category)

	// Each fires once.
	clock.Advance(3 * time.Minute)
	for range 5 {
		if tip := m.ProactiveTip(clock.Now()); tip != nil {
			assert.Equal(t, CategoryFiller, tip.Category)
		}
		clock.Advance(3 * time.Minute)
	}
}

func TestManager_ProactiveMilestoneJump(t *testing.T) {
	m, clock := newTestManager(t)
	_, err := m.Start(testPlan(difficulty.TierEasy, 2))
	require.NoError(t, err)

	m.MarkExerciseComplete(true, 0)
	m.MarkExerciseComplete(true, 0) // improving tip uses the cooldown

	assert.Nil(t, m.ProactiveTip(clock.Now()))

	clock.Advance(3 * time.Minute)
	tip := m.ProactiveTip(clock.Now())
	require.NotNil(t, tip)
	assert.Equal(t, CategoryCelebration, tip.Category, "100% complete reports the 90% milestone")

	clock.Advance(3 * time.Minute)
	if tip := m.ProactiveTip(clock.Now()); tip != nil {
		assert.Equal(t, CategoryFiller, tip.Category, "50% milestone was consumed by the jump")
	}
}

func TestManager_FillerIsRare(t *testing.T) {
	m, clock := newTestManager(t, WithCooldown(0))
	plan := testPlan(difficulty.TierEasy, 0)
	plan.Duration = time.Hour
	_, err := m.Start(plan)
	require.NoError(t, err)

	fillers := 0
	for range 2000 {
		if tip := m.ProactiveTip(clock.Now()); tip != nil {
			assert.Equal(t, CategoryFiller, tip.Category)
			fillers++
		}
	}
	assert.Greater(t, fillers, 40)
	assert.Less(t, fillers, 200)
}

func TestManager_RunStopsWhenSessionEnds(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.Start(testPlan(difficulty.TierEasy, 1))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		m.Run(context.Background())
		close(done)
	}()

	_, err = m.End(context.Background(), ReasonUser)
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not stop after the session ended")
	}
}

func TestHub_OneManagerPerUser(t *testing.T) {
	h := NewHub(func(string) *Manager {
		m, _ := newTestManager(t)
		return m
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, ok := h.Lookup("u1")
	assert.False(t, ok)

	p1 := testPlan(difficulty.TierEasy, 1)
	m1, _, err := h.Start(ctx, p1)
	require.NoError(t, err)
	_, _, err = h.Start(ctx, p1)
	assert.ErrorIs(t, err, ErrSessionActive)

	p2 := testPlan(difficulty.TierEasy, 1)
	p2.UserID = "u2"
	m2, _, err := h.Start(ctx, p2)
	require.NoError(t, err)

	assert.NotSame(t, m1, m2)
	got, ok := h.Lookup("u1")
	require.True(t, ok)
	assert.Same(t, m1, got)

	h.EndAll(ctx, ReasonShutdown)
	_, err = m1.Current()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.Zero(t, h.Len(), "ended sessions leave no managers behind")
}

func TestHub_DropsManagersOfEndedSessions(t *testing.T) {
	h := NewHub(func(string) *Manager {
		m, _ := newTestManager(t)
		return m
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, _, err := h.Start(ctx, testPlan(difficulty.TierEasy, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())

	h.Release("u1")
	assert.Equal(t, 1, h.Len(), "a live session keeps its manager")

	_, err = m.End(ctx, ReasonUser)
	require.NoError(t, err)

	// The countdown goroutine releases the manager once it sees the end.
	assert.Eventually(t, func() bool { return h.Len() == 0 }, 3*time.Second, 10*time.Millisecond)

	_, ok := h.Lookup("u1")
	assert.False(t, ok)

	// A manager created but never started is dropped on lookup.
	h.Manager("u3")
	_, ok = h.Lookup("u3")
	assert.False(t, ok)
	assert.Zero(t, h.Len())
}
