package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/oracle"
	"github.com/abhisek/mathpath/internal/problemgen"
	"github.com/abhisek/mathpath/internal/store"
)

func exerciseReply(i int) oracle.MockReply {
	b, _ := json.Marshal(map[string]string{
		"question":    fmt.Sprintf("Solve x + %d = %d", i, 2*i),
		"answer":      fmt.Sprintf("x = %d", i),
		"answer_type": "expression",
		"hint":        "Subtract from both sides.",
		"explanation": fmt.Sprintf("x = %d - %d = %d", 2*i, i, i),
	})
	return oracle.MockReply{Content: b}
}

func openPlannerStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seed(t *testing.T, s *store.Store, id string, tier difficulty.Tier) {
	t.Helper()
	require.NoError(t, s.Exercises().InsertExercise(context.Background(), &store.Exercise{
		ID:            id,
		SubtopicID:    "linear-equations",
		Difficulty:    tier,
		Question:      "stored " + id,
		CorrectAnswer: "1",
		Explanation:   "because",
	}))
}

func planRequest(n int) PlanRequest {
	return PlanRequest{
		UserID:     "u1",
		SubtopicID: "linear-equations",
		Start:      difficulty.NewState(difficulty.TierEasy, 2),
		Count:      n,
	}
}

func TestPlanner_FromOracle(t *testing.T) {
	s := openPlannerStore(t)
	mock := oracle.NewMockOracle(exerciseReply(1), exerciseReply(2), exerciseReply(3))
	gen := problemgen.NewOracleGenerator(mock, s.Exercises(), problemgen.DefaultConfig())
	p := NewPlanner(gen, s.Exercises(), quietLogger())

	plan, err := p.BuildPlan(context.Background(), planRequest(3))
	require.NoError(t, err)
	assert.Equal(t, SourceOracle, plan.Source)
	require.Len(t, plan.Exercises, 3)
	assert.Equal(t, DefaultSessionDuration, plan.Duration)

	for i, ex := range plan.Exercises {
		assert.NotEmpty(t, ex.ExerciseID)
		assert.Equal(t, ladder(difficulty.TierEasy, 3)[i], ex.Difficulty)
	}
	// Later prompts carry earlier questions for dedup.
	assert.Contains(t, mock.Calls[2].Messages[0].Content, "Solve x + 1 = 2")
}

func TestPlanner_FallsBackOnDegradedOracle(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"rate limited", &oracle.ErrRateLimit{Err: errors.New("429")}},
		{"quota exhausted", &oracle.ErrQuotaExhausted{Err: errors.New("402")}},
		{"unavailable", &oracle.ErrUnavailable{Err: errors.New("503")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := openPlannerStore(t)
			seed(t, s, "e1", difficulty.TierEasy)
			seed(t, s, "m1", difficulty.TierMedium)
			seed(t, s, "h1", difficulty.TierHard)

			mock := oracle.NewMockOracle(exerciseReply(1), oracle.MockReply{Err: tc.err})
			gen := problemgen.NewOracleGenerator(mock, s.Exercises(), problemgen.DefaultConfig())
			p := NewPlanner(gen, s.Exercises(), quietLogger())

			plan, err := p.BuildPlan(context.Background(), planRequest(3))
			require.NoError(t, err)
			assert.Equal(t, SourceStored, plan.Source)
			require.Len(t, plan.Exercises, 3)

			assert.Equal(t, difficulty.TierEasy, plan.Exercises[0].Difficulty)
			assert.Equal(t, "m1", plan.Exercises[1].ExerciseID)
			assert.Equal(t, "h1", plan.Exercises[2].ExerciseID)
			assert.Equal(t, 2, mock.CallCount(), "no further oracle calls after a failure")
		})
	}
}

// stallingGenerator blocks until its context is done, like a generator
// sleeping through retry backoff on a rate limit.
type stallingGenerator struct {
	calls int
}

func (g *stallingGenerator) Generate(ctx context.Context, _ problemgen.GenerateInput) (*store.Exercise, error) {
	g.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestPlanner_SlowGeneratorFallsBackWithinTimeout(t *testing.T) {
	s := openPlannerStore(t)
	seed(t, s, "e1", difficulty.TierEasy)
	seed(t, s, "m1", difficulty.TierMedium)
	seed(t, s, "h1", difficulty.TierHard)

	gen := &stallingGenerator{}
	p := NewPlanner(gen, s.Exercises(), quietLogger(), WithPlanTimeout(50*time.Millisecond))

	start := time.Now()
	plan, err := p.BuildPlan(context.Background(), planRequest(3))
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, SourceStored, plan.Source)
	assert.Equal(t, []string{"e1", "m1", "h1"}, []string{
		plan.Exercises[0].ExerciseID, plan.Exercises[1].ExerciseID, plan.Exercises[2].ExerciseID,
	})
	assert.Equal(t, 1, gen.calls, "generation stops at the first failure")
}

func TestNewPlanner_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultPlanTimeout, NewPlanner(nil, nil, nil).timeout)
	assert.Equal(t, DefaultPlanTimeout, NewPlanner(nil, nil, nil, WithPlanTimeout(0)).timeout)
	assert.Equal(t, time.Second, NewPlanner(nil, nil, nil, WithPlanTimeout(time.Second)).timeout)
}

func TestPlanner_StoredUsesNearestTier(t *testing.T) {
	s := openPlannerStore(t)
	seed(t, s, "e1", difficulty.TierEasy)
	seed(t, s, "e2", difficulty.TierEasy)

	p := NewPlanner(nil, s.Exercises(), quietLogger())
	plan, err := p.BuildPlan(context.Background(), planRequest(3))
	require.NoError(t, err)

	assert.Equal(t, SourceDefault, plan.Source, "two stored exercises cannot fill three slots")
	require.Len(t, plan.Exercises, 3)
	assert.Equal(t, "e1", plan.Exercises[0].ExerciseID)
	assert.Equal(t, "e2", plan.Exercises[1].ExerciseID, "medium slot takes the nearest stored tier")
	assert.Empty(t, plan.Exercises[2].ExerciseID)
	assert.Equal(t, difficulty.TierHard, plan.Exercises[2].Difficulty)
}

func TestPlanner_DefaultLadderWithoutContent(t *testing.T) {
	mock := oracle.NewMockOracle(oracle.MockReply{Err: &oracle.ErrQuotaExhausted{}})
	gen := problemgen.NewOracleGenerator(mock, nil, problemgen.DefaultConfig())
	p := NewPlanner(gen, nil, quietLogger())

	req := planRequest(0)
	req.Start = difficulty.State{}
	plan, err := p.BuildPlan(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, SourceDefault, plan.Source)
	require.Len(t, plan.Exercises, DefaultExerciseCount)
	assert.Equal(t, difficulty.NewState(difficulty.TierEasy, 1), plan.Start)
	assert.Equal(t, tierStrings(ladder(difficulty.TierEasy, DefaultExerciseCount)), tierStrings(exerciseTiers(plan)))

	// The plan starts a session.
	m, _ := newTestManager(t)
	_, err = m.Start(*plan)
	require.NoError(t, err)
}

func exerciseTiers(p *Plan) []difficulty.Tier {
	out := make([]difficulty.Tier, len(p.Exercises))
	for i, ex := range p.Exercises {
		out[i] = ex.Difficulty
	}
	return out
}
