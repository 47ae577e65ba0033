package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/oracle"
	"github.com/abhisek/mathpath/internal/problemgen"
	"github.com/abhisek/mathpath/internal/store"
)

// PlanRequest describes the session to plan.
type PlanRequest struct {
	UserID       string
	SubtopicID   string
	SubtopicName string
	Start        difficulty.State
	Count        int
	Duration     time.Duration
}

// DefaultPlanTimeout bounds the generator phase of BuildPlan.
const DefaultPlanTimeout = 10 * time.Second

// Planner builds session plans. Exercises come from the generator; when it
// is missing, degraded, failing or slower than the plan timeout the plan is
// completed from stored exercises, and failing that from a default
// difficulty ladder. BuildPlan never fails because content is unavailable.
type Planner struct {
	gen       problemgen.Generator
	exercises store.ExerciseRepo
	logger    *slog.Logger
	timeout   time.Duration
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithPlanTimeout bounds the time spent asking the generator. Values <= 0
// keep DefaultPlanTimeout.
func WithPlanTimeout(d time.Duration) PlannerOption {
	return func(p *Planner) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewPlanner creates a Planner. gen and exercises may be nil.
func NewPlanner(gen problemgen.Generator, exercises store.ExerciseRepo, logger *slog.Logger, opts ...PlannerOption) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Planner{gen: gen, exercises: exercises, logger: logger, timeout: DefaultPlanTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BuildPlan creates a plan for req.
func (p *Planner) BuildPlan(ctx context.Context, req PlanRequest) (*Plan, error) {
	if req.Count <= 0 {
		req.Count = DefaultExerciseCount
	}
	if req.Duration <= 0 {
		req.Duration = DefaultSessionDuration
	}
	if !req.Start.Tier.Valid() {
		req.Start = difficulty.NewState(difficulty.TierEasy, 1)
	}

	tiers := ladder(req.Start.Tier, req.Count)
	plan := &Plan{
		UserID:     req.UserID,
		SubtopicID: req.SubtopicID,
		Start:      req.Start,
		Duration:   req.Duration,
		Exercises:  make([]SessionExercise, 0, req.Count),
		Source:     SourceOracle,
	}

	p.fromGenerator(ctx, req, tiers, plan)
	if len(plan.Exercises) < req.Count {
		plan.Source = SourceStored
		p.fromStore(ctx, req, tiers, plan)
	}
	if len(plan.Exercises) < req.Count {
		plan.Source = SourceDefault
		for _, t := range tiers[len(plan.Exercises):] {
			plan.Exercises = append(plan.Exercises, SessionExercise{Difficulty: t})
		}
	}

	p.logger.Info("session plan built",
		"user_id", req.UserID,
		"subtopic_id", req.SubtopicID,
		"exercises", len(plan.Exercises),
		"source", plan.Source)
	return plan, nil
}

func (p *Planner) fromGenerator(ctx context.Context, req PlanRequest, tiers []difficulty.Tier, plan *Plan) {
	if p.gen == nil {
		return
	}

	// Retries under a rate limit must not hold session start.
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var prior []string
	for i, t := range tiers {
		ex, err := p.gen.Generate(ctx, problemgen.GenerateInput{
			SubtopicID:     req.SubtopicID,
			SubtopicName:   req.SubtopicName,
			Tier:           t,
			SubLevel:       subLevelFor(req.Start, t),
			PriorQuestions: prior,
		})
		if err != nil {
			p.logger.Warn("exercise generation failed, falling back",
				"subtopic_id", req.SubtopicID,
				"generated", i,
				"degraded", oracle.IsDegraded(err),
				"timed_out", errors.Is(err, context.DeadlineExceeded),
				"error", err)
			return
		}
		prior = append(prior, ex.Question)
		plan.Exercises = append(plan.Exercises, fromExercise(ex))
	}
}

func (p *Planner) fromStore(ctx context.Context, req PlanRequest, tiers []difficulty.Tier, plan *Plan) {
	if p.exercises == nil {
		return
	}

	stored, err := p.exercises.ListExercises(ctx, req.SubtopicID, "", 0)
	if err != nil {
		p.logger.Warn("loading stored exercises failed", "subtopic_id", req.SubtopicID, "error", err)
		return
	}

	used := make(map[string]bool, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		used[ex.ExerciseID] = true
	}
	byTier := make(map[difficulty.Tier][]store.Exercise)
	for _, ex := range stored {
		if !used[ex.ID] {
			byTier[ex.Difficulty] = append(byTier[ex.Difficulty], ex)
		}
	}

	for _, t := range tiers[len(plan.Exercises):] {
		ex, ok := takeNearest(byTier, t)
		if !ok {
			return
		}
		plan.Exercises = append(plan.Exercises, fromExercise(&ex))
	}
}

// takeNearest removes and returns a stored exercise at tier t, or at the
// closest tier that has one left.
func takeNearest(byTier map[difficulty.Tier][]store.Exercise, t difficulty.Tier) (store.Exercise, bool) {
	for dist := range len(difficulty.Tiers) {
		for _, cand := range difficulty.Tiers {
			d := cand.Index() - t.Index()
			if d != dist && d != -dist {
				continue
			}
			if list := byTier[cand]; len(list) > 0 {
				byTier[cand] = list[1:]
				return list[0], true
			}
		}
	}
	return store.Exercise{}, false
}

func fromExercise(ex *store.Exercise) SessionExercise {
	return SessionExercise{
		ExerciseID: ex.ID,
		Question:   ex.Question,
		Difficulty: ex.Difficulty,
	}
}

// subLevelFor keeps the starting sub-level within the starting tier and
// begins higher tiers at level 1.
func subLevelFor(start difficulty.State, t difficulty.Tier) int {
	if t == start.Tier {
		return start.SubLevel
	}
	return 1
}
