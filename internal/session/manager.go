package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/events"
	"github.com/abhisek/mathpath/internal/store"
)

// Adaptation thresholds. Accuracy values are percentages.
const (
	strugglingWrongStreak = 2
	strugglingAccuracy    = 40
	excellingStreak       = 3
	excellingAccuracy     = 80
	comebackAccuracy      = 60
	improvingStreak       = 2

	lowTimeThreshold = 2 * time.Minute
	fillerChance     = 0.05
)

var milestones = []int{90, 50}

// ExerciseSource lists stored exercises. store.ExerciseRepo satisfies it.
type ExerciseSource interface {
	ListExercises(ctx context.Context, subtopicID string, tier difficulty.Tier, limit int) ([]store.Exercise, error)
}

// Manager owns at most one ActiveSession. All methods are safe for
// concurrent use; the ticker started by Run and request handlers share it.
type Manager struct {
	mu      sync.Mutex
	session *ActiveSession

	throttle  *Throttle
	rng       *rand.Rand
	now       func() time.Time
	newID     func() string
	summaries SummaryStore
	exercises ExerciseSource
	publisher events.Publisher
	logger    *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithRand sets the random source used to pick tips.
func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) { m.rng = rng }
}

// WithCooldown sets the minimum spacing between tips.
func WithCooldown(d time.Duration) Option {
	return func(m *Manager) { m.throttle = NewThrottle(d) }
}

// WithSummaryStore persists summaries of ended sessions.
func WithSummaryStore(s SummaryStore) Option {
	return func(m *Manager) { m.summaries = s }
}

// WithExercises sets where replacement exercises come from when the live
// difficulty moves away from the plan.
func WithExercises(src ExerciseSource) Option {
	return func(m *Manager) { m.exercises = src }
}

// WithPublisher publishes session.ended events.
func WithPublisher(p events.Publisher) Option {
	return func(m *Manager) { m.publisher = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates an idle Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		throttle:  NewThrottle(DefaultTipCooldown),
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now:       time.Now,
		newID:     uuid.NewString,
		publisher: events.Nop{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start begins a session from plan.
func (m *Manager) Start(plan Plan) (*ActiveSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		return nil, ErrSessionActive
	}
	if plan.Duration <= 0 {
		plan.Duration = DefaultSessionDuration
	}
	start := plan.Start.Tier
	if !start.Valid() {
		start = difficulty.TierEasy
	}

	m.session = &ActiveSession{
		ID:         m.newID(),
		UserID:     plan.UserID,
		SubtopicID: plan.SubtopicID,
		Status:     StatusRunning,
		Exercises:  append([]SessionExercise(nil), plan.Exercises...),
		Performance: PerformanceSnapshot{
			CurrentDifficulty: start,
		},
		Duration:   plan.Duration,
		Remaining:  plan.Duration,
		StartedAt:  m.now(),
		ByTier:     difficulty.Breakdown{},
		milestones: map[int]bool{},
	}
	m.throttle.Reset()

	m.logger.Info("session started",
		"session_id", m.session.ID,
		"user_id", plan.UserID,
		"subtopic_id", plan.SubtopicID,
		"exercises", len(plan.Exercises),
		"source", plan.Source)

	return m.session.clone(), nil
}

// Current returns a copy of the live session.
func (m *Manager) Current() (*ActiveSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil, ErrNoActiveSession
	}
	return m.session.clone(), nil
}

// MarkExerciseComplete records the outcome of the current exercise and
// evaluates the adaptation rules. It returns nil when no session is running
// or when neither a difficulty change nor a tip results.
func (m *Manager) MarkExerciseComplete(wasCorrect bool, hintsUsed int) *AdaptationResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if s == nil || s.Status != StatusRunning {
		return nil
	}

	if i := s.next(); i >= 0 {
		s.Exercises[i].Completed = true
		s.Exercises[i].Correct = wasCorrect
		s.Exercises[i].HintsUsed = hintsUsed
	}

	perf := &s.Performance
	prevAccuracy, prevTotal := perf.RecentAccuracy, perf.Total
	s.ByTier.Record(perf.CurrentDifficulty, wasCorrect)
	perf.record(wasCorrect)

	var (
		category TipCategory
		target   = perf.CurrentDifficulty
	)
	switch {
	case perf.ConsecutiveWrong >= strugglingWrongStreak ||
		(perf.RecentAccuracy < strugglingAccuracy && perf.ConsecutiveWrong >= 1):
		category = CategoryStruggling
		target = perf.CurrentDifficulty.Down()
	case perf.ConsecutiveCorrect >= excellingStreak && perf.RecentAccuracy >= excellingAccuracy:
		category = CategoryExcelling
		target = perf.CurrentDifficulty.Up()
	case wasCorrect && perf.ConsecutiveCorrect == 1 && prevTotal > 0 && prevAccuracy < comebackAccuracy:
		category = CategoryComeback
	case perf.ConsecutiveCorrect >= improvingStreak:
		category = CategoryImproving
	default:
		return nil
	}

	var res AdaptationResult
	if target != perf.CurrentDifficulty {
		m.logger.Info("session difficulty adapted",
			"session_id", s.ID,
			"from", perf.CurrentDifficulty,
			"to", target,
			"rule", category)

		perf.CurrentDifficulty = target
		perf.ConsecutiveCorrect = 0
		perf.ConsecutiveWrong = 0
		perf.AdaptationsMade++
		res.ShouldAdjustDifficulty = true
		res.NewDifficulty = target
	}

	now := m.now()
	if m.throttle.Allow(now) {
		tip := Tip(category, m.rng, now)
		s.Messages = append(s.Messages, tip)
		res.TutorTip = tip.Text
		res.TipType = tip.Type
	}

	if !res.ShouldAdjustDifficulty && res.TutorTip == "" {
		return nil
	}
	return &res
}

// Pause moves a running session to paused.
func (m *Manager) Pause() error {
	return m.transition(StatusRunning, StatusPaused)
}

// Resume moves a paused session back to running.
func (m *Manager) Resume() error {
	return m.transition(StatusPaused, StatusRunning)
}

func (m *Manager) transition(from, to Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ErrNoActiveSession
	}
	if m.session.Status != from {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.session.Status, to)
	}
	m.session.Status = to
	return nil
}

// End ends the session, persists its summary and discards it. The summary
// is returned even when persisting it fails.
func (m *Manager) End(ctx context.Context, reason string) (*Summary, error) {
	m.mu.Lock()
	s := m.detach()
	m.mu.Unlock()

	if s == nil {
		return nil, ErrNoActiveSession
	}
	return m.finish(ctx, s, reason)
}

// detach removes the live session. Callers hold m.mu.
func (m *Manager) detach() *ActiveSession {
	s := m.session
	m.session = nil
	if s != nil {
		s.Status = StatusEnded
	}
	return s
}

func (m *Manager) finish(ctx context.Context, s *ActiveSession, reason string) (*Summary, error) {
	sum := buildSummary(s, reason, m.now())

	m.logger.Info("session ended",
		"session_id", s.ID,
		"user_id", s.UserID,
		"reason", reason,
		"total", sum.Total,
		"correct", sum.Correct,
		"readiness", sum.Readiness.Level)

	err := m.publisher.Publish(ctx, events.Event{
		Type:       events.TypeSessionEnded,
		UserID:     s.UserID,
		SubtopicID: s.SubtopicID,
		Data: events.SessionEnded{
			SessionID: s.ID,
			Reason:    reason,
			Total:     sum.Total,
			Correct:   sum.Correct,
			Readiness: string(sum.Readiness.Level),
		},
	})
	if err != nil {
		m.logger.Warn("failed to publish session end", "session_id", s.ID, "error", err)
	}

	if m.summaries != nil {
		if err := m.summaries.SaveSessionSummary(ctx, sum.Record()); err != nil {
			m.logger.Error("failed to save session summary", "session_id", s.ID, "error", err)
			return sum, fmt.Errorf("save session summary: %w", err)
		}
	}
	return sum, nil
}

// AdaptedExercise returns the next incomplete planned exercise at the live
// session difficulty. When the live difficulty differs from the planned
// one, the planned content is replaced by an unused stored exercise at the
// live tier, or cleared so the client generates one. The replacement is
// kept in the plan.
func (m *Manager) AdaptedExercise(ctx context.Context) *SessionExercise {
	m.mu.Lock()
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return nil
	}
	idx := s.next()
	if idx < 0 {
		m.mu.Unlock()
		return nil
	}
	planned := s.Exercises[idx]
	live := s.Performance.CurrentDifficulty
	if planned.Difficulty == live {
		m.mu.Unlock()
		return &planned
	}
	id, subtopicID, used := s.ID, s.SubtopicID, s.exerciseIDs()
	m.mu.Unlock()

	swap := SessionExercise{Difficulty: live}
	if ex, ok := m.storedAt(ctx, subtopicID, live, used); ok {
		swap = fromExercise(&ex)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s = m.session
	if s == nil || s.ID != id {
		return nil
	}
	if s.next() != idx || s.Performance.CurrentDifficulty != live {
		// Moved on while the store was read; report without keeping.
		cur := s.next()
		if cur < 0 {
			return nil
		}
		ex := s.Exercises[cur]
		if ex.Difficulty != s.Performance.CurrentDifficulty {
			ex = SessionExercise{Difficulty: s.Performance.CurrentDifficulty}
		}
		return &ex
	}

	m.logger.Debug("exercise replaced at live difficulty",
		"session_id", id,
		"planned", planned.ExerciseID,
		"replacement", swap.ExerciseID,
		"difficulty", live)
	s.Exercises[idx] = swap
	return &swap
}

// storedAt returns the oldest stored exercise of subtopicID at tier t that
// is not in used.
func (m *Manager) storedAt(ctx context.Context, subtopicID string, t difficulty.Tier, used map[string]bool) (store.Exercise, bool) {
	if m.exercises == nil {
		return store.Exercise{}, false
	}
	list, err := m.exercises.ListExercises(ctx, subtopicID, t, 0)
	if err != nil {
		m.logger.Warn("loading replacement exercise failed", "subtopic_id", subtopicID, "difficulty", t, "error", err)
		return store.Exercise{}, false
	}
	for _, ex := range list {
		if !used[ex.ID] {
			return ex, true
		}
	}
	return store.Exercise{}, false
}

// idle reports whether the manager has no session.
func (m *Manager) idle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session == nil
}

// Tick advances the countdown by elapsed. Time only passes while running.
// When it reaches zero the session ends with ReasonTimeExpired; otherwise
// a proactive tip may be returned.
func (m *Manager) Tick(ctx context.Context, elapsed time.Duration) *TutorMessage {
	m.mu.Lock()
	s := m.session
	if s == nil || s.Status != StatusRunning {
		m.mu.Unlock()
		return nil
	}

	s.Remaining -= elapsed
	if s.Remaining <= 0 {
		s.Remaining = 0
		m.detach()
		m.mu.Unlock()

		_, _ = m.finish(ctx, s, ReasonTimeExpired)
		return nil
	}
	m.mu.Unlock()

	return m.ProactiveTip(m.now())
}

// ProactiveTip returns at most one time or progress based tip, by priority:
// low time, then progress milestones, then a rare filler. Candidates held
// back by the cooldown stay pending.
func (m *Manager) ProactiveTip(now time.Time) *TutorMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session
	if s == nil || s.Status != StatusRunning || !m.throttle.Ready(now) {
		return nil
	}

	var category TipCategory
	switch {
	case !s.lowTimeFired && s.Remaining <= lowTimeThreshold:
		s.lowTimeFired = true
		category = CategoryTimeLow
	case m.nextMilestone(s) > 0:
		reached := m.nextMilestone(s)
		for _, ms := range milestones {
			if ms <= reached {
				s.milestones[ms] = true
			}
		}
		category = CategoryMilestone
		if reached >= 90 {
			category = CategoryCelebration
		}
	case m.rng.Float64() < fillerChance:
		category = CategoryFiller
	default:
		return nil
	}

	m.throttle.Allow(now)
	tip := Tip(category, m.rng, now)
	s.Messages = append(s.Messages, tip)
	return &tip
}

// nextMilestone returns the highest unfired milestone reached, or 0.
func (m *Manager) nextMilestone(s *ActiveSession) int {
	pct := s.completion() * 100
	for _, ms := range milestones {
		if pct >= float64(ms) && !s.milestones[ms] {
			return ms
		}
	}
	return 0
}

// Run ticks the session once per second until ctx is cancelled or the
// session that was live when Run started is gone.
func (m *Manager) Run(ctx context.Context) {
	m.mu.Lock()
	if m.session == nil {
		m.mu.Unlock()
		return
	}
	id := m.session.ID
	m.mu.Unlock()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !m.isLive(id) {
				return
			}
			m.Tick(ctx, time.Second)
		}
	}
}

func (m *Manager) isLive(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil && m.session.ID == id
}
