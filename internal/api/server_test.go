package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpath/internal/attempt"
	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/events"
	"github.com/abhisek/mathpath/internal/session"
	"github.com/abhisek/mathpath/internal/store"
)

type testEnv struct {
	store  *store.Store
	server *Server
	events *events.Recorder
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, nil)
}

// newTestEnvWith builds a server over an in-memory store. wrap, when
// non-nil, decorates the attempt repository.
func newTestEnvWith(t *testing.T, wrap func(store.AttemptRepo) store.AttemptRepo) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	attempts := st.Attempts()
	if wrap != nil {
		attempts = wrap(attempts)
	}
	rec := &events.Recorder{}
	logger := quietLogger()
	hub := session.NewHub(func(string) *session.Manager {
		return session.NewManager(
			session.WithSummaryStore(st.Sessions()),
			session.WithExercises(st.Exercises()),
			session.WithPublisher(rec),
			session.WithLogger(logger),
		)
	})

	srv := NewServer(Options{ExerciseCount: 4}, Deps{
		Evaluator: attempt.NewEvaluator(st.Exercises(), attempts, attempt.WithLogger(logger)),
		Progress:  st.Progress(),
		Sessions:  hub,
		Planner:   session.NewPlanner(nil, st.Exercises(), logger),
		Publisher: rec,
		Logger:    logger,
	})
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	return &testEnv{store: st, server: srv, events: rec}
}

func (e *testEnv) seed(t *testing.T, ex store.Exercise) {
	t.Helper()
	require.NoError(t, e.store.Exercises().InsertExercise(context.Background(), &ex))
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCheckAnswer_Progression(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, store.Exercise{
		ID: "ex-1", SubtopicID: "arith", Difficulty: difficulty.TierMedium,
		Question: "3 * 4", CorrectAnswer: "12", Explanation: "3 fours make 12.",
	})

	steps := []struct {
		subLevel int
		wantTier difficulty.Tier
		wantSub  int
	}{
		{2, difficulty.TierMedium, 2},
		{2, difficulty.TierMedium, 2},
		{2, difficulty.TierMedium, 3},
		{3, difficulty.TierHard, 1},
	}
	for i, step := range steps {
		w := env.do(t, http.MethodPost, "/check-exercise-answer", map[string]any{
			"exerciseId":      "ex-1",
			"userId":          "student",
			"userAnswer":      " 12 ",
			"currentSubLevel": step.subLevel,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[checkAnswerResponse](t, w)
		assert.True(t, resp.IsCorrect)
		assert.Equal(t, "12", resp.CorrectAnswer)
		assert.Equal(t, step.wantTier, resp.SuggestedDifficulty, "call %d", i+1)
		assert.Equal(t, step.wantSub, resp.SuggestedSubLevel, "call %d", i+1)
		assert.Equal(t, i+1, resp.ConsecutiveCorrect)
	}

	w := env.do(t, http.MethodGet, "/users/student/subtopics/arith/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[progressResponse](t, w)
	assert.True(t, p.Stored)
	assert.Equal(t, difficulty.NewState(difficulty.TierHard, 1), p.State)

	assert.Len(t, env.events.OfType(events.TypeAttemptEvaluated), 4)
	changed := env.events.OfType(events.TypeDifficultyChanged)
	require.Len(t, changed, 2)
	last := changed[1].Data.(events.DifficultyChanged)
	assert.Equal(t, difficulty.NewState(difficulty.TierMedium, 3).String(), last.From)
	assert.Equal(t, difficulty.NewState(difficulty.TierHard, 1).String(), last.To)
}

func TestCheckAnswer_StoredSubLevel(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy, CorrectAnswer: "1"})
	require.NoError(t, env.store.Progress().UpsertProgress(context.Background(), store.Progress{
		UserID: "u", SubtopicID: "st", State: difficulty.NewState(difficulty.TierEasy, 2),
	}))

	for range 3 {
		w := env.do(t, http.MethodPost, "/check-exercise-answer", map[string]any{
			"exerciseId": "e", "userId": "u", "userAnswer": "1",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	p, err := env.store.Progress().GetProgress(context.Background(), "u", "st")
	require.NoError(t, err)
	assert.Equal(t, difficulty.NewState(difficulty.TierEasy, 3), p.State)
}

func TestCheckAnswer_CorrectAnswerKeepsHigherStoredProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seed(t, store.Exercise{
		ID: "ex-m", SubtopicID: "arith", Difficulty: difficulty.TierMedium,
		Question: "3 * 4", CorrectAnswer: "12",
	})
	hard3 := difficulty.NewState(difficulty.TierHard, 3)
	require.NoError(t, env.store.Progress().UpsertProgress(ctx, store.Progress{
		UserID: "student", SubtopicID: "arith", State: hard3,
	}))

	for range 2 {
		w := env.do(t, http.MethodPost, "/check-exercise-answer", map[string]any{
			"exerciseId": "ex-m", "userId": "student", "userAnswer": "12",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.True(t, decode[checkAnswerResponse](t, w).IsCorrect)

		p, err := env.store.Progress().GetProgress(ctx, "student", "arith")
		require.NoError(t, err)
		assert.Equal(t, hard3, p.State, "a correct answer never lowers stored progress")
	}
}

func TestShouldStore(t *testing.T) {
	medium2 := &store.Progress{State: difficulty.NewState(difficulty.TierMedium, 2)}
	decide := func(tier difficulty.Tier, sub int, dir difficulty.Direction) difficulty.Decision {
		return difficulty.Decision{State: difficulty.NewState(tier, sub), Direction: dir}
	}

	tests := []struct {
		name    string
		stored  *store.Progress
		correct bool
		d       difficulty.Decision
		want    bool
	}{
		{"first progress is stored", nil, true, decide(difficulty.TierEasy, 1, difficulty.DirectionHold), true},
		{"hold is not stored", medium2, true, decide(difficulty.TierMedium, 2, difficulty.DirectionHold), false},
		{"correct promotion above stored", medium2, true, decide(difficulty.TierMedium, 3, difficulty.DirectionUp), true},
		{"correct answer below stored", medium2, true, decide(difficulty.TierEasy, 2, difficulty.DirectionUp), false},
		{"wrong answer demotes below stored", medium2, false, decide(difficulty.TierMedium, 1, difficulty.DirectionDown), true},
		{"wrong answer above stored", medium2, false, decide(difficulty.TierHard, 1, difficulty.DirectionDown), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldStore(tc.stored, tc.correct, tc.d))
		})
	}
}

func TestCheckAnswer_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy, CorrectAnswer: "1"})

	tests := []struct {
		name string
		body any
		want int
	}{
		{"missing exercise id", map[string]any{"userId": "u"}, http.StatusBadRequest},
		{"missing user id", map[string]any{"exerciseId": "e"}, http.StatusBadRequest},
		{"negative hints", map[string]any{"exerciseId": "e", "userId": "u", "hintsUsed": -1}, http.StatusBadRequest},
		{"sub-level out of range", map[string]any{"exerciseId": "e", "userId": "u", "currentSubLevel": 4}, http.StatusBadRequest},
		{"unknown exercise", map[string]any{"exerciseId": "nope", "userId": "u"}, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/check-exercise-answer", tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[errorBody](t, w).Error)
		})
	}
}

type failingAttempts struct {
	store.AttemptRepo
}

func (failingAttempts) InsertAttempt(context.Context, *store.Attempt) error {
	return errors.New("disk I/O error")
}

func TestCheckAnswer_PersistenceFailureHidesAnswer(t *testing.T) {
	env := newTestEnvWith(t, func(r store.AttemptRepo) store.AttemptRepo {
		return failingAttempts{AttemptRepo: r}
	})
	env.seed(t, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy, CorrectAnswer: "secret-42"})

	w := env.do(t, http.MethodPost, "/check-exercise-answer", map[string]any{
		"exerciseId": "e", "userId": "u", "userAnswer": "7",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-42")
	assert.Empty(t, env.events.OfType(events.TypeAttemptEvaluated))
}

func TestAssessReadiness(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/readiness", map[string]any{
		"correctCount": 17,
		"totalCount":   20,
		"performanceByDifficulty": map[string]any{
			"easy":   map[string]int{"correct": 8, "total": 8},
			"medium": map[string]int{"correct": 7, "total": 8},
			"hard":   map[string]int{"correct": 2, "total": 4},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	a := decode[session.Assessment](t, w)
	assert.Equal(t, session.Ready, a.Level)
	assert.InDelta(t, 85.0, a.Percentage, 0.001)
	assert.Equal(t, []difficulty.Tier{difficulty.TierEasy, difficulty.TierMedium}, a.Strengths)
	assert.Equal(t, []difficulty.Tier{difficulty.TierHard}, a.WeakAreas)

	w = env.do(t, http.MethodPost, "/readiness", map[string]any{"correctCount": -1, "totalCount": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/readiness", map[string]any{"correctCount": 4, "totalCount": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoredReadiness(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, store.Exercise{ID: "e", SubtopicID: "st", Difficulty: difficulty.TierEasy, CorrectAnswer: "1"})

	w := env.do(t, http.MethodGet, "/users/u/subtopics/st/readiness", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.NotReady, decode[storedReadinessResponse](t, w).Level)

	for _, ans := range []string{"1", "1", "2"} {
		env.do(t, http.MethodPost, "/check-exercise-answer", map[string]any{
			"exerciseId": "e", "userId": "u", "userAnswer": ans,
		})
	}
	w = env.do(t, http.MethodGet, "/users/u/subtopics/st/readiness", nil)
	require.Equal(t, http.StatusOK, w.Code)
	r := decode[storedReadinessResponse](t, w)
	assert.Equal(t, 2, r.Correct)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, session.AlmostReady, r.Level)
}

func TestProgress_Default(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/users/u/subtopics/st/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[progressResponse](t, w)
	assert.False(t, p.Stored)
	assert.Equal(t, difficulty.NewState(difficulty.TierEasy, 1), p.State)
}

func TestSessions_Flow(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, store.Exercise{ID: "m1", SubtopicID: "alg", Difficulty: difficulty.TierMedium, Question: "x+1=3", CorrectAnswer: "2"})

	w := env.do(t, http.MethodPost, "/sessions", map[string]any{
		"userId": "u", "subtopicId": "alg", "startDifficulty": "medium", "startSubLevel": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	started := decode[sessionResponse](t, w)
	require.NotNil(t, started.Session)
	assert.Len(t, started.Session.Exercises, 4)
	require.NotNil(t, started.Next)

	w = env.do(t, http.MethodPost, "/sessions", map[string]any{"userId": "u", "subtopicId": "alg"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodGet, "/sessions/u/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/sessions/u/complete", map[string]any{"wasCorrect": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	done := decode[completeResponse](t, w)
	assert.Equal(t, 1, done.Performance.Total)
	assert.Equal(t, 1, done.Performance.Correct)

	w = env.do(t, http.MethodPost, "/sessions/u/pause", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, "/sessions/u/pause", nil)
	assert.Equal(t, http.StatusConflict, w.Code, "already paused")
	w = env.do(t, http.MethodPost, "/sessions/u/complete", map[string]any{"wasCorrect": true})
	assert.Equal(t, http.StatusConflict, w.Code, "paused sessions take no answers")
	w = env.do(t, http.MethodPost, "/sessions/u/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/sessions/u/end", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ended := decode[endResponse](t, w)
	assert.True(t, ended.Persisted)
	require.NotNil(t, ended.Summary)

	sums, err := env.store.Sessions().ListSessionSummaries(context.Background(), "u", 10)
	require.NoError(t, err)
	assert.Len(t, sums, 1)
	assert.Len(t, env.events.OfType(events.TypeSessionEnded), 1)
	assert.Zero(t, env.server.deps.Sessions.Len(), "the ended session's manager is dropped")

	w = env.do(t, http.MethodGet, "/sessions/u", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodPost, "/sessions/u/end", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessions_CompleteRequiresOutcome(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/sessions/u/complete", map[string]any{"hintsUsed": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/sessions/u/complete", map[string]any{"wasCorrect": false})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessions_StartUsesStoredProgress(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Progress().UpsertProgress(context.Background(), store.Progress{
		UserID: "u", SubtopicID: "geo", State: difficulty.NewState(difficulty.TierHard, 2),
	}))

	w := env.do(t, http.MethodPost, "/sessions", map[string]any{"userId": "u", "subtopicId": "geo"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	s := decode[sessionResponse](t, w).Session
	assert.Equal(t, difficulty.TierHard, s.Performance.CurrentDifficulty)
	assert.Equal(t, difficulty.TierHard, s.Exercises[0].Difficulty)
}

func TestShutdownEndsSessions(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/sessions", map[string]any{"userId": "u", "subtopicId": "st"})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, env.server.Shutdown(context.Background()))

	ended := env.events.OfType(events.TypeSessionEnded)
	require.Len(t, ended, 1)
	assert.Equal(t, session.ReasonShutdown, ended[0].Data.(events.SessionEnded).Reason)
}

func TestHealthMetricsAndRequestID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "trace-me")
	rr := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(rr, req)
	assert.Equal(t, "trace-me", rr.Header().Get(RequestIDHeader))

	w = env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mathpath_http_requests_total")
}
