package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/session"
)

type startSessionRequest struct {
	UserID       string `json:"userId" binding:"required"`
	SubtopicID   string `json:"subtopicId" binding:"required"`
	SubtopicName string `json:"subtopicName"`

	// StartDifficulty and StartSubLevel default to the stored progress.
	StartDifficulty difficulty.Tier `json:"startDifficulty"`
	StartSubLevel   int             `json:"startSubLevel" binding:"min=0,max=3"`

	Count           int `json:"count" binding:"min=0,max=50"`
	DurationSeconds int `json:"durationSeconds" binding:"min=0"`
}

type sessionResponse struct {
	Session *session.ActiveSession   `json:"session"`
	Next    *session.SessionExercise `json:"next,omitempty"`
}

func (s *Server) handleStartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.StartDifficulty != "" && !req.StartDifficulty.Valid() {
		badRequest(c, "startDifficulty must be easy, medium or hard")
		return
	}
	ctx := c.Request.Context()

	if _, ok := s.deps.Sessions.Lookup(req.UserID); ok {
		conflict(c, session.ErrSessionActive.Error())
		return
	}

	start := difficulty.NewState(req.StartDifficulty, req.StartSubLevel)
	if req.StartDifficulty == "" {
		start = s.storedState(c, req.UserID, req.SubtopicID)
	}

	count := req.Count
	if count == 0 {
		count = s.opts.ExerciseCount
	}
	duration := time.Duration(req.DurationSeconds) * time.Second
	if duration == 0 {
		duration = s.opts.SessionDuration
	}

	plan, err := s.deps.Planner.BuildPlan(ctx, session.PlanRequest{
		UserID:       req.UserID,
		SubtopicID:   req.SubtopicID,
		SubtopicName: req.SubtopicName,
		Start:        start,
		Count:        count,
		Duration:     duration,
	})
	if err != nil {
		internal(c, "failed to plan session")
		return
	}

	m, active, err := s.deps.Sessions.Start(s.sessionCtx, *plan)
	if errors.Is(err, session.ErrSessionActive) {
		conflict(c, err.Error())
		return
	}
	if err != nil {
		internal(c, "failed to start session")
		return
	}
	s.deps.Metrics.sessionsStarted.WithLabelValues(string(plan.Source)).Inc()

	c.JSON(http.StatusCreated, sessionResponse{Session: active, Next: m.AdaptedExercise(ctx)})
}

func (s *Server) storedState(c *gin.Context, userID, subtopicID string) difficulty.State {
	fallback := difficulty.NewState(difficulty.TierEasy, 1)
	if s.deps.Progress == nil {
		return fallback
	}
	p, err := s.deps.Progress.GetProgress(c.Request.Context(), userID, subtopicID)
	if err != nil {
		s.deps.Logger.Warn("failed to load progress", "user_id", userID, "subtopic_id", subtopicID, "error", err)
		return fallback
	}
	if p == nil {
		return fallback
	}
	return p.State
}

// manager returns the user's manager, or writes 404 when the user has no
// live session.
func (s *Server) manager(c *gin.Context) (*session.Manager, bool) {
	m, ok := s.deps.Sessions.Lookup(c.Param("userId"))
	if !ok {
		notFound(c, session.ErrNoActiveSession.Error())
		return nil, false
	}
	return m, true
}

func (s *Server) handleGetSession(c *gin.Context) {
	m, ok := s.manager(c)
	if !ok {
		return
	}
	active, err := m.Current()
	if err != nil {
		notFound(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, sessionResponse{Session: active, Next: m.AdaptedExercise(c.Request.Context())})
}

func (s *Server) handleNextExercise(c *gin.Context) {
	m, ok := s.manager(c)
	if !ok {
		return
	}
	if _, err := m.Current(); err != nil {
		notFound(c, err.Error())
		return
	}
	next := m.AdaptedExercise(c.Request.Context())
	if next == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, next)
}

type completeRequest struct {
	WasCorrect *bool `json:"wasCorrect" binding:"required"`
	HintsUsed  int   `json:"hintsUsed" binding:"min=0"`
}

type completeResponse struct {
	Adaptation  *session.AdaptationResult   `json:"adaptation"`
	Performance session.PerformanceSnapshot `json:"performance"`
	Next        *session.SessionExercise    `json:"next,omitempty"`
}

func (s *Server) handleCompleteExercise(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}
	m, ok := s.manager(c)
	if !ok {
		return
	}
	active, err := m.Current()
	if err != nil {
		notFound(c, err.Error())
		return
	}
	if active.Status != session.StatusRunning {
		conflict(c, "session is "+string(active.Status))
		return
	}

	res := m.MarkExerciseComplete(*req.WasCorrect, req.HintsUsed)
	if res != nil && res.TutorTip != "" {
		s.deps.Metrics.tips.WithLabelValues(string(res.TipType)).Inc()
	}

	resp := completeResponse{Adaptation: res, Next: m.AdaptedExercise(c.Request.Context())}
	if after, err := m.Current(); err == nil {
		resp.Performance = after.Performance
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePause(c *gin.Context) {
	s.transition(c, (*session.Manager).Pause)
}

func (s *Server) handleResume(c *gin.Context) {
	s.transition(c, (*session.Manager).Resume)
}

func (s *Server) transition(c *gin.Context, fn func(*session.Manager) error) {
	m, ok := s.manager(c)
	if !ok {
		return
	}
	switch err := fn(m); {
	case errors.Is(err, session.ErrNoActiveSession):
		notFound(c, err.Error())
	case errors.Is(err, session.ErrInvalidTransition):
		conflict(c, err.Error())
	case err != nil:
		internal(c, "internal server error")
	default:
		active, _ := m.Current()
		c.JSON(http.StatusOK, sessionResponse{Session: active})
	}
}

type endResponse struct {
	Summary   *session.Summary `json:"summary"`
	Persisted bool             `json:"persisted"`
}

func (s *Server) handleEndSession(c *gin.Context) {
	m, ok := s.manager(c)
	if !ok {
		return
	}
	userID := c.Param("userId")
	sum, err := m.End(c.Request.Context(), session.ReasonUser)
	s.deps.Sessions.Release(userID)
	if errors.Is(err, session.ErrNoActiveSession) {
		notFound(c, err.Error())
		return
	}
	s.deps.Metrics.sessionsEnded.Inc()
	// The summary is still useful to the client when saving it failed.
	c.JSON(http.StatusOK, endResponse{Summary: sum, Persisted: err == nil})
}
