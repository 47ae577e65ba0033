package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathpath/internal/attempt"
	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/events"
	"github.com/abhisek/mathpath/internal/store"
)

type checkAnswerRequest struct {
	ExerciseID       string  `json:"exerciseId" binding:"required"`
	UserID           string  `json:"userId" binding:"required"`
	UserAnswer       *string `json:"userAnswer"`
	HintsUsed        int     `json:"hintsUsed" binding:"min=0"`
	TimeSpentSeconds *int    `json:"timeSpentSeconds" binding:"omitempty,min=0"`

	// CurrentSubLevel is the learner's sub-level within the exercise tier.
	// Zero means use the stored progress.
	CurrentSubLevel int `json:"currentSubLevel" binding:"min=0,max=3"`
}

type checkAnswerResponse struct {
	IsCorrect           bool               `json:"isCorrect"`
	CorrectAnswer       string             `json:"correctAnswer"`
	Explanation         string             `json:"explanation"`
	SuggestedDifficulty difficulty.Tier    `json:"suggestedDifficulty"`
	SuggestedSubLevel   int                `json:"suggestedSubLevel"`
	ConsecutiveCorrect  int                `json:"consecutiveCorrect"`
	ConsecutiveWrong    int                `json:"consecutiveWrong"`
	PerformanceInsight  difficulty.Insight `json:"performanceInsight"`
}

func (s *Server) handleCheckAnswer(c *gin.Context) {
	var req checkAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}
	ctx := c.Request.Context()

	ev, err := s.deps.Evaluator.Evaluate(ctx, attempt.Submission{
		ExerciseID:       req.ExerciseID,
		UserID:           req.UserID,
		UserAnswer:       req.UserAnswer,
		HintsUsed:        req.HintsUsed,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	switch {
	case errors.Is(err, attempt.ErrInvalidSubmission):
		badRequest(c, err.Error())
		return
	case errors.Is(err, attempt.ErrExerciseNotFound):
		notFound(c, "exercise not found")
		return
	case errors.Is(err, attempt.ErrPersistence):
		internal(c, "failed to record attempt, please retry")
		return
	case err != nil:
		internal(c, "internal server error")
		return
	}

	stored := s.loadProgress(ctx, req.UserID, ev.Exercise.SubtopicID)
	subLevel := req.CurrentSubLevel
	if subLevel == 0 {
		subLevel = storedSubLevel(stored, ev.Exercise)
	}
	rec := ev.Recommend(subLevel)

	s.deps.Metrics.attempts.WithLabelValues(outcome(ev.IsCorrect)).Inc()
	s.recordProgress(ctx, req.UserID, ev, rec, stored)
	s.publishEvaluation(ctx, req.UserID, ev, rec)

	c.JSON(http.StatusOK, checkAnswerResponse{
		IsCorrect:           ev.IsCorrect,
		CorrectAnswer:       ev.CorrectAnswer,
		Explanation:         ev.Explanation,
		SuggestedDifficulty: rec.Decision.State.Tier,
		SuggestedSubLevel:   rec.Decision.State.SubLevel,
		ConsecutiveCorrect:  rec.Window.ConsecutiveCorrect,
		ConsecutiveWrong:    rec.Window.ConsecutiveWrong,
		PerformanceInsight:  rec.Insight,
	})
}

// loadProgress returns the stored progress, or nil when there is none or it
// cannot be read.
func (s *Server) loadProgress(ctx context.Context, userID, subtopicID string) *store.Progress {
	if s.deps.Progress == nil {
		return nil
	}
	p, err := s.deps.Progress.GetProgress(ctx, userID, subtopicID)
	if err != nil {
		s.deps.Logger.Warn("failed to load progress", "user_id", userID, "subtopic_id", subtopicID, "error", err)
		return nil
	}
	return p
}

// storedSubLevel returns the stored sub-level when the stored tier matches
// the exercise, else 1.
func storedSubLevel(p *store.Progress, ex *store.Exercise) int {
	if p == nil || p.State.Tier != ex.Difficulty {
		return 1
	}
	return p.State.SubLevel
}

// shouldStore reports whether d replaces the stored state. A hold never
// does. Otherwise a correct answer may only raise the stored state and a
// wrong one may only lower it, so a recommendation computed from a state
// other than the stored one cannot move progress the wrong way.
func shouldStore(stored *store.Progress, correct bool, d difficulty.Decision) bool {
	if stored == nil {
		return true
	}
	if !d.Changed() {
		return false
	}
	if correct {
		return stored.State.Less(d.State)
	}
	return d.State.Less(stored.State)
}

// recordProgress stores the accepted recommendation. Failures are logged;
// the attempt itself is already durable.
func (s *Server) recordProgress(ctx context.Context, userID string, ev *attempt.Evaluation, rec attempt.Recommendation, stored *store.Progress) {
	if s.deps.Progress == nil || !shouldStore(stored, ev.IsCorrect, rec.Decision) {
		return
	}
	err := s.deps.Progress.UpsertProgress(ctx, store.Progress{
		UserID:     userID,
		SubtopicID: ev.Exercise.SubtopicID,
		State:      rec.Decision.State,
	})
	if err != nil {
		s.deps.Logger.Warn("failed to store progress",
			"user_id", userID,
			"subtopic_id", ev.Exercise.SubtopicID,
			"error", err)
	}
}

func (s *Server) publishEvaluation(ctx context.Context, userID string, ev *attempt.Evaluation, rec attempt.Recommendation) {
	subtopic := ev.Exercise.SubtopicID
	_ = s.deps.Publisher.Publish(ctx, events.Event{
		Type:       events.TypeAttemptEvaluated,
		UserID:     userID,
		SubtopicID: subtopic,
		Data: events.AttemptEvaluated{
			AttemptID:  ev.Attempt.ID,
			ExerciseID: ev.Exercise.ID,
			IsCorrect:  ev.IsCorrect,
			HintsUsed:  ev.Attempt.HintsUsed,
		},
	})

	d := rec.Decision
	if !d.Changed() {
		return
	}
	s.deps.Metrics.difficultyChanges.WithLabelValues(string(d.Direction), string(d.Source)).Inc()
	_ = s.deps.Publisher.Publish(ctx, events.Event{
		Type:       events.TypeDifficultyChanged,
		UserID:     userID,
		SubtopicID: subtopic,
		Data: events.DifficultyChanged{
			From:   rec.Current.String(),
			To:     d.State.String(),
			Source: string(d.Source),
		},
	})
}

func outcome(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}
