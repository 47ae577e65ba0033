package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/session"
)

type readinessRequest struct {
	CorrectCount            int                  `json:"correctCount" binding:"min=0"`
	TotalCount              int                  `json:"totalCount" binding:"min=0"`
	PerformanceByDifficulty difficulty.Breakdown `json:"performanceByDifficulty"`
}

func (s *Server) handleAssessReadiness(c *gin.Context) {
	var req readinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.CorrectCount > req.TotalCount {
		badRequest(c, "correctCount cannot exceed totalCount")
		return
	}
	c.JSON(http.StatusOK, session.AssessReadiness(req.CorrectCount, req.TotalCount, req.PerformanceByDifficulty))
}

type storedReadinessResponse struct {
	session.Assessment
	Correct int                  `json:"correct"`
	Total   int                  `json:"total"`
	ByTier  difficulty.Breakdown `json:"byTier"`
}

// handleStoredReadiness classifies readiness over the learner's recent
// attempts in the subtopic.
func (s *Server) handleStoredReadiness(c *gin.Context) {
	userID, subtopicID := c.Param("userId"), c.Param("subtopicId")
	ctx := c.Request.Context()

	state := s.storedState(c, userID, subtopicID)
	w, err := s.deps.Evaluator.Window(ctx, userID, subtopicID, state.Tier)
	if err != nil {
		s.deps.Logger.Error("failed to load attempts", "user_id", userID, "subtopic_id", subtopicID, "error", err)
		internal(c, "failed to load attempts")
		return
	}

	totals := w.ByTier.Totals()
	c.JSON(http.StatusOK, storedReadinessResponse{
		Assessment: session.AssessReadiness(totals.Correct, totals.Total, w.ByTier),
		Correct:    totals.Correct,
		Total:      totals.Total,
		ByTier:     w.ByTier,
	})
}

type progressResponse struct {
	UserID     string           `json:"userId"`
	SubtopicID string           `json:"subtopicId"`
	State      difficulty.State `json:"state"`
	Stored     bool             `json:"stored"`
}

func (s *Server) handleProgress(c *gin.Context) {
	userID, subtopicID := c.Param("userId"), c.Param("subtopicId")

	resp := progressResponse{
		UserID:     userID,
		SubtopicID: subtopicID,
		State:      difficulty.NewState(difficulty.TierEasy, 1),
	}
	if s.deps.Progress != nil {
		p, err := s.deps.Progress.GetProgress(c.Request.Context(), userID, subtopicID)
		if err != nil {
			internal(c, "failed to load progress")
			return
		}
		if p != nil {
			resp.State = p.State
			resp.Stored = true
		}
	}
	c.JSON(http.StatusOK, resp)
}
