// Package session runs timed practice sessions: it tracks live performance,
// adapts the session difficulty, emits tutor tips and classifies exam
// readiness when the session ends.
package session

import (
	"errors"
	"time"

	"github.com/abhisek/mathpath/internal/difficulty"
)

var (
	ErrNoActiveSession   = errors.New("no active session")
	ErrSessionActive     = errors.New("a session is already active")
	ErrInvalidTransition = errors.New("invalid session transition")
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusEnded   Status = "ended"
)

// End reasons.
const (
	ReasonUser        = "user"
	ReasonTimeExpired = "time-expired"
	ReasonCompleted   = "completed"
	ReasonShutdown    = "shutdown"
)

// SessionExercise is one planned exercise of a session.
type SessionExercise struct {
	ExerciseID string          `json:"exerciseId,omitempty"`
	Question   string          `json:"question,omitempty"`
	Difficulty difficulty.Tier `json:"difficulty"`
	Completed  bool            `json:"completed"`
	Correct    bool            `json:"correct"`
	HintsUsed  int             `json:"hintsUsed"`
}

// PerformanceSnapshot is the live performance of a session.
type PerformanceSnapshot struct {
	// RecentAccuracy is correct/total over the session lifetime, 0..100.
	RecentAccuracy     int             `json:"recentAccuracy"`
	Correct            int             `json:"correct"`
	Total              int             `json:"total"`
	ConsecutiveCorrect int             `json:"consecutiveCorrect"`
	ConsecutiveWrong   int             `json:"consecutiveWrong"`
	CurrentDifficulty  difficulty.Tier `json:"currentDifficulty"`
	AdaptationsMade    int             `json:"adaptationsMade"`
}

func (p *PerformanceSnapshot) record(correct bool) {
	p.Total++
	if correct {
		p.Correct++
		p.ConsecutiveCorrect++
		p.ConsecutiveWrong = 0
	} else {
		p.ConsecutiveWrong++
		p.ConsecutiveCorrect = 0
	}
	p.RecentAccuracy = accuracy(p.Correct, p.Total)
}

func accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return correct * 100 / total
}

// TutorMessage is a tip shown to the student.
type TutorMessage struct {
	Category TipCategory `json:"category"`
	Type     TipType     `json:"type"`
	Text     string      `json:"text"`
	At       time.Time   `json:"at"`
}

// ActiveSession is the live state of a running or paused session.
type ActiveSession struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	SubtopicID  string              `json:"subtopicId"`
	Status      Status              `json:"status"`
	Exercises   []SessionExercise   `json:"exercises"`
	Performance PerformanceSnapshot `json:"performance"`
	Messages    []TutorMessage      `json:"messages"`
	Duration    time.Duration       `json:"duration"`
	Remaining   time.Duration       `json:"remaining"`
	StartedAt   time.Time           `json:"startedAt"`

	// ByTier counts completions at the difficulty live when they happened.
	ByTier difficulty.Breakdown `json:"byTier"`

	lowTimeFired bool
	milestones   map[int]bool
}

func (s *ActiveSession) clone() *ActiveSession {
	c := *s
	c.Exercises = append([]SessionExercise(nil), s.Exercises...)
	c.Messages = append([]TutorMessage(nil), s.Messages...)
	c.ByTier = s.ByTier.Clone()
	c.milestones = nil
	return &c
}

// next returns the index of the first incomplete exercise, or -1.
func (s *ActiveSession) next() int {
	for i, ex := range s.Exercises {
		if !ex.Completed {
			return i
		}
	}
	return -1
}

func (s *ActiveSession) exerciseIDs() map[string]bool {
	ids := make(map[string]bool, len(s.Exercises))
	for _, ex := range s.Exercises {
		if ex.ExerciseID != "" {
			ids[ex.ExerciseID] = true
		}
	}
	return ids
}

// completion returns the fraction of planned exercises completed.
func (s *ActiveSession) completion() float64 {
	if len(s.Exercises) == 0 {
		return 0
	}
	done := 0
	for _, ex := range s.Exercises {
		if ex.Completed {
			done++
		}
	}
	return float64(done) / float64(len(s.Exercises))
}

// AdaptationResult reports what a completed exercise changed.
type AdaptationResult struct {
	ShouldAdjustDifficulty bool            `json:"shouldAdjustDifficulty"`
	NewDifficulty          difficulty.Tier `json:"newDifficulty,omitempty"`
	TutorTip               string          `json:"tutorTip,omitempty"`
	TipType                TipType         `json:"tipType,omitempty"`
}
