package session

import (
	"time"

	"github.com/abhisek/mathpath/internal/difficulty"
)

// PlanSource records where the exercises of a plan came from.
type PlanSource string

const (
	SourceOracle  PlanSource = "oracle"
	SourceStored  PlanSource = "stored"
	SourceDefault PlanSource = "default"
)

// Plan is the ordered list of exercises for a session.
type Plan struct {
	UserID     string            `json:"userId"`
	SubtopicID string            `json:"subtopicId"`
	Start      difficulty.State  `json:"start"`
	Duration   time.Duration     `json:"duration"`
	Exercises  []SessionExercise `json:"exercises"`
	Source     PlanSource        `json:"source"`
}

// DefaultSessionDuration is the standard session length.
const DefaultSessionDuration = 15 * time.Minute

// DefaultExerciseCount is the number of exercises planned per session.
const DefaultExerciseCount = 9

// ladder spreads n exercises over three steps starting at start: the first
// third at start, the next third one tier up, the rest two tiers up.
func ladder(start difficulty.Tier, n int) []difficulty.Tier {
	if !start.Valid() {
		start = difficulty.TierEasy
	}
	out := make([]difficulty.Tier, n)
	for i := range n {
		t := start
		for range i * 3 / n {
			t = t.Up()
		}
		out[i] = t
	}
	return out
}
