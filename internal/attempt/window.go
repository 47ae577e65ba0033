package attempt

import (
	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/store"
)

// DefaultLookback is the number of most recent attempts a Window covers.
const DefaultLookback = 30

// Window aggregates a bounded slice of a learner's history in one subtopic.
// Streaks are relative to CurrentTier; at most one of them is non-zero.
type Window struct {
	CurrentTier        difficulty.Tier
	ByTier             difficulty.Breakdown
	ConsecutiveCorrect int
	ConsecutiveWrong   int
}

// ComputeWindow builds a Window from attempts ordered newest first.
//
// Every attempt counts toward its tier's counters. Streaks only look at
// attempts at currentTier, scanning back from the newest until the run
// breaks.
func ComputeWindow(attempts []store.AttemptRecord, currentTier difficulty.Tier) Window {
	w := Window{
		CurrentTier: currentTier,
		ByTier:      make(difficulty.Breakdown),
	}

	for _, a := range attempts {
		w.ByTier.Record(a.Difficulty, a.IsCorrect)
	}

	correctOpen, wrongOpen := true, true
	for _, a := range attempts {
		if a.Difficulty != currentTier {
			continue
		}
		if a.IsCorrect {
			wrongOpen = false
			if correctOpen {
				w.ConsecutiveCorrect++
			}
		} else {
			correctOpen = false
			if wrongOpen {
				w.ConsecutiveWrong++
			}
		}
		if !correctOpen && !wrongOpen {
			break
		}
	}
	return w
}

// Fold returns a copy of w with one more outcome at CurrentTier applied:
// the matching streak grows, the other resets.
func (w Window) Fold(isCorrect bool) Window {
	out := w
	out.ByTier = w.ByTier.Clone()
	out.ByTier.Record(w.CurrentTier, isCorrect)
	if isCorrect {
		out.ConsecutiveCorrect++
		out.ConsecutiveWrong = 0
	} else {
		out.ConsecutiveWrong++
		out.ConsecutiveCorrect = 0
	}
	return out
}

// Streaks returns the streak counters in the adjuster's form.
func (w Window) Streaks() difficulty.Streaks {
	return difficulty.Streaks{
		ConsecutiveCorrect: w.ConsecutiveCorrect,
		ConsecutiveWrong:   w.ConsecutiveWrong,
	}
}
