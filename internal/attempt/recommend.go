package attempt

import "github.com/abhisek/mathpath/internal/difficulty"

// Recommendation is the adjuster's verdict on an evaluation.
type Recommendation struct {
	// Current is the state the decision was made from.
	Current  difficulty.State
	Decision difficulty.Decision
	Insight  difficulty.Insight

	// Window includes the evaluated attempt.
	Window Window
}

// Recommend runs the difficulty adjuster for ev with the learner currently at
// currentSubLevel within the exercise's tier.
func (ev *Evaluation) Recommend(currentSubLevel int) Recommendation {
	return ev.RecommendWith(difficulty.DefaultThresholds(), currentSubLevel)
}

// RecommendWith is Recommend with explicit thresholds.
func (ev *Evaluation) RecommendWith(th difficulty.Thresholds, currentSubLevel int) Recommendation {
	current := difficulty.NewState(ev.Exercise.Difficulty, currentSubLevel)
	folded := ev.History.Fold(ev.IsCorrect)

	d := difficulty.AdjustWith(th, difficulty.Input{
		IsCorrect: ev.IsCorrect,
		Streaks:   ev.History.Streaks(),
		Current:   current,
		Rates:     folded.ByTier,
	})

	return Recommendation{
		Current:  current,
		Decision: d,
		Insight:  difficulty.BuildInsight(current, d, folded.ByTier, ev.Attempt.HintsUsed),
		Window:   folded,
	}
}
