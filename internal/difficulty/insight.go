package difficulty

import "fmt"

// Insight is the learner-facing explanation attached to a decision.
type Insight struct {
	CurrentDifficulty  Tier         `json:"currentDifficulty"`
	SuccessRates       map[Tier]int `json:"successRates"`
	ProgressionMessage string       `json:"progressionMessage"`
	Recommendation     string       `json:"recommendation"`
}

// BuildInsight summarizes a decision and the per-tier rates behind it.
// Tiers without attempts are omitted from SuccessRates.
func BuildInsight(current State, d Decision, rates Breakdown, hintsUsed int) Insight {
	pct := make(map[Tier]int, len(rates))
	for _, t := range Tiers {
		if ts, ok := rates[t]; ok && ts.Total > 0 {
			pct[t] = ts.Percent()
		}
	}

	return Insight{
		CurrentDifficulty:  current.Tier,
		SuccessRates:       pct,
		ProgressionMessage: progressionMessage(current, d),
		Recommendation:     recommendation(current.Tier, rates[current.Tier], hintsUsed),
	}
}

func progressionMessage(current State, d Decision) string {
	switch {
	case d.Source == SourceAggregate && d.Direction == DirectionUp:
		return fmt.Sprintf("You've been consistently strong at %s. Moving up to %s.", current.Tier, d.State.Tier)
	case d.Source == SourceAggregate && d.Direction == DirectionDown:
		return fmt.Sprintf("%s has been tough lately. Let's rebuild at %s.", capitalize(string(current.Tier)), d.State.Tier)
	case d.Direction == DirectionUp && d.State.Tier != current.Tier:
		return fmt.Sprintf("Great streak! You've unlocked %s problems.", d.State.Tier)
	case d.Direction == DirectionUp:
		return fmt.Sprintf("Great streak! Moving up to %s level %d.", d.State.Tier, d.State.SubLevel)
	case d.Direction == DirectionDown && d.State.Tier != current.Tier:
		return fmt.Sprintf("Let's step back to %s to strengthen the basics.", d.State.Tier)
	case d.Direction == DirectionDown:
		return fmt.Sprintf("Let's slow down a little with %s level %d.", d.State.Tier, d.State.SubLevel)
	}
	return fmt.Sprintf("Keep practicing at %s level %d.", current.Tier, current.SubLevel)
}

func recommendation(t Tier, ts TierStats, hintsUsed int) string {
	if ts.Total < 3 {
		return "Keep going. A few more problems will show where you stand."
	}
	rate := ts.Rate()
	switch {
	case rate >= 0.8 && hintsUsed == 0:
		return fmt.Sprintf("You're solving %s problems reliably. Try the next challenge without hints.", t)
	case rate >= 0.8:
		return "Strong accuracy. Try the next few without hints."
	case rate < 0.5:
		return "Review the theory for this subtopic before the next set."
	}
	return "Solid progress. Practice a few more at this level."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
