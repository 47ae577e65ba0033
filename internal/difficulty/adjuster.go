package difficulty

// Thresholds configures the adjuster rules.
type Thresholds struct {
	// StreakLength is the number of prior same-outcome attempts at the
	// current tier that, together with the current outcome, moves one
	// sub-level.
	StreakLength int

	// AdvanceRate and AdvanceMinAttempts gate the full-tier advance.
	AdvanceRate        float64
	AdvanceMinAttempts int

	// RegressRate and RegressMinAttempts gate the full-tier regress.
	RegressRate        float64
	RegressMinAttempts int

	// ResetSubLevel is the sub-level used after a full-tier move.
	ResetSubLevel int
}

// DefaultThresholds returns the standard progression rules.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StreakLength:       2,
		AdvanceRate:        0.85,
		AdvanceMinAttempts: 5,
		RegressRate:        0.30,
		RegressMinAttempts: 4,
		ResetSubLevel:      2,
	}
}

// Source names the rule that produced a decision.
type Source string

const (
	SourceNone      Source = "none"
	SourceStreak    Source = "streak"
	SourceAggregate Source = "aggregate"
)

// Direction is the movement of a decision relative to the current state.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionHold Direction = "hold"
)

// Streaks are the run lengths at the current tier, counted over attempts
// made before the one being adjusted for.
type Streaks struct {
	ConsecutiveCorrect int
	ConsecutiveWrong   int
}

// Input is everything Adjust needs.
type Input struct {
	IsCorrect bool
	Streaks   Streaks
	Current   State
	// Rates holds per-tier counters including the current outcome.
	Rates Breakdown
}

// Decision is the recommended next state.
type Decision struct {
	State     State
	Source    Source
	Direction Direction
}

// Changed reports whether the decision moves off the current state.
func (d Decision) Changed() bool { return d.Direction != DirectionHold }

// Adjust computes the recommended difficulty with DefaultThresholds.
func Adjust(in Input) Decision {
	return AdjustWith(DefaultThresholds(), in)
}

// AdjustWith computes the recommended difficulty.
//
// The streak step and the aggregate override are evaluated independently.
// When the override fires its result replaces the streak step's.
func AdjustWith(th Thresholds, in Input) Decision {
	current := NewState(in.Current.Tier, in.Current.SubLevel)
	next := current
	source := SourceNone

	switch {
	case in.IsCorrect && in.Streaks.ConsecutiveCorrect >= th.StreakLength:
		next = current.Next()
		source = SourceStreak
	case !in.IsCorrect && in.Streaks.ConsecutiveWrong >= th.StreakLength:
		next = current.Prev()
		source = SourceStreak
	}

	ts := in.Rates[current.Tier]
	switch {
	case ts.Total >= th.AdvanceMinAttempts && ts.Rate() >= th.AdvanceRate:
		if up := current.Tier.Up(); up != current.Tier {
			next = State{Tier: up, SubLevel: th.ResetSubLevel}
			source = SourceAggregate
		}
	case ts.Total >= th.RegressMinAttempts && ts.Rate() < th.RegressRate:
		if down := current.Tier.Down(); down != current.Tier {
			next = State{Tier: down, SubLevel: th.ResetSubLevel}
			source = SourceAggregate
		}
	}

	d := Decision{State: next, Source: source, Direction: DirectionHold}
	switch {
	case current.Less(next):
		d.Direction = DirectionUp
	case next.Less(current):
		d.Direction = DirectionDown
	default:
		d.Source = SourceNone
	}
	return d
}
