package difficulty

import "fmt"

// Tier is a coarse difficulty band.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Tiers lists all tiers in ascending order.
var Tiers = []Tier{TierEasy, TierMedium, TierHard}

// Sub-level bounds within a tier.
const (
	MinSubLevel = 1
	MaxSubLevel = 3
)

// ParseTier parses a tier name. Unknown names return an error.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierEasy, TierMedium, TierHard:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Index returns the position of t in Tiers, or -1 if t is not a valid tier.
func (t Tier) Index() int {
	for i, v := range Tiers {
		if v == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool { return t.Index() >= 0 }

// Up returns the next harder tier, or t itself at the ceiling.
func (t Tier) Up() Tier {
	i := t.Index()
	if i < 0 || i == len(Tiers)-1 {
		return t
	}
	return Tiers[i+1]
}

// Down returns the next easier tier, or t itself at the floor.
func (t Tier) Down() Tier {
	i := t.Index()
	if i <= 0 {
		return t
	}
	return Tiers[i-1]
}

// State is a position on the progression ladder easy/1 < easy/2 < ... < hard/3.
type State struct {
	Tier     Tier `json:"tier"`
	SubLevel int  `json:"subLevel"`
}

// Floor and Ceiling are the two ends of the ladder.
var (
	Floor   = State{Tier: TierEasy, SubLevel: MinSubLevel}
	Ceiling = State{Tier: TierHard, SubLevel: MaxSubLevel}
)

// NewState builds a State, clamping the sub-level into range and defaulting
// an invalid tier to easy.
func NewState(tier Tier, subLevel int) State {
	if !tier.Valid() {
		tier = TierEasy
	}
	return State{Tier: tier, SubLevel: clampSubLevel(subLevel)}
}

// Rank returns the position of s on the ladder, 0 (easy/1) through 8 (hard/3).
func (s State) Rank() int {
	return s.Tier.Index()*MaxSubLevel + (s.SubLevel - MinSubLevel)
}

// Less reports whether s is strictly below o on the ladder.
func (s State) Less(o State) bool { return s.Rank() < o.Rank() }

// Next advances one sub-level, rolling over to sub-level 1 of the next tier.
// It is a no-op at the ceiling.
func (s State) Next() State {
	if s.SubLevel < MaxSubLevel {
		return State{Tier: s.Tier, SubLevel: s.SubLevel + 1}
	}
	if up := s.Tier.Up(); up != s.Tier {
		return State{Tier: up, SubLevel: MinSubLevel}
	}
	return s
}

// Prev retreats one sub-level, rolling back to sub-level 3 of the next lower
// tier. It is a no-op at the floor.
func (s State) Prev() State {
	if s.SubLevel > MinSubLevel {
		return State{Tier: s.Tier, SubLevel: s.SubLevel - 1}
	}
	if down := s.Tier.Down(); down != s.Tier {
		return State{Tier: down, SubLevel: MaxSubLevel}
	}
	return s
}

func (s State) String() string {
	return fmt.Sprintf("%s/%d", s.Tier, s.SubLevel)
}

func clampSubLevel(n int) int {
	if n < MinSubLevel {
		return MinSubLevel
	}
	if n > MaxSubLevel {
		return MaxSubLevel
	}
	return n
}
