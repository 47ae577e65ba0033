package session

import (
	"math/rand/v2"
	"sync"
	"time"
)

// TipCategory selects the pool a tip is drawn from.
type TipCategory string

const (
	CategoryStruggling  TipCategory = "struggling"
	CategoryExcelling   TipCategory = "excelling"
	CategoryComeback    TipCategory = "comeback"
	CategoryImproving   TipCategory = "improving"
	CategoryCelebration TipCategory = "celebration"
	CategoryTimeLow     TipCategory = "time-low"
	CategoryMilestone   TipCategory = "milestone"
	CategoryFiller      TipCategory = "filler"
)

// TipType is the tone of a tip.
type TipType string

const (
	TipGuidance      TipType = "guidance"
	TipCelebration   TipType = "celebration"
	TipEncouragement TipType = "encouragement"
)

var tipTypes = map[TipCategory]TipType{
	CategoryStruggling:  TipGuidance,
	CategoryExcelling:   TipCelebration,
	CategoryComeback:    TipEncouragement,
	CategoryImproving:   TipEncouragement,
	CategoryCelebration: TipCelebration,
	CategoryTimeLow:     TipGuidance,
	CategoryMilestone:   TipEncouragement,
	CategoryFiller:      TipEncouragement,
}

var tipPools = map[TipCategory][]string{
	CategoryStruggling: {
		"Let's slow down. Read the question once more and write down what is given.",
		"Try breaking the problem into smaller steps before computing anything.",
		"Check your signs and arithmetic one line at a time.",
		"It's fine to use a hint. Understanding the method matters more than speed.",
	},
	CategoryExcelling: {
		"Excellent work! You're ready for something harder.",
		"You're on fire. Let's raise the bar.",
		"Impressive accuracy. Time to level up.",
	},
	CategoryComeback: {
		"Nice recovery! That's the way to bounce back.",
		"There you go. Keep that focus.",
		"Good one. Every correct answer builds momentum.",
	},
	CategoryImproving: {
		"Two in a row. You're getting the hang of this.",
		"Good streak. Keep the same careful approach.",
		"Nice consistency. Keep going.",
	},
	CategoryCelebration: {
		"Almost done. Finish strong!",
		"Just a few left. You've worked hard this session.",
	},
	CategoryTimeLow: {
		"Two minutes left. Focus on accuracy over speed.",
		"Time is almost up. Take the next one carefully.",
	},
	CategoryMilestone: {
		"Halfway there. Good pace.",
		"You're through half the session. Keep it up.",
	},
	CategoryFiller: {
		"Remember to double-check your final answer.",
		"Writing down intermediate steps makes errors easier to spot.",
		"Take a deep breath. Steady work wins.",
	},
}

// Tip builds a message from the category pool using rng.
func Tip(c TipCategory, rng *rand.Rand, at time.Time) TutorMessage {
	pool := tipPools[c]
	text := ""
	if len(pool) > 0 {
		text = pool[rng.IntN(len(pool))]
	}
	return TutorMessage{Category: c, Type: tipTypes[c], Text: text, At: at}
}

// Throttle suppresses tips that come sooner than the cooldown after the
// previous one.
type Throttle struct {
	mu       sync.Mutex
	cooldown time.Duration
	last     time.Time
}

// DefaultTipCooldown is the minimum spacing between tips.
const DefaultTipCooldown = 150 * time.Second

// NewThrottle creates a Throttle. A zero cooldown allows every tip.
func NewThrottle(cooldown time.Duration) *Throttle {
	return &Throttle{cooldown: cooldown}
}

// Allow reports whether a tip may be shown at now and, if so, records it.
func (t *Throttle) Allow(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() && now.Sub(t.last) < t.cooldown {
		return false
	}
	t.last = now
	return true
}

// Ready reports whether a tip would be allowed at now without recording it.
func (t *Throttle) Ready(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last.IsZero() || now.Sub(t.last) >= t.cooldown
}

// Reset forgets the last tip.
func (t *Throttle) Reset() {
	t.mu.Lock()
	t.last = time.Time{}
	t.mu.Unlock()
}
