package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottle(t *testing.T) {
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	th := NewThrottle(2 * time.Minute)

	assert.True(t, th.Allow(base), "first tip")
	assert.False(t, th.Allow(base.Add(time.Minute)))
	assert.False(t, th.Ready(base.Add(119*time.Second)))
	assert.True(t, th.Allow(base.Add(2*time.Minute)))

	th.Reset()
	assert.True(t, th.Ready(base.Add(2*time.Minute)))
}

func TestTip_EveryCategoryHasPoolAndType(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, c := range []TipCategory{
		CategoryStruggling, CategoryExcelling, CategoryComeback, CategoryImproving,
		CategoryCelebration, CategoryTimeLow, CategoryMilestone, CategoryFiller,
	} {
		tip := Tip(c, rng, time.Time{})
		assert.NotEmpty(t, tip.Text, c)
		assert.NotEmpty(t, tip.Type, c)
		assert.Contains(t, tipPools[c], tip.Text)
	}
}

func TestLadder(t *testing.T) {
	assert.Equal(t, []string{"easy", "easy", "easy", "medium", "medium", "medium", "hard", "hard", "hard"},
		tierStrings(ladder("easy", 9)))
	assert.Equal(t, []string{"hard", "hard", "hard"}, tierStrings(ladder("hard", 3)))
	assert.Equal(t, []string{"medium", "hard"}, tierStrings(ladder("medium", 2)))
	assert.Equal(t, []string{"easy"}, tierStrings(ladder("bogus", 1)))
}
