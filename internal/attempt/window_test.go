package attempt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/store"
)

func rec(tier difficulty.Tier, correct bool) store.AttemptRecord {
	return store.AttemptRecord{Attempt: store.Attempt{IsCorrect: correct}, Difficulty: tier}
}

func TestComputeWindow(t *testing.T) {
	const (
		easy   = difficulty.TierEasy
		medium = difficulty.TierMedium
	)

	tests := []struct {
		name        string
		history     []store.AttemptRecord // newest first
		tier        difficulty.Tier
		wantCorrect int
		wantWrong   int
	}{
		{"empty", nil, medium, 0, 0},
		{"correct run", []store.AttemptRecord{rec(medium, true), rec(medium, true), rec(medium, false)}, medium, 2, 0},
		{"wrong run", []store.AttemptRecord{rec(medium, false), rec(medium, false), rec(medium, false), rec(medium, true)}, medium, 3, 0},
		{"other tiers skipped", []store.AttemptRecord{rec(medium, true), rec(easy, false), rec(medium, true)}, medium, 2, 0},
		{"no attempts at tier", []store.AttemptRecord{rec(easy, true), rec(easy, true)}, medium, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ComputeWindow(tc.history, tc.tier)
			assert.Equal(t, tc.wantCorrect, w.ConsecutiveCorrect, "ConsecutiveCorrect")
			assert.Equal(t, tc.wantWrong, w.ConsecutiveWrong, "ConsecutiveWrong")
			assert.False(t, w.ConsecutiveCorrect > 0 && w.ConsecutiveWrong > 0, "both streaks non-zero")
		})
	}
}

func TestComputeWindow_CountsEveryTier(t *testing.T) {
	history := []store.AttemptRecord{
		rec(difficulty.TierEasy, true),
		rec(difficulty.TierEasy, false),
		rec(difficulty.TierHard, true),
	}
	w := ComputeWindow(history, difficulty.TierMedium)

	assert.Equal(t, difficulty.TierStats{Correct: 1, Total: 2}, w.ByTier[difficulty.TierEasy])
	assert.Equal(t, difficulty.TierStats{Correct: 1, Total: 1}, w.ByTier[difficulty.TierHard])
	assert.Zero(t, w.ByTier[difficulty.TierMedium].Total)
}

func TestWindowFold(t *testing.T) {
	w := ComputeWindow([]store.AttemptRecord{rec(difficulty.TierMedium, true)}, difficulty.TierMedium)

	up := w.Fold(true)
	assert.Equal(t, 2, up.ConsecutiveCorrect)
	assert.Equal(t, 0, up.ConsecutiveWrong)
	assert.Equal(t, 2, up.ByTier[difficulty.TierMedium].Total)

	down := up.Fold(false)
	assert.Equal(t, 0, down.ConsecutiveCorrect)
	assert.Equal(t, 1, down.ConsecutiveWrong)

	// Fold never mutates the receiver.
	assert.Equal(t, 1, w.ByTier[difficulty.TierMedium].Total)
	assert.Equal(t, 1, w.ConsecutiveCorrect)
}
