package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/mathpath/internal/difficulty"
)

func TestAssessReadiness_Levels(t *testing.T) {
	tests := []struct {
		correct, total int
		want           ReadinessLevel
	}{
		{8, 10, Ready},
		{5, 10, NotReady},
		{6, 10, AlmostReady},
		{79, 100, AlmostReady},
		{10, 10, Ready},
		{0, 10, NotReady},
		{0, 0, NotReady},
	}
	for _, tc := range tests {
		got := AssessReadiness(tc.correct, tc.total, nil)
		assert.Equal(t, tc.want, got.Level, "%d/%d", tc.correct, tc.total)
	}
}

func TestAssessReadiness_NoData(t *testing.T) {
	a := AssessReadiness(0, 0, nil)
	assert.Equal(t, NotReady, a.Level)
	assert.Zero(t, a.Percentage)
	assert.Empty(t, a.Strengths)
	assert.Empty(t, a.WeakAreas)
	assert.NotEmpty(t, a.SpecificFeedback)
}

func TestAssessReadiness_StrengthsAndWeakAreas(t *testing.T) {
	byTier := difficulty.Breakdown{
		difficulty.TierEasy:   {Correct: 7, Total: 10},
		difficulty.TierMedium: {Correct: 2, Total: 5},
		difficulty.TierHard:   {},
	}
	a := AssessReadiness(9, 15, byTier)

	assert.Equal(t, AlmostReady, a.Level)
	assert.InDelta(t, 60.0, a.Percentage, 0.001)
	assert.Equal(t, []difficulty.Tier{difficulty.TierEasy}, a.Strengths)
	assert.Equal(t, []difficulty.Tier{difficulty.TierMedium}, a.WeakAreas, "unattempted tiers are not weak areas")
	assert.Contains(t, a.SpecificFeedback, "easy")
	assert.Contains(t, a.SpecificFeedback, "medium")
	assert.NotContains(t, a.SpecificFeedback, "{")
}
