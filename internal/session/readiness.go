package session

import (
	"strings"

	"github.com/abhisek/mathpath/internal/difficulty"
)

// ReadinessLevel classifies how prepared a student is for the exam.
type ReadinessLevel string

const (
	NotReady    ReadinessLevel = "not-ready"
	AlmostReady ReadinessLevel = "almost-ready"
	Ready       ReadinessLevel = "ready"
)

// StrengthThreshold is the tier accuracy (percent) that counts as a strength.
const StrengthThreshold = 70.0

type readinessBand struct {
	level     ReadinessLevel
	threshold float64
	template  string
}

// Ascending; the highest threshold not above the percentage wins.
var readinessBands = []readinessBand{
	{NotReady, 0, "Keep practicing. Strong areas: {strengths}. Focus next on: {weak}."},
	{AlmostReady, 60, "You're close. Strong areas: {strengths}. A bit more work on: {weak}."},
	{Ready, 80, "You're ready for the exam. Strong areas: {strengths}. Keep {weak} sharp with a quick review."},
}

const noDataFeedback = "Complete a few exercises to get a readiness estimate."

// Assessment is the outcome of AssessReadiness.
type Assessment struct {
	Level            ReadinessLevel    `json:"level"`
	Percentage       float64           `json:"percentage"`
	Strengths        []difficulty.Tier `json:"strengths"`
	WeakAreas        []difficulty.Tier `json:"weakAreas"`
	SpecificFeedback string            `json:"specificFeedback"`
}

// AssessReadiness classifies readiness from aggregate counts. It never
// fails; without data the result is NotReady with neutral feedback.
func AssessReadiness(correct, total int, byTier difficulty.Breakdown) Assessment {
	if total <= 0 {
		return Assessment{
			Level:            NotReady,
			Strengths:        []difficulty.Tier{},
			WeakAreas:        []difficulty.Tier{},
			SpecificFeedback: noDataFeedback,
		}
	}
	correct = min(max(correct, 0), total)
	pct := float64(correct) * 100 / float64(total)

	band := readinessBands[0]
	for _, b := range readinessBands {
		if pct >= b.threshold {
			band = b
		}
	}

	a := Assessment{
		Level:      band.level,
		Percentage: pct,
		Strengths:  []difficulty.Tier{},
		WeakAreas:  []difficulty.Tier{},
	}
	for _, t := range difficulty.Tiers {
		ts, ok := byTier[t]
		if !ok || ts.Total == 0 {
			continue
		}
		if ts.Rate()*100 >= StrengthThreshold {
			a.Strengths = append(a.Strengths, t)
		} else {
			a.WeakAreas = append(a.WeakAreas, t)
		}
	}

	a.SpecificFeedback = strings.NewReplacer(
		"{strengths}", tierList(a.Strengths, "none yet"),
		"{weak}", tierList(a.WeakAreas, "all levels"),
	).Replace(band.template)
	return a
}

func tierList(tiers []difficulty.Tier, empty string) string {
	if len(tiers) == 0 {
		return empty
	}
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
