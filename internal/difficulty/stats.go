package difficulty

// TierStats counts attempts at a single tier.
type TierStats struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Record adds one outcome.
func (ts *TierStats) Record(correct bool) {
	ts.Total++
	if correct {
		ts.Correct++
	}
}

// Rate returns the success rate in [0, 1], or 0 when there are no attempts.
func (ts TierStats) Rate() float64 {
	if ts.Total == 0 {
		return 0
	}
	return float64(ts.Correct) / float64(ts.Total)
}

// Percent returns the success rate rounded to a whole percentage.
func (ts TierStats) Percent() int {
	if ts.Total == 0 {
		return 0
	}
	return (ts.Correct*100 + ts.Total/2) / ts.Total
}

// Breakdown holds per-tier counters.
type Breakdown map[Tier]TierStats

// Record adds one outcome at tier t.
func (b Breakdown) Record(t Tier, correct bool) {
	ts := b[t]
	ts.Record(correct)
	b[t] = ts
}

// Totals sums all tiers.
func (b Breakdown) Totals() TierStats {
	var sum TierStats
	for _, ts := range b {
		sum.Correct += ts.Correct
		sum.Total += ts.Total
	}
	return sum
}

// Clone returns an independent copy.
func (b Breakdown) Clone() Breakdown {
	out := make(Breakdown, len(b))
	for t, ts := range b {
		out[t] = ts
	}
	return out
}
