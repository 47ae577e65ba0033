package difficulty

import "testing"

func TestStateOrdering(t *testing.T) {
	var prev State
	for i, tier := range Tiers {
		for sub := MinSubLevel; sub <= MaxSubLevel; sub++ {
			s := State{Tier: tier, SubLevel: sub}
			want := i*MaxSubLevel + sub - 1
			if s.Rank() != want {
				t.Errorf("%s.Rank() = %d, want %d", s, s.Rank(), want)
			}
			if want > 0 && !prev.Less(s) {
				t.Errorf("expected %s < %s", prev, s)
			}
			prev = s
		}
	}
}

func TestStateNextPrev(t *testing.T) {
	tests := []struct {
		from     State
		wantNext State
		wantPrev State
	}{
		{State{TierEasy, 1}, State{TierEasy, 2}, State{TierEasy, 1}},
		{State{TierEasy, 3}, State{TierMedium, 1}, State{TierEasy, 2}},
		{State{TierMedium, 1}, State{TierMedium, 2}, State{TierEasy, 3}},
		{State{TierMedium, 3}, State{TierHard, 1}, State{TierMedium, 2}},
		{State{TierHard, 1}, State{TierHard, 2}, State{TierMedium, 3}},
		{State{TierHard, 3}, State{TierHard, 3}, State{TierHard, 2}},
	}

	for _, tc := range tests {
		if got := tc.from.Next(); got != tc.wantNext {
			t.Errorf("%s.Next() = %s, want %s", tc.from, got, tc.wantNext)
		}
		if got := tc.from.Prev(); got != tc.wantPrev {
			t.Errorf("%s.Prev() = %s, want %s", tc.from, got, tc.wantPrev)
		}
	}
}

func TestNewState_Clamps(t *testing.T) {
	if got := NewState("impossible", 7); got != (State{TierEasy, 3}) {
		t.Errorf("NewState = %s, want easy/3", got)
	}
	if got := NewState(TierHard, 0); got != (State{TierHard, 1}) {
		t.Errorf("NewState = %s, want hard/1", got)
	}
}

func TestAdjust_StreakStep(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		want    State
		wantDir Direction
	}{
		{
			name: "third correct in a row advances sub-level",
			in:   Input{IsCorrect: true, Streaks: Streaks{ConsecutiveCorrect: 2}, Current: State{TierMedium, 2}},
			want: State{TierMedium, 3}, wantDir: DirectionUp,
		},
		{
			name: "second correct holds",
			in:   Input{IsCorrect: true, Streaks: Streaks{ConsecutiveCorrect: 1}, Current: State{TierMedium, 2}},
			want: State{TierMedium, 2}, wantDir: DirectionHold,
		},
		{
			name: "sub-level 3 rolls into next tier",
			in:   Input{IsCorrect: true, Streaks: Streaks{ConsecutiveCorrect: 3}, Current: State{TierMedium, 3}},
			want: State{TierHard, 1}, wantDir: DirectionUp,
		},
		{
			name: "wrong streak retreats",
			in:   Input{IsCorrect: false, Streaks: Streaks{ConsecutiveWrong: 2}, Current: State{TierMedium, 1}},
			want: State{TierEasy, 3}, wantDir: DirectionDown,
		},
		{
			name: "correct answer after wrong streak holds",
			in:   Input{IsCorrect: true, Streaks: Streaks{ConsecutiveWrong: 4}, Current: State{TierMedium, 2}},
			want: State{TierMedium, 2}, wantDir: DirectionHold,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Adjust(tc.in)
			if d.State != tc.want {
				t.Errorf("state = %s, want %s", d.State, tc.want)
			}
			if d.Direction != tc.wantDir {
				t.Errorf("direction = %s, want %s", d.Direction, tc.wantDir)
			}
		})
	}
}

func TestAdjust_Boundaries(t *testing.T) {
	up := Input{
		IsCorrect: true,
		Streaks:   Streaks{ConsecutiveCorrect: 50},
		Current:   Ceiling,
		Rates:     Breakdown{TierHard: {Correct: 50, Total: 50}},
	}
	if d := Adjust(up); d.State != Ceiling || d.Changed() {
		t.Errorf("at ceiling: got %s (%s), want hard/3 hold", d.State, d.Direction)
	}

	down := Input{
		IsCorrect: false,
		Streaks:   Streaks{ConsecutiveWrong: 50},
		Current:   Floor,
		Rates:     Breakdown{TierEasy: {Correct: 0, Total: 50}},
	}
	if d := Adjust(down); d.State != Floor || d.Changed() {
		t.Errorf("at floor: got %s (%s), want easy/1 hold", d.State, d.Direction)
	}
}

func TestAdjust_AggregateOverride(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		want    State
		wantSrc Source
	}{
		{
			name: "strong tier advances a full tier",
			in: Input{IsCorrect: true, Current: State{TierEasy, 1},
				Rates: Breakdown{TierEasy: {Correct: 5, Total: 5}}},
			want: State{TierMedium, 2}, wantSrc: SourceAggregate,
		},
		{
			name: "four attempts are not enough to advance",
			in: Input{IsCorrect: true, Current: State{TierEasy, 1},
				Rates: Breakdown{TierEasy: {Correct: 4, Total: 4}}},
			want: State{TierEasy, 1}, wantSrc: SourceNone,
		},
		{
			name: "weak tier regresses a full tier",
			in: Input{IsCorrect: false, Current: State{TierHard, 3},
				Rates: Breakdown{TierHard: {Correct: 1, Total: 4}}},
			want: State{TierMedium, 2}, wantSrc: SourceAggregate,
		},
		{
			name: "override replaces a smaller streak move",
			in: Input{IsCorrect: true, Streaks: Streaks{ConsecutiveCorrect: 2}, Current: State{TierMedium, 1},
				Rates: Breakdown{TierMedium: {Correct: 6, Total: 6}}},
			want: State{TierHard, 2}, wantSrc: SourceAggregate,
		},
		{
			name: "override at the ceiling leaves the streak step in place",
			in: Input{IsCorrect: true, Streaks: Streaks{ConsecutiveCorrect: 2}, Current: State{TierHard, 1},
				Rates: Breakdown{TierHard: {Correct: 9, Total: 10}}},
			want: State{TierHard, 2}, wantSrc: SourceStreak,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Adjust(tc.in)
			if d.State != tc.want {
				t.Errorf("state = %s, want %s", d.State, tc.want)
			}
			if d.Source != tc.wantSrc {
				t.Errorf("source = %s, want %s", d.Source, tc.wantSrc)
			}
		})
	}
}

// A strong aggregate and a fresh wrong streak pull in opposite directions;
// the aggregate wins.
func TestAdjust_AggregateBeatsWrongStreak(t *testing.T) {
	in := Input{
		IsCorrect: false,
		Streaks:   Streaks{ConsecutiveWrong: 2},
		Current:   State{TierMedium, 2},
		Rates:     Breakdown{TierMedium: {Correct: 9, Total: 10}},
	}

	d := Adjust(in)
	if d.State != (State{TierHard, 2}) {
		t.Fatalf("state = %s, want hard/2", d.State)
	}
	if d.Source != SourceAggregate || d.Direction != DirectionUp {
		t.Errorf("decision = %+v, want aggregate/up", d)
	}
}

func TestAdjust_Deterministic(t *testing.T) {
	in := Input{
		IsCorrect: true,
		Streaks:   Streaks{ConsecutiveCorrect: 2},
		Current:   State{TierEasy, 3},
		Rates:     Breakdown{TierEasy: {Correct: 3, Total: 4}},
	}
	first := Adjust(in)
	for i := 0; i < 10; i++ {
		if got := Adjust(in); got != first {
			t.Fatalf("run %d: %+v != %+v", i, got, first)
		}
	}
}

func TestBuildInsight(t *testing.T) {
	rates := Breakdown{
		TierEasy:   {Correct: 9, Total: 10},
		TierMedium: {Correct: 1, Total: 3},
	}
	d := Decision{State: State{TierMedium, 3}, Source: SourceStreak, Direction: DirectionUp}

	in := BuildInsight(State{TierMedium, 2}, d, rates, 0)

	if in.CurrentDifficulty != TierMedium {
		t.Errorf("CurrentDifficulty = %s, want medium", in.CurrentDifficulty)
	}
	if in.SuccessRates[TierEasy] != 90 || in.SuccessRates[TierMedium] != 33 {
		t.Errorf("SuccessRates = %v", in.SuccessRates)
	}
	if _, ok := in.SuccessRates[TierHard]; ok {
		t.Error("expected no rate for an unattempted tier")
	}
	if in.ProgressionMessage == "" || in.Recommendation == "" {
		t.Error("expected non-empty messages")
	}
}
