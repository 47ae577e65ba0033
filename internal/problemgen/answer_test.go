package problemgen

import "testing"

func strPtr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"X = 3, -3", "x=3-3"},
		{"  12 ", "12"},
		{"1,000", "1000"},
		{"x = ±2", "x=+-2"},
		{"x = −3", "x=-3"},
		{"x\t=\n4", "x=4"},
		{" Y =–2", "y=-2"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"X = 3, -3",
		"±√2",
		"a ∓ b",
		"ＡＢＣ －１",
		"1 , 2 , 3",
		"Ǆ ǅ ǆ",
		"ß",
		"",
		"   ",
	}
	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	const correct = "x = 3, -3"

	tests := []struct {
		input *string
		want  bool
	}{
		{strPtr("X=3,-3"), true},
		{strPtr("x = 3, −3"), true},
		{strPtr("x=3,-3 "), true},
		{strPtr("x=3"), false},
		{strPtr(""), false},
		{strPtr("   "), false},
		{nil, false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, correct)
		if got != tc.want {
			name := "<nil>"
			if tc.input != nil {
				name = *tc.input
			}
			t.Errorf("CheckAnswer(%q, %q) = %v, want %v", name, correct, got, tc.want)
		}
	}
}

func TestCheckAnswer_PlusMinus(t *testing.T) {
	if !CheckAnswer(strPtr("x=±4"), "x = +-4") {
		t.Error("expected ± to match +-")
	}
	if !CheckAnswer(strPtr("x = +- 4"), "x=±4") {
		t.Error("expected +- to match ±")
	}
}

func TestCheckAnswer_EmptyCanonicalNeverMatches(t *testing.T) {
	if CheckAnswer(strPtr(""), "") {
		t.Error("empty answer must never be correct")
	}
}
