package problemgen

import (
	"strings"
	"unicode"
)

// glyphs maps visually equivalent characters to their canonical ASCII form.
var glyphs = strings.NewReplacer(
	"±", "+-",
	"∓", "-+",
	"−", "-", // minus sign
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"﹣", "-", // small hyphen-minus
	"－", "-", // fullwidth hyphen-minus
	"＋", "+", // fullwidth plus
)

// Normalize canonicalizes an answer for comparison.
//
// Normalization rules:
// - Letters are lowercased
// - All whitespace is removed
// - Commas are removed
// - ± becomes "+-" and the unicode minus/dash glyphs become "-"
//
// Normalize is idempotent.
func Normalize(answer string) string {
	answer = glyphs.Replace(answer)

	var b strings.Builder
	b.Grow(len(answer))
	for _, r := range answer {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CheckAnswer compares the learner's answer against the canonical answer.
// A missing answer, or one that normalizes to nothing, is never correct.
func CheckAnswer(learnerAnswer *string, correctAnswer string) bool {
	if learnerAnswer == nil {
		return false
	}
	got := Normalize(*learnerAnswer)
	if got == "" {
		return false
	}
	return got == Normalize(correctAnswer)
}
