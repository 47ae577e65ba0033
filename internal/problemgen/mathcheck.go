package problemgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// MathCheckValidator recomputes simple arithmetic found in the question
// and compares it with the claimed answer. Questions it cannot parse pass.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(d *Draft, _ GenerateInput) *ValidationError {
	want, ok := recompute(d.Question, d.AnswerType)
	if !ok {
		return nil
	}
	if !CheckAnswer(&d.Answer, want) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but oracle claimed %q", want, d.Answer),
		}
	}
	return nil
}

var (
	// "a/b + c/d" with +, -, *, ×, ÷
	fractionExpr = regexp.MustCompile(`(-?\d+)\s*/\s*(\d+)\s*([+\-*×÷])\s*(-?\d+)\s*/\s*(\d+)`)

	// "a + b" with +, -, *, ×; a bare slash belongs to fractions
	numberExpr = regexp.MustCompile(`(?:^|[^\d/.])(-?\d+(?:\.\d+)?)\s*([+\-*×])\s*(-?\d+(?:\.\d+)?)(?:[^\d/.]|$)`)

	// "a ÷ b" or "a / b" with spaces around the operator
	divisionExpr = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s+[/÷]\s+(-?\d+(?:\.\d+)?)`)
)

func recompute(question string, t AnswerType) (string, bool) {
	switch t {
	case AnswerTypeFraction, AnswerTypeInteger:
		if m := fractionExpr.FindStringSubmatch(question); m != nil {
			return fractionOp(m[1], m[2], m[3], m[4], m[5])
		}
	}
	if t != AnswerTypeInteger && t != AnswerTypeDecimal {
		return "", false
	}
	if m := numberExpr.FindStringSubmatch(question); m != nil {
		return numberOp(m[1], m[2], m[3], t)
	}
	if m := divisionExpr.FindStringSubmatch(question); m != nil {
		return numberOp(m[1], "/", m[2], t)
	}
	return "", false
}

func fractionOp(an, ad, op, bn, bd string) (string, bool) {
	aN, _ := strconv.ParseInt(an, 10, 64)
	aD, _ := strconv.ParseInt(ad, 10, 64)
	bN, _ := strconv.ParseInt(bn, 10, 64)
	bD, _ := strconv.ParseInt(bd, 10, 64)
	if aD == 0 || bD == 0 {
		return "", false
	}

	var n, d int64
	switch op {
	case "+":
		n, d = aN*bD+bN*aD, aD*bD
	case "-":
		n, d = aN*bD-bN*aD, aD*bD
	case "*", "×":
		n, d = aN*bN, aD*bD
	case "÷":
		if bN == 0 {
			return "", false
		}
		n, d = aN*bD, aD*bN
	default:
		return "", false
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs(n), d)
	n, d = n/g, d/g
	if d == 1 {
		return strconv.FormatInt(n, 10), true
	}
	return fmt.Sprintf("%d/%d", n, d), true
}

func numberOp(as, op, bs string, t AnswerType) (string, bool) {
	a, err := strconv.ParseFloat(as, 64)
	if err != nil {
		return "", false
	}
	b, err := strconv.ParseFloat(bs, 64)
	if err != nil {
		return "", false
	}

	var r float64
	switch op {
	case "+":
		r = a + b
	case "-":
		r = a - b
	case "*", "×":
		r = a * b
	case "/":
		if b == 0 {
			return "", false
		}
		r = a / b
	default:
		return "", false
	}

	if t == AnswerTypeInteger {
		if r != math.Trunc(r) {
			return "", false
		}
		return strconv.FormatInt(int64(r), 10), true
	}
	return strconv.FormatFloat(r, 'f', -1, 64), true
}
