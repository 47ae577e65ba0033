package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validator checks a generated draft.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if the draft passes.
	Validate(d *Draft, in GenerateInput) *ValidationError
}

// ValidationError describes why a draft failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks required fields and length limits. An answer
// that normalizes to nothing could never be matched, so it is rejected here.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(d *Draft, _ GenerateInput) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	switch {
	case strings.TrimSpace(d.Question) == "":
		return fail("question is empty")
	case len(d.Question) > 1000:
		return fail("question exceeds 1000 characters")
	case Normalize(d.Answer) == "":
		return fail("answer is empty")
	case strings.TrimSpace(d.Explanation) == "":
		return fail("explanation is empty")
	case len(d.Explanation) > 2000:
		return fail("explanation exceeds 2000 characters")
	}

	switch d.AnswerType {
	case AnswerTypeInteger, AnswerTypeDecimal, AnswerTypeFraction, AnswerTypeExpression:
	default:
		return fail(fmt.Sprintf("unknown answer_type %q", d.AnswerType))
	}
	return nil
}

var fractionPattern = regexp.MustCompile(`^-?\d+/\d+$`)

// AnswerFormatValidator checks that numeric answers are in canonical form
// for their declared type. Expressions are free-form.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(d *Draft, _ GenerateInput) *ValidationError {
	answer := strings.TrimSpace(d.Answer)

	var err error
	switch d.AnswerType {
	case AnswerTypeInteger:
		err = checkInteger(answer)
	case AnswerTypeDecimal:
		err = checkDecimal(answer)
	case AnswerTypeFraction:
		err = checkFraction(answer)
	}
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("invalid %s answer %q: %s", d.AnswerType, answer, err),
		}
	}
	return nil
}

func checkInteger(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not a valid integer")
	}
	if strconv.FormatInt(n, 10) != s {
		return fmt.Errorf("has leading zeros")
	}
	return nil
}

func checkDecimal(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a valid decimal")
	}
	if want := strconv.FormatFloat(f, 'f', -1, 64); want != s {
		return fmt.Errorf("not normalized (expected %q)", want)
	}
	return nil
}

func checkFraction(s string) error {
	if !fractionPattern.MatchString(s) {
		return fmt.Errorf("does not match a/b")
	}
	num, den, err := parseFraction(s)
	if err != nil {
		return err
	}
	if den == 0 {
		return fmt.Errorf("denominator must be positive")
	}
	if gcd(abs(num), den) != 1 {
		return fmt.Errorf("not in lowest terms")
	}
	return nil
}

func parseFraction(s string) (num, den int64, err error) {
	n, d, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, fmt.Errorf("missing /")
	}
	if num, err = strconv.ParseInt(n, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("bad numerator")
	}
	if den, err = strconv.ParseInt(d, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("bad denominator")
	}
	return num, den, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
