package problemgen

import (
	"strings"
	"testing"
)

func TestStructuralValidator(t *testing.T) {
	ok := Draft{Question: "What is 2 + 2?", Answer: "4", AnswerType: AnswerTypeInteger, Explanation: "2 + 2 = 4"}

	tests := []struct {
		name   string
		mutate func(d *Draft)
		fail   bool
	}{
		{"valid", func(d *Draft) {}, false},
		{"empty question", func(d *Draft) { d.Question = "  " }, true},
		{"long question", func(d *Draft) { d.Question = strings.Repeat("x", 1001) }, true},
		{"answer of only commas", func(d *Draft) { d.Answer = ", ," }, true},
		{"empty explanation", func(d *Draft) { d.Explanation = "" }, true},
		{"unknown type", func(d *Draft) { d.AnswerType = "multiple_choice" }, true},
		{"hint optional", func(d *Draft) { d.Hint = "" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := ok
			tc.mutate(&d)
			err := (&StructuralValidator{}).Validate(&d, GenerateInput{})
			if (err != nil) != tc.fail {
				t.Fatalf("Validate() = %v, want fail=%v", err, tc.fail)
			}
		})
	}
}

func TestAnswerFormatValidator(t *testing.T) {
	tests := []struct {
		answer string
		typ    AnswerType
		fail   bool
	}{
		{"12", AnswerTypeInteger, false},
		{"-15", AnswerTypeInteger, false},
		{"007", AnswerTypeInteger, true},
		{"3.75", AnswerTypeDecimal, false},
		{"3.50", AnswerTypeDecimal, true},
		{"3/4", AnswerTypeFraction, false},
		{"6/8", AnswerTypeFraction, true},
		{"3/0", AnswerTypeFraction, true},
		{"three quarters", AnswerTypeFraction, true},
		{"x = 3, -3", AnswerTypeExpression, false},
	}
	for _, tc := range tests {
		d := Draft{Answer: tc.answer, AnswerType: tc.typ}
		err := (&AnswerFormatValidator{}).Validate(&d, GenerateInput{})
		if (err != nil) != tc.fail {
			t.Errorf("%s %q: got %v, want fail=%v", tc.typ, tc.answer, err, tc.fail)
		}
	}
}

func TestMathCheckValidator(t *testing.T) {
	tests := []struct {
		question string
		answer   string
		typ      AnswerType
		fail     bool
	}{
		{"What is 345 + 278?", "623", AnswerTypeInteger, false},
		{"What is 345 + 278?", "633", AnswerTypeInteger, true},
		{"Compute 1/2 + 1/3.", "5/6", AnswerTypeFraction, false},
		{"Compute 3/4 × 2/3.", "1/2", AnswerTypeFraction, false},
		{"Compute 1/2 + 1/2.", "1", AnswerTypeInteger, false},
		{"What is 144 ÷ 12?", "12", AnswerTypeInteger, false},
		{"What is 2.5 * 1.5?", "3.75", AnswerTypeDecimal, false},
		{"A train leaves at noon. When does it arrive?", "3pm", AnswerTypeExpression, false},
		{"Solve x^2 = 9", "x = 3, -3", AnswerTypeExpression, false},
	}
	for _, tc := range tests {
		d := Draft{Question: tc.question, Answer: tc.answer, AnswerType: tc.typ}
		err := (&MathCheckValidator{}).Validate(&d, GenerateInput{})
		if (err != nil) != tc.fail {
			t.Errorf("%q -> %q: got %v, want fail=%v", tc.question, tc.answer, err, tc.fail)
		}
	}
}
