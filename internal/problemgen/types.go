package problemgen

import "github.com/abhisek/mathpath/internal/difficulty"

// AnswerType describes the form of the canonical answer.
type AnswerType string

const (
	AnswerTypeInteger    AnswerType = "integer"    // "12", "-15"
	AnswerTypeDecimal    AnswerType = "decimal"    // "3.75"
	AnswerTypeFraction   AnswerType = "fraction"   // "3/4"
	AnswerTypeExpression AnswerType = "expression" // "x = 3, -3", "±√2"
)

// Draft is an exercise as returned by the oracle, before it is stored.
type Draft struct {
	Question    string
	Answer      string
	AnswerType  AnswerType
	Hint        string
	Explanation string
}

// GenerateInput holds the context needed to generate one exercise.
type GenerateInput struct {
	SubtopicID   string
	SubtopicName string

	// Description is optional curriculum context for the subtopic.
	Description string

	Tier     difficulty.Tier
	SubLevel int

	// PriorQuestions are questions already served, used to avoid repeats.
	PriorQuestions []string
}
