package problemgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/mathpath/internal/oracle"
	"github.com/abhisek/mathpath/internal/store"
)

// Generator produces practice exercises.
type Generator interface {
	// Generate produces a single validated exercise for the given input.
	Generate(ctx context.Context, input GenerateInput) (*store.Exercise, error)
}

// Config controls the behavior of the OracleGenerator.
type Config struct {
	// Validators run in order on every draft; the first failure stops
	// the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the oracle reply.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions caps the dedup list included in the prompt.
	MaxPriorQuestions int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
			&MathCheckValidator{},
		},
		MaxTokens:         768,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
	}
}

// OracleGenerator implements Generator on top of a content oracle.
// Generated exercises are stored when an ExerciseRepo is given, so that
// answers submitted against them can be checked later.
type OracleGenerator struct {
	oracle    oracle.Oracle
	exercises store.ExerciseRepo
	config    Config
	newID     func() string
}

// NewOracleGenerator creates a generator. exercises may be nil.
func NewOracleGenerator(o oracle.Oracle, exercises store.ExerciseRepo, cfg Config) *OracleGenerator {
	return &OracleGenerator{
		oracle:    o,
		exercises: exercises,
		config:    cfg,
		newID:     uuid.NewString,
	}
}

type exerciseReply struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	AnswerType  string `json:"answer_type"`
	Hint        string `json:"hint"`
	Explanation string `json:"explanation"`
}

func (g *OracleGenerator) Generate(ctx context.Context, input GenerateInput) (*store.Exercise, error) {
	if input.SubtopicID == "" {
		return nil, fmt.Errorf("generate exercise: subtopic is required")
	}
	if !input.Tier.Valid() {
		return nil, fmt.Errorf("generate exercise: invalid tier %q", input.Tier)
	}

	ctx = oracle.WithPurpose(ctx, oracle.PurposeExerciseGen)

	reply, err := g.oracle.Ask(ctx, oracle.Prompt{
		System: systemPrompt,
		Messages: []oracle.Message{
			{Role: oracle.RoleUser, Content: buildUserMessage(input, g.config.MaxPriorQuestions)},
		},
		Schema:      ExerciseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate exercise: %w", err)
	}

	var raw exerciseReply
	if err := json.Unmarshal(reply.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse exercise reply: %w", err)
	}

	d := &Draft{
		Question:    strings.TrimSpace(raw.Question),
		Answer:      strings.TrimSpace(raw.Answer),
		AnswerType:  AnswerType(raw.AnswerType),
		Hint:        strings.TrimSpace(raw.Hint),
		Explanation: strings.TrimSpace(raw.Explanation),
	}
	for _, v := range g.config.Validators {
		if verr := v.Validate(d, input); verr != nil {
			return nil, verr
		}
	}

	ex := &store.Exercise{
		ID:            g.newID(),
		SubtopicID:    input.SubtopicID,
		Difficulty:    input.Tier,
		Question:      d.Question,
		CorrectAnswer: d.Answer,
		Explanation:   d.Explanation,
		Hint:          d.Hint,
	}
	if g.exercises != nil {
		if err := g.exercises.InsertExercise(ctx, ex); err != nil {
			return nil, fmt.Errorf("store exercise: %w", err)
		}
	}
	return ex, nil
}
