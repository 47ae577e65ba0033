package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/oracle"
	"github.com/abhisek/mathpath/internal/store"
)

func exerciseJSON(question, answer, answerType string) json.RawMessage {
	b, _ := json.Marshal(map[string]string{
		"question":    question,
		"answer":      answer,
		"answer_type": answerType,
		"hint":        "Work one step at a time.",
		"explanation": "Step by step: " + question + " gives " + answer + ".",
	})
	return b
}

func testInput() GenerateInput {
	return GenerateInput{
		SubtopicID:   "quadratics",
		SubtopicName: "Quadratic equations",
		Tier:         difficulty.TierMedium,
		SubLevel:     2,
	}
}

func TestGenerate_StoresExercise(t *testing.T) {
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := oracle.NewMockOracle(oracle.MockReply{
		Content: exerciseJSON("Solve x^2 = 9", "x = 3, -3", "expression"),
	})
	gen := NewOracleGenerator(mock, s.Exercises(), DefaultConfig())

	ex, err := gen.Generate(context.Background(), testInput())
	require.NoError(t, err)
	assert.NotEmpty(t, ex.ID)
	assert.Equal(t, "quadratics", ex.SubtopicID)
	assert.Equal(t, difficulty.TierMedium, ex.Difficulty)
	assert.Equal(t, "x = 3, -3", ex.CorrectAnswer)

	got, err := s.Exercises().GetExercise(context.Background(), ex.ID)
	require.NoError(t, err)
	assert.Equal(t, ex.Question, got.Question)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, ExerciseSchema, call.Schema)
	assert.Contains(t, call.Messages[0].Content, "Quadratic equations")
	assert.Contains(t, call.Messages[0].Content, "medium/2")
}

func TestGenerate_PurposeLabel(t *testing.T) {
	var seen string
	o := purposeSpy{fn: func(ctx context.Context) { seen = oracle.PurposeFrom(ctx) }}
	gen := NewOracleGenerator(o, nil, DefaultConfig())

	_, _ = gen.Generate(context.Background(), testInput())
	assert.Equal(t, oracle.PurposeExerciseGen, seen)
}

type purposeSpy struct{ fn func(context.Context) }

func (p purposeSpy) Ask(ctx context.Context, _ oracle.Prompt) (*oracle.Reply, error) {
	p.fn(ctx)
	return nil, &oracle.ErrUnavailable{}
}

func (p purposeSpy) ModelID() string { return "spy" }

func TestGenerate_OracleErrorIsWrapped(t *testing.T) {
	mock := oracle.NewMockOracle(oracle.MockReply{Err: &oracle.ErrQuotaExhausted{Err: errors.New("402")}})
	gen := NewOracleGenerator(mock, nil, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var quota *oracle.ErrQuotaExhausted
	require.ErrorAs(t, err, &quota)
	assert.True(t, oracle.IsDegraded(err))
}

func TestGenerate_ValidatorRejects(t *testing.T) {
	tests := []struct {
		name      string
		content   json.RawMessage
		validator string
	}{
		{"blank answer", exerciseJSON("What is 2 + 2?", " , ", "integer"), "structural"},
		{"non-canonical fraction", exerciseJSON("Simplify 6/8", "6/8", "fraction"), "answer-format"},
		{"wrong arithmetic", exerciseJSON("What is 345 + 278?", "613", "integer"), "math-check"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := oracle.NewMockOracle(oracle.MockReply{Content: tc.content})
			gen := NewOracleGenerator(mock, nil, DefaultConfig())

			_, err := gen.Generate(context.Background(), testInput())
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.validator, verr.Validator)
		})
	}
}

func TestGenerate_RejectsBadInput(t *testing.T) {
	mock := oracle.NewMockOracle()
	gen := NewOracleGenerator(mock, nil, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Tier: difficulty.TierEasy})
	assert.Error(t, err)
	_, err = gen.Generate(context.Background(), GenerateInput{SubtopicID: "x", Tier: "extreme"})
	assert.Error(t, err)
	assert.Zero(t, mock.CallCount())
}

func TestBuildDedup(t *testing.T) {
	assert.Equal(t, "None", buildDedup(nil, 5))
	assert.Equal(t, "1. b\n2. c", buildDedup([]string{"a", "b", "c"}, 2))
}
