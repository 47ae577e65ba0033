package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpath/internal/store"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsDegraded(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&ErrRateLimit{}, true},
		{&ErrQuotaExhausted{}, true},
		{&ErrUnavailable{}, true},
		{fmt.Errorf("generate: %w", &ErrQuotaExhausted{}), true},
		{&ErrInvalidReply{}, false},
		{&ErrTruncated{}, false},
		{errors.New("boom"), false},
		{nil, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsDegraded(tc.err), "%v", tc.err)
	}
}

func TestMockOracle_FIFOAndRecording(t *testing.T) {
	mock := NewMockOracle(
		MockReply{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10}},
		MockReply{Err: &ErrRateLimit{}},
	)

	reply, err := mock.Ask(context.Background(), Prompt{System: "sys"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(reply.Content))
	assert.Equal(t, 10, reply.Usage.InputTokens)

	_, err = mock.Ask(context.Background(), Prompt{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Ask(context.Background(), Prompt{})
	var down *ErrUnavailable
	assert.ErrorAs(t, err, &down, "empty queue")

	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, "sys", mock.Calls[0].System)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	mock := NewMockOracle(
		MockReply{Err: errors.New("boom")},
		MockReply{Err: errors.New("boom")},
		MockReply{Content: json.RawMessage(`{}`)},
	)
	o := WithBreaker(mock, BreakerConfig{Failures: 2, Cooldown: time.Hour}, quietLogger())

	for i := 0; i < 2; i++ {
		_, err := o.Ask(context.Background(), Prompt{})
		require.Error(t, err)
	}

	_, err := o.Ask(context.Background(), Prompt{})
	var down *ErrUnavailable
	require.ErrorAs(t, err, &down, "open circuit fails fast")
	assert.True(t, IsDegraded(err))
	assert.Equal(t, 2, mock.CallCount(), "open circuit must not reach the provider")
}

func TestBreaker_PassesThroughSuccess(t *testing.T) {
	mock := NewMockOracle(MockReply{Content: json.RawMessage(`{"ok":true}`)})
	o := WithBreaker(mock, BreakerConfig{}, quietLogger())

	reply, err := o.Ask(context.Background(), Prompt{})
	require.NoError(t, err)
	assert.Equal(t, "mock", reply.Model)
	assert.Equal(t, "mock", o.ModelID())
}

func openEventStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogging_RecordsSuccessAndFailure(t *testing.T) {
	s := openEventStore(t)
	mock := NewMockOracle(
		MockReply{Content: json.RawMessage(`{"question":"2+2"}`), Usage: Usage{InputTokens: 12, OutputTokens: 7}},
		MockReply{Err: &ErrQuotaExhausted{Err: errors.New("payment required")}},
	)
	o := WithLogging(mock, "mock", s.OracleEvents(), quietLogger())
	ctx := WithPurpose(context.Background(), PurposeExerciseGen)

	prompt := Prompt{
		System:   "You write exercises.",
		Messages: []Message{{Role: RoleUser, Content: "one please"}},
	}
	_, err := o.Ask(ctx, prompt)
	require.NoError(t, err)
	_, err = o.Ask(ctx, prompt)
	require.Error(t, err)

	events, err := s.OracleEvents().QueryOracleEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.Contains(t, failed.ErrorMessage, "quota")
	assert.True(t, ok.Success)
	assert.Equal(t, PurposeExerciseGen, ok.Purpose)
	assert.Equal(t, 12, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "[system]")
	assert.Contains(t, ok.RequestBody, "one please")
	assert.JSONEq(t, `{"question":"2+2"}`, ok.ResponseBody)
}

func TestPurposeFrom_Default(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "anthropic without key")

	cfg.Anthropic.APIKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "carrier-pigeon"
	assert.Error(t, cfg.Validate())
}

func TestDiscover(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := Discover(DefaultConfig()); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENROUTER_API_KEY", "o")
	cfg, ok := Discover(DefaultConfig())
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "a", cfg.Anthropic.APIKey)
}

func TestNew_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	cfg.Retry = RetryConfig{MaxAttempts: 1}
	o, err := New(context.Background(), cfg, nil, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "mock", o.ModelID())

	// An empty mock is an unavailable provider.
	_, err = o.Ask(context.Background(), Prompt{})
	assert.True(t, IsDegraded(err))
}
