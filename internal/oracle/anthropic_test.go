package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicOracle(t *testing.T, handler http.HandlerFunc) *AnthropicOracle {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicOracle{
		client: &client,
		model:  "claude-sonnet-4-20250514",
	}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": stop,
		"usage": map[string]any{
			"input_tokens":  50,
			"output_tokens": 30,
		},
	}
}

func anthropicError(status int, typ string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": typ, "message": "nope"},
		})
	}
}

func TestAnthropicOracle_HappyPath(t *testing.T) {
	o := newTestAnthropicOracle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"question":"What is 3*4?","answer":"12"}`, "end_turn"))
	})

	reply, err := o.Ask(context.Background(), Prompt{
		System:    "You write math exercises.",
		Messages:  []Message{{Role: RoleUser, Content: "One exercise, please."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Usage.InputTokens != 50 || reply.Usage.TotalTokens != 80 {
		t.Fatalf("unexpected usage: %+v", reply.Usage)
	}
	if reply.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", reply.StopReason)
	}
}

func TestAnthropicOracle_Truncated(t *testing.T) {
	o := newTestAnthropicOracle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"question":"What is`, "max_tokens"))
	})

	_, err := o.Ask(context.Background(), Prompt{Messages: []Message{{Role: RoleUser, Content: "x"}}, MaxTokens: 5})
	var truncated *ErrTruncated
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrTruncated, got: %T (%v)", err, err)
	}
}

func TestAnthropicOracle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		typ     string
		check   func(error) bool
		wantErr string
	}{
		{"rate limit", http.StatusTooManyRequests, "rate_limit_error",
			func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }, "ErrRateLimit"},
		{"quota", http.StatusPaymentRequired, "billing_error",
			func(err error) bool { var e *ErrQuotaExhausted; return errors.As(err, &e) }, "ErrQuotaExhausted"},
		{"server error", http.StatusInternalServerError, "api_error",
			func(err error) bool { var e *ErrUnavailable; return errors.As(err, &e) }, "ErrUnavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestAnthropicOracle(t, anthropicError(tc.status, tc.typ))
			_, err := o.Ask(context.Background(), Prompt{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tc.check(err) {
				t.Fatalf("expected %s, got: %T (%v)", tc.wantErr, err, err)
			}
			if !IsDegraded(err) {
				t.Fatalf("expected %v to be degraded", err)
			}
		})
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, anthropicModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
