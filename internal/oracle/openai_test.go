package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestOpenAIOracle(t *testing.T, handler http.HandlerFunc) *OpenAIOracle {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newOpenAICompatible(ProviderConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	}
}

func TestOpenAIOracle_HappyPathWithSchema(t *testing.T) {
	var gotBody map[string]any
	o := newTestOpenAIOracle(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"name":"Ada","age":11}`, "stop"))
	})

	reply, err := o.Ask(context.Background(), Prompt{
		System:    "You write math exercises.",
		Messages:  []Message{{Role: RoleUser, Content: "One exercise."}},
		Schema:    testSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Usage.InputTokens != 40 || reply.Usage.OutputTokens != 25 {
		t.Fatalf("unexpected usage: %+v", reply.Usage)
	}
	if _, ok := gotBody["response_format"]; !ok {
		t.Fatal("expected response_format in request body")
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
}

func TestOpenAIOracle_SchemaViolation(t *testing.T) {
	o := newTestOpenAIOracle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"name":"Ada"}`, "stop"))
	})

	_, err := o.Ask(context.Background(), Prompt{Schema: testSchema(), MaxTokens: 64})
	var invalid *ErrInvalidReply
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidReply, got: %T (%v)", err, err)
	}
	if IsDegraded(err) {
		t.Fatal("an invalid reply is not a degradation")
	}
}

func TestOpenAIOracle_Truncated(t *testing.T) {
	o := newTestOpenAIOracle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"name":`, "length"))
	})

	_, err := o.Ask(context.Background(), Prompt{MaxTokens: 4})
	var truncated *ErrTruncated
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrTruncated, got: %T (%v)", err, err)
	}
}

func TestOpenAIOracle_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusTooManyRequests, "*oracle.ErrRateLimit"},
		{http.StatusPaymentRequired, "*oracle.ErrQuotaExhausted"},
		{http.StatusBadGateway, "*oracle.ErrUnavailable"},
	}

	for _, tc := range tests {
		o := newTestOpenAIOracle(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tc.status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"type": "error", "message": "nope", "code": "x"},
			})
		})

		_, err := o.Ask(context.Background(), Prompt{MaxTokens: 10})
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}
		if got := typeName(err); got != tc.want {
			t.Errorf("status %d: got %s (%v), want %s", tc.status, got, err, tc.want)
		}
	}
}

func TestNewOpenRouterOracle_DefaultsBaseURL(t *testing.T) {
	o, err := NewOpenRouterOracle(ProviderConfig{APIKey: "k", Model: "google/gemini-2.0-flash-exp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Fatalf("ModelID = %q", o.ModelID())
	}

	if _, err := NewOpenRouterOracle(ProviderConfig{}); err == nil || !strings.Contains(err.Error(), "openrouter") {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func typeName(err error) string {
	switch err.(type) {
	case *ErrRateLimit:
		return "*oracle.ErrRateLimit"
	case *ErrQuotaExhausted:
		return "*oracle.ErrQuotaExhausted"
	case *ErrUnavailable:
		return "*oracle.ErrUnavailable"
	case *ErrInvalidReply:
		return "*oracle.ErrInvalidReply"
	}
	return "other"
}
