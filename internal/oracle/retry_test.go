package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockOracle(MockReply{Content: json.RawMessage(`{"ok":true}`)})
	o := WithRetry(mock, retryConfig())

	reply, err := o.Ask(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", reply.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockOracle(
		MockReply{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockReply{Err: &ErrRateLimit{Err: errors.New("slow down")}},
		MockReply{Content: json.RawMessage(`{"ok":true}`)},
	)
	o := WithRetry(mock, retryConfig())

	if _, err := o.Ask(context.Background(), Prompt{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_QuotaNeverRetried(t *testing.T) {
	mock := NewMockOracle(
		MockReply{Err: &ErrQuotaExhausted{Err: errors.New("402")}},
		MockReply{Content: json.RawMessage(`{}`)},
	)
	o := WithRetry(mock, retryConfig())

	_, err := o.Ask(context.Background(), Prompt{})
	var quota *ErrQuotaExhausted
	if !errors.As(err, &quota) {
		t.Fatalf("expected ErrQuotaExhausted, got %T (%v)", err, err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TruncatedNeverRetried(t *testing.T) {
	mock := NewMockOracle(MockReply{Err: &ErrTruncated{}}, MockReply{Content: json.RawMessage(`{}`)})
	o := WithRetry(mock, retryConfig())

	if _, err := o.Ask(context.Background(), Prompt{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidReplyRetriedOnce(t *testing.T) {
	mock := NewMockOracle(
		MockReply{Err: &ErrInvalidReply{Err: errors.New("bad")}},
		MockReply{Err: &ErrInvalidReply{Err: errors.New("bad again")}},
		MockReply{Content: json.RawMessage(`{}`)},
	)
	o := WithRetry(mock, retryConfig())

	_, err := o.Ask(context.Background(), Prompt{})
	var invalid *ErrInvalidReply
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidReply, got %T", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMockOracle(
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Content: json.RawMessage(`{}`)},
	)
	o := WithRetry(mock, retryConfig())

	_, err := o.Ask(context.Background(), Prompt{})
	if !IsDegraded(err) {
		t.Fatalf("expected degraded error, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	mock := NewMockOracle(MockReply{Err: &ErrUnavailable{}}, MockReply{Content: json.RawMessage(`{}`)})
	o := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := o.Ask(ctx, Prompt{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetry_BackoffHonorsRetryAfter(t *testing.T) {
	r := &retryOracle{config: retryConfig()}
	got := r.backoff(0, &ErrRateLimit{RetryAfter: 3 * time.Second})
	if got != 3*time.Second {
		t.Fatalf("backoff = %s, want 3s", got)
	}

	capped := r.backoff(10, &ErrUnavailable{})
	if capped > 12*time.Millisecond {
		t.Fatalf("backoff = %s, want at most MaxWait plus jitter", capped)
	}
}
