package oracle

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrQuotaExhausted indicates the provider returned 402: the account is out
// of credits. Retrying does not help.
type ErrQuotaExhausted struct {
	Err error
}

func (e *ErrQuotaExhausted) Error() string {
	return fmt.Sprintf("oracle quota exhausted: %v", e.Err)
}

func (e *ErrQuotaExhausted) Unwrap() error { return e.Err }

// ErrUnavailable indicates the provider is down, unreachable or the circuit
// breaker is open.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("oracle unavailable: %v", e.Err)
	}
	return "oracle unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrInvalidReply indicates the reply does not conform to the requested
// schema.
type ErrInvalidReply struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidReply) Error() string {
	return fmt.Sprintf("invalid oracle reply: %v", e.Err)
}

func (e *ErrInvalidReply) Unwrap() error { return e.Err }

// ErrTruncated indicates the reply hit the MaxTokens limit.
type ErrTruncated struct {
	Content json.RawMessage
}

func (e *ErrTruncated) Error() string {
	return "oracle reply truncated: max tokens exceeded"
}

// IsDegraded reports whether err means the oracle is temporarily or
// commercially unable to serve: rate limited, out of quota or unavailable.
// Callers substitute fallback content for these.
func IsDegraded(err error) bool {
	var (
		rl    *ErrRateLimit
		quota *ErrQuotaExhausted
		down  *ErrUnavailable
	)
	return errors.As(err, &rl) || errors.As(err, &quota) || errors.As(err, &down)
}
