package oracle

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryOracle retries transient errors with exponential backoff and jitter.
type retryOracle struct {
	inner  Oracle
	config RetryConfig
}

// WithRetry wraps an Oracle with retry logic.
func WithRetry(o Oracle, cfg RetryConfig) Oracle {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryOracle{inner: o, config: cfg}
}

func (r *retryOracle) Ask(ctx context.Context, p Prompt) (*Reply, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		reply, err := r.inner.Ask(ctx, p)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retryOracle) ModelID() string {
	return r.inner.ModelID()
}

func shouldRetry(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Out of credits and truncation do not clear up on their own.
	var quota *ErrQuotaExhausted
	if errors.As(err, &quota) {
		return false
	}
	var truncated *ErrTruncated
	if errors.As(err, &truncated) {
		return false
	}

	// Invalid replies get one retry.
	var invalid *ErrInvalidReply
	if errors.As(err, &invalid) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limits, outages and network errors are transient.
	return true
}

func (r *retryOracle) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
