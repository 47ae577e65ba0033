package oracle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
)

// breakerOracle stops calling a failing provider for a cooldown period.
// While open every Ask fails fast with *ErrUnavailable.
type breakerOracle struct {
	inner Oracle
	cb    circuitbreaker.CircuitBreaker[*Reply]
}

// WithBreaker wraps an Oracle with a circuit breaker. Quota and rate-limit
// failures count toward tripping it.
func WithBreaker(o Oracle, cfg BreakerConfig, logger *slog.Logger) Oracle {
	failures := cfg.Failures
	if failures <= 0 {
		failures = 3
	}
	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	cb := circuitbreaker.New[*Reply](circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     cooldown,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= failures
		},
		OnStateChange: func(from, to circuitbreaker.State) {
			logger.Warn("oracle circuit breaker state change",
				"model", o.ModelID(),
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	return &breakerOracle{inner: o, cb: cb}
}

func (b *breakerOracle) Ask(ctx context.Context, p Prompt) (*Reply, error) {
	called := false
	reply, err := b.cb.Execute(ctx, func(ctx context.Context) (*Reply, error) {
		called = true
		return b.inner.Ask(ctx, p)
	})
	if err != nil && !called && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return nil, &ErrUnavailable{Err: err}
	}
	return reply, err
}

func (b *breakerOracle) ModelID() string {
	return b.inner.ModelID()
}
