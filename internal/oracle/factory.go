package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/mathpath/internal/store"
)

// New creates an Oracle from configuration, wrapped as
// caller → timeout → breaker → retry → logging → provider.
//
// The breaker sits outside the retry loop so one exhausted retry sequence
// counts as one failure.
func New(ctx context.Context, cfg Config, repo store.OracleEventRepo, logger *slog.Logger) (Oracle, error) {
	var (
		base Oracle
		err  error
	)

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicOracle(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIOracle(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterOracle(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiOracle(ctx, cfg.Gemini)
	case "mock":
		base = NewMockOracle()
	default:
		return nil, fmt.Errorf("unknown oracle provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s oracle: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, repo, logger)
	retried := WithRetry(logged, cfg.Retry)
	guarded := WithBreaker(retried, cfg.Breaker, logger)
	if cfg.Timeout > 0 {
		return &timeoutOracle{inner: guarded, timeout: cfg.Timeout}, nil
	}
	return guarded, nil
}

// timeoutOracle bounds each Ask, retries included.
type timeoutOracle struct {
	inner   Oracle
	timeout time.Duration
}

func (t *timeoutOracle) Ask(ctx context.Context, p Prompt) (*Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Ask(ctx, p)
}

func (t *timeoutOracle) ModelID() string {
	return t.inner.ModelID()
}
