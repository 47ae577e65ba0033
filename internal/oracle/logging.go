package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/mathpath/internal/store"
)

// loggingOracle records every request in the oracle event log.
type loggingOracle struct {
	inner    Oracle
	provider string
	repo     store.OracleEventRepo
	logger   *slog.Logger
}

// WithLogging wraps an Oracle with request logging. A nil repo only logs
// through logger.
func WithLogging(o Oracle, provider string, repo store.OracleEventRepo, logger *slog.Logger) Oracle {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingOracle{inner: o, provider: provider, repo: repo, logger: logger}
}

func (l *loggingOracle) Ask(ctx context.Context, p Prompt) (*Reply, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	reply, err := l.inner.Ask(ctx, p)

	data := store.OracleRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializePrompt(p),
	}
	if reply != nil {
		data.InputTokens = reply.Usage.InputTokens
		data.OutputTokens = reply.Usage.OutputTokens
		data.Model = reply.Model
		data.ResponseBody = string(reply.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("oracle request failed",
			"provider", l.provider,
			"purpose", purpose,
			"latency_ms", data.LatencyMs,
			"error", err,
		)
	} else {
		l.logger.Debug("oracle request",
			"provider", l.provider,
			"model", data.Model,
			"purpose", purpose,
			"latency_ms", data.LatencyMs,
			"input_tokens", data.InputTokens,
			"output_tokens", data.OutputTokens,
		)
	}

	if l.repo != nil {
		// Recording must never fail the request itself.
		if logErr := l.repo.AppendOracleRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.logger.Warn("failed to record oracle request", "error", logErr)
		}
	}

	return reply, err
}

func (l *loggingOracle) ModelID() string {
	return l.inner.ModelID()
}

// serializePrompt builds a readable representation of the prompt.
func serializePrompt(p Prompt) string {
	var b strings.Builder

	if p.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(p.System)
		b.WriteString("\n\n")
	}
	for _, m := range p.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if p.Schema != nil {
		if def, err := json.Marshal(p.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", p.Schema.Name, def)
		}
	}
	return b.String()
}
