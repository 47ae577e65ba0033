package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathpath/ent"
	"github.com/abhisek/mathpath/ent/oraclerequestevent"
	"github.com/abhisek/mathpath/ent/predicate"
)

type oracleEventRepo struct {
	client *ent.Client
	now    func() time.Time
}

func (r *oracleEventRepo) AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error {
	_, err := r.client.OracleRequestEvent.Create().
		SetTimestamp(r.now().UTC()).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save oracle request event: %w", err)
	}
	return nil
}

// QueryOracleEvents returns events newest first.
func (r *oracleEventRepo) QueryOracleEvents(ctx context.Context, opts QueryOpts) ([]OracleRequestEvent, error) {
	var preds []predicate.OracleRequestEvent
	if opts.After > 0 {
		preds = append(preds, oraclerequestevent.IDGT(int(opts.After)))
	}
	if opts.Before > 0 {
		preds = append(preds, oraclerequestevent.IDLT(int(opts.Before)))
	}
	if !opts.From.IsZero() {
		preds = append(preds, oraclerequestevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, oraclerequestevent.TimestampLTE(opts.To.UTC()))
	}

	q := r.client.OracleRequestEvent.Query().
		Where(preds...).
		Order(ent.Desc(oraclerequestevent.FieldID))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query oracle events: %w", err)
	}
	out := make([]OracleRequestEvent, 0, len(rows))
	for _, e := range rows {
		out = append(out, *entOracleEventToEvent(e))
	}
	return out, nil
}

func (r *oracleEventRepo) GetOracleEvent(ctx context.Context, id int64) (*OracleRequestEvent, error) {
	e, err := r.client.OracleRequestEvent.Get(ctx, int(id))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("oracle event %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query oracle event: %w", err)
	}
	return entOracleEventToEvent(e), nil
}

func entOracleEventToEvent(e *ent.OracleRequestEvent) *OracleRequestEvent {
	return &OracleRequestEvent{
		ID:        int64(e.ID),
		Timestamp: e.Timestamp.UTC(),
		OracleRequestEventData: OracleRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
