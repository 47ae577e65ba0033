package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/abhisek/mathpath/internal/difficulty"
)

// SessionSummary is the durable record of a finished practice session.
type SessionSummary struct {
	ent.Schema
}

func (SessionSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("subtopic_id").
			Default(""),
		field.Time("started_at"),
		field.Time("ended_at"),
		field.Int("duration_secs"),
		field.Int("total"),
		field.Int("correct"),
		field.String("final_difficulty"),
		field.Int("adaptations").
			Comment("Number of tier changes during the session"),
		field.String("readiness").
			Comment("Readiness label at session end"),
		field.String("end_reason").
			Comment("user, time-expired, completed or shutdown"),
		field.JSON("by_tier", difficulty.Breakdown{}).
			Optional().
			Comment("Per-tier correct/total counts"),
	}
}

func (SessionSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "ended_at"),
	}
}
