package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one learner submission. Attempts are append-only.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("user_answer").
			Optional().
			Nillable().
			Immutable().
			Comment("Raw answer text; null when the learner skipped"),
		field.Bool("is_correct").
			Immutable(),
		field.Int("hints_used").
			Default(0).
			Immutable(),
		field.Int("time_spent_seconds").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("exercise", Exercise.Type).
			Ref("attempts").
			Field("exercise_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("exercise_id"),
	}
}
