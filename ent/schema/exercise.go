package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Exercise is a stored problem with its canonical answer. Rows are never
// updated once written.
type Exercise struct {
	ent.Schema
}

func (Exercise) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Caller-assigned exercise ID"),
		field.String("subtopic_id").
			Immutable().
			Comment("Subtopic the exercise belongs to"),
		field.Enum("difficulty").
			Values("easy", "medium", "hard").
			Immutable().
			Comment("Difficulty tier"),
		field.String("question").
			Default("").
			Immutable(),
		field.String("correct_answer").
			Immutable().
			Comment("Canonical answer compared against submissions"),
		field.String("explanation").
			Default("").
			Immutable(),
		field.String("hint").
			Default("").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Exercise) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", Attempt.Type),
	}
}

func (Exercise) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subtopic_id", "difficulty"),
	}
}
