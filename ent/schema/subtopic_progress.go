package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubtopicProgress holds the current difficulty state of a learner in one
// subtopic. There is at most one row per (user_id, subtopic_id).
type SubtopicProgress struct {
	ent.Schema
}

func (SubtopicProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable(),
		field.String("subtopic_id").
			Immutable(),
		field.Enum("tier").
			Values("easy", "medium", "hard"),
		field.Int("sub_level").
			Range(1, 3).
			Comment("Position within the tier, 1-3"),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (SubtopicProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subtopic_id").
			Unique(),
	}
}
