package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SessionLog is one finished learning session. Recording the same session
// again replaces the row.
type SessionLog struct {
	ent.Schema
}

func (SessionLog) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("Server-issued session id"),
		field.Int("completed").
			Default(0).
			Comment("Exercises answered"),
		field.Int("correct").
			Default(0),
		field.Int("max_streak").
			Default(0),
		field.Float("points").
			Default(0),
		field.Int("time_spent").
			Default(0).
			Comment("Seconds spent answering"),
		field.Time("started_at").
			Optional().
			Nillable(),
	}
}
