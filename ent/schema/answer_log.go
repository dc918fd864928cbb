package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerLog is one graded answer.
type AnswerLog struct {
	ent.Schema
}

func (AnswerLog) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("exercise_id").
			NotEmpty(),
		field.String("kind").
			Comment("choice, text or essay"),
		field.String("category").
			Default(""),
		field.Float("score").
			Default(0),
		field.String("outcome").
			Comment("correct, partial or wrong"),
	}
}

func (AnswerLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category"),
	}
}
