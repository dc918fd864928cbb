// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerLog is the predicate function for answerlog builders.
type AnswerLog func(*sql.Selector)

// SessionLog is the predicate function for sessionlog builders.
type SessionLog func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
