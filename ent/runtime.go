// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maturapolski/matura/ent/answerlog"
	"github.com/maturapolski/matura/ent/schema"
	"github.com/maturapolski/matura/ent/sessionlog"
	"github.com/maturapolski/matura/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerlogMixin := schema.AnswerLog{}.Mixin()
	answerlogMixinFields0 := answerlogMixin[0].Fields()
	_ = answerlogMixinFields0
	answerlogFields := schema.AnswerLog{}.Fields()
	_ = answerlogFields
	// answerlogDescTimestamp is the schema descriptor for timestamp field.
	answerlogDescTimestamp := answerlogMixinFields0[1].Descriptor()
	// answerlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerlog.DefaultTimestamp = answerlogDescTimestamp.Default.(func() time.Time)
	// answerlogDescSessionID is the schema descriptor for session_id field.
	answerlogDescSessionID := answerlogFields[0].Descriptor()
	// answerlog.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerlog.SessionIDValidator = answerlogDescSessionID.Validators[0].(func(string) error)
	// answerlogDescExerciseID is the schema descriptor for exercise_id field.
	answerlogDescExerciseID := answerlogFields[1].Descriptor()
	// answerlog.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	answerlog.ExerciseIDValidator = answerlogDescExerciseID.Validators[0].(func(string) error)
	// answerlogDescCategory is the schema descriptor for category field.
	answerlogDescCategory := answerlogFields[3].Descriptor()
	// answerlog.DefaultCategory holds the default value on creation for the category field.
	answerlog.DefaultCategory = answerlogDescCategory.Default.(string)
	// answerlogDescScore is the schema descriptor for score field.
	answerlogDescScore := answerlogFields[4].Descriptor()
	// answerlog.DefaultScore holds the default value on creation for the score field.
	answerlog.DefaultScore = answerlogDescScore.Default.(float64)
	sessionlogMixin := schema.SessionLog{}.Mixin()
	sessionlogMixinFields0 := sessionlogMixin[0].Fields()
	_ = sessionlogMixinFields0
	sessionlogFields := schema.SessionLog{}.Fields()
	_ = sessionlogFields
	// sessionlogDescTimestamp is the schema descriptor for timestamp field.
	sessionlogDescTimestamp := sessionlogMixinFields0[1].Descriptor()
	// sessionlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionlog.DefaultTimestamp = sessionlogDescTimestamp.Default.(func() time.Time)
	// sessionlogDescSessionID is the schema descriptor for session_id field.
	sessionlogDescSessionID := sessionlogFields[0].Descriptor()
	// sessionlog.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionlog.SessionIDValidator = sessionlogDescSessionID.Validators[0].(func(string) error)
	// sessionlogDescCompleted is the schema descriptor for completed field.
	sessionlogDescCompleted := sessionlogFields[1].Descriptor()
	// sessionlog.DefaultCompleted holds the default value on creation for the completed field.
	sessionlog.DefaultCompleted = sessionlogDescCompleted.Default.(int)
	// sessionlogDescCorrect is the schema descriptor for correct field.
	sessionlogDescCorrect := sessionlogFields[2].Descriptor()
	// sessionlog.DefaultCorrect holds the default value on creation for the correct field.
	sessionlog.DefaultCorrect = sessionlogDescCorrect.Default.(int)
	// sessionlogDescMaxStreak is the schema descriptor for max_streak field.
	sessionlogDescMaxStreak := sessionlogFields[3].Descriptor()
	// sessionlog.DefaultMaxStreak holds the default value on creation for the max_streak field.
	sessionlog.DefaultMaxStreak = sessionlogDescMaxStreak.Default.(int)
	// sessionlogDescPoints is the schema descriptor for points field.
	sessionlogDescPoints := sessionlogFields[4].Descriptor()
	// sessionlog.DefaultPoints holds the default value on creation for the points field.
	sessionlog.DefaultPoints = sessionlogDescPoints.Default.(float64)
	// sessionlogDescTimeSpent is the schema descriptor for time_spent field.
	sessionlogDescTimeSpent := sessionlogFields[5].Descriptor()
	// sessionlog.DefaultTimeSpent holds the default value on creation for the time_spent field.
	sessionlog.DefaultTimeSpent = sessionlogDescTimeSpent.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
