// Code generated by ent, DO NOT EDIT.

package sessionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maturapolski/matura/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldSessionID, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldCompleted, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldCorrect, v))
}

// MaxStreak applies equality check predicate on the "max_streak" field. It's identical to MaxStreakEQ.
func MaxStreak(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldMaxStreak, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldPoints, v))
}

// TimeSpent applies equality check predicate on the "time_spent" field. It's identical to TimeSpentEQ.
func TimeSpent(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldTimeSpent, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldStartedAt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldContainsFold(FieldSessionID, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldCompleted, v))
}

// CompletedIn applies the In predicate on the "completed" field.
func CompletedIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldCompleted, vs...))
}

// CompletedNotIn applies the NotIn predicate on the "completed" field.
func CompletedNotIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldCompleted, vs...))
}

// CompletedGT applies the GT predicate on the "completed" field.
func CompletedGT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldCompleted, v))
}

// CompletedGTE applies the GTE predicate on the "completed" field.
func CompletedGTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldCompleted, v))
}

// CompletedLT applies the LT predicate on the "completed" field.
func CompletedLT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldCompleted, v))
}

// CompletedLTE applies the LTE predicate on the "completed" field.
func CompletedLTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldCompleted, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldCorrect, v))
}

// MaxStreakEQ applies the EQ predicate on the "max_streak" field.
func MaxStreakEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldMaxStreak, v))
}

// MaxStreakNEQ applies the NEQ predicate on the "max_streak" field.
func MaxStreakNEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldMaxStreak, v))
}

// MaxStreakIn applies the In predicate on the "max_streak" field.
func MaxStreakIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldMaxStreak, vs...))
}

// MaxStreakNotIn applies the NotIn predicate on the "max_streak" field.
func MaxStreakNotIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldMaxStreak, vs...))
}

// MaxStreakGT applies the GT predicate on the "max_streak" field.
func MaxStreakGT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldMaxStreak, v))
}

// MaxStreakGTE applies the GTE predicate on the "max_streak" field.
func MaxStreakGTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldMaxStreak, v))
}

// MaxStreakLT applies the LT predicate on the "max_streak" field.
func MaxStreakLT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldMaxStreak, v))
}

// MaxStreakLTE applies the LTE predicate on the "max_streak" field.
func MaxStreakLTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldMaxStreak, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v float64) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldPoints, v))
}

// TimeSpentEQ applies the EQ predicate on the "time_spent" field.
func TimeSpentEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldTimeSpent, v))
}

// TimeSpentNEQ applies the NEQ predicate on the "time_spent" field.
func TimeSpentNEQ(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldTimeSpent, v))
}

// TimeSpentIn applies the In predicate on the "time_spent" field.
func TimeSpentIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldTimeSpent, vs...))
}

// TimeSpentNotIn applies the NotIn predicate on the "time_spent" field.
func TimeSpentNotIn(vs ...int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldTimeSpent, vs...))
}

// TimeSpentGT applies the GT predicate on the "time_spent" field.
func TimeSpentGT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldTimeSpent, v))
}

// TimeSpentGTE applies the GTE predicate on the "time_spent" field.
func TimeSpentGTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldTimeSpent, v))
}

// TimeSpentLT applies the LT predicate on the "time_spent" field.
func TimeSpentLT(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldTimeSpent, v))
}

// TimeSpentLTE applies the LTE predicate on the "time_spent" field.
func TimeSpentLTE(v int) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldTimeSpent, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SessionLog {
	return predicate.SessionLog(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.SessionLog {
	return predicate.SessionLog(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.SessionLog {
	return predicate.SessionLog(sql.FieldNotNull(FieldStartedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionLog) predicate.SessionLog {
	return predicate.SessionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionLog) predicate.SessionLog {
	return predicate.SessionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionLog) predicate.SessionLog {
	return predicate.SessionLog(sql.NotPredicates(p))
}
