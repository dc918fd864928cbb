// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maturapolski/matura/ent/sessionlog"
)

// SessionLog is the model entity for the SessionLog schema.
type SessionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence shared by answers and sessions
	Sequence int64 `json:"sequence,omitempty"`
	// When the answer was graded or the session closed
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Server-issued session id
	SessionID string `json:"session_id,omitempty"`
	// Exercises answered
	Completed int `json:"completed,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// MaxStreak holds the value of the "max_streak" field.
	MaxStreak int `json:"max_streak,omitempty"`
	// Points holds the value of the "points" field.
	Points float64 `json:"points,omitempty"`
	// Seconds spent answering
	TimeSpent int `json:"time_spent,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt    *time.Time `json:"started_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionlog.FieldPoints:
			values[i] = new(sql.NullFloat64)
		case sessionlog.FieldID, sessionlog.FieldSequence, sessionlog.FieldCompleted, sessionlog.FieldCorrect, sessionlog.FieldMaxStreak, sessionlog.FieldTimeSpent:
			values[i] = new(sql.NullInt64)
		case sessionlog.FieldSessionID:
			values[i] = new(sql.NullString)
		case sessionlog.FieldTimestamp, sessionlog.FieldStartedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionLog fields.
func (_m *SessionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionlog.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionlog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionlog.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionlog.FieldCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = int(value.Int64)
			}
		case sessionlog.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case sessionlog.FieldMaxStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_streak", values[i])
			} else if value.Valid {
				_m.MaxStreak = int(value.Int64)
			}
		case sessionlog.FieldPoints:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = value.Float64
			}
		case sessionlog.FieldTimeSpent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent", values[i])
			} else if value.Valid {
				_m.TimeSpent = int(value.Int64)
			}
		case sessionlog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionLog.
// This includes values selected through modifiers, order, etc.
func (_m *SessionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionLog.
// Note that you need to call SessionLog.Unwrap() before calling this method if this SessionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionLog) Update() *SessionLogUpdateOne {
	return NewSessionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionLog) Unwrap() *SessionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionLog) String() string {
	var builder strings.Builder
	builder.WriteString("SessionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("max_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxStreak))
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	builder.WriteString("time_spent=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpent))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SessionLogs is a parsable slice of SessionLog.
type SessionLogs []*SessionLog
