// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maturapolski/matura/ent/predicate"
	"github.com/maturapolski/matura/ent/sessionlog"
)

// SessionLogUpdate is the builder for updating SessionLog entities.
type SessionLogUpdate struct {
	config
	hooks    []Hook
	mutation *SessionLogMutation
}

// Where appends a list predicates to the SessionLogUpdate builder.
func (_u *SessionLogUpdate) Where(ps ...predicate.SessionLog) *SessionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionLogUpdate) SetSessionID(v string) *SessionLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableSessionID(v *string) *SessionLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionLogUpdate) SetCompleted(v int) *SessionLogUpdate {
	_u.mutation.ResetCompleted()
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableCompleted(v *int) *SessionLogUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// AddCompleted adds value to the "completed" field.
func (_u *SessionLogUpdate) AddCompleted(v int) *SessionLogUpdate {
	_u.mutation.AddCompleted(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionLogUpdate) SetCorrect(v int) *SessionLogUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableCorrect(v *int) *SessionLogUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionLogUpdate) AddCorrect(v int) *SessionLogUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetMaxStreak sets the "max_streak" field.
func (_u *SessionLogUpdate) SetMaxStreak(v int) *SessionLogUpdate {
	_u.mutation.ResetMaxStreak()
	_u.mutation.SetMaxStreak(v)
	return _u
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableMaxStreak(v *int) *SessionLogUpdate {
	if v != nil {
		_u.SetMaxStreak(*v)
	}
	return _u
}

// AddMaxStreak adds value to the "max_streak" field.
func (_u *SessionLogUpdate) AddMaxStreak(v int) *SessionLogUpdate {
	_u.mutation.AddMaxStreak(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *SessionLogUpdate) SetPoints(v float64) *SessionLogUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillablePoints(v *float64) *SessionLogUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *SessionLogUpdate) AddPoints(v float64) *SessionLogUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *SessionLogUpdate) SetTimeSpent(v int) *SessionLogUpdate {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableTimeSpent(v *int) *SessionLogUpdate {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *SessionLogUpdate) AddTimeSpent(v int) *SessionLogUpdate {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionLogUpdate) SetStartedAt(v time.Time) *SessionLogUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableStartedAt(v *time.Time) *SessionLogUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionLogUpdate) ClearStartedAt() *SessionLogUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// Mutation returns the SessionLogMutation object of the builder.
func (_u *SessionLogUpdate) Mutation() *SessionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionLogUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlog.Table, sessionlog.Columns, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessionlog.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleted(); ok {
		_spec.AddField(sessionlog.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionlog.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionlog.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxStreak(); ok {
		_spec.SetField(sessionlog.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStreak(); ok {
		_spec.AddField(sessionlog.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(sessionlog.FieldPoints, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(sessionlog.FieldPoints, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(sessionlog.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(sessionlog.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sessionlog.FieldStartedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionLogUpdateOne is the builder for updating a single SessionLog entity.
type SessionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionLogMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionLogUpdateOne) SetSessionID(v string) *SessionLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableSessionID(v *string) *SessionLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionLogUpdateOne) SetCompleted(v int) *SessionLogUpdateOne {
	_u.mutation.ResetCompleted()
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableCompleted(v *int) *SessionLogUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// AddCompleted adds value to the "completed" field.
func (_u *SessionLogUpdateOne) AddCompleted(v int) *SessionLogUpdateOne {
	_u.mutation.AddCompleted(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionLogUpdateOne) SetCorrect(v int) *SessionLogUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableCorrect(v *int) *SessionLogUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionLogUpdateOne) AddCorrect(v int) *SessionLogUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetMaxStreak sets the "max_streak" field.
func (_u *SessionLogUpdateOne) SetMaxStreak(v int) *SessionLogUpdateOne {
	_u.mutation.ResetMaxStreak()
	_u.mutation.SetMaxStreak(v)
	return _u
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableMaxStreak(v *int) *SessionLogUpdateOne {
	if v != nil {
		_u.SetMaxStreak(*v)
	}
	return _u
}

// AddMaxStreak adds value to the "max_streak" field.
func (_u *SessionLogUpdateOne) AddMaxStreak(v int) *SessionLogUpdateOne {
	_u.mutation.AddMaxStreak(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *SessionLogUpdateOne) SetPoints(v float64) *SessionLogUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillablePoints(v *float64) *SessionLogUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *SessionLogUpdateOne) AddPoints(v float64) *SessionLogUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetTimeSpent sets the "time_spent" field.
func (_u *SessionLogUpdateOne) SetTimeSpent(v int) *SessionLogUpdateOne {
	_u.mutation.ResetTimeSpent()
	_u.mutation.SetTimeSpent(v)
	return _u
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableTimeSpent(v *int) *SessionLogUpdateOne {
	if v != nil {
		_u.SetTimeSpent(*v)
	}
	return _u
}

// AddTimeSpent adds value to the "time_spent" field.
func (_u *SessionLogUpdateOne) AddTimeSpent(v int) *SessionLogUpdateOne {
	_u.mutation.AddTimeSpent(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionLogUpdateOne) SetStartedAt(v time.Time) *SessionLogUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableStartedAt(v *time.Time) *SessionLogUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionLogUpdateOne) ClearStartedAt() *SessionLogUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// Mutation returns the SessionLogMutation object of the builder.
func (_u *SessionLogUpdateOne) Mutation() *SessionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionLogUpdate builder.
func (_u *SessionLogUpdateOne) Where(ps ...predicate.SessionLog) *SessionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionLogUpdateOne) Select(field string, fields ...string) *SessionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionLog entity.
func (_u *SessionLogUpdateOne) Save(ctx context.Context) (*SessionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionLogUpdateOne) SaveX(ctx context.Context) *SessionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionLogUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionLogUpdateOne) sqlSave(ctx context.Context) (_node *SessionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlog.Table, sessionlog.Columns, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionlog.FieldID)
		for _, f := range fields {
			if !sessionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessionlog.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleted(); ok {
		_spec.AddField(sessionlog.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionlog.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionlog.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxStreak(); ok {
		_spec.SetField(sessionlog.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStreak(); ok {
		_spec.AddField(sessionlog.FieldMaxStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(sessionlog.FieldPoints, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(sessionlog.FieldPoints, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpent(); ok {
		_spec.SetField(sessionlog.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpent(); ok {
		_spec.AddField(sessionlog.FieldTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sessionlog.FieldStartedAt, field.TypeTime)
	}
	_node = &SessionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
