// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maturapolski/matura/ent/answerlog"
	"github.com/maturapolski/matura/ent/predicate"
)

// AnswerLogUpdate is the builder for updating AnswerLog entities.
type AnswerLogUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerLogMutation
}

// Where appends a list predicates to the AnswerLogUpdate builder.
func (_u *AnswerLogUpdate) Where(ps ...predicate.AnswerLog) *AnswerLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerLogUpdate) SetSessionID(v string) *AnswerLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerLogUpdate) SetNillableSessionID(v *string) *AnswerLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *AnswerLogUpdate) SetExerciseID(v string) *AnswerLogUpdate {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *AnswerLogUpdate) SetNillableExerciseID(v *string) *AnswerLogUpdate {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnswerLogUpdate) SetKind(v string) *AnswerLogUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnswerLogUpdate) SetNillableKind(v *string) *AnswerLogUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AnswerLogUpdate) SetCategory(v string) *AnswerLogUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AnswerLogUpdate) SetNillableCategory(v *string) *AnswerLogUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerLogUpdate) SetScore(v float64) *AnswerLogUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerLogUpdate) SetNillableScore(v *float64) *AnswerLogUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerLogUpdate) AddScore(v float64) *AnswerLogUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnswerLogUpdate) SetOutcome(v string) *AnswerLogUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnswerLogUpdate) SetNillableOutcome(v *string) *AnswerLogUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the AnswerLogMutation object of the builder.
func (_u *AnswerLogUpdate) Mutation() *AnswerLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerLogUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := answerlog.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "AnswerLog.exercise_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerlog.Table, answerlog.Columns, sqlgraph.NewFieldSpec(answerlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(answerlog.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(answerlog.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(answerlog.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answerlog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answerlog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(answerlog.FieldOutcome, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerLogUpdateOne is the builder for updating a single AnswerLog entity.
type AnswerLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerLogMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerLogUpdateOne) SetSessionID(v string) *AnswerLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerLogUpdateOne) SetNillableSessionID(v *string) *AnswerLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *AnswerLogUpdateOne) SetExerciseID(v string) *AnswerLogUpdateOne {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *AnswerLogUpdateOne) SetNillableExerciseID(v *string) *AnswerLogUpdateOne {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnswerLogUpdateOne) SetKind(v string) *AnswerLogUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnswerLogUpdateOne) SetNillableKind(v *string) *AnswerLogUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AnswerLogUpdateOne) SetCategory(v string) *AnswerLogUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AnswerLogUpdateOne) SetNillableCategory(v *string) *AnswerLogUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerLogUpdateOne) SetScore(v float64) *AnswerLogUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerLogUpdateOne) SetNillableScore(v *float64) *AnswerLogUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerLogUpdateOne) AddScore(v float64) *AnswerLogUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnswerLogUpdateOne) SetOutcome(v string) *AnswerLogUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnswerLogUpdateOne) SetNillableOutcome(v *string) *AnswerLogUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the AnswerLogMutation object of the builder.
func (_u *AnswerLogUpdateOne) Mutation() *AnswerLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerLogUpdate builder.
func (_u *AnswerLogUpdateOne) Where(ps ...predicate.AnswerLog) *AnswerLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerLogUpdateOne) Select(field string, fields ...string) *AnswerLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerLog entity.
func (_u *AnswerLogUpdateOne) Save(ctx context.Context) (*AnswerLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerLogUpdateOne) SaveX(ctx context.Context) *AnswerLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerLogUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := answerlog.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "AnswerLog.exercise_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerLogUpdateOne) sqlSave(ctx context.Context) (_node *AnswerLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerlog.Table, answerlog.Columns, sqlgraph.NewFieldSpec(answerlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerlog.FieldID)
		for _, f := range fields {
			if !answerlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerlog.FieldID {
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
		_spec.SetField(answerlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(answerlog.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(answerlog.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(answerlog.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answerlog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answerlog.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(answerlog.FieldOutcome, field.TypeString, value)
	}
	_node = &AnswerLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
