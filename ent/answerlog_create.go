// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maturapolski/matura/ent/answerlog"
)

// AnswerLogCreate is the builder for creating a AnswerLog entity.
type AnswerLogCreate struct {
	config
	mutation *AnswerLogMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerLogCreate) SetSequence(v int64) *AnswerLogCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerLogCreate) SetTimestamp(v time.Time) *AnswerLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerLogCreate) SetNillableTimestamp(v *time.Time) *AnswerLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerLogCreate) SetSessionID(v string) *AnswerLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *AnswerLogCreate) SetExerciseID(v string) *AnswerLogCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AnswerLogCreate) SetKind(v string) *AnswerLogCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AnswerLogCreate) SetCategory(v string) *AnswerLogCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *AnswerLogCreate) SetNillableCategory(v *string) *AnswerLogCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *AnswerLogCreate) SetScore(v float64) *AnswerLogCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *AnswerLogCreate) SetNillableScore(v *float64) *AnswerLogCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *AnswerLogCreate) SetOutcome(v string) *AnswerLogCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// Mutation returns the AnswerLogMutation object of the builder.
func (_c *AnswerLogCreate) Mutation() *AnswerLogMutation {
	return _c.mutation
}

// Save creates the AnswerLog in the database.
func (_c *AnswerLogCreate) Save(ctx context.Context) (*AnswerLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerLogCreate) SaveX(ctx context.Context) *AnswerLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := answerlog.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := answerlog.DefaultScore
		_c.mutation.SetScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerLogCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerLog.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerLog.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerLog.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerLog.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "AnswerLog.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := answerlog.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "AnswerLog.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AnswerLog.kind"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AnswerLog.category"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AnswerLog.score"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "AnswerLog.outcome"`)}
	}
	return nil
}

func (_c *AnswerLogCreate) sqlSave(ctx context.Context) (*AnswerLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerLogCreate) createSpec() (*AnswerLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerlog.Table, sqlgraph.NewFieldSpec(answerlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerlog.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(answerlog.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(answerlog.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(answerlog.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(answerlog.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(answerlog.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	return _node, _spec
}

// AnswerLogCreateBulk is the builder for creating many AnswerLog entities in bulk.
type AnswerLogCreateBulk struct {
	config
	err      error
	builders []*AnswerLogCreate
}

// Save creates the AnswerLog entities in the database.
func (_c *AnswerLogCreateBulk) Save(ctx context.Context) ([]*AnswerLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerLogCreateBulk) SaveX(ctx context.Context) []*AnswerLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
