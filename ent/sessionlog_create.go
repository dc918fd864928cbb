// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maturapolski/matura/ent/sessionlog"
)

// SessionLogCreate is the builder for creating a SessionLog entity.
type SessionLogCreate struct {
	config
	mutation *SessionLogMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionLogCreate) SetSequence(v int64) *SessionLogCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionLogCreate) SetTimestamp(v time.Time) *SessionLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableTimestamp(v *time.Time) *SessionLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionLogCreate) SetSessionID(v string) *SessionLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *SessionLogCreate) SetCompleted(v int) *SessionLogCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableCompleted(v *int) *SessionLogCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *SessionLogCreate) SetCorrect(v int) *SessionLogCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableCorrect(v *int) *SessionLogCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetMaxStreak sets the "max_streak" field.
func (_c *SessionLogCreate) SetMaxStreak(v int) *SessionLogCreate {
	_c.mutation.SetMaxStreak(v)
	return _c
}

// SetNillableMaxStreak sets the "max_streak" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableMaxStreak(v *int) *SessionLogCreate {
	if v != nil {
		_c.SetMaxStreak(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *SessionLogCreate) SetPoints(v float64) *SessionLogCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillablePoints(v *float64) *SessionLogCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetTimeSpent sets the "time_spent" field.
func (_c *SessionLogCreate) SetTimeSpent(v int) *SessionLogCreate {
	_c.mutation.SetTimeSpent(v)
	return _c
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableTimeSpent(v *int) *SessionLogCreate {
	if v != nil {
		_c.SetTimeSpent(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionLogCreate) SetStartedAt(v time.Time) *SessionLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableStartedAt(v *time.Time) *SessionLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// Mutation returns the SessionLogMutation object of the builder.
func (_c *SessionLogCreate) Mutation() *SessionLogMutation {
	return _c.mutation
}

// Save creates the SessionLog in the database.
func (_c *SessionLogCreate) Save(ctx context.Context) (*SessionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionLogCreate) SaveX(ctx context.Context) *SessionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := sessionlog.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := sessionlog.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.MaxStreak(); !ok {
		v := sessionlog.DefaultMaxStreak
		_c.mutation.SetMaxStreak(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := sessionlog.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.TimeSpent(); !ok {
		v := sessionlog.DefaultTimeSpent
		_c.mutation.SetTimeSpent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionLogCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionLog.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionLog.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionLog.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "SessionLog.completed"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SessionLog.correct"`)}
	}
	if _, ok := _c.mutation.MaxStreak(); !ok {
		return &ValidationError{Name: "max_streak", err: errors.New(`ent: missing required field "SessionLog.max_streak"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "SessionLog.points"`)}
	}
	if _, ok := _c.mutation.TimeSpent(); !ok {
		return &ValidationError{Name: "time_spent", err: errors.New(`ent: missing required field "SessionLog.time_spent"`)}
	}
	return nil
}

func (_c *SessionLogCreate) sqlSave(ctx context.Context) (*SessionLog, error) {
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

func (_c *SessionLogCreate) createSpec() (*SessionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionlog.Table, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionlog.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(sessionlog.FieldCompleted, field.TypeInt, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(sessionlog.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.MaxStreak(); ok {
		_spec.SetField(sessionlog.FieldMaxStreak, field.TypeInt, value)
		_node.MaxStreak = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(sessionlog.FieldPoints, field.TypeFloat64, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.TimeSpent(); ok {
		_spec.SetField(sessionlog.FieldTimeSpent, field.TypeInt, value)
		_node.TimeSpent = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	return _node, _spec
}

// SessionLogCreateBulk is the builder for creating many SessionLog entities in bulk.
type SessionLogCreateBulk struct {
	config
	err      error
	builders []*SessionLogCreate
}

// Save creates the SessionLog entities in the database.
func (_c *SessionLogCreateBulk) Save(ctx context.Context) ([]*SessionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionLogMutation)
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
func (_c *SessionLogCreateBulk) SaveX(ctx context.Context) []*SessionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
