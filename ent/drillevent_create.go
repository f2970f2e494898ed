// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/techniq-app/techniq/ent/drillevent"
)

// DrillEventCreate is the builder for creating a DrillEvent entity.
type DrillEventCreate struct {
	config
	mutation *DrillEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DrillEventCreate) SetSequence(v int64) *DrillEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DrillEventCreate) SetTimestamp(v time.Time) *DrillEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableTimestamp(v *time.Time) *DrillEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DrillEventCreate) SetName(v string) *DrillEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSkillType sets the "skill_type" field.
func (_c *DrillEventCreate) SetSkillType(v string) *DrillEventCreate {
	_c.mutation.SetSkillType(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *DrillEventCreate) SetPosition(v string) *DrillEventCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillablePosition(v *string) *DrillEventCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *DrillEventCreate) SetDifficulty(v int) *DrillEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableDifficulty(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetDurationMins sets the "duration_mins" field.
func (_c *DrillEventCreate) SetDurationMins(v int) *DrillEventCreate {
	_c.mutation.SetDurationMins(v)
	return _c
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableDurationMins(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetDurationMins(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *DrillEventCreate) SetSource(v string) *DrillEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// Mutation returns the DrillEventMutation object of the builder.
func (_c *DrillEventCreate) Mutation() *DrillEventMutation {
	return _c.mutation
}

// Save creates the DrillEvent in the database.
func (_c *DrillEventCreate) Save(ctx context.Context) (*DrillEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillEventCreate) SaveX(ctx context.Context) *DrillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrillEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := drillevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := drillevent.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := drillevent.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.DurationMins(); !ok {
		v := drillevent.DefaultDurationMins
		_c.mutation.SetDurationMins(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DrillEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DrillEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DrillEvent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := drillevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillType(); !ok {
		return &ValidationError{Name: "skill_type", err: errors.New(`ent: missing required field "DrillEvent.skill_type"`)}
	}
	if v, ok := _c.mutation.SkillType(); ok {
		if err := drillevent.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.skill_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "DrillEvent.position"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "DrillEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.DurationMins(); !ok {
		return &ValidationError{Name: "duration_mins", err: errors.New(`ent: missing required field "DrillEvent.duration_mins"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "DrillEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := drillevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_c *DrillEventCreate) sqlSave(ctx context.Context) (*DrillEvent, error) {
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

func (_c *DrillEventCreate) createSpec() (*DrillEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DrillEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drillevent.Table, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(drillevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(drillevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(drillevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SkillType(); ok {
		_spec.SetField(drillevent.FieldSkillType, field.TypeString, value)
		_node.SkillType = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(drillevent.FieldPosition, field.TypeString, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(drillevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.DurationMins(); ok {
		_spec.SetField(drillevent.FieldDurationMins, field.TypeInt, value)
		_node.DurationMins = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(drillevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// DrillEventCreateBulk is the builder for creating many DrillEvent entities in bulk.
type DrillEventCreateBulk struct {
	config
	err      error
	builders []*DrillEventCreate
}

// Save creates the DrillEvent entities in the database.
func (_c *DrillEventCreateBulk) Save(ctx context.Context) ([]*DrillEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DrillEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillEventMutation)
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
func (_c *DrillEventCreateBulk) SaveX(ctx context.Context) []*DrillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
