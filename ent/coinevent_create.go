// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/techniq-app/techniq/ent/coinevent"
)

// CoinEventCreate is the builder for creating a CoinEvent entity.
type CoinEventCreate struct {
	config
	mutation *CoinEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CoinEventCreate) SetSequence(v int64) *CoinEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CoinEventCreate) SetTimestamp(v time.Time) *CoinEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CoinEventCreate) SetNillableTimestamp(v *time.Time) *CoinEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *CoinEventCreate) SetAmount(v int64) *CoinEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *CoinEventCreate) SetDirection(v string) *CoinEventCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *CoinEventCreate) SetReason(v string) *CoinEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *CoinEventCreate) SetBalanceAfter(v int64) *CoinEventCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// Mutation returns the CoinEventMutation object of the builder.
func (_c *CoinEventCreate) Mutation() *CoinEventMutation {
	return _c.mutation
}

// Save creates the CoinEvent in the database.
func (_c *CoinEventCreate) Save(ctx context.Context) (*CoinEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoinEventCreate) SaveX(ctx context.Context) *CoinEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoinEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoinEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoinEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := coinevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoinEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CoinEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CoinEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CoinEvent.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := coinevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "CoinEvent.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := coinevent.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "CoinEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := coinevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		return &ValidationError{Name: "balance_after", err: errors.New(`ent: missing required field "CoinEvent.balance_after"`)}
	}
	if v, ok := _c.mutation.BalanceAfter(); ok {
		if err := coinevent.BalanceAfterValidator(v); err != nil {
			return &ValidationError{Name: "balance_after", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.balance_after": %w`, err)}
		}
	}
	return nil
}

func (_c *CoinEventCreate) sqlSave(ctx context.Context) (*CoinEvent, error) {
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

func (_c *CoinEventCreate) createSpec() (*CoinEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CoinEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coinevent.Table, sqlgraph.NewFieldSpec(coinevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(coinevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(coinevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(coinevent.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(coinevent.FieldDirection, field.TypeString, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(coinevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(coinevent.FieldBalanceAfter, field.TypeInt64, value)
		_node.BalanceAfter = value
	}
	return _node, _spec
}

// CoinEventCreateBulk is the builder for creating many CoinEvent entities in bulk.
type CoinEventCreateBulk struct {
	config
	err      error
	builders []*CoinEventCreate
}

// Save creates the CoinEvent entities in the database.
func (_c *CoinEventCreateBulk) Save(ctx context.Context) ([]*CoinEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoinEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoinEventMutation)
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
func (_c *CoinEventCreateBulk) SaveX(ctx context.Context) []*CoinEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoinEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoinEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
