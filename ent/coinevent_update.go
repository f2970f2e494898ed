// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/techniq-app/techniq/ent/coinevent"
	"github.com/techniq-app/techniq/ent/predicate"
)

// CoinEventUpdate is the builder for updating CoinEvent entities.
type CoinEventUpdate struct {
	config
	hooks    []Hook
	mutation *CoinEventMutation
}

// Where appends a list predicates to the CoinEventUpdate builder.
func (_u *CoinEventUpdate) Where(ps ...predicate.CoinEvent) *CoinEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CoinEventUpdate) SetAmount(v int64) *CoinEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CoinEventUpdate) SetNillableAmount(v *int64) *CoinEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CoinEventUpdate) AddAmount(v int64) *CoinEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CoinEventUpdate) SetDirection(v string) *CoinEventUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CoinEventUpdate) SetNillableDirection(v *string) *CoinEventUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *CoinEventUpdate) SetReason(v string) *CoinEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CoinEventUpdate) SetNillableReason(v *string) *CoinEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *CoinEventUpdate) SetBalanceAfter(v int64) *CoinEventUpdate {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *CoinEventUpdate) SetNillableBalanceAfter(v *int64) *CoinEventUpdate {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *CoinEventUpdate) AddBalanceAfter(v int64) *CoinEventUpdate {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// Mutation returns the CoinEventMutation object of the builder.
func (_u *CoinEventUpdate) Mutation() *CoinEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoinEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoinEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoinEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoinEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoinEventUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := coinevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := coinevent.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := coinevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BalanceAfter(); ok {
		if err := coinevent.BalanceAfterValidator(v); err != nil {
			return &ValidationError{Name: "balance_after", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.balance_after": %w`, err)}
		}
	}
	return nil
}

func (_u *CoinEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coinevent.Table, coinevent.Columns, sqlgraph.NewFieldSpec(coinevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(coinevent.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(coinevent.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(coinevent.FieldDirection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(coinevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(coinevent.FieldBalanceAfter, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(coinevent.FieldBalanceAfter, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coinevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoinEventUpdateOne is the builder for updating a single CoinEvent entity.
type CoinEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoinEventMutation
}

// SetAmount sets the "amount" field.
func (_u *CoinEventUpdateOne) SetAmount(v int64) *CoinEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CoinEventUpdateOne) SetNillableAmount(v *int64) *CoinEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CoinEventUpdateOne) AddAmount(v int64) *CoinEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CoinEventUpdateOne) SetDirection(v string) *CoinEventUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CoinEventUpdateOne) SetNillableDirection(v *string) *CoinEventUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *CoinEventUpdateOne) SetReason(v string) *CoinEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CoinEventUpdateOne) SetNillableReason(v *string) *CoinEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetBalanceAfter sets the "balance_after" field.
func (_u *CoinEventUpdateOne) SetBalanceAfter(v int64) *CoinEventUpdateOne {
	_u.mutation.ResetBalanceAfter()
	_u.mutation.SetBalanceAfter(v)
	return _u
}

// SetNillableBalanceAfter sets the "balance_after" field if the given value is not nil.
func (_u *CoinEventUpdateOne) SetNillableBalanceAfter(v *int64) *CoinEventUpdateOne {
	if v != nil {
		_u.SetBalanceAfter(*v)
	}
	return _u
}

// AddBalanceAfter adds value to the "balance_after" field.
func (_u *CoinEventUpdateOne) AddBalanceAfter(v int64) *CoinEventUpdateOne {
	_u.mutation.AddBalanceAfter(v)
	return _u
}

// Mutation returns the CoinEventMutation object of the builder.
func (_u *CoinEventUpdateOne) Mutation() *CoinEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoinEventUpdate builder.
func (_u *CoinEventUpdateOne) Where(ps ...predicate.CoinEvent) *CoinEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoinEventUpdateOne) Select(field string, fields ...string) *CoinEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoinEvent entity.
func (_u *CoinEventUpdateOne) Save(ctx context.Context) (*CoinEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoinEventUpdateOne) SaveX(ctx context.Context) *CoinEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoinEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoinEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoinEventUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := coinevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := coinevent.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := coinevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BalanceAfter(); ok {
		if err := coinevent.BalanceAfterValidator(v); err != nil {
			return &ValidationError{Name: "balance_after", err: fmt.Errorf(`ent: validator failed for field "CoinEvent.balance_after": %w`, err)}
		}
	}
	return nil
}

func (_u *CoinEventUpdateOne) sqlSave(ctx context.Context) (_node *CoinEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coinevent.Table, coinevent.Columns, sqlgraph.NewFieldSpec(coinevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoinEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coinevent.FieldID)
		for _, f := range fields {
			if !coinevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coinevent.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(coinevent.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(coinevent.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(coinevent.FieldDirection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(coinevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.BalanceAfter(); ok {
		_spec.SetField(coinevent.FieldBalanceAfter, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBalanceAfter(); ok {
		_spec.AddField(coinevent.FieldBalanceAfter, field.TypeInt64, value)
	}
	_node = &CoinEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coinevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
