// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/techniq-app/techniq/ent/drillevent"
	"github.com/techniq-app/techniq/ent/predicate"
)

// DrillEventUpdate is the builder for updating DrillEvent entities.
type DrillEventUpdate struct {
	config
	hooks    []Hook
	mutation *DrillEventMutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdate) Where(ps ...predicate.DrillEvent) *DrillEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DrillEventUpdate) SetName(v string) *DrillEventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableName(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSkillType sets the "skill_type" field.
func (_u *DrillEventUpdate) SetSkillType(v string) *DrillEventUpdate {
	_u.mutation.SetSkillType(v)
	return _u
}

// SetNillableSkillType sets the "skill_type" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableSkillType(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetSkillType(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *DrillEventUpdate) SetPosition(v string) *DrillEventUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillablePosition(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DrillEventUpdate) SetDifficulty(v int) *DrillEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableDifficulty(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *DrillEventUpdate) AddDifficulty(v int) *DrillEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *DrillEventUpdate) SetDurationMins(v int) *DrillEventUpdate {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableDurationMins(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *DrillEventUpdate) AddDurationMins(v int) *DrillEventUpdate {
	_u.mutation.AddDurationMins(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *DrillEventUpdate) SetSource(v string) *DrillEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableSource(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdate) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := drillevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillType(); ok {
		if err := drillevent.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.skill_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := drillevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(drillevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillType(); ok {
		_spec.SetField(drillevent.FieldSkillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(drillevent.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(drillevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(drillevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(drillevent.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(drillevent.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(drillevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillEventUpdateOne is the builder for updating a single DrillEvent entity.
type DrillEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillEventMutation
}

// SetName sets the "name" field.
func (_u *DrillEventUpdateOne) SetName(v string) *DrillEventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableName(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSkillType sets the "skill_type" field.
func (_u *DrillEventUpdateOne) SetSkillType(v string) *DrillEventUpdateOne {
	_u.mutation.SetSkillType(v)
	return _u
}

// SetNillableSkillType sets the "skill_type" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableSkillType(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetSkillType(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *DrillEventUpdateOne) SetPosition(v string) *DrillEventUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillablePosition(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *DrillEventUpdateOne) SetDifficulty(v int) *DrillEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableDifficulty(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *DrillEventUpdateOne) AddDifficulty(v int) *DrillEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *DrillEventUpdateOne) SetDurationMins(v int) *DrillEventUpdateOne {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableDurationMins(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *DrillEventUpdateOne) AddDurationMins(v int) *DrillEventUpdateOne {
	_u.mutation.AddDurationMins(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *DrillEventUpdateOne) SetSource(v string) *DrillEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableSource(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdateOne) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdateOne) Where(ps ...predicate.DrillEvent) *DrillEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillEventUpdateOne) Select(field string, fields ...string) *DrillEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DrillEvent entity.
func (_u *DrillEventUpdateOne) Save(ctx context.Context) (*DrillEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdateOne) SaveX(ctx context.Context) *DrillEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := drillevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillType(); ok {
		if err := drillevent.SkillTypeValidator(v); err != nil {
			return &ValidationError{Name: "skill_type", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.skill_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := drillevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdateOne) sqlSave(ctx context.Context) (_node *DrillEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DrillEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drillevent.FieldID)
		for _, f := range fields {
			if !drillevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drillevent.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(drillevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillType(); ok {
		_spec.SetField(drillevent.FieldSkillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(drillevent.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(drillevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(drillevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(drillevent.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(drillevent.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(drillevent.FieldSource, field.TypeString, value)
	}
	_node = &DrillEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
