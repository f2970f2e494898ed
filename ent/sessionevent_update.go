// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/techniq-app/techniq/ent/predicate"
	"github.com/techniq-app/techniq/ent/schema"
	"github.com/techniq-app/techniq/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetActivityDate sets the "activity_date" field.
func (_u *SessionEventUpdate) SetActivityDate(v time.Time) *SessionEventUpdate {
	_u.mutation.SetActivityDate(v)
	return _u
}

// SetNillableActivityDate sets the "activity_date" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableActivityDate(v *time.Time) *SessionEventUpdate {
	if v != nil {
		_u.SetActivityDate(*v)
	}
	return _u
}

// SetIntensity sets the "intensity" field.
func (_u *SessionEventUpdate) SetIntensity(v int) *SessionEventUpdate {
	_u.mutation.ResetIntensity()
	_u.mutation.SetIntensity(v)
	return _u
}

// SetNillableIntensity sets the "intensity" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableIntensity(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetIntensity(*v)
	}
	return _u
}

// AddIntensity adds value to the "intensity" field.
func (_u *SessionEventUpdate) AddIntensity(v int) *SessionEventUpdate {
	_u.mutation.AddIntensity(v)
	return _u
}

// SetExerciseCount sets the "exercise_count" field.
func (_u *SessionEventUpdate) SetExerciseCount(v int) *SessionEventUpdate {
	_u.mutation.ResetExerciseCount()
	_u.mutation.SetExerciseCount(v)
	return _u
}

// SetNillableExerciseCount sets the "exercise_count" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableExerciseCount(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetExerciseCount(*v)
	}
	return _u
}

// AddExerciseCount adds value to the "exercise_count" field.
func (_u *SessionEventUpdate) AddExerciseCount(v int) *SessionEventUpdate {
	_u.mutation.AddExerciseCount(v)
	return _u
}

// SetAllCompleted sets the "all_completed" field.
func (_u *SessionEventUpdate) SetAllCompleted(v bool) *SessionEventUpdate {
	_u.mutation.SetAllCompleted(v)
	return _u
}

// SetNillableAllCompleted sets the "all_completed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAllCompleted(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetAllCompleted(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *SessionEventUpdate) SetRating(v int) *SessionEventUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableRating(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *SessionEventUpdate) AddRating(v int) *SessionEventUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionEventUpdate) SetNotes(v string) *SessionEventUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableNotes(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetExperienceAwarded sets the "experience_awarded" field.
func (_u *SessionEventUpdate) SetExperienceAwarded(v int64) *SessionEventUpdate {
	_u.mutation.ResetExperienceAwarded()
	_u.mutation.SetExperienceAwarded(v)
	return _u
}

// SetNillableExperienceAwarded sets the "experience_awarded" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableExperienceAwarded(v *int64) *SessionEventUpdate {
	if v != nil {
		_u.SetExperienceAwarded(*v)
	}
	return _u
}

// AddExperienceAwarded adds value to the "experience_awarded" field.
func (_u *SessionEventUpdate) AddExperienceAwarded(v int64) *SessionEventUpdate {
	_u.mutation.AddExperienceAwarded(v)
	return _u
}

// SetExercises sets the "exercises" field.
func (_u *SessionEventUpdate) SetExercises(v []schema.ExerciseResult) *SessionEventUpdate {
	_u.mutation.SetExercises(v)
	return _u
}

// AppendExercises appends value to the "exercises" field.
func (_u *SessionEventUpdate) AppendExercises(v []schema.ExerciseResult) *SessionEventUpdate {
	_u.mutation.AppendExercises(v)
	return _u
}

// ClearExercises clears the value of the "exercises" field.
func (_u *SessionEventUpdate) ClearExercises() *SessionEventUpdate {
	_u.mutation.ClearExercises()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityDate(); ok {
		_spec.SetField(sessionevent.FieldActivityDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intensity(); ok {
		_spec.SetField(sessionevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensity(); ok {
		_spec.AddField(sessionevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExerciseCount(); ok {
		_spec.SetField(sessionevent.FieldExerciseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseCount(); ok {
		_spec.AddField(sessionevent.FieldExerciseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllCompleted(); ok {
		_spec.SetField(sessionevent.FieldAllCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(sessionevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(sessionevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(sessionevent.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExperienceAwarded(); ok {
		_spec.SetField(sessionevent.FieldExperienceAwarded, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExperienceAwarded(); ok {
		_spec.AddField(sessionevent.FieldExperienceAwarded, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Exercises(); ok {
		_spec.SetField(sessionevent.FieldExercises, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExercises(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldExercises, value)
		})
	}
	if _u.mutation.ExercisesCleared() {
		_spec.ClearField(sessionevent.FieldExercises, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetActivityDate sets the "activity_date" field.
func (_u *SessionEventUpdateOne) SetActivityDate(v time.Time) *SessionEventUpdateOne {
	_u.mutation.SetActivityDate(v)
	return _u
}

// SetNillableActivityDate sets the "activity_date" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableActivityDate(v *time.Time) *SessionEventUpdateOne {
	if v != nil {
		_u.SetActivityDate(*v)
	}
	return _u
}

// SetIntensity sets the "intensity" field.
func (_u *SessionEventUpdateOne) SetIntensity(v int) *SessionEventUpdateOne {
	_u.mutation.ResetIntensity()
	_u.mutation.SetIntensity(v)
	return _u
}

// SetNillableIntensity sets the "intensity" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableIntensity(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetIntensity(*v)
	}
	return _u
}

// AddIntensity adds value to the "intensity" field.
func (_u *SessionEventUpdateOne) AddIntensity(v int) *SessionEventUpdateOne {
	_u.mutation.AddIntensity(v)
	return _u
}

// SetExerciseCount sets the "exercise_count" field.
func (_u *SessionEventUpdateOne) SetExerciseCount(v int) *SessionEventUpdateOne {
	_u.mutation.ResetExerciseCount()
	_u.mutation.SetExerciseCount(v)
	return _u
}

// SetNillableExerciseCount sets the "exercise_count" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableExerciseCount(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetExerciseCount(*v)
	}
	return _u
}

// AddExerciseCount adds value to the "exercise_count" field.
func (_u *SessionEventUpdateOne) AddExerciseCount(v int) *SessionEventUpdateOne {
	_u.mutation.AddExerciseCount(v)
	return _u
}

// SetAllCompleted sets the "all_completed" field.
func (_u *SessionEventUpdateOne) SetAllCompleted(v bool) *SessionEventUpdateOne {
	_u.mutation.SetAllCompleted(v)
	return _u
}

// SetNillableAllCompleted sets the "all_completed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAllCompleted(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAllCompleted(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *SessionEventUpdateOne) SetRating(v int) *SessionEventUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableRating(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *SessionEventUpdateOne) AddRating(v int) *SessionEventUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionEventUpdateOne) SetNotes(v string) *SessionEventUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableNotes(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetExperienceAwarded sets the "experience_awarded" field.
func (_u *SessionEventUpdateOne) SetExperienceAwarded(v int64) *SessionEventUpdateOne {
	_u.mutation.ResetExperienceAwarded()
	_u.mutation.SetExperienceAwarded(v)
	return _u
}

// SetNillableExperienceAwarded sets the "experience_awarded" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableExperienceAwarded(v *int64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetExperienceAwarded(*v)
	}
	return _u
}

// AddExperienceAwarded adds value to the "experience_awarded" field.
func (_u *SessionEventUpdateOne) AddExperienceAwarded(v int64) *SessionEventUpdateOne {
	_u.mutation.AddExperienceAwarded(v)
	return _u
}

// SetExercises sets the "exercises" field.
func (_u *SessionEventUpdateOne) SetExercises(v []schema.ExerciseResult) *SessionEventUpdateOne {
	_u.mutation.SetExercises(v)
	return _u
}

// AppendExercises appends value to the "exercises" field.
func (_u *SessionEventUpdateOne) AppendExercises(v []schema.ExerciseResult) *SessionEventUpdateOne {
	_u.mutation.AppendExercises(v)
	return _u
}

// ClearExercises clears the value of the "exercises" field.
func (_u *SessionEventUpdateOne) ClearExercises() *SessionEventUpdateOne {
	_u.mutation.ClearExercises()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityDate(); ok {
		_spec.SetField(sessionevent.FieldActivityDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Intensity(); ok {
		_spec.SetField(sessionevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensity(); ok {
		_spec.AddField(sessionevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExerciseCount(); ok {
		_spec.SetField(sessionevent.FieldExerciseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExerciseCount(); ok {
		_spec.AddField(sessionevent.FieldExerciseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllCompleted(); ok {
		_spec.SetField(sessionevent.FieldAllCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(sessionevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(sessionevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(sessionevent.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExperienceAwarded(); ok {
		_spec.SetField(sessionevent.FieldExperienceAwarded, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExperienceAwarded(); ok {
		_spec.AddField(sessionevent.FieldExperienceAwarded, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Exercises(); ok {
		_spec.SetField(sessionevent.FieldExercises, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExercises(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldExercises, value)
		})
	}
	if _u.mutation.ExercisesCleared() {
		_spec.ClearField(sessionevent.FieldExercises, field.TypeJSON)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
