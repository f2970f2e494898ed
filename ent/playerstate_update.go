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
	"github.com/techniq-app/techniq/ent/playerstate"
	"github.com/techniq-app/techniq/ent/predicate"
)

// PlayerStateUpdate is the builder for updating PlayerState entities.
type PlayerStateUpdate struct {
	config
	hooks    []Hook
	mutation *PlayerStateMutation
}

// Where appends a list predicates to the PlayerStateUpdate builder.
func (_u *PlayerStateUpdate) Where(ps ...predicate.PlayerState) *PlayerStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalExperience sets the "total_experience" field.
func (_u *PlayerStateUpdate) SetTotalExperience(v int64) *PlayerStateUpdate {
	_u.mutation.ResetTotalExperience()
	_u.mutation.SetTotalExperience(v)
	return _u
}

// SetNillableTotalExperience sets the "total_experience" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableTotalExperience(v *int64) *PlayerStateUpdate {
	if v != nil {
		_u.SetTotalExperience(*v)
	}
	return _u
}

// AddTotalExperience adds value to the "total_experience" field.
func (_u *PlayerStateUpdate) AddTotalExperience(v int64) *PlayerStateUpdate {
	_u.mutation.AddTotalExperience(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *PlayerStateUpdate) SetLevel(v int) *PlayerStateUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableLevel(v *int) *PlayerStateUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *PlayerStateUpdate) AddLevel(v int) *PlayerStateUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCurrentStreakDays sets the "current_streak_days" field.
func (_u *PlayerStateUpdate) SetCurrentStreakDays(v int) *PlayerStateUpdate {
	_u.mutation.ResetCurrentStreakDays()
	_u.mutation.SetCurrentStreakDays(v)
	return _u
}

// SetNillableCurrentStreakDays sets the "current_streak_days" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableCurrentStreakDays(v *int) *PlayerStateUpdate {
	if v != nil {
		_u.SetCurrentStreakDays(*v)
	}
	return _u
}

// AddCurrentStreakDays adds value to the "current_streak_days" field.
func (_u *PlayerStateUpdate) AddCurrentStreakDays(v int) *PlayerStateUpdate {
	_u.mutation.AddCurrentStreakDays(v)
	return _u
}

// SetLongestStreakDays sets the "longest_streak_days" field.
func (_u *PlayerStateUpdate) SetLongestStreakDays(v int) *PlayerStateUpdate {
	_u.mutation.ResetLongestStreakDays()
	_u.mutation.SetLongestStreakDays(v)
	return _u
}

// SetNillableLongestStreakDays sets the "longest_streak_days" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableLongestStreakDays(v *int) *PlayerStateUpdate {
	if v != nil {
		_u.SetLongestStreakDays(*v)
	}
	return _u
}

// AddLongestStreakDays adds value to the "longest_streak_days" field.
func (_u *PlayerStateUpdate) AddLongestStreakDays(v int) *PlayerStateUpdate {
	_u.mutation.AddLongestStreakDays(v)
	return _u
}

// SetStreakFreezes sets the "streak_freezes" field.
func (_u *PlayerStateUpdate) SetStreakFreezes(v int) *PlayerStateUpdate {
	_u.mutation.ResetStreakFreezes()
	_u.mutation.SetStreakFreezes(v)
	return _u
}

// SetNillableStreakFreezes sets the "streak_freezes" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableStreakFreezes(v *int) *PlayerStateUpdate {
	if v != nil {
		_u.SetStreakFreezes(*v)
	}
	return _u
}

// AddStreakFreezes adds value to the "streak_freezes" field.
func (_u *PlayerStateUpdate) AddStreakFreezes(v int) *PlayerStateUpdate {
	_u.mutation.AddStreakFreezes(v)
	return _u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_u *PlayerStateUpdate) SetLastActivityDate(v time.Time) *PlayerStateUpdate {
	_u.mutation.SetLastActivityDate(v)
	return _u
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableLastActivityDate(v *time.Time) *PlayerStateUpdate {
	if v != nil {
		_u.SetLastActivityDate(*v)
	}
	return _u
}

// ClearLastActivityDate clears the value of the "last_activity_date" field.
func (_u *PlayerStateUpdate) ClearLastActivityDate() *PlayerStateUpdate {
	_u.mutation.ClearLastActivityDate()
	return _u
}

// SetLastSessionID sets the "last_session_id" field.
func (_u *PlayerStateUpdate) SetLastSessionID(v string) *PlayerStateUpdate {
	_u.mutation.SetLastSessionID(v)
	return _u
}

// SetNillableLastSessionID sets the "last_session_id" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableLastSessionID(v *string) *PlayerStateUpdate {
	if v != nil {
		_u.SetLastSessionID(*v)
	}
	return _u
}

// SetCoinBalance sets the "coin_balance" field.
func (_u *PlayerStateUpdate) SetCoinBalance(v int64) *PlayerStateUpdate {
	_u.mutation.ResetCoinBalance()
	_u.mutation.SetCoinBalance(v)
	return _u
}

// SetNillableCoinBalance sets the "coin_balance" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableCoinBalance(v *int64) *PlayerStateUpdate {
	if v != nil {
		_u.SetCoinBalance(*v)
	}
	return _u
}

// AddCoinBalance adds value to the "coin_balance" field.
func (_u *PlayerStateUpdate) AddCoinBalance(v int64) *PlayerStateUpdate {
	_u.mutation.AddCoinBalance(v)
	return _u
}

// SetTotalCoinsEarned sets the "total_coins_earned" field.
func (_u *PlayerStateUpdate) SetTotalCoinsEarned(v int64) *PlayerStateUpdate {
	_u.mutation.ResetTotalCoinsEarned()
	_u.mutation.SetTotalCoinsEarned(v)
	return _u
}

// SetNillableTotalCoinsEarned sets the "total_coins_earned" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableTotalCoinsEarned(v *int64) *PlayerStateUpdate {
	if v != nil {
		_u.SetTotalCoinsEarned(*v)
	}
	return _u
}

// AddTotalCoinsEarned adds value to the "total_coins_earned" field.
func (_u *PlayerStateUpdate) AddTotalCoinsEarned(v int64) *PlayerStateUpdate {
	_u.mutation.AddTotalCoinsEarned(v)
	return _u
}

// SetOwnedItems sets the "owned_items" field.
func (_u *PlayerStateUpdate) SetOwnedItems(v []string) *PlayerStateUpdate {
	_u.mutation.SetOwnedItems(v)
	return _u
}

// AppendOwnedItems appends value to the "owned_items" field.
func (_u *PlayerStateUpdate) AppendOwnedItems(v []string) *PlayerStateUpdate {
	_u.mutation.AppendOwnedItems(v)
	return _u
}

// ClearOwnedItems clears the value of the "owned_items" field.
func (_u *PlayerStateUpdate) ClearOwnedItems() *PlayerStateUpdate {
	_u.mutation.ClearOwnedItems()
	return _u
}

// SetAchievements sets the "achievements" field.
func (_u *PlayerStateUpdate) SetAchievements(v []string) *PlayerStateUpdate {
	_u.mutation.SetAchievements(v)
	return _u
}

// AppendAchievements appends value to the "achievements" field.
func (_u *PlayerStateUpdate) AppendAchievements(v []string) *PlayerStateUpdate {
	_u.mutation.AppendAchievements(v)
	return _u
}

// ClearAchievements clears the value of the "achievements" field.
func (_u *PlayerStateUpdate) ClearAchievements() *PlayerStateUpdate {
	_u.mutation.ClearAchievements()
	return _u
}

// SetPosition sets the "position" field.
func (_u *PlayerStateUpdate) SetPosition(v string) *PlayerStateUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillablePosition(v *string) *PlayerStateUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *PlayerStateUpdate) SetExperienceLevel(v string) *PlayerStateUpdate {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableExperienceLevel(v *string) *PlayerStateUpdate {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetTrainingGoals sets the "training_goals" field.
func (_u *PlayerStateUpdate) SetTrainingGoals(v []string) *PlayerStateUpdate {
	_u.mutation.SetTrainingGoals(v)
	return _u
}

// AppendTrainingGoals appends value to the "training_goals" field.
func (_u *PlayerStateUpdate) AppendTrainingGoals(v []string) *PlayerStateUpdate {
	_u.mutation.AppendTrainingGoals(v)
	return _u
}

// ClearTrainingGoals clears the value of the "training_goals" field.
func (_u *PlayerStateUpdate) ClearTrainingGoals() *PlayerStateUpdate {
	_u.mutation.ClearTrainingGoals()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerStateUpdate) SetUpdatedAt(v time.Time) *PlayerStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlayerStateMutation object of the builder.
func (_u *PlayerStateUpdate) Mutation() *PlayerStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlayerStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlayerStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerStateUpdate) check() error {
	if v, ok := _u.mutation.TotalExperience(); ok {
		if err := playerstate.TotalExperienceValidator(v); err != nil {
			return &ValidationError{Name: "total_experience", err: fmt.Errorf(`ent: validator failed for field "PlayerState.total_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreakDays(); ok {
		if err := playerstate.CurrentStreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "current_streak_days", err: fmt.Errorf(`ent: validator failed for field "PlayerState.current_streak_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreakDays(); ok {
		if err := playerstate.LongestStreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak_days", err: fmt.Errorf(`ent: validator failed for field "PlayerState.longest_streak_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakFreezes(); ok {
		if err := playerstate.StreakFreezesValidator(v); err != nil {
			return &ValidationError{Name: "streak_freezes", err: fmt.Errorf(`ent: validator failed for field "PlayerState.streak_freezes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoinBalance(); ok {
		if err := playerstate.CoinBalanceValidator(v); err != nil {
			return &ValidationError{Name: "coin_balance", err: fmt.Errorf(`ent: validator failed for field "PlayerState.coin_balance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCoinsEarned(); ok {
		if err := playerstate.TotalCoinsEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_coins_earned", err: fmt.Errorf(`ent: validator failed for field "PlayerState.total_coins_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playerstate.Table, playerstate.Columns, sqlgraph.NewFieldSpec(playerstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalExperience(); ok {
		_spec.SetField(playerstate.FieldTotalExperience, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalExperience(); ok {
		_spec.AddField(playerstate.FieldTotalExperience, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(playerstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(playerstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreakDays(); ok {
		_spec.SetField(playerstate.FieldCurrentStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreakDays(); ok {
		_spec.AddField(playerstate.FieldCurrentStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreakDays(); ok {
		_spec.SetField(playerstate.FieldLongestStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreakDays(); ok {
		_spec.AddField(playerstate.FieldLongestStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakFreezes(); ok {
		_spec.SetField(playerstate.FieldStreakFreezes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakFreezes(); ok {
		_spec.AddField(playerstate.FieldStreakFreezes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityDate(); ok {
		_spec.SetField(playerstate.FieldLastActivityDate, field.TypeTime, value)
	}
	if _u.mutation.LastActivityDateCleared() {
		_spec.ClearField(playerstate.FieldLastActivityDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSessionID(); ok {
		_spec.SetField(playerstate.FieldLastSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoinBalance(); ok {
		_spec.SetField(playerstate.FieldCoinBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCoinBalance(); ok {
		_spec.AddField(playerstate.FieldCoinBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCoinsEarned(); ok {
		_spec.SetField(playerstate.FieldTotalCoinsEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCoinsEarned(); ok {
		_spec.AddField(playerstate.FieldTotalCoinsEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OwnedItems(); ok {
		_spec.SetField(playerstate.FieldOwnedItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOwnedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playerstate.FieldOwnedItems, value)
		})
	}
	if _u.mutation.OwnedItemsCleared() {
		_spec.ClearField(playerstate.FieldOwnedItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Achievements(); ok {
		_spec.SetField(playerstate.FieldAchievements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAchievements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playerstate.FieldAchievements, value)
		})
	}
	if _u.mutation.AchievementsCleared() {
		_spec.ClearField(playerstate.FieldAchievements, field.TypeJSON)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(playerstate.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(playerstate.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrainingGoals(); ok {
		_spec.SetField(playerstate.FieldTrainingGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrainingGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playerstate.FieldTrainingGoals, value)
		})
	}
	if _u.mutation.TrainingGoalsCleared() {
		_spec.ClearField(playerstate.FieldTrainingGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlayerStateUpdateOne is the builder for updating a single PlayerState entity.
type PlayerStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlayerStateMutation
}

// SetTotalExperience sets the "total_experience" field.
func (_u *PlayerStateUpdateOne) SetTotalExperience(v int64) *PlayerStateUpdateOne {
	_u.mutation.ResetTotalExperience()
	_u.mutation.SetTotalExperience(v)
	return _u
}

// SetNillableTotalExperience sets the "total_experience" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableTotalExperience(v *int64) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetTotalExperience(*v)
	}
	return _u
}

// AddTotalExperience adds value to the "total_experience" field.
func (_u *PlayerStateUpdateOne) AddTotalExperience(v int64) *PlayerStateUpdateOne {
	_u.mutation.AddTotalExperience(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *PlayerStateUpdateOne) SetLevel(v int) *PlayerStateUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableLevel(v *int) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *PlayerStateUpdateOne) AddLevel(v int) *PlayerStateUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCurrentStreakDays sets the "current_streak_days" field.
func (_u *PlayerStateUpdateOne) SetCurrentStreakDays(v int) *PlayerStateUpdateOne {
	_u.mutation.ResetCurrentStreakDays()
	_u.mutation.SetCurrentStreakDays(v)
	return _u
}

// SetNillableCurrentStreakDays sets the "current_streak_days" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableCurrentStreakDays(v *int) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetCurrentStreakDays(*v)
	}
	return _u
}

// AddCurrentStreakDays adds value to the "current_streak_days" field.
func (_u *PlayerStateUpdateOne) AddCurrentStreakDays(v int) *PlayerStateUpdateOne {
	_u.mutation.AddCurrentStreakDays(v)
	return _u
}

// SetLongestStreakDays sets the "longest_streak_days" field.
func (_u *PlayerStateUpdateOne) SetLongestStreakDays(v int) *PlayerStateUpdateOne {
	_u.mutation.ResetLongestStreakDays()
	_u.mutation.SetLongestStreakDays(v)
	return _u
}

// SetNillableLongestStreakDays sets the "longest_streak_days" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableLongestStreakDays(v *int) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetLongestStreakDays(*v)
	}
	return _u
}

// AddLongestStreakDays adds value to the "longest_streak_days" field.
func (_u *PlayerStateUpdateOne) AddLongestStreakDays(v int) *PlayerStateUpdateOne {
	_u.mutation.AddLongestStreakDays(v)
	return _u
}

// SetStreakFreezes sets the "streak_freezes" field.
func (_u *PlayerStateUpdateOne) SetStreakFreezes(v int) *PlayerStateUpdateOne {
	_u.mutation.ResetStreakFreezes()
	_u.mutation.SetStreakFreezes(v)
	return _u
}

// SetNillableStreakFreezes sets the "streak_freezes" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableStreakFreezes(v *int) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetStreakFreezes(*v)
	}
	return _u
}

// AddStreakFreezes adds value to the "streak_freezes" field.
func (_u *PlayerStateUpdateOne) AddStreakFreezes(v int) *PlayerStateUpdateOne {
	_u.mutation.AddStreakFreezes(v)
	return _u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_u *PlayerStateUpdateOne) SetLastActivityDate(v time.Time) *PlayerStateUpdateOne {
	_u.mutation.SetLastActivityDate(v)
	return _u
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableLastActivityDate(v *time.Time) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetLastActivityDate(*v)
	}
	return _u
}

// ClearLastActivityDate clears the value of the "last_activity_date" field.
func (_u *PlayerStateUpdateOne) ClearLastActivityDate() *PlayerStateUpdateOne {
	_u.mutation.ClearLastActivityDate()
	return _u
}

// SetLastSessionID sets the "last_session_id" field.
func (_u *PlayerStateUpdateOne) SetLastSessionID(v string) *PlayerStateUpdateOne {
	_u.mutation.SetLastSessionID(v)
	return _u
}

// SetNillableLastSessionID sets the "last_session_id" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableLastSessionID(v *string) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetLastSessionID(*v)
	}
	return _u
}

// SetCoinBalance sets the "coin_balance" field.
func (_u *PlayerStateUpdateOne) SetCoinBalance(v int64) *PlayerStateUpdateOne {
	_u.mutation.ResetCoinBalance()
	_u.mutation.SetCoinBalance(v)
	return _u
}

// SetNillableCoinBalance sets the "coin_balance" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableCoinBalance(v *int64) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetCoinBalance(*v)
	}
	return _u
}

// AddCoinBalance adds value to the "coin_balance" field.
func (_u *PlayerStateUpdateOne) AddCoinBalance(v int64) *PlayerStateUpdateOne {
	_u.mutation.AddCoinBalance(v)
	return _u
}

// SetTotalCoinsEarned sets the "total_coins_earned" field.
func (_u *PlayerStateUpdateOne) SetTotalCoinsEarned(v int64) *PlayerStateUpdateOne {
	_u.mutation.ResetTotalCoinsEarned()
	_u.mutation.SetTotalCoinsEarned(v)
	return _u
}

// SetNillableTotalCoinsEarned sets the "total_coins_earned" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableTotalCoinsEarned(v *int64) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetTotalCoinsEarned(*v)
	}
	return _u
}

// AddTotalCoinsEarned adds value to the "total_coins_earned" field.
func (_u *PlayerStateUpdateOne) AddTotalCoinsEarned(v int64) *PlayerStateUpdateOne {
	_u.mutation.AddTotalCoinsEarned(v)
	return _u
}

// SetOwnedItems sets the "owned_items" field.
func (_u *PlayerStateUpdateOne) SetOwnedItems(v []string) *PlayerStateUpdateOne {
	_u.mutation.SetOwnedItems(v)
	return _u
}

// AppendOwnedItems appends value to the "owned_items" field.
func (_u *PlayerStateUpdateOne) AppendOwnedItems(v []string) *PlayerStateUpdateOne {
	_u.mutation.AppendOwnedItems(v)
	return _u
}

// ClearOwnedItems clears the value of the "owned_items" field.
func (_u *PlayerStateUpdateOne) ClearOwnedItems() *PlayerStateUpdateOne {
	_u.mutation.ClearOwnedItems()
	return _u
}

// SetAchievements sets the "achievements" field.
func (_u *PlayerStateUpdateOne) SetAchievements(v []string) *PlayerStateUpdateOne {
	_u.mutation.SetAchievements(v)
	return _u
}

// AppendAchievements appends value to the "achievements" field.
func (_u *PlayerStateUpdateOne) AppendAchievements(v []string) *PlayerStateUpdateOne {
	_u.mutation.AppendAchievements(v)
	return _u
}

// ClearAchievements clears the value of the "achievements" field.
func (_u *PlayerStateUpdateOne) ClearAchievements() *PlayerStateUpdateOne {
	_u.mutation.ClearAchievements()
	return _u
}

// SetPosition sets the "position" field.
func (_u *PlayerStateUpdateOne) SetPosition(v string) *PlayerStateUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillablePosition(v *string) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *PlayerStateUpdateOne) SetExperienceLevel(v string) *PlayerStateUpdateOne {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableExperienceLevel(v *string) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetTrainingGoals sets the "training_goals" field.
func (_u *PlayerStateUpdateOne) SetTrainingGoals(v []string) *PlayerStateUpdateOne {
	_u.mutation.SetTrainingGoals(v)
	return _u
}

// AppendTrainingGoals appends value to the "training_goals" field.
func (_u *PlayerStateUpdateOne) AppendTrainingGoals(v []string) *PlayerStateUpdateOne {
	_u.mutation.AppendTrainingGoals(v)
	return _u
}

// ClearTrainingGoals clears the value of the "training_goals" field.
func (_u *PlayerStateUpdateOne) ClearTrainingGoals() *PlayerStateUpdateOne {
	_u.mutation.ClearTrainingGoals()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerStateUpdateOne) SetUpdatedAt(v time.Time) *PlayerStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlayerStateMutation object of the builder.
func (_u *PlayerStateUpdateOne) Mutation() *PlayerStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlayerStateUpdate builder.
func (_u *PlayerStateUpdateOne) Where(ps ...predicate.PlayerState) *PlayerStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlayerStateUpdateOne) Select(field string, fields ...string) *PlayerStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlayerState entity.
func (_u *PlayerStateUpdateOne) Save(ctx context.Context) (*PlayerState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerStateUpdateOne) SaveX(ctx context.Context) *PlayerState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlayerStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerStateUpdateOne) check() error {
	if v, ok := _u.mutation.TotalExperience(); ok {
		if err := playerstate.TotalExperienceValidator(v); err != nil {
			return &ValidationError{Name: "total_experience", err: fmt.Errorf(`ent: validator failed for field "PlayerState.total_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreakDays(); ok {
		if err := playerstate.CurrentStreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "current_streak_days", err: fmt.Errorf(`ent: validator failed for field "PlayerState.current_streak_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreakDays(); ok {
		if err := playerstate.LongestStreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak_days", err: fmt.Errorf(`ent: validator failed for field "PlayerState.longest_streak_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakFreezes(); ok {
		if err := playerstate.StreakFreezesValidator(v); err != nil {
			return &ValidationError{Name: "streak_freezes", err: fmt.Errorf(`ent: validator failed for field "PlayerState.streak_freezes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoinBalance(); ok {
		if err := playerstate.CoinBalanceValidator(v); err != nil {
			return &ValidationError{Name: "coin_balance", err: fmt.Errorf(`ent: validator failed for field "PlayerState.coin_balance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCoinsEarned(); ok {
		if err := playerstate.TotalCoinsEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_coins_earned", err: fmt.Errorf(`ent: validator failed for field "PlayerState.total_coins_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerStateUpdateOne) sqlSave(ctx context.Context) (_node *PlayerState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playerstate.Table, playerstate.Columns, sqlgraph.NewFieldSpec(playerstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlayerState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playerstate.FieldID)
		for _, f := range fields {
			if !playerstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playerstate.FieldID {
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
	if value, ok := _u.mutation.TotalExperience(); ok {
		_spec.SetField(playerstate.FieldTotalExperience, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalExperience(); ok {
		_spec.AddField(playerstate.FieldTotalExperience, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(playerstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(playerstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreakDays(); ok {
		_spec.SetField(playerstate.FieldCurrentStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreakDays(); ok {
		_spec.AddField(playerstate.FieldCurrentStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreakDays(); ok {
		_spec.SetField(playerstate.FieldLongestStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreakDays(); ok {
		_spec.AddField(playerstate.FieldLongestStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakFreezes(); ok {
		_spec.SetField(playerstate.FieldStreakFreezes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakFreezes(); ok {
		_spec.AddField(playerstate.FieldStreakFreezes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityDate(); ok {
		_spec.SetField(playerstate.FieldLastActivityDate, field.TypeTime, value)
	}
	if _u.mutation.LastActivityDateCleared() {
		_spec.ClearField(playerstate.FieldLastActivityDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSessionID(); ok {
		_spec.SetField(playerstate.FieldLastSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoinBalance(); ok {
		_spec.SetField(playerstate.FieldCoinBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCoinBalance(); ok {
		_spec.AddField(playerstate.FieldCoinBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCoinsEarned(); ok {
		_spec.SetField(playerstate.FieldTotalCoinsEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCoinsEarned(); ok {
		_spec.AddField(playerstate.FieldTotalCoinsEarned, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OwnedItems(); ok {
		_spec.SetField(playerstate.FieldOwnedItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOwnedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playerstate.FieldOwnedItems, value)
		})
	}
	if _u.mutation.OwnedItemsCleared() {
		_spec.ClearField(playerstate.FieldOwnedItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Achievements(); ok {
		_spec.SetField(playerstate.FieldAchievements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAchievements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playerstate.FieldAchievements, value)
		})
	}
	if _u.mutation.AchievementsCleared() {
		_spec.ClearField(playerstate.FieldAchievements, field.TypeJSON)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(playerstate.FieldPosition, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(playerstate.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrainingGoals(); ok {
		_spec.SetField(playerstate.FieldTrainingGoals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrainingGoals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playerstate.FieldTrainingGoals, value)
		})
	}
	if _u.mutation.TrainingGoalsCleared() {
		_spec.ClearField(playerstate.FieldTrainingGoals, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PlayerState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
