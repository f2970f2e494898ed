// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/techniq-app/techniq/ent/playerstate"
)

// PlayerStateCreate is the builder for creating a PlayerState entity.
type PlayerStateCreate struct {
	config
	mutation *PlayerStateMutation
	hooks    []Hook
}

// SetTotalExperience sets the "total_experience" field.
func (_c *PlayerStateCreate) SetTotalExperience(v int64) *PlayerStateCreate {
	_c.mutation.SetTotalExperience(v)
	return _c
}

// SetNillableTotalExperience sets the "total_experience" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableTotalExperience(v *int64) *PlayerStateCreate {
	if v != nil {
		_c.SetTotalExperience(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *PlayerStateCreate) SetLevel(v int) *PlayerStateCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableLevel(v *int) *PlayerStateCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetCurrentStreakDays sets the "current_streak_days" field.
func (_c *PlayerStateCreate) SetCurrentStreakDays(v int) *PlayerStateCreate {
	_c.mutation.SetCurrentStreakDays(v)
	return _c
}

// SetNillableCurrentStreakDays sets the "current_streak_days" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableCurrentStreakDays(v *int) *PlayerStateCreate {
	if v != nil {
		_c.SetCurrentStreakDays(*v)
	}
	return _c
}

// SetLongestStreakDays sets the "longest_streak_days" field.
func (_c *PlayerStateCreate) SetLongestStreakDays(v int) *PlayerStateCreate {
	_c.mutation.SetLongestStreakDays(v)
	return _c
}

// SetNillableLongestStreakDays sets the "longest_streak_days" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableLongestStreakDays(v *int) *PlayerStateCreate {
	if v != nil {
		_c.SetLongestStreakDays(*v)
	}
	return _c
}

// SetStreakFreezes sets the "streak_freezes" field.
func (_c *PlayerStateCreate) SetStreakFreezes(v int) *PlayerStateCreate {
	_c.mutation.SetStreakFreezes(v)
	return _c
}

// SetNillableStreakFreezes sets the "streak_freezes" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableStreakFreezes(v *int) *PlayerStateCreate {
	if v != nil {
		_c.SetStreakFreezes(*v)
	}
	return _c
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_c *PlayerStateCreate) SetLastActivityDate(v time.Time) *PlayerStateCreate {
	_c.mutation.SetLastActivityDate(v)
	return _c
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableLastActivityDate(v *time.Time) *PlayerStateCreate {
	if v != nil {
		_c.SetLastActivityDate(*v)
	}
	return _c
}

// SetLastSessionID sets the "last_session_id" field.
func (_c *PlayerStateCreate) SetLastSessionID(v string) *PlayerStateCreate {
	_c.mutation.SetLastSessionID(v)
	return _c
}

// SetNillableLastSessionID sets the "last_session_id" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableLastSessionID(v *string) *PlayerStateCreate {
	if v != nil {
		_c.SetLastSessionID(*v)
	}
	return _c
}

// SetCoinBalance sets the "coin_balance" field.
func (_c *PlayerStateCreate) SetCoinBalance(v int64) *PlayerStateCreate {
	_c.mutation.SetCoinBalance(v)
	return _c
}

// SetNillableCoinBalance sets the "coin_balance" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableCoinBalance(v *int64) *PlayerStateCreate {
	if v != nil {
		_c.SetCoinBalance(*v)
	}
	return _c
}

// SetTotalCoinsEarned sets the "total_coins_earned" field.
func (_c *PlayerStateCreate) SetTotalCoinsEarned(v int64) *PlayerStateCreate {
	_c.mutation.SetTotalCoinsEarned(v)
	return _c
}

// SetNillableTotalCoinsEarned sets the "total_coins_earned" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableTotalCoinsEarned(v *int64) *PlayerStateCreate {
	if v != nil {
		_c.SetTotalCoinsEarned(*v)
	}
	return _c
}

// SetOwnedItems sets the "owned_items" field.
func (_c *PlayerStateCreate) SetOwnedItems(v []string) *PlayerStateCreate {
	_c.mutation.SetOwnedItems(v)
	return _c
}

// SetAchievements sets the "achievements" field.
func (_c *PlayerStateCreate) SetAchievements(v []string) *PlayerStateCreate {
	_c.mutation.SetAchievements(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *PlayerStateCreate) SetPosition(v string) *PlayerStateCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillablePosition(v *string) *PlayerStateCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetExperienceLevel sets the "experience_level" field.
func (_c *PlayerStateCreate) SetExperienceLevel(v string) *PlayerStateCreate {
	_c.mutation.SetExperienceLevel(v)
	return _c
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableExperienceLevel(v *string) *PlayerStateCreate {
	if v != nil {
		_c.SetExperienceLevel(*v)
	}
	return _c
}

// SetTrainingGoals sets the "training_goals" field.
func (_c *PlayerStateCreate) SetTrainingGoals(v []string) *PlayerStateCreate {
	_c.mutation.SetTrainingGoals(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlayerStateCreate) SetUpdatedAt(v time.Time) *PlayerStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableUpdatedAt(v *time.Time) *PlayerStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PlayerStateMutation object of the builder.
func (_c *PlayerStateCreate) Mutation() *PlayerStateMutation {
	return _c.mutation
}

// Save creates the PlayerState in the database.
func (_c *PlayerStateCreate) Save(ctx context.Context) (*PlayerState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlayerStateCreate) SaveX(ctx context.Context) *PlayerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlayerStateCreate) defaults() {
	if _, ok := _c.mutation.TotalExperience(); !ok {
		v := playerstate.DefaultTotalExperience
		_c.mutation.SetTotalExperience(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := playerstate.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CurrentStreakDays(); !ok {
		v := playerstate.DefaultCurrentStreakDays
		_c.mutation.SetCurrentStreakDays(v)
	}
	if _, ok := _c.mutation.LongestStreakDays(); !ok {
		v := playerstate.DefaultLongestStreakDays
		_c.mutation.SetLongestStreakDays(v)
	}
	if _, ok := _c.mutation.StreakFreezes(); !ok {
		v := playerstate.DefaultStreakFreezes
		_c.mutation.SetStreakFreezes(v)
	}
	if _, ok := _c.mutation.LastSessionID(); !ok {
		v := playerstate.DefaultLastSessionID
		_c.mutation.SetLastSessionID(v)
	}
	if _, ok := _c.mutation.CoinBalance(); !ok {
		v := playerstate.DefaultCoinBalance
		_c.mutation.SetCoinBalance(v)
	}
	if _, ok := _c.mutation.TotalCoinsEarned(); !ok {
		v := playerstate.DefaultTotalCoinsEarned
		_c.mutation.SetTotalCoinsEarned(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := playerstate.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ExperienceLevel(); !ok {
		v := playerstate.DefaultExperienceLevel
		_c.mutation.SetExperienceLevel(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := playerstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlayerStateCreate) check() error {
	if _, ok := _c.mutation.TotalExperience(); !ok {
		return &ValidationError{Name: "total_experience", err: errors.New(`ent: missing required field "PlayerState.total_experience"`)}
	}
	if v, ok := _c.mutation.TotalExperience(); ok {
		if err := playerstate.TotalExperienceValidator(v); err != nil {
			return &ValidationError{Name: "total_experience", err: fmt.Errorf(`ent: validator failed for field "PlayerState.total_experience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "PlayerState.level"`)}
	}
	if _, ok := _c.mutation.CurrentStreakDays(); !ok {
		return &ValidationError{Name: "current_streak_days", err: errors.New(`ent: missing required field "PlayerState.current_streak_days"`)}
	}
	if v, ok := _c.mutation.CurrentStreakDays(); ok {
		if err := playerstate.CurrentStreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "current_streak_days", err: fmt.Errorf(`ent: validator failed for field "PlayerState.current_streak_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LongestStreakDays(); !ok {
		return &ValidationError{Name: "longest_streak_days", err: errors.New(`ent: missing required field "PlayerState.longest_streak_days"`)}
	}
	if v, ok := _c.mutation.LongestStreakDays(); ok {
		if err := playerstate.LongestStreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak_days", err: fmt.Errorf(`ent: validator failed for field "PlayerState.longest_streak_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakFreezes(); !ok {
		return &ValidationError{Name: "streak_freezes", err: errors.New(`ent: missing required field "PlayerState.streak_freezes"`)}
	}
	if v, ok := _c.mutation.StreakFreezes(); ok {
		if err := playerstate.StreakFreezesValidator(v); err != nil {
			return &ValidationError{Name: "streak_freezes", err: fmt.Errorf(`ent: validator failed for field "PlayerState.streak_freezes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSessionID(); !ok {
		return &ValidationError{Name: "last_session_id", err: errors.New(`ent: missing required field "PlayerState.last_session_id"`)}
	}
	if _, ok := _c.mutation.CoinBalance(); !ok {
		return &ValidationError{Name: "coin_balance", err: errors.New(`ent: missing required field "PlayerState.coin_balance"`)}
	}
	if v, ok := _c.mutation.CoinBalance(); ok {
		if err := playerstate.CoinBalanceValidator(v); err != nil {
			return &ValidationError{Name: "coin_balance", err: fmt.Errorf(`ent: validator failed for field "PlayerState.coin_balance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCoinsEarned(); !ok {
		return &ValidationError{Name: "total_coins_earned", err: errors.New(`ent: missing required field "PlayerState.total_coins_earned"`)}
	}
	if v, ok := _c.mutation.TotalCoinsEarned(); ok {
		if err := playerstate.TotalCoinsEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_coins_earned", err: fmt.Errorf(`ent: validator failed for field "PlayerState.total_coins_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "PlayerState.position"`)}
	}
	if _, ok := _c.mutation.ExperienceLevel(); !ok {
		return &ValidationError{Name: "experience_level", err: errors.New(`ent: missing required field "PlayerState.experience_level"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlayerState.updated_at"`)}
	}
	return nil
}

func (_c *PlayerStateCreate) sqlSave(ctx context.Context) (*PlayerState, error) {
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

func (_c *PlayerStateCreate) createSpec() (*PlayerState, *sqlgraph.CreateSpec) {
	var (
		_node = &PlayerState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playerstate.Table, sqlgraph.NewFieldSpec(playerstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TotalExperience(); ok {
		_spec.SetField(playerstate.FieldTotalExperience, field.TypeInt64, value)
		_node.TotalExperience = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(playerstate.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.CurrentStreakDays(); ok {
		_spec.SetField(playerstate.FieldCurrentStreakDays, field.TypeInt, value)
		_node.CurrentStreakDays = value
	}
	if value, ok := _c.mutation.LongestStreakDays(); ok {
		_spec.SetField(playerstate.FieldLongestStreakDays, field.TypeInt, value)
		_node.LongestStreakDays = value
	}
	if value, ok := _c.mutation.StreakFreezes(); ok {
		_spec.SetField(playerstate.FieldStreakFreezes, field.TypeInt, value)
		_node.StreakFreezes = value
	}
	if value, ok := _c.mutation.LastActivityDate(); ok {
		_spec.SetField(playerstate.FieldLastActivityDate, field.TypeTime, value)
		_node.LastActivityDate = &value
	}
	if value, ok := _c.mutation.LastSessionID(); ok {
		_spec.SetField(playerstate.FieldLastSessionID, field.TypeString, value)
		_node.LastSessionID = value
	}
	if value, ok := _c.mutation.CoinBalance(); ok {
		_spec.SetField(playerstate.FieldCoinBalance, field.TypeInt64, value)
		_node.CoinBalance = value
	}
	if value, ok := _c.mutation.TotalCoinsEarned(); ok {
		_spec.SetField(playerstate.FieldTotalCoinsEarned, field.TypeInt64, value)
		_node.TotalCoinsEarned = value
	}
	if value, ok := _c.mutation.OwnedItems(); ok {
		_spec.SetField(playerstate.FieldOwnedItems, field.TypeJSON, value)
		_node.OwnedItems = value
	}
	if value, ok := _c.mutation.Achievements(); ok {
		_spec.SetField(playerstate.FieldAchievements, field.TypeJSON, value)
		_node.Achievements = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(playerstate.FieldPosition, field.TypeString, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.ExperienceLevel(); ok {
		_spec.SetField(playerstate.FieldExperienceLevel, field.TypeString, value)
		_node.ExperienceLevel = value
	}
	if value, ok := _c.mutation.TrainingGoals(); ok {
		_spec.SetField(playerstate.FieldTrainingGoals, field.TypeJSON, value)
		_node.TrainingGoals = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(playerstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PlayerStateCreateBulk is the builder for creating many PlayerState entities in bulk.
type PlayerStateCreateBulk struct {
	config
	err      error
	builders []*PlayerStateCreate
}

// Save creates the PlayerState entities in the database.
func (_c *PlayerStateCreateBulk) Save(ctx context.Context) ([]*PlayerState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlayerState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlayerStateMutation)
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
func (_c *PlayerStateCreateBulk) SaveX(ctx context.Context) []*PlayerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
