// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/techniq-app/techniq/ent/playerstate"
)

// PlayerState is the model entity for the PlayerState schema.
type PlayerState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Cumulative experience, never decreases
	TotalExperience int64 `json:"total_experience,omitempty"`
	// Derived from total_experience via the level curve, 1-50
	Level int `json:"level,omitempty"`
	// CurrentStreakDays holds the value of the "current_streak_days" field.
	CurrentStreakDays int `json:"current_streak_days,omitempty"`
	// LongestStreakDays holds the value of the "longest_streak_days" field.
	LongestStreakDays int `json:"longest_streak_days,omitempty"`
	// Consumable misses-a-day forgiveness, bought in the shop
	StreakFreezes int `json:"streak_freezes,omitempty"`
	// Midnight of the last day with a recorded session
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	// Guard against replaying the same session completion
	LastSessionID string `json:"last_session_id,omitempty"`
	// CoinBalance holds the value of the "coin_balance" field.
	CoinBalance int64 `json:"coin_balance,omitempty"`
	// Cumulative earnings, unaffected by spending
	TotalCoinsEarned int64 `json:"total_coins_earned,omitempty"`
	// Cosmetic item IDs purchased in the shop
	OwnedItems []string `json:"owned_items,omitempty"`
	// Unlocked achievement IDs
	Achievements []string `json:"achievements,omitempty"`
	// Playing position for drill generation
	Position string `json:"position,omitempty"`
	// beginner, intermediate, or advanced
	ExperienceLevel string `json:"experience_level,omitempty"`
	// TrainingGoals holds the value of the "training_goals" field.
	TrainingGoals []string `json:"training_goals,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlayerState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case playerstate.FieldOwnedItems, playerstate.FieldAchievements, playerstate.FieldTrainingGoals:
			values[i] = new([]byte)
		case playerstate.FieldID, playerstate.FieldTotalExperience, playerstate.FieldLevel, playerstate.FieldCurrentStreakDays, playerstate.FieldLongestStreakDays, playerstate.FieldStreakFreezes, playerstate.FieldCoinBalance, playerstate.FieldTotalCoinsEarned:
			values[i] = new(sql.NullInt64)
		case playerstate.FieldLastSessionID, playerstate.FieldPosition, playerstate.FieldExperienceLevel:
			values[i] = new(sql.NullString)
		case playerstate.FieldLastActivityDate, playerstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlayerState fields.
func (_m *PlayerState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case playerstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case playerstate.FieldTotalExperience:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_experience", values[i])
			} else if value.Valid {
				_m.TotalExperience = value.Int64
			}
		case playerstate.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case playerstate.FieldCurrentStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak_days", values[i])
			} else if value.Valid {
				_m.CurrentStreakDays = int(value.Int64)
			}
		case playerstate.FieldLongestStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_streak_days", values[i])
			} else if value.Valid {
				_m.LongestStreakDays = int(value.Int64)
			}
		case playerstate.FieldStreakFreezes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_freezes", values[i])
			} else if value.Valid {
				_m.StreakFreezes = int(value.Int64)
			}
		case playerstate.FieldLastActivityDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_date", values[i])
			} else if value.Valid {
				_m.LastActivityDate = new(time.Time)
				*_m.LastActivityDate = value.Time
			}
		case playerstate.FieldLastSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_session_id", values[i])
			} else if value.Valid {
				_m.LastSessionID = value.String
			}
		case playerstate.FieldCoinBalance:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coin_balance", values[i])
			} else if value.Valid {
				_m.CoinBalance = value.Int64
			}
		case playerstate.FieldTotalCoinsEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_coins_earned", values[i])
			} else if value.Valid {
				_m.TotalCoinsEarned = value.Int64
			}
		case playerstate.FieldOwnedItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field owned_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OwnedItems); err != nil {
					return fmt.Errorf("unmarshal field owned_items: %w", err)
				}
			}
		case playerstate.FieldAchievements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field achievements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Achievements); err != nil {
					return fmt.Errorf("unmarshal field achievements: %w", err)
				}
			}
		case playerstate.FieldPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = value.String
			}
		case playerstate.FieldExperienceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experience_level", values[i])
			} else if value.Valid {
				_m.ExperienceLevel = value.String
			}
		case playerstate.FieldTrainingGoals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field training_goals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TrainingGoals); err != nil {
					return fmt.Errorf("unmarshal field training_goals: %w", err)
				}
			}
		case playerstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlayerState.
// This includes values selected through modifiers, order, etc.
func (_m *PlayerState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlayerState.
// Note that you need to call PlayerState.Unwrap() before calling this method if this PlayerState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlayerState) Update() *PlayerStateUpdateOne {
	return NewPlayerStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlayerState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlayerState) Unwrap() *PlayerState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlayerState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlayerState) String() string {
	var builder strings.Builder
	builder.WriteString("PlayerState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("total_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalExperience))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("current_streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreakDays))
	builder.WriteString(", ")
	builder.WriteString("longest_streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongestStreakDays))
	builder.WriteString(", ")
	builder.WriteString("streak_freezes=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakFreezes))
	builder.WriteString(", ")
	if v := _m.LastActivityDate; v != nil {
		builder.WriteString("last_activity_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_session_id=")
	builder.WriteString(_m.LastSessionID)
	builder.WriteString(", ")
	builder.WriteString("coin_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoinBalance))
	builder.WriteString(", ")
	builder.WriteString("total_coins_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCoinsEarned))
	builder.WriteString(", ")
	builder.WriteString("owned_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnedItems))
	builder.WriteString(", ")
	builder.WriteString("achievements=")
	builder.WriteString(fmt.Sprintf("%v", _m.Achievements))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(_m.Position)
	builder.WriteString(", ")
	builder.WriteString("experience_level=")
	builder.WriteString(_m.ExperienceLevel)
	builder.WriteString(", ")
	builder.WriteString("training_goals=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrainingGoals))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlayerStates is a parsable slice of PlayerState.
type PlayerStates []*PlayerState
