// Code generated by ent, DO NOT EDIT.

package playerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the playerstate type in the database.
	Label = "player_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTotalExperience holds the string denoting the total_experience field in the database.
	FieldTotalExperience = "total_experience"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldCurrentStreakDays holds the string denoting the current_streak_days field in the database.
	FieldCurrentStreakDays = "current_streak_days"
	// FieldLongestStreakDays holds the string denoting the longest_streak_days field in the database.
	FieldLongestStreakDays = "longest_streak_days"
	// FieldStreakFreezes holds the string denoting the streak_freezes field in the database.
	FieldStreakFreezes = "streak_freezes"
	// FieldLastActivityDate holds the string denoting the last_activity_date field in the database.
	FieldLastActivityDate = "last_activity_date"
	// FieldLastSessionID holds the string denoting the last_session_id field in the database.
	FieldLastSessionID = "last_session_id"
	// FieldCoinBalance holds the string denoting the coin_balance field in the database.
	FieldCoinBalance = "coin_balance"
	// FieldTotalCoinsEarned holds the string denoting the total_coins_earned field in the database.
	FieldTotalCoinsEarned = "total_coins_earned"
	// FieldOwnedItems holds the string denoting the owned_items field in the database.
	FieldOwnedItems = "owned_items"
	// FieldAchievements holds the string denoting the achievements field in the database.
	FieldAchievements = "achievements"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldExperienceLevel holds the string denoting the experience_level field in the database.
	FieldExperienceLevel = "experience_level"
	// FieldTrainingGoals holds the string denoting the training_goals field in the database.
	FieldTrainingGoals = "training_goals"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the playerstate in the database.
	Table = "player_states"
)

// Columns holds all SQL columns for playerstate fields.
var Columns = []string{
	FieldID,
	FieldTotalExperience,
	FieldLevel,
	FieldCurrentStreakDays,
	FieldLongestStreakDays,
	FieldStreakFreezes,
	FieldLastActivityDate,
	FieldLastSessionID,
	FieldCoinBalance,
	FieldTotalCoinsEarned,
	FieldOwnedItems,
	FieldAchievements,
	FieldPosition,
	FieldExperienceLevel,
	FieldTrainingGoals,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalExperience holds the default value on creation for the "total_experience" field.
	DefaultTotalExperience int64
	// TotalExperienceValidator is a validator for the "total_experience" field. It is called by the builders before save.
	TotalExperienceValidator func(int64) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// DefaultCurrentStreakDays holds the default value on creation for the "current_streak_days" field.
	DefaultCurrentStreakDays int
	// CurrentStreakDaysValidator is a validator for the "current_streak_days" field. It is called by the builders before save.
	CurrentStreakDaysValidator func(int) error
	// DefaultLongestStreakDays holds the default value on creation for the "longest_streak_days" field.
	DefaultLongestStreakDays int
	// LongestStreakDaysValidator is a validator for the "longest_streak_days" field. It is called by the builders before save.
	LongestStreakDaysValidator func(int) error
	// DefaultStreakFreezes holds the default value on creation for the "streak_freezes" field.
	DefaultStreakFreezes int
	// StreakFreezesValidator is a validator for the "streak_freezes" field. It is called by the builders before save.
	StreakFreezesValidator func(int) error
	// DefaultLastSessionID holds the default value on creation for the "last_session_id" field.
	DefaultLastSessionID string
	// DefaultCoinBalance holds the default value on creation for the "coin_balance" field.
	DefaultCoinBalance int64
	// CoinBalanceValidator is a validator for the "coin_balance" field. It is called by the builders before save.
	CoinBalanceValidator func(int64) error
	// DefaultTotalCoinsEarned holds the default value on creation for the "total_coins_earned" field.
	DefaultTotalCoinsEarned int64
	// TotalCoinsEarnedValidator is a validator for the "total_coins_earned" field. It is called by the builders before save.
	TotalCoinsEarnedValidator func(int64) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition string
	// DefaultExperienceLevel holds the default value on creation for the "experience_level" field.
	DefaultExperienceLevel string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PlayerState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTotalExperience orders the results by the total_experience field.
func ByTotalExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalExperience, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByCurrentStreakDays orders the results by the current_streak_days field.
func ByCurrentStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreakDays, opts...).ToFunc()
}

// ByLongestStreakDays orders the results by the longest_streak_days field.
func ByLongestStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreakDays, opts...).ToFunc()
}

// ByStreakFreezes orders the results by the streak_freezes field.
func ByStreakFreezes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakFreezes, opts...).ToFunc()
}

// ByLastActivityDate orders the results by the last_activity_date field.
func ByLastActivityDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityDate, opts...).ToFunc()
}

// ByLastSessionID orders the results by the last_session_id field.
func ByLastSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSessionID, opts...).ToFunc()
}

// ByCoinBalance orders the results by the coin_balance field.
func ByCoinBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoinBalance, opts...).ToFunc()
}

// ByTotalCoinsEarned orders the results by the total_coins_earned field.
func ByTotalCoinsEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCoinsEarned, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByExperienceLevel orders the results by the experience_level field.
func ByExperienceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperienceLevel, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
