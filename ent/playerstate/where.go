// Code generated by ent, DO NOT EDIT.

package playerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/techniq-app/techniq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldID, id))
}

// TotalExperience applies equality check predicate on the "total_experience" field. It's identical to TotalExperienceEQ.
func TotalExperience(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldTotalExperience, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldLevel, v))
}

// CurrentStreakDays applies equality check predicate on the "current_streak_days" field. It's identical to CurrentStreakDaysEQ.
func CurrentStreakDays(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldCurrentStreakDays, v))
}

// LongestStreakDays applies equality check predicate on the "longest_streak_days" field. It's identical to LongestStreakDaysEQ.
func LongestStreakDays(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldLongestStreakDays, v))
}

// StreakFreezes applies equality check predicate on the "streak_freezes" field. It's identical to StreakFreezesEQ.
func StreakFreezes(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldStreakFreezes, v))
}

// LastActivityDate applies equality check predicate on the "last_activity_date" field. It's identical to LastActivityDateEQ.
func LastActivityDate(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldLastActivityDate, v))
}

// LastSessionID applies equality check predicate on the "last_session_id" field. It's identical to LastSessionIDEQ.
func LastSessionID(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldLastSessionID, v))
}

// CoinBalance applies equality check predicate on the "coin_balance" field. It's identical to CoinBalanceEQ.
func CoinBalance(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldCoinBalance, v))
}

// TotalCoinsEarned applies equality check predicate on the "total_coins_earned" field. It's identical to TotalCoinsEarnedEQ.
func TotalCoinsEarned(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldTotalCoinsEarned, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldPosition, v))
}

// ExperienceLevel applies equality check predicate on the "experience_level" field. It's identical to ExperienceLevelEQ.
func ExperienceLevel(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldExperienceLevel, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// TotalExperienceEQ applies the EQ predicate on the "total_experience" field.
func TotalExperienceEQ(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldTotalExperience, v))
}

// TotalExperienceNEQ applies the NEQ predicate on the "total_experience" field.
func TotalExperienceNEQ(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldTotalExperience, v))
}

// TotalExperienceIn applies the In predicate on the "total_experience" field.
func TotalExperienceIn(vs ...int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldTotalExperience, vs...))
}

// TotalExperienceNotIn applies the NotIn predicate on the "total_experience" field.
func TotalExperienceNotIn(vs ...int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldTotalExperience, vs...))
}

// TotalExperienceGT applies the GT predicate on the "total_experience" field.
func TotalExperienceGT(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldTotalExperience, v))
}

// TotalExperienceGTE applies the GTE predicate on the "total_experience" field.
func TotalExperienceGTE(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldTotalExperience, v))
}

// TotalExperienceLT applies the LT predicate on the "total_experience" field.
func TotalExperienceLT(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldTotalExperience, v))
}

// TotalExperienceLTE applies the LTE predicate on the "total_experience" field.
func TotalExperienceLTE(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldTotalExperience, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldLevel, v))
}

// CurrentStreakDaysEQ applies the EQ predicate on the "current_streak_days" field.
func CurrentStreakDaysEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysNEQ applies the NEQ predicate on the "current_streak_days" field.
func CurrentStreakDaysNEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysIn applies the In predicate on the "current_streak_days" field.
func CurrentStreakDaysIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldCurrentStreakDays, vs...))
}

// CurrentStreakDaysNotIn applies the NotIn predicate on the "current_streak_days" field.
func CurrentStreakDaysNotIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldCurrentStreakDays, vs...))
}

// CurrentStreakDaysGT applies the GT predicate on the "current_streak_days" field.
func CurrentStreakDaysGT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysGTE applies the GTE predicate on the "current_streak_days" field.
func CurrentStreakDaysGTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysLT applies the LT predicate on the "current_streak_days" field.
func CurrentStreakDaysLT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysLTE applies the LTE predicate on the "current_streak_days" field.
func CurrentStreakDaysLTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldCurrentStreakDays, v))
}

// LongestStreakDaysEQ applies the EQ predicate on the "longest_streak_days" field.
func LongestStreakDaysEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldLongestStreakDays, v))
}

// LongestStreakDaysNEQ applies the NEQ predicate on the "longest_streak_days" field.
func LongestStreakDaysNEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldLongestStreakDays, v))
}

// LongestStreakDaysIn applies the In predicate on the "longest_streak_days" field.
func LongestStreakDaysIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldLongestStreakDays, vs...))
}

// LongestStreakDaysNotIn applies the NotIn predicate on the "longest_streak_days" field.
func LongestStreakDaysNotIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldLongestStreakDays, vs...))
}

// LongestStreakDaysGT applies the GT predicate on the "longest_streak_days" field.
func LongestStreakDaysGT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldLongestStreakDays, v))
}

// LongestStreakDaysGTE applies the GTE predicate on the "longest_streak_days" field.
func LongestStreakDaysGTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldLongestStreakDays, v))
}

// LongestStreakDaysLT applies the LT predicate on the "longest_streak_days" field.
func LongestStreakDaysLT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldLongestStreakDays, v))
}

// LongestStreakDaysLTE applies the LTE predicate on the "longest_streak_days" field.
func LongestStreakDaysLTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldLongestStreakDays, v))
}

// StreakFreezesEQ applies the EQ predicate on the "streak_freezes" field.
func StreakFreezesEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldStreakFreezes, v))
}

// StreakFreezesNEQ applies the NEQ predicate on the "streak_freezes" field.
func StreakFreezesNEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldStreakFreezes, v))
}

// StreakFreezesIn applies the In predicate on the "streak_freezes" field.
func StreakFreezesIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldStreakFreezes, vs...))
}

// StreakFreezesNotIn applies the NotIn predicate on the "streak_freezes" field.
func StreakFreezesNotIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldStreakFreezes, vs...))
}

// StreakFreezesGT applies the GT predicate on the "streak_freezes" field.
func StreakFreezesGT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldStreakFreezes, v))
}

// StreakFreezesGTE applies the GTE predicate on the "streak_freezes" field.
func StreakFreezesGTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldStreakFreezes, v))
}

// StreakFreezesLT applies the LT predicate on the "streak_freezes" field.
func StreakFreezesLT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldStreakFreezes, v))
}

// StreakFreezesLTE applies the LTE predicate on the "streak_freezes" field.
func StreakFreezesLTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldStreakFreezes, v))
}

// LastActivityDateEQ applies the EQ predicate on the "last_activity_date" field.
func LastActivityDateEQ(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldLastActivityDate, v))
}

// LastActivityDateNEQ applies the NEQ predicate on the "last_activity_date" field.
func LastActivityDateNEQ(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldLastActivityDate, v))
}

// LastActivityDateIn applies the In predicate on the "last_activity_date" field.
func LastActivityDateIn(vs ...time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldLastActivityDate, vs...))
}

// LastActivityDateNotIn applies the NotIn predicate on the "last_activity_date" field.
func LastActivityDateNotIn(vs ...time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldLastActivityDate, vs...))
}

// LastActivityDateGT applies the GT predicate on the "last_activity_date" field.
func LastActivityDateGT(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldLastActivityDate, v))
}

// LastActivityDateGTE applies the GTE predicate on the "last_activity_date" field.
func LastActivityDateGTE(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldLastActivityDate, v))
}

// LastActivityDateLT applies the LT predicate on the "last_activity_date" field.
func LastActivityDateLT(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldLastActivityDate, v))
}

// LastActivityDateLTE applies the LTE predicate on the "last_activity_date" field.
func LastActivityDateLTE(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldLastActivityDate, v))
}

// LastActivityDateIsNil applies the IsNil predicate on the "last_activity_date" field.
func LastActivityDateIsNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIsNull(FieldLastActivityDate))
}

// LastActivityDateNotNil applies the NotNil predicate on the "last_activity_date" field.
func LastActivityDateNotNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotNull(FieldLastActivityDate))
}

// LastSessionIDEQ applies the EQ predicate on the "last_session_id" field.
func LastSessionIDEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldLastSessionID, v))
}

// LastSessionIDNEQ applies the NEQ predicate on the "last_session_id" field.
func LastSessionIDNEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldLastSessionID, v))
}

// LastSessionIDIn applies the In predicate on the "last_session_id" field.
func LastSessionIDIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldLastSessionID, vs...))
}

// LastSessionIDNotIn applies the NotIn predicate on the "last_session_id" field.
func LastSessionIDNotIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldLastSessionID, vs...))
}

// LastSessionIDGT applies the GT predicate on the "last_session_id" field.
func LastSessionIDGT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldLastSessionID, v))
}

// LastSessionIDGTE applies the GTE predicate on the "last_session_id" field.
func LastSessionIDGTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldLastSessionID, v))
}

// LastSessionIDLT applies the LT predicate on the "last_session_id" field.
func LastSessionIDLT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldLastSessionID, v))
}

// LastSessionIDLTE applies the LTE predicate on the "last_session_id" field.
func LastSessionIDLTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldLastSessionID, v))
}

// LastSessionIDContains applies the Contains predicate on the "last_session_id" field.
func LastSessionIDContains(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContains(FieldLastSessionID, v))
}

// LastSessionIDHasPrefix applies the HasPrefix predicate on the "last_session_id" field.
func LastSessionIDHasPrefix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasPrefix(FieldLastSessionID, v))
}

// LastSessionIDHasSuffix applies the HasSuffix predicate on the "last_session_id" field.
func LastSessionIDHasSuffix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasSuffix(FieldLastSessionID, v))
}

// LastSessionIDEqualFold applies the EqualFold predicate on the "last_session_id" field.
func LastSessionIDEqualFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEqualFold(FieldLastSessionID, v))
}

// LastSessionIDContainsFold applies the ContainsFold predicate on the "last_session_id" field.
func LastSessionIDContainsFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContainsFold(FieldLastSessionID, v))
}

// CoinBalanceEQ applies the EQ predicate on the "coin_balance" field.
func CoinBalanceEQ(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldCoinBalance, v))
}

// CoinBalanceNEQ applies the NEQ predicate on the "coin_balance" field.
func CoinBalanceNEQ(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldCoinBalance, v))
}

// CoinBalanceIn applies the In predicate on the "coin_balance" field.
func CoinBalanceIn(vs ...int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldCoinBalance, vs...))
}

// CoinBalanceNotIn applies the NotIn predicate on the "coin_balance" field.
func CoinBalanceNotIn(vs ...int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldCoinBalance, vs...))
}

// CoinBalanceGT applies the GT predicate on the "coin_balance" field.
func CoinBalanceGT(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldCoinBalance, v))
}

// CoinBalanceGTE applies the GTE predicate on the "coin_balance" field.
func CoinBalanceGTE(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldCoinBalance, v))
}

// CoinBalanceLT applies the LT predicate on the "coin_balance" field.
func CoinBalanceLT(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldCoinBalance, v))
}

// CoinBalanceLTE applies the LTE predicate on the "coin_balance" field.
func CoinBalanceLTE(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldCoinBalance, v))
}

// TotalCoinsEarnedEQ applies the EQ predicate on the "total_coins_earned" field.
func TotalCoinsEarnedEQ(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldTotalCoinsEarned, v))
}

// TotalCoinsEarnedNEQ applies the NEQ predicate on the "total_coins_earned" field.
func TotalCoinsEarnedNEQ(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldTotalCoinsEarned, v))
}

// TotalCoinsEarnedIn applies the In predicate on the "total_coins_earned" field.
func TotalCoinsEarnedIn(vs ...int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldTotalCoinsEarned, vs...))
}

// TotalCoinsEarnedNotIn applies the NotIn predicate on the "total_coins_earned" field.
func TotalCoinsEarnedNotIn(vs ...int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldTotalCoinsEarned, vs...))
}

// TotalCoinsEarnedGT applies the GT predicate on the "total_coins_earned" field.
func TotalCoinsEarnedGT(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldTotalCoinsEarned, v))
}

// TotalCoinsEarnedGTE applies the GTE predicate on the "total_coins_earned" field.
func TotalCoinsEarnedGTE(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldTotalCoinsEarned, v))
}

// TotalCoinsEarnedLT applies the LT predicate on the "total_coins_earned" field.
func TotalCoinsEarnedLT(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldTotalCoinsEarned, v))
}

// TotalCoinsEarnedLTE applies the LTE predicate on the "total_coins_earned" field.
func TotalCoinsEarnedLTE(v int64) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldTotalCoinsEarned, v))
}

// OwnedItemsIsNil applies the IsNil predicate on the "owned_items" field.
func OwnedItemsIsNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIsNull(FieldOwnedItems))
}

// OwnedItemsNotNil applies the NotNil predicate on the "owned_items" field.
func OwnedItemsNotNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotNull(FieldOwnedItems))
}

// AchievementsIsNil applies the IsNil predicate on the "achievements" field.
func AchievementsIsNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIsNull(FieldAchievements))
}

// AchievementsNotNil applies the NotNil predicate on the "achievements" field.
func AchievementsNotNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotNull(FieldAchievements))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldPosition, v))
}

// PositionContains applies the Contains predicate on the "position" field.
func PositionContains(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContains(FieldPosition, v))
}

// PositionHasPrefix applies the HasPrefix predicate on the "position" field.
func PositionHasPrefix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasPrefix(FieldPosition, v))
}

// PositionHasSuffix applies the HasSuffix predicate on the "position" field.
func PositionHasSuffix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasSuffix(FieldPosition, v))
}

// PositionEqualFold applies the EqualFold predicate on the "position" field.
func PositionEqualFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEqualFold(FieldPosition, v))
}

// PositionContainsFold applies the ContainsFold predicate on the "position" field.
func PositionContainsFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContainsFold(FieldPosition, v))
}

// ExperienceLevelEQ applies the EQ predicate on the "experience_level" field.
func ExperienceLevelEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldExperienceLevel, v))
}

// ExperienceLevelNEQ applies the NEQ predicate on the "experience_level" field.
func ExperienceLevelNEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldExperienceLevel, v))
}

// ExperienceLevelIn applies the In predicate on the "experience_level" field.
func ExperienceLevelIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelNotIn applies the NotIn predicate on the "experience_level" field.
func ExperienceLevelNotIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelGT applies the GT predicate on the "experience_level" field.
func ExperienceLevelGT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldExperienceLevel, v))
}

// ExperienceLevelGTE applies the GTE predicate on the "experience_level" field.
func ExperienceLevelGTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldExperienceLevel, v))
}

// ExperienceLevelLT applies the LT predicate on the "experience_level" field.
func ExperienceLevelLT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldExperienceLevel, v))
}

// ExperienceLevelLTE applies the LTE predicate on the "experience_level" field.
func ExperienceLevelLTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldExperienceLevel, v))
}

// ExperienceLevelContains applies the Contains predicate on the "experience_level" field.
func ExperienceLevelContains(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContains(FieldExperienceLevel, v))
}

// ExperienceLevelHasPrefix applies the HasPrefix predicate on the "experience_level" field.
func ExperienceLevelHasPrefix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasPrefix(FieldExperienceLevel, v))
}

// ExperienceLevelHasSuffix applies the HasSuffix predicate on the "experience_level" field.
func ExperienceLevelHasSuffix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasSuffix(FieldExperienceLevel, v))
}

// ExperienceLevelEqualFold applies the EqualFold predicate on the "experience_level" field.
func ExperienceLevelEqualFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEqualFold(FieldExperienceLevel, v))
}

// ExperienceLevelContainsFold applies the ContainsFold predicate on the "experience_level" field.
func ExperienceLevelContainsFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContainsFold(FieldExperienceLevel, v))
}

// TrainingGoalsIsNil applies the IsNil predicate on the "training_goals" field.
func TrainingGoalsIsNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIsNull(FieldTrainingGoals))
}

// TrainingGoalsNotNil applies the NotNil predicate on the "training_goals" field.
func TrainingGoalsNotNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotNull(FieldTrainingGoals))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlayerState) predicate.PlayerState {
	return predicate.PlayerState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlayerState) predicate.PlayerState {
	return predicate.PlayerState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlayerState) predicate.PlayerState {
	return predicate.PlayerState(sql.NotPredicates(p))
}
