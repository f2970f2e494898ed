// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/techniq-app/techniq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldName, v))
}

// SkillType applies equality check predicate on the "skill_type" field. It's identical to SkillTypeEQ.
func SkillType(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSkillType, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldPosition, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DurationMins applies equality check predicate on the "duration_mins" field. It's identical to DurationMinsEQ.
func DurationMins(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDurationMins, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSource, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldTimestamp, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldName, v))
}

// SkillTypeEQ applies the EQ predicate on the "skill_type" field.
func SkillTypeEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSkillType, v))
}

// SkillTypeNEQ applies the NEQ predicate on the "skill_type" field.
func SkillTypeNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldSkillType, v))
}

// SkillTypeIn applies the In predicate on the "skill_type" field.
func SkillTypeIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldSkillType, vs...))
}

// SkillTypeNotIn applies the NotIn predicate on the "skill_type" field.
func SkillTypeNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldSkillType, vs...))
}

// SkillTypeGT applies the GT predicate on the "skill_type" field.
func SkillTypeGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldSkillType, v))
}

// SkillTypeGTE applies the GTE predicate on the "skill_type" field.
func SkillTypeGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldSkillType, v))
}

// SkillTypeLT applies the LT predicate on the "skill_type" field.
func SkillTypeLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldSkillType, v))
}

// SkillTypeLTE applies the LTE predicate on the "skill_type" field.
func SkillTypeLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldSkillType, v))
}

// SkillTypeContains applies the Contains predicate on the "skill_type" field.
func SkillTypeContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldSkillType, v))
}

// SkillTypeHasPrefix applies the HasPrefix predicate on the "skill_type" field.
func SkillTypeHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldSkillType, v))
}

// SkillTypeHasSuffix applies the HasSuffix predicate on the "skill_type" field.
func SkillTypeHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldSkillType, v))
}

// SkillTypeEqualFold applies the EqualFold predicate on the "skill_type" field.
func SkillTypeEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldSkillType, v))
}

// SkillTypeContainsFold applies the ContainsFold predicate on the "skill_type" field.
func SkillTypeContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldSkillType, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldPosition, v))
}

// PositionContains applies the Contains predicate on the "position" field.
func PositionContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldPosition, v))
}

// PositionHasPrefix applies the HasPrefix predicate on the "position" field.
func PositionHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldPosition, v))
}

// PositionHasSuffix applies the HasSuffix predicate on the "position" field.
func PositionHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldPosition, v))
}

// PositionEqualFold applies the EqualFold predicate on the "position" field.
func PositionEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldPosition, v))
}

// PositionContainsFold applies the ContainsFold predicate on the "position" field.
func PositionContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldPosition, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DurationMinsEQ applies the EQ predicate on the "duration_mins" field.
func DurationMinsEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDurationMins, v))
}

// DurationMinsNEQ applies the NEQ predicate on the "duration_mins" field.
func DurationMinsNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldDurationMins, v))
}

// DurationMinsIn applies the In predicate on the "duration_mins" field.
func DurationMinsIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldDurationMins, vs...))
}

// DurationMinsNotIn applies the NotIn predicate on the "duration_mins" field.
func DurationMinsNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldDurationMins, vs...))
}

// DurationMinsGT applies the GT predicate on the "duration_mins" field.
func DurationMinsGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldDurationMins, v))
}

// DurationMinsGTE applies the GTE predicate on the "duration_mins" field.
func DurationMinsGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldDurationMins, v))
}

// DurationMinsLT applies the LT predicate on the "duration_mins" field.
func DurationMinsLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldDurationMins, v))
}

// DurationMinsLTE applies the LTE predicate on the "duration_mins" field.
func DurationMinsLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldDurationMins, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.NotPredicates(p))
}
