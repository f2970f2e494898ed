// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drillevent type in the database.
	Label = "drill_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSkillType holds the string denoting the skill_type field in the database.
	FieldSkillType = "skill_type"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDurationMins holds the string denoting the duration_mins field in the database.
	FieldDurationMins = "duration_mins"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// Table holds the table name of the drillevent in the database.
	Table = "drill_events"
)

// Columns holds all SQL columns for drillevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldName,
	FieldSkillType,
	FieldPosition,
	FieldDifficulty,
	FieldDurationMins,
	FieldSource,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SkillTypeValidator is a validator for the "skill_type" field. It is called by the builders before save.
	SkillTypeValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty int
	// DefaultDurationMins holds the default value on creation for the "duration_mins" field.
	DefaultDurationMins int
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
)

// OrderOption defines the ordering options for the DrillEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySkillType orders the results by the skill_type field.
func BySkillType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillType, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDurationMins orders the results by the duration_mins field.
func ByDurationMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMins, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}
