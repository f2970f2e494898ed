// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldActivityDate holds the string denoting the activity_date field in the database.
	FieldActivityDate = "activity_date"
	// FieldIntensity holds the string denoting the intensity field in the database.
	FieldIntensity = "intensity"
	// FieldExerciseCount holds the string denoting the exercise_count field in the database.
	FieldExerciseCount = "exercise_count"
	// FieldAllCompleted holds the string denoting the all_completed field in the database.
	FieldAllCompleted = "all_completed"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldExperienceAwarded holds the string denoting the experience_awarded field in the database.
	FieldExperienceAwarded = "experience_awarded"
	// FieldExercises holds the string denoting the exercises field in the database.
	FieldExercises = "exercises"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldActivityDate,
	FieldIntensity,
	FieldExerciseCount,
	FieldAllCompleted,
	FieldRating,
	FieldNotes,
	FieldDurationSecs,
	FieldExperienceAwarded,
	FieldExercises,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultIntensity holds the default value on creation for the "intensity" field.
	DefaultIntensity int
	// DefaultExerciseCount holds the default value on creation for the "exercise_count" field.
	DefaultExerciseCount int
	// DefaultAllCompleted holds the default value on creation for the "all_completed" field.
	DefaultAllCompleted bool
	// DefaultRating holds the default value on creation for the "rating" field.
	DefaultRating int
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultExperienceAwarded holds the default value on creation for the "experience_awarded" field.
	DefaultExperienceAwarded int64
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByActivityDate orders the results by the activity_date field.
func ByActivityDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityDate, opts...).ToFunc()
}

// ByIntensity orders the results by the intensity field.
func ByIntensity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntensity, opts...).ToFunc()
}

// ByExerciseCount orders the results by the exercise_count field.
func ByExerciseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseCount, opts...).ToFunc()
}

// ByAllCompleted orders the results by the all_completed field.
func ByAllCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllCompleted, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByExperienceAwarded orders the results by the experience_awarded field.
func ByExperienceAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperienceAwarded, opts...).ToFunc()
}
