// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/techniq-app/techniq/ent/schema"
	"github.com/techniq-app/techniq/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned when the session starts
	SessionID string `json:"session_id,omitempty"`
	// Midnight of the calendar day the session counts toward
	ActivityDate time.Time `json:"activity_date,omitempty"`
	// Self-reported intensity 0-10
	Intensity int `json:"intensity,omitempty"`
	// ExerciseCount holds the value of the "exercise_count" field.
	ExerciseCount int `json:"exercise_count,omitempty"`
	// AllCompleted holds the value of the "all_completed" field.
	AllCompleted bool `json:"all_completed,omitempty"`
	// Post-session rating 1-5, 0 when not given
	Rating int `json:"rating,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// DurationSecs holds the value of the "duration_secs" field.
	DurationSecs int `json:"duration_secs,omitempty"`
	// ExperienceAwarded holds the value of the "experience_awarded" field.
	ExperienceAwarded int64 `json:"experience_awarded,omitempty"`
	// Per-exercise results, input to the recommendation engine
	Exercises    []schema.ExerciseResult `json:"exercises,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldExercises:
			values[i] = new([]byte)
		case sessionevent.FieldAllCompleted:
			values[i] = new(sql.NullBool)
		case sessionevent.FieldID, sessionevent.FieldSequence, sessionevent.FieldIntensity, sessionevent.FieldExerciseCount, sessionevent.FieldRating, sessionevent.FieldDurationSecs, sessionevent.FieldExperienceAwarded:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldSessionID, sessionevent.FieldNotes:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp, sessionevent.FieldActivityDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (_m *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionevent.FieldActivityDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field activity_date", values[i])
			} else if value.Valid {
				_m.ActivityDate = value.Time
			}
		case sessionevent.FieldIntensity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intensity", values[i])
			} else if value.Valid {
				_m.Intensity = int(value.Int64)
			}
		case sessionevent.FieldExerciseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_count", values[i])
			} else if value.Valid {
				_m.ExerciseCount = int(value.Int64)
			}
		case sessionevent.FieldAllCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field all_completed", values[i])
			} else if value.Valid {
				_m.AllCompleted = value.Bool
			}
		case sessionevent.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = int(value.Int64)
			}
		case sessionevent.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case sessionevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case sessionevent.FieldExperienceAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experience_awarded", values[i])
			} else if value.Valid {
				_m.ExperienceAwarded = value.Int64
			}
		case sessionevent.FieldExercises:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exercises", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Exercises); err != nil {
					return fmt.Errorf("unmarshal field exercises: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("activity_date=")
	builder.WriteString(_m.ActivityDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("intensity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Intensity))
	builder.WriteString(", ")
	builder.WriteString("exercise_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseCount))
	builder.WriteString(", ")
	builder.WriteString("all_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllCompleted))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("experience_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperienceAwarded))
	builder.WriteString(", ")
	builder.WriteString("exercises=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exercises))
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
