// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/techniq-app/techniq/ent/drillevent"
)

// DrillEvent is the model entity for the DrillEvent schema.
type DrillEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// SkillType holds the value of the "skill_type" field.
	SkillType string `json:"skill_type,omitempty"`
	// Position the drill was tailored to
	Position string `json:"position,omitempty"`
	// 1 (easy) to 5 (hard)
	Difficulty int `json:"difficulty,omitempty"`
	// DurationMins holds the value of the "duration_mins" field.
	DurationMins int `json:"duration_mins,omitempty"`
	// llm or fallback
	Source       string `json:"source,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DrillEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldID, drillevent.FieldSequence, drillevent.FieldDifficulty, drillevent.FieldDurationMins:
			values[i] = new(sql.NullInt64)
		case drillevent.FieldName, drillevent.FieldSkillType, drillevent.FieldPosition, drillevent.FieldSource:
			values[i] = new(sql.NullString)
		case drillevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DrillEvent fields.
func (_m *DrillEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case drillevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case drillevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case drillevent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case drillevent.FieldSkillType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_type", values[i])
			} else if value.Valid {
				_m.SkillType = value.String
			}
		case drillevent.FieldPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = value.String
			}
		case drillevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case drillevent.FieldDurationMins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_mins", values[i])
			} else if value.Valid {
				_m.DurationMins = int(value.Int64)
			}
		case drillevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DrillEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DrillEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DrillEvent.
// Note that you need to call DrillEvent.Unwrap() before calling this method if this DrillEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DrillEvent) Update() *DrillEventUpdateOne {
	return NewDrillEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DrillEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DrillEvent) Unwrap() *DrillEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DrillEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DrillEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DrillEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("skill_type=")
	builder.WriteString(_m.SkillType)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(_m.Position)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("duration_mins=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMins))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// DrillEvents is a parsable slice of DrillEvent.
type DrillEvents []*DrillEvent
