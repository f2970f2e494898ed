package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one completed (or early-ended) training session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// ExerciseResult is the serialized per-exercise outcome of a session.
type ExerciseResult struct {
	Name      string  `json:"name"`
	SkillType string  `json:"skill_type"`
	Completed bool    `json:"completed"`
	Technique float64 `json:"technique"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned when the session starts"),
		field.Time("activity_date").
			Comment("Midnight of the calendar day the session counts toward"),
		field.Int("intensity").
			Default(0).
			Comment("Self-reported intensity 0-10"),
		field.Int("exercise_count").
			Default(0),
		field.Bool("all_completed").
			Default(false),
		field.Int("rating").
			Default(0).
			Comment("Post-session rating 1-5, 0 when not given"),
		field.String("notes").
			Default(""),
		field.Int("duration_secs").
			Default(0),
		field.Int64("experience_awarded").
			Default(0),
		field.JSON("exercises", []ExerciseResult{}).
			Optional().
			Comment("Per-exercise results, input to the recommendation engine"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("activity_date"),
	}
}
