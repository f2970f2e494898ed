package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillEvent records an AI-generated (or fallback) drill served to the player.
type DrillEvent struct {
	ent.Schema
}

func (DrillEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DrillEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.String("skill_type").NotEmpty(),
		field.String("position").
			Default("").
			Comment("Position the drill was tailored to"),
		field.Int("difficulty").
			Default(1).
			Comment("1 (easy) to 5 (hard)"),
		field.Int("duration_mins").
			Default(0),
		field.String("source").
			NotEmpty().
			Comment("llm or fallback"),
	}
}

func (DrillEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_type"),
		index.Fields("source"),
	}
}
