package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PlayerState is the single persistent player record. The progression
// engine owns every numeric field here; a save commits all pending field
// changes in one transaction or none of them.
type PlayerState struct {
	ent.Schema
}

func (PlayerState) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("total_experience").
			Default(0).
			NonNegative().
			Comment("Cumulative experience, never decreases"),
		field.Int("level").
			Default(1).
			Comment("Derived from total_experience via the level curve, 1-50"),
		field.Int("current_streak_days").
			Default(0).
			NonNegative(),
		field.Int("longest_streak_days").
			Default(0).
			NonNegative(),
		field.Int("streak_freezes").
			Default(0).
			NonNegative().
			Comment("Consumable misses-a-day forgiveness, bought in the shop"),
		field.Time("last_activity_date").
			Optional().
			Nillable().
			Comment("Midnight of the last day with a recorded session"),
		field.String("last_session_id").
			Default("").
			Comment("Guard against replaying the same session completion"),
		field.Int64("coin_balance").
			Default(0).
			NonNegative(),
		field.Int64("total_coins_earned").
			Default(0).
			NonNegative().
			Comment("Cumulative earnings, unaffected by spending"),
		field.Strings("owned_items").
			Optional().
			Comment("Cosmetic item IDs purchased in the shop"),
		field.Strings("achievements").
			Optional().
			Comment("Unlocked achievement IDs"),
		field.String("position").
			Default("").
			Comment("Playing position for drill generation"),
		field.String("experience_level").
			Default("").
			Comment("beginner, intermediate, or advanced"),
		field.Strings("training_goals").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
