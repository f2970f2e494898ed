package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedPost is a local activity-feed entry. Cloud sync of the feed is a
// collaborator concern; this table only backs the on-device view.
type FeedPost struct {
	ent.Schema
}

func (FeedPost) Fields() []ent.Field {
	return []ent.Field{
		field.String("post_id").
			NotEmpty().
			Unique(),
		field.String("author").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("session, level_up, or achievement"),
		field.String("body").
			NotEmpty(),
		field.Int("likes").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (FeedPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("kind"),
	}
}
