// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CoinEventsColumns holds the columns for the "coin_events" table.
	CoinEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "direction", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "balance_after", Type: field.TypeInt64},
	}
	// CoinEventsTable holds the schema information for the "coin_events" table.
	CoinEventsTable = &schema.Table{
		Name:       "coin_events",
		Columns:    CoinEventsColumns,
		PrimaryKey: []*schema.Column{CoinEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coinevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CoinEventsColumns[1]},
			},
			{
				Name:    "coinevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CoinEventsColumns[2]},
			},
			{
				Name:    "coinevent_direction",
				Unique:  false,
				Columns: []*schema.Column{CoinEventsColumns[4]},
			},
			{
				Name:    "coinevent_reason",
				Unique:  false,
				Columns: []*schema.Column{CoinEventsColumns[5]},
			},
		},
	}
	// DrillEventsColumns holds the columns for the "drill_events" table.
	DrillEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "skill_type", Type: field.TypeString},
		{Name: "position", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt, Default: 1},
		{Name: "duration_mins", Type: field.TypeInt, Default: 0},
		{Name: "source", Type: field.TypeString},
	}
	// DrillEventsTable holds the schema information for the "drill_events" table.
	DrillEventsTable = &schema.Table{
		Name:       "drill_events",
		Columns:    DrillEventsColumns,
		PrimaryKey: []*schema.Column{DrillEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drillevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[1]},
			},
			{
				Name:    "drillevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[2]},
			},
			{
				Name:    "drillevent_skill_type",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[4]},
			},
			{
				Name:    "drillevent_source",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[8]},
			},
		},
	}
	// FeedPostsColumns holds the columns for the "feed_posts" table.
	FeedPostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "post_id", Type: field.TypeString, Unique: true},
		{Name: "author", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "body", Type: field.TypeString},
		{Name: "likes", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FeedPostsTable holds the schema information for the "feed_posts" table.
	FeedPostsTable = &schema.Table{
		Name:       "feed_posts",
		Columns:    FeedPostsColumns,
		PrimaryKey: []*schema.Column{FeedPostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedpost_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedPostsColumns[6]},
			},
			{
				Name:    "feedpost_kind",
				Unique:  false,
				Columns: []*schema.Column{FeedPostsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PlayerStatesColumns holds the columns for the "player_states" table.
	PlayerStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "total_experience", Type: field.TypeInt64, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "current_streak_days", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak_days", Type: field.TypeInt, Default: 0},
		{Name: "streak_freezes", Type: field.TypeInt, Default: 0},
		{Name: "last_activity_date", Type: field.TypeTime, Nullable: true},
		{Name: "last_session_id", Type: field.TypeString, Default: ""},
		{Name: "coin_balance", Type: field.TypeInt64, Default: 0},
		{Name: "total_coins_earned", Type: field.TypeInt64, Default: 0},
		{Name: "owned_items", Type: field.TypeJSON, Nullable: true},
		{Name: "achievements", Type: field.TypeJSON, Nullable: true},
		{Name: "position", Type: field.TypeString, Default: ""},
		{Name: "experience_level", Type: field.TypeString, Default: ""},
		{Name: "training_goals", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PlayerStatesTable holds the schema information for the "player_states" table.
	PlayerStatesTable = &schema.Table{
		Name:       "player_states",
		Columns:    PlayerStatesColumns,
		PrimaryKey: []*schema.Column{PlayerStatesColumns[0]},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "activity_date", Type: field.TypeTime},
		{Name: "intensity", Type: field.TypeInt, Default: 0},
		{Name: "exercise_count", Type: field.TypeInt, Default: 0},
		{Name: "all_completed", Type: field.TypeBool, Default: false},
		{Name: "rating", Type: field.TypeInt, Default: 0},
		{Name: "notes", Type: field.TypeString, Default: ""},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "experience_awarded", Type: field.TypeInt64, Default: 0},
		{Name: "exercises", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_activity_date",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CoinEventsTable,
		DrillEventsTable,
		FeedPostsTable,
		LlmRequestEventsTable,
		PlayerStatesTable,
		SessionEventsTable,
	}
)

func init() {
}
