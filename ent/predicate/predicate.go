// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CoinEvent is the predicate function for coinevent builders.
type CoinEvent func(*sql.Selector)

// DrillEvent is the predicate function for drillevent builders.
type DrillEvent func(*sql.Selector)

// FeedPost is the predicate function for feedpost builders.
type FeedPost func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PlayerState is the predicate function for playerstate builders.
type PlayerState func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
