package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoinEvent records a single coin award or deduction for auditability.
type CoinEvent struct {
	ent.Schema
}

func (CoinEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CoinEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("amount").
			Positive(),
		field.String("direction").
			NotEmpty().
			Comment("earned or spent"),
		field.String("reason").
			NotEmpty().
			Comment("Label shown in the transaction feed, e.g. session_complete"),
		field.Int64("balance_after").
			NonNegative().
			Comment("Coin balance after this transaction applied"),
	}
}

func (CoinEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("direction"),
		index.Fields("reason"),
	}
}
