package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SettlementItem links a Settlement to the commission entries it covers.
// The junction is what makes partial settlement possible: a facility's
// outstanding entries may be split across multiple settlements over time.
type SettlementItem struct {
	ent.Schema
}

func (SettlementItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (SettlementItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("settlement_id", uuid.UUID{}).
			Comment("FK → settlements.id"),

		field.UUID("entry_id", uuid.UUID{}).
			Comment("FK → commission_entries.id"),

		field.Int64("commission_amount").
			Comment("Copy of the entry's commission at claim time, for drift checks"),
	}
}

func (SettlementItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("settlement", Settlement.Type).
			Ref("items").
			Unique().
			Required().
			Field("settlement_id"),
		edge.From("entry", CommissionEntry.Type).
			Ref("items").
			Unique().
			Required().
			Field("entry_id"),
	}
}

func (SettlementItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("settlement_id", "entry_id").Unique(),
		index.Fields("entry_id"),
	}
}
