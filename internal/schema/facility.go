package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Facility is a tenant: an independent healthcare facility whose revenue
// the platform earns commission on.
type Facility struct {
	ent.Schema
}

func (Facility) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Facility) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(200).
			NotEmpty(),

		field.String("code").
			MaxLen(30).
			NotEmpty().
			Unique().
			Comment("Short human-assigned identifier used in exports and support tickets"),

		field.String("currency").
			MaxLen(3).
			Default("INR").
			Comment("ISO 4217 currency for all amounts at this facility"),

		field.Bool("is_active").
			Default(true),

		field.Int64("ledger_seq").
			Default(0).
			Comment("Monotonic per-facility ledger cursor, advanced via compare-and-swap"),
	}
}

func (Facility) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("policy", CommissionPolicy.Type).
			Unique(),
		edge.To("transactions", Transaction.Type),
		edge.To("entries", CommissionEntry.Type),
		edge.To("settlements", Settlement.Type),
	}
}

func (Facility) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
