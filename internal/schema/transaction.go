package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Transaction unifies an online gateway payment and a cash collection.
// Immutable once captured except for the explicit reversal transition.
type Transaction struct {
	ent.Schema
}

func (Transaction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("facility_id", uuid.UUID{}).
			Comment("FK → facilities.id"),

		field.Enum("channel").
			Values("online", "cash"),

		field.Int64("gross_amount").
			Positive().
			Comment("Gross amount in minor currency units, never floating point"),

		field.String("currency").
			MaxLen(3),

		field.Time("occurred_at").
			Comment("When the money actually moved, as reported by the capturing system"),

		field.String("bill_reference").
			MaxLen(100).
			NotEmpty().
			Comment("Reference to the originating bill in the billing system"),

		field.UUID("collected_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Facility staff member who collected, for cash channel"),

		field.String("gateway_txn_id").
			MaxLen(100).
			Optional().
			Nillable().
			Comment("Gateway transaction id, for online channel"),

		field.Enum("status").
			Values("captured", "reversed").
			Default("captured"),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("facility", Facility.Type).
			Ref("transactions").
			Unique().
			Required().
			Field("facility_id"),
		// One entry per capture; a reversal adds a second, negating entry.
		edge.To("entries", CommissionEntry.Type),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		// Capture is at-least-once; one bill reference maps to one row per facility.
		index.Fields("facility_id", "bill_reference").Unique(),
		index.Fields("facility_id", "occurred_at"),
		index.Fields("facility_id", "channel"),
	}
}
