package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Settlement is a batch reconciling a facility's outstanding commission for
// one period, moving draft → pending_approval → approved → paid, with
// cancelled as the only other terminal state.
type Settlement struct {
	ent.Schema
}

func (Settlement) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Settlement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("facility_id", uuid.UUID{}).
			Comment("FK → facilities.id"),

		field.Enum("settlement_type").
			Values("online", "cash", "mixed"),

		field.Time("period_from").
			Comment("Inclusive lower bound of the covered period"),

		field.Time("period_to").
			Comment("Exclusive upper bound of the covered period"),

		field.Enum("status").
			Values("draft", "pending_approval", "approved", "paid", "cancelled").
			Default("draft"),

		field.Int64("total_collections").
			Default(0).
			Comment("Sum of gross amounts across linked entries"),

		field.Int64("total_commission").
			Default(0).
			Comment("Sum of commission amounts across linked entries"),

		field.Int64("facility_share").
			Default(0).
			Comment("collections − commission"),

		field.Int64("platform_share").
			Default(0).
			Comment("Equal to total_commission; kept explicit for export consumers"),

		field.String("currency").
			MaxLen(3),

		field.UUID("submitted_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("approved_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("approved_at").
			Optional().
			Nillable(),

		field.UUID("paid_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("paid_at").
			Optional().
			Nillable(),

		field.String("payment_reference").
			MaxLen(200).
			Optional().
			Nillable().
			Comment("Bank/UTR reference recorded on the paid transition"),

		field.String("payment_method").
			MaxLen(50).
			Optional().
			Nillable(),

		field.UUID("cancelled_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.String("notes").
			MaxLen(1000).
			Optional().
			Comment("Free-form context from the proposer, e.g. payout batch remarks"),
	}
}

func (Settlement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("facility", Facility.Type).
			Ref("settlements").
			Unique().
			Required().
			Field("facility_id"),
		edge.To("items", SettlementItem.Type),
	}
}

func (Settlement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("facility_id", "status"),
		index.Fields("facility_id", "created_at"),
	}
}
