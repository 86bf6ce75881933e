package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CommissionEntry is the calculator's output for one transaction: how much
// the platform is owed and what the facility keeps. Amount fields and the
// policy snapshot are immutable once written; only settlement linkage moves.
type CommissionEntry struct {
	ent.Schema
}

func (CommissionEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (CommissionEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("facility_id", uuid.UUID{}).
			Comment("FK → facilities.id, denormalized for facility-scoped scans"),

		field.UUID("transaction_id", uuid.UUID{}).
			Comment("FK → transactions.id"),

		field.Int64("seq").
			Comment("Facility-scoped monotonic sequence, assigned at append time"),

		field.Enum("channel").
			Values("online", "cash").
			Immutable(),

		field.Int64("gross_amount").
			Immutable().
			Comment("Copy of the transaction gross, negative for reversal entries"),

		field.Int64("commission_amount").
			Immutable().
			Comment("Platform commission in minor units, negative only on reversals"),

		field.Int64("facility_share").
			Immutable().
			Comment("What the facility keeps: gross minus commission"),

		field.String("currency").
			MaxLen(3).
			Immutable(),

		field.Time("occurred_at").
			Immutable().
			Comment("Copied from the transaction; drives aging buckets"),

		// Policy snapshot taken at computation time. Later policy edits never
		// retroactively alter this entry.
		field.String("snapshot_rate").
			MaxLen(20).
			Immutable().
			Comment("Effective rate used: platform−gateway margin online, cash rate for cash"),

		field.String("snapshot_tax_rate").
			MaxLen(20).
			Default("0").
			Immutable(),

		field.Enum("snapshot_cash_type").
			Values("percentage", "fixed", "none").
			Default("none").
			Immutable(),

		field.Enum("snapshot_rounding").
			Values("nearest", "up", "down").
			Immutable(),

		field.Enum("status").
			Values("unsettled", "included_in_settlement", "settled").
			Default("unsettled"),

		field.UUID("settlement_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Active settlement currently claiming this entry, if any"),

		field.UUID("reverses_entry_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("Set on negation entries created by a transaction reversal"),
	}
}

func (CommissionEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("facility", Facility.Type).
			Ref("entries").
			Unique().
			Required().
			Field("facility_id"),
		edge.From("transaction", Transaction.Type).
			Ref("entries").
			Unique().
			Required().
			Field("transaction_id"),
		edge.To("items", SettlementItem.Type),
	}
}

func (CommissionEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("facility_id", "seq").Unique(),
		index.Fields("facility_id", "status"),
		index.Fields("facility_id", "occurred_at"),
		index.Fields("transaction_id"),
		index.Fields("settlement_id"),
	}
}
