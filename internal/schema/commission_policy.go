package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// CommissionPolicy is the per-facility configuration that turns a captured
// transaction into a commission amount. Rates are stored as decimal strings
// ("0.0115" = 1.15%) so the database never holds a float; the policy service
// validates and parses them before any arithmetic happens.
type CommissionPolicy struct {
	ent.Schema
}

func (CommissionPolicy) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CommissionPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("facility_id", uuid.UUID{}).
			Unique().
			Comment("FK → facilities.id (one policy per facility)"),

		field.String("platform_mdr_rate").
			MaxLen(20).
			Default("0").
			Comment("MDR the platform charges on online payments, decimal in [0,1]"),

		field.String("gateway_mdr_rate").
			MaxLen(20).
			Default("0").
			Comment("MDR the gateway itself charges; platform margin = platform − gateway"),

		field.Bool("tax_on_commission").
			Default(false).
			Comment("If true, tax_rate is added on top of the computed commission"),

		field.String("tax_rate").
			MaxLen(20).
			Default("0").
			Comment("Tax rate applied to commission when tax_on_commission is set"),

		field.Bool("cash_commission_enabled").
			Default(false),

		field.Enum("cash_commission_type").
			Values("percentage", "fixed").
			Default("percentage"),

		field.String("cash_commission_value").
			MaxLen(20).
			Default("0").
			Comment("Rate in [0,1] for percentage type; fee in minor units for fixed type"),

		field.Enum("rounding_mode").
			Values("nearest", "up", "down").
			Default("nearest").
			Comment("Applied once, at the end of each calculation, to the minor unit"),
	}
}

func (CommissionPolicy) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("facility", Facility.Type).
			Ref("policy").
			Unique().
			Required().
			Field("facility_id"),
	}
}
