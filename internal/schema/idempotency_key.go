package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// IdempotencyKey records one completed state-changing operation so that a
// retried call with the same key returns the original result instead of
// re-applying a financial mutation. The row is written in the same
// transaction as the side effect it fences.
type IdempotencyKey struct {
	ent.Schema
}

func (IdempotencyKey) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (IdempotencyKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			MaxLen(120).
			NotEmpty().
			Unique(),

		field.String("operation").
			MaxLen(60).
			NotEmpty().
			Comment("Logical operation name: settlement.propose, settlement.approve, ..."),

		field.UUID("facility_id", uuid.UUID{}),

		field.UUID("settlement_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Result of the fenced operation, replayed on key reuse"),
	}
}

func (IdempotencyKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("facility_id", "operation"),
	}
}
