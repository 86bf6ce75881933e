// Code generated by ent, DO NOT EDIT.

package settlementitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldCreatedAt, v))
}

// SettlementID applies equality check predicate on the "settlement_id" field. It's identical to SettlementIDEQ.
func SettlementID(v uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldSettlementID, v))
}

// EntryID applies equality check predicate on the "entry_id" field. It's identical to EntryIDEQ.
func EntryID(v uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldEntryID, v))
}

// CommissionAmount applies equality check predicate on the "commission_amount" field. It's identical to CommissionAmountEQ.
func CommissionAmount(v int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldCommissionAmount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldLTE(FieldCreatedAt, v))
}

// SettlementIDEQ applies the EQ predicate on the "settlement_id" field.
func SettlementIDEQ(v uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldSettlementID, v))
}

// SettlementIDNEQ applies the NEQ predicate on the "settlement_id" field.
func SettlementIDNEQ(v uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNEQ(FieldSettlementID, v))
}

// SettlementIDIn applies the In predicate on the "settlement_id" field.
func SettlementIDIn(vs ...uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldIn(FieldSettlementID, vs...))
}

// SettlementIDNotIn applies the NotIn predicate on the "settlement_id" field.
func SettlementIDNotIn(vs ...uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNotIn(FieldSettlementID, vs...))
}

// EntryIDEQ applies the EQ predicate on the "entry_id" field.
func EntryIDEQ(v uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldEntryID, v))
}

// EntryIDNEQ applies the NEQ predicate on the "entry_id" field.
func EntryIDNEQ(v uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNEQ(FieldEntryID, v))
}

// EntryIDIn applies the In predicate on the "entry_id" field.
func EntryIDIn(vs ...uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldIn(FieldEntryID, vs...))
}

// EntryIDNotIn applies the NotIn predicate on the "entry_id" field.
func EntryIDNotIn(vs ...uuid.UUID) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNotIn(FieldEntryID, vs...))
}

// CommissionAmountEQ applies the EQ predicate on the "commission_amount" field.
func CommissionAmountEQ(v int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldEQ(FieldCommissionAmount, v))
}

// CommissionAmountNEQ applies the NEQ predicate on the "commission_amount" field.
func CommissionAmountNEQ(v int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNEQ(FieldCommissionAmount, v))
}

// CommissionAmountIn applies the In predicate on the "commission_amount" field.
func CommissionAmountIn(vs ...int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldIn(FieldCommissionAmount, vs...))
}

// CommissionAmountNotIn applies the NotIn predicate on the "commission_amount" field.
func CommissionAmountNotIn(vs ...int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldNotIn(FieldCommissionAmount, vs...))
}

// CommissionAmountGT applies the GT predicate on the "commission_amount" field.
func CommissionAmountGT(v int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldGT(FieldCommissionAmount, v))
}

// CommissionAmountGTE applies the GTE predicate on the "commission_amount" field.
func CommissionAmountGTE(v int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldGTE(FieldCommissionAmount, v))
}

// CommissionAmountLT applies the LT predicate on the "commission_amount" field.
func CommissionAmountLT(v int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldLT(FieldCommissionAmount, v))
}

// CommissionAmountLTE applies the LTE predicate on the "commission_amount" field.
func CommissionAmountLTE(v int64) predicate.SettlementItem {
	return predicate.SettlementItem(sql.FieldLTE(FieldCommissionAmount, v))
}

// HasSettlement applies the HasEdge predicate on the "settlement" edge.
func HasSettlement() predicate.SettlementItem {
	return predicate.SettlementItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SettlementTable, SettlementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSettlementWith applies the HasEdge predicate on the "settlement" edge with a given conditions (other predicates).
func HasSettlementWith(preds ...predicate.Settlement) predicate.SettlementItem {
	return predicate.SettlementItem(func(s *sql.Selector) {
		step := newSettlementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntry applies the HasEdge predicate on the "entry" edge.
func HasEntry() predicate.SettlementItem {
	return predicate.SettlementItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntryTable, EntryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntryWith applies the HasEdge predicate on the "entry" edge with a given conditions (other predicates).
func HasEntryWith(preds ...predicate.CommissionEntry) predicate.SettlementItem {
	return predicate.SettlementItem(func(s *sql.Selector) {
		step := newEntryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SettlementItem) predicate.SettlementItem {
	return predicate.SettlementItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SettlementItem) predicate.SettlementItem {
	return predicate.SettlementItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SettlementItem) predicate.SettlementItem {
	return predicate.SettlementItem(sql.NotPredicates(p))
}
