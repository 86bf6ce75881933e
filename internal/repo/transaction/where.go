// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// FacilityID applies equality check predicate on the "facility_id" field. It's identical to FacilityIDEQ.
func FacilityID(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldFacilityID, v))
}

// GrossAmount applies equality check predicate on the "gross_amount" field. It's identical to GrossAmountEQ.
func GrossAmount(v int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldGrossAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCurrency, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldOccurredAt, v))
}

// BillReference applies equality check predicate on the "bill_reference" field. It's identical to BillReferenceEQ.
func BillReference(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldBillReference, v))
}

// CollectedBy applies equality check predicate on the "collected_by" field. It's identical to CollectedByEQ.
func CollectedBy(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCollectedBy, v))
}

// GatewayTxnID applies equality check predicate on the "gateway_txn_id" field. It's identical to GatewayTxnIDEQ.
func GatewayTxnID(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldGatewayTxnID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCreatedAt, v))
}

// FacilityIDEQ applies the EQ predicate on the "facility_id" field.
func FacilityIDEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldFacilityID, v))
}

// FacilityIDNEQ applies the NEQ predicate on the "facility_id" field.
func FacilityIDNEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldFacilityID, v))
}

// FacilityIDIn applies the In predicate on the "facility_id" field.
func FacilityIDIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldFacilityID, vs...))
}

// FacilityIDNotIn applies the NotIn predicate on the "facility_id" field.
func FacilityIDNotIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldFacilityID, vs...))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v Channel) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v Channel) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...Channel) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...Channel) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldChannel, vs...))
}

// GrossAmountEQ applies the EQ predicate on the "gross_amount" field.
func GrossAmountEQ(v int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldGrossAmount, v))
}

// GrossAmountNEQ applies the NEQ predicate on the "gross_amount" field.
func GrossAmountNEQ(v int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldGrossAmount, v))
}

// GrossAmountIn applies the In predicate on the "gross_amount" field.
func GrossAmountIn(vs ...int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldGrossAmount, vs...))
}

// GrossAmountNotIn applies the NotIn predicate on the "gross_amount" field.
func GrossAmountNotIn(vs ...int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldGrossAmount, vs...))
}

// GrossAmountGT applies the GT predicate on the "gross_amount" field.
func GrossAmountGT(v int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldGrossAmount, v))
}

// GrossAmountGTE applies the GTE predicate on the "gross_amount" field.
func GrossAmountGTE(v int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldGrossAmount, v))
}

// GrossAmountLT applies the LT predicate on the "gross_amount" field.
func GrossAmountLT(v int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldGrossAmount, v))
}

// GrossAmountLTE applies the LTE predicate on the "gross_amount" field.
func GrossAmountLTE(v int64) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldGrossAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldCurrency, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldOccurredAt, v))
}

// BillReferenceEQ applies the EQ predicate on the "bill_reference" field.
func BillReferenceEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldBillReference, v))
}

// BillReferenceNEQ applies the NEQ predicate on the "bill_reference" field.
func BillReferenceNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldBillReference, v))
}

// BillReferenceIn applies the In predicate on the "bill_reference" field.
func BillReferenceIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldBillReference, vs...))
}

// BillReferenceNotIn applies the NotIn predicate on the "bill_reference" field.
func BillReferenceNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldBillReference, vs...))
}

// BillReferenceGT applies the GT predicate on the "bill_reference" field.
func BillReferenceGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldBillReference, v))
}

// BillReferenceGTE applies the GTE predicate on the "bill_reference" field.
func BillReferenceGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldBillReference, v))
}

// BillReferenceLT applies the LT predicate on the "bill_reference" field.
func BillReferenceLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldBillReference, v))
}

// BillReferenceLTE applies the LTE predicate on the "bill_reference" field.
func BillReferenceLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldBillReference, v))
}

// BillReferenceContains applies the Contains predicate on the "bill_reference" field.
func BillReferenceContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldBillReference, v))
}

// BillReferenceHasPrefix applies the HasPrefix predicate on the "bill_reference" field.
func BillReferenceHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldBillReference, v))
}

// BillReferenceHasSuffix applies the HasSuffix predicate on the "bill_reference" field.
func BillReferenceHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldBillReference, v))
}

// BillReferenceEqualFold applies the EqualFold predicate on the "bill_reference" field.
func BillReferenceEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldBillReference, v))
}

// BillReferenceContainsFold applies the ContainsFold predicate on the "bill_reference" field.
func BillReferenceContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldBillReference, v))
}

// CollectedByEQ applies the EQ predicate on the "collected_by" field.
func CollectedByEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCollectedBy, v))
}

// CollectedByNEQ applies the NEQ predicate on the "collected_by" field.
func CollectedByNEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCollectedBy, v))
}

// CollectedByIn applies the In predicate on the "collected_by" field.
func CollectedByIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCollectedBy, vs...))
}

// CollectedByNotIn applies the NotIn predicate on the "collected_by" field.
func CollectedByNotIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCollectedBy, vs...))
}

// CollectedByGT applies the GT predicate on the "collected_by" field.
func CollectedByGT(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCollectedBy, v))
}

// CollectedByGTE applies the GTE predicate on the "collected_by" field.
func CollectedByGTE(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCollectedBy, v))
}

// CollectedByLT applies the LT predicate on the "collected_by" field.
func CollectedByLT(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCollectedBy, v))
}

// CollectedByLTE applies the LTE predicate on the "collected_by" field.
func CollectedByLTE(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCollectedBy, v))
}

// CollectedByIsNil applies the IsNil predicate on the "collected_by" field.
func CollectedByIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldCollectedBy))
}

// CollectedByNotNil applies the NotNil predicate on the "collected_by" field.
func CollectedByNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldCollectedBy))
}

// GatewayTxnIDEQ applies the EQ predicate on the "gateway_txn_id" field.
func GatewayTxnIDEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldGatewayTxnID, v))
}

// GatewayTxnIDNEQ applies the NEQ predicate on the "gateway_txn_id" field.
func GatewayTxnIDNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldGatewayTxnID, v))
}

// GatewayTxnIDIn applies the In predicate on the "gateway_txn_id" field.
func GatewayTxnIDIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldGatewayTxnID, vs...))
}

// GatewayTxnIDNotIn applies the NotIn predicate on the "gateway_txn_id" field.
func GatewayTxnIDNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldGatewayTxnID, vs...))
}

// GatewayTxnIDGT applies the GT predicate on the "gateway_txn_id" field.
func GatewayTxnIDGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldGatewayTxnID, v))
}

// GatewayTxnIDGTE applies the GTE predicate on the "gateway_txn_id" field.
func GatewayTxnIDGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldGatewayTxnID, v))
}

// GatewayTxnIDLT applies the LT predicate on the "gateway_txn_id" field.
func GatewayTxnIDLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldGatewayTxnID, v))
}

// GatewayTxnIDLTE applies the LTE predicate on the "gateway_txn_id" field.
func GatewayTxnIDLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldGatewayTxnID, v))
}

// GatewayTxnIDContains applies the Contains predicate on the "gateway_txn_id" field.
func GatewayTxnIDContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldGatewayTxnID, v))
}

// GatewayTxnIDHasPrefix applies the HasPrefix predicate on the "gateway_txn_id" field.
func GatewayTxnIDHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldGatewayTxnID, v))
}

// GatewayTxnIDHasSuffix applies the HasSuffix predicate on the "gateway_txn_id" field.
func GatewayTxnIDHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldGatewayTxnID, v))
}

// GatewayTxnIDIsNil applies the IsNil predicate on the "gateway_txn_id" field.
func GatewayTxnIDIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldGatewayTxnID))
}

// GatewayTxnIDNotNil applies the NotNil predicate on the "gateway_txn_id" field.
func GatewayTxnIDNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldGatewayTxnID))
}

// GatewayTxnIDEqualFold applies the EqualFold predicate on the "gateway_txn_id" field.
func GatewayTxnIDEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldGatewayTxnID, v))
}

// GatewayTxnIDContainsFold applies the ContainsFold predicate on the "gateway_txn_id" field.
func GatewayTxnIDContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldGatewayTxnID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldStatus, vs...))
}

// HasFacility applies the HasEdge predicate on the "facility" edge.
func HasFacility() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FacilityTable, FacilityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacilityWith applies the HasEdge predicate on the "facility" edge with a given conditions (other predicates).
func HasFacilityWith(preds ...predicate.Facility) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newFacilityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntries applies the HasEdge predicate on the "entries" edge.
func HasEntries() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntriesWith applies the HasEdge predicate on the "entries" edge with a given conditions (other predicates).
func HasEntriesWith(preds ...predicate.CommissionEntry) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.NotPredicates(p))
}
