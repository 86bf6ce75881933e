// Code generated by ent, DO NOT EDIT.

package idempotencykey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldCreatedAt, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldKey, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldOperation, v))
}

// FacilityID applies equality check predicate on the "facility_id" field. It's identical to FacilityIDEQ.
func FacilityID(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldFacilityID, v))
}

// SettlementID applies equality check predicate on the "settlement_id" field. It's identical to SettlementIDEQ.
func SettlementID(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldSettlementID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldCreatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContainsFold(FieldKey, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldContainsFold(FieldOperation, v))
}

// FacilityIDEQ applies the EQ predicate on the "facility_id" field.
func FacilityIDEQ(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldFacilityID, v))
}

// FacilityIDNEQ applies the NEQ predicate on the "facility_id" field.
func FacilityIDNEQ(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldFacilityID, v))
}

// FacilityIDIn applies the In predicate on the "facility_id" field.
func FacilityIDIn(vs ...uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldFacilityID, vs...))
}

// FacilityIDNotIn applies the NotIn predicate on the "facility_id" field.
func FacilityIDNotIn(vs ...uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldFacilityID, vs...))
}

// FacilityIDGT applies the GT predicate on the "facility_id" field.
func FacilityIDGT(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldFacilityID, v))
}

// FacilityIDGTE applies the GTE predicate on the "facility_id" field.
func FacilityIDGTE(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldFacilityID, v))
}

// FacilityIDLT applies the LT predicate on the "facility_id" field.
func FacilityIDLT(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldFacilityID, v))
}

// FacilityIDLTE applies the LTE predicate on the "facility_id" field.
func FacilityIDLTE(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldFacilityID, v))
}

// SettlementIDEQ applies the EQ predicate on the "settlement_id" field.
func SettlementIDEQ(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldEQ(FieldSettlementID, v))
}

// SettlementIDNEQ applies the NEQ predicate on the "settlement_id" field.
func SettlementIDNEQ(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNEQ(FieldSettlementID, v))
}

// SettlementIDIn applies the In predicate on the "settlement_id" field.
func SettlementIDIn(vs ...uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIn(FieldSettlementID, vs...))
}

// SettlementIDNotIn applies the NotIn predicate on the "settlement_id" field.
func SettlementIDNotIn(vs ...uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotIn(FieldSettlementID, vs...))
}

// SettlementIDGT applies the GT predicate on the "settlement_id" field.
func SettlementIDGT(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGT(FieldSettlementID, v))
}

// SettlementIDGTE applies the GTE predicate on the "settlement_id" field.
func SettlementIDGTE(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldGTE(FieldSettlementID, v))
}

// SettlementIDLT applies the LT predicate on the "settlement_id" field.
func SettlementIDLT(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLT(FieldSettlementID, v))
}

// SettlementIDLTE applies the LTE predicate on the "settlement_id" field.
func SettlementIDLTE(v uuid.UUID) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldLTE(FieldSettlementID, v))
}

// SettlementIDIsNil applies the IsNil predicate on the "settlement_id" field.
func SettlementIDIsNil() predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldIsNull(FieldSettlementID))
}

// SettlementIDNotNil applies the NotNil predicate on the "settlement_id" field.
func SettlementIDNotNil() predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.FieldNotNull(FieldSettlementID))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IdempotencyKey) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IdempotencyKey) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IdempotencyKey) predicate.IdempotencyKey {
	return predicate.IdempotencyKey(sql.NotPredicates(p))
}
