// Code generated by ent, DO NOT EDIT.

package settlement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldUpdatedAt, v))
}

// FacilityID applies equality check predicate on the "facility_id" field. It's identical to FacilityIDEQ.
func FacilityID(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldFacilityID, v))
}

// PeriodFrom applies equality check predicate on the "period_from" field. It's identical to PeriodFromEQ.
func PeriodFrom(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPeriodFrom, v))
}

// PeriodTo applies equality check predicate on the "period_to" field. It's identical to PeriodToEQ.
func PeriodTo(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPeriodTo, v))
}

// TotalCollections applies equality check predicate on the "total_collections" field. It's identical to TotalCollectionsEQ.
func TotalCollections(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldTotalCollections, v))
}

// TotalCommission applies equality check predicate on the "total_commission" field. It's identical to TotalCommissionEQ.
func TotalCommission(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldTotalCommission, v))
}

// FacilityShare applies equality check predicate on the "facility_share" field. It's identical to FacilityShareEQ.
func FacilityShare(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldFacilityShare, v))
}

// PlatformShare applies equality check predicate on the "platform_share" field. It's identical to PlatformShareEQ.
func PlatformShare(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPlatformShare, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldCurrency, v))
}

// SubmittedBy applies equality check predicate on the "submitted_by" field. It's identical to SubmittedByEQ.
func SubmittedBy(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldSubmittedBy, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldApprovedAt, v))
}

// PaidBy applies equality check predicate on the "paid_by" field. It's identical to PaidByEQ.
func PaidBy(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPaidBy, v))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPaidAt, v))
}

// PaymentReference applies equality check predicate on the "payment_reference" field. It's identical to PaymentReferenceEQ.
func PaymentReference(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPaymentReference, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPaymentMethod, v))
}

// CancelledBy applies equality check predicate on the "cancelled_by" field. It's identical to CancelledByEQ.
func CancelledBy(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldCancelledBy, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldCancelledAt, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldUpdatedAt, v))
}

// FacilityIDEQ applies the EQ predicate on the "facility_id" field.
func FacilityIDEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldFacilityID, v))
}

// FacilityIDNEQ applies the NEQ predicate on the "facility_id" field.
func FacilityIDNEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldFacilityID, v))
}

// FacilityIDIn applies the In predicate on the "facility_id" field.
func FacilityIDIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldFacilityID, vs...))
}

// FacilityIDNotIn applies the NotIn predicate on the "facility_id" field.
func FacilityIDNotIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldFacilityID, vs...))
}

// SettlementTypeEQ applies the EQ predicate on the "settlement_type" field.
func SettlementTypeEQ(v SettlementType) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldSettlementType, v))
}

// SettlementTypeNEQ applies the NEQ predicate on the "settlement_type" field.
func SettlementTypeNEQ(v SettlementType) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldSettlementType, v))
}

// SettlementTypeIn applies the In predicate on the "settlement_type" field.
func SettlementTypeIn(vs ...SettlementType) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldSettlementType, vs...))
}

// SettlementTypeNotIn applies the NotIn predicate on the "settlement_type" field.
func SettlementTypeNotIn(vs ...SettlementType) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldSettlementType, vs...))
}

// PeriodFromEQ applies the EQ predicate on the "period_from" field.
func PeriodFromEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPeriodFrom, v))
}

// PeriodFromNEQ applies the NEQ predicate on the "period_from" field.
func PeriodFromNEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldPeriodFrom, v))
}

// PeriodFromIn applies the In predicate on the "period_from" field.
func PeriodFromIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldPeriodFrom, vs...))
}

// PeriodFromNotIn applies the NotIn predicate on the "period_from" field.
func PeriodFromNotIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldPeriodFrom, vs...))
}

// PeriodFromGT applies the GT predicate on the "period_from" field.
func PeriodFromGT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldPeriodFrom, v))
}

// PeriodFromGTE applies the GTE predicate on the "period_from" field.
func PeriodFromGTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldPeriodFrom, v))
}

// PeriodFromLT applies the LT predicate on the "period_from" field.
func PeriodFromLT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldPeriodFrom, v))
}

// PeriodFromLTE applies the LTE predicate on the "period_from" field.
func PeriodFromLTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldPeriodFrom, v))
}

// PeriodToEQ applies the EQ predicate on the "period_to" field.
func PeriodToEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPeriodTo, v))
}

// PeriodToNEQ applies the NEQ predicate on the "period_to" field.
func PeriodToNEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldPeriodTo, v))
}

// PeriodToIn applies the In predicate on the "period_to" field.
func PeriodToIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldPeriodTo, vs...))
}

// PeriodToNotIn applies the NotIn predicate on the "period_to" field.
func PeriodToNotIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldPeriodTo, vs...))
}

// PeriodToGT applies the GT predicate on the "period_to" field.
func PeriodToGT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldPeriodTo, v))
}

// PeriodToGTE applies the GTE predicate on the "period_to" field.
func PeriodToGTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldPeriodTo, v))
}

// PeriodToLT applies the LT predicate on the "period_to" field.
func PeriodToLT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldPeriodTo, v))
}

// PeriodToLTE applies the LTE predicate on the "period_to" field.
func PeriodToLTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldPeriodTo, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalCollectionsEQ applies the EQ predicate on the "total_collections" field.
func TotalCollectionsEQ(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldTotalCollections, v))
}

// TotalCollectionsNEQ applies the NEQ predicate on the "total_collections" field.
func TotalCollectionsNEQ(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldTotalCollections, v))
}

// TotalCollectionsIn applies the In predicate on the "total_collections" field.
func TotalCollectionsIn(vs ...int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldTotalCollections, vs...))
}

// TotalCollectionsNotIn applies the NotIn predicate on the "total_collections" field.
func TotalCollectionsNotIn(vs ...int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldTotalCollections, vs...))
}

// TotalCollectionsGT applies the GT predicate on the "total_collections" field.
func TotalCollectionsGT(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldTotalCollections, v))
}

// TotalCollectionsGTE applies the GTE predicate on the "total_collections" field.
func TotalCollectionsGTE(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldTotalCollections, v))
}

// TotalCollectionsLT applies the LT predicate on the "total_collections" field.
func TotalCollectionsLT(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldTotalCollections, v))
}

// TotalCollectionsLTE applies the LTE predicate on the "total_collections" field.
func TotalCollectionsLTE(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldTotalCollections, v))
}

// TotalCommissionEQ applies the EQ predicate on the "total_commission" field.
func TotalCommissionEQ(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldTotalCommission, v))
}

// TotalCommissionNEQ applies the NEQ predicate on the "total_commission" field.
func TotalCommissionNEQ(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldTotalCommission, v))
}

// TotalCommissionIn applies the In predicate on the "total_commission" field.
func TotalCommissionIn(vs ...int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldTotalCommission, vs...))
}

// TotalCommissionNotIn applies the NotIn predicate on the "total_commission" field.
func TotalCommissionNotIn(vs ...int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldTotalCommission, vs...))
}

// TotalCommissionGT applies the GT predicate on the "total_commission" field.
func TotalCommissionGT(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldTotalCommission, v))
}

// TotalCommissionGTE applies the GTE predicate on the "total_commission" field.
func TotalCommissionGTE(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldTotalCommission, v))
}

// TotalCommissionLT applies the LT predicate on the "total_commission" field.
func TotalCommissionLT(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldTotalCommission, v))
}

// TotalCommissionLTE applies the LTE predicate on the "total_commission" field.
func TotalCommissionLTE(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldTotalCommission, v))
}

// FacilityShareEQ applies the EQ predicate on the "facility_share" field.
func FacilityShareEQ(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldFacilityShare, v))
}

// FacilityShareNEQ applies the NEQ predicate on the "facility_share" field.
func FacilityShareNEQ(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldFacilityShare, v))
}

// FacilityShareIn applies the In predicate on the "facility_share" field.
func FacilityShareIn(vs ...int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldFacilityShare, vs...))
}

// FacilityShareNotIn applies the NotIn predicate on the "facility_share" field.
func FacilityShareNotIn(vs ...int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldFacilityShare, vs...))
}

// FacilityShareGT applies the GT predicate on the "facility_share" field.
func FacilityShareGT(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldFacilityShare, v))
}

// FacilityShareGTE applies the GTE predicate on the "facility_share" field.
func FacilityShareGTE(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldFacilityShare, v))
}

// FacilityShareLT applies the LT predicate on the "facility_share" field.
func FacilityShareLT(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldFacilityShare, v))
}

// FacilityShareLTE applies the LTE predicate on the "facility_share" field.
func FacilityShareLTE(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldFacilityShare, v))
}

// PlatformShareEQ applies the EQ predicate on the "platform_share" field.
func PlatformShareEQ(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPlatformShare, v))
}

// PlatformShareNEQ applies the NEQ predicate on the "platform_share" field.
func PlatformShareNEQ(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldPlatformShare, v))
}

// PlatformShareIn applies the In predicate on the "platform_share" field.
func PlatformShareIn(vs ...int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldPlatformShare, vs...))
}

// PlatformShareNotIn applies the NotIn predicate on the "platform_share" field.
func PlatformShareNotIn(vs ...int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldPlatformShare, vs...))
}

// PlatformShareGT applies the GT predicate on the "platform_share" field.
func PlatformShareGT(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldPlatformShare, v))
}

// PlatformShareGTE applies the GTE predicate on the "platform_share" field.
func PlatformShareGTE(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldPlatformShare, v))
}

// PlatformShareLT applies the LT predicate on the "platform_share" field.
func PlatformShareLT(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldPlatformShare, v))
}

// PlatformShareLTE applies the LTE predicate on the "platform_share" field.
func PlatformShareLTE(v int64) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldPlatformShare, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldContainsFold(FieldCurrency, v))
}

// SubmittedByEQ applies the EQ predicate on the "submitted_by" field.
func SubmittedByEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmittedByNEQ applies the NEQ predicate on the "submitted_by" field.
func SubmittedByNEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldSubmittedBy, v))
}

// SubmittedByIn applies the In predicate on the "submitted_by" field.
func SubmittedByIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldSubmittedBy, vs...))
}

// SubmittedByNotIn applies the NotIn predicate on the "submitted_by" field.
func SubmittedByNotIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldSubmittedBy, vs...))
}

// SubmittedByGT applies the GT predicate on the "submitted_by" field.
func SubmittedByGT(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldSubmittedBy, v))
}

// SubmittedByGTE applies the GTE predicate on the "submitted_by" field.
func SubmittedByGTE(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldSubmittedBy, v))
}

// SubmittedByLT applies the LT predicate on the "submitted_by" field.
func SubmittedByLT(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldSubmittedBy, v))
}

// SubmittedByLTE applies the LTE predicate on the "submitted_by" field.
func SubmittedByLTE(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldSubmittedBy, v))
}

// SubmittedByIsNil applies the IsNil predicate on the "submitted_by" field.
func SubmittedByIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldSubmittedBy))
}

// SubmittedByNotNil applies the NotNil predicate on the "submitted_by" field.
func SubmittedByNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldSubmittedBy))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldApprovedAt))
}

// PaidByEQ applies the EQ predicate on the "paid_by" field.
func PaidByEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPaidBy, v))
}

// PaidByNEQ applies the NEQ predicate on the "paid_by" field.
func PaidByNEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldPaidBy, v))
}

// PaidByIn applies the In predicate on the "paid_by" field.
func PaidByIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldPaidBy, vs...))
}

// PaidByNotIn applies the NotIn predicate on the "paid_by" field.
func PaidByNotIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldPaidBy, vs...))
}

// PaidByGT applies the GT predicate on the "paid_by" field.
func PaidByGT(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldPaidBy, v))
}

// PaidByGTE applies the GTE predicate on the "paid_by" field.
func PaidByGTE(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldPaidBy, v))
}

// PaidByLT applies the LT predicate on the "paid_by" field.
func PaidByLT(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldPaidBy, v))
}

// PaidByLTE applies the LTE predicate on the "paid_by" field.
func PaidByLTE(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldPaidBy, v))
}

// PaidByIsNil applies the IsNil predicate on the "paid_by" field.
func PaidByIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldPaidBy))
}

// PaidByNotNil applies the NotNil predicate on the "paid_by" field.
func PaidByNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldPaidBy))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldPaidAt))
}

// PaymentReferenceEQ applies the EQ predicate on the "payment_reference" field.
func PaymentReferenceEQ(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPaymentReference, v))
}

// PaymentReferenceNEQ applies the NEQ predicate on the "payment_reference" field.
func PaymentReferenceNEQ(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldPaymentReference, v))
}

// PaymentReferenceIn applies the In predicate on the "payment_reference" field.
func PaymentReferenceIn(vs ...string) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldPaymentReference, vs...))
}

// PaymentReferenceNotIn applies the NotIn predicate on the "payment_reference" field.
func PaymentReferenceNotIn(vs ...string) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldPaymentReference, vs...))
}

// PaymentReferenceGT applies the GT predicate on the "payment_reference" field.
func PaymentReferenceGT(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldPaymentReference, v))
}

// PaymentReferenceGTE applies the GTE predicate on the "payment_reference" field.
func PaymentReferenceGTE(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldPaymentReference, v))
}

// PaymentReferenceLT applies the LT predicate on the "payment_reference" field.
func PaymentReferenceLT(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldPaymentReference, v))
}

// PaymentReferenceLTE applies the LTE predicate on the "payment_reference" field.
func PaymentReferenceLTE(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldPaymentReference, v))
}

// PaymentReferenceContains applies the Contains predicate on the "payment_reference" field.
func PaymentReferenceContains(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldContains(FieldPaymentReference, v))
}

// PaymentReferenceHasPrefix applies the HasPrefix predicate on the "payment_reference" field.
func PaymentReferenceHasPrefix(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldHasPrefix(FieldPaymentReference, v))
}

// PaymentReferenceHasSuffix applies the HasSuffix predicate on the "payment_reference" field.
func PaymentReferenceHasSuffix(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldHasSuffix(FieldPaymentReference, v))
}

// PaymentReferenceIsNil applies the IsNil predicate on the "payment_reference" field.
func PaymentReferenceIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldPaymentReference))
}

// PaymentReferenceNotNil applies the NotNil predicate on the "payment_reference" field.
func PaymentReferenceNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldPaymentReference))
}

// PaymentReferenceEqualFold applies the EqualFold predicate on the "payment_reference" field.
func PaymentReferenceEqualFold(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEqualFold(FieldPaymentReference, v))
}

// PaymentReferenceContainsFold applies the ContainsFold predicate on the "payment_reference" field.
func PaymentReferenceContainsFold(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldContainsFold(FieldPaymentReference, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodIsNil applies the IsNil predicate on the "payment_method" field.
func PaymentMethodIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldPaymentMethod))
}

// PaymentMethodNotNil applies the NotNil predicate on the "payment_method" field.
func PaymentMethodNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldPaymentMethod))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// CancelledByEQ applies the EQ predicate on the "cancelled_by" field.
func CancelledByEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldCancelledBy, v))
}

// CancelledByNEQ applies the NEQ predicate on the "cancelled_by" field.
func CancelledByNEQ(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldCancelledBy, v))
}

// CancelledByIn applies the In predicate on the "cancelled_by" field.
func CancelledByIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldCancelledBy, vs...))
}

// CancelledByNotIn applies the NotIn predicate on the "cancelled_by" field.
func CancelledByNotIn(vs ...uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldCancelledBy, vs...))
}

// CancelledByGT applies the GT predicate on the "cancelled_by" field.
func CancelledByGT(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldCancelledBy, v))
}

// CancelledByGTE applies the GTE predicate on the "cancelled_by" field.
func CancelledByGTE(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldCancelledBy, v))
}

// CancelledByLT applies the LT predicate on the "cancelled_by" field.
func CancelledByLT(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldCancelledBy, v))
}

// CancelledByLTE applies the LTE predicate on the "cancelled_by" field.
func CancelledByLTE(v uuid.UUID) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldCancelledBy, v))
}

// CancelledByIsNil applies the IsNil predicate on the "cancelled_by" field.
func CancelledByIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldCancelledBy))
}

// CancelledByNotNil applies the NotNil predicate on the "cancelled_by" field.
func CancelledByNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldCancelledBy))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldCancelledAt))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Settlement {
	return predicate.Settlement(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Settlement {
	return predicate.Settlement(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Settlement {
	return predicate.Settlement(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Settlement {
	return predicate.Settlement(sql.FieldContainsFold(FieldNotes, v))
}

// HasFacility applies the HasEdge predicate on the "facility" edge.
func HasFacility() predicate.Settlement {
	return predicate.Settlement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FacilityTable, FacilityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacilityWith applies the HasEdge predicate on the "facility" edge with a given conditions (other predicates).
func HasFacilityWith(preds ...predicate.Facility) predicate.Settlement {
	return predicate.Settlement(func(s *sql.Selector) {
		step := newFacilityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Settlement {
	return predicate.Settlement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.SettlementItem) predicate.Settlement {
	return predicate.Settlement(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Settlement) predicate.Settlement {
	return predicate.Settlement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Settlement) predicate.Settlement {
	return predicate.Settlement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Settlement) predicate.Settlement {
	return predicate.Settlement(sql.NotPredicates(p))
}
