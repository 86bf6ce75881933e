// Code generated by ent, DO NOT EDIT.

package commissionentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// FacilityID applies equality check predicate on the "facility_id" field. It's identical to FacilityIDEQ.
func FacilityID(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldFacilityID, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldTransactionID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSeq, v))
}

// GrossAmount applies equality check predicate on the "gross_amount" field. It's identical to GrossAmountEQ.
func GrossAmount(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldGrossAmount, v))
}

// CommissionAmount applies equality check predicate on the "commission_amount" field. It's identical to CommissionAmountEQ.
func CommissionAmount(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldCommissionAmount, v))
}

// FacilityShare applies equality check predicate on the "facility_share" field. It's identical to FacilityShareEQ.
func FacilityShare(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldFacilityShare, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldCurrency, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldOccurredAt, v))
}

// SnapshotRate applies equality check predicate on the "snapshot_rate" field. It's identical to SnapshotRateEQ.
func SnapshotRate(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSnapshotRate, v))
}

// SnapshotTaxRate applies equality check predicate on the "snapshot_tax_rate" field. It's identical to SnapshotTaxRateEQ.
func SnapshotTaxRate(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSnapshotTaxRate, v))
}

// SettlementID applies equality check predicate on the "settlement_id" field. It's identical to SettlementIDEQ.
func SettlementID(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSettlementID, v))
}

// ReversesEntryID applies equality check predicate on the "reverses_entry_id" field. It's identical to ReversesEntryIDEQ.
func ReversesEntryID(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldReversesEntryID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// FacilityIDEQ applies the EQ predicate on the "facility_id" field.
func FacilityIDEQ(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldFacilityID, v))
}

// FacilityIDNEQ applies the NEQ predicate on the "facility_id" field.
func FacilityIDNEQ(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldFacilityID, v))
}

// FacilityIDIn applies the In predicate on the "facility_id" field.
func FacilityIDIn(vs ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldFacilityID, vs...))
}

// FacilityIDNotIn applies the NotIn predicate on the "facility_id" field.
func FacilityIDNotIn(vs ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldFacilityID, vs...))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldTransactionID, vs...))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldSeq, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v Channel) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v Channel) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...Channel) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...Channel) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldChannel, vs...))
}

// GrossAmountEQ applies the EQ predicate on the "gross_amount" field.
func GrossAmountEQ(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldGrossAmount, v))
}

// GrossAmountNEQ applies the NEQ predicate on the "gross_amount" field.
func GrossAmountNEQ(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldGrossAmount, v))
}

// GrossAmountIn applies the In predicate on the "gross_amount" field.
func GrossAmountIn(vs ...int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldGrossAmount, vs...))
}

// GrossAmountNotIn applies the NotIn predicate on the "gross_amount" field.
func GrossAmountNotIn(vs ...int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldGrossAmount, vs...))
}

// GrossAmountGT applies the GT predicate on the "gross_amount" field.
func GrossAmountGT(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldGrossAmount, v))
}

// GrossAmountGTE applies the GTE predicate on the "gross_amount" field.
func GrossAmountGTE(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldGrossAmount, v))
}

// GrossAmountLT applies the LT predicate on the "gross_amount" field.
func GrossAmountLT(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldGrossAmount, v))
}

// GrossAmountLTE applies the LTE predicate on the "gross_amount" field.
func GrossAmountLTE(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldGrossAmount, v))
}

// CommissionAmountEQ applies the EQ predicate on the "commission_amount" field.
func CommissionAmountEQ(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldCommissionAmount, v))
}

// CommissionAmountNEQ applies the NEQ predicate on the "commission_amount" field.
func CommissionAmountNEQ(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldCommissionAmount, v))
}

// CommissionAmountIn applies the In predicate on the "commission_amount" field.
func CommissionAmountIn(vs ...int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldCommissionAmount, vs...))
}

// CommissionAmountNotIn applies the NotIn predicate on the "commission_amount" field.
func CommissionAmountNotIn(vs ...int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldCommissionAmount, vs...))
}

// CommissionAmountGT applies the GT predicate on the "commission_amount" field.
func CommissionAmountGT(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldCommissionAmount, v))
}

// CommissionAmountGTE applies the GTE predicate on the "commission_amount" field.
func CommissionAmountGTE(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldCommissionAmount, v))
}

// CommissionAmountLT applies the LT predicate on the "commission_amount" field.
func CommissionAmountLT(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldCommissionAmount, v))
}

// CommissionAmountLTE applies the LTE predicate on the "commission_amount" field.
func CommissionAmountLTE(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldCommissionAmount, v))
}

// FacilityShareEQ applies the EQ predicate on the "facility_share" field.
func FacilityShareEQ(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldFacilityShare, v))
}

// FacilityShareNEQ applies the NEQ predicate on the "facility_share" field.
func FacilityShareNEQ(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldFacilityShare, v))
}

// FacilityShareIn applies the In predicate on the "facility_share" field.
func FacilityShareIn(vs ...int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldFacilityShare, vs...))
}

// FacilityShareNotIn applies the NotIn predicate on the "facility_share" field.
func FacilityShareNotIn(vs ...int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldFacilityShare, vs...))
}

// FacilityShareGT applies the GT predicate on the "facility_share" field.
func FacilityShareGT(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldFacilityShare, v))
}

// FacilityShareGTE applies the GTE predicate on the "facility_share" field.
func FacilityShareGTE(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldFacilityShare, v))
}

// FacilityShareLT applies the LT predicate on the "facility_share" field.
func FacilityShareLT(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldFacilityShare, v))
}

// FacilityShareLTE applies the LTE predicate on the "facility_share" field.
func FacilityShareLTE(v int64) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldFacilityShare, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldContainsFold(FieldCurrency, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldOccurredAt, v))
}

// SnapshotRateEQ applies the EQ predicate on the "snapshot_rate" field.
func SnapshotRateEQ(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSnapshotRate, v))
}

// SnapshotRateNEQ applies the NEQ predicate on the "snapshot_rate" field.
func SnapshotRateNEQ(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldSnapshotRate, v))
}

// SnapshotRateIn applies the In predicate on the "snapshot_rate" field.
func SnapshotRateIn(vs ...string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldSnapshotRate, vs...))
}

// SnapshotRateNotIn applies the NotIn predicate on the "snapshot_rate" field.
func SnapshotRateNotIn(vs ...string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldSnapshotRate, vs...))
}

// SnapshotRateGT applies the GT predicate on the "snapshot_rate" field.
func SnapshotRateGT(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldSnapshotRate, v))
}

// SnapshotRateGTE applies the GTE predicate on the "snapshot_rate" field.
func SnapshotRateGTE(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldSnapshotRate, v))
}

// SnapshotRateLT applies the LT predicate on the "snapshot_rate" field.
func SnapshotRateLT(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldSnapshotRate, v))
}

// SnapshotRateLTE applies the LTE predicate on the "snapshot_rate" field.
func SnapshotRateLTE(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldSnapshotRate, v))
}

// SnapshotRateContains applies the Contains predicate on the "snapshot_rate" field.
func SnapshotRateContains(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldContains(FieldSnapshotRate, v))
}

// SnapshotRateHasPrefix applies the HasPrefix predicate on the "snapshot_rate" field.
func SnapshotRateHasPrefix(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldHasPrefix(FieldSnapshotRate, v))
}

// SnapshotRateHasSuffix applies the HasSuffix predicate on the "snapshot_rate" field.
func SnapshotRateHasSuffix(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldHasSuffix(FieldSnapshotRate, v))
}

// SnapshotRateEqualFold applies the EqualFold predicate on the "snapshot_rate" field.
func SnapshotRateEqualFold(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEqualFold(FieldSnapshotRate, v))
}

// SnapshotRateContainsFold applies the ContainsFold predicate on the "snapshot_rate" field.
func SnapshotRateContainsFold(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldContainsFold(FieldSnapshotRate, v))
}

// SnapshotTaxRateEQ applies the EQ predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateEQ(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateNEQ applies the NEQ predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateNEQ(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateIn applies the In predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateIn(vs ...string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldSnapshotTaxRate, vs...))
}

// SnapshotTaxRateNotIn applies the NotIn predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateNotIn(vs ...string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldSnapshotTaxRate, vs...))
}

// SnapshotTaxRateGT applies the GT predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateGT(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateGTE applies the GTE predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateGTE(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateLT applies the LT predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateLT(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateLTE applies the LTE predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateLTE(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateContains applies the Contains predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateContains(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldContains(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateHasPrefix applies the HasPrefix predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateHasPrefix(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldHasPrefix(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateHasSuffix applies the HasSuffix predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateHasSuffix(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldHasSuffix(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateEqualFold applies the EqualFold predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateEqualFold(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEqualFold(FieldSnapshotTaxRate, v))
}

// SnapshotTaxRateContainsFold applies the ContainsFold predicate on the "snapshot_tax_rate" field.
func SnapshotTaxRateContainsFold(v string) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldContainsFold(FieldSnapshotTaxRate, v))
}

// SnapshotCashTypeEQ applies the EQ predicate on the "snapshot_cash_type" field.
func SnapshotCashTypeEQ(v SnapshotCashType) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSnapshotCashType, v))
}

// SnapshotCashTypeNEQ applies the NEQ predicate on the "snapshot_cash_type" field.
func SnapshotCashTypeNEQ(v SnapshotCashType) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldSnapshotCashType, v))
}

// SnapshotCashTypeIn applies the In predicate on the "snapshot_cash_type" field.
func SnapshotCashTypeIn(vs ...SnapshotCashType) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldSnapshotCashType, vs...))
}

// SnapshotCashTypeNotIn applies the NotIn predicate on the "snapshot_cash_type" field.
func SnapshotCashTypeNotIn(vs ...SnapshotCashType) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldSnapshotCashType, vs...))
}

// SnapshotRoundingEQ applies the EQ predicate on the "snapshot_rounding" field.
func SnapshotRoundingEQ(v SnapshotRounding) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSnapshotRounding, v))
}

// SnapshotRoundingNEQ applies the NEQ predicate on the "snapshot_rounding" field.
func SnapshotRoundingNEQ(v SnapshotRounding) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldSnapshotRounding, v))
}

// SnapshotRoundingIn applies the In predicate on the "snapshot_rounding" field.
func SnapshotRoundingIn(vs ...SnapshotRounding) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldSnapshotRounding, vs...))
}

// SnapshotRoundingNotIn applies the NotIn predicate on the "snapshot_rounding" field.
func SnapshotRoundingNotIn(vs ...SnapshotRounding) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldSnapshotRounding, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// SettlementIDEQ applies the EQ predicate on the "settlement_id" field.
func SettlementIDEQ(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldSettlementID, v))
}

// SettlementIDNEQ applies the NEQ predicate on the "settlement_id" field.
func SettlementIDNEQ(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldSettlementID, v))
}

// SettlementIDIn applies the In predicate on the "settlement_id" field.
func SettlementIDIn(vs ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldSettlementID, vs...))
}

// SettlementIDNotIn applies the NotIn predicate on the "settlement_id" field.
func SettlementIDNotIn(vs ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldSettlementID, vs...))
}

// SettlementIDGT applies the GT predicate on the "settlement_id" field.
func SettlementIDGT(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldSettlementID, v))
}

// SettlementIDGTE applies the GTE predicate on the "settlement_id" field.
func SettlementIDGTE(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldSettlementID, v))
}

// SettlementIDLT applies the LT predicate on the "settlement_id" field.
func SettlementIDLT(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldSettlementID, v))
}

// SettlementIDLTE applies the LTE predicate on the "settlement_id" field.
func SettlementIDLTE(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldSettlementID, v))
}

// SettlementIDIsNil applies the IsNil predicate on the "settlement_id" field.
func SettlementIDIsNil() predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIsNull(FieldSettlementID))
}

// SettlementIDNotNil applies the NotNil predicate on the "settlement_id" field.
func SettlementIDNotNil() predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotNull(FieldSettlementID))
}

// ReversesEntryIDEQ applies the EQ predicate on the "reverses_entry_id" field.
func ReversesEntryIDEQ(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldEQ(FieldReversesEntryID, v))
}

// ReversesEntryIDNEQ applies the NEQ predicate on the "reverses_entry_id" field.
func ReversesEntryIDNEQ(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNEQ(FieldReversesEntryID, v))
}

// ReversesEntryIDIn applies the In predicate on the "reverses_entry_id" field.
func ReversesEntryIDIn(vs ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIn(FieldReversesEntryID, vs...))
}

// ReversesEntryIDNotIn applies the NotIn predicate on the "reverses_entry_id" field.
func ReversesEntryIDNotIn(vs ...uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotIn(FieldReversesEntryID, vs...))
}

// ReversesEntryIDGT applies the GT predicate on the "reverses_entry_id" field.
func ReversesEntryIDGT(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGT(FieldReversesEntryID, v))
}

// ReversesEntryIDGTE applies the GTE predicate on the "reverses_entry_id" field.
func ReversesEntryIDGTE(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldGTE(FieldReversesEntryID, v))
}

// ReversesEntryIDLT applies the LT predicate on the "reverses_entry_id" field.
func ReversesEntryIDLT(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLT(FieldReversesEntryID, v))
}

// ReversesEntryIDLTE applies the LTE predicate on the "reverses_entry_id" field.
func ReversesEntryIDLTE(v uuid.UUID) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldLTE(FieldReversesEntryID, v))
}

// ReversesEntryIDIsNil applies the IsNil predicate on the "reverses_entry_id" field.
func ReversesEntryIDIsNil() predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldIsNull(FieldReversesEntryID))
}

// ReversesEntryIDNotNil applies the NotNil predicate on the "reverses_entry_id" field.
func ReversesEntryIDNotNil() predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.FieldNotNull(FieldReversesEntryID))
}

// HasFacility applies the HasEdge predicate on the "facility" edge.
func HasFacility() predicate.CommissionEntry {
	return predicate.CommissionEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FacilityTable, FacilityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacilityWith applies the HasEdge predicate on the "facility" edge with a given conditions (other predicates).
func HasFacilityWith(preds ...predicate.Facility) predicate.CommissionEntry {
	return predicate.CommissionEntry(func(s *sql.Selector) {
		step := newFacilityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTransaction applies the HasEdge predicate on the "transaction" edge.
func HasTransaction() predicate.CommissionEntry {
	return predicate.CommissionEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TransactionTable, TransactionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionWith applies the HasEdge predicate on the "transaction" edge with a given conditions (other predicates).
func HasTransactionWith(preds ...predicate.Transaction) predicate.CommissionEntry {
	return predicate.CommissionEntry(func(s *sql.Selector) {
		step := newTransactionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.CommissionEntry {
	return predicate.CommissionEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.SettlementItem) predicate.CommissionEntry {
	return predicate.CommissionEntry(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommissionEntry) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommissionEntry) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommissionEntry) predicate.CommissionEntry {
	return predicate.CommissionEntry(sql.NotPredicates(p))
}
