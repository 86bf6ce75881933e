// Code generated by ent, DO NOT EDIT.

package commissionpolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// FacilityID applies equality check predicate on the "facility_id" field. It's identical to FacilityIDEQ.
func FacilityID(v uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldFacilityID, v))
}

// PlatformMdrRate applies equality check predicate on the "platform_mdr_rate" field. It's identical to PlatformMdrRateEQ.
func PlatformMdrRate(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldPlatformMdrRate, v))
}

// GatewayMdrRate applies equality check predicate on the "gateway_mdr_rate" field. It's identical to GatewayMdrRateEQ.
func GatewayMdrRate(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldGatewayMdrRate, v))
}

// TaxOnCommission applies equality check predicate on the "tax_on_commission" field. It's identical to TaxOnCommissionEQ.
func TaxOnCommission(v bool) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldTaxOnCommission, v))
}

// TaxRate applies equality check predicate on the "tax_rate" field. It's identical to TaxRateEQ.
func TaxRate(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldTaxRate, v))
}

// CashCommissionEnabled applies equality check predicate on the "cash_commission_enabled" field. It's identical to CashCommissionEnabledEQ.
func CashCommissionEnabled(v bool) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldCashCommissionEnabled, v))
}

// CashCommissionValue applies equality check predicate on the "cash_commission_value" field. It's identical to CashCommissionValueEQ.
func CashCommissionValue(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldCashCommissionValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// FacilityIDEQ applies the EQ predicate on the "facility_id" field.
func FacilityIDEQ(v uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldFacilityID, v))
}

// FacilityIDNEQ applies the NEQ predicate on the "facility_id" field.
func FacilityIDNEQ(v uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldFacilityID, v))
}

// FacilityIDIn applies the In predicate on the "facility_id" field.
func FacilityIDIn(vs ...uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldFacilityID, vs...))
}

// FacilityIDNotIn applies the NotIn predicate on the "facility_id" field.
func FacilityIDNotIn(vs ...uuid.UUID) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldFacilityID, vs...))
}

// PlatformMdrRateEQ applies the EQ predicate on the "platform_mdr_rate" field.
func PlatformMdrRateEQ(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldPlatformMdrRate, v))
}

// PlatformMdrRateNEQ applies the NEQ predicate on the "platform_mdr_rate" field.
func PlatformMdrRateNEQ(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldPlatformMdrRate, v))
}

// PlatformMdrRateIn applies the In predicate on the "platform_mdr_rate" field.
func PlatformMdrRateIn(vs ...string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldPlatformMdrRate, vs...))
}

// PlatformMdrRateNotIn applies the NotIn predicate on the "platform_mdr_rate" field.
func PlatformMdrRateNotIn(vs ...string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldPlatformMdrRate, vs...))
}

// PlatformMdrRateGT applies the GT predicate on the "platform_mdr_rate" field.
func PlatformMdrRateGT(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGT(FieldPlatformMdrRate, v))
}

// PlatformMdrRateGTE applies the GTE predicate on the "platform_mdr_rate" field.
func PlatformMdrRateGTE(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGTE(FieldPlatformMdrRate, v))
}

// PlatformMdrRateLT applies the LT predicate on the "platform_mdr_rate" field.
func PlatformMdrRateLT(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLT(FieldPlatformMdrRate, v))
}

// PlatformMdrRateLTE applies the LTE predicate on the "platform_mdr_rate" field.
func PlatformMdrRateLTE(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLTE(FieldPlatformMdrRate, v))
}

// PlatformMdrRateContains applies the Contains predicate on the "platform_mdr_rate" field.
func PlatformMdrRateContains(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldContains(FieldPlatformMdrRate, v))
}

// PlatformMdrRateHasPrefix applies the HasPrefix predicate on the "platform_mdr_rate" field.
func PlatformMdrRateHasPrefix(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldHasPrefix(FieldPlatformMdrRate, v))
}

// PlatformMdrRateHasSuffix applies the HasSuffix predicate on the "platform_mdr_rate" field.
func PlatformMdrRateHasSuffix(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldHasSuffix(FieldPlatformMdrRate, v))
}

// PlatformMdrRateEqualFold applies the EqualFold predicate on the "platform_mdr_rate" field.
func PlatformMdrRateEqualFold(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEqualFold(FieldPlatformMdrRate, v))
}

// PlatformMdrRateContainsFold applies the ContainsFold predicate on the "platform_mdr_rate" field.
func PlatformMdrRateContainsFold(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldContainsFold(FieldPlatformMdrRate, v))
}

// GatewayMdrRateEQ applies the EQ predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateEQ(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldGatewayMdrRate, v))
}

// GatewayMdrRateNEQ applies the NEQ predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateNEQ(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldGatewayMdrRate, v))
}

// GatewayMdrRateIn applies the In predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateIn(vs ...string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldGatewayMdrRate, vs...))
}

// GatewayMdrRateNotIn applies the NotIn predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateNotIn(vs ...string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldGatewayMdrRate, vs...))
}

// GatewayMdrRateGT applies the GT predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateGT(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGT(FieldGatewayMdrRate, v))
}

// GatewayMdrRateGTE applies the GTE predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateGTE(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGTE(FieldGatewayMdrRate, v))
}

// GatewayMdrRateLT applies the LT predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateLT(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLT(FieldGatewayMdrRate, v))
}

// GatewayMdrRateLTE applies the LTE predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateLTE(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLTE(FieldGatewayMdrRate, v))
}

// GatewayMdrRateContains applies the Contains predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateContains(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldContains(FieldGatewayMdrRate, v))
}

// GatewayMdrRateHasPrefix applies the HasPrefix predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateHasPrefix(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldHasPrefix(FieldGatewayMdrRate, v))
}

// GatewayMdrRateHasSuffix applies the HasSuffix predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateHasSuffix(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldHasSuffix(FieldGatewayMdrRate, v))
}

// GatewayMdrRateEqualFold applies the EqualFold predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateEqualFold(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEqualFold(FieldGatewayMdrRate, v))
}

// GatewayMdrRateContainsFold applies the ContainsFold predicate on the "gateway_mdr_rate" field.
func GatewayMdrRateContainsFold(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldContainsFold(FieldGatewayMdrRate, v))
}

// TaxOnCommissionEQ applies the EQ predicate on the "tax_on_commission" field.
func TaxOnCommissionEQ(v bool) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldTaxOnCommission, v))
}

// TaxOnCommissionNEQ applies the NEQ predicate on the "tax_on_commission" field.
func TaxOnCommissionNEQ(v bool) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldTaxOnCommission, v))
}

// TaxRateEQ applies the EQ predicate on the "tax_rate" field.
func TaxRateEQ(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldTaxRate, v))
}

// TaxRateNEQ applies the NEQ predicate on the "tax_rate" field.
func TaxRateNEQ(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldTaxRate, v))
}

// TaxRateIn applies the In predicate on the "tax_rate" field.
func TaxRateIn(vs ...string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldTaxRate, vs...))
}

// TaxRateNotIn applies the NotIn predicate on the "tax_rate" field.
func TaxRateNotIn(vs ...string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldTaxRate, vs...))
}

// TaxRateGT applies the GT predicate on the "tax_rate" field.
func TaxRateGT(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGT(FieldTaxRate, v))
}

// TaxRateGTE applies the GTE predicate on the "tax_rate" field.
func TaxRateGTE(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGTE(FieldTaxRate, v))
}

// TaxRateLT applies the LT predicate on the "tax_rate" field.
func TaxRateLT(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLT(FieldTaxRate, v))
}

// TaxRateLTE applies the LTE predicate on the "tax_rate" field.
func TaxRateLTE(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLTE(FieldTaxRate, v))
}

// TaxRateContains applies the Contains predicate on the "tax_rate" field.
func TaxRateContains(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldContains(FieldTaxRate, v))
}

// TaxRateHasPrefix applies the HasPrefix predicate on the "tax_rate" field.
func TaxRateHasPrefix(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldHasPrefix(FieldTaxRate, v))
}

// TaxRateHasSuffix applies the HasSuffix predicate on the "tax_rate" field.
func TaxRateHasSuffix(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldHasSuffix(FieldTaxRate, v))
}

// TaxRateEqualFold applies the EqualFold predicate on the "tax_rate" field.
func TaxRateEqualFold(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEqualFold(FieldTaxRate, v))
}

// TaxRateContainsFold applies the ContainsFold predicate on the "tax_rate" field.
func TaxRateContainsFold(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldContainsFold(FieldTaxRate, v))
}

// CashCommissionEnabledEQ applies the EQ predicate on the "cash_commission_enabled" field.
func CashCommissionEnabledEQ(v bool) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldCashCommissionEnabled, v))
}

// CashCommissionEnabledNEQ applies the NEQ predicate on the "cash_commission_enabled" field.
func CashCommissionEnabledNEQ(v bool) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldCashCommissionEnabled, v))
}

// CashCommissionTypeEQ applies the EQ predicate on the "cash_commission_type" field.
func CashCommissionTypeEQ(v CashCommissionType) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldCashCommissionType, v))
}

// CashCommissionTypeNEQ applies the NEQ predicate on the "cash_commission_type" field.
func CashCommissionTypeNEQ(v CashCommissionType) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldCashCommissionType, v))
}

// CashCommissionTypeIn applies the In predicate on the "cash_commission_type" field.
func CashCommissionTypeIn(vs ...CashCommissionType) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldCashCommissionType, vs...))
}

// CashCommissionTypeNotIn applies the NotIn predicate on the "cash_commission_type" field.
func CashCommissionTypeNotIn(vs ...CashCommissionType) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldCashCommissionType, vs...))
}

// CashCommissionValueEQ applies the EQ predicate on the "cash_commission_value" field.
func CashCommissionValueEQ(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldCashCommissionValue, v))
}

// CashCommissionValueNEQ applies the NEQ predicate on the "cash_commission_value" field.
func CashCommissionValueNEQ(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldCashCommissionValue, v))
}

// CashCommissionValueIn applies the In predicate on the "cash_commission_value" field.
func CashCommissionValueIn(vs ...string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldCashCommissionValue, vs...))
}

// CashCommissionValueNotIn applies the NotIn predicate on the "cash_commission_value" field.
func CashCommissionValueNotIn(vs ...string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldCashCommissionValue, vs...))
}

// CashCommissionValueGT applies the GT predicate on the "cash_commission_value" field.
func CashCommissionValueGT(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGT(FieldCashCommissionValue, v))
}

// CashCommissionValueGTE applies the GTE predicate on the "cash_commission_value" field.
func CashCommissionValueGTE(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldGTE(FieldCashCommissionValue, v))
}

// CashCommissionValueLT applies the LT predicate on the "cash_commission_value" field.
func CashCommissionValueLT(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLT(FieldCashCommissionValue, v))
}

// CashCommissionValueLTE applies the LTE predicate on the "cash_commission_value" field.
func CashCommissionValueLTE(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldLTE(FieldCashCommissionValue, v))
}

// CashCommissionValueContains applies the Contains predicate on the "cash_commission_value" field.
func CashCommissionValueContains(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldContains(FieldCashCommissionValue, v))
}

// CashCommissionValueHasPrefix applies the HasPrefix predicate on the "cash_commission_value" field.
func CashCommissionValueHasPrefix(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldHasPrefix(FieldCashCommissionValue, v))
}

// CashCommissionValueHasSuffix applies the HasSuffix predicate on the "cash_commission_value" field.
func CashCommissionValueHasSuffix(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldHasSuffix(FieldCashCommissionValue, v))
}

// CashCommissionValueEqualFold applies the EqualFold predicate on the "cash_commission_value" field.
func CashCommissionValueEqualFold(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEqualFold(FieldCashCommissionValue, v))
}

// CashCommissionValueContainsFold applies the ContainsFold predicate on the "cash_commission_value" field.
func CashCommissionValueContainsFold(v string) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldContainsFold(FieldCashCommissionValue, v))
}

// RoundingModeEQ applies the EQ predicate on the "rounding_mode" field.
func RoundingModeEQ(v RoundingMode) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldEQ(FieldRoundingMode, v))
}

// RoundingModeNEQ applies the NEQ predicate on the "rounding_mode" field.
func RoundingModeNEQ(v RoundingMode) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNEQ(FieldRoundingMode, v))
}

// RoundingModeIn applies the In predicate on the "rounding_mode" field.
func RoundingModeIn(vs ...RoundingMode) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldIn(FieldRoundingMode, vs...))
}

// RoundingModeNotIn applies the NotIn predicate on the "rounding_mode" field.
func RoundingModeNotIn(vs ...RoundingMode) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.FieldNotIn(FieldRoundingMode, vs...))
}

// HasFacility applies the HasEdge predicate on the "facility" edge.
func HasFacility() predicate.CommissionPolicy {
	return predicate.CommissionPolicy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, FacilityTable, FacilityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacilityWith applies the HasEdge predicate on the "facility" edge with a given conditions (other predicates).
func HasFacilityWith(preds ...predicate.Facility) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(func(s *sql.Selector) {
		step := newFacilityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommissionPolicy) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommissionPolicy) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommissionPolicy) predicate.CommissionPolicy {
	return predicate.CommissionPolicy(sql.NotPredicates(p))
}
