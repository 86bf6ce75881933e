// Code generated by ent, DO NOT EDIT.

package commissionpolicy

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the commissionpolicy type in the database.
	Label = "commission_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFacilityID holds the string denoting the facility_id field in the database.
	FieldFacilityID = "facility_id"
	// FieldPlatformMdrRate holds the string denoting the platform_mdr_rate field in the database.
	FieldPlatformMdrRate = "platform_mdr_rate"
	// FieldGatewayMdrRate holds the string denoting the gateway_mdr_rate field in the database.
	FieldGatewayMdrRate = "gateway_mdr_rate"
	// FieldTaxOnCommission holds the string denoting the tax_on_commission field in the database.
	FieldTaxOnCommission = "tax_on_commission"
	// FieldTaxRate holds the string denoting the tax_rate field in the database.
	FieldTaxRate = "tax_rate"
	// FieldCashCommissionEnabled holds the string denoting the cash_commission_enabled field in the database.
	FieldCashCommissionEnabled = "cash_commission_enabled"
	// FieldCashCommissionType holds the string denoting the cash_commission_type field in the database.
	FieldCashCommissionType = "cash_commission_type"
	// FieldCashCommissionValue holds the string denoting the cash_commission_value field in the database.
	FieldCashCommissionValue = "cash_commission_value"
	// FieldRoundingMode holds the string denoting the rounding_mode field in the database.
	FieldRoundingMode = "rounding_mode"
	// EdgeFacility holds the string denoting the facility edge name in mutations.
	EdgeFacility = "facility"
	// Table holds the table name of the commissionpolicy in the database.
	Table = "commission_policies"
	// FacilityTable is the table that holds the facility relation/edge.
	FacilityTable = "commission_policies"
	// FacilityInverseTable is the table name for the Facility entity.
	// It exists in this package in order to avoid circular dependency with the "facility" package.
	FacilityInverseTable = "facilities"
	// FacilityColumn is the table column denoting the facility relation/edge.
	FacilityColumn = "facility_id"
)

// Columns holds all SQL columns for commissionpolicy fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFacilityID,
	FieldPlatformMdrRate,
	FieldGatewayMdrRate,
	FieldTaxOnCommission,
	FieldTaxRate,
	FieldCashCommissionEnabled,
	FieldCashCommissionType,
	FieldCashCommissionValue,
	FieldRoundingMode,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultPlatformMdrRate holds the default value on creation for the "platform_mdr_rate" field.
	DefaultPlatformMdrRate string
	// PlatformMdrRateValidator is a validator for the "platform_mdr_rate" field. It is called by the builders before save.
	PlatformMdrRateValidator func(string) error
	// DefaultGatewayMdrRate holds the default value on creation for the "gateway_mdr_rate" field.
	DefaultGatewayMdrRate string
	// GatewayMdrRateValidator is a validator for the "gateway_mdr_rate" field. It is called by the builders before save.
	GatewayMdrRateValidator func(string) error
	// DefaultTaxOnCommission holds the default value on creation for the "tax_on_commission" field.
	DefaultTaxOnCommission bool
	// DefaultTaxRate holds the default value on creation for the "tax_rate" field.
	DefaultTaxRate string
	// TaxRateValidator is a validator for the "tax_rate" field. It is called by the builders before save.
	TaxRateValidator func(string) error
	// DefaultCashCommissionEnabled holds the default value on creation for the "cash_commission_enabled" field.
	DefaultCashCommissionEnabled bool
	// DefaultCashCommissionValue holds the default value on creation for the "cash_commission_value" field.
	DefaultCashCommissionValue string
	// CashCommissionValueValidator is a validator for the "cash_commission_value" field. It is called by the builders before save.
	CashCommissionValueValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// CashCommissionType defines the type for the "cash_commission_type" enum field.
type CashCommissionType string

// CashCommissionTypePercentage is the default value of the CashCommissionType enum.
const DefaultCashCommissionType = CashCommissionTypePercentage

// CashCommissionType values.
const (
	CashCommissionTypePercentage CashCommissionType = "percentage"
	CashCommissionTypeFixed      CashCommissionType = "fixed"
)

func (cct CashCommissionType) String() string {
	return string(cct)
}

// CashCommissionTypeValidator is a validator for the "cash_commission_type" field enum values. It is called by the builders before save.
func CashCommissionTypeValidator(cct CashCommissionType) error {
	switch cct {
	case CashCommissionTypePercentage, CashCommissionTypeFixed:
		return nil
	default:
		return fmt.Errorf("commissionpolicy: invalid enum value for cash_commission_type field: %q", cct)
	}
}

// RoundingMode defines the type for the "rounding_mode" enum field.
type RoundingMode string

// RoundingModeNearest is the default value of the RoundingMode enum.
const DefaultRoundingMode = RoundingModeNearest

// RoundingMode values.
const (
	RoundingModeNearest RoundingMode = "nearest"
	RoundingModeUp      RoundingMode = "up"
	RoundingModeDown    RoundingMode = "down"
)

func (rm RoundingMode) String() string {
	return string(rm)
}

// RoundingModeValidator is a validator for the "rounding_mode" field enum values. It is called by the builders before save.
func RoundingModeValidator(rm RoundingMode) error {
	switch rm {
	case RoundingModeNearest, RoundingModeUp, RoundingModeDown:
		return nil
	default:
		return fmt.Errorf("commissionpolicy: invalid enum value for rounding_mode field: %q", rm)
	}
}

// OrderOption defines the ordering options for the CommissionPolicy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFacilityID orders the results by the facility_id field.
func ByFacilityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacilityID, opts...).ToFunc()
}

// ByPlatformMdrRate orders the results by the platform_mdr_rate field.
func ByPlatformMdrRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformMdrRate, opts...).ToFunc()
}

// ByGatewayMdrRate orders the results by the gateway_mdr_rate field.
func ByGatewayMdrRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGatewayMdrRate, opts...).ToFunc()
}

// ByTaxOnCommission orders the results by the tax_on_commission field.
func ByTaxOnCommission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxOnCommission, opts...).ToFunc()
}

// ByTaxRate orders the results by the tax_rate field.
func ByTaxRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxRate, opts...).ToFunc()
}

// ByCashCommissionEnabled orders the results by the cash_commission_enabled field.
func ByCashCommissionEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCashCommissionEnabled, opts...).ToFunc()
}

// ByCashCommissionType orders the results by the cash_commission_type field.
func ByCashCommissionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCashCommissionType, opts...).ToFunc()
}

// ByCashCommissionValue orders the results by the cash_commission_value field.
func ByCashCommissionValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCashCommissionValue, opts...).ToFunc()
}

// ByRoundingMode orders the results by the rounding_mode field.
func ByRoundingMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundingMode, opts...).ToFunc()
}

// ByFacilityField orders the results by facility field.
func ByFacilityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacilityStep(), sql.OrderByField(field, opts...))
	}
}
func newFacilityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FacilityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, FacilityTable, FacilityColumn),
	)
}
