// Code generated by ent, DO NOT EDIT.

package settlement

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the settlement type in the database.
	Label = "settlement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFacilityID holds the string denoting the facility_id field in the database.
	FieldFacilityID = "facility_id"
	// FieldSettlementType holds the string denoting the settlement_type field in the database.
	FieldSettlementType = "settlement_type"
	// FieldPeriodFrom holds the string denoting the period_from field in the database.
	FieldPeriodFrom = "period_from"
	// FieldPeriodTo holds the string denoting the period_to field in the database.
	FieldPeriodTo = "period_to"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalCollections holds the string denoting the total_collections field in the database.
	FieldTotalCollections = "total_collections"
	// FieldTotalCommission holds the string denoting the total_commission field in the database.
	FieldTotalCommission = "total_commission"
	// FieldFacilityShare holds the string denoting the facility_share field in the database.
	FieldFacilityShare = "facility_share"
	// FieldPlatformShare holds the string denoting the platform_share field in the database.
	FieldPlatformShare = "platform_share"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldSubmittedBy holds the string denoting the submitted_by field in the database.
	FieldSubmittedBy = "submitted_by"
	// FieldApprovedBy holds the string denoting the approved_by field in the database.
	FieldApprovedBy = "approved_by"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// FieldPaidBy holds the string denoting the paid_by field in the database.
	FieldPaidBy = "paid_by"
	// FieldPaidAt holds the string denoting the paid_at field in the database.
	FieldPaidAt = "paid_at"
	// FieldPaymentReference holds the string denoting the payment_reference field in the database.
	FieldPaymentReference = "payment_reference"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldCancelledBy holds the string denoting the cancelled_by field in the database.
	FieldCancelledBy = "cancelled_by"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgeFacility holds the string denoting the facility edge name in mutations.
	EdgeFacility = "facility"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the settlement in the database.
	Table = "settlements"
	// FacilityTable is the table that holds the facility relation/edge.
	FacilityTable = "settlements"
	// FacilityInverseTable is the table name for the Facility entity.
	// It exists in this package in order to avoid circular dependency with the "facility" package.
	FacilityInverseTable = "facilities"
	// FacilityColumn is the table column denoting the facility relation/edge.
	FacilityColumn = "facility_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "settlement_items"
	// ItemsInverseTable is the table name for the SettlementItem entity.
	// It exists in this package in order to avoid circular dependency with the "settlementitem" package.
	ItemsInverseTable = "settlement_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "settlement_id"
)

// Columns holds all SQL columns for settlement fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFacilityID,
	FieldSettlementType,
	FieldPeriodFrom,
	FieldPeriodTo,
	FieldStatus,
	FieldTotalCollections,
	FieldTotalCommission,
	FieldFacilityShare,
	FieldPlatformShare,
	FieldCurrency,
	FieldSubmittedBy,
	FieldApprovedBy,
	FieldApprovedAt,
	FieldPaidBy,
	FieldPaidAt,
	FieldPaymentReference,
	FieldPaymentMethod,
	FieldCancelledBy,
	FieldCancelledAt,
	FieldNotes,
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
	// DefaultTotalCollections holds the default value on creation for the "total_collections" field.
	DefaultTotalCollections int64
	// DefaultTotalCommission holds the default value on creation for the "total_commission" field.
	DefaultTotalCommission int64
	// DefaultFacilityShare holds the default value on creation for the "facility_share" field.
	DefaultFacilityShare int64
	// DefaultPlatformShare holds the default value on creation for the "platform_share" field.
	DefaultPlatformShare int64
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// PaymentReferenceValidator is a validator for the "payment_reference" field. It is called by the builders before save.
	PaymentReferenceValidator func(string) error
	// PaymentMethodValidator is a validator for the "payment_method" field. It is called by the builders before save.
	PaymentMethodValidator func(string) error
	// NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	NotesValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// SettlementType defines the type for the "settlement_type" enum field.
type SettlementType string

// SettlementType values.
const (
	SettlementTypeOnline SettlementType = "online"
	SettlementTypeCash   SettlementType = "cash"
	SettlementTypeMixed  SettlementType = "mixed"
)

func (st SettlementType) String() string {
	return string(st)
}

// SettlementTypeValidator is a validator for the "settlement_type" field enum values. It is called by the builders before save.
func SettlementTypeValidator(st SettlementType) error {
	switch st {
	case SettlementTypeOnline, SettlementTypeCash, SettlementTypeMixed:
		return nil
	default:
		return fmt.Errorf("settlement: invalid enum value for settlement_type field: %q", st)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusPaid            Status = "paid"
	StatusCancelled       Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusPaid, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("settlement: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Settlement queries.
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

// BySettlementType orders the results by the settlement_type field.
func BySettlementType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSettlementType, opts...).ToFunc()
}

// ByPeriodFrom orders the results by the period_from field.
func ByPeriodFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodFrom, opts...).ToFunc()
}

// ByPeriodTo orders the results by the period_to field.
func ByPeriodTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodTo, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalCollections orders the results by the total_collections field.
func ByTotalCollections(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCollections, opts...).ToFunc()
}

// ByTotalCommission orders the results by the total_commission field.
func ByTotalCommission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCommission, opts...).ToFunc()
}

// ByFacilityShare orders the results by the facility_share field.
func ByFacilityShare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacilityShare, opts...).ToFunc()
}

// ByPlatformShare orders the results by the platform_share field.
func ByPlatformShare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformShare, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// BySubmittedBy orders the results by the submitted_by field.
func BySubmittedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedBy, opts...).ToFunc()
}

// ByApprovedBy orders the results by the approved_by field.
func ByApprovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedBy, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByPaidBy orders the results by the paid_by field.
func ByPaidBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidBy, opts...).ToFunc()
}

// ByPaidAt orders the results by the paid_at field.
func ByPaidAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidAt, opts...).ToFunc()
}

// ByPaymentReference orders the results by the payment_reference field.
func ByPaymentReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentReference, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByCancelledBy orders the results by the cancelled_by field.
func ByCancelledBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledBy, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByFacilityField orders the results by facility field.
func ByFacilityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacilityStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFacilityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FacilityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FacilityTable, FacilityColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
