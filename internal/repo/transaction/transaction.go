// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the transaction type in the database.
	Label = "transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldFacilityID holds the string denoting the facility_id field in the database.
	FieldFacilityID = "facility_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldGrossAmount holds the string denoting the gross_amount field in the database.
	FieldGrossAmount = "gross_amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldBillReference holds the string denoting the bill_reference field in the database.
	FieldBillReference = "bill_reference"
	// FieldCollectedBy holds the string denoting the collected_by field in the database.
	FieldCollectedBy = "collected_by"
	// FieldGatewayTxnID holds the string denoting the gateway_txn_id field in the database.
	FieldGatewayTxnID = "gateway_txn_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// EdgeFacility holds the string denoting the facility edge name in mutations.
	EdgeFacility = "facility"
	// EdgeEntries holds the string denoting the entries edge name in mutations.
	EdgeEntries = "entries"
	// Table holds the table name of the transaction in the database.
	Table = "transactions"
	// FacilityTable is the table that holds the facility relation/edge.
	FacilityTable = "transactions"
	// FacilityInverseTable is the table name for the Facility entity.
	// It exists in this package in order to avoid circular dependency with the "facility" package.
	FacilityInverseTable = "facilities"
	// FacilityColumn is the table column denoting the facility relation/edge.
	FacilityColumn = "facility_id"
	// EntriesTable is the table that holds the entries relation/edge.
	EntriesTable = "commission_entries"
	// EntriesInverseTable is the table name for the CommissionEntry entity.
	// It exists in this package in order to avoid circular dependency with the "commissionentry" package.
	EntriesInverseTable = "commission_entries"
	// EntriesColumn is the table column denoting the entries relation/edge.
	EntriesColumn = "transaction_id"
)

// Columns holds all SQL columns for transaction fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldFacilityID,
	FieldChannel,
	FieldGrossAmount,
	FieldCurrency,
	FieldOccurredAt,
	FieldBillReference,
	FieldCollectedBy,
	FieldGatewayTxnID,
	FieldStatus,
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
	// GrossAmountValidator is a validator for the "gross_amount" field. It is called by the builders before save.
	GrossAmountValidator func(int64) error
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// BillReferenceValidator is a validator for the "bill_reference" field. It is called by the builders before save.
	BillReferenceValidator func(string) error
	// GatewayTxnIDValidator is a validator for the "gateway_txn_id" field. It is called by the builders before save.
	GatewayTxnIDValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Channel defines the type for the "channel" enum field.
type Channel string

// Channel values.
const (
	ChannelOnline Channel = "online"
	ChannelCash   Channel = "cash"
)

func (c Channel) String() string {
	return string(c)
}

// ChannelValidator is a validator for the "channel" field enum values. It is called by the builders before save.
func ChannelValidator(c Channel) error {
	switch c {
	case ChannelOnline, ChannelCash:
		return nil
	default:
		return fmt.Errorf("transaction: invalid enum value for channel field: %q", c)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusCaptured is the default value of the Status enum.
const DefaultStatus = StatusCaptured

// Status values.
const (
	StatusCaptured Status = "captured"
	StatusReversed Status = "reversed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCaptured, StatusReversed:
		return nil
	default:
		return fmt.Errorf("transaction: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Transaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFacilityID orders the results by the facility_id field.
func ByFacilityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacilityID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByGrossAmount orders the results by the gross_amount field.
func ByGrossAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByBillReference orders the results by the bill_reference field.
func ByBillReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillReference, opts...).ToFunc()
}

// ByCollectedBy orders the results by the collected_by field.
func ByCollectedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectedBy, opts...).ToFunc()
}

// ByGatewayTxnID orders the results by the gateway_txn_id field.
func ByGatewayTxnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGatewayTxnID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFacilityField orders the results by facility field.
func ByFacilityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacilityStep(), sql.OrderByField(field, opts...))
	}
}

// ByEntriesCount orders the results by entries count.
func ByEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntriesStep(), opts...)
	}
}

// ByEntries orders the results by entries terms.
func ByEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFacilityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FacilityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FacilityTable, FacilityColumn),
	)
}
func newEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
	)
}
