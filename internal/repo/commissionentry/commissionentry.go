// Code generated by ent, DO NOT EDIT.

package commissionentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the commissionentry type in the database.
	Label = "commission_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldFacilityID holds the string denoting the facility_id field in the database.
	FieldFacilityID = "facility_id"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldGrossAmount holds the string denoting the gross_amount field in the database.
	FieldGrossAmount = "gross_amount"
	// FieldCommissionAmount holds the string denoting the commission_amount field in the database.
	FieldCommissionAmount = "commission_amount"
	// FieldFacilityShare holds the string denoting the facility_share field in the database.
	FieldFacilityShare = "facility_share"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldSnapshotRate holds the string denoting the snapshot_rate field in the database.
	FieldSnapshotRate = "snapshot_rate"
	// FieldSnapshotTaxRate holds the string denoting the snapshot_tax_rate field in the database.
	FieldSnapshotTaxRate = "snapshot_tax_rate"
	// FieldSnapshotCashType holds the string denoting the snapshot_cash_type field in the database.
	FieldSnapshotCashType = "snapshot_cash_type"
	// FieldSnapshotRounding holds the string denoting the snapshot_rounding field in the database.
	FieldSnapshotRounding = "snapshot_rounding"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSettlementID holds the string denoting the settlement_id field in the database.
	FieldSettlementID = "settlement_id"
	// FieldReversesEntryID holds the string denoting the reverses_entry_id field in the database.
	FieldReversesEntryID = "reverses_entry_id"
	// EdgeFacility holds the string denoting the facility edge name in mutations.
	EdgeFacility = "facility"
	// EdgeTransaction holds the string denoting the transaction edge name in mutations.
	EdgeTransaction = "transaction"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the commissionentry in the database.
	Table = "commission_entries"
	// FacilityTable is the table that holds the facility relation/edge.
	FacilityTable = "commission_entries"
	// FacilityInverseTable is the table name for the Facility entity.
	// It exists in this package in order to avoid circular dependency with the "facility" package.
	FacilityInverseTable = "facilities"
	// FacilityColumn is the table column denoting the facility relation/edge.
	FacilityColumn = "facility_id"
	// TransactionTable is the table that holds the transaction relation/edge.
	TransactionTable = "commission_entries"
	// TransactionInverseTable is the table name for the Transaction entity.
	// It exists in this package in order to avoid circular dependency with the "transaction" package.
	TransactionInverseTable = "transactions"
	// TransactionColumn is the table column denoting the transaction relation/edge.
	TransactionColumn = "transaction_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "settlement_items"
	// ItemsInverseTable is the table name for the SettlementItem entity.
	// It exists in this package in order to avoid circular dependency with the "settlementitem" package.
	ItemsInverseTable = "settlement_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "entry_id"
)

// Columns holds all SQL columns for commissionentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldFacilityID,
	FieldTransactionID,
	FieldSeq,
	FieldChannel,
	FieldGrossAmount,
	FieldCommissionAmount,
	FieldFacilityShare,
	FieldCurrency,
	FieldOccurredAt,
	FieldSnapshotRate,
	FieldSnapshotTaxRate,
	FieldSnapshotCashType,
	FieldSnapshotRounding,
	FieldStatus,
	FieldSettlementID,
	FieldReversesEntryID,
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
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// SnapshotRateValidator is a validator for the "snapshot_rate" field. It is called by the builders before save.
	SnapshotRateValidator func(string) error
	// DefaultSnapshotTaxRate holds the default value on creation for the "snapshot_tax_rate" field.
	DefaultSnapshotTaxRate string
	// SnapshotTaxRateValidator is a validator for the "snapshot_tax_rate" field. It is called by the builders before save.
	SnapshotTaxRateValidator func(string) error
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
		return fmt.Errorf("commissionentry: invalid enum value for channel field: %q", c)
	}
}

// SnapshotCashType defines the type for the "snapshot_cash_type" enum field.
type SnapshotCashType string

// SnapshotCashTypeNone is the default value of the SnapshotCashType enum.
const DefaultSnapshotCashType = SnapshotCashTypeNone

// SnapshotCashType values.
const (
	SnapshotCashTypePercentage SnapshotCashType = "percentage"
	SnapshotCashTypeFixed      SnapshotCashType = "fixed"
	SnapshotCashTypeNone       SnapshotCashType = "none"
)

func (sct SnapshotCashType) String() string {
	return string(sct)
}

// SnapshotCashTypeValidator is a validator for the "snapshot_cash_type" field enum values. It is called by the builders before save.
func SnapshotCashTypeValidator(sct SnapshotCashType) error {
	switch sct {
	case SnapshotCashTypePercentage, SnapshotCashTypeFixed, SnapshotCashTypeNone:
		return nil
	default:
		return fmt.Errorf("commissionentry: invalid enum value for snapshot_cash_type field: %q", sct)
	}
}

// SnapshotRounding defines the type for the "snapshot_rounding" enum field.
type SnapshotRounding string

// SnapshotRounding values.
const (
	SnapshotRoundingNearest SnapshotRounding = "nearest"
	SnapshotRoundingUp      SnapshotRounding = "up"
	SnapshotRoundingDown    SnapshotRounding = "down"
)

func (sr SnapshotRounding) String() string {
	return string(sr)
}

// SnapshotRoundingValidator is a validator for the "snapshot_rounding" field enum values. It is called by the builders before save.
func SnapshotRoundingValidator(sr SnapshotRounding) error {
	switch sr {
	case SnapshotRoundingNearest, SnapshotRoundingUp, SnapshotRoundingDown:
		return nil
	default:
		return fmt.Errorf("commissionentry: invalid enum value for snapshot_rounding field: %q", sr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusUnsettled is the default value of the Status enum.
const DefaultStatus = StatusUnsettled

// Status values.
const (
	StatusUnsettled            Status = "unsettled"
	StatusIncludedInSettlement Status = "included_in_settlement"
	StatusSettled              Status = "settled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUnsettled, StatusIncludedInSettlement, StatusSettled:
		return nil
	default:
		return fmt.Errorf("commissionentry: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CommissionEntry queries.
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

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByGrossAmount orders the results by the gross_amount field.
func ByGrossAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossAmount, opts...).ToFunc()
}

// ByCommissionAmount orders the results by the commission_amount field.
func ByCommissionAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionAmount, opts...).ToFunc()
}

// ByFacilityShare orders the results by the facility_share field.
func ByFacilityShare(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacilityShare, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// BySnapshotRate orders the results by the snapshot_rate field.
func BySnapshotRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotRate, opts...).ToFunc()
}

// BySnapshotTaxRate orders the results by the snapshot_tax_rate field.
func BySnapshotTaxRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotTaxRate, opts...).ToFunc()
}

// BySnapshotCashType orders the results by the snapshot_cash_type field.
func BySnapshotCashType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotCashType, opts...).ToFunc()
}

// BySnapshotRounding orders the results by the snapshot_rounding field.
func BySnapshotRounding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotRounding, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySettlementID orders the results by the settlement_id field.
func BySettlementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSettlementID, opts...).ToFunc()
}

// ByReversesEntryID orders the results by the reverses_entry_id field.
func ByReversesEntryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReversesEntryID, opts...).ToFunc()
}

// ByFacilityField orders the results by facility field.
func ByFacilityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacilityStep(), sql.OrderByField(field, opts...))
	}
}

// ByTransactionField orders the results by transaction field.
func ByTransactionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransactionStep(), sql.OrderByField(field, opts...))
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
func newTransactionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransactionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TransactionTable, TransactionColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
