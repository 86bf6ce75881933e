// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// CommissionEntry is the model entity for the CommissionEntry schema.
type CommissionEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → facilities.id, denormalized for facility-scoped scans
	FacilityID uuid.UUID `json:"facility_id,omitempty"`
	// FK → transactions.id
	TransactionID uuid.UUID `json:"transaction_id,omitempty"`
	// Facility-scoped monotonic sequence, assigned at append time
	Seq int64 `json:"seq,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel commissionentry.Channel `json:"channel,omitempty"`
	// Copy of the transaction gross, negative for reversal entries
	GrossAmount int64 `json:"gross_amount,omitempty"`
	// Platform commission in minor units, negative only on reversals
	CommissionAmount int64 `json:"commission_amount,omitempty"`
	// What the facility keeps: gross minus commission
	FacilityShare int64 `json:"facility_share,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Copied from the transaction; drives aging buckets
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// Effective rate used: platform−gateway margin online, cash rate for cash
	SnapshotRate string `json:"snapshot_rate,omitempty"`
	// SnapshotTaxRate holds the value of the "snapshot_tax_rate" field.
	SnapshotTaxRate string `json:"snapshot_tax_rate,omitempty"`
	// SnapshotCashType holds the value of the "snapshot_cash_type" field.
	SnapshotCashType commissionentry.SnapshotCashType `json:"snapshot_cash_type,omitempty"`
	// SnapshotRounding holds the value of the "snapshot_rounding" field.
	SnapshotRounding commissionentry.SnapshotRounding `json:"snapshot_rounding,omitempty"`
	// Status holds the value of the "status" field.
	Status commissionentry.Status `json:"status,omitempty"`
	// Active settlement currently claiming this entry, if any
	SettlementID *uuid.UUID `json:"settlement_id,omitempty"`
	// Set on negation entries created by a transaction reversal
	ReversesEntryID *uuid.UUID `json:"reverses_entry_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommissionEntryQuery when eager-loading is set.
	Edges        CommissionEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommissionEntryEdges holds the relations/edges for other nodes in the graph.
type CommissionEntryEdges struct {
	// Facility holds the value of the facility edge.
	Facility *Facility `json:"facility,omitempty"`
	// Transaction holds the value of the transaction edge.
	Transaction *Transaction `json:"transaction,omitempty"`
	// Items holds the value of the items edge.
	Items []*SettlementItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FacilityOrErr returns the Facility value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommissionEntryEdges) FacilityOrErr() (*Facility, error) {
	if e.Facility != nil {
		return e.Facility, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: facility.Label}
	}
	return nil, &NotLoadedError{edge: "facility"}
}

// TransactionOrErr returns the Transaction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommissionEntryEdges) TransactionOrErr() (*Transaction, error) {
	if e.Transaction != nil {
		return e.Transaction, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: transaction.Label}
	}
	return nil, &NotLoadedError{edge: "transaction"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e CommissionEntryEdges) ItemsOrErr() ([]*SettlementItem, error) {
	if e.loadedTypes[2] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommissionEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commissionentry.FieldSettlementID, commissionentry.FieldReversesEntryID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case commissionentry.FieldSeq, commissionentry.FieldGrossAmount, commissionentry.FieldCommissionAmount, commissionentry.FieldFacilityShare:
			values[i] = new(sql.NullInt64)
		case commissionentry.FieldChannel, commissionentry.FieldCurrency, commissionentry.FieldSnapshotRate, commissionentry.FieldSnapshotTaxRate, commissionentry.FieldSnapshotCashType, commissionentry.FieldSnapshotRounding, commissionentry.FieldStatus:
			values[i] = new(sql.NullString)
		case commissionentry.FieldCreatedAt, commissionentry.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		case commissionentry.FieldID, commissionentry.FieldFacilityID, commissionentry.FieldTransactionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommissionEntry fields.
func (_m *CommissionEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commissionentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case commissionentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case commissionentry.FieldFacilityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field facility_id", values[i])
			} else if value != nil {
				_m.FacilityID = *value
			}
		case commissionentry.FieldTransactionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value != nil {
				_m.TransactionID = *value
			}
		case commissionentry.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = value.Int64
			}
		case commissionentry.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = commissionentry.Channel(value.String)
			}
		case commissionentry.FieldGrossAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_amount", values[i])
			} else if value.Valid {
				_m.GrossAmount = value.Int64
			}
		case commissionentry.FieldCommissionAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_amount", values[i])
			} else if value.Valid {
				_m.CommissionAmount = value.Int64
			}
		case commissionentry.FieldFacilityShare:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field facility_share", values[i])
			} else if value.Valid {
				_m.FacilityShare = value.Int64
			}
		case commissionentry.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case commissionentry.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		case commissionentry.FieldSnapshotRate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_rate", values[i])
			} else if value.Valid {
				_m.SnapshotRate = value.String
			}
		case commissionentry.FieldSnapshotTaxRate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_tax_rate", values[i])
			} else if value.Valid {
				_m.SnapshotTaxRate = value.String
			}
		case commissionentry.FieldSnapshotCashType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_cash_type", values[i])
			} else if value.Valid {
				_m.SnapshotCashType = commissionentry.SnapshotCashType(value.String)
			}
		case commissionentry.FieldSnapshotRounding:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_rounding", values[i])
			} else if value.Valid {
				_m.SnapshotRounding = commissionentry.SnapshotRounding(value.String)
			}
		case commissionentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = commissionentry.Status(value.String)
			}
		case commissionentry.FieldSettlementID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field settlement_id", values[i])
			} else if value.Valid {
				_m.SettlementID = new(uuid.UUID)
				*_m.SettlementID = *value.S.(*uuid.UUID)
			}
		case commissionentry.FieldReversesEntryID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field reverses_entry_id", values[i])
			} else if value.Valid {
				_m.ReversesEntryID = new(uuid.UUID)
				*_m.ReversesEntryID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommissionEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CommissionEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFacility queries the "facility" edge of the CommissionEntry entity.
func (_m *CommissionEntry) QueryFacility() *FacilityQuery {
	return NewCommissionEntryClient(_m.config).QueryFacility(_m)
}

// QueryTransaction queries the "transaction" edge of the CommissionEntry entity.
func (_m *CommissionEntry) QueryTransaction() *TransactionQuery {
	return NewCommissionEntryClient(_m.config).QueryTransaction(_m)
}

// QueryItems queries the "items" edge of the CommissionEntry entity.
func (_m *CommissionEntry) QueryItems() *SettlementItemQuery {
	return NewCommissionEntryClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this CommissionEntry.
// Note that you need to call CommissionEntry.Unwrap() before calling this method if this CommissionEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommissionEntry) Update() *CommissionEntryUpdateOne {
	return NewCommissionEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommissionEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommissionEntry) Unwrap() *CommissionEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CommissionEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommissionEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CommissionEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("facility_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FacilityID))
	builder.WriteString(", ")
	builder.WriteString("transaction_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransactionID))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channel))
	builder.WriteString(", ")
	builder.WriteString("gross_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrossAmount))
	builder.WriteString(", ")
	builder.WriteString("commission_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionAmount))
	builder.WriteString(", ")
	builder.WriteString("facility_share=")
	builder.WriteString(fmt.Sprintf("%v", _m.FacilityShare))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("snapshot_rate=")
	builder.WriteString(_m.SnapshotRate)
	builder.WriteString(", ")
	builder.WriteString("snapshot_tax_rate=")
	builder.WriteString(_m.SnapshotTaxRate)
	builder.WriteString(", ")
	builder.WriteString("snapshot_cash_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SnapshotCashType))
	builder.WriteString(", ")
	builder.WriteString("snapshot_rounding=")
	builder.WriteString(fmt.Sprintf("%v", _m.SnapshotRounding))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SettlementID; v != nil {
		builder.WriteString("settlement_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReversesEntryID; v != nil {
		builder.WriteString("reverses_entry_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CommissionEntries is a parsable slice of CommissionEntry.
type CommissionEntries []*CommissionEntry
