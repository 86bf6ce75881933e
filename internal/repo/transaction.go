// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// Transaction is the model entity for the Transaction schema.
type Transaction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → facilities.id
	FacilityID uuid.UUID `json:"facility_id,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel transaction.Channel `json:"channel,omitempty"`
	// Gross amount in minor currency units, never floating point
	GrossAmount int64 `json:"gross_amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// When the money actually moved, as reported by the capturing system
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// Reference to the originating bill in the billing system
	BillReference string `json:"bill_reference,omitempty"`
	// Facility staff member who collected, for cash channel
	CollectedBy *uuid.UUID `json:"collected_by,omitempty"`
	// Gateway transaction id, for online channel
	GatewayTxnID *string `json:"gateway_txn_id,omitempty"`
	// Status holds the value of the "status" field.
	Status transaction.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TransactionQuery when eager-loading is set.
	Edges        TransactionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TransactionEdges holds the relations/edges for other nodes in the graph.
type TransactionEdges struct {
	// Facility holds the value of the facility edge.
	Facility *Facility `json:"facility,omitempty"`
	// Entries holds the value of the entries edge.
	Entries []*CommissionEntry `json:"entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FacilityOrErr returns the Facility value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TransactionEdges) FacilityOrErr() (*Facility, error) {
	if e.Facility != nil {
		return e.Facility, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: facility.Label}
	}
	return nil, &NotLoadedError{edge: "facility"}
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e TransactionEdges) EntriesOrErr() ([]*CommissionEntry, error) {
	if e.loadedTypes[1] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Transaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transaction.FieldCollectedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case transaction.FieldGrossAmount:
			values[i] = new(sql.NullInt64)
		case transaction.FieldChannel, transaction.FieldCurrency, transaction.FieldBillReference, transaction.FieldGatewayTxnID, transaction.FieldStatus:
			values[i] = new(sql.NullString)
		case transaction.FieldCreatedAt, transaction.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		case transaction.FieldID, transaction.FieldFacilityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Transaction fields.
func (_m *Transaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transaction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case transaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case transaction.FieldFacilityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field facility_id", values[i])
			} else if value != nil {
				_m.FacilityID = *value
			}
		case transaction.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = transaction.Channel(value.String)
			}
		case transaction.FieldGrossAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_amount", values[i])
			} else if value.Valid {
				_m.GrossAmount = value.Int64
			}
		case transaction.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case transaction.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		case transaction.FieldBillReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_reference", values[i])
			} else if value.Valid {
				_m.BillReference = value.String
			}
		case transaction.FieldCollectedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field collected_by", values[i])
			} else if value.Valid {
				_m.CollectedBy = new(uuid.UUID)
				*_m.CollectedBy = *value.S.(*uuid.UUID)
			}
		case transaction.FieldGatewayTxnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gateway_txn_id", values[i])
			} else if value.Valid {
				_m.GatewayTxnID = new(string)
				*_m.GatewayTxnID = value.String
			}
		case transaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = transaction.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Transaction.
// This includes values selected through modifiers, order, etc.
func (_m *Transaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFacility queries the "facility" edge of the Transaction entity.
func (_m *Transaction) QueryFacility() *FacilityQuery {
	return NewTransactionClient(_m.config).QueryFacility(_m)
}

// QueryEntries queries the "entries" edge of the Transaction entity.
func (_m *Transaction) QueryEntries() *CommissionEntryQuery {
	return NewTransactionClient(_m.config).QueryEntries(_m)
}

// Update returns a builder for updating this Transaction.
// Note that you need to call Transaction.Unwrap() before calling this method if this Transaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Transaction) Update() *TransactionUpdateOne {
	return NewTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Transaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Transaction) Unwrap() *Transaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Transaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Transaction) String() string {
	var builder strings.Builder
	builder.WriteString("Transaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("facility_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FacilityID))
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channel))
	builder.WriteString(", ")
	builder.WriteString("gross_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrossAmount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("bill_reference=")
	builder.WriteString(_m.BillReference)
	builder.WriteString(", ")
	if v := _m.CollectedBy; v != nil {
		builder.WriteString("collected_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GatewayTxnID; v != nil {
		builder.WriteString("gateway_txn_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// Transactions is a parsable slice of Transaction.
type Transactions []*Transaction
