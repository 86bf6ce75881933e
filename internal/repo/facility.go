// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/google/uuid"
)

// Facility is the model entity for the Facility schema.
type Facility struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Short human-assigned identifier used in exports and support tickets
	Code string `json:"code,omitempty"`
	// ISO 4217 currency for all amounts at this facility
	Currency string `json:"currency,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Monotonic per-facility ledger cursor, advanced via compare-and-swap
	LedgerSeq int64 `json:"ledger_seq,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FacilityQuery when eager-loading is set.
	Edges        FacilityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FacilityEdges holds the relations/edges for other nodes in the graph.
type FacilityEdges struct {
	// Policy holds the value of the policy edge.
	Policy *CommissionPolicy `json:"policy,omitempty"`
	// Transactions holds the value of the transactions edge.
	Transactions []*Transaction `json:"transactions,omitempty"`
	// Entries holds the value of the entries edge.
	Entries []*CommissionEntry `json:"entries,omitempty"`
	// Settlements holds the value of the settlements edge.
	Settlements []*Settlement `json:"settlements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// PolicyOrErr returns the Policy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FacilityEdges) PolicyOrErr() (*CommissionPolicy, error) {
	if e.Policy != nil {
		return e.Policy, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: commissionpolicy.Label}
	}
	return nil, &NotLoadedError{edge: "policy"}
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e FacilityEdges) TransactionsOrErr() ([]*Transaction, error) {
	if e.loadedTypes[1] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e FacilityEdges) EntriesOrErr() ([]*CommissionEntry, error) {
	if e.loadedTypes[2] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// SettlementsOrErr returns the Settlements value or an error if the edge
// was not loaded in eager-loading.
func (e FacilityEdges) SettlementsOrErr() ([]*Settlement, error) {
	if e.loadedTypes[3] {
		return e.Settlements, nil
	}
	return nil, &NotLoadedError{edge: "settlements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Facility) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facility.FieldIsActive:
			values[i] = new(sql.NullBool)
		case facility.FieldLedgerSeq:
			values[i] = new(sql.NullInt64)
		case facility.FieldName, facility.FieldCode, facility.FieldCurrency:
			values[i] = new(sql.NullString)
		case facility.FieldCreatedAt, facility.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case facility.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Facility fields.
func (_m *Facility) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facility.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case facility.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case facility.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case facility.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case facility.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case facility.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case facility.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case facility.FieldLedgerSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ledger_seq", values[i])
			} else if value.Valid {
				_m.LedgerSeq = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Facility.
// This includes values selected through modifiers, order, etc.
func (_m *Facility) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPolicy queries the "policy" edge of the Facility entity.
func (_m *Facility) QueryPolicy() *CommissionPolicyQuery {
	return NewFacilityClient(_m.config).QueryPolicy(_m)
}

// QueryTransactions queries the "transactions" edge of the Facility entity.
func (_m *Facility) QueryTransactions() *TransactionQuery {
	return NewFacilityClient(_m.config).QueryTransactions(_m)
}

// QueryEntries queries the "entries" edge of the Facility entity.
func (_m *Facility) QueryEntries() *CommissionEntryQuery {
	return NewFacilityClient(_m.config).QueryEntries(_m)
}

// QuerySettlements queries the "settlements" edge of the Facility entity.
func (_m *Facility) QuerySettlements() *SettlementQuery {
	return NewFacilityClient(_m.config).QuerySettlements(_m)
}

// Update returns a builder for updating this Facility.
// Note that you need to call Facility.Unwrap() before calling this method if this Facility
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Facility) Update() *FacilityUpdateOne {
	return NewFacilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Facility entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Facility) Unwrap() *Facility {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Facility is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Facility) String() string {
	var builder strings.Builder
	builder.WriteString("Facility(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("ledger_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LedgerSeq))
	builder.WriteByte(')')
	return builder.String()
}

// Facilities is a parsable slice of Facility.
type Facilities []*Facility
