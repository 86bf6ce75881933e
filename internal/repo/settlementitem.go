// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/google/uuid"
)

// SettlementItem is the model entity for the SettlementItem schema.
type SettlementItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → settlements.id
	SettlementID uuid.UUID `json:"settlement_id,omitempty"`
	// FK → commission_entries.id
	EntryID uuid.UUID `json:"entry_id,omitempty"`
	// Copy of the entry's commission at claim time, for drift checks
	CommissionAmount int64 `json:"commission_amount,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SettlementItemQuery when eager-loading is set.
	Edges        SettlementItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SettlementItemEdges holds the relations/edges for other nodes in the graph.
type SettlementItemEdges struct {
	// Settlement holds the value of the settlement edge.
	Settlement *Settlement `json:"settlement,omitempty"`
	// Entry holds the value of the entry edge.
	Entry *CommissionEntry `json:"entry,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SettlementOrErr returns the Settlement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SettlementItemEdges) SettlementOrErr() (*Settlement, error) {
	if e.Settlement != nil {
		return e.Settlement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: settlement.Label}
	}
	return nil, &NotLoadedError{edge: "settlement"}
}

// EntryOrErr returns the Entry value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SettlementItemEdges) EntryOrErr() (*CommissionEntry, error) {
	if e.Entry != nil {
		return e.Entry, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: commissionentry.Label}
	}
	return nil, &NotLoadedError{edge: "entry"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SettlementItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case settlementitem.FieldCommissionAmount:
			values[i] = new(sql.NullInt64)
		case settlementitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case settlementitem.FieldID, settlementitem.FieldSettlementID, settlementitem.FieldEntryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SettlementItem fields.
func (_m *SettlementItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case settlementitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case settlementitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case settlementitem.FieldSettlementID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field settlement_id", values[i])
			} else if value != nil {
				_m.SettlementID = *value
			}
		case settlementitem.FieldEntryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field entry_id", values[i])
			} else if value != nil {
				_m.EntryID = *value
			}
		case settlementitem.FieldCommissionAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_amount", values[i])
			} else if value.Valid {
				_m.CommissionAmount = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SettlementItem.
// This includes values selected through modifiers, order, etc.
func (_m *SettlementItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySettlement queries the "settlement" edge of the SettlementItem entity.
func (_m *SettlementItem) QuerySettlement() *SettlementQuery {
	return NewSettlementItemClient(_m.config).QuerySettlement(_m)
}

// QueryEntry queries the "entry" edge of the SettlementItem entity.
func (_m *SettlementItem) QueryEntry() *CommissionEntryQuery {
	return NewSettlementItemClient(_m.config).QueryEntry(_m)
}

// Update returns a builder for updating this SettlementItem.
// Note that you need to call SettlementItem.Unwrap() before calling this method if this SettlementItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SettlementItem) Update() *SettlementItemUpdateOne {
	return NewSettlementItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SettlementItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SettlementItem) Unwrap() *SettlementItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SettlementItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SettlementItem) String() string {
	var builder strings.Builder
	builder.WriteString("SettlementItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("settlement_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SettlementID))
	builder.WriteString(", ")
	builder.WriteString("entry_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntryID))
	builder.WriteString(", ")
	builder.WriteString("commission_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionAmount))
	builder.WriteByte(')')
	return builder.String()
}

// SettlementItems is a parsable slice of SettlementItem.
type SettlementItems []*SettlementItem
