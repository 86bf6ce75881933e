// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/google/uuid"
)

// Settlement is the model entity for the Settlement schema.
type Settlement struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → facilities.id
	FacilityID uuid.UUID `json:"facility_id,omitempty"`
	// SettlementType holds the value of the "settlement_type" field.
	SettlementType settlement.SettlementType `json:"settlement_type,omitempty"`
	// Inclusive lower bound of the covered period
	PeriodFrom time.Time `json:"period_from,omitempty"`
	// Exclusive upper bound of the covered period
	PeriodTo time.Time `json:"period_to,omitempty"`
	// Status holds the value of the "status" field.
	Status settlement.Status `json:"status,omitempty"`
	// Sum of gross amounts across linked entries
	TotalCollections int64 `json:"total_collections,omitempty"`
	// Sum of commission amounts across linked entries
	TotalCommission int64 `json:"total_commission,omitempty"`
	// collections − commission
	FacilityShare int64 `json:"facility_share,omitempty"`
	// Equal to total_commission; kept explicit for export consumers
	PlatformShare int64 `json:"platform_share,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// SubmittedBy holds the value of the "submitted_by" field.
	SubmittedBy *uuid.UUID `json:"submitted_by,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy *uuid.UUID `json:"approved_by,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// PaidBy holds the value of the "paid_by" field.
	PaidBy *uuid.UUID `json:"paid_by,omitempty"`
	// PaidAt holds the value of the "paid_at" field.
	PaidAt *time.Time `json:"paid_at,omitempty"`
	// Bank/UTR reference recorded on the paid transition
	PaymentReference *string `json:"payment_reference,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod *string `json:"payment_method,omitempty"`
	// CancelledBy holds the value of the "cancelled_by" field.
	CancelledBy *uuid.UUID `json:"cancelled_by,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// Free-form context from the proposer, e.g. payout batch remarks
	Notes string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SettlementQuery when eager-loading is set.
	Edges        SettlementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SettlementEdges holds the relations/edges for other nodes in the graph.
type SettlementEdges struct {
	// Facility holds the value of the facility edge.
	Facility *Facility `json:"facility,omitempty"`
	// Items holds the value of the items edge.
	Items []*SettlementItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FacilityOrErr returns the Facility value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SettlementEdges) FacilityOrErr() (*Facility, error) {
	if e.Facility != nil {
		return e.Facility, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: facility.Label}
	}
	return nil, &NotLoadedError{edge: "facility"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e SettlementEdges) ItemsOrErr() ([]*SettlementItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Settlement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case settlement.FieldSubmittedBy, settlement.FieldApprovedBy, settlement.FieldPaidBy, settlement.FieldCancelledBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case settlement.FieldTotalCollections, settlement.FieldTotalCommission, settlement.FieldFacilityShare, settlement.FieldPlatformShare:
			values[i] = new(sql.NullInt64)
		case settlement.FieldSettlementType, settlement.FieldStatus, settlement.FieldCurrency, settlement.FieldPaymentReference, settlement.FieldPaymentMethod, settlement.FieldNotes:
			values[i] = new(sql.NullString)
		case settlement.FieldCreatedAt, settlement.FieldUpdatedAt, settlement.FieldPeriodFrom, settlement.FieldPeriodTo, settlement.FieldApprovedAt, settlement.FieldPaidAt, settlement.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		case settlement.FieldID, settlement.FieldFacilityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Settlement fields.
func (_m *Settlement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case settlement.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case settlement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case settlement.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case settlement.FieldFacilityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field facility_id", values[i])
			} else if value != nil {
				_m.FacilityID = *value
			}
		case settlement.FieldSettlementType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field settlement_type", values[i])
			} else if value.Valid {
				_m.SettlementType = settlement.SettlementType(value.String)
			}
		case settlement.FieldPeriodFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_from", values[i])
			} else if value.Valid {
				_m.PeriodFrom = value.Time
			}
		case settlement.FieldPeriodTo:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_to", values[i])
			} else if value.Valid {
				_m.PeriodTo = value.Time
			}
		case settlement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = settlement.Status(value.String)
			}
		case settlement.FieldTotalCollections:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_collections", values[i])
			} else if value.Valid {
				_m.TotalCollections = value.Int64
			}
		case settlement.FieldTotalCommission:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_commission", values[i])
			} else if value.Valid {
				_m.TotalCommission = value.Int64
			}
		case settlement.FieldFacilityShare:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field facility_share", values[i])
			} else if value.Valid {
				_m.FacilityShare = value.Int64
			}
		case settlement.FieldPlatformShare:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field platform_share", values[i])
			} else if value.Valid {
				_m.PlatformShare = value.Int64
			}
		case settlement.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case settlement.FieldSubmittedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_by", values[i])
			} else if value.Valid {
				_m.SubmittedBy = new(uuid.UUID)
				*_m.SubmittedBy = *value.S.(*uuid.UUID)
			}
		case settlement.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(uuid.UUID)
				*_m.ApprovedBy = *value.S.(*uuid.UUID)
			}
		case settlement.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case settlement.FieldPaidBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field paid_by", values[i])
			} else if value.Valid {
				_m.PaidBy = new(uuid.UUID)
				*_m.PaidBy = *value.S.(*uuid.UUID)
			}
		case settlement.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				_m.PaidAt = new(time.Time)
				*_m.PaidAt = value.Time
			}
		case settlement.FieldPaymentReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_reference", values[i])
			} else if value.Valid {
				_m.PaymentReference = new(string)
				*_m.PaymentReference = value.String
			}
		case settlement.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = new(string)
				*_m.PaymentMethod = value.String
			}
		case settlement.FieldCancelledBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_by", values[i])
			} else if value.Valid {
				_m.CancelledBy = new(uuid.UUID)
				*_m.CancelledBy = *value.S.(*uuid.UUID)
			}
		case settlement.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		case settlement.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Settlement.
// This includes values selected through modifiers, order, etc.
func (_m *Settlement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFacility queries the "facility" edge of the Settlement entity.
func (_m *Settlement) QueryFacility() *FacilityQuery {
	return NewSettlementClient(_m.config).QueryFacility(_m)
}

// QueryItems queries the "items" edge of the Settlement entity.
func (_m *Settlement) QueryItems() *SettlementItemQuery {
	return NewSettlementClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this Settlement.
// Note that you need to call Settlement.Unwrap() before calling this method if this Settlement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Settlement) Update() *SettlementUpdateOne {
	return NewSettlementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Settlement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Settlement) Unwrap() *Settlement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Settlement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Settlement) String() string {
	var builder strings.Builder
	builder.WriteString("Settlement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("facility_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FacilityID))
	builder.WriteString(", ")
	builder.WriteString("settlement_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SettlementType))
	builder.WriteString(", ")
	builder.WriteString("period_from=")
	builder.WriteString(_m.PeriodFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("period_to=")
	builder.WriteString(_m.PeriodTo.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_collections=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCollections))
	builder.WriteString(", ")
	builder.WriteString("total_commission=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCommission))
	builder.WriteString(", ")
	builder.WriteString("facility_share=")
	builder.WriteString(fmt.Sprintf("%v", _m.FacilityShare))
	builder.WriteString(", ")
	builder.WriteString("platform_share=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlatformShare))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.SubmittedBy; v != nil {
		builder.WriteString("submitted_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PaidBy; v != nil {
		builder.WriteString("paid_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PaidAt; v != nil {
		builder.WriteString("paid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PaymentReference; v != nil {
		builder.WriteString("payment_reference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentMethod; v != nil {
		builder.WriteString("payment_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CancelledBy; v != nil {
		builder.WriteString("cancelled_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// Settlements is a parsable slice of Settlement.
type Settlements []*Settlement
