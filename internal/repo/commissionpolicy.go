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

// CommissionPolicy is the model entity for the CommissionPolicy schema.
type CommissionPolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → facilities.id (one policy per facility)
	FacilityID uuid.UUID `json:"facility_id,omitempty"`
	// MDR the platform charges on online payments, decimal in [0,1]
	PlatformMdrRate string `json:"platform_mdr_rate,omitempty"`
	// MDR the gateway itself charges; platform margin = platform − gateway
	GatewayMdrRate string `json:"gateway_mdr_rate,omitempty"`
	// If true, tax_rate is added on top of the computed commission
	TaxOnCommission bool `json:"tax_on_commission,omitempty"`
	// Tax rate applied to commission when tax_on_commission is set
	TaxRate string `json:"tax_rate,omitempty"`
	// CashCommissionEnabled holds the value of the "cash_commission_enabled" field.
	CashCommissionEnabled bool `json:"cash_commission_enabled,omitempty"`
	// CashCommissionType holds the value of the "cash_commission_type" field.
	CashCommissionType commissionpolicy.CashCommissionType `json:"cash_commission_type,omitempty"`
	// Rate in [0,1] for percentage type; fee in minor units for fixed type
	CashCommissionValue string `json:"cash_commission_value,omitempty"`
	// Applied once, at the end of each calculation, to the minor unit
	RoundingMode commissionpolicy.RoundingMode `json:"rounding_mode,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommissionPolicyQuery when eager-loading is set.
	Edges        CommissionPolicyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommissionPolicyEdges holds the relations/edges for other nodes in the graph.
type CommissionPolicyEdges struct {
	// Facility holds the value of the facility edge.
	Facility *Facility `json:"facility,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FacilityOrErr returns the Facility value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommissionPolicyEdges) FacilityOrErr() (*Facility, error) {
	if e.Facility != nil {
		return e.Facility, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: facility.Label}
	}
	return nil, &NotLoadedError{edge: "facility"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommissionPolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commissionpolicy.FieldTaxOnCommission, commissionpolicy.FieldCashCommissionEnabled:
			values[i] = new(sql.NullBool)
		case commissionpolicy.FieldPlatformMdrRate, commissionpolicy.FieldGatewayMdrRate, commissionpolicy.FieldTaxRate, commissionpolicy.FieldCashCommissionType, commissionpolicy.FieldCashCommissionValue, commissionpolicy.FieldRoundingMode:
			values[i] = new(sql.NullString)
		case commissionpolicy.FieldCreatedAt, commissionpolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case commissionpolicy.FieldID, commissionpolicy.FieldFacilityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommissionPolicy fields.
func (_m *CommissionPolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commissionpolicy.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case commissionpolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case commissionpolicy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case commissionpolicy.FieldFacilityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field facility_id", values[i])
			} else if value != nil {
				_m.FacilityID = *value
			}
		case commissionpolicy.FieldPlatformMdrRate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform_mdr_rate", values[i])
			} else if value.Valid {
				_m.PlatformMdrRate = value.String
			}
		case commissionpolicy.FieldGatewayMdrRate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gateway_mdr_rate", values[i])
			} else if value.Valid {
				_m.GatewayMdrRate = value.String
			}
		case commissionpolicy.FieldTaxOnCommission:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field tax_on_commission", values[i])
			} else if value.Valid {
				_m.TaxOnCommission = value.Bool
			}
		case commissionpolicy.FieldTaxRate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_rate", values[i])
			} else if value.Valid {
				_m.TaxRate = value.String
			}
		case commissionpolicy.FieldCashCommissionEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cash_commission_enabled", values[i])
			} else if value.Valid {
				_m.CashCommissionEnabled = value.Bool
			}
		case commissionpolicy.FieldCashCommissionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cash_commission_type", values[i])
			} else if value.Valid {
				_m.CashCommissionType = commissionpolicy.CashCommissionType(value.String)
			}
		case commissionpolicy.FieldCashCommissionValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cash_commission_value", values[i])
			} else if value.Valid {
				_m.CashCommissionValue = value.String
			}
		case commissionpolicy.FieldRoundingMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rounding_mode", values[i])
			} else if value.Valid {
				_m.RoundingMode = commissionpolicy.RoundingMode(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommissionPolicy.
// This includes values selected through modifiers, order, etc.
func (_m *CommissionPolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFacility queries the "facility" edge of the CommissionPolicy entity.
func (_m *CommissionPolicy) QueryFacility() *FacilityQuery {
	return NewCommissionPolicyClient(_m.config).QueryFacility(_m)
}

// Update returns a builder for updating this CommissionPolicy.
// Note that you need to call CommissionPolicy.Unwrap() before calling this method if this CommissionPolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommissionPolicy) Update() *CommissionPolicyUpdateOne {
	return NewCommissionPolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommissionPolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommissionPolicy) Unwrap() *CommissionPolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CommissionPolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommissionPolicy) String() string {
	var builder strings.Builder
	builder.WriteString("CommissionPolicy(")
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
	builder.WriteString("platform_mdr_rate=")
	builder.WriteString(_m.PlatformMdrRate)
	builder.WriteString(", ")
	builder.WriteString("gateway_mdr_rate=")
	builder.WriteString(_m.GatewayMdrRate)
	builder.WriteString(", ")
	builder.WriteString("tax_on_commission=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaxOnCommission))
	builder.WriteString(", ")
	builder.WriteString("tax_rate=")
	builder.WriteString(_m.TaxRate)
	builder.WriteString(", ")
	builder.WriteString("cash_commission_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.CashCommissionEnabled))
	builder.WriteString(", ")
	builder.WriteString("cash_commission_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CashCommissionType))
	builder.WriteString(", ")
	builder.WriteString("cash_commission_value=")
	builder.WriteString(_m.CashCommissionValue)
	builder.WriteString(", ")
	builder.WriteString("rounding_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundingMode))
	builder.WriteByte(')')
	return builder.String()
}

// CommissionPolicies is a parsable slice of CommissionPolicy.
type CommissionPolicies []*CommissionPolicy
