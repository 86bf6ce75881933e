// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// CommissionPolicyUpdate is the builder for updating CommissionPolicy entities.
type CommissionPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *CommissionPolicyMutation
}

// Where appends a list predicates to the CommissionPolicyUpdate builder.
func (_u *CommissionPolicyUpdate) Where(ps ...predicate.CommissionPolicy) *CommissionPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommissionPolicyUpdate) SetUpdatedAt(v time.Time) *CommissionPolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *CommissionPolicyUpdate) SetFacilityID(v uuid.UUID) *CommissionPolicyUpdate {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillableFacilityID(v *uuid.UUID) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetPlatformMdrRate sets the "platform_mdr_rate" field.
func (_u *CommissionPolicyUpdate) SetPlatformMdrRate(v string) *CommissionPolicyUpdate {
	_u.mutation.SetPlatformMdrRate(v)
	return _u
}

// SetNillablePlatformMdrRate sets the "platform_mdr_rate" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillablePlatformMdrRate(v *string) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetPlatformMdrRate(*v)
	}
	return _u
}

// SetGatewayMdrRate sets the "gateway_mdr_rate" field.
func (_u *CommissionPolicyUpdate) SetGatewayMdrRate(v string) *CommissionPolicyUpdate {
	_u.mutation.SetGatewayMdrRate(v)
	return _u
}

// SetNillableGatewayMdrRate sets the "gateway_mdr_rate" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillableGatewayMdrRate(v *string) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetGatewayMdrRate(*v)
	}
	return _u
}

// SetTaxOnCommission sets the "tax_on_commission" field.
func (_u *CommissionPolicyUpdate) SetTaxOnCommission(v bool) *CommissionPolicyUpdate {
	_u.mutation.SetTaxOnCommission(v)
	return _u
}

// SetNillableTaxOnCommission sets the "tax_on_commission" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillableTaxOnCommission(v *bool) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetTaxOnCommission(*v)
	}
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *CommissionPolicyUpdate) SetTaxRate(v string) *CommissionPolicyUpdate {
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillableTaxRate(v *string) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// SetCashCommissionEnabled sets the "cash_commission_enabled" field.
func (_u *CommissionPolicyUpdate) SetCashCommissionEnabled(v bool) *CommissionPolicyUpdate {
	_u.mutation.SetCashCommissionEnabled(v)
	return _u
}

// SetNillableCashCommissionEnabled sets the "cash_commission_enabled" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillableCashCommissionEnabled(v *bool) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetCashCommissionEnabled(*v)
	}
	return _u
}

// SetCashCommissionType sets the "cash_commission_type" field.
func (_u *CommissionPolicyUpdate) SetCashCommissionType(v commissionpolicy.CashCommissionType) *CommissionPolicyUpdate {
	_u.mutation.SetCashCommissionType(v)
	return _u
}

// SetNillableCashCommissionType sets the "cash_commission_type" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillableCashCommissionType(v *commissionpolicy.CashCommissionType) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetCashCommissionType(*v)
	}
	return _u
}

// SetCashCommissionValue sets the "cash_commission_value" field.
func (_u *CommissionPolicyUpdate) SetCashCommissionValue(v string) *CommissionPolicyUpdate {
	_u.mutation.SetCashCommissionValue(v)
	return _u
}

// SetNillableCashCommissionValue sets the "cash_commission_value" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillableCashCommissionValue(v *string) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetCashCommissionValue(*v)
	}
	return _u
}

// SetRoundingMode sets the "rounding_mode" field.
func (_u *CommissionPolicyUpdate) SetRoundingMode(v commissionpolicy.RoundingMode) *CommissionPolicyUpdate {
	_u.mutation.SetRoundingMode(v)
	return _u
}

// SetNillableRoundingMode sets the "rounding_mode" field if the given value is not nil.
func (_u *CommissionPolicyUpdate) SetNillableRoundingMode(v *commissionpolicy.RoundingMode) *CommissionPolicyUpdate {
	if v != nil {
		_u.SetRoundingMode(*v)
	}
	return _u
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_u *CommissionPolicyUpdate) SetFacility(v *Facility) *CommissionPolicyUpdate {
	return _u.SetFacilityID(v.ID)
}

// Mutation returns the CommissionPolicyMutation object of the builder.
func (_u *CommissionPolicyUpdate) Mutation() *CommissionPolicyMutation {
	return _u.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (_u *CommissionPolicyUpdate) ClearFacility() *CommissionPolicyUpdate {
	_u.mutation.ClearFacility()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommissionPolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommissionPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommissionPolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commissionpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionPolicyUpdate) check() error {
	if v, ok := _u.mutation.PlatformMdrRate(); ok {
		if err := commissionpolicy.PlatformMdrRateValidator(v); err != nil {
			return &ValidationError{Name: "platform_mdr_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.platform_mdr_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GatewayMdrRate(); ok {
		if err := commissionpolicy.GatewayMdrRateValidator(v); err != nil {
			return &ValidationError{Name: "gateway_mdr_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.gateway_mdr_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxRate(); ok {
		if err := commissionpolicy.TaxRateValidator(v); err != nil {
			return &ValidationError{Name: "tax_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.tax_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CashCommissionType(); ok {
		if err := commissionpolicy.CashCommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "cash_commission_type", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.cash_commission_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CashCommissionValue(); ok {
		if err := commissionpolicy.CashCommissionValueValidator(v); err != nil {
			return &ValidationError{Name: "cash_commission_value", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.cash_commission_value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundingMode(); ok {
		if err := commissionpolicy.RoundingModeValidator(v); err != nil {
			return &ValidationError{Name: "rounding_mode", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.rounding_mode": %w`, err)}
		}
	}
	if _u.mutation.FacilityCleared() && len(_u.mutation.FacilityIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CommissionPolicy.facility"`)
	}
	return nil
}

func (_u *CommissionPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionpolicy.Table, commissionpolicy.Columns, sqlgraph.NewFieldSpec(commissionpolicy.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PlatformMdrRate(); ok {
		_spec.SetField(commissionpolicy.FieldPlatformMdrRate, field.TypeString, value)
	}
	if value, ok := _u.mutation.GatewayMdrRate(); ok {
		_spec.SetField(commissionpolicy.FieldGatewayMdrRate, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxOnCommission(); ok {
		_spec.SetField(commissionpolicy.FieldTaxOnCommission, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(commissionpolicy.FieldTaxRate, field.TypeString, value)
	}
	if value, ok := _u.mutation.CashCommissionEnabled(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CashCommissionType(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CashCommissionValue(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundingMode(); ok {
		_spec.SetField(commissionpolicy.FieldRoundingMode, field.TypeEnum, value)
	}
	if _u.mutation.FacilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   commissionpolicy.FacilityTable,
			Columns: []string{commissionpolicy.FacilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   commissionpolicy.FacilityTable,
			Columns: []string{commissionpolicy.FacilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommissionPolicyUpdateOne is the builder for updating a single CommissionPolicy entity.
type CommissionPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommissionPolicyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommissionPolicyUpdateOne) SetUpdatedAt(v time.Time) *CommissionPolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *CommissionPolicyUpdateOne) SetFacilityID(v uuid.UUID) *CommissionPolicyUpdateOne {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillableFacilityID(v *uuid.UUID) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetPlatformMdrRate sets the "platform_mdr_rate" field.
func (_u *CommissionPolicyUpdateOne) SetPlatformMdrRate(v string) *CommissionPolicyUpdateOne {
	_u.mutation.SetPlatformMdrRate(v)
	return _u
}

// SetNillablePlatformMdrRate sets the "platform_mdr_rate" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillablePlatformMdrRate(v *string) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetPlatformMdrRate(*v)
	}
	return _u
}

// SetGatewayMdrRate sets the "gateway_mdr_rate" field.
func (_u *CommissionPolicyUpdateOne) SetGatewayMdrRate(v string) *CommissionPolicyUpdateOne {
	_u.mutation.SetGatewayMdrRate(v)
	return _u
}

// SetNillableGatewayMdrRate sets the "gateway_mdr_rate" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillableGatewayMdrRate(v *string) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetGatewayMdrRate(*v)
	}
	return _u
}

// SetTaxOnCommission sets the "tax_on_commission" field.
func (_u *CommissionPolicyUpdateOne) SetTaxOnCommission(v bool) *CommissionPolicyUpdateOne {
	_u.mutation.SetTaxOnCommission(v)
	return _u
}

// SetNillableTaxOnCommission sets the "tax_on_commission" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillableTaxOnCommission(v *bool) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetTaxOnCommission(*v)
	}
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *CommissionPolicyUpdateOne) SetTaxRate(v string) *CommissionPolicyUpdateOne {
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillableTaxRate(v *string) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// SetCashCommissionEnabled sets the "cash_commission_enabled" field.
func (_u *CommissionPolicyUpdateOne) SetCashCommissionEnabled(v bool) *CommissionPolicyUpdateOne {
	_u.mutation.SetCashCommissionEnabled(v)
	return _u
}

// SetNillableCashCommissionEnabled sets the "cash_commission_enabled" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillableCashCommissionEnabled(v *bool) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetCashCommissionEnabled(*v)
	}
	return _u
}

// SetCashCommissionType sets the "cash_commission_type" field.
func (_u *CommissionPolicyUpdateOne) SetCashCommissionType(v commissionpolicy.CashCommissionType) *CommissionPolicyUpdateOne {
	_u.mutation.SetCashCommissionType(v)
	return _u
}

// SetNillableCashCommissionType sets the "cash_commission_type" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillableCashCommissionType(v *commissionpolicy.CashCommissionType) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetCashCommissionType(*v)
	}
	return _u
}

// SetCashCommissionValue sets the "cash_commission_value" field.
func (_u *CommissionPolicyUpdateOne) SetCashCommissionValue(v string) *CommissionPolicyUpdateOne {
	_u.mutation.SetCashCommissionValue(v)
	return _u
}

// SetNillableCashCommissionValue sets the "cash_commission_value" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillableCashCommissionValue(v *string) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetCashCommissionValue(*v)
	}
	return _u
}

// SetRoundingMode sets the "rounding_mode" field.
func (_u *CommissionPolicyUpdateOne) SetRoundingMode(v commissionpolicy.RoundingMode) *CommissionPolicyUpdateOne {
	_u.mutation.SetRoundingMode(v)
	return _u
}

// SetNillableRoundingMode sets the "rounding_mode" field if the given value is not nil.
func (_u *CommissionPolicyUpdateOne) SetNillableRoundingMode(v *commissionpolicy.RoundingMode) *CommissionPolicyUpdateOne {
	if v != nil {
		_u.SetRoundingMode(*v)
	}
	return _u
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_u *CommissionPolicyUpdateOne) SetFacility(v *Facility) *CommissionPolicyUpdateOne {
	return _u.SetFacilityID(v.ID)
}

// Mutation returns the CommissionPolicyMutation object of the builder.
func (_u *CommissionPolicyUpdateOne) Mutation() *CommissionPolicyMutation {
	return _u.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (_u *CommissionPolicyUpdateOne) ClearFacility() *CommissionPolicyUpdateOne {
	_u.mutation.ClearFacility()
	return _u
}

// Where appends a list predicates to the CommissionPolicyUpdate builder.
func (_u *CommissionPolicyUpdateOne) Where(ps ...predicate.CommissionPolicy) *CommissionPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommissionPolicyUpdateOne) Select(field string, fields ...string) *CommissionPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommissionPolicy entity.
func (_u *CommissionPolicyUpdateOne) Save(ctx context.Context) (*CommissionPolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionPolicyUpdateOne) SaveX(ctx context.Context) *CommissionPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommissionPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommissionPolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := commissionpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionPolicyUpdateOne) check() error {
	if v, ok := _u.mutation.PlatformMdrRate(); ok {
		if err := commissionpolicy.PlatformMdrRateValidator(v); err != nil {
			return &ValidationError{Name: "platform_mdr_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.platform_mdr_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GatewayMdrRate(); ok {
		if err := commissionpolicy.GatewayMdrRateValidator(v); err != nil {
			return &ValidationError{Name: "gateway_mdr_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.gateway_mdr_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxRate(); ok {
		if err := commissionpolicy.TaxRateValidator(v); err != nil {
			return &ValidationError{Name: "tax_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.tax_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CashCommissionType(); ok {
		if err := commissionpolicy.CashCommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "cash_commission_type", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.cash_commission_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CashCommissionValue(); ok {
		if err := commissionpolicy.CashCommissionValueValidator(v); err != nil {
			return &ValidationError{Name: "cash_commission_value", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.cash_commission_value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundingMode(); ok {
		if err := commissionpolicy.RoundingModeValidator(v); err != nil {
			return &ValidationError{Name: "rounding_mode", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.rounding_mode": %w`, err)}
		}
	}
	if _u.mutation.FacilityCleared() && len(_u.mutation.FacilityIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CommissionPolicy.facility"`)
	}
	return nil
}

func (_u *CommissionPolicyUpdateOne) sqlSave(ctx context.Context) (_node *CommissionPolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionpolicy.Table, commissionpolicy.Columns, sqlgraph.NewFieldSpec(commissionpolicy.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CommissionPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commissionpolicy.FieldID)
		for _, f := range fields {
			if !commissionpolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != commissionpolicy.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PlatformMdrRate(); ok {
		_spec.SetField(commissionpolicy.FieldPlatformMdrRate, field.TypeString, value)
	}
	if value, ok := _u.mutation.GatewayMdrRate(); ok {
		_spec.SetField(commissionpolicy.FieldGatewayMdrRate, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaxOnCommission(); ok {
		_spec.SetField(commissionpolicy.FieldTaxOnCommission, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(commissionpolicy.FieldTaxRate, field.TypeString, value)
	}
	if value, ok := _u.mutation.CashCommissionEnabled(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CashCommissionType(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CashCommissionValue(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundingMode(); ok {
		_spec.SetField(commissionpolicy.FieldRoundingMode, field.TypeEnum, value)
	}
	if _u.mutation.FacilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   commissionpolicy.FacilityTable,
			Columns: []string{commissionpolicy.FacilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   commissionpolicy.FacilityTable,
			Columns: []string{commissionpolicy.FacilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CommissionPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
