// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/google/uuid"
)

// CommissionPolicyCreate is the builder for creating a CommissionPolicy entity.
type CommissionPolicyCreate struct {
	config
	mutation *CommissionPolicyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommissionPolicyCreate) SetCreatedAt(v time.Time) *CommissionPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableCreatedAt(v *time.Time) *CommissionPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommissionPolicyCreate) SetUpdatedAt(v time.Time) *CommissionPolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableUpdatedAt(v *time.Time) *CommissionPolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFacilityID sets the "facility_id" field.
func (_c *CommissionPolicyCreate) SetFacilityID(v uuid.UUID) *CommissionPolicyCreate {
	_c.mutation.SetFacilityID(v)
	return _c
}

// SetPlatformMdrRate sets the "platform_mdr_rate" field.
func (_c *CommissionPolicyCreate) SetPlatformMdrRate(v string) *CommissionPolicyCreate {
	_c.mutation.SetPlatformMdrRate(v)
	return _c
}

// SetNillablePlatformMdrRate sets the "platform_mdr_rate" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillablePlatformMdrRate(v *string) *CommissionPolicyCreate {
	if v != nil {
		_c.SetPlatformMdrRate(*v)
	}
	return _c
}

// SetGatewayMdrRate sets the "gateway_mdr_rate" field.
func (_c *CommissionPolicyCreate) SetGatewayMdrRate(v string) *CommissionPolicyCreate {
	_c.mutation.SetGatewayMdrRate(v)
	return _c
}

// SetNillableGatewayMdrRate sets the "gateway_mdr_rate" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableGatewayMdrRate(v *string) *CommissionPolicyCreate {
	if v != nil {
		_c.SetGatewayMdrRate(*v)
	}
	return _c
}

// SetTaxOnCommission sets the "tax_on_commission" field.
func (_c *CommissionPolicyCreate) SetTaxOnCommission(v bool) *CommissionPolicyCreate {
	_c.mutation.SetTaxOnCommission(v)
	return _c
}

// SetNillableTaxOnCommission sets the "tax_on_commission" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableTaxOnCommission(v *bool) *CommissionPolicyCreate {
	if v != nil {
		_c.SetTaxOnCommission(*v)
	}
	return _c
}

// SetTaxRate sets the "tax_rate" field.
func (_c *CommissionPolicyCreate) SetTaxRate(v string) *CommissionPolicyCreate {
	_c.mutation.SetTaxRate(v)
	return _c
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableTaxRate(v *string) *CommissionPolicyCreate {
	if v != nil {
		_c.SetTaxRate(*v)
	}
	return _c
}

// SetCashCommissionEnabled sets the "cash_commission_enabled" field.
func (_c *CommissionPolicyCreate) SetCashCommissionEnabled(v bool) *CommissionPolicyCreate {
	_c.mutation.SetCashCommissionEnabled(v)
	return _c
}

// SetNillableCashCommissionEnabled sets the "cash_commission_enabled" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableCashCommissionEnabled(v *bool) *CommissionPolicyCreate {
	if v != nil {
		_c.SetCashCommissionEnabled(*v)
	}
	return _c
}

// SetCashCommissionType sets the "cash_commission_type" field.
func (_c *CommissionPolicyCreate) SetCashCommissionType(v commissionpolicy.CashCommissionType) *CommissionPolicyCreate {
	_c.mutation.SetCashCommissionType(v)
	return _c
}

// SetNillableCashCommissionType sets the "cash_commission_type" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableCashCommissionType(v *commissionpolicy.CashCommissionType) *CommissionPolicyCreate {
	if v != nil {
		_c.SetCashCommissionType(*v)
	}
	return _c
}

// SetCashCommissionValue sets the "cash_commission_value" field.
func (_c *CommissionPolicyCreate) SetCashCommissionValue(v string) *CommissionPolicyCreate {
	_c.mutation.SetCashCommissionValue(v)
	return _c
}

// SetNillableCashCommissionValue sets the "cash_commission_value" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableCashCommissionValue(v *string) *CommissionPolicyCreate {
	if v != nil {
		_c.SetCashCommissionValue(*v)
	}
	return _c
}

// SetRoundingMode sets the "rounding_mode" field.
func (_c *CommissionPolicyCreate) SetRoundingMode(v commissionpolicy.RoundingMode) *CommissionPolicyCreate {
	_c.mutation.SetRoundingMode(v)
	return _c
}

// SetNillableRoundingMode sets the "rounding_mode" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableRoundingMode(v *commissionpolicy.RoundingMode) *CommissionPolicyCreate {
	if v != nil {
		_c.SetRoundingMode(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommissionPolicyCreate) SetID(v uuid.UUID) *CommissionPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CommissionPolicyCreate) SetNillableID(v *uuid.UUID) *CommissionPolicyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_c *CommissionPolicyCreate) SetFacility(v *Facility) *CommissionPolicyCreate {
	return _c.SetFacilityID(v.ID)
}

// Mutation returns the CommissionPolicyMutation object of the builder.
func (_c *CommissionPolicyCreate) Mutation() *CommissionPolicyMutation {
	return _c.mutation
}

// Save creates the CommissionPolicy in the database.
func (_c *CommissionPolicyCreate) Save(ctx context.Context) (*CommissionPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommissionPolicyCreate) SaveX(ctx context.Context) *CommissionPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommissionPolicyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commissionpolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := commissionpolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PlatformMdrRate(); !ok {
		v := commissionpolicy.DefaultPlatformMdrRate
		_c.mutation.SetPlatformMdrRate(v)
	}
	if _, ok := _c.mutation.GatewayMdrRate(); !ok {
		v := commissionpolicy.DefaultGatewayMdrRate
		_c.mutation.SetGatewayMdrRate(v)
	}
	if _, ok := _c.mutation.TaxOnCommission(); !ok {
		v := commissionpolicy.DefaultTaxOnCommission
		_c.mutation.SetTaxOnCommission(v)
	}
	if _, ok := _c.mutation.TaxRate(); !ok {
		v := commissionpolicy.DefaultTaxRate
		_c.mutation.SetTaxRate(v)
	}
	if _, ok := _c.mutation.CashCommissionEnabled(); !ok {
		v := commissionpolicy.DefaultCashCommissionEnabled
		_c.mutation.SetCashCommissionEnabled(v)
	}
	if _, ok := _c.mutation.CashCommissionType(); !ok {
		v := commissionpolicy.DefaultCashCommissionType
		_c.mutation.SetCashCommissionType(v)
	}
	if _, ok := _c.mutation.CashCommissionValue(); !ok {
		v := commissionpolicy.DefaultCashCommissionValue
		_c.mutation.SetCashCommissionValue(v)
	}
	if _, ok := _c.mutation.RoundingMode(); !ok {
		v := commissionpolicy.DefaultRoundingMode
		_c.mutation.SetRoundingMode(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := commissionpolicy.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommissionPolicyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CommissionPolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CommissionPolicy.updated_at"`)}
	}
	if _, ok := _c.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`repo: missing required field "CommissionPolicy.facility_id"`)}
	}
	if _, ok := _c.mutation.PlatformMdrRate(); !ok {
		return &ValidationError{Name: "platform_mdr_rate", err: errors.New(`repo: missing required field "CommissionPolicy.platform_mdr_rate"`)}
	}
	if v, ok := _c.mutation.PlatformMdrRate(); ok {
		if err := commissionpolicy.PlatformMdrRateValidator(v); err != nil {
			return &ValidationError{Name: "platform_mdr_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.platform_mdr_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GatewayMdrRate(); !ok {
		return &ValidationError{Name: "gateway_mdr_rate", err: errors.New(`repo: missing required field "CommissionPolicy.gateway_mdr_rate"`)}
	}
	if v, ok := _c.mutation.GatewayMdrRate(); ok {
		if err := commissionpolicy.GatewayMdrRateValidator(v); err != nil {
			return &ValidationError{Name: "gateway_mdr_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.gateway_mdr_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaxOnCommission(); !ok {
		return &ValidationError{Name: "tax_on_commission", err: errors.New(`repo: missing required field "CommissionPolicy.tax_on_commission"`)}
	}
	if _, ok := _c.mutation.TaxRate(); !ok {
		return &ValidationError{Name: "tax_rate", err: errors.New(`repo: missing required field "CommissionPolicy.tax_rate"`)}
	}
	if v, ok := _c.mutation.TaxRate(); ok {
		if err := commissionpolicy.TaxRateValidator(v); err != nil {
			return &ValidationError{Name: "tax_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.tax_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CashCommissionEnabled(); !ok {
		return &ValidationError{Name: "cash_commission_enabled", err: errors.New(`repo: missing required field "CommissionPolicy.cash_commission_enabled"`)}
	}
	if _, ok := _c.mutation.CashCommissionType(); !ok {
		return &ValidationError{Name: "cash_commission_type", err: errors.New(`repo: missing required field "CommissionPolicy.cash_commission_type"`)}
	}
	if v, ok := _c.mutation.CashCommissionType(); ok {
		if err := commissionpolicy.CashCommissionTypeValidator(v); err != nil {
			return &ValidationError{Name: "cash_commission_type", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.cash_commission_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CashCommissionValue(); !ok {
		return &ValidationError{Name: "cash_commission_value", err: errors.New(`repo: missing required field "CommissionPolicy.cash_commission_value"`)}
	}
	if v, ok := _c.mutation.CashCommissionValue(); ok {
		if err := commissionpolicy.CashCommissionValueValidator(v); err != nil {
			return &ValidationError{Name: "cash_commission_value", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.cash_commission_value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundingMode(); !ok {
		return &ValidationError{Name: "rounding_mode", err: errors.New(`repo: missing required field "CommissionPolicy.rounding_mode"`)}
	}
	if v, ok := _c.mutation.RoundingMode(); ok {
		if err := commissionpolicy.RoundingModeValidator(v); err != nil {
			return &ValidationError{Name: "rounding_mode", err: fmt.Errorf(`repo: validator failed for field "CommissionPolicy.rounding_mode": %w`, err)}
		}
	}
	if len(_c.mutation.FacilityIDs()) == 0 {
		return &ValidationError{Name: "facility", err: errors.New(`repo: missing required edge "CommissionPolicy.facility"`)}
	}
	return nil
}

func (_c *CommissionPolicyCreate) sqlSave(ctx context.Context) (*CommissionPolicy, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommissionPolicyCreate) createSpec() (*CommissionPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &CommissionPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commissionpolicy.Table, sqlgraph.NewFieldSpec(commissionpolicy.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commissionpolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(commissionpolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PlatformMdrRate(); ok {
		_spec.SetField(commissionpolicy.FieldPlatformMdrRate, field.TypeString, value)
		_node.PlatformMdrRate = value
	}
	if value, ok := _c.mutation.GatewayMdrRate(); ok {
		_spec.SetField(commissionpolicy.FieldGatewayMdrRate, field.TypeString, value)
		_node.GatewayMdrRate = value
	}
	if value, ok := _c.mutation.TaxOnCommission(); ok {
		_spec.SetField(commissionpolicy.FieldTaxOnCommission, field.TypeBool, value)
		_node.TaxOnCommission = value
	}
	if value, ok := _c.mutation.TaxRate(); ok {
		_spec.SetField(commissionpolicy.FieldTaxRate, field.TypeString, value)
		_node.TaxRate = value
	}
	if value, ok := _c.mutation.CashCommissionEnabled(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionEnabled, field.TypeBool, value)
		_node.CashCommissionEnabled = value
	}
	if value, ok := _c.mutation.CashCommissionType(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionType, field.TypeEnum, value)
		_node.CashCommissionType = value
	}
	if value, ok := _c.mutation.CashCommissionValue(); ok {
		_spec.SetField(commissionpolicy.FieldCashCommissionValue, field.TypeString, value)
		_node.CashCommissionValue = value
	}
	if value, ok := _c.mutation.RoundingMode(); ok {
		_spec.SetField(commissionpolicy.FieldRoundingMode, field.TypeEnum, value)
		_node.RoundingMode = value
	}
	if nodes := _c.mutation.FacilityIDs(); len(nodes) > 0 {
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
		_node.FacilityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CommissionPolicy.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommissionPolicyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CommissionPolicyCreate) OnConflict(opts ...sql.ConflictOption) *CommissionPolicyUpsertOne {
	_c.conflict = opts
	return &CommissionPolicyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CommissionPolicy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommissionPolicyCreate) OnConflictColumns(columns ...string) *CommissionPolicyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommissionPolicyUpsertOne{
		create: _c,
	}
}

type (
	// CommissionPolicyUpsertOne is the builder for "upsert"-ing
	//  one CommissionPolicy node.
	CommissionPolicyUpsertOne struct {
		create *CommissionPolicyCreate
	}

	// CommissionPolicyUpsert is the "OnConflict" setter.
	CommissionPolicyUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CommissionPolicyUpsert) SetUpdatedAt(v time.Time) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateUpdatedAt() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldUpdatedAt)
	return u
}

// SetFacilityID sets the "facility_id" field.
func (u *CommissionPolicyUpsert) SetFacilityID(v uuid.UUID) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldFacilityID, v)
	return u
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateFacilityID() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldFacilityID)
	return u
}

// SetPlatformMdrRate sets the "platform_mdr_rate" field.
func (u *CommissionPolicyUpsert) SetPlatformMdrRate(v string) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldPlatformMdrRate, v)
	return u
}

// UpdatePlatformMdrRate sets the "platform_mdr_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdatePlatformMdrRate() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldPlatformMdrRate)
	return u
}

// SetGatewayMdrRate sets the "gateway_mdr_rate" field.
func (u *CommissionPolicyUpsert) SetGatewayMdrRate(v string) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldGatewayMdrRate, v)
	return u
}

// UpdateGatewayMdrRate sets the "gateway_mdr_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateGatewayMdrRate() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldGatewayMdrRate)
	return u
}

// SetTaxOnCommission sets the "tax_on_commission" field.
func (u *CommissionPolicyUpsert) SetTaxOnCommission(v bool) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldTaxOnCommission, v)
	return u
}

// UpdateTaxOnCommission sets the "tax_on_commission" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateTaxOnCommission() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldTaxOnCommission)
	return u
}

// SetTaxRate sets the "tax_rate" field.
func (u *CommissionPolicyUpsert) SetTaxRate(v string) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldTaxRate, v)
	return u
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateTaxRate() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldTaxRate)
	return u
}

// SetCashCommissionEnabled sets the "cash_commission_enabled" field.
func (u *CommissionPolicyUpsert) SetCashCommissionEnabled(v bool) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldCashCommissionEnabled, v)
	return u
}

// UpdateCashCommissionEnabled sets the "cash_commission_enabled" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateCashCommissionEnabled() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldCashCommissionEnabled)
	return u
}

// SetCashCommissionType sets the "cash_commission_type" field.
func (u *CommissionPolicyUpsert) SetCashCommissionType(v commissionpolicy.CashCommissionType) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldCashCommissionType, v)
	return u
}

// UpdateCashCommissionType sets the "cash_commission_type" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateCashCommissionType() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldCashCommissionType)
	return u
}

// SetCashCommissionValue sets the "cash_commission_value" field.
func (u *CommissionPolicyUpsert) SetCashCommissionValue(v string) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldCashCommissionValue, v)
	return u
}

// UpdateCashCommissionValue sets the "cash_commission_value" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateCashCommissionValue() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldCashCommissionValue)
	return u
}

// SetRoundingMode sets the "rounding_mode" field.
func (u *CommissionPolicyUpsert) SetRoundingMode(v commissionpolicy.RoundingMode) *CommissionPolicyUpsert {
	u.Set(commissionpolicy.FieldRoundingMode, v)
	return u
}

// UpdateRoundingMode sets the "rounding_mode" field to the value that was provided on create.
func (u *CommissionPolicyUpsert) UpdateRoundingMode() *CommissionPolicyUpsert {
	u.SetExcluded(commissionpolicy.FieldRoundingMode)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CommissionPolicy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(commissionpolicy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommissionPolicyUpsertOne) UpdateNewValues() *CommissionPolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(commissionpolicy.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(commissionpolicy.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CommissionPolicy.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CommissionPolicyUpsertOne) Ignore() *CommissionPolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommissionPolicyUpsertOne) DoNothing() *CommissionPolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommissionPolicyCreate.OnConflict
// documentation for more info.
func (u *CommissionPolicyUpsertOne) Update(set func(*CommissionPolicyUpsert)) *CommissionPolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommissionPolicyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommissionPolicyUpsertOne) SetUpdatedAt(v time.Time) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateUpdatedAt() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFacilityID sets the "facility_id" field.
func (u *CommissionPolicyUpsertOne) SetFacilityID(v uuid.UUID) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateFacilityID() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateFacilityID()
	})
}

// SetPlatformMdrRate sets the "platform_mdr_rate" field.
func (u *CommissionPolicyUpsertOne) SetPlatformMdrRate(v string) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetPlatformMdrRate(v)
	})
}

// UpdatePlatformMdrRate sets the "platform_mdr_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdatePlatformMdrRate() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdatePlatformMdrRate()
	})
}

// SetGatewayMdrRate sets the "gateway_mdr_rate" field.
func (u *CommissionPolicyUpsertOne) SetGatewayMdrRate(v string) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetGatewayMdrRate(v)
	})
}

// UpdateGatewayMdrRate sets the "gateway_mdr_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateGatewayMdrRate() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateGatewayMdrRate()
	})
}

// SetTaxOnCommission sets the "tax_on_commission" field.
func (u *CommissionPolicyUpsertOne) SetTaxOnCommission(v bool) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetTaxOnCommission(v)
	})
}

// UpdateTaxOnCommission sets the "tax_on_commission" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateTaxOnCommission() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateTaxOnCommission()
	})
}

// SetTaxRate sets the "tax_rate" field.
func (u *CommissionPolicyUpsertOne) SetTaxRate(v string) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetTaxRate(v)
	})
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateTaxRate() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateTaxRate()
	})
}

// SetCashCommissionEnabled sets the "cash_commission_enabled" field.
func (u *CommissionPolicyUpsertOne) SetCashCommissionEnabled(v bool) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetCashCommissionEnabled(v)
	})
}

// UpdateCashCommissionEnabled sets the "cash_commission_enabled" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateCashCommissionEnabled() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateCashCommissionEnabled()
	})
}

// SetCashCommissionType sets the "cash_commission_type" field.
func (u *CommissionPolicyUpsertOne) SetCashCommissionType(v commissionpolicy.CashCommissionType) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetCashCommissionType(v)
	})
}

// UpdateCashCommissionType sets the "cash_commission_type" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateCashCommissionType() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateCashCommissionType()
	})
}

// SetCashCommissionValue sets the "cash_commission_value" field.
func (u *CommissionPolicyUpsertOne) SetCashCommissionValue(v string) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetCashCommissionValue(v)
	})
}

// UpdateCashCommissionValue sets the "cash_commission_value" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateCashCommissionValue() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateCashCommissionValue()
	})
}

// SetRoundingMode sets the "rounding_mode" field.
func (u *CommissionPolicyUpsertOne) SetRoundingMode(v commissionpolicy.RoundingMode) *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetRoundingMode(v)
	})
}

// UpdateRoundingMode sets the "rounding_mode" field to the value that was provided on create.
func (u *CommissionPolicyUpsertOne) UpdateRoundingMode() *CommissionPolicyUpsertOne {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateRoundingMode()
	})
}

// Exec executes the query.
func (u *CommissionPolicyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CommissionPolicyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommissionPolicyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CommissionPolicyUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CommissionPolicyUpsertOne.ID is not supported by MySQL driver. Use CommissionPolicyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CommissionPolicyUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CommissionPolicyCreateBulk is the builder for creating many CommissionPolicy entities in bulk.
type CommissionPolicyCreateBulk struct {
	config
	err      error
	builders []*CommissionPolicyCreate
	conflict []sql.ConflictOption
}

// Save creates the CommissionPolicy entities in the database.
func (_c *CommissionPolicyCreateBulk) Save(ctx context.Context) ([]*CommissionPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommissionPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommissionPolicyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CommissionPolicyCreateBulk) SaveX(ctx context.Context) []*CommissionPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CommissionPolicy.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommissionPolicyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CommissionPolicyCreateBulk) OnConflict(opts ...sql.ConflictOption) *CommissionPolicyUpsertBulk {
	_c.conflict = opts
	return &CommissionPolicyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CommissionPolicy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommissionPolicyCreateBulk) OnConflictColumns(columns ...string) *CommissionPolicyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommissionPolicyUpsertBulk{
		create: _c,
	}
}

// CommissionPolicyUpsertBulk is the builder for "upsert"-ing
// a bulk of CommissionPolicy nodes.
type CommissionPolicyUpsertBulk struct {
	create *CommissionPolicyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CommissionPolicy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(commissionpolicy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommissionPolicyUpsertBulk) UpdateNewValues() *CommissionPolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(commissionpolicy.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(commissionpolicy.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CommissionPolicy.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CommissionPolicyUpsertBulk) Ignore() *CommissionPolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommissionPolicyUpsertBulk) DoNothing() *CommissionPolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommissionPolicyCreateBulk.OnConflict
// documentation for more info.
func (u *CommissionPolicyUpsertBulk) Update(set func(*CommissionPolicyUpsert)) *CommissionPolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommissionPolicyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommissionPolicyUpsertBulk) SetUpdatedAt(v time.Time) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateUpdatedAt() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFacilityID sets the "facility_id" field.
func (u *CommissionPolicyUpsertBulk) SetFacilityID(v uuid.UUID) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateFacilityID() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateFacilityID()
	})
}

// SetPlatformMdrRate sets the "platform_mdr_rate" field.
func (u *CommissionPolicyUpsertBulk) SetPlatformMdrRate(v string) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetPlatformMdrRate(v)
	})
}

// UpdatePlatformMdrRate sets the "platform_mdr_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdatePlatformMdrRate() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdatePlatformMdrRate()
	})
}

// SetGatewayMdrRate sets the "gateway_mdr_rate" field.
func (u *CommissionPolicyUpsertBulk) SetGatewayMdrRate(v string) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetGatewayMdrRate(v)
	})
}

// UpdateGatewayMdrRate sets the "gateway_mdr_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateGatewayMdrRate() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateGatewayMdrRate()
	})
}

// SetTaxOnCommission sets the "tax_on_commission" field.
func (u *CommissionPolicyUpsertBulk) SetTaxOnCommission(v bool) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetTaxOnCommission(v)
	})
}

// UpdateTaxOnCommission sets the "tax_on_commission" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateTaxOnCommission() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateTaxOnCommission()
	})
}

// SetTaxRate sets the "tax_rate" field.
func (u *CommissionPolicyUpsertBulk) SetTaxRate(v string) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetTaxRate(v)
	})
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateTaxRate() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateTaxRate()
	})
}

// SetCashCommissionEnabled sets the "cash_commission_enabled" field.
func (u *CommissionPolicyUpsertBulk) SetCashCommissionEnabled(v bool) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetCashCommissionEnabled(v)
	})
}

// UpdateCashCommissionEnabled sets the "cash_commission_enabled" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateCashCommissionEnabled() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateCashCommissionEnabled()
	})
}

// SetCashCommissionType sets the "cash_commission_type" field.
func (u *CommissionPolicyUpsertBulk) SetCashCommissionType(v commissionpolicy.CashCommissionType) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetCashCommissionType(v)
	})
}

// UpdateCashCommissionType sets the "cash_commission_type" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateCashCommissionType() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateCashCommissionType()
	})
}

// SetCashCommissionValue sets the "cash_commission_value" field.
func (u *CommissionPolicyUpsertBulk) SetCashCommissionValue(v string) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetCashCommissionValue(v)
	})
}

// UpdateCashCommissionValue sets the "cash_commission_value" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateCashCommissionValue() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateCashCommissionValue()
	})
}

// SetRoundingMode sets the "rounding_mode" field.
func (u *CommissionPolicyUpsertBulk) SetRoundingMode(v commissionpolicy.RoundingMode) *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.SetRoundingMode(v)
	})
}

// UpdateRoundingMode sets the "rounding_mode" field to the value that was provided on create.
func (u *CommissionPolicyUpsertBulk) UpdateRoundingMode() *CommissionPolicyUpsertBulk {
	return u.Update(func(s *CommissionPolicyUpsert) {
		s.UpdateRoundingMode()
	})
}

// Exec executes the query.
func (u *CommissionPolicyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CommissionPolicyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CommissionPolicyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommissionPolicyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
