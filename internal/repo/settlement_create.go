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
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/google/uuid"
)

// SettlementCreate is the builder for creating a Settlement entity.
type SettlementCreate struct {
	config
	mutation *SettlementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SettlementCreate) SetCreatedAt(v time.Time) *SettlementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableCreatedAt(v *time.Time) *SettlementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SettlementCreate) SetUpdatedAt(v time.Time) *SettlementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableUpdatedAt(v *time.Time) *SettlementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFacilityID sets the "facility_id" field.
func (_c *SettlementCreate) SetFacilityID(v uuid.UUID) *SettlementCreate {
	_c.mutation.SetFacilityID(v)
	return _c
}

// SetSettlementType sets the "settlement_type" field.
func (_c *SettlementCreate) SetSettlementType(v settlement.SettlementType) *SettlementCreate {
	_c.mutation.SetSettlementType(v)
	return _c
}

// SetPeriodFrom sets the "period_from" field.
func (_c *SettlementCreate) SetPeriodFrom(v time.Time) *SettlementCreate {
	_c.mutation.SetPeriodFrom(v)
	return _c
}

// SetPeriodTo sets the "period_to" field.
func (_c *SettlementCreate) SetPeriodTo(v time.Time) *SettlementCreate {
	_c.mutation.SetPeriodTo(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SettlementCreate) SetStatus(v settlement.Status) *SettlementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableStatus(v *settlement.Status) *SettlementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalCollections sets the "total_collections" field.
func (_c *SettlementCreate) SetTotalCollections(v int64) *SettlementCreate {
	_c.mutation.SetTotalCollections(v)
	return _c
}

// SetNillableTotalCollections sets the "total_collections" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableTotalCollections(v *int64) *SettlementCreate {
	if v != nil {
		_c.SetTotalCollections(*v)
	}
	return _c
}

// SetTotalCommission sets the "total_commission" field.
func (_c *SettlementCreate) SetTotalCommission(v int64) *SettlementCreate {
	_c.mutation.SetTotalCommission(v)
	return _c
}

// SetNillableTotalCommission sets the "total_commission" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableTotalCommission(v *int64) *SettlementCreate {
	if v != nil {
		_c.SetTotalCommission(*v)
	}
	return _c
}

// SetFacilityShare sets the "facility_share" field.
func (_c *SettlementCreate) SetFacilityShare(v int64) *SettlementCreate {
	_c.mutation.SetFacilityShare(v)
	return _c
}

// SetNillableFacilityShare sets the "facility_share" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableFacilityShare(v *int64) *SettlementCreate {
	if v != nil {
		_c.SetFacilityShare(*v)
	}
	return _c
}

// SetPlatformShare sets the "platform_share" field.
func (_c *SettlementCreate) SetPlatformShare(v int64) *SettlementCreate {
	_c.mutation.SetPlatformShare(v)
	return _c
}

// SetNillablePlatformShare sets the "platform_share" field if the given value is not nil.
func (_c *SettlementCreate) SetNillablePlatformShare(v *int64) *SettlementCreate {
	if v != nil {
		_c.SetPlatformShare(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *SettlementCreate) SetCurrency(v string) *SettlementCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *SettlementCreate) SetSubmittedBy(v uuid.UUID) *SettlementCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableSubmittedBy(v *uuid.UUID) *SettlementCreate {
	if v != nil {
		_c.SetSubmittedBy(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *SettlementCreate) SetApprovedBy(v uuid.UUID) *SettlementCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableApprovedBy(v *uuid.UUID) *SettlementCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *SettlementCreate) SetApprovedAt(v time.Time) *SettlementCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableApprovedAt(v *time.Time) *SettlementCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetPaidBy sets the "paid_by" field.
func (_c *SettlementCreate) SetPaidBy(v uuid.UUID) *SettlementCreate {
	_c.mutation.SetPaidBy(v)
	return _c
}

// SetNillablePaidBy sets the "paid_by" field if the given value is not nil.
func (_c *SettlementCreate) SetNillablePaidBy(v *uuid.UUID) *SettlementCreate {
	if v != nil {
		_c.SetPaidBy(*v)
	}
	return _c
}

// SetPaidAt sets the "paid_at" field.
func (_c *SettlementCreate) SetPaidAt(v time.Time) *SettlementCreate {
	_c.mutation.SetPaidAt(v)
	return _c
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_c *SettlementCreate) SetNillablePaidAt(v *time.Time) *SettlementCreate {
	if v != nil {
		_c.SetPaidAt(*v)
	}
	return _c
}

// SetPaymentReference sets the "payment_reference" field.
func (_c *SettlementCreate) SetPaymentReference(v string) *SettlementCreate {
	_c.mutation.SetPaymentReference(v)
	return _c
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (_c *SettlementCreate) SetNillablePaymentReference(v *string) *SettlementCreate {
	if v != nil {
		_c.SetPaymentReference(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *SettlementCreate) SetPaymentMethod(v string) *SettlementCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *SettlementCreate) SetNillablePaymentMethod(v *string) *SettlementCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetCancelledBy sets the "cancelled_by" field.
func (_c *SettlementCreate) SetCancelledBy(v uuid.UUID) *SettlementCreate {
	_c.mutation.SetCancelledBy(v)
	return _c
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableCancelledBy(v *uuid.UUID) *SettlementCreate {
	if v != nil {
		_c.SetCancelledBy(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *SettlementCreate) SetCancelledAt(v time.Time) *SettlementCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableCancelledAt(v *time.Time) *SettlementCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SettlementCreate) SetNotes(v string) *SettlementCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableNotes(v *string) *SettlementCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SettlementCreate) SetID(v uuid.UUID) *SettlementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SettlementCreate) SetNillableID(v *uuid.UUID) *SettlementCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_c *SettlementCreate) SetFacility(v *Facility) *SettlementCreate {
	return _c.SetFacilityID(v.ID)
}

// AddItemIDs adds the "items" edge to the SettlementItem entity by IDs.
func (_c *SettlementCreate) AddItemIDs(ids ...uuid.UUID) *SettlementCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the SettlementItem entity.
func (_c *SettlementCreate) AddItems(v ...*SettlementItem) *SettlementCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the SettlementMutation object of the builder.
func (_c *SettlementCreate) Mutation() *SettlementMutation {
	return _c.mutation
}

// Save creates the Settlement in the database.
func (_c *SettlementCreate) Save(ctx context.Context) (*Settlement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SettlementCreate) SaveX(ctx context.Context) *Settlement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SettlementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SettlementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SettlementCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := settlement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := settlement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := settlement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalCollections(); !ok {
		v := settlement.DefaultTotalCollections
		_c.mutation.SetTotalCollections(v)
	}
	if _, ok := _c.mutation.TotalCommission(); !ok {
		v := settlement.DefaultTotalCommission
		_c.mutation.SetTotalCommission(v)
	}
	if _, ok := _c.mutation.FacilityShare(); !ok {
		v := settlement.DefaultFacilityShare
		_c.mutation.SetFacilityShare(v)
	}
	if _, ok := _c.mutation.PlatformShare(); !ok {
		v := settlement.DefaultPlatformShare
		_c.mutation.SetPlatformShare(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := settlement.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SettlementCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Settlement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Settlement.updated_at"`)}
	}
	if _, ok := _c.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`repo: missing required field "Settlement.facility_id"`)}
	}
	if _, ok := _c.mutation.SettlementType(); !ok {
		return &ValidationError{Name: "settlement_type", err: errors.New(`repo: missing required field "Settlement.settlement_type"`)}
	}
	if v, ok := _c.mutation.SettlementType(); ok {
		if err := settlement.SettlementTypeValidator(v); err != nil {
			return &ValidationError{Name: "settlement_type", err: fmt.Errorf(`repo: validator failed for field "Settlement.settlement_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PeriodFrom(); !ok {
		return &ValidationError{Name: "period_from", err: errors.New(`repo: missing required field "Settlement.period_from"`)}
	}
	if _, ok := _c.mutation.PeriodTo(); !ok {
		return &ValidationError{Name: "period_to", err: errors.New(`repo: missing required field "Settlement.period_to"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Settlement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := settlement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Settlement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCollections(); !ok {
		return &ValidationError{Name: "total_collections", err: errors.New(`repo: missing required field "Settlement.total_collections"`)}
	}
	if _, ok := _c.mutation.TotalCommission(); !ok {
		return &ValidationError{Name: "total_commission", err: errors.New(`repo: missing required field "Settlement.total_commission"`)}
	}
	if _, ok := _c.mutation.FacilityShare(); !ok {
		return &ValidationError{Name: "facility_share", err: errors.New(`repo: missing required field "Settlement.facility_share"`)}
	}
	if _, ok := _c.mutation.PlatformShare(); !ok {
		return &ValidationError{Name: "platform_share", err: errors.New(`repo: missing required field "Settlement.platform_share"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "Settlement.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := settlement.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Settlement.currency": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PaymentReference(); ok {
		if err := settlement.PaymentReferenceValidator(v); err != nil {
			return &ValidationError{Name: "payment_reference", err: fmt.Errorf(`repo: validator failed for field "Settlement.payment_reference": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PaymentMethod(); ok {
		if err := settlement.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Settlement.payment_method": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Notes(); ok {
		if err := settlement.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`repo: validator failed for field "Settlement.notes": %w`, err)}
		}
	}
	if len(_c.mutation.FacilityIDs()) == 0 {
		return &ValidationError{Name: "facility", err: errors.New(`repo: missing required edge "Settlement.facility"`)}
	}
	return nil
}

func (_c *SettlementCreate) sqlSave(ctx context.Context) (*Settlement, error) {
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

func (_c *SettlementCreate) createSpec() (*Settlement, *sqlgraph.CreateSpec) {
	var (
		_node = &Settlement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(settlement.Table, sqlgraph.NewFieldSpec(settlement.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(settlement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(settlement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SettlementType(); ok {
		_spec.SetField(settlement.FieldSettlementType, field.TypeEnum, value)
		_node.SettlementType = value
	}
	if value, ok := _c.mutation.PeriodFrom(); ok {
		_spec.SetField(settlement.FieldPeriodFrom, field.TypeTime, value)
		_node.PeriodFrom = value
	}
	if value, ok := _c.mutation.PeriodTo(); ok {
		_spec.SetField(settlement.FieldPeriodTo, field.TypeTime, value)
		_node.PeriodTo = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(settlement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalCollections(); ok {
		_spec.SetField(settlement.FieldTotalCollections, field.TypeInt64, value)
		_node.TotalCollections = value
	}
	if value, ok := _c.mutation.TotalCommission(); ok {
		_spec.SetField(settlement.FieldTotalCommission, field.TypeInt64, value)
		_node.TotalCommission = value
	}
	if value, ok := _c.mutation.FacilityShare(); ok {
		_spec.SetField(settlement.FieldFacilityShare, field.TypeInt64, value)
		_node.FacilityShare = value
	}
	if value, ok := _c.mutation.PlatformShare(); ok {
		_spec.SetField(settlement.FieldPlatformShare, field.TypeInt64, value)
		_node.PlatformShare = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(settlement.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.SubmittedBy(); ok {
		_spec.SetField(settlement.FieldSubmittedBy, field.TypeUUID, value)
		_node.SubmittedBy = &value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(settlement.FieldApprovedBy, field.TypeUUID, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(settlement.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.PaidBy(); ok {
		_spec.SetField(settlement.FieldPaidBy, field.TypeUUID, value)
		_node.PaidBy = &value
	}
	if value, ok := _c.mutation.PaidAt(); ok {
		_spec.SetField(settlement.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := _c.mutation.PaymentReference(); ok {
		_spec.SetField(settlement.FieldPaymentReference, field.TypeString, value)
		_node.PaymentReference = &value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(settlement.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = &value
	}
	if value, ok := _c.mutation.CancelledBy(); ok {
		_spec.SetField(settlement.FieldCancelledBy, field.TypeUUID, value)
		_node.CancelledBy = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(settlement.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(settlement.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if nodes := _c.mutation.FacilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlement.FacilityTable,
			Columns: []string{settlement.FacilityColumn},
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
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   settlement.ItemsTable,
			Columns: []string{settlement.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settlementitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Settlement.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SettlementUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SettlementCreate) OnConflict(opts ...sql.ConflictOption) *SettlementUpsertOne {
	_c.conflict = opts
	return &SettlementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Settlement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SettlementCreate) OnConflictColumns(columns ...string) *SettlementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SettlementUpsertOne{
		create: _c,
	}
}

type (
	// SettlementUpsertOne is the builder for "upsert"-ing
	//  one Settlement node.
	SettlementUpsertOne struct {
		create *SettlementCreate
	}

	// SettlementUpsert is the "OnConflict" setter.
	SettlementUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SettlementUpsert) SetUpdatedAt(v time.Time) *SettlementUpsert {
	u.Set(settlement.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateUpdatedAt() *SettlementUpsert {
	u.SetExcluded(settlement.FieldUpdatedAt)
	return u
}

// SetFacilityID sets the "facility_id" field.
func (u *SettlementUpsert) SetFacilityID(v uuid.UUID) *SettlementUpsert {
	u.Set(settlement.FieldFacilityID, v)
	return u
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateFacilityID() *SettlementUpsert {
	u.SetExcluded(settlement.FieldFacilityID)
	return u
}

// SetSettlementType sets the "settlement_type" field.
func (u *SettlementUpsert) SetSettlementType(v settlement.SettlementType) *SettlementUpsert {
	u.Set(settlement.FieldSettlementType, v)
	return u
}

// UpdateSettlementType sets the "settlement_type" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateSettlementType() *SettlementUpsert {
	u.SetExcluded(settlement.FieldSettlementType)
	return u
}

// SetPeriodFrom sets the "period_from" field.
func (u *SettlementUpsert) SetPeriodFrom(v time.Time) *SettlementUpsert {
	u.Set(settlement.FieldPeriodFrom, v)
	return u
}

// UpdatePeriodFrom sets the "period_from" field to the value that was provided on create.
func (u *SettlementUpsert) UpdatePeriodFrom() *SettlementUpsert {
	u.SetExcluded(settlement.FieldPeriodFrom)
	return u
}

// SetPeriodTo sets the "period_to" field.
func (u *SettlementUpsert) SetPeriodTo(v time.Time) *SettlementUpsert {
	u.Set(settlement.FieldPeriodTo, v)
	return u
}

// UpdatePeriodTo sets the "period_to" field to the value that was provided on create.
func (u *SettlementUpsert) UpdatePeriodTo() *SettlementUpsert {
	u.SetExcluded(settlement.FieldPeriodTo)
	return u
}

// SetStatus sets the "status" field.
func (u *SettlementUpsert) SetStatus(v settlement.Status) *SettlementUpsert {
	u.Set(settlement.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateStatus() *SettlementUpsert {
	u.SetExcluded(settlement.FieldStatus)
	return u
}

// SetTotalCollections sets the "total_collections" field.
func (u *SettlementUpsert) SetTotalCollections(v int64) *SettlementUpsert {
	u.Set(settlement.FieldTotalCollections, v)
	return u
}

// UpdateTotalCollections sets the "total_collections" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateTotalCollections() *SettlementUpsert {
	u.SetExcluded(settlement.FieldTotalCollections)
	return u
}

// AddTotalCollections adds v to the "total_collections" field.
func (u *SettlementUpsert) AddTotalCollections(v int64) *SettlementUpsert {
	u.Add(settlement.FieldTotalCollections, v)
	return u
}

// SetTotalCommission sets the "total_commission" field.
func (u *SettlementUpsert) SetTotalCommission(v int64) *SettlementUpsert {
	u.Set(settlement.FieldTotalCommission, v)
	return u
}

// UpdateTotalCommission sets the "total_commission" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateTotalCommission() *SettlementUpsert {
	u.SetExcluded(settlement.FieldTotalCommission)
	return u
}

// AddTotalCommission adds v to the "total_commission" field.
func (u *SettlementUpsert) AddTotalCommission(v int64) *SettlementUpsert {
	u.Add(settlement.FieldTotalCommission, v)
	return u
}

// SetFacilityShare sets the "facility_share" field.
func (u *SettlementUpsert) SetFacilityShare(v int64) *SettlementUpsert {
	u.Set(settlement.FieldFacilityShare, v)
	return u
}

// UpdateFacilityShare sets the "facility_share" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateFacilityShare() *SettlementUpsert {
	u.SetExcluded(settlement.FieldFacilityShare)
	return u
}

// AddFacilityShare adds v to the "facility_share" field.
func (u *SettlementUpsert) AddFacilityShare(v int64) *SettlementUpsert {
	u.Add(settlement.FieldFacilityShare, v)
	return u
}

// SetPlatformShare sets the "platform_share" field.
func (u *SettlementUpsert) SetPlatformShare(v int64) *SettlementUpsert {
	u.Set(settlement.FieldPlatformShare, v)
	return u
}

// UpdatePlatformShare sets the "platform_share" field to the value that was provided on create.
func (u *SettlementUpsert) UpdatePlatformShare() *SettlementUpsert {
	u.SetExcluded(settlement.FieldPlatformShare)
	return u
}

// AddPlatformShare adds v to the "platform_share" field.
func (u *SettlementUpsert) AddPlatformShare(v int64) *SettlementUpsert {
	u.Add(settlement.FieldPlatformShare, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *SettlementUpsert) SetCurrency(v string) *SettlementUpsert {
	u.Set(settlement.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateCurrency() *SettlementUpsert {
	u.SetExcluded(settlement.FieldCurrency)
	return u
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *SettlementUpsert) SetSubmittedBy(v uuid.UUID) *SettlementUpsert {
	u.Set(settlement.FieldSubmittedBy, v)
	return u
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateSubmittedBy() *SettlementUpsert {
	u.SetExcluded(settlement.FieldSubmittedBy)
	return u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *SettlementUpsert) ClearSubmittedBy() *SettlementUpsert {
	u.SetNull(settlement.FieldSubmittedBy)
	return u
}

// SetApprovedBy sets the "approved_by" field.
func (u *SettlementUpsert) SetApprovedBy(v uuid.UUID) *SettlementUpsert {
	u.Set(settlement.FieldApprovedBy, v)
	return u
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateApprovedBy() *SettlementUpsert {
	u.SetExcluded(settlement.FieldApprovedBy)
	return u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *SettlementUpsert) ClearApprovedBy() *SettlementUpsert {
	u.SetNull(settlement.FieldApprovedBy)
	return u
}

// SetApprovedAt sets the "approved_at" field.
func (u *SettlementUpsert) SetApprovedAt(v time.Time) *SettlementUpsert {
	u.Set(settlement.FieldApprovedAt, v)
	return u
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateApprovedAt() *SettlementUpsert {
	u.SetExcluded(settlement.FieldApprovedAt)
	return u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *SettlementUpsert) ClearApprovedAt() *SettlementUpsert {
	u.SetNull(settlement.FieldApprovedAt)
	return u
}

// SetPaidBy sets the "paid_by" field.
func (u *SettlementUpsert) SetPaidBy(v uuid.UUID) *SettlementUpsert {
	u.Set(settlement.FieldPaidBy, v)
	return u
}

// UpdatePaidBy sets the "paid_by" field to the value that was provided on create.
func (u *SettlementUpsert) UpdatePaidBy() *SettlementUpsert {
	u.SetExcluded(settlement.FieldPaidBy)
	return u
}

// ClearPaidBy clears the value of the "paid_by" field.
func (u *SettlementUpsert) ClearPaidBy() *SettlementUpsert {
	u.SetNull(settlement.FieldPaidBy)
	return u
}

// SetPaidAt sets the "paid_at" field.
func (u *SettlementUpsert) SetPaidAt(v time.Time) *SettlementUpsert {
	u.Set(settlement.FieldPaidAt, v)
	return u
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *SettlementUpsert) UpdatePaidAt() *SettlementUpsert {
	u.SetExcluded(settlement.FieldPaidAt)
	return u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *SettlementUpsert) ClearPaidAt() *SettlementUpsert {
	u.SetNull(settlement.FieldPaidAt)
	return u
}

// SetPaymentReference sets the "payment_reference" field.
func (u *SettlementUpsert) SetPaymentReference(v string) *SettlementUpsert {
	u.Set(settlement.FieldPaymentReference, v)
	return u
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *SettlementUpsert) UpdatePaymentReference() *SettlementUpsert {
	u.SetExcluded(settlement.FieldPaymentReference)
	return u
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (u *SettlementUpsert) ClearPaymentReference() *SettlementUpsert {
	u.SetNull(settlement.FieldPaymentReference)
	return u
}

// SetPaymentMethod sets the "payment_method" field.
func (u *SettlementUpsert) SetPaymentMethod(v string) *SettlementUpsert {
	u.Set(settlement.FieldPaymentMethod, v)
	return u
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *SettlementUpsert) UpdatePaymentMethod() *SettlementUpsert {
	u.SetExcluded(settlement.FieldPaymentMethod)
	return u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *SettlementUpsert) ClearPaymentMethod() *SettlementUpsert {
	u.SetNull(settlement.FieldPaymentMethod)
	return u
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *SettlementUpsert) SetCancelledBy(v uuid.UUID) *SettlementUpsert {
	u.Set(settlement.FieldCancelledBy, v)
	return u
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateCancelledBy() *SettlementUpsert {
	u.SetExcluded(settlement.FieldCancelledBy)
	return u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *SettlementUpsert) ClearCancelledBy() *SettlementUpsert {
	u.SetNull(settlement.FieldCancelledBy)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SettlementUpsert) SetCancelledAt(v time.Time) *SettlementUpsert {
	u.Set(settlement.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateCancelledAt() *SettlementUpsert {
	u.SetExcluded(settlement.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SettlementUpsert) ClearCancelledAt() *SettlementUpsert {
	u.SetNull(settlement.FieldCancelledAt)
	return u
}

// SetNotes sets the "notes" field.
func (u *SettlementUpsert) SetNotes(v string) *SettlementUpsert {
	u.Set(settlement.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SettlementUpsert) UpdateNotes() *SettlementUpsert {
	u.SetExcluded(settlement.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *SettlementUpsert) ClearNotes() *SettlementUpsert {
	u.SetNull(settlement.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Settlement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(settlement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SettlementUpsertOne) UpdateNewValues() *SettlementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(settlement.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(settlement.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Settlement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SettlementUpsertOne) Ignore() *SettlementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SettlementUpsertOne) DoNothing() *SettlementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SettlementCreate.OnConflict
// documentation for more info.
func (u *SettlementUpsertOne) Update(set func(*SettlementUpsert)) *SettlementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SettlementUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SettlementUpsertOne) SetUpdatedAt(v time.Time) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateUpdatedAt() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFacilityID sets the "facility_id" field.
func (u *SettlementUpsertOne) SetFacilityID(v uuid.UUID) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateFacilityID() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateFacilityID()
	})
}

// SetSettlementType sets the "settlement_type" field.
func (u *SettlementUpsertOne) SetSettlementType(v settlement.SettlementType) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetSettlementType(v)
	})
}

// UpdateSettlementType sets the "settlement_type" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateSettlementType() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateSettlementType()
	})
}

// SetPeriodFrom sets the "period_from" field.
func (u *SettlementUpsertOne) SetPeriodFrom(v time.Time) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPeriodFrom(v)
	})
}

// UpdatePeriodFrom sets the "period_from" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdatePeriodFrom() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePeriodFrom()
	})
}

// SetPeriodTo sets the "period_to" field.
func (u *SettlementUpsertOne) SetPeriodTo(v time.Time) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPeriodTo(v)
	})
}

// UpdatePeriodTo sets the "period_to" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdatePeriodTo() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePeriodTo()
	})
}

// SetStatus sets the "status" field.
func (u *SettlementUpsertOne) SetStatus(v settlement.Status) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateStatus() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateStatus()
	})
}

// SetTotalCollections sets the "total_collections" field.
func (u *SettlementUpsertOne) SetTotalCollections(v int64) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetTotalCollections(v)
	})
}

// AddTotalCollections adds v to the "total_collections" field.
func (u *SettlementUpsertOne) AddTotalCollections(v int64) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.AddTotalCollections(v)
	})
}

// UpdateTotalCollections sets the "total_collections" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateTotalCollections() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateTotalCollections()
	})
}

// SetTotalCommission sets the "total_commission" field.
func (u *SettlementUpsertOne) SetTotalCommission(v int64) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetTotalCommission(v)
	})
}

// AddTotalCommission adds v to the "total_commission" field.
func (u *SettlementUpsertOne) AddTotalCommission(v int64) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.AddTotalCommission(v)
	})
}

// UpdateTotalCommission sets the "total_commission" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateTotalCommission() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateTotalCommission()
	})
}

// SetFacilityShare sets the "facility_share" field.
func (u *SettlementUpsertOne) SetFacilityShare(v int64) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetFacilityShare(v)
	})
}

// AddFacilityShare adds v to the "facility_share" field.
func (u *SettlementUpsertOne) AddFacilityShare(v int64) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.AddFacilityShare(v)
	})
}

// UpdateFacilityShare sets the "facility_share" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateFacilityShare() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateFacilityShare()
	})
}

// SetPlatformShare sets the "platform_share" field.
func (u *SettlementUpsertOne) SetPlatformShare(v int64) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPlatformShare(v)
	})
}

// AddPlatformShare adds v to the "platform_share" field.
func (u *SettlementUpsertOne) AddPlatformShare(v int64) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.AddPlatformShare(v)
	})
}

// UpdatePlatformShare sets the "platform_share" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdatePlatformShare() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePlatformShare()
	})
}

// SetCurrency sets the "currency" field.
func (u *SettlementUpsertOne) SetCurrency(v string) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateCurrency() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateCurrency()
	})
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *SettlementUpsertOne) SetSubmittedBy(v uuid.UUID) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetSubmittedBy(v)
	})
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateSubmittedBy() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateSubmittedBy()
	})
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *SettlementUpsertOne) ClearSubmittedBy() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearSubmittedBy()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *SettlementUpsertOne) SetApprovedBy(v uuid.UUID) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateApprovedBy() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *SettlementUpsertOne) ClearApprovedBy() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearApprovedBy()
	})
}

// SetApprovedAt sets the "approved_at" field.
func (u *SettlementUpsertOne) SetApprovedAt(v time.Time) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetApprovedAt(v)
	})
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateApprovedAt() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateApprovedAt()
	})
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *SettlementUpsertOne) ClearApprovedAt() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearApprovedAt()
	})
}

// SetPaidBy sets the "paid_by" field.
func (u *SettlementUpsertOne) SetPaidBy(v uuid.UUID) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPaidBy(v)
	})
}

// UpdatePaidBy sets the "paid_by" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdatePaidBy() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePaidBy()
	})
}

// ClearPaidBy clears the value of the "paid_by" field.
func (u *SettlementUpsertOne) ClearPaidBy() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearPaidBy()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *SettlementUpsertOne) SetPaidAt(v time.Time) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdatePaidAt() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *SettlementUpsertOne) ClearPaidAt() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearPaidAt()
	})
}

// SetPaymentReference sets the "payment_reference" field.
func (u *SettlementUpsertOne) SetPaymentReference(v string) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPaymentReference(v)
	})
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdatePaymentReference() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePaymentReference()
	})
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (u *SettlementUpsertOne) ClearPaymentReference() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearPaymentReference()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *SettlementUpsertOne) SetPaymentMethod(v string) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdatePaymentMethod() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePaymentMethod()
	})
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *SettlementUpsertOne) ClearPaymentMethod() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearPaymentMethod()
	})
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *SettlementUpsertOne) SetCancelledBy(v uuid.UUID) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetCancelledBy(v)
	})
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateCancelledBy() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateCancelledBy()
	})
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *SettlementUpsertOne) ClearCancelledBy() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearCancelledBy()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SettlementUpsertOne) SetCancelledAt(v time.Time) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateCancelledAt() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SettlementUpsertOne) ClearCancelledAt() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearCancelledAt()
	})
}

// SetNotes sets the "notes" field.
func (u *SettlementUpsertOne) SetNotes(v string) *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SettlementUpsertOne) UpdateNotes() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *SettlementUpsertOne) ClearNotes() *SettlementUpsertOne {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *SettlementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SettlementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SettlementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SettlementUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SettlementUpsertOne.ID is not supported by MySQL driver. Use SettlementUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SettlementUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SettlementCreateBulk is the builder for creating many Settlement entities in bulk.
type SettlementCreateBulk struct {
	config
	err      error
	builders []*SettlementCreate
	conflict []sql.ConflictOption
}

// Save creates the Settlement entities in the database.
func (_c *SettlementCreateBulk) Save(ctx context.Context) ([]*Settlement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Settlement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SettlementMutation)
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
func (_c *SettlementCreateBulk) SaveX(ctx context.Context) []*Settlement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SettlementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SettlementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Settlement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SettlementUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SettlementCreateBulk) OnConflict(opts ...sql.ConflictOption) *SettlementUpsertBulk {
	_c.conflict = opts
	return &SettlementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Settlement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SettlementCreateBulk) OnConflictColumns(columns ...string) *SettlementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SettlementUpsertBulk{
		create: _c,
	}
}

// SettlementUpsertBulk is the builder for "upsert"-ing
// a bulk of Settlement nodes.
type SettlementUpsertBulk struct {
	create *SettlementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Settlement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(settlement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SettlementUpsertBulk) UpdateNewValues() *SettlementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(settlement.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(settlement.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Settlement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SettlementUpsertBulk) Ignore() *SettlementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SettlementUpsertBulk) DoNothing() *SettlementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SettlementCreateBulk.OnConflict
// documentation for more info.
func (u *SettlementUpsertBulk) Update(set func(*SettlementUpsert)) *SettlementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SettlementUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SettlementUpsertBulk) SetUpdatedAt(v time.Time) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateUpdatedAt() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFacilityID sets the "facility_id" field.
func (u *SettlementUpsertBulk) SetFacilityID(v uuid.UUID) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateFacilityID() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateFacilityID()
	})
}

// SetSettlementType sets the "settlement_type" field.
func (u *SettlementUpsertBulk) SetSettlementType(v settlement.SettlementType) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetSettlementType(v)
	})
}

// UpdateSettlementType sets the "settlement_type" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateSettlementType() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateSettlementType()
	})
}

// SetPeriodFrom sets the "period_from" field.
func (u *SettlementUpsertBulk) SetPeriodFrom(v time.Time) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPeriodFrom(v)
	})
}

// UpdatePeriodFrom sets the "period_from" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdatePeriodFrom() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePeriodFrom()
	})
}

// SetPeriodTo sets the "period_to" field.
func (u *SettlementUpsertBulk) SetPeriodTo(v time.Time) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPeriodTo(v)
	})
}

// UpdatePeriodTo sets the "period_to" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdatePeriodTo() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePeriodTo()
	})
}

// SetStatus sets the "status" field.
func (u *SettlementUpsertBulk) SetStatus(v settlement.Status) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateStatus() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateStatus()
	})
}

// SetTotalCollections sets the "total_collections" field.
func (u *SettlementUpsertBulk) SetTotalCollections(v int64) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetTotalCollections(v)
	})
}

// AddTotalCollections adds v to the "total_collections" field.
func (u *SettlementUpsertBulk) AddTotalCollections(v int64) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.AddTotalCollections(v)
	})
}

// UpdateTotalCollections sets the "total_collections" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateTotalCollections() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateTotalCollections()
	})
}

// SetTotalCommission sets the "total_commission" field.
func (u *SettlementUpsertBulk) SetTotalCommission(v int64) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetTotalCommission(v)
	})
}

// AddTotalCommission adds v to the "total_commission" field.
func (u *SettlementUpsertBulk) AddTotalCommission(v int64) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.AddTotalCommission(v)
	})
}

// UpdateTotalCommission sets the "total_commission" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateTotalCommission() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateTotalCommission()
	})
}

// SetFacilityShare sets the "facility_share" field.
func (u *SettlementUpsertBulk) SetFacilityShare(v int64) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetFacilityShare(v)
	})
}

// AddFacilityShare adds v to the "facility_share" field.
func (u *SettlementUpsertBulk) AddFacilityShare(v int64) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.AddFacilityShare(v)
	})
}

// UpdateFacilityShare sets the "facility_share" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateFacilityShare() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateFacilityShare()
	})
}

// SetPlatformShare sets the "platform_share" field.
func (u *SettlementUpsertBulk) SetPlatformShare(v int64) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPlatformShare(v)
	})
}

// AddPlatformShare adds v to the "platform_share" field.
func (u *SettlementUpsertBulk) AddPlatformShare(v int64) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.AddPlatformShare(v)
	})
}

// UpdatePlatformShare sets the "platform_share" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdatePlatformShare() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePlatformShare()
	})
}

// SetCurrency sets the "currency" field.
func (u *SettlementUpsertBulk) SetCurrency(v string) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateCurrency() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateCurrency()
	})
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *SettlementUpsertBulk) SetSubmittedBy(v uuid.UUID) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetSubmittedBy(v)
	})
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateSubmittedBy() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateSubmittedBy()
	})
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *SettlementUpsertBulk) ClearSubmittedBy() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearSubmittedBy()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *SettlementUpsertBulk) SetApprovedBy(v uuid.UUID) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateApprovedBy() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *SettlementUpsertBulk) ClearApprovedBy() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearApprovedBy()
	})
}

// SetApprovedAt sets the "approved_at" field.
func (u *SettlementUpsertBulk) SetApprovedAt(v time.Time) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetApprovedAt(v)
	})
}

// UpdateApprovedAt sets the "approved_at" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateApprovedAt() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateApprovedAt()
	})
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (u *SettlementUpsertBulk) ClearApprovedAt() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearApprovedAt()
	})
}

// SetPaidBy sets the "paid_by" field.
func (u *SettlementUpsertBulk) SetPaidBy(v uuid.UUID) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPaidBy(v)
	})
}

// UpdatePaidBy sets the "paid_by" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdatePaidBy() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePaidBy()
	})
}

// ClearPaidBy clears the value of the "paid_by" field.
func (u *SettlementUpsertBulk) ClearPaidBy() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearPaidBy()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *SettlementUpsertBulk) SetPaidAt(v time.Time) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdatePaidAt() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *SettlementUpsertBulk) ClearPaidAt() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearPaidAt()
	})
}

// SetPaymentReference sets the "payment_reference" field.
func (u *SettlementUpsertBulk) SetPaymentReference(v string) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPaymentReference(v)
	})
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdatePaymentReference() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePaymentReference()
	})
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (u *SettlementUpsertBulk) ClearPaymentReference() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearPaymentReference()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *SettlementUpsertBulk) SetPaymentMethod(v string) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdatePaymentMethod() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdatePaymentMethod()
	})
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *SettlementUpsertBulk) ClearPaymentMethod() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearPaymentMethod()
	})
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *SettlementUpsertBulk) SetCancelledBy(v uuid.UUID) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetCancelledBy(v)
	})
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateCancelledBy() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateCancelledBy()
	})
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *SettlementUpsertBulk) ClearCancelledBy() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearCancelledBy()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SettlementUpsertBulk) SetCancelledAt(v time.Time) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateCancelledAt() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SettlementUpsertBulk) ClearCancelledAt() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearCancelledAt()
	})
}

// SetNotes sets the "notes" field.
func (u *SettlementUpsertBulk) SetNotes(v string) *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SettlementUpsertBulk) UpdateNotes() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *SettlementUpsertBulk) ClearNotes() *SettlementUpsertBulk {
	return u.Update(func(s *SettlementUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *SettlementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SettlementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SettlementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SettlementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
