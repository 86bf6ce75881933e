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
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/google/uuid"
)

// SettlementUpdate is the builder for updating Settlement entities.
type SettlementUpdate struct {
	config
	hooks    []Hook
	mutation *SettlementMutation
}

// Where appends a list predicates to the SettlementUpdate builder.
func (_u *SettlementUpdate) Where(ps ...predicate.Settlement) *SettlementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SettlementUpdate) SetUpdatedAt(v time.Time) *SettlementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *SettlementUpdate) SetFacilityID(v uuid.UUID) *SettlementUpdate {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableFacilityID(v *uuid.UUID) *SettlementUpdate {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetSettlementType sets the "settlement_type" field.
func (_u *SettlementUpdate) SetSettlementType(v settlement.SettlementType) *SettlementUpdate {
	_u.mutation.SetSettlementType(v)
	return _u
}

// SetNillableSettlementType sets the "settlement_type" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableSettlementType(v *settlement.SettlementType) *SettlementUpdate {
	if v != nil {
		_u.SetSettlementType(*v)
	}
	return _u
}

// SetPeriodFrom sets the "period_from" field.
func (_u *SettlementUpdate) SetPeriodFrom(v time.Time) *SettlementUpdate {
	_u.mutation.SetPeriodFrom(v)
	return _u
}

// SetNillablePeriodFrom sets the "period_from" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillablePeriodFrom(v *time.Time) *SettlementUpdate {
	if v != nil {
		_u.SetPeriodFrom(*v)
	}
	return _u
}

// SetPeriodTo sets the "period_to" field.
func (_u *SettlementUpdate) SetPeriodTo(v time.Time) *SettlementUpdate {
	_u.mutation.SetPeriodTo(v)
	return _u
}

// SetNillablePeriodTo sets the "period_to" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillablePeriodTo(v *time.Time) *SettlementUpdate {
	if v != nil {
		_u.SetPeriodTo(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SettlementUpdate) SetStatus(v settlement.Status) *SettlementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableStatus(v *settlement.Status) *SettlementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalCollections sets the "total_collections" field.
func (_u *SettlementUpdate) SetTotalCollections(v int64) *SettlementUpdate {
	_u.mutation.ResetTotalCollections()
	_u.mutation.SetTotalCollections(v)
	return _u
}

// SetNillableTotalCollections sets the "total_collections" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableTotalCollections(v *int64) *SettlementUpdate {
	if v != nil {
		_u.SetTotalCollections(*v)
	}
	return _u
}

// AddTotalCollections adds value to the "total_collections" field.
func (_u *SettlementUpdate) AddTotalCollections(v int64) *SettlementUpdate {
	_u.mutation.AddTotalCollections(v)
	return _u
}

// SetTotalCommission sets the "total_commission" field.
func (_u *SettlementUpdate) SetTotalCommission(v int64) *SettlementUpdate {
	_u.mutation.ResetTotalCommission()
	_u.mutation.SetTotalCommission(v)
	return _u
}

// SetNillableTotalCommission sets the "total_commission" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableTotalCommission(v *int64) *SettlementUpdate {
	if v != nil {
		_u.SetTotalCommission(*v)
	}
	return _u
}

// AddTotalCommission adds value to the "total_commission" field.
func (_u *SettlementUpdate) AddTotalCommission(v int64) *SettlementUpdate {
	_u.mutation.AddTotalCommission(v)
	return _u
}

// SetFacilityShare sets the "facility_share" field.
func (_u *SettlementUpdate) SetFacilityShare(v int64) *SettlementUpdate {
	_u.mutation.ResetFacilityShare()
	_u.mutation.SetFacilityShare(v)
	return _u
}

// SetNillableFacilityShare sets the "facility_share" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableFacilityShare(v *int64) *SettlementUpdate {
	if v != nil {
		_u.SetFacilityShare(*v)
	}
	return _u
}

// AddFacilityShare adds value to the "facility_share" field.
func (_u *SettlementUpdate) AddFacilityShare(v int64) *SettlementUpdate {
	_u.mutation.AddFacilityShare(v)
	return _u
}

// SetPlatformShare sets the "platform_share" field.
func (_u *SettlementUpdate) SetPlatformShare(v int64) *SettlementUpdate {
	_u.mutation.ResetPlatformShare()
	_u.mutation.SetPlatformShare(v)
	return _u
}

// SetNillablePlatformShare sets the "platform_share" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillablePlatformShare(v *int64) *SettlementUpdate {
	if v != nil {
		_u.SetPlatformShare(*v)
	}
	return _u
}

// AddPlatformShare adds value to the "platform_share" field.
func (_u *SettlementUpdate) AddPlatformShare(v int64) *SettlementUpdate {
	_u.mutation.AddPlatformShare(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *SettlementUpdate) SetCurrency(v string) *SettlementUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableCurrency(v *string) *SettlementUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *SettlementUpdate) SetSubmittedBy(v uuid.UUID) *SettlementUpdate {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableSubmittedBy(v *uuid.UUID) *SettlementUpdate {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *SettlementUpdate) ClearSubmittedBy() *SettlementUpdate {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *SettlementUpdate) SetApprovedBy(v uuid.UUID) *SettlementUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableApprovedBy(v *uuid.UUID) *SettlementUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *SettlementUpdate) ClearApprovedBy() *SettlementUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SettlementUpdate) SetApprovedAt(v time.Time) *SettlementUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableApprovedAt(v *time.Time) *SettlementUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SettlementUpdate) ClearApprovedAt() *SettlementUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetPaidBy sets the "paid_by" field.
func (_u *SettlementUpdate) SetPaidBy(v uuid.UUID) *SettlementUpdate {
	_u.mutation.SetPaidBy(v)
	return _u
}

// SetNillablePaidBy sets the "paid_by" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillablePaidBy(v *uuid.UUID) *SettlementUpdate {
	if v != nil {
		_u.SetPaidBy(*v)
	}
	return _u
}

// ClearPaidBy clears the value of the "paid_by" field.
func (_u *SettlementUpdate) ClearPaidBy() *SettlementUpdate {
	_u.mutation.ClearPaidBy()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *SettlementUpdate) SetPaidAt(v time.Time) *SettlementUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillablePaidAt(v *time.Time) *SettlementUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *SettlementUpdate) ClearPaidAt() *SettlementUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetPaymentReference sets the "payment_reference" field.
func (_u *SettlementUpdate) SetPaymentReference(v string) *SettlementUpdate {
	_u.mutation.SetPaymentReference(v)
	return _u
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillablePaymentReference(v *string) *SettlementUpdate {
	if v != nil {
		_u.SetPaymentReference(*v)
	}
	return _u
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (_u *SettlementUpdate) ClearPaymentReference() *SettlementUpdate {
	_u.mutation.ClearPaymentReference()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *SettlementUpdate) SetPaymentMethod(v string) *SettlementUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillablePaymentMethod(v *string) *SettlementUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *SettlementUpdate) ClearPaymentMethod() *SettlementUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetCancelledBy sets the "cancelled_by" field.
func (_u *SettlementUpdate) SetCancelledBy(v uuid.UUID) *SettlementUpdate {
	_u.mutation.SetCancelledBy(v)
	return _u
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableCancelledBy(v *uuid.UUID) *SettlementUpdate {
	if v != nil {
		_u.SetCancelledBy(*v)
	}
	return _u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (_u *SettlementUpdate) ClearCancelledBy() *SettlementUpdate {
	_u.mutation.ClearCancelledBy()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *SettlementUpdate) SetCancelledAt(v time.Time) *SettlementUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableCancelledAt(v *time.Time) *SettlementUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *SettlementUpdate) ClearCancelledAt() *SettlementUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SettlementUpdate) SetNotes(v string) *SettlementUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SettlementUpdate) SetNillableNotes(v *string) *SettlementUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SettlementUpdate) ClearNotes() *SettlementUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_u *SettlementUpdate) SetFacility(v *Facility) *SettlementUpdate {
	return _u.SetFacilityID(v.ID)
}

// AddItemIDs adds the "items" edge to the SettlementItem entity by IDs.
func (_u *SettlementUpdate) AddItemIDs(ids ...uuid.UUID) *SettlementUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the SettlementItem entity.
func (_u *SettlementUpdate) AddItems(v ...*SettlementItem) *SettlementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the SettlementMutation object of the builder.
func (_u *SettlementUpdate) Mutation() *SettlementMutation {
	return _u.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (_u *SettlementUpdate) ClearFacility() *SettlementUpdate {
	_u.mutation.ClearFacility()
	return _u
}

// ClearItems clears all "items" edges to the SettlementItem entity.
func (_u *SettlementUpdate) ClearItems() *SettlementUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to SettlementItem entities by IDs.
func (_u *SettlementUpdate) RemoveItemIDs(ids ...uuid.UUID) *SettlementUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to SettlementItem entities.
func (_u *SettlementUpdate) RemoveItems(v ...*SettlementItem) *SettlementUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SettlementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SettlementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SettlementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SettlementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SettlementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := settlement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SettlementUpdate) check() error {
	if v, ok := _u.mutation.SettlementType(); ok {
		if err := settlement.SettlementTypeValidator(v); err != nil {
			return &ValidationError{Name: "settlement_type", err: fmt.Errorf(`repo: validator failed for field "Settlement.settlement_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := settlement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Settlement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := settlement.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Settlement.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentReference(); ok {
		if err := settlement.PaymentReferenceValidator(v); err != nil {
			return &ValidationError{Name: "payment_reference", err: fmt.Errorf(`repo: validator failed for field "Settlement.payment_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := settlement.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Settlement.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := settlement.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`repo: validator failed for field "Settlement.notes": %w`, err)}
		}
	}
	if _u.mutation.FacilityCleared() && len(_u.mutation.FacilityIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Settlement.facility"`)
	}
	return nil
}

func (_u *SettlementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(settlement.Table, settlement.Columns, sqlgraph.NewFieldSpec(settlement.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(settlement.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SettlementType(); ok {
		_spec.SetField(settlement.FieldSettlementType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PeriodFrom(); ok {
		_spec.SetField(settlement.FieldPeriodFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PeriodTo(); ok {
		_spec.SetField(settlement.FieldPeriodTo, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(settlement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalCollections(); ok {
		_spec.SetField(settlement.FieldTotalCollections, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCollections(); ok {
		_spec.AddField(settlement.FieldTotalCollections, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCommission(); ok {
		_spec.SetField(settlement.FieldTotalCommission, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCommission(); ok {
		_spec.AddField(settlement.FieldTotalCommission, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FacilityShare(); ok {
		_spec.SetField(settlement.FieldFacilityShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFacilityShare(); ok {
		_spec.AddField(settlement.FieldFacilityShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PlatformShare(); ok {
		_spec.SetField(settlement.FieldPlatformShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlatformShare(); ok {
		_spec.AddField(settlement.FieldPlatformShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(settlement.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(settlement.FieldSubmittedBy, field.TypeUUID, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(settlement.FieldSubmittedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(settlement.FieldApprovedBy, field.TypeUUID, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(settlement.FieldApprovedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(settlement.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(settlement.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PaidBy(); ok {
		_spec.SetField(settlement.FieldPaidBy, field.TypeUUID, value)
	}
	if _u.mutation.PaidByCleared() {
		_spec.ClearField(settlement.FieldPaidBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(settlement.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(settlement.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentReference(); ok {
		_spec.SetField(settlement.FieldPaymentReference, field.TypeString, value)
	}
	if _u.mutation.PaymentReferenceCleared() {
		_spec.ClearField(settlement.FieldPaymentReference, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(settlement.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(settlement.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledBy(); ok {
		_spec.SetField(settlement.FieldCancelledBy, field.TypeUUID, value)
	}
	if _u.mutation.CancelledByCleared() {
		_spec.ClearField(settlement.FieldCancelledBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(settlement.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(settlement.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(settlement.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(settlement.FieldNotes, field.TypeString)
	}
	if _u.mutation.FacilityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacilityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{settlement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SettlementUpdateOne is the builder for updating a single Settlement entity.
type SettlementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SettlementMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SettlementUpdateOne) SetUpdatedAt(v time.Time) *SettlementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *SettlementUpdateOne) SetFacilityID(v uuid.UUID) *SettlementUpdateOne {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableFacilityID(v *uuid.UUID) *SettlementUpdateOne {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetSettlementType sets the "settlement_type" field.
func (_u *SettlementUpdateOne) SetSettlementType(v settlement.SettlementType) *SettlementUpdateOne {
	_u.mutation.SetSettlementType(v)
	return _u
}

// SetNillableSettlementType sets the "settlement_type" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableSettlementType(v *settlement.SettlementType) *SettlementUpdateOne {
	if v != nil {
		_u.SetSettlementType(*v)
	}
	return _u
}

// SetPeriodFrom sets the "period_from" field.
func (_u *SettlementUpdateOne) SetPeriodFrom(v time.Time) *SettlementUpdateOne {
	_u.mutation.SetPeriodFrom(v)
	return _u
}

// SetNillablePeriodFrom sets the "period_from" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillablePeriodFrom(v *time.Time) *SettlementUpdateOne {
	if v != nil {
		_u.SetPeriodFrom(*v)
	}
	return _u
}

// SetPeriodTo sets the "period_to" field.
func (_u *SettlementUpdateOne) SetPeriodTo(v time.Time) *SettlementUpdateOne {
	_u.mutation.SetPeriodTo(v)
	return _u
}

// SetNillablePeriodTo sets the "period_to" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillablePeriodTo(v *time.Time) *SettlementUpdateOne {
	if v != nil {
		_u.SetPeriodTo(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SettlementUpdateOne) SetStatus(v settlement.Status) *SettlementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableStatus(v *settlement.Status) *SettlementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalCollections sets the "total_collections" field.
func (_u *SettlementUpdateOne) SetTotalCollections(v int64) *SettlementUpdateOne {
	_u.mutation.ResetTotalCollections()
	_u.mutation.SetTotalCollections(v)
	return _u
}

// SetNillableTotalCollections sets the "total_collections" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableTotalCollections(v *int64) *SettlementUpdateOne {
	if v != nil {
		_u.SetTotalCollections(*v)
	}
	return _u
}

// AddTotalCollections adds value to the "total_collections" field.
func (_u *SettlementUpdateOne) AddTotalCollections(v int64) *SettlementUpdateOne {
	_u.mutation.AddTotalCollections(v)
	return _u
}

// SetTotalCommission sets the "total_commission" field.
func (_u *SettlementUpdateOne) SetTotalCommission(v int64) *SettlementUpdateOne {
	_u.mutation.ResetTotalCommission()
	_u.mutation.SetTotalCommission(v)
	return _u
}

// SetNillableTotalCommission sets the "total_commission" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableTotalCommission(v *int64) *SettlementUpdateOne {
	if v != nil {
		_u.SetTotalCommission(*v)
	}
	return _u
}

// AddTotalCommission adds value to the "total_commission" field.
func (_u *SettlementUpdateOne) AddTotalCommission(v int64) *SettlementUpdateOne {
	_u.mutation.AddTotalCommission(v)
	return _u
}

// SetFacilityShare sets the "facility_share" field.
func (_u *SettlementUpdateOne) SetFacilityShare(v int64) *SettlementUpdateOne {
	_u.mutation.ResetFacilityShare()
	_u.mutation.SetFacilityShare(v)
	return _u
}

// SetNillableFacilityShare sets the "facility_share" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableFacilityShare(v *int64) *SettlementUpdateOne {
	if v != nil {
		_u.SetFacilityShare(*v)
	}
	return _u
}

// AddFacilityShare adds value to the "facility_share" field.
func (_u *SettlementUpdateOne) AddFacilityShare(v int64) *SettlementUpdateOne {
	_u.mutation.AddFacilityShare(v)
	return _u
}

// SetPlatformShare sets the "platform_share" field.
func (_u *SettlementUpdateOne) SetPlatformShare(v int64) *SettlementUpdateOne {
	_u.mutation.ResetPlatformShare()
	_u.mutation.SetPlatformShare(v)
	return _u
}

// SetNillablePlatformShare sets the "platform_share" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillablePlatformShare(v *int64) *SettlementUpdateOne {
	if v != nil {
		_u.SetPlatformShare(*v)
	}
	return _u
}

// AddPlatformShare adds value to the "platform_share" field.
func (_u *SettlementUpdateOne) AddPlatformShare(v int64) *SettlementUpdateOne {
	_u.mutation.AddPlatformShare(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *SettlementUpdateOne) SetCurrency(v string) *SettlementUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableCurrency(v *string) *SettlementUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *SettlementUpdateOne) SetSubmittedBy(v uuid.UUID) *SettlementUpdateOne {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableSubmittedBy(v *uuid.UUID) *SettlementUpdateOne {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *SettlementUpdateOne) ClearSubmittedBy() *SettlementUpdateOne {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *SettlementUpdateOne) SetApprovedBy(v uuid.UUID) *SettlementUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableApprovedBy(v *uuid.UUID) *SettlementUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *SettlementUpdateOne) ClearApprovedBy() *SettlementUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SettlementUpdateOne) SetApprovedAt(v time.Time) *SettlementUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableApprovedAt(v *time.Time) *SettlementUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SettlementUpdateOne) ClearApprovedAt() *SettlementUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetPaidBy sets the "paid_by" field.
func (_u *SettlementUpdateOne) SetPaidBy(v uuid.UUID) *SettlementUpdateOne {
	_u.mutation.SetPaidBy(v)
	return _u
}

// SetNillablePaidBy sets the "paid_by" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillablePaidBy(v *uuid.UUID) *SettlementUpdateOne {
	if v != nil {
		_u.SetPaidBy(*v)
	}
	return _u
}

// ClearPaidBy clears the value of the "paid_by" field.
func (_u *SettlementUpdateOne) ClearPaidBy() *SettlementUpdateOne {
	_u.mutation.ClearPaidBy()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *SettlementUpdateOne) SetPaidAt(v time.Time) *SettlementUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillablePaidAt(v *time.Time) *SettlementUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *SettlementUpdateOne) ClearPaidAt() *SettlementUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetPaymentReference sets the "payment_reference" field.
func (_u *SettlementUpdateOne) SetPaymentReference(v string) *SettlementUpdateOne {
	_u.mutation.SetPaymentReference(v)
	return _u
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillablePaymentReference(v *string) *SettlementUpdateOne {
	if v != nil {
		_u.SetPaymentReference(*v)
	}
	return _u
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (_u *SettlementUpdateOne) ClearPaymentReference() *SettlementUpdateOne {
	_u.mutation.ClearPaymentReference()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *SettlementUpdateOne) SetPaymentMethod(v string) *SettlementUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillablePaymentMethod(v *string) *SettlementUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *SettlementUpdateOne) ClearPaymentMethod() *SettlementUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetCancelledBy sets the "cancelled_by" field.
func (_u *SettlementUpdateOne) SetCancelledBy(v uuid.UUID) *SettlementUpdateOne {
	_u.mutation.SetCancelledBy(v)
	return _u
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableCancelledBy(v *uuid.UUID) *SettlementUpdateOne {
	if v != nil {
		_u.SetCancelledBy(*v)
	}
	return _u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (_u *SettlementUpdateOne) ClearCancelledBy() *SettlementUpdateOne {
	_u.mutation.ClearCancelledBy()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *SettlementUpdateOne) SetCancelledAt(v time.Time) *SettlementUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableCancelledAt(v *time.Time) *SettlementUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *SettlementUpdateOne) ClearCancelledAt() *SettlementUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SettlementUpdateOne) SetNotes(v string) *SettlementUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SettlementUpdateOne) SetNillableNotes(v *string) *SettlementUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SettlementUpdateOne) ClearNotes() *SettlementUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_u *SettlementUpdateOne) SetFacility(v *Facility) *SettlementUpdateOne {
	return _u.SetFacilityID(v.ID)
}

// AddItemIDs adds the "items" edge to the SettlementItem entity by IDs.
func (_u *SettlementUpdateOne) AddItemIDs(ids ...uuid.UUID) *SettlementUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the SettlementItem entity.
func (_u *SettlementUpdateOne) AddItems(v ...*SettlementItem) *SettlementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the SettlementMutation object of the builder.
func (_u *SettlementUpdateOne) Mutation() *SettlementMutation {
	return _u.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (_u *SettlementUpdateOne) ClearFacility() *SettlementUpdateOne {
	_u.mutation.ClearFacility()
	return _u
}

// ClearItems clears all "items" edges to the SettlementItem entity.
func (_u *SettlementUpdateOne) ClearItems() *SettlementUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to SettlementItem entities by IDs.
func (_u *SettlementUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *SettlementUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to SettlementItem entities.
func (_u *SettlementUpdateOne) RemoveItems(v ...*SettlementItem) *SettlementUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the SettlementUpdate builder.
func (_u *SettlementUpdateOne) Where(ps ...predicate.Settlement) *SettlementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SettlementUpdateOne) Select(field string, fields ...string) *SettlementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Settlement entity.
func (_u *SettlementUpdateOne) Save(ctx context.Context) (*Settlement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SettlementUpdateOne) SaveX(ctx context.Context) *Settlement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SettlementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SettlementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SettlementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := settlement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SettlementUpdateOne) check() error {
	if v, ok := _u.mutation.SettlementType(); ok {
		if err := settlement.SettlementTypeValidator(v); err != nil {
			return &ValidationError{Name: "settlement_type", err: fmt.Errorf(`repo: validator failed for field "Settlement.settlement_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := settlement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Settlement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := settlement.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Settlement.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentReference(); ok {
		if err := settlement.PaymentReferenceValidator(v); err != nil {
			return &ValidationError{Name: "payment_reference", err: fmt.Errorf(`repo: validator failed for field "Settlement.payment_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := settlement.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Settlement.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := settlement.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`repo: validator failed for field "Settlement.notes": %w`, err)}
		}
	}
	if _u.mutation.FacilityCleared() && len(_u.mutation.FacilityIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Settlement.facility"`)
	}
	return nil
}

func (_u *SettlementUpdateOne) sqlSave(ctx context.Context) (_node *Settlement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(settlement.Table, settlement.Columns, sqlgraph.NewFieldSpec(settlement.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Settlement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, settlement.FieldID)
		for _, f := range fields {
			if !settlement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != settlement.FieldID {
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
		_spec.SetField(settlement.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SettlementType(); ok {
		_spec.SetField(settlement.FieldSettlementType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PeriodFrom(); ok {
		_spec.SetField(settlement.FieldPeriodFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PeriodTo(); ok {
		_spec.SetField(settlement.FieldPeriodTo, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(settlement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalCollections(); ok {
		_spec.SetField(settlement.FieldTotalCollections, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCollections(); ok {
		_spec.AddField(settlement.FieldTotalCollections, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCommission(); ok {
		_spec.SetField(settlement.FieldTotalCommission, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCommission(); ok {
		_spec.AddField(settlement.FieldTotalCommission, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FacilityShare(); ok {
		_spec.SetField(settlement.FieldFacilityShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFacilityShare(); ok {
		_spec.AddField(settlement.FieldFacilityShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PlatformShare(); ok {
		_spec.SetField(settlement.FieldPlatformShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlatformShare(); ok {
		_spec.AddField(settlement.FieldPlatformShare, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(settlement.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(settlement.FieldSubmittedBy, field.TypeUUID, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(settlement.FieldSubmittedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(settlement.FieldApprovedBy, field.TypeUUID, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(settlement.FieldApprovedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(settlement.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(settlement.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PaidBy(); ok {
		_spec.SetField(settlement.FieldPaidBy, field.TypeUUID, value)
	}
	if _u.mutation.PaidByCleared() {
		_spec.ClearField(settlement.FieldPaidBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(settlement.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(settlement.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentReference(); ok {
		_spec.SetField(settlement.FieldPaymentReference, field.TypeString, value)
	}
	if _u.mutation.PaymentReferenceCleared() {
		_spec.ClearField(settlement.FieldPaymentReference, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(settlement.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(settlement.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.CancelledBy(); ok {
		_spec.SetField(settlement.FieldCancelledBy, field.TypeUUID, value)
	}
	if _u.mutation.CancelledByCleared() {
		_spec.ClearField(settlement.FieldCancelledBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(settlement.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(settlement.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(settlement.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(settlement.FieldNotes, field.TypeString)
	}
	if _u.mutation.FacilityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacilityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Settlement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{settlement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
