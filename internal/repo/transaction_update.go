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
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *TransactionUpdate) SetFacilityID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableFacilityID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *TransactionUpdate) SetChannel(v transaction.Channel) *TransactionUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableChannel(v *transaction.Channel) *TransactionUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetGrossAmount sets the "gross_amount" field.
func (_u *TransactionUpdate) SetGrossAmount(v int64) *TransactionUpdate {
	_u.mutation.ResetGrossAmount()
	_u.mutation.SetGrossAmount(v)
	return _u
}

// SetNillableGrossAmount sets the "gross_amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableGrossAmount(v *int64) *TransactionUpdate {
	if v != nil {
		_u.SetGrossAmount(*v)
	}
	return _u
}

// AddGrossAmount adds value to the "gross_amount" field.
func (_u *TransactionUpdate) AddGrossAmount(v int64) *TransactionUpdate {
	_u.mutation.AddGrossAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TransactionUpdate) SetCurrency(v string) *TransactionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCurrency(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *TransactionUpdate) SetOccurredAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableOccurredAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetBillReference sets the "bill_reference" field.
func (_u *TransactionUpdate) SetBillReference(v string) *TransactionUpdate {
	_u.mutation.SetBillReference(v)
	return _u
}

// SetNillableBillReference sets the "bill_reference" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableBillReference(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetBillReference(*v)
	}
	return _u
}

// SetCollectedBy sets the "collected_by" field.
func (_u *TransactionUpdate) SetCollectedBy(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetCollectedBy(v)
	return _u
}

// SetNillableCollectedBy sets the "collected_by" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCollectedBy(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetCollectedBy(*v)
	}
	return _u
}

// ClearCollectedBy clears the value of the "collected_by" field.
func (_u *TransactionUpdate) ClearCollectedBy() *TransactionUpdate {
	_u.mutation.ClearCollectedBy()
	return _u
}

// SetGatewayTxnID sets the "gateway_txn_id" field.
func (_u *TransactionUpdate) SetGatewayTxnID(v string) *TransactionUpdate {
	_u.mutation.SetGatewayTxnID(v)
	return _u
}

// SetNillableGatewayTxnID sets the "gateway_txn_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableGatewayTxnID(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetGatewayTxnID(*v)
	}
	return _u
}

// ClearGatewayTxnID clears the value of the "gateway_txn_id" field.
func (_u *TransactionUpdate) ClearGatewayTxnID() *TransactionUpdate {
	_u.mutation.ClearGatewayTxnID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TransactionUpdate) SetStatus(v transaction.Status) *TransactionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableStatus(v *transaction.Status) *TransactionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_u *TransactionUpdate) SetFacility(v *Facility) *TransactionUpdate {
	return _u.SetFacilityID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the CommissionEntry entity by IDs.
func (_u *TransactionUpdate) AddEntryIDs(ids ...uuid.UUID) *TransactionUpdate {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the CommissionEntry entity.
func (_u *TransactionUpdate) AddEntries(v ...*CommissionEntry) *TransactionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (_u *TransactionUpdate) ClearFacility() *TransactionUpdate {
	_u.mutation.ClearFacility()
	return _u
}

// ClearEntries clears all "entries" edges to the CommissionEntry entity.
func (_u *TransactionUpdate) ClearEntries() *TransactionUpdate {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to CommissionEntry entities by IDs.
func (_u *TransactionUpdate) RemoveEntryIDs(ids ...uuid.UUID) *TransactionUpdate {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to CommissionEntry entities.
func (_u *TransactionUpdate) RemoveEntries(v ...*CommissionEntry) *TransactionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := transaction.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Transaction.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GrossAmount(); ok {
		if err := transaction.GrossAmountValidator(v); err != nil {
			return &ValidationError{Name: "gross_amount", err: fmt.Errorf(`repo: validator failed for field "Transaction.gross_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := transaction.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Transaction.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillReference(); ok {
		if err := transaction.BillReferenceValidator(v); err != nil {
			return &ValidationError{Name: "bill_reference", err: fmt.Errorf(`repo: validator failed for field "Transaction.bill_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GatewayTxnID(); ok {
		if err := transaction.GatewayTxnIDValidator(v); err != nil {
			return &ValidationError{Name: "gateway_txn_id", err: fmt.Errorf(`repo: validator failed for field "Transaction.gateway_txn_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := transaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Transaction.status": %w`, err)}
		}
	}
	if _u.mutation.FacilityCleared() && len(_u.mutation.FacilityIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Transaction.facility"`)
	}
	return nil
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(transaction.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GrossAmount(); ok {
		_spec.SetField(transaction.FieldGrossAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGrossAmount(); ok {
		_spec.AddField(transaction.FieldGrossAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(transaction.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(transaction.FieldOccurredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BillReference(); ok {
		_spec.SetField(transaction.FieldBillReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.CollectedBy(); ok {
		_spec.SetField(transaction.FieldCollectedBy, field.TypeUUID, value)
	}
	if _u.mutation.CollectedByCleared() {
		_spec.ClearField(transaction.FieldCollectedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.GatewayTxnID(); ok {
		_spec.SetField(transaction.FieldGatewayTxnID, field.TypeString, value)
	}
	if _u.mutation.GatewayTxnIDCleared() {
		_spec.ClearField(transaction.FieldGatewayTxnID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.FacilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.FacilityTable,
			Columns: []string{transaction.FacilityColumn},
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
			Table:   transaction.FacilityTable,
			Columns: []string{transaction.FacilityColumn},
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
	if _u.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntriesTable,
			Columns: []string{transaction.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntriesTable,
			Columns: []string{transaction.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntriesTable,
			Columns: []string{transaction.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetFacilityID sets the "facility_id" field.
func (_u *TransactionUpdateOne) SetFacilityID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableFacilityID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *TransactionUpdateOne) SetChannel(v transaction.Channel) *TransactionUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableChannel(v *transaction.Channel) *TransactionUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetGrossAmount sets the "gross_amount" field.
func (_u *TransactionUpdateOne) SetGrossAmount(v int64) *TransactionUpdateOne {
	_u.mutation.ResetGrossAmount()
	_u.mutation.SetGrossAmount(v)
	return _u
}

// SetNillableGrossAmount sets the "gross_amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableGrossAmount(v *int64) *TransactionUpdateOne {
	if v != nil {
		_u.SetGrossAmount(*v)
	}
	return _u
}

// AddGrossAmount adds value to the "gross_amount" field.
func (_u *TransactionUpdateOne) AddGrossAmount(v int64) *TransactionUpdateOne {
	_u.mutation.AddGrossAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TransactionUpdateOne) SetCurrency(v string) *TransactionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCurrency(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *TransactionUpdateOne) SetOccurredAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableOccurredAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetBillReference sets the "bill_reference" field.
func (_u *TransactionUpdateOne) SetBillReference(v string) *TransactionUpdateOne {
	_u.mutation.SetBillReference(v)
	return _u
}

// SetNillableBillReference sets the "bill_reference" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableBillReference(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetBillReference(*v)
	}
	return _u
}

// SetCollectedBy sets the "collected_by" field.
func (_u *TransactionUpdateOne) SetCollectedBy(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetCollectedBy(v)
	return _u
}

// SetNillableCollectedBy sets the "collected_by" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCollectedBy(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetCollectedBy(*v)
	}
	return _u
}

// ClearCollectedBy clears the value of the "collected_by" field.
func (_u *TransactionUpdateOne) ClearCollectedBy() *TransactionUpdateOne {
	_u.mutation.ClearCollectedBy()
	return _u
}

// SetGatewayTxnID sets the "gateway_txn_id" field.
func (_u *TransactionUpdateOne) SetGatewayTxnID(v string) *TransactionUpdateOne {
	_u.mutation.SetGatewayTxnID(v)
	return _u
}

// SetNillableGatewayTxnID sets the "gateway_txn_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableGatewayTxnID(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetGatewayTxnID(*v)
	}
	return _u
}

// ClearGatewayTxnID clears the value of the "gateway_txn_id" field.
func (_u *TransactionUpdateOne) ClearGatewayTxnID() *TransactionUpdateOne {
	_u.mutation.ClearGatewayTxnID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TransactionUpdateOne) SetStatus(v transaction.Status) *TransactionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableStatus(v *transaction.Status) *TransactionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_u *TransactionUpdateOne) SetFacility(v *Facility) *TransactionUpdateOne {
	return _u.SetFacilityID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the CommissionEntry entity by IDs.
func (_u *TransactionUpdateOne) AddEntryIDs(ids ...uuid.UUID) *TransactionUpdateOne {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the CommissionEntry entity.
func (_u *TransactionUpdateOne) AddEntries(v ...*CommissionEntry) *TransactionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (_u *TransactionUpdateOne) ClearFacility() *TransactionUpdateOne {
	_u.mutation.ClearFacility()
	return _u
}

// ClearEntries clears all "entries" edges to the CommissionEntry entity.
func (_u *TransactionUpdateOne) ClearEntries() *TransactionUpdateOne {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to CommissionEntry entities by IDs.
func (_u *TransactionUpdateOne) RemoveEntryIDs(ids ...uuid.UUID) *TransactionUpdateOne {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to CommissionEntry entities.
func (_u *TransactionUpdateOne) RemoveEntries(v ...*CommissionEntry) *TransactionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := transaction.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Transaction.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GrossAmount(); ok {
		if err := transaction.GrossAmountValidator(v); err != nil {
			return &ValidationError{Name: "gross_amount", err: fmt.Errorf(`repo: validator failed for field "Transaction.gross_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := transaction.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Transaction.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillReference(); ok {
		if err := transaction.BillReferenceValidator(v); err != nil {
			return &ValidationError{Name: "bill_reference", err: fmt.Errorf(`repo: validator failed for field "Transaction.bill_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GatewayTxnID(); ok {
		if err := transaction.GatewayTxnIDValidator(v); err != nil {
			return &ValidationError{Name: "gateway_txn_id", err: fmt.Errorf(`repo: validator failed for field "Transaction.gateway_txn_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := transaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Transaction.status": %w`, err)}
		}
	}
	if _u.mutation.FacilityCleared() && len(_u.mutation.FacilityIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Transaction.facility"`)
	}
	return nil
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
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
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(transaction.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GrossAmount(); ok {
		_spec.SetField(transaction.FieldGrossAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGrossAmount(); ok {
		_spec.AddField(transaction.FieldGrossAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(transaction.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(transaction.FieldOccurredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BillReference(); ok {
		_spec.SetField(transaction.FieldBillReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.CollectedBy(); ok {
		_spec.SetField(transaction.FieldCollectedBy, field.TypeUUID, value)
	}
	if _u.mutation.CollectedByCleared() {
		_spec.ClearField(transaction.FieldCollectedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.GatewayTxnID(); ok {
		_spec.SetField(transaction.FieldGatewayTxnID, field.TypeString, value)
	}
	if _u.mutation.GatewayTxnIDCleared() {
		_spec.ClearField(transaction.FieldGatewayTxnID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.FacilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.FacilityTable,
			Columns: []string{transaction.FacilityColumn},
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
			Table:   transaction.FacilityTable,
			Columns: []string{transaction.FacilityColumn},
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
	if _u.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntriesTable,
			Columns: []string{transaction.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntriesTable,
			Columns: []string{transaction.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntriesTable,
			Columns: []string{transaction.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
