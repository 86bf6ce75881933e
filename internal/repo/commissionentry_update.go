// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// CommissionEntryUpdate is the builder for updating CommissionEntry entities.
type CommissionEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CommissionEntryMutation
}

// Where appends a list predicates to the CommissionEntryUpdate builder.
func (_u *CommissionEntryUpdate) Where(ps ...predicate.CommissionEntry) *CommissionEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *CommissionEntryUpdate) SetFacilityID(v uuid.UUID) *CommissionEntryUpdate {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *CommissionEntryUpdate) SetNillableFacilityID(v *uuid.UUID) *CommissionEntryUpdate {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *CommissionEntryUpdate) SetTransactionID(v uuid.UUID) *CommissionEntryUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *CommissionEntryUpdate) SetNillableTransactionID(v *uuid.UUID) *CommissionEntryUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *CommissionEntryUpdate) SetSeq(v int64) *CommissionEntryUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *CommissionEntryUpdate) SetNillableSeq(v *int64) *CommissionEntryUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *CommissionEntryUpdate) AddSeq(v int64) *CommissionEntryUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommissionEntryUpdate) SetStatus(v commissionentry.Status) *CommissionEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommissionEntryUpdate) SetNillableStatus(v *commissionentry.Status) *CommissionEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSettlementID sets the "settlement_id" field.
func (_u *CommissionEntryUpdate) SetSettlementID(v uuid.UUID) *CommissionEntryUpdate {
	_u.mutation.SetSettlementID(v)
	return _u
}

// SetNillableSettlementID sets the "settlement_id" field if the given value is not nil.
func (_u *CommissionEntryUpdate) SetNillableSettlementID(v *uuid.UUID) *CommissionEntryUpdate {
	if v != nil {
		_u.SetSettlementID(*v)
	}
	return _u
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (_u *CommissionEntryUpdate) ClearSettlementID() *CommissionEntryUpdate {
	_u.mutation.ClearSettlementID()
	return _u
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_u *CommissionEntryUpdate) SetFacility(v *Facility) *CommissionEntryUpdate {
	return _u.SetFacilityID(v.ID)
}

// SetTransaction sets the "transaction" edge to the Transaction entity.
func (_u *CommissionEntryUpdate) SetTransaction(v *Transaction) *CommissionEntryUpdate {
	return _u.SetTransactionID(v.ID)
}

// AddItemIDs adds the "items" edge to the SettlementItem entity by IDs.
func (_u *CommissionEntryUpdate) AddItemIDs(ids ...uuid.UUID) *CommissionEntryUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the SettlementItem entity.
func (_u *CommissionEntryUpdate) AddItems(v ...*SettlementItem) *CommissionEntryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the CommissionEntryMutation object of the builder.
func (_u *CommissionEntryUpdate) Mutation() *CommissionEntryMutation {
	return _u.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (_u *CommissionEntryUpdate) ClearFacility() *CommissionEntryUpdate {
	_u.mutation.ClearFacility()
	return _u
}

// ClearTransaction clears the "transaction" edge to the Transaction entity.
func (_u *CommissionEntryUpdate) ClearTransaction() *CommissionEntryUpdate {
	_u.mutation.ClearTransaction()
	return _u
}

// ClearItems clears all "items" edges to the SettlementItem entity.
func (_u *CommissionEntryUpdate) ClearItems() *CommissionEntryUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to SettlementItem entities by IDs.
func (_u *CommissionEntryUpdate) RemoveItemIDs(ids ...uuid.UUID) *CommissionEntryUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to SettlementItem entities.
func (_u *CommissionEntryUpdate) RemoveItems(v ...*SettlementItem) *CommissionEntryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommissionEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommissionEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionEntryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := commissionentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.status": %w`, err)}
		}
	}
	if _u.mutation.FacilityCleared() && len(_u.mutation.FacilityIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CommissionEntry.facility"`)
	}
	if _u.mutation.TransactionCleared() && len(_u.mutation.TransactionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CommissionEntry.transaction"`)
	}
	return nil
}

func (_u *CommissionEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionentry.Table, commissionentry.Columns, sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(commissionentry.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(commissionentry.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commissionentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SettlementID(); ok {
		_spec.SetField(commissionentry.FieldSettlementID, field.TypeUUID, value)
	}
	if _u.mutation.SettlementIDCleared() {
		_spec.ClearField(commissionentry.FieldSettlementID, field.TypeUUID)
	}
	if _u.mutation.ReversesEntryIDCleared() {
		_spec.ClearField(commissionentry.FieldReversesEntryID, field.TypeUUID)
	}
	if _u.mutation.FacilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionentry.FacilityTable,
			Columns: []string{commissionentry.FacilityColumn},
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
			Table:   commissionentry.FacilityTable,
			Columns: []string{commissionentry.FacilityColumn},
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
	if _u.mutation.TransactionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionentry.TransactionTable,
			Columns: []string{commissionentry.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionentry.TransactionTable,
			Columns: []string{commissionentry.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
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
			Table:   commissionentry.ItemsTable,
			Columns: []string{commissionentry.ItemsColumn},
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
			Table:   commissionentry.ItemsTable,
			Columns: []string{commissionentry.ItemsColumn},
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
			Table:   commissionentry.ItemsTable,
			Columns: []string{commissionentry.ItemsColumn},
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
			err = &NotFoundError{commissionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommissionEntryUpdateOne is the builder for updating a single CommissionEntry entity.
type CommissionEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommissionEntryMutation
}

// SetFacilityID sets the "facility_id" field.
func (_u *CommissionEntryUpdateOne) SetFacilityID(v uuid.UUID) *CommissionEntryUpdateOne {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *CommissionEntryUpdateOne) SetNillableFacilityID(v *uuid.UUID) *CommissionEntryUpdateOne {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *CommissionEntryUpdateOne) SetTransactionID(v uuid.UUID) *CommissionEntryUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *CommissionEntryUpdateOne) SetNillableTransactionID(v *uuid.UUID) *CommissionEntryUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *CommissionEntryUpdateOne) SetSeq(v int64) *CommissionEntryUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *CommissionEntryUpdateOne) SetNillableSeq(v *int64) *CommissionEntryUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *CommissionEntryUpdateOne) AddSeq(v int64) *CommissionEntryUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommissionEntryUpdateOne) SetStatus(v commissionentry.Status) *CommissionEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommissionEntryUpdateOne) SetNillableStatus(v *commissionentry.Status) *CommissionEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSettlementID sets the "settlement_id" field.
func (_u *CommissionEntryUpdateOne) SetSettlementID(v uuid.UUID) *CommissionEntryUpdateOne {
	_u.mutation.SetSettlementID(v)
	return _u
}

// SetNillableSettlementID sets the "settlement_id" field if the given value is not nil.
func (_u *CommissionEntryUpdateOne) SetNillableSettlementID(v *uuid.UUID) *CommissionEntryUpdateOne {
	if v != nil {
		_u.SetSettlementID(*v)
	}
	return _u
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (_u *CommissionEntryUpdateOne) ClearSettlementID() *CommissionEntryUpdateOne {
	_u.mutation.ClearSettlementID()
	return _u
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_u *CommissionEntryUpdateOne) SetFacility(v *Facility) *CommissionEntryUpdateOne {
	return _u.SetFacilityID(v.ID)
}

// SetTransaction sets the "transaction" edge to the Transaction entity.
func (_u *CommissionEntryUpdateOne) SetTransaction(v *Transaction) *CommissionEntryUpdateOne {
	return _u.SetTransactionID(v.ID)
}

// AddItemIDs adds the "items" edge to the SettlementItem entity by IDs.
func (_u *CommissionEntryUpdateOne) AddItemIDs(ids ...uuid.UUID) *CommissionEntryUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the SettlementItem entity.
func (_u *CommissionEntryUpdateOne) AddItems(v ...*SettlementItem) *CommissionEntryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the CommissionEntryMutation object of the builder.
func (_u *CommissionEntryUpdateOne) Mutation() *CommissionEntryMutation {
	return _u.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (_u *CommissionEntryUpdateOne) ClearFacility() *CommissionEntryUpdateOne {
	_u.mutation.ClearFacility()
	return _u
}

// ClearTransaction clears the "transaction" edge to the Transaction entity.
func (_u *CommissionEntryUpdateOne) ClearTransaction() *CommissionEntryUpdateOne {
	_u.mutation.ClearTransaction()
	return _u
}

// ClearItems clears all "items" edges to the SettlementItem entity.
func (_u *CommissionEntryUpdateOne) ClearItems() *CommissionEntryUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to SettlementItem entities by IDs.
func (_u *CommissionEntryUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *CommissionEntryUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to SettlementItem entities.
func (_u *CommissionEntryUpdateOne) RemoveItems(v ...*SettlementItem) *CommissionEntryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the CommissionEntryUpdate builder.
func (_u *CommissionEntryUpdateOne) Where(ps ...predicate.CommissionEntry) *CommissionEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommissionEntryUpdateOne) Select(field string, fields ...string) *CommissionEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommissionEntry entity.
func (_u *CommissionEntryUpdateOne) Save(ctx context.Context) (*CommissionEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommissionEntryUpdateOne) SaveX(ctx context.Context) *CommissionEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommissionEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommissionEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommissionEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := commissionentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.status": %w`, err)}
		}
	}
	if _u.mutation.FacilityCleared() && len(_u.mutation.FacilityIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CommissionEntry.facility"`)
	}
	if _u.mutation.TransactionCleared() && len(_u.mutation.TransactionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CommissionEntry.transaction"`)
	}
	return nil
}

func (_u *CommissionEntryUpdateOne) sqlSave(ctx context.Context) (_node *CommissionEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commissionentry.Table, commissionentry.Columns, sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CommissionEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commissionentry.FieldID)
		for _, f := range fields {
			if !commissionentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != commissionentry.FieldID {
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
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(commissionentry.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(commissionentry.FieldSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commissionentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SettlementID(); ok {
		_spec.SetField(commissionentry.FieldSettlementID, field.TypeUUID, value)
	}
	if _u.mutation.SettlementIDCleared() {
		_spec.ClearField(commissionentry.FieldSettlementID, field.TypeUUID)
	}
	if _u.mutation.ReversesEntryIDCleared() {
		_spec.ClearField(commissionentry.FieldReversesEntryID, field.TypeUUID)
	}
	if _u.mutation.FacilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionentry.FacilityTable,
			Columns: []string{commissionentry.FacilityColumn},
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
			Table:   commissionentry.FacilityTable,
			Columns: []string{commissionentry.FacilityColumn},
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
	if _u.mutation.TransactionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionentry.TransactionTable,
			Columns: []string{commissionentry.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   commissionentry.TransactionTable,
			Columns: []string{commissionentry.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
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
			Table:   commissionentry.ItemsTable,
			Columns: []string{commissionentry.ItemsColumn},
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
			Table:   commissionentry.ItemsTable,
			Columns: []string{commissionentry.ItemsColumn},
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
			Table:   commissionentry.ItemsTable,
			Columns: []string{commissionentry.ItemsColumn},
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
	_node = &CommissionEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commissionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
