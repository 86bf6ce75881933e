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
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/google/uuid"
)

// SettlementItemUpdate is the builder for updating SettlementItem entities.
type SettlementItemUpdate struct {
	config
	hooks    []Hook
	mutation *SettlementItemMutation
}

// Where appends a list predicates to the SettlementItemUpdate builder.
func (_u *SettlementItemUpdate) Where(ps ...predicate.SettlementItem) *SettlementItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSettlementID sets the "settlement_id" field.
func (_u *SettlementItemUpdate) SetSettlementID(v uuid.UUID) *SettlementItemUpdate {
	_u.mutation.SetSettlementID(v)
	return _u
}

// SetNillableSettlementID sets the "settlement_id" field if the given value is not nil.
func (_u *SettlementItemUpdate) SetNillableSettlementID(v *uuid.UUID) *SettlementItemUpdate {
	if v != nil {
		_u.SetSettlementID(*v)
	}
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *SettlementItemUpdate) SetEntryID(v uuid.UUID) *SettlementItemUpdate {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *SettlementItemUpdate) SetNillableEntryID(v *uuid.UUID) *SettlementItemUpdate {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetCommissionAmount sets the "commission_amount" field.
func (_u *SettlementItemUpdate) SetCommissionAmount(v int64) *SettlementItemUpdate {
	_u.mutation.ResetCommissionAmount()
	_u.mutation.SetCommissionAmount(v)
	return _u
}

// SetNillableCommissionAmount sets the "commission_amount" field if the given value is not nil.
func (_u *SettlementItemUpdate) SetNillableCommissionAmount(v *int64) *SettlementItemUpdate {
	if v != nil {
		_u.SetCommissionAmount(*v)
	}
	return _u
}

// AddCommissionAmount adds value to the "commission_amount" field.
func (_u *SettlementItemUpdate) AddCommissionAmount(v int64) *SettlementItemUpdate {
	_u.mutation.AddCommissionAmount(v)
	return _u
}

// SetSettlement sets the "settlement" edge to the Settlement entity.
func (_u *SettlementItemUpdate) SetSettlement(v *Settlement) *SettlementItemUpdate {
	return _u.SetSettlementID(v.ID)
}

// SetEntry sets the "entry" edge to the CommissionEntry entity.
func (_u *SettlementItemUpdate) SetEntry(v *CommissionEntry) *SettlementItemUpdate {
	return _u.SetEntryID(v.ID)
}

// Mutation returns the SettlementItemMutation object of the builder.
func (_u *SettlementItemUpdate) Mutation() *SettlementItemMutation {
	return _u.mutation
}

// ClearSettlement clears the "settlement" edge to the Settlement entity.
func (_u *SettlementItemUpdate) ClearSettlement() *SettlementItemUpdate {
	_u.mutation.ClearSettlement()
	return _u
}

// ClearEntry clears the "entry" edge to the CommissionEntry entity.
func (_u *SettlementItemUpdate) ClearEntry() *SettlementItemUpdate {
	_u.mutation.ClearEntry()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SettlementItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SettlementItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SettlementItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SettlementItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SettlementItemUpdate) check() error {
	if _u.mutation.SettlementCleared() && len(_u.mutation.SettlementIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "SettlementItem.settlement"`)
	}
	if _u.mutation.EntryCleared() && len(_u.mutation.EntryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "SettlementItem.entry"`)
	}
	return nil
}

func (_u *SettlementItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(settlementitem.Table, settlementitem.Columns, sqlgraph.NewFieldSpec(settlementitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommissionAmount(); ok {
		_spec.SetField(settlementitem.FieldCommissionAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommissionAmount(); ok {
		_spec.AddField(settlementitem.FieldCommissionAmount, field.TypeInt64, value)
	}
	if _u.mutation.SettlementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlementitem.SettlementTable,
			Columns: []string{settlementitem.SettlementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settlement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettlementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlementitem.SettlementTable,
			Columns: []string{settlementitem.SettlementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settlement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlementitem.EntryTable,
			Columns: []string{settlementitem.EntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlementitem.EntryTable,
			Columns: []string{settlementitem.EntryColumn},
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
			err = &NotFoundError{settlementitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SettlementItemUpdateOne is the builder for updating a single SettlementItem entity.
type SettlementItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SettlementItemMutation
}

// SetSettlementID sets the "settlement_id" field.
func (_u *SettlementItemUpdateOne) SetSettlementID(v uuid.UUID) *SettlementItemUpdateOne {
	_u.mutation.SetSettlementID(v)
	return _u
}

// SetNillableSettlementID sets the "settlement_id" field if the given value is not nil.
func (_u *SettlementItemUpdateOne) SetNillableSettlementID(v *uuid.UUID) *SettlementItemUpdateOne {
	if v != nil {
		_u.SetSettlementID(*v)
	}
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *SettlementItemUpdateOne) SetEntryID(v uuid.UUID) *SettlementItemUpdateOne {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *SettlementItemUpdateOne) SetNillableEntryID(v *uuid.UUID) *SettlementItemUpdateOne {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetCommissionAmount sets the "commission_amount" field.
func (_u *SettlementItemUpdateOne) SetCommissionAmount(v int64) *SettlementItemUpdateOne {
	_u.mutation.ResetCommissionAmount()
	_u.mutation.SetCommissionAmount(v)
	return _u
}

// SetNillableCommissionAmount sets the "commission_amount" field if the given value is not nil.
func (_u *SettlementItemUpdateOne) SetNillableCommissionAmount(v *int64) *SettlementItemUpdateOne {
	if v != nil {
		_u.SetCommissionAmount(*v)
	}
	return _u
}

// AddCommissionAmount adds value to the "commission_amount" field.
func (_u *SettlementItemUpdateOne) AddCommissionAmount(v int64) *SettlementItemUpdateOne {
	_u.mutation.AddCommissionAmount(v)
	return _u
}

// SetSettlement sets the "settlement" edge to the Settlement entity.
func (_u *SettlementItemUpdateOne) SetSettlement(v *Settlement) *SettlementItemUpdateOne {
	return _u.SetSettlementID(v.ID)
}

// SetEntry sets the "entry" edge to the CommissionEntry entity.
func (_u *SettlementItemUpdateOne) SetEntry(v *CommissionEntry) *SettlementItemUpdateOne {
	return _u.SetEntryID(v.ID)
}

// Mutation returns the SettlementItemMutation object of the builder.
func (_u *SettlementItemUpdateOne) Mutation() *SettlementItemMutation {
	return _u.mutation
}

// ClearSettlement clears the "settlement" edge to the Settlement entity.
func (_u *SettlementItemUpdateOne) ClearSettlement() *SettlementItemUpdateOne {
	_u.mutation.ClearSettlement()
	return _u
}

// ClearEntry clears the "entry" edge to the CommissionEntry entity.
func (_u *SettlementItemUpdateOne) ClearEntry() *SettlementItemUpdateOne {
	_u.mutation.ClearEntry()
	return _u
}

// Where appends a list predicates to the SettlementItemUpdate builder.
func (_u *SettlementItemUpdateOne) Where(ps ...predicate.SettlementItem) *SettlementItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SettlementItemUpdateOne) Select(field string, fields ...string) *SettlementItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SettlementItem entity.
func (_u *SettlementItemUpdateOne) Save(ctx context.Context) (*SettlementItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SettlementItemUpdateOne) SaveX(ctx context.Context) *SettlementItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SettlementItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SettlementItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SettlementItemUpdateOne) check() error {
	if _u.mutation.SettlementCleared() && len(_u.mutation.SettlementIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "SettlementItem.settlement"`)
	}
	if _u.mutation.EntryCleared() && len(_u.mutation.EntryIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "SettlementItem.entry"`)
	}
	return nil
}

func (_u *SettlementItemUpdateOne) sqlSave(ctx context.Context) (_node *SettlementItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(settlementitem.Table, settlementitem.Columns, sqlgraph.NewFieldSpec(settlementitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SettlementItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, settlementitem.FieldID)
		for _, f := range fields {
			if !settlementitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != settlementitem.FieldID {
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
	if value, ok := _u.mutation.CommissionAmount(); ok {
		_spec.SetField(settlementitem.FieldCommissionAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCommissionAmount(); ok {
		_spec.AddField(settlementitem.FieldCommissionAmount, field.TypeInt64, value)
	}
	if _u.mutation.SettlementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlementitem.SettlementTable,
			Columns: []string{settlementitem.SettlementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settlement.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettlementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlementitem.SettlementTable,
			Columns: []string{settlementitem.SettlementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settlement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlementitem.EntryTable,
			Columns: []string{settlementitem.EntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settlementitem.EntryTable,
			Columns: []string{settlementitem.EntryColumn},
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
	_node = &SettlementItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{settlementitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
