// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogyahq/arogya_backend/internal/repo/idempotencykey"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// IdempotencyKeyUpdate is the builder for updating IdempotencyKey entities.
type IdempotencyKeyUpdate struct {
	config
	hooks    []Hook
	mutation *IdempotencyKeyMutation
}

// Where appends a list predicates to the IdempotencyKeyUpdate builder.
func (_u *IdempotencyKeyUpdate) Where(ps ...predicate.IdempotencyKey) *IdempotencyKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *IdempotencyKeyUpdate) SetKey(v string) *IdempotencyKeyUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *IdempotencyKeyUpdate) SetNillableKey(v *string) *IdempotencyKeyUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *IdempotencyKeyUpdate) SetOperation(v string) *IdempotencyKeyUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *IdempotencyKeyUpdate) SetNillableOperation(v *string) *IdempotencyKeyUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *IdempotencyKeyUpdate) SetFacilityID(v uuid.UUID) *IdempotencyKeyUpdate {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *IdempotencyKeyUpdate) SetNillableFacilityID(v *uuid.UUID) *IdempotencyKeyUpdate {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetSettlementID sets the "settlement_id" field.
func (_u *IdempotencyKeyUpdate) SetSettlementID(v uuid.UUID) *IdempotencyKeyUpdate {
	_u.mutation.SetSettlementID(v)
	return _u
}

// SetNillableSettlementID sets the "settlement_id" field if the given value is not nil.
func (_u *IdempotencyKeyUpdate) SetNillableSettlementID(v *uuid.UUID) *IdempotencyKeyUpdate {
	if v != nil {
		_u.SetSettlementID(*v)
	}
	return _u
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (_u *IdempotencyKeyUpdate) ClearSettlementID() *IdempotencyKeyUpdate {
	_u.mutation.ClearSettlementID()
	return _u
}

// Mutation returns the IdempotencyKeyMutation object of the builder.
func (_u *IdempotencyKeyUpdate) Mutation() *IdempotencyKeyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IdempotencyKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdempotencyKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IdempotencyKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdempotencyKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdempotencyKeyUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := idempotencykey.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`repo: validator failed for field "IdempotencyKey.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := idempotencykey.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`repo: validator failed for field "IdempotencyKey.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *IdempotencyKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(idempotencykey.Table, idempotencykey.Columns, sqlgraph.NewFieldSpec(idempotencykey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(idempotencykey.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(idempotencykey.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacilityID(); ok {
		_spec.SetField(idempotencykey.FieldFacilityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SettlementID(); ok {
		_spec.SetField(idempotencykey.FieldSettlementID, field.TypeUUID, value)
	}
	if _u.mutation.SettlementIDCleared() {
		_spec.ClearField(idempotencykey.FieldSettlementID, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{idempotencykey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IdempotencyKeyUpdateOne is the builder for updating a single IdempotencyKey entity.
type IdempotencyKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IdempotencyKeyMutation
}

// SetKey sets the "key" field.
func (_u *IdempotencyKeyUpdateOne) SetKey(v string) *IdempotencyKeyUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *IdempotencyKeyUpdateOne) SetNillableKey(v *string) *IdempotencyKeyUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *IdempotencyKeyUpdateOne) SetOperation(v string) *IdempotencyKeyUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *IdempotencyKeyUpdateOne) SetNillableOperation(v *string) *IdempotencyKeyUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetFacilityID sets the "facility_id" field.
func (_u *IdempotencyKeyUpdateOne) SetFacilityID(v uuid.UUID) *IdempotencyKeyUpdateOne {
	_u.mutation.SetFacilityID(v)
	return _u
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (_u *IdempotencyKeyUpdateOne) SetNillableFacilityID(v *uuid.UUID) *IdempotencyKeyUpdateOne {
	if v != nil {
		_u.SetFacilityID(*v)
	}
	return _u
}

// SetSettlementID sets the "settlement_id" field.
func (_u *IdempotencyKeyUpdateOne) SetSettlementID(v uuid.UUID) *IdempotencyKeyUpdateOne {
	_u.mutation.SetSettlementID(v)
	return _u
}

// SetNillableSettlementID sets the "settlement_id" field if the given value is not nil.
func (_u *IdempotencyKeyUpdateOne) SetNillableSettlementID(v *uuid.UUID) *IdempotencyKeyUpdateOne {
	if v != nil {
		_u.SetSettlementID(*v)
	}
	return _u
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (_u *IdempotencyKeyUpdateOne) ClearSettlementID() *IdempotencyKeyUpdateOne {
	_u.mutation.ClearSettlementID()
	return _u
}

// Mutation returns the IdempotencyKeyMutation object of the builder.
func (_u *IdempotencyKeyUpdateOne) Mutation() *IdempotencyKeyMutation {
	return _u.mutation
}

// Where appends a list predicates to the IdempotencyKeyUpdate builder.
func (_u *IdempotencyKeyUpdateOne) Where(ps ...predicate.IdempotencyKey) *IdempotencyKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IdempotencyKeyUpdateOne) Select(field string, fields ...string) *IdempotencyKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IdempotencyKey entity.
func (_u *IdempotencyKeyUpdateOne) Save(ctx context.Context) (*IdempotencyKey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdempotencyKeyUpdateOne) SaveX(ctx context.Context) *IdempotencyKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IdempotencyKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdempotencyKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdempotencyKeyUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := idempotencykey.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`repo: validator failed for field "IdempotencyKey.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := idempotencykey.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`repo: validator failed for field "IdempotencyKey.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *IdempotencyKeyUpdateOne) sqlSave(ctx context.Context) (_node *IdempotencyKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(idempotencykey.Table, idempotencykey.Columns, sqlgraph.NewFieldSpec(idempotencykey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "IdempotencyKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, idempotencykey.FieldID)
		for _, f := range fields {
			if !idempotencykey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != idempotencykey.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(idempotencykey.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(idempotencykey.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacilityID(); ok {
		_spec.SetField(idempotencykey.FieldFacilityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SettlementID(); ok {
		_spec.SetField(idempotencykey.FieldSettlementID, field.TypeUUID, value)
	}
	if _u.mutation.SettlementIDCleared() {
		_spec.ClearField(idempotencykey.FieldSettlementID, field.TypeUUID)
	}
	_node = &IdempotencyKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{idempotencykey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
