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
	"github.com/arogyahq/arogya_backend/internal/repo/idempotencykey"
	"github.com/google/uuid"
)

// IdempotencyKeyCreate is the builder for creating a IdempotencyKey entity.
type IdempotencyKeyCreate struct {
	config
	mutation *IdempotencyKeyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *IdempotencyKeyCreate) SetCreatedAt(v time.Time) *IdempotencyKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IdempotencyKeyCreate) SetNillableCreatedAt(v *time.Time) *IdempotencyKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetKey sets the "key" field.
func (_c *IdempotencyKeyCreate) SetKey(v string) *IdempotencyKeyCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *IdempotencyKeyCreate) SetOperation(v string) *IdempotencyKeyCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetFacilityID sets the "facility_id" field.
func (_c *IdempotencyKeyCreate) SetFacilityID(v uuid.UUID) *IdempotencyKeyCreate {
	_c.mutation.SetFacilityID(v)
	return _c
}

// SetSettlementID sets the "settlement_id" field.
func (_c *IdempotencyKeyCreate) SetSettlementID(v uuid.UUID) *IdempotencyKeyCreate {
	_c.mutation.SetSettlementID(v)
	return _c
}

// SetNillableSettlementID sets the "settlement_id" field if the given value is not nil.
func (_c *IdempotencyKeyCreate) SetNillableSettlementID(v *uuid.UUID) *IdempotencyKeyCreate {
	if v != nil {
		_c.SetSettlementID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IdempotencyKeyCreate) SetID(v uuid.UUID) *IdempotencyKeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IdempotencyKeyCreate) SetNillableID(v *uuid.UUID) *IdempotencyKeyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the IdempotencyKeyMutation object of the builder.
func (_c *IdempotencyKeyCreate) Mutation() *IdempotencyKeyMutation {
	return _c.mutation
}

// Save creates the IdempotencyKey in the database.
func (_c *IdempotencyKeyCreate) Save(ctx context.Context) (*IdempotencyKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IdempotencyKeyCreate) SaveX(ctx context.Context) *IdempotencyKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdempotencyKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdempotencyKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IdempotencyKeyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := idempotencykey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := idempotencykey.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IdempotencyKeyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "IdempotencyKey.created_at"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`repo: missing required field "IdempotencyKey.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := idempotencykey.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`repo: validator failed for field "IdempotencyKey.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`repo: missing required field "IdempotencyKey.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := idempotencykey.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`repo: validator failed for field "IdempotencyKey.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`repo: missing required field "IdempotencyKey.facility_id"`)}
	}
	return nil
}

func (_c *IdempotencyKeyCreate) sqlSave(ctx context.Context) (*IdempotencyKey, error) {
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

func (_c *IdempotencyKeyCreate) createSpec() (*IdempotencyKey, *sqlgraph.CreateSpec) {
	var (
		_node = &IdempotencyKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(idempotencykey.Table, sqlgraph.NewFieldSpec(idempotencykey.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(idempotencykey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(idempotencykey.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(idempotencykey.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.FacilityID(); ok {
		_spec.SetField(idempotencykey.FieldFacilityID, field.TypeUUID, value)
		_node.FacilityID = value
	}
	if value, ok := _c.mutation.SettlementID(); ok {
		_spec.SetField(idempotencykey.FieldSettlementID, field.TypeUUID, value)
		_node.SettlementID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IdempotencyKey.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IdempotencyKeyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *IdempotencyKeyCreate) OnConflict(opts ...sql.ConflictOption) *IdempotencyKeyUpsertOne {
	_c.conflict = opts
	return &IdempotencyKeyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IdempotencyKey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IdempotencyKeyCreate) OnConflictColumns(columns ...string) *IdempotencyKeyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IdempotencyKeyUpsertOne{
		create: _c,
	}
}

type (
	// IdempotencyKeyUpsertOne is the builder for "upsert"-ing
	//  one IdempotencyKey node.
	IdempotencyKeyUpsertOne struct {
		create *IdempotencyKeyCreate
	}

	// IdempotencyKeyUpsert is the "OnConflict" setter.
	IdempotencyKeyUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *IdempotencyKeyUpsert) SetKey(v string) *IdempotencyKeyUpsert {
	u.Set(idempotencykey.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *IdempotencyKeyUpsert) UpdateKey() *IdempotencyKeyUpsert {
	u.SetExcluded(idempotencykey.FieldKey)
	return u
}

// SetOperation sets the "operation" field.
func (u *IdempotencyKeyUpsert) SetOperation(v string) *IdempotencyKeyUpsert {
	u.Set(idempotencykey.FieldOperation, v)
	return u
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *IdempotencyKeyUpsert) UpdateOperation() *IdempotencyKeyUpsert {
	u.SetExcluded(idempotencykey.FieldOperation)
	return u
}

// SetFacilityID sets the "facility_id" field.
func (u *IdempotencyKeyUpsert) SetFacilityID(v uuid.UUID) *IdempotencyKeyUpsert {
	u.Set(idempotencykey.FieldFacilityID, v)
	return u
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *IdempotencyKeyUpsert) UpdateFacilityID() *IdempotencyKeyUpsert {
	u.SetExcluded(idempotencykey.FieldFacilityID)
	return u
}

// SetSettlementID sets the "settlement_id" field.
func (u *IdempotencyKeyUpsert) SetSettlementID(v uuid.UUID) *IdempotencyKeyUpsert {
	u.Set(idempotencykey.FieldSettlementID, v)
	return u
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *IdempotencyKeyUpsert) UpdateSettlementID() *IdempotencyKeyUpsert {
	u.SetExcluded(idempotencykey.FieldSettlementID)
	return u
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (u *IdempotencyKeyUpsert) ClearSettlementID() *IdempotencyKeyUpsert {
	u.SetNull(idempotencykey.FieldSettlementID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.IdempotencyKey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(idempotencykey.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IdempotencyKeyUpsertOne) UpdateNewValues() *IdempotencyKeyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(idempotencykey.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(idempotencykey.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IdempotencyKey.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IdempotencyKeyUpsertOne) Ignore() *IdempotencyKeyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IdempotencyKeyUpsertOne) DoNothing() *IdempotencyKeyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IdempotencyKeyCreate.OnConflict
// documentation for more info.
func (u *IdempotencyKeyUpsertOne) Update(set func(*IdempotencyKeyUpsert)) *IdempotencyKeyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IdempotencyKeyUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *IdempotencyKeyUpsertOne) SetKey(v string) *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *IdempotencyKeyUpsertOne) UpdateKey() *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.UpdateKey()
	})
}

// SetOperation sets the "operation" field.
func (u *IdempotencyKeyUpsertOne) SetOperation(v string) *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *IdempotencyKeyUpsertOne) UpdateOperation() *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.UpdateOperation()
	})
}

// SetFacilityID sets the "facility_id" field.
func (u *IdempotencyKeyUpsertOne) SetFacilityID(v uuid.UUID) *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *IdempotencyKeyUpsertOne) UpdateFacilityID() *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.UpdateFacilityID()
	})
}

// SetSettlementID sets the "settlement_id" field.
func (u *IdempotencyKeyUpsertOne) SetSettlementID(v uuid.UUID) *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.SetSettlementID(v)
	})
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *IdempotencyKeyUpsertOne) UpdateSettlementID() *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.UpdateSettlementID()
	})
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (u *IdempotencyKeyUpsertOne) ClearSettlementID() *IdempotencyKeyUpsertOne {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.ClearSettlementID()
	})
}

// Exec executes the query.
func (u *IdempotencyKeyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for IdempotencyKeyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IdempotencyKeyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IdempotencyKeyUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: IdempotencyKeyUpsertOne.ID is not supported by MySQL driver. Use IdempotencyKeyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IdempotencyKeyUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IdempotencyKeyCreateBulk is the builder for creating many IdempotencyKey entities in bulk.
type IdempotencyKeyCreateBulk struct {
	config
	err      error
	builders []*IdempotencyKeyCreate
	conflict []sql.ConflictOption
}

// Save creates the IdempotencyKey entities in the database.
func (_c *IdempotencyKeyCreateBulk) Save(ctx context.Context) ([]*IdempotencyKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IdempotencyKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IdempotencyKeyMutation)
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
func (_c *IdempotencyKeyCreateBulk) SaveX(ctx context.Context) []*IdempotencyKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdempotencyKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdempotencyKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IdempotencyKey.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IdempotencyKeyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *IdempotencyKeyCreateBulk) OnConflict(opts ...sql.ConflictOption) *IdempotencyKeyUpsertBulk {
	_c.conflict = opts
	return &IdempotencyKeyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IdempotencyKey.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IdempotencyKeyCreateBulk) OnConflictColumns(columns ...string) *IdempotencyKeyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IdempotencyKeyUpsertBulk{
		create: _c,
	}
}

// IdempotencyKeyUpsertBulk is the builder for "upsert"-ing
// a bulk of IdempotencyKey nodes.
type IdempotencyKeyUpsertBulk struct {
	create *IdempotencyKeyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IdempotencyKey.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(idempotencykey.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IdempotencyKeyUpsertBulk) UpdateNewValues() *IdempotencyKeyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(idempotencykey.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(idempotencykey.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IdempotencyKey.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IdempotencyKeyUpsertBulk) Ignore() *IdempotencyKeyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IdempotencyKeyUpsertBulk) DoNothing() *IdempotencyKeyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IdempotencyKeyCreateBulk.OnConflict
// documentation for more info.
func (u *IdempotencyKeyUpsertBulk) Update(set func(*IdempotencyKeyUpsert)) *IdempotencyKeyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IdempotencyKeyUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *IdempotencyKeyUpsertBulk) SetKey(v string) *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *IdempotencyKeyUpsertBulk) UpdateKey() *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.UpdateKey()
	})
}

// SetOperation sets the "operation" field.
func (u *IdempotencyKeyUpsertBulk) SetOperation(v string) *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *IdempotencyKeyUpsertBulk) UpdateOperation() *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.UpdateOperation()
	})
}

// SetFacilityID sets the "facility_id" field.
func (u *IdempotencyKeyUpsertBulk) SetFacilityID(v uuid.UUID) *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *IdempotencyKeyUpsertBulk) UpdateFacilityID() *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.UpdateFacilityID()
	})
}

// SetSettlementID sets the "settlement_id" field.
func (u *IdempotencyKeyUpsertBulk) SetSettlementID(v uuid.UUID) *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.SetSettlementID(v)
	})
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *IdempotencyKeyUpsertBulk) UpdateSettlementID() *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.UpdateSettlementID()
	})
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (u *IdempotencyKeyUpsertBulk) ClearSettlementID() *IdempotencyKeyUpsertBulk {
	return u.Update(func(s *IdempotencyKeyUpsert) {
		s.ClearSettlementID()
	})
}

// Exec executes the query.
func (u *IdempotencyKeyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the IdempotencyKeyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for IdempotencyKeyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IdempotencyKeyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
