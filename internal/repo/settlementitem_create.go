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
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/google/uuid"
)

// SettlementItemCreate is the builder for creating a SettlementItem entity.
type SettlementItemCreate struct {
	config
	mutation *SettlementItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SettlementItemCreate) SetCreatedAt(v time.Time) *SettlementItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SettlementItemCreate) SetNillableCreatedAt(v *time.Time) *SettlementItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSettlementID sets the "settlement_id" field.
func (_c *SettlementItemCreate) SetSettlementID(v uuid.UUID) *SettlementItemCreate {
	_c.mutation.SetSettlementID(v)
	return _c
}

// SetEntryID sets the "entry_id" field.
func (_c *SettlementItemCreate) SetEntryID(v uuid.UUID) *SettlementItemCreate {
	_c.mutation.SetEntryID(v)
	return _c
}

// SetCommissionAmount sets the "commission_amount" field.
func (_c *SettlementItemCreate) SetCommissionAmount(v int64) *SettlementItemCreate {
	_c.mutation.SetCommissionAmount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SettlementItemCreate) SetID(v uuid.UUID) *SettlementItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SettlementItemCreate) SetNillableID(v *uuid.UUID) *SettlementItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSettlement sets the "settlement" edge to the Settlement entity.
func (_c *SettlementItemCreate) SetSettlement(v *Settlement) *SettlementItemCreate {
	return _c.SetSettlementID(v.ID)
}

// SetEntry sets the "entry" edge to the CommissionEntry entity.
func (_c *SettlementItemCreate) SetEntry(v *CommissionEntry) *SettlementItemCreate {
	return _c.SetEntryID(v.ID)
}

// Mutation returns the SettlementItemMutation object of the builder.
func (_c *SettlementItemCreate) Mutation() *SettlementItemMutation {
	return _c.mutation
}

// Save creates the SettlementItem in the database.
func (_c *SettlementItemCreate) Save(ctx context.Context) (*SettlementItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SettlementItemCreate) SaveX(ctx context.Context) *SettlementItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SettlementItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SettlementItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SettlementItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := settlementitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := settlementitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SettlementItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SettlementItem.created_at"`)}
	}
	if _, ok := _c.mutation.SettlementID(); !ok {
		return &ValidationError{Name: "settlement_id", err: errors.New(`repo: missing required field "SettlementItem.settlement_id"`)}
	}
	if _, ok := _c.mutation.EntryID(); !ok {
		return &ValidationError{Name: "entry_id", err: errors.New(`repo: missing required field "SettlementItem.entry_id"`)}
	}
	if _, ok := _c.mutation.CommissionAmount(); !ok {
		return &ValidationError{Name: "commission_amount", err: errors.New(`repo: missing required field "SettlementItem.commission_amount"`)}
	}
	if len(_c.mutation.SettlementIDs()) == 0 {
		return &ValidationError{Name: "settlement", err: errors.New(`repo: missing required edge "SettlementItem.settlement"`)}
	}
	if len(_c.mutation.EntryIDs()) == 0 {
		return &ValidationError{Name: "entry", err: errors.New(`repo: missing required edge "SettlementItem.entry"`)}
	}
	return nil
}

func (_c *SettlementItemCreate) sqlSave(ctx context.Context) (*SettlementItem, error) {
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

func (_c *SettlementItemCreate) createSpec() (*SettlementItem, *sqlgraph.CreateSpec) {
	var (
		_node = &SettlementItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(settlementitem.Table, sqlgraph.NewFieldSpec(settlementitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(settlementitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CommissionAmount(); ok {
		_spec.SetField(settlementitem.FieldCommissionAmount, field.TypeInt64, value)
		_node.CommissionAmount = value
	}
	if nodes := _c.mutation.SettlementIDs(); len(nodes) > 0 {
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
		_node.SettlementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntryIDs(); len(nodes) > 0 {
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
		_node.EntryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SettlementItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SettlementItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SettlementItemCreate) OnConflict(opts ...sql.ConflictOption) *SettlementItemUpsertOne {
	_c.conflict = opts
	return &SettlementItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SettlementItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SettlementItemCreate) OnConflictColumns(columns ...string) *SettlementItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SettlementItemUpsertOne{
		create: _c,
	}
}

type (
	// SettlementItemUpsertOne is the builder for "upsert"-ing
	//  one SettlementItem node.
	SettlementItemUpsertOne struct {
		create *SettlementItemCreate
	}

	// SettlementItemUpsert is the "OnConflict" setter.
	SettlementItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetSettlementID sets the "settlement_id" field.
func (u *SettlementItemUpsert) SetSettlementID(v uuid.UUID) *SettlementItemUpsert {
	u.Set(settlementitem.FieldSettlementID, v)
	return u
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *SettlementItemUpsert) UpdateSettlementID() *SettlementItemUpsert {
	u.SetExcluded(settlementitem.FieldSettlementID)
	return u
}

// SetEntryID sets the "entry_id" field.
func (u *SettlementItemUpsert) SetEntryID(v uuid.UUID) *SettlementItemUpsert {
	u.Set(settlementitem.FieldEntryID, v)
	return u
}

// UpdateEntryID sets the "entry_id" field to the value that was provided on create.
func (u *SettlementItemUpsert) UpdateEntryID() *SettlementItemUpsert {
	u.SetExcluded(settlementitem.FieldEntryID)
	return u
}

// SetCommissionAmount sets the "commission_amount" field.
func (u *SettlementItemUpsert) SetCommissionAmount(v int64) *SettlementItemUpsert {
	u.Set(settlementitem.FieldCommissionAmount, v)
	return u
}

// UpdateCommissionAmount sets the "commission_amount" field to the value that was provided on create.
func (u *SettlementItemUpsert) UpdateCommissionAmount() *SettlementItemUpsert {
	u.SetExcluded(settlementitem.FieldCommissionAmount)
	return u
}

// AddCommissionAmount adds v to the "commission_amount" field.
func (u *SettlementItemUpsert) AddCommissionAmount(v int64) *SettlementItemUpsert {
	u.Add(settlementitem.FieldCommissionAmount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SettlementItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(settlementitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SettlementItemUpsertOne) UpdateNewValues() *SettlementItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(settlementitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(settlementitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SettlementItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SettlementItemUpsertOne) Ignore() *SettlementItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SettlementItemUpsertOne) DoNothing() *SettlementItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SettlementItemCreate.OnConflict
// documentation for more info.
func (u *SettlementItemUpsertOne) Update(set func(*SettlementItemUpsert)) *SettlementItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SettlementItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetSettlementID sets the "settlement_id" field.
func (u *SettlementItemUpsertOne) SetSettlementID(v uuid.UUID) *SettlementItemUpsertOne {
	return u.Update(func(s *SettlementItemUpsert) {
		s.SetSettlementID(v)
	})
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *SettlementItemUpsertOne) UpdateSettlementID() *SettlementItemUpsertOne {
	return u.Update(func(s *SettlementItemUpsert) {
		s.UpdateSettlementID()
	})
}

// SetEntryID sets the "entry_id" field.
func (u *SettlementItemUpsertOne) SetEntryID(v uuid.UUID) *SettlementItemUpsertOne {
	return u.Update(func(s *SettlementItemUpsert) {
		s.SetEntryID(v)
	})
}

// UpdateEntryID sets the "entry_id" field to the value that was provided on create.
func (u *SettlementItemUpsertOne) UpdateEntryID() *SettlementItemUpsertOne {
	return u.Update(func(s *SettlementItemUpsert) {
		s.UpdateEntryID()
	})
}

// SetCommissionAmount sets the "commission_amount" field.
func (u *SettlementItemUpsertOne) SetCommissionAmount(v int64) *SettlementItemUpsertOne {
	return u.Update(func(s *SettlementItemUpsert) {
		s.SetCommissionAmount(v)
	})
}

// AddCommissionAmount adds v to the "commission_amount" field.
func (u *SettlementItemUpsertOne) AddCommissionAmount(v int64) *SettlementItemUpsertOne {
	return u.Update(func(s *SettlementItemUpsert) {
		s.AddCommissionAmount(v)
	})
}

// UpdateCommissionAmount sets the "commission_amount" field to the value that was provided on create.
func (u *SettlementItemUpsertOne) UpdateCommissionAmount() *SettlementItemUpsertOne {
	return u.Update(func(s *SettlementItemUpsert) {
		s.UpdateCommissionAmount()
	})
}

// Exec executes the query.
func (u *SettlementItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SettlementItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SettlementItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SettlementItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SettlementItemUpsertOne.ID is not supported by MySQL driver. Use SettlementItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SettlementItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SettlementItemCreateBulk is the builder for creating many SettlementItem entities in bulk.
type SettlementItemCreateBulk struct {
	config
	err      error
	builders []*SettlementItemCreate
	conflict []sql.ConflictOption
}

// Save creates the SettlementItem entities in the database.
func (_c *SettlementItemCreateBulk) Save(ctx context.Context) ([]*SettlementItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SettlementItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SettlementItemMutation)
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
func (_c *SettlementItemCreateBulk) SaveX(ctx context.Context) []*SettlementItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SettlementItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SettlementItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SettlementItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SettlementItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SettlementItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *SettlementItemUpsertBulk {
	_c.conflict = opts
	return &SettlementItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SettlementItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SettlementItemCreateBulk) OnConflictColumns(columns ...string) *SettlementItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SettlementItemUpsertBulk{
		create: _c,
	}
}

// SettlementItemUpsertBulk is the builder for "upsert"-ing
// a bulk of SettlementItem nodes.
type SettlementItemUpsertBulk struct {
	create *SettlementItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SettlementItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(settlementitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SettlementItemUpsertBulk) UpdateNewValues() *SettlementItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(settlementitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(settlementitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SettlementItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SettlementItemUpsertBulk) Ignore() *SettlementItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SettlementItemUpsertBulk) DoNothing() *SettlementItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SettlementItemCreateBulk.OnConflict
// documentation for more info.
func (u *SettlementItemUpsertBulk) Update(set func(*SettlementItemUpsert)) *SettlementItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SettlementItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetSettlementID sets the "settlement_id" field.
func (u *SettlementItemUpsertBulk) SetSettlementID(v uuid.UUID) *SettlementItemUpsertBulk {
	return u.Update(func(s *SettlementItemUpsert) {
		s.SetSettlementID(v)
	})
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *SettlementItemUpsertBulk) UpdateSettlementID() *SettlementItemUpsertBulk {
	return u.Update(func(s *SettlementItemUpsert) {
		s.UpdateSettlementID()
	})
}

// SetEntryID sets the "entry_id" field.
func (u *SettlementItemUpsertBulk) SetEntryID(v uuid.UUID) *SettlementItemUpsertBulk {
	return u.Update(func(s *SettlementItemUpsert) {
		s.SetEntryID(v)
	})
}

// UpdateEntryID sets the "entry_id" field to the value that was provided on create.
func (u *SettlementItemUpsertBulk) UpdateEntryID() *SettlementItemUpsertBulk {
	return u.Update(func(s *SettlementItemUpsert) {
		s.UpdateEntryID()
	})
}

// SetCommissionAmount sets the "commission_amount" field.
func (u *SettlementItemUpsertBulk) SetCommissionAmount(v int64) *SettlementItemUpsertBulk {
	return u.Update(func(s *SettlementItemUpsert) {
		s.SetCommissionAmount(v)
	})
}

// AddCommissionAmount adds v to the "commission_amount" field.
func (u *SettlementItemUpsertBulk) AddCommissionAmount(v int64) *SettlementItemUpsertBulk {
	return u.Update(func(s *SettlementItemUpsert) {
		s.AddCommissionAmount(v)
	})
}

// UpdateCommissionAmount sets the "commission_amount" field to the value that was provided on create.
func (u *SettlementItemUpsertBulk) UpdateCommissionAmount() *SettlementItemUpsertBulk {
	return u.Update(func(s *SettlementItemUpsert) {
		s.UpdateCommissionAmount()
	})
}

// Exec executes the query.
func (u *SettlementItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SettlementItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SettlementItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SettlementItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
