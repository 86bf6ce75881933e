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
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// FacilityCreate is the builder for creating a Facility entity.
type FacilityCreate struct {
	config
	mutation *FacilityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *FacilityCreate) SetCreatedAt(v time.Time) *FacilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FacilityCreate) SetNillableCreatedAt(v *time.Time) *FacilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FacilityCreate) SetUpdatedAt(v time.Time) *FacilityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FacilityCreate) SetNillableUpdatedAt(v *time.Time) *FacilityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *FacilityCreate) SetName(v string) *FacilityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *FacilityCreate) SetCode(v string) *FacilityCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *FacilityCreate) SetCurrency(v string) *FacilityCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *FacilityCreate) SetNillableCurrency(v *string) *FacilityCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *FacilityCreate) SetIsActive(v bool) *FacilityCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *FacilityCreate) SetNillableIsActive(v *bool) *FacilityCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetLedgerSeq sets the "ledger_seq" field.
func (_c *FacilityCreate) SetLedgerSeq(v int64) *FacilityCreate {
	_c.mutation.SetLedgerSeq(v)
	return _c
}

// SetNillableLedgerSeq sets the "ledger_seq" field if the given value is not nil.
func (_c *FacilityCreate) SetNillableLedgerSeq(v *int64) *FacilityCreate {
	if v != nil {
		_c.SetLedgerSeq(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FacilityCreate) SetID(v uuid.UUID) *FacilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FacilityCreate) SetNillableID(v *uuid.UUID) *FacilityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPolicyID sets the "policy" edge to the CommissionPolicy entity by ID.
func (_c *FacilityCreate) SetPolicyID(id uuid.UUID) *FacilityCreate {
	_c.mutation.SetPolicyID(id)
	return _c
}

// SetNillablePolicyID sets the "policy" edge to the CommissionPolicy entity by ID if the given value is not nil.
func (_c *FacilityCreate) SetNillablePolicyID(id *uuid.UUID) *FacilityCreate {
	if id != nil {
		_c = _c.SetPolicyID(*id)
	}
	return _c
}

// SetPolicy sets the "policy" edge to the CommissionPolicy entity.
func (_c *FacilityCreate) SetPolicy(v *CommissionPolicy) *FacilityCreate {
	return _c.SetPolicyID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_c *FacilityCreate) AddTransactionIDs(ids ...uuid.UUID) *FacilityCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_c *FacilityCreate) AddTransactions(v ...*Transaction) *FacilityCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// AddEntryIDs adds the "entries" edge to the CommissionEntry entity by IDs.
func (_c *FacilityCreate) AddEntryIDs(ids ...uuid.UUID) *FacilityCreate {
	_c.mutation.AddEntryIDs(ids...)
	return _c
}

// AddEntries adds the "entries" edges to the CommissionEntry entity.
func (_c *FacilityCreate) AddEntries(v ...*CommissionEntry) *FacilityCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntryIDs(ids...)
}

// AddSettlementIDs adds the "settlements" edge to the Settlement entity by IDs.
func (_c *FacilityCreate) AddSettlementIDs(ids ...uuid.UUID) *FacilityCreate {
	_c.mutation.AddSettlementIDs(ids...)
	return _c
}

// AddSettlements adds the "settlements" edges to the Settlement entity.
func (_c *FacilityCreate) AddSettlements(v ...*Settlement) *FacilityCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSettlementIDs(ids...)
}

// Mutation returns the FacilityMutation object of the builder.
func (_c *FacilityCreate) Mutation() *FacilityMutation {
	return _c.mutation
}

// Save creates the Facility in the database.
func (_c *FacilityCreate) Save(ctx context.Context) (*Facility, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FacilityCreate) SaveX(ctx context.Context) *Facility {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FacilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := facility.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := facility.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := facility.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := facility.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.LedgerSeq(); !ok {
		v := facility.DefaultLedgerSeq
		_c.mutation.SetLedgerSeq(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := facility.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FacilityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Facility.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Facility.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Facility.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := facility.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Facility.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`repo: missing required field "Facility.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := facility.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "Facility.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "Facility.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := facility.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Facility.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Facility.is_active"`)}
	}
	if _, ok := _c.mutation.LedgerSeq(); !ok {
		return &ValidationError{Name: "ledger_seq", err: errors.New(`repo: missing required field "Facility.ledger_seq"`)}
	}
	return nil
}

func (_c *FacilityCreate) sqlSave(ctx context.Context) (*Facility, error) {
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

func (_c *FacilityCreate) createSpec() (*Facility, *sqlgraph.CreateSpec) {
	var (
		_node = &Facility{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(facility.Table, sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(facility.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(facility.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(facility.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(facility.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(facility.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(facility.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.LedgerSeq(); ok {
		_spec.SetField(facility.FieldLedgerSeq, field.TypeInt64, value)
		_node.LedgerSeq = value
	}
	if nodes := _c.mutation.PolicyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   facility.PolicyTable,
			Columns: []string{facility.PolicyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionpolicy.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.TransactionsTable,
			Columns: []string{facility.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.EntriesTable,
			Columns: []string{facility.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SettlementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.SettlementsTable,
			Columns: []string{facility.SettlementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settlement.FieldID, field.TypeUUID),
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
//	client.Facility.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FacilityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FacilityCreate) OnConflict(opts ...sql.ConflictOption) *FacilityUpsertOne {
	_c.conflict = opts
	return &FacilityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Facility.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FacilityCreate) OnConflictColumns(columns ...string) *FacilityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FacilityUpsertOne{
		create: _c,
	}
}

type (
	// FacilityUpsertOne is the builder for "upsert"-ing
	//  one Facility node.
	FacilityUpsertOne struct {
		create *FacilityCreate
	}

	// FacilityUpsert is the "OnConflict" setter.
	FacilityUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *FacilityUpsert) SetUpdatedAt(v time.Time) *FacilityUpsert {
	u.Set(facility.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FacilityUpsert) UpdateUpdatedAt() *FacilityUpsert {
	u.SetExcluded(facility.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *FacilityUpsert) SetName(v string) *FacilityUpsert {
	u.Set(facility.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FacilityUpsert) UpdateName() *FacilityUpsert {
	u.SetExcluded(facility.FieldName)
	return u
}

// SetCode sets the "code" field.
func (u *FacilityUpsert) SetCode(v string) *FacilityUpsert {
	u.Set(facility.FieldCode, v)
	return u
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *FacilityUpsert) UpdateCode() *FacilityUpsert {
	u.SetExcluded(facility.FieldCode)
	return u
}

// SetCurrency sets the "currency" field.
func (u *FacilityUpsert) SetCurrency(v string) *FacilityUpsert {
	u.Set(facility.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *FacilityUpsert) UpdateCurrency() *FacilityUpsert {
	u.SetExcluded(facility.FieldCurrency)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *FacilityUpsert) SetIsActive(v bool) *FacilityUpsert {
	u.Set(facility.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FacilityUpsert) UpdateIsActive() *FacilityUpsert {
	u.SetExcluded(facility.FieldIsActive)
	return u
}

// SetLedgerSeq sets the "ledger_seq" field.
func (u *FacilityUpsert) SetLedgerSeq(v int64) *FacilityUpsert {
	u.Set(facility.FieldLedgerSeq, v)
	return u
}

// UpdateLedgerSeq sets the "ledger_seq" field to the value that was provided on create.
func (u *FacilityUpsert) UpdateLedgerSeq() *FacilityUpsert {
	u.SetExcluded(facility.FieldLedgerSeq)
	return u
}

// AddLedgerSeq adds v to the "ledger_seq" field.
func (u *FacilityUpsert) AddLedgerSeq(v int64) *FacilityUpsert {
	u.Add(facility.FieldLedgerSeq, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Facility.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(facility.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FacilityUpsertOne) UpdateNewValues() *FacilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(facility.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(facility.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Facility.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FacilityUpsertOne) Ignore() *FacilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FacilityUpsertOne) DoNothing() *FacilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FacilityCreate.OnConflict
// documentation for more info.
func (u *FacilityUpsertOne) Update(set func(*FacilityUpsert)) *FacilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FacilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FacilityUpsertOne) SetUpdatedAt(v time.Time) *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FacilityUpsertOne) UpdateUpdatedAt() *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *FacilityUpsertOne) SetName(v string) *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FacilityUpsertOne) UpdateName() *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateName()
	})
}

// SetCode sets the "code" field.
func (u *FacilityUpsertOne) SetCode(v string) *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *FacilityUpsertOne) UpdateCode() *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateCode()
	})
}

// SetCurrency sets the "currency" field.
func (u *FacilityUpsertOne) SetCurrency(v string) *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *FacilityUpsertOne) UpdateCurrency() *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateCurrency()
	})
}

// SetIsActive sets the "is_active" field.
func (u *FacilityUpsertOne) SetIsActive(v bool) *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FacilityUpsertOne) UpdateIsActive() *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateIsActive()
	})
}

// SetLedgerSeq sets the "ledger_seq" field.
func (u *FacilityUpsertOne) SetLedgerSeq(v int64) *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.SetLedgerSeq(v)
	})
}

// AddLedgerSeq adds v to the "ledger_seq" field.
func (u *FacilityUpsertOne) AddLedgerSeq(v int64) *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.AddLedgerSeq(v)
	})
}

// UpdateLedgerSeq sets the "ledger_seq" field to the value that was provided on create.
func (u *FacilityUpsertOne) UpdateLedgerSeq() *FacilityUpsertOne {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateLedgerSeq()
	})
}

// Exec executes the query.
func (u *FacilityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FacilityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FacilityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FacilityUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: FacilityUpsertOne.ID is not supported by MySQL driver. Use FacilityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FacilityUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FacilityCreateBulk is the builder for creating many Facility entities in bulk.
type FacilityCreateBulk struct {
	config
	err      error
	builders []*FacilityCreate
	conflict []sql.ConflictOption
}

// Save creates the Facility entities in the database.
func (_c *FacilityCreateBulk) Save(ctx context.Context) ([]*Facility, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Facility, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FacilityMutation)
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
func (_c *FacilityCreateBulk) SaveX(ctx context.Context) []*Facility {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Facility.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FacilityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FacilityCreateBulk) OnConflict(opts ...sql.ConflictOption) *FacilityUpsertBulk {
	_c.conflict = opts
	return &FacilityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Facility.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FacilityCreateBulk) OnConflictColumns(columns ...string) *FacilityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FacilityUpsertBulk{
		create: _c,
	}
}

// FacilityUpsertBulk is the builder for "upsert"-ing
// a bulk of Facility nodes.
type FacilityUpsertBulk struct {
	create *FacilityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Facility.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(facility.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FacilityUpsertBulk) UpdateNewValues() *FacilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(facility.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(facility.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Facility.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FacilityUpsertBulk) Ignore() *FacilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FacilityUpsertBulk) DoNothing() *FacilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FacilityCreateBulk.OnConflict
// documentation for more info.
func (u *FacilityUpsertBulk) Update(set func(*FacilityUpsert)) *FacilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FacilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FacilityUpsertBulk) SetUpdatedAt(v time.Time) *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FacilityUpsertBulk) UpdateUpdatedAt() *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *FacilityUpsertBulk) SetName(v string) *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FacilityUpsertBulk) UpdateName() *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateName()
	})
}

// SetCode sets the "code" field.
func (u *FacilityUpsertBulk) SetCode(v string) *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *FacilityUpsertBulk) UpdateCode() *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateCode()
	})
}

// SetCurrency sets the "currency" field.
func (u *FacilityUpsertBulk) SetCurrency(v string) *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *FacilityUpsertBulk) UpdateCurrency() *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateCurrency()
	})
}

// SetIsActive sets the "is_active" field.
func (u *FacilityUpsertBulk) SetIsActive(v bool) *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *FacilityUpsertBulk) UpdateIsActive() *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateIsActive()
	})
}

// SetLedgerSeq sets the "ledger_seq" field.
func (u *FacilityUpsertBulk) SetLedgerSeq(v int64) *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.SetLedgerSeq(v)
	})
}

// AddLedgerSeq adds v to the "ledger_seq" field.
func (u *FacilityUpsertBulk) AddLedgerSeq(v int64) *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.AddLedgerSeq(v)
	})
}

// UpdateLedgerSeq sets the "ledger_seq" field to the value that was provided on create.
func (u *FacilityUpsertBulk) UpdateLedgerSeq() *FacilityUpsertBulk {
	return u.Update(func(s *FacilityUpsert) {
		s.UpdateLedgerSeq()
	})
}

// Exec executes the query.
func (u *FacilityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the FacilityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FacilityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FacilityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
