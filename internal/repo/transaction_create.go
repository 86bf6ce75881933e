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
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// TransactionCreate is the builder for creating a Transaction entity.
type TransactionCreate struct {
	config
	mutation *TransactionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransactionCreate) SetCreatedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCreatedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFacilityID sets the "facility_id" field.
func (_c *TransactionCreate) SetFacilityID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetFacilityID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *TransactionCreate) SetChannel(v transaction.Channel) *TransactionCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetGrossAmount sets the "gross_amount" field.
func (_c *TransactionCreate) SetGrossAmount(v int64) *TransactionCreate {
	_c.mutation.SetGrossAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *TransactionCreate) SetCurrency(v string) *TransactionCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *TransactionCreate) SetOccurredAt(v time.Time) *TransactionCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetBillReference sets the "bill_reference" field.
func (_c *TransactionCreate) SetBillReference(v string) *TransactionCreate {
	_c.mutation.SetBillReference(v)
	return _c
}

// SetCollectedBy sets the "collected_by" field.
func (_c *TransactionCreate) SetCollectedBy(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetCollectedBy(v)
	return _c
}

// SetNillableCollectedBy sets the "collected_by" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCollectedBy(v *uuid.UUID) *TransactionCreate {
	if v != nil {
		_c.SetCollectedBy(*v)
	}
	return _c
}

// SetGatewayTxnID sets the "gateway_txn_id" field.
func (_c *TransactionCreate) SetGatewayTxnID(v string) *TransactionCreate {
	_c.mutation.SetGatewayTxnID(v)
	return _c
}

// SetNillableGatewayTxnID sets the "gateway_txn_id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableGatewayTxnID(v *string) *TransactionCreate {
	if v != nil {
		_c.SetGatewayTxnID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TransactionCreate) SetStatus(v transaction.Status) *TransactionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableStatus(v *transaction.Status) *TransactionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransactionCreate) SetID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableID(v *uuid.UUID) *TransactionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_c *TransactionCreate) SetFacility(v *Facility) *TransactionCreate {
	return _c.SetFacilityID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the CommissionEntry entity by IDs.
func (_c *TransactionCreate) AddEntryIDs(ids ...uuid.UUID) *TransactionCreate {
	_c.mutation.AddEntryIDs(ids...)
	return _c
}

// AddEntries adds the "entries" edges to the CommissionEntry entity.
func (_c *TransactionCreate) AddEntries(v ...*CommissionEntry) *TransactionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntryIDs(ids...)
}

// Mutation returns the TransactionMutation object of the builder.
func (_c *TransactionCreate) Mutation() *TransactionMutation {
	return _c.mutation
}

// Save creates the Transaction in the database.
func (_c *TransactionCreate) Save(ctx context.Context) (*Transaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransactionCreate) SaveX(ctx context.Context) *Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransactionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := transaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := transaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransactionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Transaction.created_at"`)}
	}
	if _, ok := _c.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`repo: missing required field "Transaction.facility_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`repo: missing required field "Transaction.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := transaction.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Transaction.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GrossAmount(); !ok {
		return &ValidationError{Name: "gross_amount", err: errors.New(`repo: missing required field "Transaction.gross_amount"`)}
	}
	if v, ok := _c.mutation.GrossAmount(); ok {
		if err := transaction.GrossAmountValidator(v); err != nil {
			return &ValidationError{Name: "gross_amount", err: fmt.Errorf(`repo: validator failed for field "Transaction.gross_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "Transaction.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := transaction.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Transaction.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`repo: missing required field "Transaction.occurred_at"`)}
	}
	if _, ok := _c.mutation.BillReference(); !ok {
		return &ValidationError{Name: "bill_reference", err: errors.New(`repo: missing required field "Transaction.bill_reference"`)}
	}
	if v, ok := _c.mutation.BillReference(); ok {
		if err := transaction.BillReferenceValidator(v); err != nil {
			return &ValidationError{Name: "bill_reference", err: fmt.Errorf(`repo: validator failed for field "Transaction.bill_reference": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GatewayTxnID(); ok {
		if err := transaction.GatewayTxnIDValidator(v); err != nil {
			return &ValidationError{Name: "gateway_txn_id", err: fmt.Errorf(`repo: validator failed for field "Transaction.gateway_txn_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Transaction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := transaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Transaction.status": %w`, err)}
		}
	}
	if len(_c.mutation.FacilityIDs()) == 0 {
		return &ValidationError{Name: "facility", err: errors.New(`repo: missing required edge "Transaction.facility"`)}
	}
	return nil
}

func (_c *TransactionCreate) sqlSave(ctx context.Context) (*Transaction, error) {
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

func (_c *TransactionCreate) createSpec() (*Transaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Transaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transaction.Table, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(transaction.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.GrossAmount(); ok {
		_spec.SetField(transaction.FieldGrossAmount, field.TypeInt64, value)
		_node.GrossAmount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(transaction.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(transaction.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.BillReference(); ok {
		_spec.SetField(transaction.FieldBillReference, field.TypeString, value)
		_node.BillReference = value
	}
	if value, ok := _c.mutation.CollectedBy(); ok {
		_spec.SetField(transaction.FieldCollectedBy, field.TypeUUID, value)
		_node.CollectedBy = &value
	}
	if value, ok := _c.mutation.GatewayTxnID(); ok {
		_spec.SetField(transaction.FieldGatewayTxnID, field.TypeString, value)
		_node.GatewayTxnID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.FacilityIDs(); len(nodes) > 0 {
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
		_node.FacilityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transaction.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TransactionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TransactionCreate) OnConflict(opts ...sql.ConflictOption) *TransactionUpsertOne {
	_c.conflict = opts
	return &TransactionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TransactionCreate) OnConflictColumns(columns ...string) *TransactionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TransactionUpsertOne{
		create: _c,
	}
}

type (
	// TransactionUpsertOne is the builder for "upsert"-ing
	//  one Transaction node.
	TransactionUpsertOne struct {
		create *TransactionCreate
	}

	// TransactionUpsert is the "OnConflict" setter.
	TransactionUpsert struct {
		*sql.UpdateSet
	}
)

// SetFacilityID sets the "facility_id" field.
func (u *TransactionUpsert) SetFacilityID(v uuid.UUID) *TransactionUpsert {
	u.Set(transaction.FieldFacilityID, v)
	return u
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateFacilityID() *TransactionUpsert {
	u.SetExcluded(transaction.FieldFacilityID)
	return u
}

// SetChannel sets the "channel" field.
func (u *TransactionUpsert) SetChannel(v transaction.Channel) *TransactionUpsert {
	u.Set(transaction.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateChannel() *TransactionUpsert {
	u.SetExcluded(transaction.FieldChannel)
	return u
}

// SetGrossAmount sets the "gross_amount" field.
func (u *TransactionUpsert) SetGrossAmount(v int64) *TransactionUpsert {
	u.Set(transaction.FieldGrossAmount, v)
	return u
}

// UpdateGrossAmount sets the "gross_amount" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateGrossAmount() *TransactionUpsert {
	u.SetExcluded(transaction.FieldGrossAmount)
	return u
}

// AddGrossAmount adds v to the "gross_amount" field.
func (u *TransactionUpsert) AddGrossAmount(v int64) *TransactionUpsert {
	u.Add(transaction.FieldGrossAmount, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *TransactionUpsert) SetCurrency(v string) *TransactionUpsert {
	u.Set(transaction.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateCurrency() *TransactionUpsert {
	u.SetExcluded(transaction.FieldCurrency)
	return u
}

// SetOccurredAt sets the "occurred_at" field.
func (u *TransactionUpsert) SetOccurredAt(v time.Time) *TransactionUpsert {
	u.Set(transaction.FieldOccurredAt, v)
	return u
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateOccurredAt() *TransactionUpsert {
	u.SetExcluded(transaction.FieldOccurredAt)
	return u
}

// SetBillReference sets the "bill_reference" field.
func (u *TransactionUpsert) SetBillReference(v string) *TransactionUpsert {
	u.Set(transaction.FieldBillReference, v)
	return u
}

// UpdateBillReference sets the "bill_reference" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateBillReference() *TransactionUpsert {
	u.SetExcluded(transaction.FieldBillReference)
	return u
}

// SetCollectedBy sets the "collected_by" field.
func (u *TransactionUpsert) SetCollectedBy(v uuid.UUID) *TransactionUpsert {
	u.Set(transaction.FieldCollectedBy, v)
	return u
}

// UpdateCollectedBy sets the "collected_by" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateCollectedBy() *TransactionUpsert {
	u.SetExcluded(transaction.FieldCollectedBy)
	return u
}

// ClearCollectedBy clears the value of the "collected_by" field.
func (u *TransactionUpsert) ClearCollectedBy() *TransactionUpsert {
	u.SetNull(transaction.FieldCollectedBy)
	return u
}

// SetGatewayTxnID sets the "gateway_txn_id" field.
func (u *TransactionUpsert) SetGatewayTxnID(v string) *TransactionUpsert {
	u.Set(transaction.FieldGatewayTxnID, v)
	return u
}

// UpdateGatewayTxnID sets the "gateway_txn_id" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateGatewayTxnID() *TransactionUpsert {
	u.SetExcluded(transaction.FieldGatewayTxnID)
	return u
}

// ClearGatewayTxnID clears the value of the "gateway_txn_id" field.
func (u *TransactionUpsert) ClearGatewayTxnID() *TransactionUpsert {
	u.SetNull(transaction.FieldGatewayTxnID)
	return u
}

// SetStatus sets the "status" field.
func (u *TransactionUpsert) SetStatus(v transaction.Status) *TransactionUpsert {
	u.Set(transaction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateStatus() *TransactionUpsert {
	u.SetExcluded(transaction.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TransactionUpsertOne) UpdateNewValues() *TransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(transaction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(transaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TransactionUpsertOne) Ignore() *TransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TransactionUpsertOne) DoNothing() *TransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TransactionCreate.OnConflict
// documentation for more info.
func (u *TransactionUpsertOne) Update(set func(*TransactionUpsert)) *TransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TransactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetFacilityID sets the "facility_id" field.
func (u *TransactionUpsertOne) SetFacilityID(v uuid.UUID) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateFacilityID() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateFacilityID()
	})
}

// SetChannel sets the "channel" field.
func (u *TransactionUpsertOne) SetChannel(v transaction.Channel) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateChannel() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateChannel()
	})
}

// SetGrossAmount sets the "gross_amount" field.
func (u *TransactionUpsertOne) SetGrossAmount(v int64) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetGrossAmount(v)
	})
}

// AddGrossAmount adds v to the "gross_amount" field.
func (u *TransactionUpsertOne) AddGrossAmount(v int64) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.AddGrossAmount(v)
	})
}

// UpdateGrossAmount sets the "gross_amount" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateGrossAmount() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateGrossAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *TransactionUpsertOne) SetCurrency(v string) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateCurrency() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateCurrency()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *TransactionUpsertOne) SetOccurredAt(v time.Time) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateOccurredAt() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateOccurredAt()
	})
}

// SetBillReference sets the "bill_reference" field.
func (u *TransactionUpsertOne) SetBillReference(v string) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetBillReference(v)
	})
}

// UpdateBillReference sets the "bill_reference" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateBillReference() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateBillReference()
	})
}

// SetCollectedBy sets the "collected_by" field.
func (u *TransactionUpsertOne) SetCollectedBy(v uuid.UUID) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetCollectedBy(v)
	})
}

// UpdateCollectedBy sets the "collected_by" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateCollectedBy() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateCollectedBy()
	})
}

// ClearCollectedBy clears the value of the "collected_by" field.
func (u *TransactionUpsertOne) ClearCollectedBy() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearCollectedBy()
	})
}

// SetGatewayTxnID sets the "gateway_txn_id" field.
func (u *TransactionUpsertOne) SetGatewayTxnID(v string) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetGatewayTxnID(v)
	})
}

// UpdateGatewayTxnID sets the "gateway_txn_id" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateGatewayTxnID() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateGatewayTxnID()
	})
}

// ClearGatewayTxnID clears the value of the "gateway_txn_id" field.
func (u *TransactionUpsertOne) ClearGatewayTxnID() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearGatewayTxnID()
	})
}

// SetStatus sets the "status" field.
func (u *TransactionUpsertOne) SetStatus(v transaction.Status) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateStatus() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *TransactionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TransactionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TransactionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TransactionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TransactionUpsertOne.ID is not supported by MySQL driver. Use TransactionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TransactionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TransactionCreateBulk is the builder for creating many Transaction entities in bulk.
type TransactionCreateBulk struct {
	config
	err      error
	builders []*TransactionCreate
	conflict []sql.ConflictOption
}

// Save creates the Transaction entities in the database.
func (_c *TransactionCreateBulk) Save(ctx context.Context) ([]*Transaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransactionMutation)
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
func (_c *TransactionCreateBulk) SaveX(ctx context.Context) []*Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TransactionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TransactionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TransactionUpsertBulk {
	_c.conflict = opts
	return &TransactionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TransactionCreateBulk) OnConflictColumns(columns ...string) *TransactionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TransactionUpsertBulk{
		create: _c,
	}
}

// TransactionUpsertBulk is the builder for "upsert"-ing
// a bulk of Transaction nodes.
type TransactionUpsertBulk struct {
	create *TransactionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TransactionUpsertBulk) UpdateNewValues() *TransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(transaction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(transaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TransactionUpsertBulk) Ignore() *TransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TransactionUpsertBulk) DoNothing() *TransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TransactionCreateBulk.OnConflict
// documentation for more info.
func (u *TransactionUpsertBulk) Update(set func(*TransactionUpsert)) *TransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TransactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetFacilityID sets the "facility_id" field.
func (u *TransactionUpsertBulk) SetFacilityID(v uuid.UUID) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateFacilityID() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateFacilityID()
	})
}

// SetChannel sets the "channel" field.
func (u *TransactionUpsertBulk) SetChannel(v transaction.Channel) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateChannel() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateChannel()
	})
}

// SetGrossAmount sets the "gross_amount" field.
func (u *TransactionUpsertBulk) SetGrossAmount(v int64) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetGrossAmount(v)
	})
}

// AddGrossAmount adds v to the "gross_amount" field.
func (u *TransactionUpsertBulk) AddGrossAmount(v int64) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.AddGrossAmount(v)
	})
}

// UpdateGrossAmount sets the "gross_amount" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateGrossAmount() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateGrossAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *TransactionUpsertBulk) SetCurrency(v string) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateCurrency() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateCurrency()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *TransactionUpsertBulk) SetOccurredAt(v time.Time) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateOccurredAt() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateOccurredAt()
	})
}

// SetBillReference sets the "bill_reference" field.
func (u *TransactionUpsertBulk) SetBillReference(v string) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetBillReference(v)
	})
}

// UpdateBillReference sets the "bill_reference" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateBillReference() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateBillReference()
	})
}

// SetCollectedBy sets the "collected_by" field.
func (u *TransactionUpsertBulk) SetCollectedBy(v uuid.UUID) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetCollectedBy(v)
	})
}

// UpdateCollectedBy sets the "collected_by" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateCollectedBy() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateCollectedBy()
	})
}

// ClearCollectedBy clears the value of the "collected_by" field.
func (u *TransactionUpsertBulk) ClearCollectedBy() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearCollectedBy()
	})
}

// SetGatewayTxnID sets the "gateway_txn_id" field.
func (u *TransactionUpsertBulk) SetGatewayTxnID(v string) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetGatewayTxnID(v)
	})
}

// UpdateGatewayTxnID sets the "gateway_txn_id" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateGatewayTxnID() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateGatewayTxnID()
	})
}

// ClearGatewayTxnID clears the value of the "gateway_txn_id" field.
func (u *TransactionUpsertBulk) ClearGatewayTxnID() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearGatewayTxnID()
	})
}

// SetStatus sets the "status" field.
func (u *TransactionUpsertBulk) SetStatus(v transaction.Status) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateStatus() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *TransactionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TransactionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TransactionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TransactionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
