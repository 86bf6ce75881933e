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
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// CommissionEntryCreate is the builder for creating a CommissionEntry entity.
type CommissionEntryCreate struct {
	config
	mutation *CommissionEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommissionEntryCreate) SetCreatedAt(v time.Time) *CommissionEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommissionEntryCreate) SetNillableCreatedAt(v *time.Time) *CommissionEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFacilityID sets the "facility_id" field.
func (_c *CommissionEntryCreate) SetFacilityID(v uuid.UUID) *CommissionEntryCreate {
	_c.mutation.SetFacilityID(v)
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *CommissionEntryCreate) SetTransactionID(v uuid.UUID) *CommissionEntryCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *CommissionEntryCreate) SetSeq(v int64) *CommissionEntryCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *CommissionEntryCreate) SetChannel(v commissionentry.Channel) *CommissionEntryCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetGrossAmount sets the "gross_amount" field.
func (_c *CommissionEntryCreate) SetGrossAmount(v int64) *CommissionEntryCreate {
	_c.mutation.SetGrossAmount(v)
	return _c
}

// SetCommissionAmount sets the "commission_amount" field.
func (_c *CommissionEntryCreate) SetCommissionAmount(v int64) *CommissionEntryCreate {
	_c.mutation.SetCommissionAmount(v)
	return _c
}

// SetFacilityShare sets the "facility_share" field.
func (_c *CommissionEntryCreate) SetFacilityShare(v int64) *CommissionEntryCreate {
	_c.mutation.SetFacilityShare(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *CommissionEntryCreate) SetCurrency(v string) *CommissionEntryCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *CommissionEntryCreate) SetOccurredAt(v time.Time) *CommissionEntryCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetSnapshotRate sets the "snapshot_rate" field.
func (_c *CommissionEntryCreate) SetSnapshotRate(v string) *CommissionEntryCreate {
	_c.mutation.SetSnapshotRate(v)
	return _c
}

// SetSnapshotTaxRate sets the "snapshot_tax_rate" field.
func (_c *CommissionEntryCreate) SetSnapshotTaxRate(v string) *CommissionEntryCreate {
	_c.mutation.SetSnapshotTaxRate(v)
	return _c
}

// SetNillableSnapshotTaxRate sets the "snapshot_tax_rate" field if the given value is not nil.
func (_c *CommissionEntryCreate) SetNillableSnapshotTaxRate(v *string) *CommissionEntryCreate {
	if v != nil {
		_c.SetSnapshotTaxRate(*v)
	}
	return _c
}

// SetSnapshotCashType sets the "snapshot_cash_type" field.
func (_c *CommissionEntryCreate) SetSnapshotCashType(v commissionentry.SnapshotCashType) *CommissionEntryCreate {
	_c.mutation.SetSnapshotCashType(v)
	return _c
}

// SetNillableSnapshotCashType sets the "snapshot_cash_type" field if the given value is not nil.
func (_c *CommissionEntryCreate) SetNillableSnapshotCashType(v *commissionentry.SnapshotCashType) *CommissionEntryCreate {
	if v != nil {
		_c.SetSnapshotCashType(*v)
	}
	return _c
}

// SetSnapshotRounding sets the "snapshot_rounding" field.
func (_c *CommissionEntryCreate) SetSnapshotRounding(v commissionentry.SnapshotRounding) *CommissionEntryCreate {
	_c.mutation.SetSnapshotRounding(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommissionEntryCreate) SetStatus(v commissionentry.Status) *CommissionEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommissionEntryCreate) SetNillableStatus(v *commissionentry.Status) *CommissionEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSettlementID sets the "settlement_id" field.
func (_c *CommissionEntryCreate) SetSettlementID(v uuid.UUID) *CommissionEntryCreate {
	_c.mutation.SetSettlementID(v)
	return _c
}

// SetNillableSettlementID sets the "settlement_id" field if the given value is not nil.
func (_c *CommissionEntryCreate) SetNillableSettlementID(v *uuid.UUID) *CommissionEntryCreate {
	if v != nil {
		_c.SetSettlementID(*v)
	}
	return _c
}

// SetReversesEntryID sets the "reverses_entry_id" field.
func (_c *CommissionEntryCreate) SetReversesEntryID(v uuid.UUID) *CommissionEntryCreate {
	_c.mutation.SetReversesEntryID(v)
	return _c
}

// SetNillableReversesEntryID sets the "reverses_entry_id" field if the given value is not nil.
func (_c *CommissionEntryCreate) SetNillableReversesEntryID(v *uuid.UUID) *CommissionEntryCreate {
	if v != nil {
		_c.SetReversesEntryID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommissionEntryCreate) SetID(v uuid.UUID) *CommissionEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CommissionEntryCreate) SetNillableID(v *uuid.UUID) *CommissionEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFacility sets the "facility" edge to the Facility entity.
func (_c *CommissionEntryCreate) SetFacility(v *Facility) *CommissionEntryCreate {
	return _c.SetFacilityID(v.ID)
}

// SetTransaction sets the "transaction" edge to the Transaction entity.
func (_c *CommissionEntryCreate) SetTransaction(v *Transaction) *CommissionEntryCreate {
	return _c.SetTransactionID(v.ID)
}

// AddItemIDs adds the "items" edge to the SettlementItem entity by IDs.
func (_c *CommissionEntryCreate) AddItemIDs(ids ...uuid.UUID) *CommissionEntryCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the SettlementItem entity.
func (_c *CommissionEntryCreate) AddItems(v ...*SettlementItem) *CommissionEntryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the CommissionEntryMutation object of the builder.
func (_c *CommissionEntryCreate) Mutation() *CommissionEntryMutation {
	return _c.mutation
}

// Save creates the CommissionEntry in the database.
func (_c *CommissionEntryCreate) Save(ctx context.Context) (*CommissionEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommissionEntryCreate) SaveX(ctx context.Context) *CommissionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommissionEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commissionentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.SnapshotTaxRate(); !ok {
		v := commissionentry.DefaultSnapshotTaxRate
		_c.mutation.SetSnapshotTaxRate(v)
	}
	if _, ok := _c.mutation.SnapshotCashType(); !ok {
		v := commissionentry.DefaultSnapshotCashType
		_c.mutation.SetSnapshotCashType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := commissionentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := commissionentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommissionEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CommissionEntry.created_at"`)}
	}
	if _, ok := _c.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`repo: missing required field "CommissionEntry.facility_id"`)}
	}
	if _, ok := _c.mutation.TransactionID(); !ok {
		return &ValidationError{Name: "transaction_id", err: errors.New(`repo: missing required field "CommissionEntry.transaction_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`repo: missing required field "CommissionEntry.seq"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`repo: missing required field "CommissionEntry.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := commissionentry.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GrossAmount(); !ok {
		return &ValidationError{Name: "gross_amount", err: errors.New(`repo: missing required field "CommissionEntry.gross_amount"`)}
	}
	if _, ok := _c.mutation.CommissionAmount(); !ok {
		return &ValidationError{Name: "commission_amount", err: errors.New(`repo: missing required field "CommissionEntry.commission_amount"`)}
	}
	if _, ok := _c.mutation.FacilityShare(); !ok {
		return &ValidationError{Name: "facility_share", err: errors.New(`repo: missing required field "CommissionEntry.facility_share"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "CommissionEntry.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := commissionentry.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`repo: missing required field "CommissionEntry.occurred_at"`)}
	}
	if _, ok := _c.mutation.SnapshotRate(); !ok {
		return &ValidationError{Name: "snapshot_rate", err: errors.New(`repo: missing required field "CommissionEntry.snapshot_rate"`)}
	}
	if v, ok := _c.mutation.SnapshotRate(); ok {
		if err := commissionentry.SnapshotRateValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.snapshot_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SnapshotTaxRate(); !ok {
		return &ValidationError{Name: "snapshot_tax_rate", err: errors.New(`repo: missing required field "CommissionEntry.snapshot_tax_rate"`)}
	}
	if v, ok := _c.mutation.SnapshotTaxRate(); ok {
		if err := commissionentry.SnapshotTaxRateValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_tax_rate", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.snapshot_tax_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SnapshotCashType(); !ok {
		return &ValidationError{Name: "snapshot_cash_type", err: errors.New(`repo: missing required field "CommissionEntry.snapshot_cash_type"`)}
	}
	if v, ok := _c.mutation.SnapshotCashType(); ok {
		if err := commissionentry.SnapshotCashTypeValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_cash_type", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.snapshot_cash_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SnapshotRounding(); !ok {
		return &ValidationError{Name: "snapshot_rounding", err: errors.New(`repo: missing required field "CommissionEntry.snapshot_rounding"`)}
	}
	if v, ok := _c.mutation.SnapshotRounding(); ok {
		if err := commissionentry.SnapshotRoundingValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_rounding", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.snapshot_rounding": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "CommissionEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := commissionentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CommissionEntry.status": %w`, err)}
		}
	}
	if len(_c.mutation.FacilityIDs()) == 0 {
		return &ValidationError{Name: "facility", err: errors.New(`repo: missing required edge "CommissionEntry.facility"`)}
	}
	if len(_c.mutation.TransactionIDs()) == 0 {
		return &ValidationError{Name: "transaction", err: errors.New(`repo: missing required edge "CommissionEntry.transaction"`)}
	}
	return nil
}

func (_c *CommissionEntryCreate) sqlSave(ctx context.Context) (*CommissionEntry, error) {
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

func (_c *CommissionEntryCreate) createSpec() (*CommissionEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CommissionEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commissionentry.Table, sqlgraph.NewFieldSpec(commissionentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commissionentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(commissionentry.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(commissionentry.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.GrossAmount(); ok {
		_spec.SetField(commissionentry.FieldGrossAmount, field.TypeInt64, value)
		_node.GrossAmount = value
	}
	if value, ok := _c.mutation.CommissionAmount(); ok {
		_spec.SetField(commissionentry.FieldCommissionAmount, field.TypeInt64, value)
		_node.CommissionAmount = value
	}
	if value, ok := _c.mutation.FacilityShare(); ok {
		_spec.SetField(commissionentry.FieldFacilityShare, field.TypeInt64, value)
		_node.FacilityShare = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(commissionentry.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(commissionentry.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.SnapshotRate(); ok {
		_spec.SetField(commissionentry.FieldSnapshotRate, field.TypeString, value)
		_node.SnapshotRate = value
	}
	if value, ok := _c.mutation.SnapshotTaxRate(); ok {
		_spec.SetField(commissionentry.FieldSnapshotTaxRate, field.TypeString, value)
		_node.SnapshotTaxRate = value
	}
	if value, ok := _c.mutation.SnapshotCashType(); ok {
		_spec.SetField(commissionentry.FieldSnapshotCashType, field.TypeEnum, value)
		_node.SnapshotCashType = value
	}
	if value, ok := _c.mutation.SnapshotRounding(); ok {
		_spec.SetField(commissionentry.FieldSnapshotRounding, field.TypeEnum, value)
		_node.SnapshotRounding = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(commissionentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SettlementID(); ok {
		_spec.SetField(commissionentry.FieldSettlementID, field.TypeUUID, value)
		_node.SettlementID = &value
	}
	if value, ok := _c.mutation.ReversesEntryID(); ok {
		_spec.SetField(commissionentry.FieldReversesEntryID, field.TypeUUID, value)
		_node.ReversesEntryID = &value
	}
	if nodes := _c.mutation.FacilityIDs(); len(nodes) > 0 {
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
		_node.FacilityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TransactionIDs(); len(nodes) > 0 {
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
		_node.TransactionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CommissionEntry.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommissionEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CommissionEntryCreate) OnConflict(opts ...sql.ConflictOption) *CommissionEntryUpsertOne {
	_c.conflict = opts
	return &CommissionEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CommissionEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommissionEntryCreate) OnConflictColumns(columns ...string) *CommissionEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommissionEntryUpsertOne{
		create: _c,
	}
}

type (
	// CommissionEntryUpsertOne is the builder for "upsert"-ing
	//  one CommissionEntry node.
	CommissionEntryUpsertOne struct {
		create *CommissionEntryCreate
	}

	// CommissionEntryUpsert is the "OnConflict" setter.
	CommissionEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetFacilityID sets the "facility_id" field.
func (u *CommissionEntryUpsert) SetFacilityID(v uuid.UUID) *CommissionEntryUpsert {
	u.Set(commissionentry.FieldFacilityID, v)
	return u
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *CommissionEntryUpsert) UpdateFacilityID() *CommissionEntryUpsert {
	u.SetExcluded(commissionentry.FieldFacilityID)
	return u
}

// SetTransactionID sets the "transaction_id" field.
func (u *CommissionEntryUpsert) SetTransactionID(v uuid.UUID) *CommissionEntryUpsert {
	u.Set(commissionentry.FieldTransactionID, v)
	return u
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *CommissionEntryUpsert) UpdateTransactionID() *CommissionEntryUpsert {
	u.SetExcluded(commissionentry.FieldTransactionID)
	return u
}

// SetSeq sets the "seq" field.
func (u *CommissionEntryUpsert) SetSeq(v int64) *CommissionEntryUpsert {
	u.Set(commissionentry.FieldSeq, v)
	return u
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *CommissionEntryUpsert) UpdateSeq() *CommissionEntryUpsert {
	u.SetExcluded(commissionentry.FieldSeq)
	return u
}

// AddSeq adds v to the "seq" field.
func (u *CommissionEntryUpsert) AddSeq(v int64) *CommissionEntryUpsert {
	u.Add(commissionentry.FieldSeq, v)
	return u
}

// SetStatus sets the "status" field.
func (u *CommissionEntryUpsert) SetStatus(v commissionentry.Status) *CommissionEntryUpsert {
	u.Set(commissionentry.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommissionEntryUpsert) UpdateStatus() *CommissionEntryUpsert {
	u.SetExcluded(commissionentry.FieldStatus)
	return u
}

// SetSettlementID sets the "settlement_id" field.
func (u *CommissionEntryUpsert) SetSettlementID(v uuid.UUID) *CommissionEntryUpsert {
	u.Set(commissionentry.FieldSettlementID, v)
	return u
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *CommissionEntryUpsert) UpdateSettlementID() *CommissionEntryUpsert {
	u.SetExcluded(commissionentry.FieldSettlementID)
	return u
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (u *CommissionEntryUpsert) ClearSettlementID() *CommissionEntryUpsert {
	u.SetNull(commissionentry.FieldSettlementID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CommissionEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(commissionentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommissionEntryUpsertOne) UpdateNewValues() *CommissionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(commissionentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(commissionentry.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Channel(); exists {
			s.SetIgnore(commissionentry.FieldChannel)
		}
		if _, exists := u.create.mutation.GrossAmount(); exists {
			s.SetIgnore(commissionentry.FieldGrossAmount)
		}
		if _, exists := u.create.mutation.CommissionAmount(); exists {
			s.SetIgnore(commissionentry.FieldCommissionAmount)
		}
		if _, exists := u.create.mutation.FacilityShare(); exists {
			s.SetIgnore(commissionentry.FieldFacilityShare)
		}
		if _, exists := u.create.mutation.Currency(); exists {
			s.SetIgnore(commissionentry.FieldCurrency)
		}
		if _, exists := u.create.mutation.OccurredAt(); exists {
			s.SetIgnore(commissionentry.FieldOccurredAt)
		}
		if _, exists := u.create.mutation.SnapshotRate(); exists {
			s.SetIgnore(commissionentry.FieldSnapshotRate)
		}
		if _, exists := u.create.mutation.SnapshotTaxRate(); exists {
			s.SetIgnore(commissionentry.FieldSnapshotTaxRate)
		}
		if _, exists := u.create.mutation.SnapshotCashType(); exists {
			s.SetIgnore(commissionentry.FieldSnapshotCashType)
		}
		if _, exists := u.create.mutation.SnapshotRounding(); exists {
			s.SetIgnore(commissionentry.FieldSnapshotRounding)
		}
		if _, exists := u.create.mutation.ReversesEntryID(); exists {
			s.SetIgnore(commissionentry.FieldReversesEntryID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CommissionEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CommissionEntryUpsertOne) Ignore() *CommissionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommissionEntryUpsertOne) DoNothing() *CommissionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommissionEntryCreate.OnConflict
// documentation for more info.
func (u *CommissionEntryUpsertOne) Update(set func(*CommissionEntryUpsert)) *CommissionEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommissionEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetFacilityID sets the "facility_id" field.
func (u *CommissionEntryUpsertOne) SetFacilityID(v uuid.UUID) *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *CommissionEntryUpsertOne) UpdateFacilityID() *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateFacilityID()
	})
}

// SetTransactionID sets the "transaction_id" field.
func (u *CommissionEntryUpsertOne) SetTransactionID(v uuid.UUID) *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *CommissionEntryUpsertOne) UpdateTransactionID() *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateTransactionID()
	})
}

// SetSeq sets the "seq" field.
func (u *CommissionEntryUpsertOne) SetSeq(v int64) *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *CommissionEntryUpsertOne) AddSeq(v int64) *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *CommissionEntryUpsertOne) UpdateSeq() *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateSeq()
	})
}

// SetStatus sets the "status" field.
func (u *CommissionEntryUpsertOne) SetStatus(v commissionentry.Status) *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommissionEntryUpsertOne) UpdateStatus() *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetSettlementID sets the "settlement_id" field.
func (u *CommissionEntryUpsertOne) SetSettlementID(v uuid.UUID) *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetSettlementID(v)
	})
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *CommissionEntryUpsertOne) UpdateSettlementID() *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateSettlementID()
	})
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (u *CommissionEntryUpsertOne) ClearSettlementID() *CommissionEntryUpsertOne {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.ClearSettlementID()
	})
}

// Exec executes the query.
func (u *CommissionEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CommissionEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommissionEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CommissionEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CommissionEntryUpsertOne.ID is not supported by MySQL driver. Use CommissionEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CommissionEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CommissionEntryCreateBulk is the builder for creating many CommissionEntry entities in bulk.
type CommissionEntryCreateBulk struct {
	config
	err      error
	builders []*CommissionEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the CommissionEntry entities in the database.
func (_c *CommissionEntryCreateBulk) Save(ctx context.Context) ([]*CommissionEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommissionEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommissionEntryMutation)
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
func (_c *CommissionEntryCreateBulk) SaveX(ctx context.Context) []*CommissionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommissionEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommissionEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CommissionEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommissionEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CommissionEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *CommissionEntryUpsertBulk {
	_c.conflict = opts
	return &CommissionEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CommissionEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommissionEntryCreateBulk) OnConflictColumns(columns ...string) *CommissionEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommissionEntryUpsertBulk{
		create: _c,
	}
}

// CommissionEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of CommissionEntry nodes.
type CommissionEntryUpsertBulk struct {
	create *CommissionEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CommissionEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(commissionentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommissionEntryUpsertBulk) UpdateNewValues() *CommissionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(commissionentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(commissionentry.FieldCreatedAt)
			}
			if _, exists := b.mutation.Channel(); exists {
				s.SetIgnore(commissionentry.FieldChannel)
			}
			if _, exists := b.mutation.GrossAmount(); exists {
				s.SetIgnore(commissionentry.FieldGrossAmount)
			}
			if _, exists := b.mutation.CommissionAmount(); exists {
				s.SetIgnore(commissionentry.FieldCommissionAmount)
			}
			if _, exists := b.mutation.FacilityShare(); exists {
				s.SetIgnore(commissionentry.FieldFacilityShare)
			}
			if _, exists := b.mutation.Currency(); exists {
				s.SetIgnore(commissionentry.FieldCurrency)
			}
			if _, exists := b.mutation.OccurredAt(); exists {
				s.SetIgnore(commissionentry.FieldOccurredAt)
			}
			if _, exists := b.mutation.SnapshotRate(); exists {
				s.SetIgnore(commissionentry.FieldSnapshotRate)
			}
			if _, exists := b.mutation.SnapshotTaxRate(); exists {
				s.SetIgnore(commissionentry.FieldSnapshotTaxRate)
			}
			if _, exists := b.mutation.SnapshotCashType(); exists {
				s.SetIgnore(commissionentry.FieldSnapshotCashType)
			}
			if _, exists := b.mutation.SnapshotRounding(); exists {
				s.SetIgnore(commissionentry.FieldSnapshotRounding)
			}
			if _, exists := b.mutation.ReversesEntryID(); exists {
				s.SetIgnore(commissionentry.FieldReversesEntryID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CommissionEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CommissionEntryUpsertBulk) Ignore() *CommissionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommissionEntryUpsertBulk) DoNothing() *CommissionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommissionEntryCreateBulk.OnConflict
// documentation for more info.
func (u *CommissionEntryUpsertBulk) Update(set func(*CommissionEntryUpsert)) *CommissionEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommissionEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetFacilityID sets the "facility_id" field.
func (u *CommissionEntryUpsertBulk) SetFacilityID(v uuid.UUID) *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetFacilityID(v)
	})
}

// UpdateFacilityID sets the "facility_id" field to the value that was provided on create.
func (u *CommissionEntryUpsertBulk) UpdateFacilityID() *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateFacilityID()
	})
}

// SetTransactionID sets the "transaction_id" field.
func (u *CommissionEntryUpsertBulk) SetTransactionID(v uuid.UUID) *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *CommissionEntryUpsertBulk) UpdateTransactionID() *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateTransactionID()
	})
}

// SetSeq sets the "seq" field.
func (u *CommissionEntryUpsertBulk) SetSeq(v int64) *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *CommissionEntryUpsertBulk) AddSeq(v int64) *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *CommissionEntryUpsertBulk) UpdateSeq() *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateSeq()
	})
}

// SetStatus sets the "status" field.
func (u *CommissionEntryUpsertBulk) SetStatus(v commissionentry.Status) *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommissionEntryUpsertBulk) UpdateStatus() *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetSettlementID sets the "settlement_id" field.
func (u *CommissionEntryUpsertBulk) SetSettlementID(v uuid.UUID) *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.SetSettlementID(v)
	})
}

// UpdateSettlementID sets the "settlement_id" field to the value that was provided on create.
func (u *CommissionEntryUpsertBulk) UpdateSettlementID() *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.UpdateSettlementID()
	})
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (u *CommissionEntryUpsertBulk) ClearSettlementID() *CommissionEntryUpsertBulk {
	return u.Update(func(s *CommissionEntryUpsert) {
		s.ClearSettlementID()
	})
}

// Exec executes the query.
func (u *CommissionEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CommissionEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CommissionEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommissionEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
