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
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

// FacilityUpdate is the builder for updating Facility entities.
type FacilityUpdate struct {
	config
	hooks    []Hook
	mutation *FacilityMutation
}

// Where appends a list predicates to the FacilityUpdate builder.
func (_u *FacilityUpdate) Where(ps ...predicate.Facility) *FacilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FacilityUpdate) SetUpdatedAt(v time.Time) *FacilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FacilityUpdate) SetName(v string) *FacilityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FacilityUpdate) SetNillableName(v *string) *FacilityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *FacilityUpdate) SetCode(v string) *FacilityUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *FacilityUpdate) SetNillableCode(v *string) *FacilityUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *FacilityUpdate) SetCurrency(v string) *FacilityUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *FacilityUpdate) SetNillableCurrency(v *string) *FacilityUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FacilityUpdate) SetIsActive(v bool) *FacilityUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FacilityUpdate) SetNillableIsActive(v *bool) *FacilityUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLedgerSeq sets the "ledger_seq" field.
func (_u *FacilityUpdate) SetLedgerSeq(v int64) *FacilityUpdate {
	_u.mutation.ResetLedgerSeq()
	_u.mutation.SetLedgerSeq(v)
	return _u
}

// SetNillableLedgerSeq sets the "ledger_seq" field if the given value is not nil.
func (_u *FacilityUpdate) SetNillableLedgerSeq(v *int64) *FacilityUpdate {
	if v != nil {
		_u.SetLedgerSeq(*v)
	}
	return _u
}

// AddLedgerSeq adds value to the "ledger_seq" field.
func (_u *FacilityUpdate) AddLedgerSeq(v int64) *FacilityUpdate {
	_u.mutation.AddLedgerSeq(v)
	return _u
}

// SetPolicyID sets the "policy" edge to the CommissionPolicy entity by ID.
func (_u *FacilityUpdate) SetPolicyID(id uuid.UUID) *FacilityUpdate {
	_u.mutation.SetPolicyID(id)
	return _u
}

// SetNillablePolicyID sets the "policy" edge to the CommissionPolicy entity by ID if the given value is not nil.
func (_u *FacilityUpdate) SetNillablePolicyID(id *uuid.UUID) *FacilityUpdate {
	if id != nil {
		_u = _u.SetPolicyID(*id)
	}
	return _u
}

// SetPolicy sets the "policy" edge to the CommissionPolicy entity.
func (_u *FacilityUpdate) SetPolicy(v *CommissionPolicy) *FacilityUpdate {
	return _u.SetPolicyID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *FacilityUpdate) AddTransactionIDs(ids ...uuid.UUID) *FacilityUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *FacilityUpdate) AddTransactions(v ...*Transaction) *FacilityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// AddEntryIDs adds the "entries" edge to the CommissionEntry entity by IDs.
func (_u *FacilityUpdate) AddEntryIDs(ids ...uuid.UUID) *FacilityUpdate {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the CommissionEntry entity.
func (_u *FacilityUpdate) AddEntries(v ...*CommissionEntry) *FacilityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// AddSettlementIDs adds the "settlements" edge to the Settlement entity by IDs.
func (_u *FacilityUpdate) AddSettlementIDs(ids ...uuid.UUID) *FacilityUpdate {
	_u.mutation.AddSettlementIDs(ids...)
	return _u
}

// AddSettlements adds the "settlements" edges to the Settlement entity.
func (_u *FacilityUpdate) AddSettlements(v ...*Settlement) *FacilityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSettlementIDs(ids...)
}

// Mutation returns the FacilityMutation object of the builder.
func (_u *FacilityUpdate) Mutation() *FacilityMutation {
	return _u.mutation
}

// ClearPolicy clears the "policy" edge to the CommissionPolicy entity.
func (_u *FacilityUpdate) ClearPolicy() *FacilityUpdate {
	_u.mutation.ClearPolicy()
	return _u
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *FacilityUpdate) ClearTransactions() *FacilityUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *FacilityUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *FacilityUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *FacilityUpdate) RemoveTransactions(v ...*Transaction) *FacilityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// ClearEntries clears all "entries" edges to the CommissionEntry entity.
func (_u *FacilityUpdate) ClearEntries() *FacilityUpdate {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to CommissionEntry entities by IDs.
func (_u *FacilityUpdate) RemoveEntryIDs(ids ...uuid.UUID) *FacilityUpdate {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to CommissionEntry entities.
func (_u *FacilityUpdate) RemoveEntries(v ...*CommissionEntry) *FacilityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// ClearSettlements clears all "settlements" edges to the Settlement entity.
func (_u *FacilityUpdate) ClearSettlements() *FacilityUpdate {
	_u.mutation.ClearSettlements()
	return _u
}

// RemoveSettlementIDs removes the "settlements" edge to Settlement entities by IDs.
func (_u *FacilityUpdate) RemoveSettlementIDs(ids ...uuid.UUID) *FacilityUpdate {
	_u.mutation.RemoveSettlementIDs(ids...)
	return _u
}

// RemoveSettlements removes "settlements" edges to Settlement entities.
func (_u *FacilityUpdate) RemoveSettlements(v ...*Settlement) *FacilityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSettlementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FacilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FacilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FacilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := facility.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacilityUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := facility.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Facility.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := facility.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "Facility.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := facility.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Facility.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *FacilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facility.Table, facility.Columns, sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(facility.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(facility.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(facility.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(facility.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(facility.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LedgerSeq(); ok {
		_spec.SetField(facility.FieldLedgerSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLedgerSeq(); ok {
		_spec.AddField(facility.FieldLedgerSeq, field.TypeInt64, value)
	}
	if _u.mutation.PolicyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolicyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SettlementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSettlementsIDs(); len(nodes) > 0 && !_u.mutation.SettlementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettlementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facility.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FacilityUpdateOne is the builder for updating a single Facility entity.
type FacilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FacilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FacilityUpdateOne) SetUpdatedAt(v time.Time) *FacilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FacilityUpdateOne) SetName(v string) *FacilityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FacilityUpdateOne) SetNillableName(v *string) *FacilityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *FacilityUpdateOne) SetCode(v string) *FacilityUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *FacilityUpdateOne) SetNillableCode(v *string) *FacilityUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *FacilityUpdateOne) SetCurrency(v string) *FacilityUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *FacilityUpdateOne) SetNillableCurrency(v *string) *FacilityUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FacilityUpdateOne) SetIsActive(v bool) *FacilityUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FacilityUpdateOne) SetNillableIsActive(v *bool) *FacilityUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLedgerSeq sets the "ledger_seq" field.
func (_u *FacilityUpdateOne) SetLedgerSeq(v int64) *FacilityUpdateOne {
	_u.mutation.ResetLedgerSeq()
	_u.mutation.SetLedgerSeq(v)
	return _u
}

// SetNillableLedgerSeq sets the "ledger_seq" field if the given value is not nil.
func (_u *FacilityUpdateOne) SetNillableLedgerSeq(v *int64) *FacilityUpdateOne {
	if v != nil {
		_u.SetLedgerSeq(*v)
	}
	return _u
}

// AddLedgerSeq adds value to the "ledger_seq" field.
func (_u *FacilityUpdateOne) AddLedgerSeq(v int64) *FacilityUpdateOne {
	_u.mutation.AddLedgerSeq(v)
	return _u
}

// SetPolicyID sets the "policy" edge to the CommissionPolicy entity by ID.
func (_u *FacilityUpdateOne) SetPolicyID(id uuid.UUID) *FacilityUpdateOne {
	_u.mutation.SetPolicyID(id)
	return _u
}

// SetNillablePolicyID sets the "policy" edge to the CommissionPolicy entity by ID if the given value is not nil.
func (_u *FacilityUpdateOne) SetNillablePolicyID(id *uuid.UUID) *FacilityUpdateOne {
	if id != nil {
		_u = _u.SetPolicyID(*id)
	}
	return _u
}

// SetPolicy sets the "policy" edge to the CommissionPolicy entity.
func (_u *FacilityUpdateOne) SetPolicy(v *CommissionPolicy) *FacilityUpdateOne {
	return _u.SetPolicyID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *FacilityUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *FacilityUpdateOne) AddTransactions(v ...*Transaction) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// AddEntryIDs adds the "entries" edge to the CommissionEntry entity by IDs.
func (_u *FacilityUpdateOne) AddEntryIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the CommissionEntry entity.
func (_u *FacilityUpdateOne) AddEntries(v ...*CommissionEntry) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// AddSettlementIDs adds the "settlements" edge to the Settlement entity by IDs.
func (_u *FacilityUpdateOne) AddSettlementIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	_u.mutation.AddSettlementIDs(ids...)
	return _u
}

// AddSettlements adds the "settlements" edges to the Settlement entity.
func (_u *FacilityUpdateOne) AddSettlements(v ...*Settlement) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSettlementIDs(ids...)
}

// Mutation returns the FacilityMutation object of the builder.
func (_u *FacilityUpdateOne) Mutation() *FacilityMutation {
	return _u.mutation
}

// ClearPolicy clears the "policy" edge to the CommissionPolicy entity.
func (_u *FacilityUpdateOne) ClearPolicy() *FacilityUpdateOne {
	_u.mutation.ClearPolicy()
	return _u
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *FacilityUpdateOne) ClearTransactions() *FacilityUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *FacilityUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *FacilityUpdateOne) RemoveTransactions(v ...*Transaction) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// ClearEntries clears all "entries" edges to the CommissionEntry entity.
func (_u *FacilityUpdateOne) ClearEntries() *FacilityUpdateOne {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to CommissionEntry entities by IDs.
func (_u *FacilityUpdateOne) RemoveEntryIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to CommissionEntry entities.
func (_u *FacilityUpdateOne) RemoveEntries(v ...*CommissionEntry) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// ClearSettlements clears all "settlements" edges to the Settlement entity.
func (_u *FacilityUpdateOne) ClearSettlements() *FacilityUpdateOne {
	_u.mutation.ClearSettlements()
	return _u
}

// RemoveSettlementIDs removes the "settlements" edge to Settlement entities by IDs.
func (_u *FacilityUpdateOne) RemoveSettlementIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	_u.mutation.RemoveSettlementIDs(ids...)
	return _u
}

// RemoveSettlements removes "settlements" edges to Settlement entities.
func (_u *FacilityUpdateOne) RemoveSettlements(v ...*Settlement) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSettlementIDs(ids...)
}

// Where appends a list predicates to the FacilityUpdate builder.
func (_u *FacilityUpdateOne) Where(ps ...predicate.Facility) *FacilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FacilityUpdateOne) Select(field string, fields ...string) *FacilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Facility entity.
func (_u *FacilityUpdateOne) Save(ctx context.Context) (*Facility, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacilityUpdateOne) SaveX(ctx context.Context) *Facility {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FacilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FacilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := facility.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacilityUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := facility.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Facility.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Code(); ok {
		if err := facility.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`repo: validator failed for field "Facility.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := facility.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Facility.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *FacilityUpdateOne) sqlSave(ctx context.Context) (_node *Facility, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facility.Table, facility.Columns, sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Facility.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facility.FieldID)
		for _, f := range fields {
			if !facility.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != facility.FieldID {
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
		_spec.SetField(facility.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(facility.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(facility.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(facility.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(facility.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LedgerSeq(); ok {
		_spec.SetField(facility.FieldLedgerSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLedgerSeq(); ok {
		_spec.AddField(facility.FieldLedgerSeq, field.TypeInt64, value)
	}
	if _u.mutation.PolicyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolicyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SettlementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSettlementsIDs(); len(nodes) > 0 && !_u.mutation.SettlementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettlementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Facility{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facility.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
