// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/idempotencykey"
	"github.com/arogyahq/arogya_backend/internal/repo/predicate"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCommissionEntry  = "CommissionEntry"
	TypeCommissionPolicy = "CommissionPolicy"
	TypeFacility         = "Facility"
	TypeIdempotencyKey   = "IdempotencyKey"
	TypeSettlement       = "Settlement"
	TypeSettlementItem   = "SettlementItem"
	TypeTransaction      = "Transaction"
)

// CommissionEntryMutation represents an operation that mutates the CommissionEntry nodes in the graph.
type CommissionEntryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	seq                  *int64
	addseq               *int64
	channel              *commissionentry.Channel
	gross_amount         *int64
	addgross_amount      *int64
	commission_amount    *int64
	addcommission_amount *int64
	facility_share       *int64
	addfacility_share    *int64
	currency             *string
	occurred_at          *time.Time
	snapshot_rate        *string
	snapshot_tax_rate    *string
	snapshot_cash_type   *commissionentry.SnapshotCashType
	snapshot_rounding    *commissionentry.SnapshotRounding
	status               *commissionentry.Status
	settlement_id        *uuid.UUID
	reverses_entry_id    *uuid.UUID
	clearedFields        map[string]struct{}
	facility             *uuid.UUID
	clearedfacility      bool
	transaction          *uuid.UUID
	clearedtransaction   bool
	items                map[uuid.UUID]struct{}
	removeditems         map[uuid.UUID]struct{}
	cleareditems         bool
	done                 bool
	oldValue             func(context.Context) (*CommissionEntry, error)
	predicates           []predicate.CommissionEntry
}

var _ ent.Mutation = (*CommissionEntryMutation)(nil)

// commissionentryOption allows management of the mutation configuration using functional options.
type commissionentryOption func(*CommissionEntryMutation)

// newCommissionEntryMutation creates new mutation for the CommissionEntry entity.
func newCommissionEntryMutation(c config, op Op, opts ...commissionentryOption) *CommissionEntryMutation {
	m := &CommissionEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCommissionEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommissionEntryID sets the ID field of the mutation.
func withCommissionEntryID(id uuid.UUID) commissionentryOption {
	return func(m *CommissionEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CommissionEntry
		)
		m.oldValue = func(ctx context.Context) (*CommissionEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommissionEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommissionEntry sets the old CommissionEntry of the mutation.
func withCommissionEntry(node *CommissionEntry) commissionentryOption {
	return func(m *CommissionEntryMutation) {
		m.oldValue = func(context.Context) (*CommissionEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommissionEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommissionEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommissionEntry entities.
func (m *CommissionEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommissionEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommissionEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommissionEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CommissionEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommissionEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommissionEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFacilityID sets the "facility_id" field.
func (m *CommissionEntryMutation) SetFacilityID(u uuid.UUID) {
	m.facility = &u
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *CommissionEntryMutation) FacilityID() (r uuid.UUID, exists bool) {
	v := m.facility
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldFacilityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *CommissionEntryMutation) ResetFacilityID() {
	m.facility = nil
}

// SetTransactionID sets the "transaction_id" field.
func (m *CommissionEntryMutation) SetTransactionID(u uuid.UUID) {
	m.transaction = &u
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *CommissionEntryMutation) TransactionID() (r uuid.UUID, exists bool) {
	v := m.transaction
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldTransactionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *CommissionEntryMutation) ResetTransactionID() {
	m.transaction = nil
}

// SetSeq sets the "seq" field.
func (m *CommissionEntryMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *CommissionEntryMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *CommissionEntryMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *CommissionEntryMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *CommissionEntryMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetChannel sets the "channel" field.
func (m *CommissionEntryMutation) SetChannel(c commissionentry.Channel) {
	m.channel = &c
}

// Channel returns the value of the "channel" field in the mutation.
func (m *CommissionEntryMutation) Channel() (r commissionentry.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldChannel(ctx context.Context) (v commissionentry.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *CommissionEntryMutation) ResetChannel() {
	m.channel = nil
}

// SetGrossAmount sets the "gross_amount" field.
func (m *CommissionEntryMutation) SetGrossAmount(i int64) {
	m.gross_amount = &i
	m.addgross_amount = nil
}

// GrossAmount returns the value of the "gross_amount" field in the mutation.
func (m *CommissionEntryMutation) GrossAmount() (r int64, exists bool) {
	v := m.gross_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossAmount returns the old "gross_amount" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldGrossAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossAmount: %w", err)
	}
	return oldValue.GrossAmount, nil
}

// AddGrossAmount adds i to the "gross_amount" field.
func (m *CommissionEntryMutation) AddGrossAmount(i int64) {
	if m.addgross_amount != nil {
		*m.addgross_amount += i
	} else {
		m.addgross_amount = &i
	}
}

// AddedGrossAmount returns the value that was added to the "gross_amount" field in this mutation.
func (m *CommissionEntryMutation) AddedGrossAmount() (r int64, exists bool) {
	v := m.addgross_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrossAmount resets all changes to the "gross_amount" field.
func (m *CommissionEntryMutation) ResetGrossAmount() {
	m.gross_amount = nil
	m.addgross_amount = nil
}

// SetCommissionAmount sets the "commission_amount" field.
func (m *CommissionEntryMutation) SetCommissionAmount(i int64) {
	m.commission_amount = &i
	m.addcommission_amount = nil
}

// CommissionAmount returns the value of the "commission_amount" field in the mutation.
func (m *CommissionEntryMutation) CommissionAmount() (r int64, exists bool) {
	v := m.commission_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionAmount returns the old "commission_amount" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldCommissionAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionAmount: %w", err)
	}
	return oldValue.CommissionAmount, nil
}

// AddCommissionAmount adds i to the "commission_amount" field.
func (m *CommissionEntryMutation) AddCommissionAmount(i int64) {
	if m.addcommission_amount != nil {
		*m.addcommission_amount += i
	} else {
		m.addcommission_amount = &i
	}
}

// AddedCommissionAmount returns the value that was added to the "commission_amount" field in this mutation.
func (m *CommissionEntryMutation) AddedCommissionAmount() (r int64, exists bool) {
	v := m.addcommission_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommissionAmount resets all changes to the "commission_amount" field.
func (m *CommissionEntryMutation) ResetCommissionAmount() {
	m.commission_amount = nil
	m.addcommission_amount = nil
}

// SetFacilityShare sets the "facility_share" field.
func (m *CommissionEntryMutation) SetFacilityShare(i int64) {
	m.facility_share = &i
	m.addfacility_share = nil
}

// FacilityShare returns the value of the "facility_share" field in the mutation.
func (m *CommissionEntryMutation) FacilityShare() (r int64, exists bool) {
	v := m.facility_share
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityShare returns the old "facility_share" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldFacilityShare(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityShare: %w", err)
	}
	return oldValue.FacilityShare, nil
}

// AddFacilityShare adds i to the "facility_share" field.
func (m *CommissionEntryMutation) AddFacilityShare(i int64) {
	if m.addfacility_share != nil {
		*m.addfacility_share += i
	} else {
		m.addfacility_share = &i
	}
}

// AddedFacilityShare returns the value that was added to the "facility_share" field in this mutation.
func (m *CommissionEntryMutation) AddedFacilityShare() (r int64, exists bool) {
	v := m.addfacility_share
	if v == nil {
		return
	}
	return *v, true
}

// ResetFacilityShare resets all changes to the "facility_share" field.
func (m *CommissionEntryMutation) ResetFacilityShare() {
	m.facility_share = nil
	m.addfacility_share = nil
}

// SetCurrency sets the "currency" field.
func (m *CommissionEntryMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *CommissionEntryMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *CommissionEntryMutation) ResetCurrency() {
	m.currency = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *CommissionEntryMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *CommissionEntryMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *CommissionEntryMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetSnapshotRate sets the "snapshot_rate" field.
func (m *CommissionEntryMutation) SetSnapshotRate(s string) {
	m.snapshot_rate = &s
}

// SnapshotRate returns the value of the "snapshot_rate" field in the mutation.
func (m *CommissionEntryMutation) SnapshotRate() (r string, exists bool) {
	v := m.snapshot_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotRate returns the old "snapshot_rate" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldSnapshotRate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotRate: %w", err)
	}
	return oldValue.SnapshotRate, nil
}

// ResetSnapshotRate resets all changes to the "snapshot_rate" field.
func (m *CommissionEntryMutation) ResetSnapshotRate() {
	m.snapshot_rate = nil
}

// SetSnapshotTaxRate sets the "snapshot_tax_rate" field.
func (m *CommissionEntryMutation) SetSnapshotTaxRate(s string) {
	m.snapshot_tax_rate = &s
}

// SnapshotTaxRate returns the value of the "snapshot_tax_rate" field in the mutation.
func (m *CommissionEntryMutation) SnapshotTaxRate() (r string, exists bool) {
	v := m.snapshot_tax_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotTaxRate returns the old "snapshot_tax_rate" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldSnapshotTaxRate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotTaxRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotTaxRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotTaxRate: %w", err)
	}
	return oldValue.SnapshotTaxRate, nil
}

// ResetSnapshotTaxRate resets all changes to the "snapshot_tax_rate" field.
func (m *CommissionEntryMutation) ResetSnapshotTaxRate() {
	m.snapshot_tax_rate = nil
}

// SetSnapshotCashType sets the "snapshot_cash_type" field.
func (m *CommissionEntryMutation) SetSnapshotCashType(cct commissionentry.SnapshotCashType) {
	m.snapshot_cash_type = &cct
}

// SnapshotCashType returns the value of the "snapshot_cash_type" field in the mutation.
func (m *CommissionEntryMutation) SnapshotCashType() (r commissionentry.SnapshotCashType, exists bool) {
	v := m.snapshot_cash_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotCashType returns the old "snapshot_cash_type" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldSnapshotCashType(ctx context.Context) (v commissionentry.SnapshotCashType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotCashType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotCashType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotCashType: %w", err)
	}
	return oldValue.SnapshotCashType, nil
}

// ResetSnapshotCashType resets all changes to the "snapshot_cash_type" field.
func (m *CommissionEntryMutation) ResetSnapshotCashType() {
	m.snapshot_cash_type = nil
}

// SetSnapshotRounding sets the "snapshot_rounding" field.
func (m *CommissionEntryMutation) SetSnapshotRounding(cr commissionentry.SnapshotRounding) {
	m.snapshot_rounding = &cr
}

// SnapshotRounding returns the value of the "snapshot_rounding" field in the mutation.
func (m *CommissionEntryMutation) SnapshotRounding() (r commissionentry.SnapshotRounding, exists bool) {
	v := m.snapshot_rounding
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotRounding returns the old "snapshot_rounding" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldSnapshotRounding(ctx context.Context) (v commissionentry.SnapshotRounding, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotRounding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotRounding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotRounding: %w", err)
	}
	return oldValue.SnapshotRounding, nil
}

// ResetSnapshotRounding resets all changes to the "snapshot_rounding" field.
func (m *CommissionEntryMutation) ResetSnapshotRounding() {
	m.snapshot_rounding = nil
}

// SetStatus sets the "status" field.
func (m *CommissionEntryMutation) SetStatus(c commissionentry.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CommissionEntryMutation) Status() (r commissionentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldStatus(ctx context.Context) (v commissionentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommissionEntryMutation) ResetStatus() {
	m.status = nil
}

// SetSettlementID sets the "settlement_id" field.
func (m *CommissionEntryMutation) SetSettlementID(u uuid.UUID) {
	m.settlement_id = &u
}

// SettlementID returns the value of the "settlement_id" field in the mutation.
func (m *CommissionEntryMutation) SettlementID() (r uuid.UUID, exists bool) {
	v := m.settlement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSettlementID returns the old "settlement_id" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldSettlementID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettlementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettlementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettlementID: %w", err)
	}
	return oldValue.SettlementID, nil
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (m *CommissionEntryMutation) ClearSettlementID() {
	m.settlement_id = nil
	m.clearedFields[commissionentry.FieldSettlementID] = struct{}{}
}

// SettlementIDCleared returns if the "settlement_id" field was cleared in this mutation.
func (m *CommissionEntryMutation) SettlementIDCleared() bool {
	_, ok := m.clearedFields[commissionentry.FieldSettlementID]
	return ok
}

// ResetSettlementID resets all changes to the "settlement_id" field.
func (m *CommissionEntryMutation) ResetSettlementID() {
	m.settlement_id = nil
	delete(m.clearedFields, commissionentry.FieldSettlementID)
}

// SetReversesEntryID sets the "reverses_entry_id" field.
func (m *CommissionEntryMutation) SetReversesEntryID(u uuid.UUID) {
	m.reverses_entry_id = &u
}

// ReversesEntryID returns the value of the "reverses_entry_id" field in the mutation.
func (m *CommissionEntryMutation) ReversesEntryID() (r uuid.UUID, exists bool) {
	v := m.reverses_entry_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReversesEntryID returns the old "reverses_entry_id" field's value of the CommissionEntry entity.
// If the CommissionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionEntryMutation) OldReversesEntryID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReversesEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReversesEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReversesEntryID: %w", err)
	}
	return oldValue.ReversesEntryID, nil
}

// ClearReversesEntryID clears the value of the "reverses_entry_id" field.
func (m *CommissionEntryMutation) ClearReversesEntryID() {
	m.reverses_entry_id = nil
	m.clearedFields[commissionentry.FieldReversesEntryID] = struct{}{}
}

// ReversesEntryIDCleared returns if the "reverses_entry_id" field was cleared in this mutation.
func (m *CommissionEntryMutation) ReversesEntryIDCleared() bool {
	_, ok := m.clearedFields[commissionentry.FieldReversesEntryID]
	return ok
}

// ResetReversesEntryID resets all changes to the "reverses_entry_id" field.
func (m *CommissionEntryMutation) ResetReversesEntryID() {
	m.reverses_entry_id = nil
	delete(m.clearedFields, commissionentry.FieldReversesEntryID)
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (m *CommissionEntryMutation) ClearFacility() {
	m.clearedfacility = true
	m.clearedFields[commissionentry.FieldFacilityID] = struct{}{}
}

// FacilityCleared reports if the "facility" edge to the Facility entity was cleared.
func (m *CommissionEntryMutation) FacilityCleared() bool {
	return m.clearedfacility
}

// FacilityIDs returns the "facility" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacilityID instead. It exists only for internal usage by the builders.
func (m *CommissionEntryMutation) FacilityIDs() (ids []uuid.UUID) {
	if id := m.facility; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFacility resets all changes to the "facility" edge.
func (m *CommissionEntryMutation) ResetFacility() {
	m.facility = nil
	m.clearedfacility = false
}

// ClearTransaction clears the "transaction" edge to the Transaction entity.
func (m *CommissionEntryMutation) ClearTransaction() {
	m.clearedtransaction = true
	m.clearedFields[commissionentry.FieldTransactionID] = struct{}{}
}

// TransactionCleared reports if the "transaction" edge to the Transaction entity was cleared.
func (m *CommissionEntryMutation) TransactionCleared() bool {
	return m.clearedtransaction
}

// TransactionIDs returns the "transaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TransactionID instead. It exists only for internal usage by the builders.
func (m *CommissionEntryMutation) TransactionIDs() (ids []uuid.UUID) {
	if id := m.transaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTransaction resets all changes to the "transaction" edge.
func (m *CommissionEntryMutation) ResetTransaction() {
	m.transaction = nil
	m.clearedtransaction = false
}

// AddItemIDs adds the "items" edge to the SettlementItem entity by ids.
func (m *CommissionEntryMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the SettlementItem entity.
func (m *CommissionEntryMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the SettlementItem entity was cleared.
func (m *CommissionEntryMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the SettlementItem entity by IDs.
func (m *CommissionEntryMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the SettlementItem entity.
func (m *CommissionEntryMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *CommissionEntryMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *CommissionEntryMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the CommissionEntryMutation builder.
func (m *CommissionEntryMutation) Where(ps ...predicate.CommissionEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommissionEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommissionEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommissionEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommissionEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommissionEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommissionEntry).
func (m *CommissionEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommissionEntryMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, commissionentry.FieldCreatedAt)
	}
	if m.facility != nil {
		fields = append(fields, commissionentry.FieldFacilityID)
	}
	if m.transaction != nil {
		fields = append(fields, commissionentry.FieldTransactionID)
	}
	if m.seq != nil {
		fields = append(fields, commissionentry.FieldSeq)
	}
	if m.channel != nil {
		fields = append(fields, commissionentry.FieldChannel)
	}
	if m.gross_amount != nil {
		fields = append(fields, commissionentry.FieldGrossAmount)
	}
	if m.commission_amount != nil {
		fields = append(fields, commissionentry.FieldCommissionAmount)
	}
	if m.facility_share != nil {
		fields = append(fields, commissionentry.FieldFacilityShare)
	}
	if m.currency != nil {
		fields = append(fields, commissionentry.FieldCurrency)
	}
	if m.occurred_at != nil {
		fields = append(fields, commissionentry.FieldOccurredAt)
	}
	if m.snapshot_rate != nil {
		fields = append(fields, commissionentry.FieldSnapshotRate)
	}
	if m.snapshot_tax_rate != nil {
		fields = append(fields, commissionentry.FieldSnapshotTaxRate)
	}
	if m.snapshot_cash_type != nil {
		fields = append(fields, commissionentry.FieldSnapshotCashType)
	}
	if m.snapshot_rounding != nil {
		fields = append(fields, commissionentry.FieldSnapshotRounding)
	}
	if m.status != nil {
		fields = append(fields, commissionentry.FieldStatus)
	}
	if m.settlement_id != nil {
		fields = append(fields, commissionentry.FieldSettlementID)
	}
	if m.reverses_entry_id != nil {
		fields = append(fields, commissionentry.FieldReversesEntryID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommissionEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commissionentry.FieldCreatedAt:
		return m.CreatedAt()
	case commissionentry.FieldFacilityID:
		return m.FacilityID()
	case commissionentry.FieldTransactionID:
		return m.TransactionID()
	case commissionentry.FieldSeq:
		return m.Seq()
	case commissionentry.FieldChannel:
		return m.Channel()
	case commissionentry.FieldGrossAmount:
		return m.GrossAmount()
	case commissionentry.FieldCommissionAmount:
		return m.CommissionAmount()
	case commissionentry.FieldFacilityShare:
		return m.FacilityShare()
	case commissionentry.FieldCurrency:
		return m.Currency()
	case commissionentry.FieldOccurredAt:
		return m.OccurredAt()
	case commissionentry.FieldSnapshotRate:
		return m.SnapshotRate()
	case commissionentry.FieldSnapshotTaxRate:
		return m.SnapshotTaxRate()
	case commissionentry.FieldSnapshotCashType:
		return m.SnapshotCashType()
	case commissionentry.FieldSnapshotRounding:
		return m.SnapshotRounding()
	case commissionentry.FieldStatus:
		return m.Status()
	case commissionentry.FieldSettlementID:
		return m.SettlementID()
	case commissionentry.FieldReversesEntryID:
		return m.ReversesEntryID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommissionEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commissionentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case commissionentry.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case commissionentry.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case commissionentry.FieldSeq:
		return m.OldSeq(ctx)
	case commissionentry.FieldChannel:
		return m.OldChannel(ctx)
	case commissionentry.FieldGrossAmount:
		return m.OldGrossAmount(ctx)
	case commissionentry.FieldCommissionAmount:
		return m.OldCommissionAmount(ctx)
	case commissionentry.FieldFacilityShare:
		return m.OldFacilityShare(ctx)
	case commissionentry.FieldCurrency:
		return m.OldCurrency(ctx)
	case commissionentry.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case commissionentry.FieldSnapshotRate:
		return m.OldSnapshotRate(ctx)
	case commissionentry.FieldSnapshotTaxRate:
		return m.OldSnapshotTaxRate(ctx)
	case commissionentry.FieldSnapshotCashType:
		return m.OldSnapshotCashType(ctx)
	case commissionentry.FieldSnapshotRounding:
		return m.OldSnapshotRounding(ctx)
	case commissionentry.FieldStatus:
		return m.OldStatus(ctx)
	case commissionentry.FieldSettlementID:
		return m.OldSettlementID(ctx)
	case commissionentry.FieldReversesEntryID:
		return m.OldReversesEntryID(ctx)
	}
	return nil, fmt.Errorf("unknown CommissionEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commissionentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case commissionentry.FieldFacilityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case commissionentry.FieldTransactionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case commissionentry.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case commissionentry.FieldChannel:
		v, ok := value.(commissionentry.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case commissionentry.FieldGrossAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossAmount(v)
		return nil
	case commissionentry.FieldCommissionAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionAmount(v)
		return nil
	case commissionentry.FieldFacilityShare:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityShare(v)
		return nil
	case commissionentry.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case commissionentry.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case commissionentry.FieldSnapshotRate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotRate(v)
		return nil
	case commissionentry.FieldSnapshotTaxRate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotTaxRate(v)
		return nil
	case commissionentry.FieldSnapshotCashType:
		v, ok := value.(commissionentry.SnapshotCashType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotCashType(v)
		return nil
	case commissionentry.FieldSnapshotRounding:
		v, ok := value.(commissionentry.SnapshotRounding)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotRounding(v)
		return nil
	case commissionentry.FieldStatus:
		v, ok := value.(commissionentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case commissionentry.FieldSettlementID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettlementID(v)
		return nil
	case commissionentry.FieldReversesEntryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReversesEntryID(v)
		return nil
	}
	return fmt.Errorf("unknown CommissionEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommissionEntryMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, commissionentry.FieldSeq)
	}
	if m.addgross_amount != nil {
		fields = append(fields, commissionentry.FieldGrossAmount)
	}
	if m.addcommission_amount != nil {
		fields = append(fields, commissionentry.FieldCommissionAmount)
	}
	if m.addfacility_share != nil {
		fields = append(fields, commissionentry.FieldFacilityShare)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommissionEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case commissionentry.FieldSeq:
		return m.AddedSeq()
	case commissionentry.FieldGrossAmount:
		return m.AddedGrossAmount()
	case commissionentry.FieldCommissionAmount:
		return m.AddedCommissionAmount()
	case commissionentry.FieldFacilityShare:
		return m.AddedFacilityShare()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case commissionentry.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case commissionentry.FieldGrossAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrossAmount(v)
		return nil
	case commissionentry.FieldCommissionAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionAmount(v)
		return nil
	case commissionentry.FieldFacilityShare:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFacilityShare(v)
		return nil
	}
	return fmt.Errorf("unknown CommissionEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommissionEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commissionentry.FieldSettlementID) {
		fields = append(fields, commissionentry.FieldSettlementID)
	}
	if m.FieldCleared(commissionentry.FieldReversesEntryID) {
		fields = append(fields, commissionentry.FieldReversesEntryID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommissionEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommissionEntryMutation) ClearField(name string) error {
	switch name {
	case commissionentry.FieldSettlementID:
		m.ClearSettlementID()
		return nil
	case commissionentry.FieldReversesEntryID:
		m.ClearReversesEntryID()
		return nil
	}
	return fmt.Errorf("unknown CommissionEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommissionEntryMutation) ResetField(name string) error {
	switch name {
	case commissionentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case commissionentry.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case commissionentry.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case commissionentry.FieldSeq:
		m.ResetSeq()
		return nil
	case commissionentry.FieldChannel:
		m.ResetChannel()
		return nil
	case commissionentry.FieldGrossAmount:
		m.ResetGrossAmount()
		return nil
	case commissionentry.FieldCommissionAmount:
		m.ResetCommissionAmount()
		return nil
	case commissionentry.FieldFacilityShare:
		m.ResetFacilityShare()
		return nil
	case commissionentry.FieldCurrency:
		m.ResetCurrency()
		return nil
	case commissionentry.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case commissionentry.FieldSnapshotRate:
		m.ResetSnapshotRate()
		return nil
	case commissionentry.FieldSnapshotTaxRate:
		m.ResetSnapshotTaxRate()
		return nil
	case commissionentry.FieldSnapshotCashType:
		m.ResetSnapshotCashType()
		return nil
	case commissionentry.FieldSnapshotRounding:
		m.ResetSnapshotRounding()
		return nil
	case commissionentry.FieldStatus:
		m.ResetStatus()
		return nil
	case commissionentry.FieldSettlementID:
		m.ResetSettlementID()
		return nil
	case commissionentry.FieldReversesEntryID:
		m.ResetReversesEntryID()
		return nil
	}
	return fmt.Errorf("unknown CommissionEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommissionEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.facility != nil {
		edges = append(edges, commissionentry.EdgeFacility)
	}
	if m.transaction != nil {
		edges = append(edges, commissionentry.EdgeTransaction)
	}
	if m.items != nil {
		edges = append(edges, commissionentry.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommissionEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commissionentry.EdgeFacility:
		if id := m.facility; id != nil {
			return []ent.Value{*id}
		}
	case commissionentry.EdgeTransaction:
		if id := m.transaction; id != nil {
			return []ent.Value{*id}
		}
	case commissionentry.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommissionEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeditems != nil {
		edges = append(edges, commissionentry.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommissionEntryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case commissionentry.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommissionEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfacility {
		edges = append(edges, commissionentry.EdgeFacility)
	}
	if m.clearedtransaction {
		edges = append(edges, commissionentry.EdgeTransaction)
	}
	if m.cleareditems {
		edges = append(edges, commissionentry.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommissionEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case commissionentry.EdgeFacility:
		return m.clearedfacility
	case commissionentry.EdgeTransaction:
		return m.clearedtransaction
	case commissionentry.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommissionEntryMutation) ClearEdge(name string) error {
	switch name {
	case commissionentry.EdgeFacility:
		m.ClearFacility()
		return nil
	case commissionentry.EdgeTransaction:
		m.ClearTransaction()
		return nil
	}
	return fmt.Errorf("unknown CommissionEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommissionEntryMutation) ResetEdge(name string) error {
	switch name {
	case commissionentry.EdgeFacility:
		m.ResetFacility()
		return nil
	case commissionentry.EdgeTransaction:
		m.ResetTransaction()
		return nil
	case commissionentry.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown CommissionEntry edge %s", name)
}

// CommissionPolicyMutation represents an operation that mutates the CommissionPolicy nodes in the graph.
type CommissionPolicyMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	platform_mdr_rate       *string
	gateway_mdr_rate        *string
	tax_on_commission       *bool
	tax_rate                *string
	cash_commission_enabled *bool
	cash_commission_type    *commissionpolicy.CashCommissionType
	cash_commission_value   *string
	rounding_mode           *commissionpolicy.RoundingMode
	clearedFields           map[string]struct{}
	facility                *uuid.UUID
	clearedfacility         bool
	done                    bool
	oldValue                func(context.Context) (*CommissionPolicy, error)
	predicates              []predicate.CommissionPolicy
}

var _ ent.Mutation = (*CommissionPolicyMutation)(nil)

// commissionpolicyOption allows management of the mutation configuration using functional options.
type commissionpolicyOption func(*CommissionPolicyMutation)

// newCommissionPolicyMutation creates new mutation for the CommissionPolicy entity.
func newCommissionPolicyMutation(c config, op Op, opts ...commissionpolicyOption) *CommissionPolicyMutation {
	m := &CommissionPolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeCommissionPolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommissionPolicyID sets the ID field of the mutation.
func withCommissionPolicyID(id uuid.UUID) commissionpolicyOption {
	return func(m *CommissionPolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *CommissionPolicy
		)
		m.oldValue = func(ctx context.Context) (*CommissionPolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommissionPolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommissionPolicy sets the old CommissionPolicy of the mutation.
func withCommissionPolicy(node *CommissionPolicy) commissionpolicyOption {
	return func(m *CommissionPolicyMutation) {
		m.oldValue = func(context.Context) (*CommissionPolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommissionPolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommissionPolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CommissionPolicy entities.
func (m *CommissionPolicyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommissionPolicyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommissionPolicyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommissionPolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CommissionPolicyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommissionPolicyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommissionPolicyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommissionPolicyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommissionPolicyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommissionPolicyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFacilityID sets the "facility_id" field.
func (m *CommissionPolicyMutation) SetFacilityID(u uuid.UUID) {
	m.facility = &u
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *CommissionPolicyMutation) FacilityID() (r uuid.UUID, exists bool) {
	v := m.facility
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldFacilityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *CommissionPolicyMutation) ResetFacilityID() {
	m.facility = nil
}

// SetPlatformMdrRate sets the "platform_mdr_rate" field.
func (m *CommissionPolicyMutation) SetPlatformMdrRate(s string) {
	m.platform_mdr_rate = &s
}

// PlatformMdrRate returns the value of the "platform_mdr_rate" field in the mutation.
func (m *CommissionPolicyMutation) PlatformMdrRate() (r string, exists bool) {
	v := m.platform_mdr_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformMdrRate returns the old "platform_mdr_rate" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldPlatformMdrRate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformMdrRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformMdrRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformMdrRate: %w", err)
	}
	return oldValue.PlatformMdrRate, nil
}

// ResetPlatformMdrRate resets all changes to the "platform_mdr_rate" field.
func (m *CommissionPolicyMutation) ResetPlatformMdrRate() {
	m.platform_mdr_rate = nil
}

// SetGatewayMdrRate sets the "gateway_mdr_rate" field.
func (m *CommissionPolicyMutation) SetGatewayMdrRate(s string) {
	m.gateway_mdr_rate = &s
}

// GatewayMdrRate returns the value of the "gateway_mdr_rate" field in the mutation.
func (m *CommissionPolicyMutation) GatewayMdrRate() (r string, exists bool) {
	v := m.gateway_mdr_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldGatewayMdrRate returns the old "gateway_mdr_rate" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldGatewayMdrRate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatewayMdrRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatewayMdrRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatewayMdrRate: %w", err)
	}
	return oldValue.GatewayMdrRate, nil
}

// ResetGatewayMdrRate resets all changes to the "gateway_mdr_rate" field.
func (m *CommissionPolicyMutation) ResetGatewayMdrRate() {
	m.gateway_mdr_rate = nil
}

// SetTaxOnCommission sets the "tax_on_commission" field.
func (m *CommissionPolicyMutation) SetTaxOnCommission(b bool) {
	m.tax_on_commission = &b
}

// TaxOnCommission returns the value of the "tax_on_commission" field in the mutation.
func (m *CommissionPolicyMutation) TaxOnCommission() (r bool, exists bool) {
	v := m.tax_on_commission
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxOnCommission returns the old "tax_on_commission" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldTaxOnCommission(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxOnCommission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxOnCommission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxOnCommission: %w", err)
	}
	return oldValue.TaxOnCommission, nil
}

// ResetTaxOnCommission resets all changes to the "tax_on_commission" field.
func (m *CommissionPolicyMutation) ResetTaxOnCommission() {
	m.tax_on_commission = nil
}

// SetTaxRate sets the "tax_rate" field.
func (m *CommissionPolicyMutation) SetTaxRate(s string) {
	m.tax_rate = &s
}

// TaxRate returns the value of the "tax_rate" field in the mutation.
func (m *CommissionPolicyMutation) TaxRate() (r string, exists bool) {
	v := m.tax_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxRate returns the old "tax_rate" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldTaxRate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxRate: %w", err)
	}
	return oldValue.TaxRate, nil
}

// ResetTaxRate resets all changes to the "tax_rate" field.
func (m *CommissionPolicyMutation) ResetTaxRate() {
	m.tax_rate = nil
}

// SetCashCommissionEnabled sets the "cash_commission_enabled" field.
func (m *CommissionPolicyMutation) SetCashCommissionEnabled(b bool) {
	m.cash_commission_enabled = &b
}

// CashCommissionEnabled returns the value of the "cash_commission_enabled" field in the mutation.
func (m *CommissionPolicyMutation) CashCommissionEnabled() (r bool, exists bool) {
	v := m.cash_commission_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldCashCommissionEnabled returns the old "cash_commission_enabled" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldCashCommissionEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashCommissionEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashCommissionEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashCommissionEnabled: %w", err)
	}
	return oldValue.CashCommissionEnabled, nil
}

// ResetCashCommissionEnabled resets all changes to the "cash_commission_enabled" field.
func (m *CommissionPolicyMutation) ResetCashCommissionEnabled() {
	m.cash_commission_enabled = nil
}

// SetCashCommissionType sets the "cash_commission_type" field.
func (m *CommissionPolicyMutation) SetCashCommissionType(cct commissionpolicy.CashCommissionType) {
	m.cash_commission_type = &cct
}

// CashCommissionType returns the value of the "cash_commission_type" field in the mutation.
func (m *CommissionPolicyMutation) CashCommissionType() (r commissionpolicy.CashCommissionType, exists bool) {
	v := m.cash_commission_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCashCommissionType returns the old "cash_commission_type" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldCashCommissionType(ctx context.Context) (v commissionpolicy.CashCommissionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashCommissionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashCommissionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashCommissionType: %w", err)
	}
	return oldValue.CashCommissionType, nil
}

// ResetCashCommissionType resets all changes to the "cash_commission_type" field.
func (m *CommissionPolicyMutation) ResetCashCommissionType() {
	m.cash_commission_type = nil
}

// SetCashCommissionValue sets the "cash_commission_value" field.
func (m *CommissionPolicyMutation) SetCashCommissionValue(s string) {
	m.cash_commission_value = &s
}

// CashCommissionValue returns the value of the "cash_commission_value" field in the mutation.
func (m *CommissionPolicyMutation) CashCommissionValue() (r string, exists bool) {
	v := m.cash_commission_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCashCommissionValue returns the old "cash_commission_value" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldCashCommissionValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashCommissionValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashCommissionValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashCommissionValue: %w", err)
	}
	return oldValue.CashCommissionValue, nil
}

// ResetCashCommissionValue resets all changes to the "cash_commission_value" field.
func (m *CommissionPolicyMutation) ResetCashCommissionValue() {
	m.cash_commission_value = nil
}

// SetRoundingMode sets the "rounding_mode" field.
func (m *CommissionPolicyMutation) SetRoundingMode(cm commissionpolicy.RoundingMode) {
	m.rounding_mode = &cm
}

// RoundingMode returns the value of the "rounding_mode" field in the mutation.
func (m *CommissionPolicyMutation) RoundingMode() (r commissionpolicy.RoundingMode, exists bool) {
	v := m.rounding_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundingMode returns the old "rounding_mode" field's value of the CommissionPolicy entity.
// If the CommissionPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommissionPolicyMutation) OldRoundingMode(ctx context.Context) (v commissionpolicy.RoundingMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundingMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundingMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundingMode: %w", err)
	}
	return oldValue.RoundingMode, nil
}

// ResetRoundingMode resets all changes to the "rounding_mode" field.
func (m *CommissionPolicyMutation) ResetRoundingMode() {
	m.rounding_mode = nil
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (m *CommissionPolicyMutation) ClearFacility() {
	m.clearedfacility = true
	m.clearedFields[commissionpolicy.FieldFacilityID] = struct{}{}
}

// FacilityCleared reports if the "facility" edge to the Facility entity was cleared.
func (m *CommissionPolicyMutation) FacilityCleared() bool {
	return m.clearedfacility
}

// FacilityIDs returns the "facility" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacilityID instead. It exists only for internal usage by the builders.
func (m *CommissionPolicyMutation) FacilityIDs() (ids []uuid.UUID) {
	if id := m.facility; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFacility resets all changes to the "facility" edge.
func (m *CommissionPolicyMutation) ResetFacility() {
	m.facility = nil
	m.clearedfacility = false
}

// Where appends a list predicates to the CommissionPolicyMutation builder.
func (m *CommissionPolicyMutation) Where(ps ...predicate.CommissionPolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommissionPolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommissionPolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommissionPolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommissionPolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommissionPolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommissionPolicy).
func (m *CommissionPolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommissionPolicyMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, commissionpolicy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, commissionpolicy.FieldUpdatedAt)
	}
	if m.facility != nil {
		fields = append(fields, commissionpolicy.FieldFacilityID)
	}
	if m.platform_mdr_rate != nil {
		fields = append(fields, commissionpolicy.FieldPlatformMdrRate)
	}
	if m.gateway_mdr_rate != nil {
		fields = append(fields, commissionpolicy.FieldGatewayMdrRate)
	}
	if m.tax_on_commission != nil {
		fields = append(fields, commissionpolicy.FieldTaxOnCommission)
	}
	if m.tax_rate != nil {
		fields = append(fields, commissionpolicy.FieldTaxRate)
	}
	if m.cash_commission_enabled != nil {
		fields = append(fields, commissionpolicy.FieldCashCommissionEnabled)
	}
	if m.cash_commission_type != nil {
		fields = append(fields, commissionpolicy.FieldCashCommissionType)
	}
	if m.cash_commission_value != nil {
		fields = append(fields, commissionpolicy.FieldCashCommissionValue)
	}
	if m.rounding_mode != nil {
		fields = append(fields, commissionpolicy.FieldRoundingMode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommissionPolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commissionpolicy.FieldCreatedAt:
		return m.CreatedAt()
	case commissionpolicy.FieldUpdatedAt:
		return m.UpdatedAt()
	case commissionpolicy.FieldFacilityID:
		return m.FacilityID()
	case commissionpolicy.FieldPlatformMdrRate:
		return m.PlatformMdrRate()
	case commissionpolicy.FieldGatewayMdrRate:
		return m.GatewayMdrRate()
	case commissionpolicy.FieldTaxOnCommission:
		return m.TaxOnCommission()
	case commissionpolicy.FieldTaxRate:
		return m.TaxRate()
	case commissionpolicy.FieldCashCommissionEnabled:
		return m.CashCommissionEnabled()
	case commissionpolicy.FieldCashCommissionType:
		return m.CashCommissionType()
	case commissionpolicy.FieldCashCommissionValue:
		return m.CashCommissionValue()
	case commissionpolicy.FieldRoundingMode:
		return m.RoundingMode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommissionPolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commissionpolicy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case commissionpolicy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case commissionpolicy.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case commissionpolicy.FieldPlatformMdrRate:
		return m.OldPlatformMdrRate(ctx)
	case commissionpolicy.FieldGatewayMdrRate:
		return m.OldGatewayMdrRate(ctx)
	case commissionpolicy.FieldTaxOnCommission:
		return m.OldTaxOnCommission(ctx)
	case commissionpolicy.FieldTaxRate:
		return m.OldTaxRate(ctx)
	case commissionpolicy.FieldCashCommissionEnabled:
		return m.OldCashCommissionEnabled(ctx)
	case commissionpolicy.FieldCashCommissionType:
		return m.OldCashCommissionType(ctx)
	case commissionpolicy.FieldCashCommissionValue:
		return m.OldCashCommissionValue(ctx)
	case commissionpolicy.FieldRoundingMode:
		return m.OldRoundingMode(ctx)
	}
	return nil, fmt.Errorf("unknown CommissionPolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionPolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commissionpolicy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case commissionpolicy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case commissionpolicy.FieldFacilityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case commissionpolicy.FieldPlatformMdrRate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformMdrRate(v)
		return nil
	case commissionpolicy.FieldGatewayMdrRate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatewayMdrRate(v)
		return nil
	case commissionpolicy.FieldTaxOnCommission:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxOnCommission(v)
		return nil
	case commissionpolicy.FieldTaxRate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxRate(v)
		return nil
	case commissionpolicy.FieldCashCommissionEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashCommissionEnabled(v)
		return nil
	case commissionpolicy.FieldCashCommissionType:
		v, ok := value.(commissionpolicy.CashCommissionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashCommissionType(v)
		return nil
	case commissionpolicy.FieldCashCommissionValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashCommissionValue(v)
		return nil
	case commissionpolicy.FieldRoundingMode:
		v, ok := value.(commissionpolicy.RoundingMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundingMode(v)
		return nil
	}
	return fmt.Errorf("unknown CommissionPolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommissionPolicyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommissionPolicyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommissionPolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommissionPolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommissionPolicyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommissionPolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommissionPolicyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CommissionPolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommissionPolicyMutation) ResetField(name string) error {
	switch name {
	case commissionpolicy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case commissionpolicy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case commissionpolicy.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case commissionpolicy.FieldPlatformMdrRate:
		m.ResetPlatformMdrRate()
		return nil
	case commissionpolicy.FieldGatewayMdrRate:
		m.ResetGatewayMdrRate()
		return nil
	case commissionpolicy.FieldTaxOnCommission:
		m.ResetTaxOnCommission()
		return nil
	case commissionpolicy.FieldTaxRate:
		m.ResetTaxRate()
		return nil
	case commissionpolicy.FieldCashCommissionEnabled:
		m.ResetCashCommissionEnabled()
		return nil
	case commissionpolicy.FieldCashCommissionType:
		m.ResetCashCommissionType()
		return nil
	case commissionpolicy.FieldCashCommissionValue:
		m.ResetCashCommissionValue()
		return nil
	case commissionpolicy.FieldRoundingMode:
		m.ResetRoundingMode()
		return nil
	}
	return fmt.Errorf("unknown CommissionPolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommissionPolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.facility != nil {
		edges = append(edges, commissionpolicy.EdgeFacility)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommissionPolicyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case commissionpolicy.EdgeFacility:
		if id := m.facility; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommissionPolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommissionPolicyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommissionPolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfacility {
		edges = append(edges, commissionpolicy.EdgeFacility)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommissionPolicyMutation) EdgeCleared(name string) bool {
	switch name {
	case commissionpolicy.EdgeFacility:
		return m.clearedfacility
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommissionPolicyMutation) ClearEdge(name string) error {
	switch name {
	case commissionpolicy.EdgeFacility:
		m.ClearFacility()
		return nil
	}
	return fmt.Errorf("unknown CommissionPolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommissionPolicyMutation) ResetEdge(name string) error {
	switch name {
	case commissionpolicy.EdgeFacility:
		m.ResetFacility()
		return nil
	}
	return fmt.Errorf("unknown CommissionPolicy edge %s", name)
}

// FacilityMutation represents an operation that mutates the Facility nodes in the graph.
type FacilityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	name                *string
	code                *string
	currency            *string
	is_active           *bool
	ledger_seq          *int64
	addledger_seq       *int64
	clearedFields       map[string]struct{}
	policy              *uuid.UUID
	clearedpolicy       bool
	transactions        map[uuid.UUID]struct{}
	removedtransactions map[uuid.UUID]struct{}
	clearedtransactions bool
	entries             map[uuid.UUID]struct{}
	removedentries      map[uuid.UUID]struct{}
	clearedentries      bool
	settlements         map[uuid.UUID]struct{}
	removedsettlements  map[uuid.UUID]struct{}
	clearedsettlements  bool
	done                bool
	oldValue            func(context.Context) (*Facility, error)
	predicates          []predicate.Facility
}

var _ ent.Mutation = (*FacilityMutation)(nil)

// facilityOption allows management of the mutation configuration using functional options.
type facilityOption func(*FacilityMutation)

// newFacilityMutation creates new mutation for the Facility entity.
func newFacilityMutation(c config, op Op, opts ...facilityOption) *FacilityMutation {
	m := &FacilityMutation{
		config:        c,
		op:            op,
		typ:           TypeFacility,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFacilityID sets the ID field of the mutation.
func withFacilityID(id uuid.UUID) facilityOption {
	return func(m *FacilityMutation) {
		var (
			err   error
			once  sync.Once
			value *Facility
		)
		m.oldValue = func(ctx context.Context) (*Facility, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Facility.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFacility sets the old Facility of the mutation.
func withFacility(node *Facility) facilityOption {
	return func(m *FacilityMutation) {
		m.oldValue = func(context.Context) (*Facility, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FacilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FacilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Facility entities.
func (m *FacilityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FacilityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FacilityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Facility.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FacilityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FacilityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FacilityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FacilityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FacilityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FacilityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *FacilityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FacilityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FacilityMutation) ResetName() {
	m.name = nil
}

// SetCode sets the "code" field.
func (m *FacilityMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *FacilityMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *FacilityMutation) ResetCode() {
	m.code = nil
}

// SetCurrency sets the "currency" field.
func (m *FacilityMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *FacilityMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *FacilityMutation) ResetCurrency() {
	m.currency = nil
}

// SetIsActive sets the "is_active" field.
func (m *FacilityMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FacilityMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FacilityMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLedgerSeq sets the "ledger_seq" field.
func (m *FacilityMutation) SetLedgerSeq(i int64) {
	m.ledger_seq = &i
	m.addledger_seq = nil
}

// LedgerSeq returns the value of the "ledger_seq" field in the mutation.
func (m *FacilityMutation) LedgerSeq() (r int64, exists bool) {
	v := m.ledger_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLedgerSeq returns the old "ledger_seq" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldLedgerSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLedgerSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLedgerSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLedgerSeq: %w", err)
	}
	return oldValue.LedgerSeq, nil
}

// AddLedgerSeq adds i to the "ledger_seq" field.
func (m *FacilityMutation) AddLedgerSeq(i int64) {
	if m.addledger_seq != nil {
		*m.addledger_seq += i
	} else {
		m.addledger_seq = &i
	}
}

// AddedLedgerSeq returns the value that was added to the "ledger_seq" field in this mutation.
func (m *FacilityMutation) AddedLedgerSeq() (r int64, exists bool) {
	v := m.addledger_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLedgerSeq resets all changes to the "ledger_seq" field.
func (m *FacilityMutation) ResetLedgerSeq() {
	m.ledger_seq = nil
	m.addledger_seq = nil
}

// SetPolicyID sets the "policy" edge to the CommissionPolicy entity by id.
func (m *FacilityMutation) SetPolicyID(id uuid.UUID) {
	m.policy = &id
}

// ClearPolicy clears the "policy" edge to the CommissionPolicy entity.
func (m *FacilityMutation) ClearPolicy() {
	m.clearedpolicy = true
}

// PolicyCleared reports if the "policy" edge to the CommissionPolicy entity was cleared.
func (m *FacilityMutation) PolicyCleared() bool {
	return m.clearedpolicy
}

// PolicyID returns the "policy" edge ID in the mutation.
func (m *FacilityMutation) PolicyID() (id uuid.UUID, exists bool) {
	if m.policy != nil {
		return *m.policy, true
	}
	return
}

// PolicyIDs returns the "policy" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PolicyID instead. It exists only for internal usage by the builders.
func (m *FacilityMutation) PolicyIDs() (ids []uuid.UUID) {
	if id := m.policy; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPolicy resets all changes to the "policy" edge.
func (m *FacilityMutation) ResetPolicy() {
	m.policy = nil
	m.clearedpolicy = false
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *FacilityMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *FacilityMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *FacilityMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *FacilityMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *FacilityMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *FacilityMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *FacilityMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// AddEntryIDs adds the "entries" edge to the CommissionEntry entity by ids.
func (m *FacilityMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the CommissionEntry entity.
func (m *FacilityMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the CommissionEntry entity was cleared.
func (m *FacilityMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the CommissionEntry entity by IDs.
func (m *FacilityMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the CommissionEntry entity.
func (m *FacilityMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *FacilityMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *FacilityMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// AddSettlementIDs adds the "settlements" edge to the Settlement entity by ids.
func (m *FacilityMutation) AddSettlementIDs(ids ...uuid.UUID) {
	if m.settlements == nil {
		m.settlements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.settlements[ids[i]] = struct{}{}
	}
}

// ClearSettlements clears the "settlements" edge to the Settlement entity.
func (m *FacilityMutation) ClearSettlements() {
	m.clearedsettlements = true
}

// SettlementsCleared reports if the "settlements" edge to the Settlement entity was cleared.
func (m *FacilityMutation) SettlementsCleared() bool {
	return m.clearedsettlements
}

// RemoveSettlementIDs removes the "settlements" edge to the Settlement entity by IDs.
func (m *FacilityMutation) RemoveSettlementIDs(ids ...uuid.UUID) {
	if m.removedsettlements == nil {
		m.removedsettlements = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.settlements, ids[i])
		m.removedsettlements[ids[i]] = struct{}{}
	}
}

// RemovedSettlements returns the removed IDs of the "settlements" edge to the Settlement entity.
func (m *FacilityMutation) RemovedSettlementsIDs() (ids []uuid.UUID) {
	for id := range m.removedsettlements {
		ids = append(ids, id)
	}
	return
}

// SettlementsIDs returns the "settlements" edge IDs in the mutation.
func (m *FacilityMutation) SettlementsIDs() (ids []uuid.UUID) {
	for id := range m.settlements {
		ids = append(ids, id)
	}
	return
}

// ResetSettlements resets all changes to the "settlements" edge.
func (m *FacilityMutation) ResetSettlements() {
	m.settlements = nil
	m.clearedsettlements = false
	m.removedsettlements = nil
}

// Where appends a list predicates to the FacilityMutation builder.
func (m *FacilityMutation) Where(ps ...predicate.Facility) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FacilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FacilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Facility, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FacilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FacilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Facility).
func (m *FacilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FacilityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, facility.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, facility.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, facility.FieldName)
	}
	if m.code != nil {
		fields = append(fields, facility.FieldCode)
	}
	if m.currency != nil {
		fields = append(fields, facility.FieldCurrency)
	}
	if m.is_active != nil {
		fields = append(fields, facility.FieldIsActive)
	}
	if m.ledger_seq != nil {
		fields = append(fields, facility.FieldLedgerSeq)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FacilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case facility.FieldCreatedAt:
		return m.CreatedAt()
	case facility.FieldUpdatedAt:
		return m.UpdatedAt()
	case facility.FieldName:
		return m.Name()
	case facility.FieldCode:
		return m.Code()
	case facility.FieldCurrency:
		return m.Currency()
	case facility.FieldIsActive:
		return m.IsActive()
	case facility.FieldLedgerSeq:
		return m.LedgerSeq()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FacilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case facility.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case facility.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case facility.FieldName:
		return m.OldName(ctx)
	case facility.FieldCode:
		return m.OldCode(ctx)
	case facility.FieldCurrency:
		return m.OldCurrency(ctx)
	case facility.FieldIsActive:
		return m.OldIsActive(ctx)
	case facility.FieldLedgerSeq:
		return m.OldLedgerSeq(ctx)
	}
	return nil, fmt.Errorf("unknown Facility field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case facility.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case facility.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case facility.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case facility.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case facility.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case facility.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case facility.FieldLedgerSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLedgerSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Facility field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FacilityMutation) AddedFields() []string {
	var fields []string
	if m.addledger_seq != nil {
		fields = append(fields, facility.FieldLedgerSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FacilityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case facility.FieldLedgerSeq:
		return m.AddedLedgerSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case facility.FieldLedgerSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLedgerSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Facility numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FacilityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FacilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FacilityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Facility nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FacilityMutation) ResetField(name string) error {
	switch name {
	case facility.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case facility.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case facility.FieldName:
		m.ResetName()
		return nil
	case facility.FieldCode:
		m.ResetCode()
		return nil
	case facility.FieldCurrency:
		m.ResetCurrency()
		return nil
	case facility.FieldIsActive:
		m.ResetIsActive()
		return nil
	case facility.FieldLedgerSeq:
		m.ResetLedgerSeq()
		return nil
	}
	return fmt.Errorf("unknown Facility field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FacilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.policy != nil {
		edges = append(edges, facility.EdgePolicy)
	}
	if m.transactions != nil {
		edges = append(edges, facility.EdgeTransactions)
	}
	if m.entries != nil {
		edges = append(edges, facility.EdgeEntries)
	}
	if m.settlements != nil {
		edges = append(edges, facility.EdgeSettlements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FacilityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case facility.EdgePolicy:
		if id := m.policy; id != nil {
			return []ent.Value{*id}
		}
	case facility.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	case facility.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	case facility.EdgeSettlements:
		ids := make([]ent.Value, 0, len(m.settlements))
		for id := range m.settlements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FacilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtransactions != nil {
		edges = append(edges, facility.EdgeTransactions)
	}
	if m.removedentries != nil {
		edges = append(edges, facility.EdgeEntries)
	}
	if m.removedsettlements != nil {
		edges = append(edges, facility.EdgeSettlements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FacilityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case facility.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	case facility.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	case facility.EdgeSettlements:
		ids := make([]ent.Value, 0, len(m.removedsettlements))
		for id := range m.removedsettlements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FacilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedpolicy {
		edges = append(edges, facility.EdgePolicy)
	}
	if m.clearedtransactions {
		edges = append(edges, facility.EdgeTransactions)
	}
	if m.clearedentries {
		edges = append(edges, facility.EdgeEntries)
	}
	if m.clearedsettlements {
		edges = append(edges, facility.EdgeSettlements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FacilityMutation) EdgeCleared(name string) bool {
	switch name {
	case facility.EdgePolicy:
		return m.clearedpolicy
	case facility.EdgeTransactions:
		return m.clearedtransactions
	case facility.EdgeEntries:
		return m.clearedentries
	case facility.EdgeSettlements:
		return m.clearedsettlements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FacilityMutation) ClearEdge(name string) error {
	switch name {
	case facility.EdgePolicy:
		m.ClearPolicy()
		return nil
	}
	return fmt.Errorf("unknown Facility unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FacilityMutation) ResetEdge(name string) error {
	switch name {
	case facility.EdgePolicy:
		m.ResetPolicy()
		return nil
	case facility.EdgeTransactions:
		m.ResetTransactions()
		return nil
	case facility.EdgeEntries:
		m.ResetEntries()
		return nil
	case facility.EdgeSettlements:
		m.ResetSettlements()
		return nil
	}
	return fmt.Errorf("unknown Facility edge %s", name)
}

// IdempotencyKeyMutation represents an operation that mutates the IdempotencyKey nodes in the graph.
type IdempotencyKeyMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	key           *string
	operation     *string
	facility_id   *uuid.UUID
	settlement_id *uuid.UUID
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IdempotencyKey, error)
	predicates    []predicate.IdempotencyKey
}

var _ ent.Mutation = (*IdempotencyKeyMutation)(nil)

// idempotencykeyOption allows management of the mutation configuration using functional options.
type idempotencykeyOption func(*IdempotencyKeyMutation)

// newIdempotencyKeyMutation creates new mutation for the IdempotencyKey entity.
func newIdempotencyKeyMutation(c config, op Op, opts ...idempotencykeyOption) *IdempotencyKeyMutation {
	m := &IdempotencyKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeIdempotencyKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdempotencyKeyID sets the ID field of the mutation.
func withIdempotencyKeyID(id uuid.UUID) idempotencykeyOption {
	return func(m *IdempotencyKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *IdempotencyKey
		)
		m.oldValue = func(ctx context.Context) (*IdempotencyKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IdempotencyKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdempotencyKey sets the old IdempotencyKey of the mutation.
func withIdempotencyKey(node *IdempotencyKey) idempotencykeyOption {
	return func(m *IdempotencyKeyMutation) {
		m.oldValue = func(context.Context) (*IdempotencyKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdempotencyKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdempotencyKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IdempotencyKey entities.
func (m *IdempotencyKeyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdempotencyKeyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdempotencyKeyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IdempotencyKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *IdempotencyKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdempotencyKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdempotencyKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetKey sets the "key" field.
func (m *IdempotencyKeyMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *IdempotencyKeyMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *IdempotencyKeyMutation) ResetKey() {
	m.key = nil
}

// SetOperation sets the "operation" field.
func (m *IdempotencyKeyMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *IdempotencyKeyMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *IdempotencyKeyMutation) ResetOperation() {
	m.operation = nil
}

// SetFacilityID sets the "facility_id" field.
func (m *IdempotencyKeyMutation) SetFacilityID(u uuid.UUID) {
	m.facility_id = &u
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *IdempotencyKeyMutation) FacilityID() (r uuid.UUID, exists bool) {
	v := m.facility_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldFacilityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *IdempotencyKeyMutation) ResetFacilityID() {
	m.facility_id = nil
}

// SetSettlementID sets the "settlement_id" field.
func (m *IdempotencyKeyMutation) SetSettlementID(u uuid.UUID) {
	m.settlement_id = &u
}

// SettlementID returns the value of the "settlement_id" field in the mutation.
func (m *IdempotencyKeyMutation) SettlementID() (r uuid.UUID, exists bool) {
	v := m.settlement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSettlementID returns the old "settlement_id" field's value of the IdempotencyKey entity.
// If the IdempotencyKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdempotencyKeyMutation) OldSettlementID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettlementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettlementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettlementID: %w", err)
	}
	return oldValue.SettlementID, nil
}

// ClearSettlementID clears the value of the "settlement_id" field.
func (m *IdempotencyKeyMutation) ClearSettlementID() {
	m.settlement_id = nil
	m.clearedFields[idempotencykey.FieldSettlementID] = struct{}{}
}

// SettlementIDCleared returns if the "settlement_id" field was cleared in this mutation.
func (m *IdempotencyKeyMutation) SettlementIDCleared() bool {
	_, ok := m.clearedFields[idempotencykey.FieldSettlementID]
	return ok
}

// ResetSettlementID resets all changes to the "settlement_id" field.
func (m *IdempotencyKeyMutation) ResetSettlementID() {
	m.settlement_id = nil
	delete(m.clearedFields, idempotencykey.FieldSettlementID)
}

// Where appends a list predicates to the IdempotencyKeyMutation builder.
func (m *IdempotencyKeyMutation) Where(ps ...predicate.IdempotencyKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdempotencyKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdempotencyKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IdempotencyKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdempotencyKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdempotencyKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IdempotencyKey).
func (m *IdempotencyKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdempotencyKeyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, idempotencykey.FieldCreatedAt)
	}
	if m.key != nil {
		fields = append(fields, idempotencykey.FieldKey)
	}
	if m.operation != nil {
		fields = append(fields, idempotencykey.FieldOperation)
	}
	if m.facility_id != nil {
		fields = append(fields, idempotencykey.FieldFacilityID)
	}
	if m.settlement_id != nil {
		fields = append(fields, idempotencykey.FieldSettlementID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdempotencyKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case idempotencykey.FieldCreatedAt:
		return m.CreatedAt()
	case idempotencykey.FieldKey:
		return m.Key()
	case idempotencykey.FieldOperation:
		return m.Operation()
	case idempotencykey.FieldFacilityID:
		return m.FacilityID()
	case idempotencykey.FieldSettlementID:
		return m.SettlementID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdempotencyKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case idempotencykey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case idempotencykey.FieldKey:
		return m.OldKey(ctx)
	case idempotencykey.FieldOperation:
		return m.OldOperation(ctx)
	case idempotencykey.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case idempotencykey.FieldSettlementID:
		return m.OldSettlementID(ctx)
	}
	return nil, fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case idempotencykey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case idempotencykey.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case idempotencykey.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case idempotencykey.FieldFacilityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case idempotencykey.FieldSettlementID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettlementID(v)
		return nil
	}
	return fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdempotencyKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdempotencyKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdempotencyKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IdempotencyKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdempotencyKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(idempotencykey.FieldSettlementID) {
		fields = append(fields, idempotencykey.FieldSettlementID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdempotencyKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdempotencyKeyMutation) ClearField(name string) error {
	switch name {
	case idempotencykey.FieldSettlementID:
		m.ClearSettlementID()
		return nil
	}
	return fmt.Errorf("unknown IdempotencyKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdempotencyKeyMutation) ResetField(name string) error {
	switch name {
	case idempotencykey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case idempotencykey.FieldKey:
		m.ResetKey()
		return nil
	case idempotencykey.FieldOperation:
		m.ResetOperation()
		return nil
	case idempotencykey.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case idempotencykey.FieldSettlementID:
		m.ResetSettlementID()
		return nil
	}
	return fmt.Errorf("unknown IdempotencyKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdempotencyKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdempotencyKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdempotencyKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdempotencyKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdempotencyKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdempotencyKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdempotencyKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdempotencyKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IdempotencyKey edge %s", name)
}

// SettlementMutation represents an operation that mutates the Settlement nodes in the graph.
type SettlementMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	settlement_type      *settlement.SettlementType
	period_from          *time.Time
	period_to            *time.Time
	status               *settlement.Status
	total_collections    *int64
	addtotal_collections *int64
	total_commission     *int64
	addtotal_commission  *int64
	facility_share       *int64
	addfacility_share    *int64
	platform_share       *int64
	addplatform_share    *int64
	currency             *string
	submitted_by         *uuid.UUID
	approved_by          *uuid.UUID
	approved_at          *time.Time
	paid_by              *uuid.UUID
	paid_at              *time.Time
	payment_reference    *string
	payment_method       *string
	cancelled_by         *uuid.UUID
	cancelled_at         *time.Time
	notes                *string
	clearedFields        map[string]struct{}
	facility             *uuid.UUID
	clearedfacility      bool
	items                map[uuid.UUID]struct{}
	removeditems         map[uuid.UUID]struct{}
	cleareditems         bool
	done                 bool
	oldValue             func(context.Context) (*Settlement, error)
	predicates           []predicate.Settlement
}

var _ ent.Mutation = (*SettlementMutation)(nil)

// settlementOption allows management of the mutation configuration using functional options.
type settlementOption func(*SettlementMutation)

// newSettlementMutation creates new mutation for the Settlement entity.
func newSettlementMutation(c config, op Op, opts ...settlementOption) *SettlementMutation {
	m := &SettlementMutation{
		config:        c,
		op:            op,
		typ:           TypeSettlement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettlementID sets the ID field of the mutation.
func withSettlementID(id uuid.UUID) settlementOption {
	return func(m *SettlementMutation) {
		var (
			err   error
			once  sync.Once
			value *Settlement
		)
		m.oldValue = func(ctx context.Context) (*Settlement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Settlement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSettlement sets the old Settlement of the mutation.
func withSettlement(node *Settlement) settlementOption {
	return func(m *SettlementMutation) {
		m.oldValue = func(context.Context) (*Settlement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettlementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettlementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Settlement entities.
func (m *SettlementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettlementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettlementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Settlement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SettlementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SettlementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SettlementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettlementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettlementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SettlementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFacilityID sets the "facility_id" field.
func (m *SettlementMutation) SetFacilityID(u uuid.UUID) {
	m.facility = &u
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *SettlementMutation) FacilityID() (r uuid.UUID, exists bool) {
	v := m.facility
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldFacilityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *SettlementMutation) ResetFacilityID() {
	m.facility = nil
}

// SetSettlementType sets the "settlement_type" field.
func (m *SettlementMutation) SetSettlementType(st settlement.SettlementType) {
	m.settlement_type = &st
}

// SettlementType returns the value of the "settlement_type" field in the mutation.
func (m *SettlementMutation) SettlementType() (r settlement.SettlementType, exists bool) {
	v := m.settlement_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSettlementType returns the old "settlement_type" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldSettlementType(ctx context.Context) (v settlement.SettlementType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettlementType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettlementType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettlementType: %w", err)
	}
	return oldValue.SettlementType, nil
}

// ResetSettlementType resets all changes to the "settlement_type" field.
func (m *SettlementMutation) ResetSettlementType() {
	m.settlement_type = nil
}

// SetPeriodFrom sets the "period_from" field.
func (m *SettlementMutation) SetPeriodFrom(t time.Time) {
	m.period_from = &t
}

// PeriodFrom returns the value of the "period_from" field in the mutation.
func (m *SettlementMutation) PeriodFrom() (r time.Time, exists bool) {
	v := m.period_from
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodFrom returns the old "period_from" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldPeriodFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodFrom: %w", err)
	}
	return oldValue.PeriodFrom, nil
}

// ResetPeriodFrom resets all changes to the "period_from" field.
func (m *SettlementMutation) ResetPeriodFrom() {
	m.period_from = nil
}

// SetPeriodTo sets the "period_to" field.
func (m *SettlementMutation) SetPeriodTo(t time.Time) {
	m.period_to = &t
}

// PeriodTo returns the value of the "period_to" field in the mutation.
func (m *SettlementMutation) PeriodTo() (r time.Time, exists bool) {
	v := m.period_to
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodTo returns the old "period_to" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldPeriodTo(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodTo: %w", err)
	}
	return oldValue.PeriodTo, nil
}

// ResetPeriodTo resets all changes to the "period_to" field.
func (m *SettlementMutation) ResetPeriodTo() {
	m.period_to = nil
}

// SetStatus sets the "status" field.
func (m *SettlementMutation) SetStatus(s settlement.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SettlementMutation) Status() (r settlement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldStatus(ctx context.Context) (v settlement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SettlementMutation) ResetStatus() {
	m.status = nil
}

// SetTotalCollections sets the "total_collections" field.
func (m *SettlementMutation) SetTotalCollections(i int64) {
	m.total_collections = &i
	m.addtotal_collections = nil
}

// TotalCollections returns the value of the "total_collections" field in the mutation.
func (m *SettlementMutation) TotalCollections() (r int64, exists bool) {
	v := m.total_collections
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCollections returns the old "total_collections" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldTotalCollections(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCollections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCollections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCollections: %w", err)
	}
	return oldValue.TotalCollections, nil
}

// AddTotalCollections adds i to the "total_collections" field.
func (m *SettlementMutation) AddTotalCollections(i int64) {
	if m.addtotal_collections != nil {
		*m.addtotal_collections += i
	} else {
		m.addtotal_collections = &i
	}
}

// AddedTotalCollections returns the value that was added to the "total_collections" field in this mutation.
func (m *SettlementMutation) AddedTotalCollections() (r int64, exists bool) {
	v := m.addtotal_collections
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCollections resets all changes to the "total_collections" field.
func (m *SettlementMutation) ResetTotalCollections() {
	m.total_collections = nil
	m.addtotal_collections = nil
}

// SetTotalCommission sets the "total_commission" field.
func (m *SettlementMutation) SetTotalCommission(i int64) {
	m.total_commission = &i
	m.addtotal_commission = nil
}

// TotalCommission returns the value of the "total_commission" field in the mutation.
func (m *SettlementMutation) TotalCommission() (r int64, exists bool) {
	v := m.total_commission
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCommission returns the old "total_commission" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldTotalCommission(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCommission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCommission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCommission: %w", err)
	}
	return oldValue.TotalCommission, nil
}

// AddTotalCommission adds i to the "total_commission" field.
func (m *SettlementMutation) AddTotalCommission(i int64) {
	if m.addtotal_commission != nil {
		*m.addtotal_commission += i
	} else {
		m.addtotal_commission = &i
	}
}

// AddedTotalCommission returns the value that was added to the "total_commission" field in this mutation.
func (m *SettlementMutation) AddedTotalCommission() (r int64, exists bool) {
	v := m.addtotal_commission
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCommission resets all changes to the "total_commission" field.
func (m *SettlementMutation) ResetTotalCommission() {
	m.total_commission = nil
	m.addtotal_commission = nil
}

// SetFacilityShare sets the "facility_share" field.
func (m *SettlementMutation) SetFacilityShare(i int64) {
	m.facility_share = &i
	m.addfacility_share = nil
}

// FacilityShare returns the value of the "facility_share" field in the mutation.
func (m *SettlementMutation) FacilityShare() (r int64, exists bool) {
	v := m.facility_share
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityShare returns the old "facility_share" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldFacilityShare(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityShare: %w", err)
	}
	return oldValue.FacilityShare, nil
}

// AddFacilityShare adds i to the "facility_share" field.
func (m *SettlementMutation) AddFacilityShare(i int64) {
	if m.addfacility_share != nil {
		*m.addfacility_share += i
	} else {
		m.addfacility_share = &i
	}
}

// AddedFacilityShare returns the value that was added to the "facility_share" field in this mutation.
func (m *SettlementMutation) AddedFacilityShare() (r int64, exists bool) {
	v := m.addfacility_share
	if v == nil {
		return
	}
	return *v, true
}

// ResetFacilityShare resets all changes to the "facility_share" field.
func (m *SettlementMutation) ResetFacilityShare() {
	m.facility_share = nil
	m.addfacility_share = nil
}

// SetPlatformShare sets the "platform_share" field.
func (m *SettlementMutation) SetPlatformShare(i int64) {
	m.platform_share = &i
	m.addplatform_share = nil
}

// PlatformShare returns the value of the "platform_share" field in the mutation.
func (m *SettlementMutation) PlatformShare() (r int64, exists bool) {
	v := m.platform_share
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformShare returns the old "platform_share" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldPlatformShare(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformShare is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformShare requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformShare: %w", err)
	}
	return oldValue.PlatformShare, nil
}

// AddPlatformShare adds i to the "platform_share" field.
func (m *SettlementMutation) AddPlatformShare(i int64) {
	if m.addplatform_share != nil {
		*m.addplatform_share += i
	} else {
		m.addplatform_share = &i
	}
}

// AddedPlatformShare returns the value that was added to the "platform_share" field in this mutation.
func (m *SettlementMutation) AddedPlatformShare() (r int64, exists bool) {
	v := m.addplatform_share
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlatformShare resets all changes to the "platform_share" field.
func (m *SettlementMutation) ResetPlatformShare() {
	m.platform_share = nil
	m.addplatform_share = nil
}

// SetCurrency sets the "currency" field.
func (m *SettlementMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *SettlementMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *SettlementMutation) ResetCurrency() {
	m.currency = nil
}

// SetSubmittedBy sets the "submitted_by" field.
func (m *SettlementMutation) SetSubmittedBy(u uuid.UUID) {
	m.submitted_by = &u
}

// SubmittedBy returns the value of the "submitted_by" field in the mutation.
func (m *SettlementMutation) SubmittedBy() (r uuid.UUID, exists bool) {
	v := m.submitted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedBy returns the old "submitted_by" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldSubmittedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedBy: %w", err)
	}
	return oldValue.SubmittedBy, nil
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (m *SettlementMutation) ClearSubmittedBy() {
	m.submitted_by = nil
	m.clearedFields[settlement.FieldSubmittedBy] = struct{}{}
}

// SubmittedByCleared returns if the "submitted_by" field was cleared in this mutation.
func (m *SettlementMutation) SubmittedByCleared() bool {
	_, ok := m.clearedFields[settlement.FieldSubmittedBy]
	return ok
}

// ResetSubmittedBy resets all changes to the "submitted_by" field.
func (m *SettlementMutation) ResetSubmittedBy() {
	m.submitted_by = nil
	delete(m.clearedFields, settlement.FieldSubmittedBy)
}

// SetApprovedBy sets the "approved_by" field.
func (m *SettlementMutation) SetApprovedBy(u uuid.UUID) {
	m.approved_by = &u
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *SettlementMutation) ApprovedBy() (r uuid.UUID, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldApprovedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *SettlementMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[settlement.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *SettlementMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[settlement.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *SettlementMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, settlement.FieldApprovedBy)
}

// SetApprovedAt sets the "approved_at" field.
func (m *SettlementMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *SettlementMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *SettlementMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[settlement.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *SettlementMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[settlement.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *SettlementMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, settlement.FieldApprovedAt)
}

// SetPaidBy sets the "paid_by" field.
func (m *SettlementMutation) SetPaidBy(u uuid.UUID) {
	m.paid_by = &u
}

// PaidBy returns the value of the "paid_by" field in the mutation.
func (m *SettlementMutation) PaidBy() (r uuid.UUID, exists bool) {
	v := m.paid_by
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidBy returns the old "paid_by" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldPaidBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidBy: %w", err)
	}
	return oldValue.PaidBy, nil
}

// ClearPaidBy clears the value of the "paid_by" field.
func (m *SettlementMutation) ClearPaidBy() {
	m.paid_by = nil
	m.clearedFields[settlement.FieldPaidBy] = struct{}{}
}

// PaidByCleared returns if the "paid_by" field was cleared in this mutation.
func (m *SettlementMutation) PaidByCleared() bool {
	_, ok := m.clearedFields[settlement.FieldPaidBy]
	return ok
}

// ResetPaidBy resets all changes to the "paid_by" field.
func (m *SettlementMutation) ResetPaidBy() {
	m.paid_by = nil
	delete(m.clearedFields, settlement.FieldPaidBy)
}

// SetPaidAt sets the "paid_at" field.
func (m *SettlementMutation) SetPaidAt(t time.Time) {
	m.paid_at = &t
}

// PaidAt returns the value of the "paid_at" field in the mutation.
func (m *SettlementMutation) PaidAt() (r time.Time, exists bool) {
	v := m.paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAt returns the old "paid_at" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAt: %w", err)
	}
	return oldValue.PaidAt, nil
}

// ClearPaidAt clears the value of the "paid_at" field.
func (m *SettlementMutation) ClearPaidAt() {
	m.paid_at = nil
	m.clearedFields[settlement.FieldPaidAt] = struct{}{}
}

// PaidAtCleared returns if the "paid_at" field was cleared in this mutation.
func (m *SettlementMutation) PaidAtCleared() bool {
	_, ok := m.clearedFields[settlement.FieldPaidAt]
	return ok
}

// ResetPaidAt resets all changes to the "paid_at" field.
func (m *SettlementMutation) ResetPaidAt() {
	m.paid_at = nil
	delete(m.clearedFields, settlement.FieldPaidAt)
}

// SetPaymentReference sets the "payment_reference" field.
func (m *SettlementMutation) SetPaymentReference(s string) {
	m.payment_reference = &s
}

// PaymentReference returns the value of the "payment_reference" field in the mutation.
func (m *SettlementMutation) PaymentReference() (r string, exists bool) {
	v := m.payment_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentReference returns the old "payment_reference" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldPaymentReference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentReference: %w", err)
	}
	return oldValue.PaymentReference, nil
}

// ClearPaymentReference clears the value of the "payment_reference" field.
func (m *SettlementMutation) ClearPaymentReference() {
	m.payment_reference = nil
	m.clearedFields[settlement.FieldPaymentReference] = struct{}{}
}

// PaymentReferenceCleared returns if the "payment_reference" field was cleared in this mutation.
func (m *SettlementMutation) PaymentReferenceCleared() bool {
	_, ok := m.clearedFields[settlement.FieldPaymentReference]
	return ok
}

// ResetPaymentReference resets all changes to the "payment_reference" field.
func (m *SettlementMutation) ResetPaymentReference() {
	m.payment_reference = nil
	delete(m.clearedFields, settlement.FieldPaymentReference)
}

// SetPaymentMethod sets the "payment_method" field.
func (m *SettlementMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *SettlementMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldPaymentMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *SettlementMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[settlement.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *SettlementMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[settlement.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *SettlementMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, settlement.FieldPaymentMethod)
}

// SetCancelledBy sets the "cancelled_by" field.
func (m *SettlementMutation) SetCancelledBy(u uuid.UUID) {
	m.cancelled_by = &u
}

// CancelledBy returns the value of the "cancelled_by" field in the mutation.
func (m *SettlementMutation) CancelledBy() (r uuid.UUID, exists bool) {
	v := m.cancelled_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledBy returns the old "cancelled_by" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldCancelledBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledBy: %w", err)
	}
	return oldValue.CancelledBy, nil
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (m *SettlementMutation) ClearCancelledBy() {
	m.cancelled_by = nil
	m.clearedFields[settlement.FieldCancelledBy] = struct{}{}
}

// CancelledByCleared returns if the "cancelled_by" field was cleared in this mutation.
func (m *SettlementMutation) CancelledByCleared() bool {
	_, ok := m.clearedFields[settlement.FieldCancelledBy]
	return ok
}

// ResetCancelledBy resets all changes to the "cancelled_by" field.
func (m *SettlementMutation) ResetCancelledBy() {
	m.cancelled_by = nil
	delete(m.clearedFields, settlement.FieldCancelledBy)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *SettlementMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *SettlementMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *SettlementMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[settlement.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *SettlementMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[settlement.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *SettlementMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, settlement.FieldCancelledAt)
}

// SetNotes sets the "notes" field.
func (m *SettlementMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *SettlementMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Settlement entity.
// If the Settlement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *SettlementMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[settlement.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *SettlementMutation) NotesCleared() bool {
	_, ok := m.clearedFields[settlement.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *SettlementMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, settlement.FieldNotes)
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (m *SettlementMutation) ClearFacility() {
	m.clearedfacility = true
	m.clearedFields[settlement.FieldFacilityID] = struct{}{}
}

// FacilityCleared reports if the "facility" edge to the Facility entity was cleared.
func (m *SettlementMutation) FacilityCleared() bool {
	return m.clearedfacility
}

// FacilityIDs returns the "facility" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacilityID instead. It exists only for internal usage by the builders.
func (m *SettlementMutation) FacilityIDs() (ids []uuid.UUID) {
	if id := m.facility; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFacility resets all changes to the "facility" edge.
func (m *SettlementMutation) ResetFacility() {
	m.facility = nil
	m.clearedfacility = false
}

// AddItemIDs adds the "items" edge to the SettlementItem entity by ids.
func (m *SettlementMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the SettlementItem entity.
func (m *SettlementMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the SettlementItem entity was cleared.
func (m *SettlementMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the SettlementItem entity by IDs.
func (m *SettlementMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the SettlementItem entity.
func (m *SettlementMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *SettlementMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *SettlementMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the SettlementMutation builder.
func (m *SettlementMutation) Where(ps ...predicate.Settlement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettlementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettlementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Settlement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettlementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettlementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Settlement).
func (m *SettlementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettlementMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.created_at != nil {
		fields = append(fields, settlement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, settlement.FieldUpdatedAt)
	}
	if m.facility != nil {
		fields = append(fields, settlement.FieldFacilityID)
	}
	if m.settlement_type != nil {
		fields = append(fields, settlement.FieldSettlementType)
	}
	if m.period_from != nil {
		fields = append(fields, settlement.FieldPeriodFrom)
	}
	if m.period_to != nil {
		fields = append(fields, settlement.FieldPeriodTo)
	}
	if m.status != nil {
		fields = append(fields, settlement.FieldStatus)
	}
	if m.total_collections != nil {
		fields = append(fields, settlement.FieldTotalCollections)
	}
	if m.total_commission != nil {
		fields = append(fields, settlement.FieldTotalCommission)
	}
	if m.facility_share != nil {
		fields = append(fields, settlement.FieldFacilityShare)
	}
	if m.platform_share != nil {
		fields = append(fields, settlement.FieldPlatformShare)
	}
	if m.currency != nil {
		fields = append(fields, settlement.FieldCurrency)
	}
	if m.submitted_by != nil {
		fields = append(fields, settlement.FieldSubmittedBy)
	}
	if m.approved_by != nil {
		fields = append(fields, settlement.FieldApprovedBy)
	}
	if m.approved_at != nil {
		fields = append(fields, settlement.FieldApprovedAt)
	}
	if m.paid_by != nil {
		fields = append(fields, settlement.FieldPaidBy)
	}
	if m.paid_at != nil {
		fields = append(fields, settlement.FieldPaidAt)
	}
	if m.payment_reference != nil {
		fields = append(fields, settlement.FieldPaymentReference)
	}
	if m.payment_method != nil {
		fields = append(fields, settlement.FieldPaymentMethod)
	}
	if m.cancelled_by != nil {
		fields = append(fields, settlement.FieldCancelledBy)
	}
	if m.cancelled_at != nil {
		fields = append(fields, settlement.FieldCancelledAt)
	}
	if m.notes != nil {
		fields = append(fields, settlement.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettlementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case settlement.FieldCreatedAt:
		return m.CreatedAt()
	case settlement.FieldUpdatedAt:
		return m.UpdatedAt()
	case settlement.FieldFacilityID:
		return m.FacilityID()
	case settlement.FieldSettlementType:
		return m.SettlementType()
	case settlement.FieldPeriodFrom:
		return m.PeriodFrom()
	case settlement.FieldPeriodTo:
		return m.PeriodTo()
	case settlement.FieldStatus:
		return m.Status()
	case settlement.FieldTotalCollections:
		return m.TotalCollections()
	case settlement.FieldTotalCommission:
		return m.TotalCommission()
	case settlement.FieldFacilityShare:
		return m.FacilityShare()
	case settlement.FieldPlatformShare:
		return m.PlatformShare()
	case settlement.FieldCurrency:
		return m.Currency()
	case settlement.FieldSubmittedBy:
		return m.SubmittedBy()
	case settlement.FieldApprovedBy:
		return m.ApprovedBy()
	case settlement.FieldApprovedAt:
		return m.ApprovedAt()
	case settlement.FieldPaidBy:
		return m.PaidBy()
	case settlement.FieldPaidAt:
		return m.PaidAt()
	case settlement.FieldPaymentReference:
		return m.PaymentReference()
	case settlement.FieldPaymentMethod:
		return m.PaymentMethod()
	case settlement.FieldCancelledBy:
		return m.CancelledBy()
	case settlement.FieldCancelledAt:
		return m.CancelledAt()
	case settlement.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettlementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case settlement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case settlement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case settlement.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case settlement.FieldSettlementType:
		return m.OldSettlementType(ctx)
	case settlement.FieldPeriodFrom:
		return m.OldPeriodFrom(ctx)
	case settlement.FieldPeriodTo:
		return m.OldPeriodTo(ctx)
	case settlement.FieldStatus:
		return m.OldStatus(ctx)
	case settlement.FieldTotalCollections:
		return m.OldTotalCollections(ctx)
	case settlement.FieldTotalCommission:
		return m.OldTotalCommission(ctx)
	case settlement.FieldFacilityShare:
		return m.OldFacilityShare(ctx)
	case settlement.FieldPlatformShare:
		return m.OldPlatformShare(ctx)
	case settlement.FieldCurrency:
		return m.OldCurrency(ctx)
	case settlement.FieldSubmittedBy:
		return m.OldSubmittedBy(ctx)
	case settlement.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case settlement.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case settlement.FieldPaidBy:
		return m.OldPaidBy(ctx)
	case settlement.FieldPaidAt:
		return m.OldPaidAt(ctx)
	case settlement.FieldPaymentReference:
		return m.OldPaymentReference(ctx)
	case settlement.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case settlement.FieldCancelledBy:
		return m.OldCancelledBy(ctx)
	case settlement.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case settlement.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Settlement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettlementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case settlement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case settlement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case settlement.FieldFacilityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case settlement.FieldSettlementType:
		v, ok := value.(settlement.SettlementType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettlementType(v)
		return nil
	case settlement.FieldPeriodFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodFrom(v)
		return nil
	case settlement.FieldPeriodTo:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodTo(v)
		return nil
	case settlement.FieldStatus:
		v, ok := value.(settlement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case settlement.FieldTotalCollections:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCollections(v)
		return nil
	case settlement.FieldTotalCommission:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCommission(v)
		return nil
	case settlement.FieldFacilityShare:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityShare(v)
		return nil
	case settlement.FieldPlatformShare:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformShare(v)
		return nil
	case settlement.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case settlement.FieldSubmittedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedBy(v)
		return nil
	case settlement.FieldApprovedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case settlement.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case settlement.FieldPaidBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidBy(v)
		return nil
	case settlement.FieldPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAt(v)
		return nil
	case settlement.FieldPaymentReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentReference(v)
		return nil
	case settlement.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case settlement.FieldCancelledBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledBy(v)
		return nil
	case settlement.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case settlement.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Settlement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettlementMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_collections != nil {
		fields = append(fields, settlement.FieldTotalCollections)
	}
	if m.addtotal_commission != nil {
		fields = append(fields, settlement.FieldTotalCommission)
	}
	if m.addfacility_share != nil {
		fields = append(fields, settlement.FieldFacilityShare)
	}
	if m.addplatform_share != nil {
		fields = append(fields, settlement.FieldPlatformShare)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettlementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case settlement.FieldTotalCollections:
		return m.AddedTotalCollections()
	case settlement.FieldTotalCommission:
		return m.AddedTotalCommission()
	case settlement.FieldFacilityShare:
		return m.AddedFacilityShare()
	case settlement.FieldPlatformShare:
		return m.AddedPlatformShare()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettlementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case settlement.FieldTotalCollections:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCollections(v)
		return nil
	case settlement.FieldTotalCommission:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCommission(v)
		return nil
	case settlement.FieldFacilityShare:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFacilityShare(v)
		return nil
	case settlement.FieldPlatformShare:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlatformShare(v)
		return nil
	}
	return fmt.Errorf("unknown Settlement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettlementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(settlement.FieldSubmittedBy) {
		fields = append(fields, settlement.FieldSubmittedBy)
	}
	if m.FieldCleared(settlement.FieldApprovedBy) {
		fields = append(fields, settlement.FieldApprovedBy)
	}
	if m.FieldCleared(settlement.FieldApprovedAt) {
		fields = append(fields, settlement.FieldApprovedAt)
	}
	if m.FieldCleared(settlement.FieldPaidBy) {
		fields = append(fields, settlement.FieldPaidBy)
	}
	if m.FieldCleared(settlement.FieldPaidAt) {
		fields = append(fields, settlement.FieldPaidAt)
	}
	if m.FieldCleared(settlement.FieldPaymentReference) {
		fields = append(fields, settlement.FieldPaymentReference)
	}
	if m.FieldCleared(settlement.FieldPaymentMethod) {
		fields = append(fields, settlement.FieldPaymentMethod)
	}
	if m.FieldCleared(settlement.FieldCancelledBy) {
		fields = append(fields, settlement.FieldCancelledBy)
	}
	if m.FieldCleared(settlement.FieldCancelledAt) {
		fields = append(fields, settlement.FieldCancelledAt)
	}
	if m.FieldCleared(settlement.FieldNotes) {
		fields = append(fields, settlement.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettlementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettlementMutation) ClearField(name string) error {
	switch name {
	case settlement.FieldSubmittedBy:
		m.ClearSubmittedBy()
		return nil
	case settlement.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case settlement.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case settlement.FieldPaidBy:
		m.ClearPaidBy()
		return nil
	case settlement.FieldPaidAt:
		m.ClearPaidAt()
		return nil
	case settlement.FieldPaymentReference:
		m.ClearPaymentReference()
		return nil
	case settlement.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case settlement.FieldCancelledBy:
		m.ClearCancelledBy()
		return nil
	case settlement.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case settlement.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Settlement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettlementMutation) ResetField(name string) error {
	switch name {
	case settlement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case settlement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case settlement.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case settlement.FieldSettlementType:
		m.ResetSettlementType()
		return nil
	case settlement.FieldPeriodFrom:
		m.ResetPeriodFrom()
		return nil
	case settlement.FieldPeriodTo:
		m.ResetPeriodTo()
		return nil
	case settlement.FieldStatus:
		m.ResetStatus()
		return nil
	case settlement.FieldTotalCollections:
		m.ResetTotalCollections()
		return nil
	case settlement.FieldTotalCommission:
		m.ResetTotalCommission()
		return nil
	case settlement.FieldFacilityShare:
		m.ResetFacilityShare()
		return nil
	case settlement.FieldPlatformShare:
		m.ResetPlatformShare()
		return nil
	case settlement.FieldCurrency:
		m.ResetCurrency()
		return nil
	case settlement.FieldSubmittedBy:
		m.ResetSubmittedBy()
		return nil
	case settlement.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case settlement.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case settlement.FieldPaidBy:
		m.ResetPaidBy()
		return nil
	case settlement.FieldPaidAt:
		m.ResetPaidAt()
		return nil
	case settlement.FieldPaymentReference:
		m.ResetPaymentReference()
		return nil
	case settlement.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case settlement.FieldCancelledBy:
		m.ResetCancelledBy()
		return nil
	case settlement.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case settlement.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Settlement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettlementMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.facility != nil {
		edges = append(edges, settlement.EdgeFacility)
	}
	if m.items != nil {
		edges = append(edges, settlement.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettlementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case settlement.EdgeFacility:
		if id := m.facility; id != nil {
			return []ent.Value{*id}
		}
	case settlement.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettlementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, settlement.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettlementMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case settlement.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettlementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfacility {
		edges = append(edges, settlement.EdgeFacility)
	}
	if m.cleareditems {
		edges = append(edges, settlement.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettlementMutation) EdgeCleared(name string) bool {
	switch name {
	case settlement.EdgeFacility:
		return m.clearedfacility
	case settlement.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettlementMutation) ClearEdge(name string) error {
	switch name {
	case settlement.EdgeFacility:
		m.ClearFacility()
		return nil
	}
	return fmt.Errorf("unknown Settlement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettlementMutation) ResetEdge(name string) error {
	switch name {
	case settlement.EdgeFacility:
		m.ResetFacility()
		return nil
	case settlement.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Settlement edge %s", name)
}

// SettlementItemMutation represents an operation that mutates the SettlementItem nodes in the graph.
type SettlementItemMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	commission_amount    *int64
	addcommission_amount *int64
	clearedFields        map[string]struct{}
	settlement           *uuid.UUID
	clearedsettlement    bool
	entry                *uuid.UUID
	clearedentry         bool
	done                 bool
	oldValue             func(context.Context) (*SettlementItem, error)
	predicates           []predicate.SettlementItem
}

var _ ent.Mutation = (*SettlementItemMutation)(nil)

// settlementitemOption allows management of the mutation configuration using functional options.
type settlementitemOption func(*SettlementItemMutation)

// newSettlementItemMutation creates new mutation for the SettlementItem entity.
func newSettlementItemMutation(c config, op Op, opts ...settlementitemOption) *SettlementItemMutation {
	m := &SettlementItemMutation{
		config:        c,
		op:            op,
		typ:           TypeSettlementItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettlementItemID sets the ID field of the mutation.
func withSettlementItemID(id uuid.UUID) settlementitemOption {
	return func(m *SettlementItemMutation) {
		var (
			err   error
			once  sync.Once
			value *SettlementItem
		)
		m.oldValue = func(ctx context.Context) (*SettlementItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SettlementItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSettlementItem sets the old SettlementItem of the mutation.
func withSettlementItem(node *SettlementItem) settlementitemOption {
	return func(m *SettlementItemMutation) {
		m.oldValue = func(context.Context) (*SettlementItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettlementItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettlementItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SettlementItem entities.
func (m *SettlementItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettlementItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettlementItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SettlementItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SettlementItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SettlementItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SettlementItem entity.
// If the SettlementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SettlementItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSettlementID sets the "settlement_id" field.
func (m *SettlementItemMutation) SetSettlementID(u uuid.UUID) {
	m.settlement = &u
}

// SettlementID returns the value of the "settlement_id" field in the mutation.
func (m *SettlementItemMutation) SettlementID() (r uuid.UUID, exists bool) {
	v := m.settlement
	if v == nil {
		return
	}
	return *v, true
}

// OldSettlementID returns the old "settlement_id" field's value of the SettlementItem entity.
// If the SettlementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementItemMutation) OldSettlementID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettlementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettlementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettlementID: %w", err)
	}
	return oldValue.SettlementID, nil
}

// ResetSettlementID resets all changes to the "settlement_id" field.
func (m *SettlementItemMutation) ResetSettlementID() {
	m.settlement = nil
}

// SetEntryID sets the "entry_id" field.
func (m *SettlementItemMutation) SetEntryID(u uuid.UUID) {
	m.entry = &u
}

// EntryID returns the value of the "entry_id" field in the mutation.
func (m *SettlementItemMutation) EntryID() (r uuid.UUID, exists bool) {
	v := m.entry
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryID returns the old "entry_id" field's value of the SettlementItem entity.
// If the SettlementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementItemMutation) OldEntryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryID: %w", err)
	}
	return oldValue.EntryID, nil
}

// ResetEntryID resets all changes to the "entry_id" field.
func (m *SettlementItemMutation) ResetEntryID() {
	m.entry = nil
}

// SetCommissionAmount sets the "commission_amount" field.
func (m *SettlementItemMutation) SetCommissionAmount(i int64) {
	m.commission_amount = &i
	m.addcommission_amount = nil
}

// CommissionAmount returns the value of the "commission_amount" field in the mutation.
func (m *SettlementItemMutation) CommissionAmount() (r int64, exists bool) {
	v := m.commission_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionAmount returns the old "commission_amount" field's value of the SettlementItem entity.
// If the SettlementItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettlementItemMutation) OldCommissionAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionAmount: %w", err)
	}
	return oldValue.CommissionAmount, nil
}

// AddCommissionAmount adds i to the "commission_amount" field.
func (m *SettlementItemMutation) AddCommissionAmount(i int64) {
	if m.addcommission_amount != nil {
		*m.addcommission_amount += i
	} else {
		m.addcommission_amount = &i
	}
}

// AddedCommissionAmount returns the value that was added to the "commission_amount" field in this mutation.
func (m *SettlementItemMutation) AddedCommissionAmount() (r int64, exists bool) {
	v := m.addcommission_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommissionAmount resets all changes to the "commission_amount" field.
func (m *SettlementItemMutation) ResetCommissionAmount() {
	m.commission_amount = nil
	m.addcommission_amount = nil
}

// ClearSettlement clears the "settlement" edge to the Settlement entity.
func (m *SettlementItemMutation) ClearSettlement() {
	m.clearedsettlement = true
	m.clearedFields[settlementitem.FieldSettlementID] = struct{}{}
}

// SettlementCleared reports if the "settlement" edge to the Settlement entity was cleared.
func (m *SettlementItemMutation) SettlementCleared() bool {
	return m.clearedsettlement
}

// SettlementIDs returns the "settlement" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SettlementID instead. It exists only for internal usage by the builders.
func (m *SettlementItemMutation) SettlementIDs() (ids []uuid.UUID) {
	if id := m.settlement; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSettlement resets all changes to the "settlement" edge.
func (m *SettlementItemMutation) ResetSettlement() {
	m.settlement = nil
	m.clearedsettlement = false
}

// ClearEntry clears the "entry" edge to the CommissionEntry entity.
func (m *SettlementItemMutation) ClearEntry() {
	m.clearedentry = true
	m.clearedFields[settlementitem.FieldEntryID] = struct{}{}
}

// EntryCleared reports if the "entry" edge to the CommissionEntry entity was cleared.
func (m *SettlementItemMutation) EntryCleared() bool {
	return m.clearedentry
}

// EntryIDs returns the "entry" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntryID instead. It exists only for internal usage by the builders.
func (m *SettlementItemMutation) EntryIDs() (ids []uuid.UUID) {
	if id := m.entry; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntry resets all changes to the "entry" edge.
func (m *SettlementItemMutation) ResetEntry() {
	m.entry = nil
	m.clearedentry = false
}

// Where appends a list predicates to the SettlementItemMutation builder.
func (m *SettlementItemMutation) Where(ps ...predicate.SettlementItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettlementItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettlementItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SettlementItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettlementItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettlementItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SettlementItem).
func (m *SettlementItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettlementItemMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, settlementitem.FieldCreatedAt)
	}
	if m.settlement != nil {
		fields = append(fields, settlementitem.FieldSettlementID)
	}
	if m.entry != nil {
		fields = append(fields, settlementitem.FieldEntryID)
	}
	if m.commission_amount != nil {
		fields = append(fields, settlementitem.FieldCommissionAmount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettlementItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case settlementitem.FieldCreatedAt:
		return m.CreatedAt()
	case settlementitem.FieldSettlementID:
		return m.SettlementID()
	case settlementitem.FieldEntryID:
		return m.EntryID()
	case settlementitem.FieldCommissionAmount:
		return m.CommissionAmount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettlementItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case settlementitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case settlementitem.FieldSettlementID:
		return m.OldSettlementID(ctx)
	case settlementitem.FieldEntryID:
		return m.OldEntryID(ctx)
	case settlementitem.FieldCommissionAmount:
		return m.OldCommissionAmount(ctx)
	}
	return nil, fmt.Errorf("unknown SettlementItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettlementItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case settlementitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case settlementitem.FieldSettlementID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettlementID(v)
		return nil
	case settlementitem.FieldEntryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryID(v)
		return nil
	case settlementitem.FieldCommissionAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionAmount(v)
		return nil
	}
	return fmt.Errorf("unknown SettlementItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettlementItemMutation) AddedFields() []string {
	var fields []string
	if m.addcommission_amount != nil {
		fields = append(fields, settlementitem.FieldCommissionAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettlementItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case settlementitem.FieldCommissionAmount:
		return m.AddedCommissionAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettlementItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case settlementitem.FieldCommissionAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionAmount(v)
		return nil
	}
	return fmt.Errorf("unknown SettlementItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettlementItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettlementItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettlementItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SettlementItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettlementItemMutation) ResetField(name string) error {
	switch name {
	case settlementitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case settlementitem.FieldSettlementID:
		m.ResetSettlementID()
		return nil
	case settlementitem.FieldEntryID:
		m.ResetEntryID()
		return nil
	case settlementitem.FieldCommissionAmount:
		m.ResetCommissionAmount()
		return nil
	}
	return fmt.Errorf("unknown SettlementItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettlementItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.settlement != nil {
		edges = append(edges, settlementitem.EdgeSettlement)
	}
	if m.entry != nil {
		edges = append(edges, settlementitem.EdgeEntry)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettlementItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case settlementitem.EdgeSettlement:
		if id := m.settlement; id != nil {
			return []ent.Value{*id}
		}
	case settlementitem.EdgeEntry:
		if id := m.entry; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettlementItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettlementItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettlementItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsettlement {
		edges = append(edges, settlementitem.EdgeSettlement)
	}
	if m.clearedentry {
		edges = append(edges, settlementitem.EdgeEntry)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettlementItemMutation) EdgeCleared(name string) bool {
	switch name {
	case settlementitem.EdgeSettlement:
		return m.clearedsettlement
	case settlementitem.EdgeEntry:
		return m.clearedentry
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettlementItemMutation) ClearEdge(name string) error {
	switch name {
	case settlementitem.EdgeSettlement:
		m.ClearSettlement()
		return nil
	case settlementitem.EdgeEntry:
		m.ClearEntry()
		return nil
	}
	return fmt.Errorf("unknown SettlementItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettlementItemMutation) ResetEdge(name string) error {
	switch name {
	case settlementitem.EdgeSettlement:
		m.ResetSettlement()
		return nil
	case settlementitem.EdgeEntry:
		m.ResetEntry()
		return nil
	}
	return fmt.Errorf("unknown SettlementItem edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	channel         *transaction.Channel
	gross_amount    *int64
	addgross_amount *int64
	currency        *string
	occurred_at     *time.Time
	bill_reference  *string
	collected_by    *uuid.UUID
	gateway_txn_id  *string
	status          *transaction.Status
	clearedFields   map[string]struct{}
	facility        *uuid.UUID
	clearedfacility bool
	entries         map[uuid.UUID]struct{}
	removedentries  map[uuid.UUID]struct{}
	clearedentries  bool
	done            bool
	oldValue        func(context.Context) (*Transaction, error)
	predicates      []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id uuid.UUID) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFacilityID sets the "facility_id" field.
func (m *TransactionMutation) SetFacilityID(u uuid.UUID) {
	m.facility = &u
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *TransactionMutation) FacilityID() (r uuid.UUID, exists bool) {
	v := m.facility
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldFacilityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *TransactionMutation) ResetFacilityID() {
	m.facility = nil
}

// SetChannel sets the "channel" field.
func (m *TransactionMutation) SetChannel(t transaction.Channel) {
	m.channel = &t
}

// Channel returns the value of the "channel" field in the mutation.
func (m *TransactionMutation) Channel() (r transaction.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldChannel(ctx context.Context) (v transaction.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *TransactionMutation) ResetChannel() {
	m.channel = nil
}

// SetGrossAmount sets the "gross_amount" field.
func (m *TransactionMutation) SetGrossAmount(i int64) {
	m.gross_amount = &i
	m.addgross_amount = nil
}

// GrossAmount returns the value of the "gross_amount" field in the mutation.
func (m *TransactionMutation) GrossAmount() (r int64, exists bool) {
	v := m.gross_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossAmount returns the old "gross_amount" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldGrossAmount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossAmount: %w", err)
	}
	return oldValue.GrossAmount, nil
}

// AddGrossAmount adds i to the "gross_amount" field.
func (m *TransactionMutation) AddGrossAmount(i int64) {
	if m.addgross_amount != nil {
		*m.addgross_amount += i
	} else {
		m.addgross_amount = &i
	}
}

// AddedGrossAmount returns the value that was added to the "gross_amount" field in this mutation.
func (m *TransactionMutation) AddedGrossAmount() (r int64, exists bool) {
	v := m.addgross_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrossAmount resets all changes to the "gross_amount" field.
func (m *TransactionMutation) ResetGrossAmount() {
	m.gross_amount = nil
	m.addgross_amount = nil
}

// SetCurrency sets the "currency" field.
func (m *TransactionMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *TransactionMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *TransactionMutation) ResetCurrency() {
	m.currency = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *TransactionMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *TransactionMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *TransactionMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetBillReference sets the "bill_reference" field.
func (m *TransactionMutation) SetBillReference(s string) {
	m.bill_reference = &s
}

// BillReference returns the value of the "bill_reference" field in the mutation.
func (m *TransactionMutation) BillReference() (r string, exists bool) {
	v := m.bill_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldBillReference returns the old "bill_reference" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldBillReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillReference: %w", err)
	}
	return oldValue.BillReference, nil
}

// ResetBillReference resets all changes to the "bill_reference" field.
func (m *TransactionMutation) ResetBillReference() {
	m.bill_reference = nil
}

// SetCollectedBy sets the "collected_by" field.
func (m *TransactionMutation) SetCollectedBy(u uuid.UUID) {
	m.collected_by = &u
}

// CollectedBy returns the value of the "collected_by" field in the mutation.
func (m *TransactionMutation) CollectedBy() (r uuid.UUID, exists bool) {
	v := m.collected_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedBy returns the old "collected_by" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCollectedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedBy: %w", err)
	}
	return oldValue.CollectedBy, nil
}

// ClearCollectedBy clears the value of the "collected_by" field.
func (m *TransactionMutation) ClearCollectedBy() {
	m.collected_by = nil
	m.clearedFields[transaction.FieldCollectedBy] = struct{}{}
}

// CollectedByCleared returns if the "collected_by" field was cleared in this mutation.
func (m *TransactionMutation) CollectedByCleared() bool {
	_, ok := m.clearedFields[transaction.FieldCollectedBy]
	return ok
}

// ResetCollectedBy resets all changes to the "collected_by" field.
func (m *TransactionMutation) ResetCollectedBy() {
	m.collected_by = nil
	delete(m.clearedFields, transaction.FieldCollectedBy)
}

// SetGatewayTxnID sets the "gateway_txn_id" field.
func (m *TransactionMutation) SetGatewayTxnID(s string) {
	m.gateway_txn_id = &s
}

// GatewayTxnID returns the value of the "gateway_txn_id" field in the mutation.
func (m *TransactionMutation) GatewayTxnID() (r string, exists bool) {
	v := m.gateway_txn_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGatewayTxnID returns the old "gateway_txn_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldGatewayTxnID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatewayTxnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatewayTxnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatewayTxnID: %w", err)
	}
	return oldValue.GatewayTxnID, nil
}

// ClearGatewayTxnID clears the value of the "gateway_txn_id" field.
func (m *TransactionMutation) ClearGatewayTxnID() {
	m.gateway_txn_id = nil
	m.clearedFields[transaction.FieldGatewayTxnID] = struct{}{}
}

// GatewayTxnIDCleared returns if the "gateway_txn_id" field was cleared in this mutation.
func (m *TransactionMutation) GatewayTxnIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldGatewayTxnID]
	return ok
}

// ResetGatewayTxnID resets all changes to the "gateway_txn_id" field.
func (m *TransactionMutation) ResetGatewayTxnID() {
	m.gateway_txn_id = nil
	delete(m.clearedFields, transaction.FieldGatewayTxnID)
}

// SetStatus sets the "status" field.
func (m *TransactionMutation) SetStatus(t transaction.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TransactionMutation) Status() (r transaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldStatus(ctx context.Context) (v transaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TransactionMutation) ResetStatus() {
	m.status = nil
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (m *TransactionMutation) ClearFacility() {
	m.clearedfacility = true
	m.clearedFields[transaction.FieldFacilityID] = struct{}{}
}

// FacilityCleared reports if the "facility" edge to the Facility entity was cleared.
func (m *TransactionMutation) FacilityCleared() bool {
	return m.clearedfacility
}

// FacilityIDs returns the "facility" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacilityID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) FacilityIDs() (ids []uuid.UUID) {
	if id := m.facility; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFacility resets all changes to the "facility" edge.
func (m *TransactionMutation) ResetFacility() {
	m.facility = nil
	m.clearedfacility = false
}

// AddEntryIDs adds the "entries" edge to the CommissionEntry entity by ids.
func (m *TransactionMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the CommissionEntry entity.
func (m *TransactionMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the CommissionEntry entity was cleared.
func (m *TransactionMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the CommissionEntry entity by IDs.
func (m *TransactionMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the CommissionEntry entity.
func (m *TransactionMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *TransactionMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *TransactionMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	if m.facility != nil {
		fields = append(fields, transaction.FieldFacilityID)
	}
	if m.channel != nil {
		fields = append(fields, transaction.FieldChannel)
	}
	if m.gross_amount != nil {
		fields = append(fields, transaction.FieldGrossAmount)
	}
	if m.currency != nil {
		fields = append(fields, transaction.FieldCurrency)
	}
	if m.occurred_at != nil {
		fields = append(fields, transaction.FieldOccurredAt)
	}
	if m.bill_reference != nil {
		fields = append(fields, transaction.FieldBillReference)
	}
	if m.collected_by != nil {
		fields = append(fields, transaction.FieldCollectedBy)
	}
	if m.gateway_txn_id != nil {
		fields = append(fields, transaction.FieldGatewayTxnID)
	}
	if m.status != nil {
		fields = append(fields, transaction.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	case transaction.FieldFacilityID:
		return m.FacilityID()
	case transaction.FieldChannel:
		return m.Channel()
	case transaction.FieldGrossAmount:
		return m.GrossAmount()
	case transaction.FieldCurrency:
		return m.Currency()
	case transaction.FieldOccurredAt:
		return m.OccurredAt()
	case transaction.FieldBillReference:
		return m.BillReference()
	case transaction.FieldCollectedBy:
		return m.CollectedBy()
	case transaction.FieldGatewayTxnID:
		return m.GatewayTxnID()
	case transaction.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transaction.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case transaction.FieldChannel:
		return m.OldChannel(ctx)
	case transaction.FieldGrossAmount:
		return m.OldGrossAmount(ctx)
	case transaction.FieldCurrency:
		return m.OldCurrency(ctx)
	case transaction.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case transaction.FieldBillReference:
		return m.OldBillReference(ctx)
	case transaction.FieldCollectedBy:
		return m.OldCollectedBy(ctx)
	case transaction.FieldGatewayTxnID:
		return m.OldGatewayTxnID(ctx)
	case transaction.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transaction.FieldFacilityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case transaction.FieldChannel:
		v, ok := value.(transaction.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case transaction.FieldGrossAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossAmount(v)
		return nil
	case transaction.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case transaction.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case transaction.FieldBillReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillReference(v)
		return nil
	case transaction.FieldCollectedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedBy(v)
		return nil
	case transaction.FieldGatewayTxnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatewayTxnID(v)
		return nil
	case transaction.FieldStatus:
		v, ok := value.(transaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addgross_amount != nil {
		fields = append(fields, transaction.FieldGrossAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldGrossAmount:
		return m.AddedGrossAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldGrossAmount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrossAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldCollectedBy) {
		fields = append(fields, transaction.FieldCollectedBy)
	}
	if m.FieldCleared(transaction.FieldGatewayTxnID) {
		fields = append(fields, transaction.FieldGatewayTxnID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldCollectedBy:
		m.ClearCollectedBy()
		return nil
	case transaction.FieldGatewayTxnID:
		m.ClearGatewayTxnID()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transaction.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case transaction.FieldChannel:
		m.ResetChannel()
		return nil
	case transaction.FieldGrossAmount:
		m.ResetGrossAmount()
		return nil
	case transaction.FieldCurrency:
		m.ResetCurrency()
		return nil
	case transaction.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case transaction.FieldBillReference:
		m.ResetBillReference()
		return nil
	case transaction.FieldCollectedBy:
		m.ResetCollectedBy()
		return nil
	case transaction.FieldGatewayTxnID:
		m.ResetGatewayTxnID()
		return nil
	case transaction.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.facility != nil {
		edges = append(edges, transaction.EdgeFacility)
	}
	if m.entries != nil {
		edges = append(edges, transaction.EdgeEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeFacility:
		if id := m.facility; id != nil {
			return []ent.Value{*id}
		}
	case transaction.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedentries != nil {
		edges = append(edges, transaction.EdgeEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfacility {
		edges = append(edges, transaction.EdgeFacility)
	}
	if m.clearedentries {
		edges = append(edges, transaction.EdgeEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case transaction.EdgeFacility:
		return m.clearedfacility
	case transaction.EdgeEntries:
		return m.clearedentries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	switch name {
	case transaction.EdgeFacility:
		m.ClearFacility()
		return nil
	}
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	switch name {
	case transaction.EdgeFacility:
		m.ResetFacility()
		return nil
	case transaction.EdgeEntries:
		m.ResetEntries()
		return nil
	}
	return fmt.Errorf("unknown Transaction edge %s", name)
}
