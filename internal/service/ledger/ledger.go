// Package ledger owns the append-only commission ledger: every entry ever
// computed, keyed by facility, with a facility-scoped monotonic sequence.
// Amount fields never change after append; only settlement linkage moves,
// and always as an all-or-nothing set.
package ledger

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entent "github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	entfacility "github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/pkg/money"
)

// AppendParams carries everything needed to append one entry inside an
// already-open transaction.
type AppendParams struct {
	FacilityID    uuid.UUID
	TransactionID uuid.UUID
	Channel       string
	GrossAmount   int64
	Commission    int64
	FacilityShare int64
	Currency      string
	OccurredAt    time.Time

	SnapshotRate     decimal.Decimal
	SnapshotTaxRate  decimal.Decimal
	SnapshotCashType string
	SnapshotRounding money.RoundingMode

	// ReversesEntryID marks a negation entry created by a reversal.
	ReversesEntryID *uuid.UUID
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Store interface {
	// NextSeq advances and returns the facility's ledger cursor. The UPDATE
	// takes a row lock on the facility, which is also what serializes
	// concurrent mutations per facility without blocking other tenants.
	NextSeq(ctx context.Context, tx *repo.Tx, facilityID uuid.UUID) (int64, error)

	// Append writes one immutable entry. Always called inside the same
	// transaction that assigned its seq.
	Append(ctx context.Context, tx *repo.Tx, p AppendParams) (*repo.CommissionEntry, error)

	// UnsettledInPeriod lists unsettled entries for a facility whose
	// transaction occurred within [from, to), optionally narrowed by channel.
	UnsettledInPeriod(ctx context.Context, facilityID uuid.UUID, from, to time.Time, channels []string) ([]*repo.CommissionEntry, error)

	// UnsettledByIDs loads an explicit entry subset, for partial settlement.
	// Entries that are missing, foreign, or already claimed are simply not
	// returned; the caller decides whether that is fatal.
	UnsettledByIDs(ctx context.Context, facilityID uuid.UUID, ids []uuid.UUID) ([]*repo.CommissionEntry, error)

	// ClaimForSettlement transitions the given entries from unsettled to
	// included_in_settlement, all or nothing. A shortfall in affected rows
	// means another aggregation won the race: ErrConcurrentClaimConflict.
	ClaimForSettlement(ctx context.Context, tx *repo.Tx, facilityID, settlementID uuid.UUID, entryIDs []uuid.UUID) error

	// ReleaseSettlement reverts every entry claimed by a settlement back to
	// unsettled, making it eligible for future aggregation.
	ReleaseSettlement(ctx context.Context, tx *repo.Tx, settlementID uuid.UUID) error

	// MarkSettled flips every entry claimed by a settlement to settled.
	// Reachable only through the settlement's paid transition.
	MarkSettled(ctx context.Context, tx *repo.Tx, settlementID uuid.UUID) error

	// EntriesForSettlement lists the entries currently linked to a settlement.
	EntriesForSettlement(ctx context.Context, settlementID uuid.UUID) ([]*repo.CommissionEntry, error)

	// EntryByID loads one entry scoped to a facility.
	EntryByID(ctx context.Context, facilityID, entryID uuid.UUID) (*repo.CommissionEntry, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type store struct {
	db *repo.Client
}

func New(db *repo.Client) Store {
	return &store{db: db}
}

func (s *store) NextSeq(ctx context.Context, tx *repo.Tx, facilityID uuid.UUID) (int64, error) {
	affected, err := tx.Facility.Update().
		Where(entfacility.ID(facilityID)).
		AddLedgerSeq(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("advance ledger seq: %w", err)
	}
	if affected == 0 {
		return 0, ErrFacilityNotFound
	}

	f, err := tx.Facility.Query().
		Where(entfacility.ID(facilityID)).
		Select(entfacility.FieldLedgerSeq).
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("read ledger seq: %w", err)
	}
	return f.LedgerSeq, nil
}

func (s *store) Append(ctx context.Context, tx *repo.Tx, p AppendParams) (*repo.CommissionEntry, error) {
	seq, err := s.NextSeq(ctx, tx, p.FacilityID)
	if err != nil {
		return nil, err
	}

	create := tx.CommissionEntry.Create().
		SetFacilityID(p.FacilityID).
		SetTransactionID(p.TransactionID).
		SetSeq(seq).
		SetChannel(entent.Channel(p.Channel)).
		SetGrossAmount(p.GrossAmount).
		SetCommissionAmount(p.Commission).
		SetFacilityShare(p.FacilityShare).
		SetCurrency(p.Currency).
		SetOccurredAt(p.OccurredAt).
		SetSnapshotRate(p.SnapshotRate.String()).
		SetSnapshotTaxRate(p.SnapshotTaxRate.String()).
		SetSnapshotCashType(entent.SnapshotCashType(p.SnapshotCashType)).
		SetSnapshotRounding(entent.SnapshotRounding(p.SnapshotRounding)).
		SetNillableReversesEntryID(p.ReversesEntryID)

	entry, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append entry: %w", err)
	}
	return entry, nil
}

func (s *store) UnsettledInPeriod(ctx context.Context, facilityID uuid.UUID, from, to time.Time, channels []string) ([]*repo.CommissionEntry, error) {
	q := s.db.CommissionEntry.Query().
		Where(
			entent.FacilityID(facilityID),
			entent.StatusEQ(entent.StatusUnsettled),
			entent.OccurredAtGTE(from),
			entent.OccurredAtLT(to),
		)

	if len(channels) > 0 {
		chs := make([]entent.Channel, 0, len(channels))
		for _, c := range channels {
			chs = append(chs, entent.Channel(c))
		}
		q = q.Where(entent.ChannelIn(chs...))
	}

	entries, err := q.Order(entent.BySeq(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unsettled entries: %w", err)
	}
	return entries, nil
}

func (s *store) UnsettledByIDs(ctx context.Context, facilityID uuid.UUID, ids []uuid.UUID) ([]*repo.CommissionEntry, error) {
	entries, err := s.db.CommissionEntry.Query().
		Where(
			entent.FacilityID(facilityID),
			entent.StatusEQ(entent.StatusUnsettled),
			entent.IDIn(ids...),
		).
		Order(entent.BySeq(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query entries by id: %w", err)
	}
	return entries, nil
}

func (s *store) ClaimForSettlement(ctx context.Context, tx *repo.Tx, facilityID, settlementID uuid.UUID, entryIDs []uuid.UUID) error {
	if len(entryIDs) == 0 {
		return nil
	}

	// Status-guarded conditional update: rows another settlement already
	// claimed no longer match, so the affected count falls short and the
	// whole claim is abandoned.
	affected, err := tx.CommissionEntry.Update().
		Where(
			entent.FacilityID(facilityID),
			entent.IDIn(entryIDs...),
			entent.StatusEQ(entent.StatusUnsettled),
		).
		SetStatus(entent.StatusIncludedInSettlement).
		SetSettlementID(settlementID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("claim entries: %w", err)
	}
	if affected != len(entryIDs) {
		return fmt.Errorf("%w: claimed %d of %d entries", ErrConcurrentClaimConflict, affected, len(entryIDs))
	}
	return nil
}

func (s *store) ReleaseSettlement(ctx context.Context, tx *repo.Tx, settlementID uuid.UUID) error {
	_, err := tx.CommissionEntry.Update().
		Where(
			entent.SettlementID(settlementID),
			entent.StatusEQ(entent.StatusIncludedInSettlement),
		).
		SetStatus(entent.StatusUnsettled).
		ClearSettlementID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("release entries: %w", err)
	}
	return nil
}

func (s *store) MarkSettled(ctx context.Context, tx *repo.Tx, settlementID uuid.UUID) error {
	_, err := tx.CommissionEntry.Update().
		Where(
			entent.SettlementID(settlementID),
			entent.StatusEQ(entent.StatusIncludedInSettlement),
		).
		SetStatus(entent.StatusSettled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark entries settled: %w", err)
	}
	return nil
}

func (s *store) EntriesForSettlement(ctx context.Context, settlementID uuid.UUID) ([]*repo.CommissionEntry, error) {
	entries, err := s.db.CommissionEntry.Query().
		Where(entent.SettlementID(settlementID)).
		Order(entent.BySeq(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query settlement entries: %w", err)
	}
	return entries, nil
}

func (s *store) EntryByID(ctx context.Context, facilityID, entryID uuid.UUID) (*repo.CommissionEntry, error) {
	entry, err := s.db.CommissionEntry.Query().
		Where(
			entent.ID(entryID),
			entent.FacilityID(facilityID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}
