package commission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entent "github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	entfacility "github.com/arogyahq/arogya_backend/internal/repo/facility"
	enttxn "github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/arogyahq/arogya_backend/internal/service/ledger"
	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/pkg/events"
	"github.com/arogyahq/arogya_backend/pkg/money"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

// CaptureRequest describes one revenue-bearing transaction reported by the
// payment or cash-collection layer.
type CaptureRequest struct {
	FacilityID    uuid.UUID
	Channel       Channel
	GrossAmount   int64
	Currency      string
	OccurredAt    time.Time
	BillReference string
	CollectedBy   *uuid.UUID
	GatewayTxnID  *string
}

// CaptureResult pairs the stored transaction with its commission entry.
// Entry is nil when the facility's policy was unusable at capture time; the
// transaction still persists and the entry is created by a later backfill.
type CaptureResult struct {
	Transaction *repo.Transaction
	Entry       *repo.CommissionEntry
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Capture records a transaction and appends its commission entry.
	// Safe to call at least once: a replay with the same facility and bill
	// reference returns the original result.
	Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error)

	// Reverse marks a captured transaction reversed and appends a negating
	// commission entry. History is never mutated; the negative entry offsets
	// the original in a subsequent settlement.
	Reverse(ctx context.Context, facilityID, transactionID uuid.UUID) (*repo.CommissionEntry, error)

	// BackfillEntries creates missing commission entries for transactions
	// captured while the facility's policy was broken.
	BackfillEntries(ctx context.Context, facilityID uuid.UUID) (int, error)

	// GetTransaction loads one transaction scoped to a facility.
	GetTransaction(ctx context.Context, facilityID, transactionID uuid.UUID) (*repo.Transaction, error)

	// ListTransactions pages a facility's transactions, newest first.
	ListTransactions(ctx context.Context, facilityID uuid.UUID, page, perPage int) ([]*repo.Transaction, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type captureService struct {
	db      *repo.Client
	ledger  ledger.Store
	pol     policy.Service
	emitter *events.Emitter
	logger  *slog.Logger
}

func New(db *repo.Client, lg ledger.Store, pol policy.Service, emitter *events.Emitter, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &captureService{db: db, ledger: lg, pol: pol, emitter: emitter, logger: logger}
}

func (s *captureService) Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(req.FacilityID); err != nil {
		return nil, err
	}

	facility, err := s.db.Facility.Query().
		Where(entfacility.ID(req.FacilityID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ledger.ErrFacilityNotFound
		}
		return nil, fmt.Errorf("get facility: %w", err)
	}
	if !facility.IsActive {
		return nil, ErrFacilityInactive
	}

	// At-least-once delivery: a replayed capture returns the original row.
	existing, err := s.db.Transaction.Query().
		Where(
			enttxn.FacilityID(req.FacilityID),
			enttxn.BillReference(req.BillReference),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("check existing transaction: %w", err)
	}
	if existing != nil {
		entry, err := s.entryForTransaction(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		return &CaptureResult{Transaction: existing, Entry: entry}, nil
	}

	currency := req.Currency
	if currency == "" {
		currency = facility.Currency
	}

	// The calculator may reject the policy; the transaction must still be
	// recorded so money is never lost, with the entry deferred to backfill.
	var breakdown *Breakdown
	pol, polErr := s.pol.Current(ctx, req.FacilityID)
	if polErr == nil {
		b, computeErr := Compute(req.Channel, req.GrossAmount, pol)
		if computeErr == nil {
			breakdown = &b
		} else {
			polErr = computeErr
		}
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	txn, err := tx.Transaction.Create().
		SetFacilityID(req.FacilityID).
		SetChannel(enttxn.Channel(req.Channel)).
		SetGrossAmount(req.GrossAmount).
		SetCurrency(currency).
		SetOccurredAt(req.OccurredAt).
		SetBillReference(req.BillReference).
		SetNillableCollectedBy(req.CollectedBy).
		SetNillableGatewayTxnID(req.GatewayTxnID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	var entry *repo.CommissionEntry
	if breakdown != nil {
		entry, err = s.ledger.Append(ctx, tx, ledger.AppendParams{
			FacilityID:       req.FacilityID,
			TransactionID:    txn.ID,
			Channel:          string(req.Channel),
			GrossAmount:      breakdown.GrossAmount,
			Commission:       breakdown.CommissionAmount,
			FacilityShare:    breakdown.FacilityShare,
			Currency:         currency,
			OccurredAt:       req.OccurredAt,
			SnapshotRate:     breakdown.SnapshotRate,
			SnapshotTaxRate:  breakdown.SnapshotTaxRate,
			SnapshotCashType: breakdown.SnapshotCashType,
			SnapshotRounding: breakdown.Rounding,
		})
		if err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.emitter.Emit(events.SubjectTransactionCaptured, req.FacilityID, caller.ActorID, map[string]any{
		"transaction_id": txn.ID.String(),
		"channel":        string(req.Channel),
		"gross_amount":   req.GrossAmount,
	})
	if entry != nil {
		s.emitEntryCreated(req.FacilityID, caller.ActorID, entry)
	}

	if polErr != nil {
		// Capture succeeded; entry creation is deferred until the policy is
		// corrected and backfill runs. No silent zero-commission fallback.
		s.logger.Warn("entry creation deferred",
			"facility_id", req.FacilityID,
			"transaction_id", txn.ID,
			"err", polErr)
		return &CaptureResult{Transaction: txn}, polErr
	}

	return &CaptureResult{Transaction: txn, Entry: entry}, nil
}

func (s *captureService) Reverse(ctx context.Context, facilityID, transactionID uuid.UUID) (*repo.CommissionEntry, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return nil, err
	}

	txn, err := s.GetTransaction(ctx, facilityID, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == enttxn.StatusReversed {
		return nil, ErrAlreadyReversed
	}

	original, err := s.entryForTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ledger.ErrEntryNotFound
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	affected, err := tx.Transaction.Update().
		Where(
			enttxn.ID(transactionID),
			enttxn.StatusEQ(enttxn.StatusCaptured),
		).
		SetStatus(enttxn.StatusReversed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark reversed: %w", err)
	}
	if affected == 0 {
		err = ErrAlreadyReversed
		return nil, err
	}

	rate, _ := decimal.NewFromString(original.SnapshotRate)
	taxRate, _ := decimal.NewFromString(original.SnapshotTaxRate)

	negation, err := s.ledger.Append(ctx, tx, ledger.AppendParams{
		FacilityID:       facilityID,
		TransactionID:    transactionID,
		Channel:          string(original.Channel),
		GrossAmount:      -original.GrossAmount,
		Commission:       -original.CommissionAmount,
		FacilityShare:    -original.FacilityShare,
		Currency:         original.Currency,
		OccurredAt:       time.Now().UTC(),
		SnapshotRate:     rate,
		SnapshotTaxRate:  taxRate,
		SnapshotCashType: string(original.SnapshotCashType),
		SnapshotRounding: money.RoundingMode(original.SnapshotRounding),
		ReversesEntryID:  &original.ID,
	})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.emitter.Emit(events.SubjectLedgerEntryReversed, facilityID, caller.ActorID, map[string]any{
		"entry_id":          negation.ID.String(),
		"reverses_entry_id": original.ID.String(),
		"commission_amount": negation.CommissionAmount,
	})

	return negation, nil
}

func (s *captureService) BackfillEntries(ctx context.Context, facilityID uuid.UUID) (int, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return 0, err
	}

	pol, err := s.pol.Current(ctx, facilityID)
	if err != nil {
		return 0, err
	}

	// Captured transactions that never got an entry.
	missing, err := s.db.Transaction.Query().
		Where(
			enttxn.FacilityID(facilityID),
			enttxn.StatusEQ(enttxn.StatusCaptured),
			enttxn.Not(enttxn.HasEntries()),
		).
		Order(enttxn.ByOccurredAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query missing entries: %w", err)
	}

	created := 0
	for _, txn := range missing {
		b, err := Compute(Channel(txn.Channel), txn.GrossAmount, pol)
		if err != nil {
			return created, err
		}

		tx, err := s.db.Tx(ctx)
		if err != nil {
			return created, fmt.Errorf("begin tx: %w", err)
		}

		entry, err := s.ledger.Append(ctx, tx, ledger.AppendParams{
			FacilityID:       facilityID,
			TransactionID:    txn.ID,
			Channel:          string(txn.Channel),
			GrossAmount:      b.GrossAmount,
			Commission:       b.CommissionAmount,
			FacilityShare:    b.FacilityShare,
			Currency:         txn.Currency,
			OccurredAt:       txn.OccurredAt,
			SnapshotRate:     b.SnapshotRate,
			SnapshotTaxRate:  b.SnapshotTaxRate,
			SnapshotCashType: b.SnapshotCashType,
			SnapshotRounding: b.Rounding,
		})
		if err != nil {
			tx.Rollback()
			return created, err
		}
		if err = tx.Commit(); err != nil {
			return created, fmt.Errorf("commit: %w", err)
		}

		s.emitEntryCreated(facilityID, caller.ActorID, entry)
		created++
	}

	return created, nil
}

func (s *captureService) GetTransaction(ctx context.Context, facilityID, transactionID uuid.UUID) (*repo.Transaction, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return nil, err
	}

	txn, err := s.db.Transaction.Query().
		Where(
			enttxn.ID(transactionID),
			enttxn.FacilityID(facilityID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return txn, nil
}

func (s *captureService) ListTransactions(ctx context.Context, facilityID uuid.UUID, page, perPage int) ([]*repo.Transaction, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	txns, err := s.db.Transaction.Query().
		Where(enttxn.FacilityID(facilityID)).
		Order(enttxn.ByOccurredAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

// entryForTransaction returns the original (non-reversal) entry for a
// transaction, or nil if none exists yet.
func (s *captureService) entryForTransaction(ctx context.Context, transactionID uuid.UUID) (*repo.CommissionEntry, error) {
	entry, err := s.db.CommissionEntry.Query().
		Where(
			entent.TransactionID(transactionID),
			entent.ReversesEntryIDIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

func (s *captureService) emitEntryCreated(facilityID, actorID uuid.UUID, entry *repo.CommissionEntry) {
	s.emitter.Emit(events.SubjectLedgerEntryCreated, facilityID, actorID, map[string]any{
		"entry_id":          entry.ID.String(),
		"transaction_id":    entry.TransactionID.String(),
		"seq":               entry.Seq,
		"commission_amount": entry.CommissionAmount,
		"facility_share":    entry.FacilityShare,
	})
}
