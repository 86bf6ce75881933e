package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entsettle "github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/pkg/events"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

func (s *settlementService) Transition(ctx context.Context, settlementID uuid.UUID, req TransitionRequest) (*repo.Settlement, error) {
	record, err := s.Get(ctx, settlementID)
	if err != nil {
		return nil, err
	}
	caller := reqctx.MustCaller(ctx)

	operation := "settlement." + req.TargetState
	if prior, err := s.replay(ctx, req.IdempotencyKey, operation); err != nil {
		return nil, err
	} else if prior != nil {
		return prior, nil
	}

	current := string(record.Status)
	var updated *repo.Settlement

	switch {
	case current == StateDraft && req.TargetState == StatePendingApproval:
		updated, err = s.submit(ctx, caller, record, req)
	case current == StatePendingApproval && req.TargetState == StateApproved:
		updated, err = s.approve(ctx, caller, record, req)
	case current == StateApproved && req.TargetState == StatePaid:
		updated, err = s.pay(ctx, caller, record, req)
	case req.TargetState == StateCancelled &&
		(current == StateDraft || current == StatePendingApproval || current == StateApproved):
		updated, err = s.cancel(ctx, caller, record, req)
	default:
		return nil, &InvalidTransitionError{From: current, To: req.TargetState}
	}
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(events.SettlementSubject(req.TargetState), record.FacilityID, caller.ActorID, map[string]any{
		"settlement_id":    record.ID.String(),
		"from_state":       current,
		"total_commission": record.TotalCommission,
	})

	return updated, nil
}

// submit re-checks the stored totals against the sum over linked entries
// before the batch leaves facility control. Drift here means a prior bug;
// it is fatal and never auto-repaired.
func (s *settlementService) submit(ctx context.Context, caller *reqctx.Caller, record *repo.Settlement, req TransitionRequest) (*repo.Settlement, error) {
	entries, err := s.ledger.EntriesForSettlement(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	var sum int64
	for _, e := range entries {
		sum += e.CommissionAmount
	}
	if sum != record.TotalCommission {
		return nil, &ReconciliationDriftError{
			SettlementID:  record.ID.String(),
			StoredTotal:   record.TotalCommission,
			ComputedTotal: sum,
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

	if err = s.guardedTransition(ctx, tx, record.ID, entsettle.StatusDraft, func(u *repo.SettlementUpdate) {
		u.SetStatus(entsettle.StatusPendingApproval).
			SetSubmittedBy(caller.ActorID)
	}); err != nil {
		return nil, err
	}

	if err = s.recordKey(ctx, tx, req.IdempotencyKey, "settlement."+StatePendingApproval, record.FacilityID, record.ID); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.db.Settlement.Get(ctx, record.ID)
}

func (s *settlementService) approve(ctx context.Context, caller *reqctx.Caller, record *repo.Settlement, req TransitionRequest) (*repo.Settlement, error) {
	if !caller.IsSuperAdmin() {
		return nil, ErrApprovalRequiresSuperAdmin
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

	now := time.Now().UTC()
	if err = s.guardedTransition(ctx, tx, record.ID, entsettle.StatusPendingApproval, func(u *repo.SettlementUpdate) {
		u.SetStatus(entsettle.StatusApproved).
			SetApprovedBy(caller.ActorID).
			SetApprovedAt(now)
	}); err != nil {
		return nil, err
	}

	if err = s.recordKey(ctx, tx, req.IdempotencyKey, "settlement."+StateApproved, record.FacilityID, record.ID); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.db.Settlement.Get(ctx, record.ID)
}

// pay records the payment reference and atomically flips every linked entry
// to settled.
func (s *settlementService) pay(ctx context.Context, caller *reqctx.Caller, record *repo.Settlement, req TransitionRequest) (*repo.Settlement, error) {
	if !caller.IsSuperAdmin() {
		return nil, ErrApprovalRequiresSuperAdmin
	}
	if req.PaymentReference == "" {
		return nil, ErrPaymentReferenceRequired
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

	now := time.Now().UTC()
	if err = s.guardedTransition(ctx, tx, record.ID, entsettle.StatusApproved, func(u *repo.SettlementUpdate) {
		u.SetStatus(entsettle.StatusPaid).
			SetPaidBy(caller.ActorID).
			SetPaidAt(now).
			SetPaymentReference(req.PaymentReference).
			SetNillablePaymentMethod(nilIfEmpty(req.PaymentMethod))
	}); err != nil {
		return nil, err
	}

	if err = s.ledger.MarkSettled(ctx, tx, record.ID); err != nil {
		return nil, err
	}

	if err = s.recordKey(ctx, tx, req.IdempotencyKey, "settlement."+StatePaid, record.FacilityID, record.ID); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.db.Settlement.Get(ctx, record.ID)
}

// cancel reverts every linked entry to unsettled so it can be re-aggregated.
func (s *settlementService) cancel(ctx context.Context, caller *reqctx.Caller, record *repo.Settlement, req TransitionRequest) (*repo.Settlement, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	if err = s.guardedTransition(ctx, tx, record.ID, record.Status, func(u *repo.SettlementUpdate) {
		u.SetStatus(entsettle.StatusCancelled).
			SetCancelledBy(caller.ActorID).
			SetCancelledAt(now)
	}); err != nil {
		return nil, err
	}

	if err = s.ledger.ReleaseSettlement(ctx, tx, record.ID); err != nil {
		return nil, err
	}

	if err = s.recordKey(ctx, tx, req.IdempotencyKey, "settlement."+StateCancelled, record.FacilityID, record.ID); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.db.Settlement.Get(ctx, record.ID)
}

// guardedTransition performs a status-guarded conditional update. Zero
// affected rows means another request moved the settlement first.
func (s *settlementService) guardedTransition(ctx context.Context, tx *repo.Tx, id uuid.UUID, from entsettle.Status, apply func(*repo.SettlementUpdate)) error {
	u := tx.Settlement.Update().
		Where(
			entsettle.ID(id),
			entsettle.StatusEQ(from),
		)
	apply(u)

	affected, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("update settlement: %w", err)
	}
	if affected == 0 {
		return ErrConcurrentTransition
	}
	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
