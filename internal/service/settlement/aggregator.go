package settlement

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entfacility "github.com/arogyahq/arogya_backend/internal/repo/facility"
	entsettle "github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/pkg/events"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

const opPropose = "settlement.propose"

func (s *settlementService) Propose(ctx context.Context, req ProposeRequest) (*repo.Settlement, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(req.FacilityID); err != nil {
		return nil, err
	}

	// A replayed propose with a known key returns the original draft and
	// claims nothing new.
	if prior, err := s.replay(ctx, req.IdempotencyKey, opPropose); err != nil {
		return nil, err
	} else if prior != nil {
		return prior, nil
	}

	facility, err := s.db.Facility.Query().
		Where(entfacility.ID(req.FacilityID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("facility %s: %w", req.FacilityID, ErrSettlementNotFound)
		}
		return nil, fmt.Errorf("get facility: %w", err)
	}

	// Select candidates outside the claim transaction; the claim itself is
	// status-guarded, so a stale selection loses cleanly instead of double
	// counting.
	var entries []*repo.CommissionEntry
	if len(req.EntryIDs) > 0 {
		entries, err = s.ledger.UnsettledByIDs(ctx, req.FacilityID, req.EntryIDs)
	} else {
		entries, err = s.ledger.UnsettledInPeriod(ctx, req.FacilityID, req.PeriodFrom, req.PeriodTo, req.Type.Channels())
	}
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoUnsettledEntries
	}

	var totalCollections, totalCommission int64
	entryIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		totalCollections += e.GrossAmount
		totalCommission += e.CommissionAmount
		entryIDs = append(entryIDs, e.ID)
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

	record, err := tx.Settlement.Create().
		SetFacilityID(req.FacilityID).
		SetSettlementType(entsettle.SettlementType(req.Type)).
		SetPeriodFrom(req.PeriodFrom).
		SetPeriodTo(req.PeriodTo).
		SetTotalCollections(totalCollections).
		SetTotalCommission(totalCommission).
		SetFacilityShare(totalCollections - totalCommission).
		SetPlatformShare(totalCommission).
		SetCurrency(facility.Currency).
		SetNotes(req.Notes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create settlement: %w", err)
	}

	// Claim and draft creation commit together or not at all. That pairing
	// is what keeps every entry in at most one active settlement under
	// concurrent propose calls.
	if err = s.ledger.ClaimForSettlement(ctx, tx, req.FacilityID, record.ID, entryIDs); err != nil {
		return nil, err
	}

	bulk := make([]*repo.SettlementItemCreate, 0, len(entries))
	for _, e := range entries {
		bulk = append(bulk, tx.SettlementItem.Create().
			SetSettlementID(record.ID).
			SetEntryID(e.ID).
			SetCommissionAmount(e.CommissionAmount))
	}
	if _, err = tx.SettlementItem.CreateBulk(bulk...).Save(ctx); err != nil {
		return nil, fmt.Errorf("create settlement items: %w", err)
	}

	if err = s.recordKey(ctx, tx, req.IdempotencyKey, opPropose, req.FacilityID, record.ID); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.emitter.Emit(events.SettlementSubject(StateDraft), req.FacilityID, caller.ActorID, map[string]any{
		"settlement_id":    record.ID.String(),
		"settlement_type":  string(req.Type),
		"total_commission": totalCommission,
		"entry_count":      len(entryIDs),
	})

	return record, nil
}

func (s *settlementService) Get(ctx context.Context, settlementID uuid.UUID) (*repo.Settlement, error) {
	record, err := s.db.Settlement.Query().
		Where(entsettle.ID(settlementID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSettlementNotFound
		}
		return nil, fmt.Errorf("get settlement: %w", err)
	}

	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(record.FacilityID); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *settlementService) List(ctx context.Context, facilityID uuid.UUID, page, perPage int) ([]*repo.Settlement, error) {
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

	records, err := s.db.Settlement.Query().
		Where(entsettle.FacilityID(facilityID)).
		Order(entsettle.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	return records, nil
}
