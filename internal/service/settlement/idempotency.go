package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entidem "github.com/arogyahq/arogya_backend/internal/repo/idempotencykey"
	entsettle "github.com/arogyahq/arogya_backend/internal/repo/settlement"
)

// replay returns the settlement a previously-seen key produced, nil when the
// key is new. A key reused for a different operation is an error: the caller
// is confused, and silently honoring it could replay the wrong mutation.
func (s *settlementService) replay(ctx context.Context, key, operation string) (*repo.Settlement, error) {
	if key == "" {
		return nil, nil
	}

	row, err := s.db.IdempotencyKey.Query().
		Where(entidem.Key(key)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup idempotency key: %w", err)
	}

	if row.Operation != operation {
		return nil, fmt.Errorf("%w: key %q bound to %s", ErrIdempotencyKeyReused, key, row.Operation)
	}
	if row.SettlementID == nil {
		return nil, fmt.Errorf("%w: key %q has no result", ErrIdempotencyKeyReused, key)
	}

	record, err := s.db.Settlement.Query().
		Where(entsettle.ID(*row.SettlementID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load replayed settlement: %w", err)
	}
	return record, nil
}

// recordKey persists the key→result binding inside the transaction that
// performs the fenced side effect, so the fence and the effect commit
// atomically.
func (s *settlementService) recordKey(ctx context.Context, tx *repo.Tx, key, operation string, facilityID, settlementID uuid.UUID) error {
	if key == "" {
		return nil
	}

	err := tx.IdempotencyKey.Create().
		SetKey(key).
		SetOperation(operation).
		SetFacilityID(facilityID).
		SetSettlementID(settlementID).
		Exec(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			// A concurrent request with the same key won the race; its
			// committed result will answer the replay.
			return fmt.Errorf("%w: idempotency key already claimed", ErrConcurrentTransition)
		}
		return fmt.Errorf("record idempotency key: %w", err)
	}
	return nil
}
