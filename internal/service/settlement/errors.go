package settlement

import (
	"errors"
	"fmt"
)

var (
	ErrSettlementNotFound = errors.New("settlement not found")

	// ErrNoUnsettledEntries means aggregation was requested with nothing to
	// settle. Non-fatal; no draft is created.
	ErrNoUnsettledEntries = errors.New("no unsettled entries in selection")

	// ErrConcurrentTransition means another request moved the settlement
	// first. Retryable: re-read and resubmit if still applicable.
	ErrConcurrentTransition = errors.New("settlement state changed concurrently")

	// ErrIdempotencyKeyReused means a known key arrived with a different
	// logical operation than the one it originally fenced.
	ErrIdempotencyKeyReused = errors.New("idempotency key reused for a different operation")

	// ErrPaymentReferenceRequired guards the paid transition.
	ErrPaymentReferenceRequired = errors.New("payment reference required to mark settlement paid")

	// ErrApprovalRequiresSuperAdmin guards the approved and paid transitions.
	ErrApprovalRequiresSuperAdmin = errors.New("transition requires a super admin actor")
)

// InvalidTransitionError reports a workflow call out of order, naming the
// current and attempted state. Never auto-corrected.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid settlement transition: %s -> %s", e.From, e.To)
}

// IsInvalidTransition reports whether err is (or wraps) an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

// ReconciliationDriftError means a settlement's stored totals no longer
// match the sum of its linked entries. Fatal to the transition; signals a
// prior bug and requires manual investigation.
type ReconciliationDriftError struct {
	SettlementID  string
	StoredTotal   int64
	ComputedTotal int64
}

func (e *ReconciliationDriftError) Error() string {
	return fmt.Sprintf("reconciliation drift on settlement %s: stored commission %d, linked entries sum %d",
		e.SettlementID, e.StoredTotal, e.ComputedTotal)
}

// IsReconciliationDrift reports whether err is (or wraps) a ReconciliationDriftError.
func IsReconciliationDrift(err error) bool {
	var rde *ReconciliationDriftError
	return errors.As(err, &rde)
}
