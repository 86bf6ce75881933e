package ledger

import "errors"

var (
	ErrEntryNotFound    = errors.New("commission entry not found")
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrConcurrentClaimConflict means two aggregation attempts raced for the
	// same entries. The loser fails cleanly with no partial claim surviving
	// and may retry with a fresh selection.
	ErrConcurrentClaimConflict = errors.New("concurrent claim conflict")
)
