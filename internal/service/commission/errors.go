package commission

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyReversed     = errors.New("transaction already reversed")
	ErrFacilityInactive    = errors.New("facility is not active")
)
