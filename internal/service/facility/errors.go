package facility

import "errors"

var (
	ErrFacilityNotFound = errors.New("facility not found")
	ErrCodeAlreadyInUse = errors.New("facility code already in use")
	ErrFacilityInactive = errors.New("facility is inactive")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter ISO code")
	ErrNameRequired     = errors.New("facility name is required")
	ErrCodeRequired     = errors.New("facility code is required")
)
