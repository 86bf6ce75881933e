package policy

import (
	"errors"
	"fmt"
)

var ErrPolicyNotFound = errors.New("commission policy not found")

// PolicyError reports malformed or missing commission configuration. Entry
// creation is deferred until the policy is corrected; there is no silent
// zero-commission fallback.
type PolicyError struct {
	Field  string
	Reason string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("policy error: %s: %s", e.Field, e.Reason)
}

// IsPolicyError reports whether err is (or wraps) a PolicyError.
func IsPolicyError(err error) bool {
	var pe *PolicyError
	return errors.As(err, &pe)
}
