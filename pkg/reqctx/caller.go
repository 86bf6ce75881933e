package reqctx

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrTenantAccessDenied is returned whenever a caller targets a facility
// outside their granted set. It is always fatal to the request; operations
// are never silently scoped down to the visible subset.
var ErrTenantAccessDenied = errors.New("tenant access denied")

// Role is the caller's platform role as asserted by the upstream auth layer.
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleFacilityAdmin Role = "facility_admin"
	RoleStaff         Role = "staff"
	RolePatient       Role = "patient"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleSuperAdmin, RoleFacilityAdmin, RoleStaff, RolePatient:
		return true
	}
	return false
}

// Caller carries the tenant context for one request. It is built once by
// middleware from upstream auth assertions and threaded explicitly through
// every store and settlement operation.
type Caller struct {
	ActorID uuid.UUID
	Role    Role

	// FacilityIDs is the set of facilities this caller may touch.
	// Ignored for super_admin, which sees everything.
	FacilityIDs []uuid.UUID
}

// IsSuperAdmin reports whether the caller bypasses facility scoping.
func (c *Caller) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}

// CanAccess reports whether the caller may operate on facilityID.
func (c *Caller) CanAccess(facilityID uuid.UUID) bool {
	if c.IsSuperAdmin() {
		return true
	}
	for _, id := range c.FacilityIDs {
		if id == facilityID {
			return true
		}
	}
	return false
}

// RequireFacility is the guard choke-point: every facility-scoped operation
// calls this before touching storage.
func (c *Caller) RequireFacility(facilityID uuid.UUID) error {
	if c.CanAccess(facilityID) {
		return nil
	}
	return fmt.Errorf("%w: actor %s role %s facility %s",
		ErrTenantAccessDenied, c.ActorID, c.Role, facilityID)
}

// VisibleFacilities returns the facility set for scoped queries.
// A nil slice means unrestricted (super_admin). Every other caller gets a
// non-nil slice, so a caller granted no facilities matches nothing rather
// than everything.
func (c *Caller) VisibleFacilities() []uuid.UUID {
	if c.IsSuperAdmin() {
		return nil
	}
	if c.FacilityIDs == nil {
		return []uuid.UUID{}
	}
	return c.FacilityIDs
}

// WithCaller stores the caller context.
func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, keyCaller, caller)
}

// CallerFromContext retrieves the caller context.
// Returns nil, false if not set.
func CallerFromContext(ctx context.Context) (*Caller, bool) {
	v := ctx.Value(keyCaller)
	if v == nil {
		return nil, false
	}
	caller, ok := v.(*Caller)
	return caller, ok
}

// MustCaller retrieves the caller context or panics.
// Use only behind middleware that guarantees it is present.
func MustCaller(ctx context.Context) *Caller {
	caller, ok := CallerFromContext(ctx)
	if !ok || caller == nil {
		panic("reqctx: caller not found in context")
	}
	return caller
}
