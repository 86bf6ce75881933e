package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// SubjectFromContext extracts the GroupSubject (actor ID) from the
// caller context set by the request middleware.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	caller, ok := reqctx.CallerFromContext(ctx)
	if !ok || caller == nil {
		return "", ErrNoSubjectInContext
	}
	if caller.ActorID == uuid.Nil {
		return "", ErrNoSubjectInContext
	}
	return GroupSubject(caller.ActorID.String()), nil
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only behind middleware that guarantees a caller is present.
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// ActorIDFromContext extracts the actor ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func ActorIDFromContext(ctx context.Context) (uuid.UUID, error) {
	caller, ok := reqctx.CallerFromContext(ctx)
	if !ok || caller == nil || caller.ActorID == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}
	return caller.ActorID, nil
}

// RoleForCaller maps the request-level role string onto the Casbin role
// used in grouping policies. Unknown roles map to the empty Role.
func RoleForCaller(c *reqctx.Caller) Role {
	if c == nil {
		return ""
	}
	return CallerRoleToRBACRole[string(c.Role)]
}

// DomainFromResource determines the appropriate domain based on resource ownership.
// - If facilityID is provided, returns facility:<uuid> domain
// - If userID is provided, returns user:<uuid> domain
// - Otherwise returns sys domain
func DomainFromResource(facilityID, userID *string) Domain {
	if facilityID != nil && *facilityID != "" {
		return FacilityDomain(*facilityID)
	}
	if userID != nil && *userID != "" {
		return UserDomain(*userID)
	}
	return DomainSys
}

// DomainForFacility returns the facility domain for a concrete facility ID.
func DomainForFacility(facilityID uuid.UUID) Domain {
	return FacilityDomain(facilityID.String())
}

// DomainFromContext determines the domain based on the current actor in context.
// Useful for user-scoped operations where the domain is the actor's own domain.
func DomainFromContext(ctx context.Context) (Domain, error) {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		return "", err
	}
	return UserDomain(string(subject)), nil
}
