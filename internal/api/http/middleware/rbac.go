package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/pkg/authorize"
)

// RequirePermission checks that the caller's role grants (resource, action)
// in the facility domain named by the :facilityID path param, or in the sys
// domain when the route is not facility scoped.
//
// Identity arrives pre-authenticated from the gateway, so the Casbin check
// runs on the role the gateway asserted: it enforces the role→action matrix.
// Which facilities the actor may touch is the tenant guard's job, enforced
// per call inside every service.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, ok := CallerFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		role, ok := authorize.CallerRoleToRBACRole[string(caller.Role)]
		if !ok {
			// Roles with no RBAC mapping (patient) hold no permissions.
			return fiber.ErrForbidden
		}

		domain := authorize.DomainSys
		if raw := c.Params("facilityID"); raw != "" {
			facilityID, err := uuid.Parse(raw)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid facility id")
			}
			domain = authorize.DomainForFacility(facilityID)
		}

		subject := authorize.GroupSubject(role)
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
