package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

// Headers asserted by the upstream gateway after it has authenticated the
// caller. This service trusts them; it never sees credentials itself.
const (
	HeaderActorID     = "X-Actor-Id"
	HeaderActorRole   = "X-Actor-Role"
	HeaderFacilityIDs = "X-Facility-Ids"

	LocalCaller = "caller"
)

// CallerContext builds the tenant context for the request from gateway
// headers and rejects requests that lack a usable identity.
func CallerContext() fiber.Handler {
	return func(c fiber.Ctx) error {
		actorID, err := uuid.Parse(c.Get(HeaderActorID))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "missing or invalid actor id")
		}

		role := c.Get(HeaderActorRole)
		if !reqctx.ValidRole(role) {
			return fiber.NewError(fiber.StatusUnauthorized, "unknown actor role")
		}

		var facilityIDs []uuid.UUID
		if raw := c.Get(HeaderFacilityIDs); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				id, err := uuid.Parse(strings.TrimSpace(part))
				if err != nil {
					return fiber.NewError(fiber.StatusUnauthorized, "invalid facility id in scope header")
				}
				facilityIDs = append(facilityIDs, id)
			}
		}

		caller := &reqctx.Caller{
			ActorID:     actorID,
			Role:        reqctx.Role(role),
			FacilityIDs: facilityIDs,
		}
		c.Locals(LocalCaller, caller)
		c.SetContext(reqctx.WithCaller(c.Context(), caller))

		return c.Next()
	}
}

// CallerFromFiber retrieves the caller built by CallerContext.
func CallerFromFiber(c fiber.Ctx) (*reqctx.Caller, bool) {
	v := c.Locals(LocalCaller)
	caller, ok := v.(*reqctx.Caller)
	return caller, ok && caller != nil
}
