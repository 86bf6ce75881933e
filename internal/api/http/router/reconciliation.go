package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arogyahq/arogya_backend/internal/api/http/handler"
	"github.com/arogyahq/arogya_backend/pkg/authorize"
)

func (r *Router) registerReconciliationRoutes(
	api fiber.Router,
	rh *handler.ReconciliationHandler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	recon := api.Group("/facilities/:facilityID/reconciliation")
	recon.Get("/pending", rh.Pending,
		requirePerm(authorize.ResourceReconciliation, authorize.ActionRead))
	recon.Get("/aging", rh.Aging,
		requirePerm(authorize.ResourceReconciliation, authorize.ActionRead))
	recon.Get("/summary", rh.Summary,
		requirePerm(authorize.ResourceReconciliation, authorize.ActionRead))
	recon.Post("/refresh", rh.Refresh,
		requirePerm(authorize.ResourceReconciliation, authorize.ActionRead))

	// Cross-facility rollup; the service restricts the result to the
	// caller's visible facilities.
	api.Get("/reconciliation/rollup", rh.Rollup,
		requirePerm(authorize.ResourceReconciliation, authorize.ActionRead))
}
