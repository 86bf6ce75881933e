package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arogyahq/arogya_backend/internal/api/http/handler"
	"github.com/arogyahq/arogya_backend/pkg/authorize"
)

func (r *Router) registerFacilityRoutes(
	api fiber.Router,
	fh *handler.FacilityHandler,
	ph *handler.PolicyHandler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	facilities := api.Group("/facilities")

	// Registry management is platform scoped.
	facilities.Post("/", fh.Create,
		requirePerm(authorize.ResourceFacility, authorize.ActionCreate))
	facilities.Get("/", fh.List)
	facilities.Get("/:facilityID", fh.Get,
		requirePerm(authorize.ResourceFacility, authorize.ActionRead))
	facilities.Post("/:facilityID/activate", fh.SetActive(true),
		requirePerm(authorize.ResourceFacility, authorize.ActionUpdate))
	facilities.Post("/:facilityID/deactivate", fh.SetActive(false),
		requirePerm(authorize.ResourceFacility, authorize.ActionUpdate))

	facilities.Get("/:facilityID/policy", ph.Get,
		requirePerm(authorize.ResourcePolicy, authorize.ActionRead))
	facilities.Put("/:facilityID/policy", ph.Upsert,
		requirePerm(authorize.ResourcePolicy, authorize.ActionUpdate))
}
