package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arogyahq/arogya_backend/internal/api/http/handler"
	"github.com/arogyahq/arogya_backend/pkg/authorize"
)

func (r *Router) registerSettlementRoutes(
	api fiber.Router,
	sh *handler.SettlementHandler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	settlements := api.Group("/facilities/:facilityID/settlements")

	settlements.Post("/", sh.Propose,
		requirePerm(authorize.ResourceSettlement, authorize.ActionPropose))
	settlements.Get("/", sh.List,
		requirePerm(authorize.ResourceSettlement, authorize.ActionRead))
	settlements.Get("/:settlementID", sh.Get,
		requirePerm(authorize.ResourceSettlement, authorize.ActionRead))

	// Approve and pay are granted to nobody in the facility domain; only the
	// platform superadmin passes, which matches who signs off on payouts.
	settlements.Post("/:settlementID/submit", sh.Submit(),
		requirePerm(authorize.ResourceSettlement, authorize.ActionSubmit))
	settlements.Post("/:settlementID/approve", sh.Approve(),
		requirePerm(authorize.ResourceSettlement, authorize.ActionApprove))
	settlements.Post("/:settlementID/pay", sh.Pay(),
		requirePerm(authorize.ResourceSettlement, authorize.ActionPay))
	settlements.Post("/:settlementID/cancel", sh.Cancel(),
		requirePerm(authorize.ResourceSettlement, authorize.ActionCancel))
}
