package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arogyahq/arogya_backend/internal/api/http/handler"
	"github.com/arogyahq/arogya_backend/pkg/authorize"
)

func (r *Router) registerTransactionRoutes(
	api fiber.Router,
	th *handler.TransactionHandler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	txns := api.Group("/facilities/:facilityID/transactions")

	txns.Post("/", th.Capture,
		requirePerm(authorize.ResourceTransaction, authorize.ActionCreate))
	txns.Get("/", th.List,
		requirePerm(authorize.ResourceTransaction, authorize.ActionRead))
	txns.Get("/:transactionID", th.Get,
		requirePerm(authorize.ResourceTransaction, authorize.ActionRead))
	txns.Post("/:transactionID/reverse", th.Reverse,
		requirePerm(authorize.ResourceTransaction, authorize.ActionReverse))
	txns.Post("/backfill", th.Backfill,
		requirePerm(authorize.ResourceLedgerEntry, authorize.ActionCreate))
}
