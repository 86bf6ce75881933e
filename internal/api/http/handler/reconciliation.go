package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/arogyahq/arogya_backend/internal/service/reconciliation"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

type ReconciliationHandler struct {
	svc reconciliation.Service
}

func NewReconciliationHandler(svc reconciliation.Service) *ReconciliationHandler {
	return &ReconciliationHandler{svc: svc}
}

func mapReconError(c fiber.Ctx, err error) error {
	if errors.Is(err, reqctx.ErrTenantAccessDenied) {
		return forbidden(c)
	}
	return internalError(c)
}

// GET /facilities/:facilityID/reconciliation/pending
func (h *ReconciliationHandler) Pending(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	pending, err := h.svc.PendingCommission(c.Context(), facilityID)
	if err != nil {
		return mapReconError(c, err)
	}
	return ok(c, fiber.Map{"pending_commission": pending})
}

// GET /facilities/:facilityID/reconciliation/aging
func (h *ReconciliationHandler) Aging(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	buckets, err := h.svc.AgingReport(c.Context(), facilityID)
	if err != nil {
		return mapReconError(c, err)
	}
	return ok(c, fiber.Map{"buckets": buckets})
}

// GET /facilities/:facilityID/reconciliation/summary
func (h *ReconciliationHandler) Summary(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	sum, err := h.svc.Summary(c.Context(), facilityID)
	if err != nil {
		return mapReconError(c, err)
	}
	return ok(c, sum)
}

// POST /facilities/:facilityID/reconciliation/refresh
func (h *ReconciliationHandler) Refresh(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	if err := h.svc.Refresh(c.Context(), facilityID); err != nil {
		return mapReconError(c, err)
	}
	return noContent(c)
}

// GET /reconciliation/rollup
func (h *ReconciliationHandler) Rollup(c fiber.Ctx) error {
	rollup, err := h.svc.Rollup(c.Context())
	if err != nil {
		return mapReconError(c, err)
	}
	return ok(c, rollup)
}
