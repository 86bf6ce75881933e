package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

type PolicyHandler struct {
	svc policy.Service
}

func NewPolicyHandler(svc policy.Service) *PolicyHandler {
	return &PolicyHandler{svc: svc}
}

func mapPolicyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reqctx.ErrTenantAccessDenied):
		return forbidden(c)
	case errors.Is(err, policy.ErrPolicyNotFound):
		return notFound(c, err.Error())
	case policy.IsPolicyError(err):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /facilities/:facilityID/policy
func (h *PolicyHandler) Get(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	row, err := h.svc.Get(c.Context(), facilityID)
	if err != nil {
		return mapPolicyError(c, err)
	}
	return ok(c, row)
}

// PUT /facilities/:facilityID/policy
func (h *PolicyHandler) Upsert(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	var body policy.UpdateRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	row, err := h.svc.Upsert(c.Context(), facilityID, body)
	if err != nil {
		return mapPolicyError(c, err)
	}
	return ok(c, row)
}
