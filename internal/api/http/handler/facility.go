package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/arogyahq/arogya_backend/internal/service/facility"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

type FacilityHandler struct {
	svc facility.Service
}

func NewFacilityHandler(svc facility.Service) *FacilityHandler {
	return &FacilityHandler{svc: svc}
}

func mapFacilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reqctx.ErrTenantAccessDenied):
		return forbidden(c)
	case errors.Is(err, facility.ErrFacilityNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, facility.ErrCodeAlreadyInUse):
		return conflict(c, err.Error())
	case errors.Is(err, facility.ErrNameRequired),
		errors.Is(err, facility.ErrCodeRequired),
		errors.Is(err, facility.ErrInvalidCurrency):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /facilities
func (h *FacilityHandler) Create(c fiber.Ctx) error {
	var body facility.CreateRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	f, err := h.svc.Create(c.Context(), body)
	if err != nil {
		return mapFacilityError(c, err)
	}
	return created(c, f)
}

// GET /facilities/:facilityID
func (h *FacilityHandler) Get(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	f, err := h.svc.Get(c.Context(), facilityID)
	if err != nil {
		return mapFacilityError(c, err)
	}
	return ok(c, f)
}

// GET /facilities
func (h *FacilityHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		q.Page, q.PerPage = 1, 20
	}

	facilities, total, err := h.svc.List(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapFacilityError(c, err)
	}
	return ok(c, fiber.Map{
		"facilities": facilities,
		"total":      total,
	})
}

// POST /facilities/:facilityID/activate
// POST /facilities/:facilityID/deactivate
func (h *FacilityHandler) SetActive(active bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		facilityID, err := facilityIDFromParams(c)
		if err != nil {
			return err
		}

		f, err := h.svc.SetActive(c.Context(), facilityID, active)
		if err != nil {
			return mapFacilityError(c, err)
		}
		return ok(c, f)
	}
}
