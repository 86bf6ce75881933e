package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/internal/service/ledger"
	"github.com/arogyahq/arogya_backend/internal/service/settlement"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

// HeaderIdempotencyKey makes settlement mutations safe to retry.
const HeaderIdempotencyKey = "X-Idempotency-Key"

type SettlementHandler struct {
	svc settlement.Service
}

func NewSettlementHandler(svc settlement.Service) *SettlementHandler {
	return &SettlementHandler{svc: svc}
}

func mapSettlementError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reqctx.ErrTenantAccessDenied),
		errors.Is(err, settlement.ErrApprovalRequiresSuperAdmin):
		return forbidden(c)
	case errors.Is(err, settlement.ErrSettlementNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, settlement.ErrConcurrentTransition),
		errors.Is(err, ledger.ErrConcurrentClaimConflict):
		return retryableConflict(c, err.Error())
	case errors.Is(err, settlement.ErrIdempotencyKeyReused):
		return conflict(c, err.Error())
	case errors.Is(err, settlement.ErrNoUnsettledEntries),
		errors.Is(err, settlement.ErrPaymentReferenceRequired),
		settlement.IsInvalidTransition(err):
		return unprocessable(c, err.Error())
	default:
		// Drift surfaces here as well; nothing a caller can repair.
		return internalError(c)
	}
}

// POST /facilities/:facilityID/settlements
func (h *SettlementHandler) Propose(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	var body struct {
		Type       string    `json:"type"`
		PeriodFrom time.Time `json:"period_from"`
		PeriodTo   time.Time `json:"period_to"`
		EntryIDs   []string  `json:"entry_ids"`
		Notes      string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Type == "" {
		body.Type = string(settlement.TypeMixed)
	}
	if len(body.EntryIDs) == 0 && (body.PeriodFrom.IsZero() || body.PeriodTo.IsZero()) {
		return badRequest(c, "either a period or entry_ids is required")
	}

	req := settlement.ProposeRequest{
		FacilityID:     facilityID,
		Type:           settlement.Type(body.Type),
		PeriodFrom:     body.PeriodFrom,
		PeriodTo:       body.PeriodTo,
		Notes:          body.Notes,
		IdempotencyKey: c.Get(HeaderIdempotencyKey),
	}
	for _, raw := range body.EntryIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid entry id")
		}
		req.EntryIDs = append(req.EntryIDs, id)
	}

	record, err := h.svc.Propose(c.Context(), req)
	if err != nil {
		return mapSettlementError(c, err)
	}
	return created(c, record)
}

// transition builds the handler for one workflow step.
func (h *SettlementHandler) transition(target string) fiber.Handler {
	return func(c fiber.Ctx) error {
		settlementID, err := uuid.Parse(c.Params("settlementID"))
		if err != nil {
			return badRequest(c, "invalid settlement id")
		}

		req := settlement.TransitionRequest{
			TargetState:    target,
			IdempotencyKey: c.Get(HeaderIdempotencyKey),
		}
		if target == settlement.StatePaid {
			var body struct {
				PaymentReference string `json:"payment_reference"`
				PaymentMethod    string `json:"payment_method"`
			}
			if err := c.Bind().JSON(&body); err != nil {
				return badRequest(c, "invalid request body")
			}
			req.PaymentReference = body.PaymentReference
			req.PaymentMethod = body.PaymentMethod
		}

		record, err := h.svc.Transition(c.Context(), settlementID, req)
		if err != nil {
			return mapSettlementError(c, err)
		}
		return ok(c, record)
	}
}

// POST /settlements/:settlementID/submit
func (h *SettlementHandler) Submit() fiber.Handler {
	return h.transition(settlement.StatePendingApproval)
}

// POST /settlements/:settlementID/approve
func (h *SettlementHandler) Approve() fiber.Handler {
	return h.transition(settlement.StateApproved)
}

// POST /settlements/:settlementID/pay
func (h *SettlementHandler) Pay() fiber.Handler {
	return h.transition(settlement.StatePaid)
}

// POST /settlements/:settlementID/cancel
func (h *SettlementHandler) Cancel() fiber.Handler {
	return h.transition(settlement.StateCancelled)
}

// GET /settlements/:settlementID
func (h *SettlementHandler) Get(c fiber.Ctx) error {
	settlementID, err := uuid.Parse(c.Params("settlementID"))
	if err != nil {
		return badRequest(c, "invalid settlement id")
	}

	record, err := h.svc.Get(c.Context(), settlementID)
	if err != nil {
		return mapSettlementError(c, err)
	}
	return ok(c, record)
}

// GET /facilities/:facilityID/settlements
func (h *SettlementHandler) List(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil {
		q.Page, q.PerPage = 1, 20
	}

	records, err := h.svc.List(c.Context(), facilityID, q.Page, q.PerPage)
	if err != nil {
		return mapSettlementError(c, err)
	}
	return ok(c, fiber.Map{"settlements": records})
}
