package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/internal/service/commission"
	"github.com/arogyahq/arogya_backend/internal/service/ledger"
	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

type TransactionHandler struct {
	svc commission.Service
}

func NewTransactionHandler(svc commission.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func facilityIDFromParams(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("facilityID"))
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, "invalid facility id")
	}
	return id, nil
}

func mapTransactionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reqctx.ErrTenantAccessDenied):
		return forbidden(c)
	case errors.Is(err, commission.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrFacilityNotFound),
		errors.Is(err, ledger.ErrEntryNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, commission.ErrAlreadyReversed):
		return conflict(c, err.Error())
	case errors.Is(err, commission.ErrFacilityInactive):
		return unprocessable(c, err.Error())
	case policy.IsPolicyError(err):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /facilities/:facilityID/transactions
func (h *TransactionHandler) Capture(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	var body struct {
		Channel       string    `json:"channel"`
		GrossAmount   int64     `json:"gross_amount"`
		Currency      string    `json:"currency"`
		OccurredAt    time.Time `json:"occurred_at"`
		BillReference string    `json:"bill_reference"`
		CollectedBy   string    `json:"collected_by"`
		GatewayTxnID  string    `json:"gateway_txn_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.BillReference == "" {
		return badRequest(c, "bill_reference is required")
	}
	if body.GrossAmount <= 0 {
		return badRequest(c, "gross_amount must be positive")
	}
	if body.OccurredAt.IsZero() {
		body.OccurredAt = time.Now().UTC()
	}

	req := commission.CaptureRequest{
		FacilityID:    facilityID,
		Channel:       commission.Channel(body.Channel),
		GrossAmount:   body.GrossAmount,
		Currency:      body.Currency,
		OccurredAt:    body.OccurredAt,
		BillReference: body.BillReference,
	}
	if body.CollectedBy != "" {
		id, err := uuid.Parse(body.CollectedBy)
		if err != nil {
			return badRequest(c, "invalid collected_by")
		}
		req.CollectedBy = &id
	}
	if body.GatewayTxnID != "" {
		req.GatewayTxnID = &body.GatewayTxnID
	}

	res, err := h.svc.Capture(c.Context(), req)
	if err != nil {
		// A policy failure still persists the transaction; report both.
		if policy.IsPolicyError(err) && res != nil {
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
				"data": fiber.Map{
					"transaction": res.Transaction,
					"entry":       nil,
				},
				"warning": err.Error(),
			})
		}
		return mapTransactionError(c, err)
	}

	return created(c, fiber.Map{
		"transaction": res.Transaction,
		"entry":       res.Entry,
	})
}

// POST /facilities/:facilityID/transactions/:transactionID/reverse
func (h *TransactionHandler) Reverse(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}
	transactionID, err := uuid.Parse(c.Params("transactionID"))
	if err != nil {
		return badRequest(c, "invalid transaction id")
	}

	negation, err := h.svc.Reverse(c.Context(), facilityID, transactionID)
	if err != nil {
		return mapTransactionError(c, err)
	}
	return created(c, fiber.Map{"entry": negation})
}

// POST /facilities/:facilityID/transactions/backfill
func (h *TransactionHandler) Backfill(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}

	n, err := h.svc.BackfillEntries(c.Context(), facilityID)
	if err != nil {
		return mapTransactionError(c, err)
	}
	return ok(c, fiber.Map{"entries_created": n})
}

// GET /facilities/:facilityID/transactions/:transactionID
func (h *TransactionHandler) Get(c fiber.Ctx) error {
	facilityID, err := facilityIDFromParams(c)
	if err != nil {
		return err
	}
	transactionID, err := uuid.Parse(c.Params("transactionID"))
	if err != nil {
		return badRequest(c, "invalid transaction id")
	}

	txn, err := h.svc.GetTransaction(c.Context(), facilityID, transactionID)
	if err != nil {
		return mapTransactionError(c, err)
	}
	return ok(c, txn)
}

// GET /facilities/:facilityID/transactions
func (h *TransactionHandler) List(c fiber.Ctx) error {
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

	txns, err := h.svc.ListTransactions(c.Context(), facilityID, q.Page, q.PerPage)
	if err != nil {
		return mapTransactionError(c, err)
	}
	return ok(c, fiber.Map{"transactions": txns})
}
