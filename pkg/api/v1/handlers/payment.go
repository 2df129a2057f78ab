package handlers

import (
	"fmt"
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// PaymentHandler handles HTTP requests for company payments
type PaymentHandler struct {
	*APIHandler
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(api *APIHandler) *PaymentHandler {
	return &PaymentHandler{APIHandler: api}
}

// ListPayments returns one page of payments
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	opts, err := getListOptions(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	page, err := h.payments.List(c.UserContext(), opts)
	if err != nil {
		return respondWithRepoError(c, ErrMsgPaymentNotFound, ErrMsgPaymentListFailed, err)
	}
	return respondWithList(c, PaymentResultsKey, page)
}

// UpdatePayment marks a payment paid or unpaid
func (h *PaymentHandler) UpdatePayment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}

	var params UpdatePaymentParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}
	if err := params.Validate(); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgPaymentStatus, err)
	}

	payment, err := h.payments.UpdateStatus(c.UserContext(), id, models.PaymentStatus(params.Status))
	if err != nil {
		return respondWithRepoError(c, ErrMsgPaymentNotFound, ErrMsgPaymentUpdateFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, payment)
}

// UpdatePaymentParams defines the body for updating a payment
type UpdatePaymentParams struct {
	Status string `json:"status"`
}

// Validate validates the payment status
func (p UpdatePaymentParams) Validate() error {
	if p.Status == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgStatusRequired))
	}
	_, err := models.ParsePaymentStatus(p.Status)
	return err
}
