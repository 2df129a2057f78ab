package handlers

import (
	"fmt"
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	*APIHandler
}

// NewOrderHandler creates a new OrderHandler instance
func NewOrderHandler(api *APIHandler) *OrderHandler {
	return &OrderHandler{APIHandler: api}
}

// ListOrders returns one page of orders, filterable by status and order date
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	opts, err := getListOptions(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	page, err := h.orders.List(c.UserContext(), opts)
	if err != nil {
		return respondWithRepoError(c, ErrMsgOrderNotFound, ErrMsgOrderListFailed, err)
	}
	return respondWithList(c, OrderResultsKey, page)
}

// UpdateOrderStatus changes the status of an order
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}

	var params OrderStatusParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}
	if err := params.Validate(); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgOrderStatus, err)
	}

	order, err := h.orders.UpdateStatus(c.UserContext(), id, models.OrderStatus(params.Status))
	if err != nil {
		return respondWithRepoError(c, ErrMsgOrderNotFound, ErrMsgOrderStatusFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, order)
}

// OrderStatusParams defines the body for changing an order's status
type OrderStatusParams struct {
	Status string `json:"status"`
}

// Validate validates the order status
func (p OrderStatusParams) Validate() error {
	if p.Status == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgStatusRequired))
	}
	_, err := models.ParseOrderStatus(p.Status)
	return err
}
