package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// EmployerHandler handles HTTP requests for employer accounts
type EmployerHandler struct {
	*APIHandler
}

// NewEmployerHandler creates a new EmployerHandler instance
func NewEmployerHandler(api *APIHandler) *EmployerHandler {
	return &EmployerHandler{APIHandler: api}
}

// ListEmployers returns one page of employers
func (h *EmployerHandler) ListEmployers(c *fiber.Ctx) error {
	opts, err := getListOptions(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	page, err := h.employers.List(c.UserContext(), opts)
	if err != nil {
		return respondWithRepoError(c, ErrMsgEmployerNotFound, ErrMsgEmployerListFailed, err)
	}
	return respondWithList(c, EmployerResultsKey, page)
}

// BlockEmployer blocks or unblocks an employer
func (h *EmployerHandler) BlockEmployer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}

	var params BlockEmployerParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}

	employer, err := h.employers.SetBlocked(c.UserContext(), id, params.Blocked)
	if err != nil {
		return respondWithRepoError(c, ErrMsgEmployerNotFound, ErrMsgEmployerBlockFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, employer)
}

// ActivateEmployer approves a pending employer account
func (h *EmployerHandler) ActivateEmployer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}

	employer, err := h.employers.SetStatus(c.UserContext(), id, models.EmployerStatusActive)
	if err != nil {
		return respondWithRepoError(c, ErrMsgEmployerNotFound, ErrMsgEmployerActivate, err)
	}
	return respondWithData(c, fiber.StatusOK, employer)
}

// BlockEmployerParams defines the body for blocking or unblocking an employer
type BlockEmployerParams struct {
	Blocked bool `json:"isBlocked"`
}
