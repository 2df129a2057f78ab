package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// LegalHandler handles HTTP requests for the about, terms and privacy pages
type LegalHandler struct {
	*APIHandler
}

// NewLegalHandler creates a new LegalHandler instance
func NewLegalHandler(api *APIHandler) *LegalHandler {
	return &LegalHandler{APIHandler: api}
}

// GetLegal returns a legal document
func (h *LegalHandler) GetLegal(c *fiber.Ctx) error {
	kind, err := models.ParseLegalKind(c.Params("kind"))
	if err != nil {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgLegalKind, err)
	}

	doc, err := h.legal.Get(c.UserContext(), kind)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgLegalGetFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, doc)
}

// UpdateLegal replaces the content of a legal document
func (h *LegalHandler) UpdateLegal(c *fiber.Ctx) error {
	kind, err := models.ParseLegalKind(c.Params("kind"))
	if err != nil {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgLegalKind, err)
	}

	var params UpdateLegalParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}

	doc, err := h.legal.Upsert(c.UserContext(), kind, params.Content)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgLegalUpdateFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, doc)
}

// UpdateLegalParams defines the body for updating a legal document
type UpdateLegalParams struct {
	Content string `json:"content"`
}
