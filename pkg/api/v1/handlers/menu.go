package handlers

import (
	"fmt"
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// MenuHandler handles HTTP requests for menus
type MenuHandler struct {
	*APIHandler
}

// NewMenuHandler creates a new MenuHandler instance
func NewMenuHandler(api *APIHandler) *MenuHandler {
	return &MenuHandler{APIHandler: api}
}

// ListMenus returns one page of menus
func (h *MenuHandler) ListMenus(c *fiber.Ctx) error {
	opts, err := getListOptions(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	page, err := h.menus.List(c.UserContext(), opts)
	if err != nil {
		return respondWithRepoError(c, ErrMsgMenuNotFound, ErrMsgMenuListFailed, err)
	}
	return respondWithList(c, MenuResultsKey, page)
}

// CreateMenu creates a menu
func (h *MenuHandler) CreateMenu(c *fiber.Ctx) error {
	var params CreateMenuParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}
	if err := params.Validate(); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	available := true
	if params.Available != nil {
		available = *params.Available
	}
	menu := &models.Menu{
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Price:       params.Price,
		Available:   available,
	}
	if err := h.menus.Create(c.UserContext(), menu); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgMenuCreateFailed, err)
	}
	return respondWithData(c, fiber.StatusCreated, menu)
}

// UpdateMenu updates the provided fields of a menu
func (h *MenuHandler) UpdateMenu(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}

	var params UpdateMenuParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}
	if err := params.Validate(); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	menu, err := h.menus.Update(c.UserContext(), id, params.Changes())
	if err != nil {
		return respondWithRepoError(c, ErrMsgMenuNotFound, ErrMsgMenuUpdateFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, menu)
}

// DeleteMenu deletes a menu
func (h *MenuHandler) DeleteMenu(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}
	if err := h.menus.Delete(c.UserContext(), id); err != nil {
		return respondWithRepoError(c, ErrMsgMenuNotFound, ErrMsgMenuDeleteFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, fiber.Map{"id": id})
}

// CreateMenuParams defines the body for creating a menu
type CreateMenuParams struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Available   *bool   `json:"available,omitempty"`
}

// Validate validates the parameters for creating a menu
func (p CreateMenuParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNameRequired))
	}
	if p.Price < 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNegativePrice))
	}
	return nil
}

// UpdateMenuParams defines the body for updating a menu. Absent fields are
// left unchanged; present ones are written even when zero.
type UpdateMenuParams struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// Validate validates the parameters for updating a menu
func (p UpdateMenuParams) Validate() error {
	if p == (UpdateMenuParams{}) {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNoFieldsToUpdate))
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNameRequired))
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNegativePrice))
	}
	return nil
}

// Changes returns the provided fields keyed by column
func (p UpdateMenuParams) Changes() map[string]any {
	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Category != nil {
		changes["category"] = *p.Category
	}
	if p.Price != nil {
		changes["price"] = *p.Price
	}
	if p.Available != nil {
		changes["available"] = *p.Available
	}
	return changes
}
