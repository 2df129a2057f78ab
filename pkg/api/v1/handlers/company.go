package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// CompanyHandler handles HTTP requests for company operations
type CompanyHandler struct {
	*APIHandler
}

// NewCompanyHandler creates a new CompanyHandler instance
func NewCompanyHandler(api *APIHandler) *CompanyHandler {
	return &CompanyHandler{APIHandler: api}
}

// ListCompanies returns one page of companies
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	opts, err := getListOptions(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	page, err := h.companies.List(c.UserContext(), opts)
	if err != nil {
		return respondWithRepoError(c, ErrMsgCompanyNotFound, ErrMsgCompanyListFailed, err)
	}
	return respondWithList(c, CompanyResultsKey, page)
}

// GetCompany returns a company with its order and employer counts
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}

	details, err := h.companies.Details(c.UserContext(), id)
	if err != nil {
		return respondWithRepoError(c, ErrMsgCompanyNotFound, ErrMsgCompanyGetFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, details)
}

// ListCompanyOrders returns one page of the orders placed for a company
func (h *CompanyHandler) ListCompanyOrders(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}
	opts, err := getListOptions(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	company, err := h.companies.GetByID(c.UserContext(), id)
	if err != nil {
		return respondWithRepoError(c, ErrMsgCompanyNotFound, ErrMsgCompanyGetFailed, err)
	}
	page, err := h.orders.ListByCompany(c.UserContext(), company.Name, opts)
	if err != nil {
		return respondWithRepoError(c, ErrMsgOrderNotFound, ErrMsgOrderListFailed, err)
	}
	return respondWithList(c, CompanyOrderResultsKey, page)
}

// CreateCompany creates a company
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var params CreateCompanyParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}
	if err := params.Validate(); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	company := &models.Company{
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
		Status:  models.CompanyStatus(params.Status),
	}
	if err := h.companies.Create(c.UserContext(), company); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCompanyCreateFailed, err)
	}
	return respondWithData(c, fiber.StatusCreated, company)
}

// UpdateCompany updates the provided fields of a company
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}

	var params UpdateCompanyParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
	}
	if err := params.Validate(); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	company, err := h.companies.Update(c.UserContext(), id, &models.Company{
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
		Status:  models.CompanyStatus(params.Status),
	})
	if err != nil {
		return respondWithRepoError(c, ErrMsgCompanyNotFound, ErrMsgCompanyUpdateFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, company)
}

// DeleteCompany deletes a company
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}
	if err := h.companies.Delete(c.UserContext(), id); err != nil {
		return respondWithRepoError(c, ErrMsgCompanyNotFound, ErrMsgCompanyDeleteFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, fiber.Map{"id": id})
}
