package handlers

import (
	"errors"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
	"github.com/lunchdesk/lunchdesk/internal/db/repos"
	"github.com/lunchdesk/lunchdesk/internal/logger"
	"github.com/lunchdesk/lunchdesk/pkg/query"
)

// Results keys of the list endpoints
const (
	CompanyResultsKey  = "company"
	EmployerResultsKey = "employers"
	OrderResultsKey    = "orders"
	MenuResultsKey     = "menus"
	PaymentResultsKey  = "company"
	ReportResultsKey   = "reports"

	// CompanyOrderResultsKey holds the orders of a single company
	CompanyOrderResultsKey = "orders"
)

// PaginationKey is the data field holding the pagination metadata of list responses
const PaginationKey = "pagination"

// Response is the envelope every endpoint answers with
type Response struct {
	// Success indicates if the operation was successful
	Success bool `json:"success"`

	// Message is a human-readable summary, set on errors
	Message string `json:"message,omitempty"`

	// Data contains the operation result
	Data interface{} `json:"data,omitempty"`

	// Error contains additional error details
	Error string `json:"error,omitempty"`
}

func respondWithError(c *fiber.Ctx, status int, message string, err error) error {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	if status >= fiber.StatusInternalServerError {
		logger.ErrorWithFields(message, map[string]interface{}{
			"path":  c.Path(),
			"error": resp.Error,
		})
	}
	return c.Status(status).JSON(resp)
}

func respondWithData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(Response{Success: true, Data: data})
}

func respondWithList[T any](c *fiber.Ctx, resultsKey string, page *models.Page[T]) error {
	return respondWithData(c, fiber.StatusOK, fiber.Map{
		resultsKey: page.Rows,
		PaginationKey: query.Pagination{
			Page:      page.Page,
			Limit:     page.Limit,
			Total:     int(page.Total),
			TotalPage: page.TotalPage,
		},
	})
}

// respondWithRepoError maps repository errors to a status code: missing rows are 404,
// invalid filters are 400 and everything else is 500
func respondWithRepoError(c *fiber.Ctx, notFoundMsg, failedMsg string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return respondWithError(c, fiber.StatusNotFound, notFoundMsg, err)
	case errors.Is(err, repos.ErrInvalidFilter):
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidFilter, err)
	default:
		return respondWithError(c, fiber.StatusInternalServerError, failedMsg, err)
	}
}

// parseID reads the :id route parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidID)
	}
	return uint(id), nil
}
