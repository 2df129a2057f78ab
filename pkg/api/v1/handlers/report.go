package handlers

import (
	fiber "github.com/gofiber/fiber/v2"
)

// ReportHandler handles HTTP requests for user reports
type ReportHandler struct {
	*APIHandler
}

// NewReportHandler creates a new ReportHandler instance
func NewReportHandler(api *APIHandler) *ReportHandler {
	return &ReportHandler{APIHandler: api}
}

// ListReports returns one page of reports
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	opts, err := getListOptions(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err)
	}

	page, err := h.reports.List(c.UserContext(), opts)
	if err != nil {
		return respondWithRepoError(c, ErrMsgReportNotFound, ErrMsgReportListFailed, err)
	}
	return respondWithList(c, ReportResultsKey, page)
}

// DeleteReport deletes a report
func (h *ReportHandler) DeleteReport(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID, err)
	}
	if err := h.reports.Delete(c.UserContext(), id); err != nil {
		return respondWithRepoError(c, ErrMsgReportNotFound, ErrMsgReportDeleteFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, fiber.Map{"id": id})
}
