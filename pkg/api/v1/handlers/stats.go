package handlers

import (
	"fmt"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"
)

// StatsHandler serves the dashboard counters and charts
type StatsHandler struct {
	*APIHandler
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(api *APIHandler) *StatsHandler {
	return &StatsHandler{APIHandler: api}
}

// GetStats returns the dashboard counters
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.stats.Get(c.UserContext())
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgStatsFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, stats)
}

// GetUserOverview returns the monthly employer sign-ups of a year
func (h *StatsHandler) GetUserOverview(c *fiber.Ctx) error {
	year, err := parseYear(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidYear, err)
	}

	overview, err := h.stats.UserOverview(c.UserContext(), year)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgStatsFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, overview)
}

// GetEarningOverview returns the monthly income of a year
func (h *StatsHandler) GetEarningOverview(c *fiber.Ctx) error {
	year, err := parseYear(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidYear, err)
	}

	overview, err := h.stats.EarningOverview(c.UserContext(), year)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgStatsFailed, err)
	}
	return respondWithData(c, fiber.StatusOK, overview)
}

// YearQueryKey is the query parameter selecting the year of a chart
const YearQueryKey = "year"

// parseYear reads the chart year, accepting "years" as the dashboard sends it.
// It defaults to the current year.
func parseYear(c *fiber.Ctx) (int, error) {
	raw := c.Query(YearQueryKey, c.Query("years"))
	if raw == "" {
		return time.Now().UTC().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1970 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}
