package handlers

import (
	"fmt"
	"strings"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
	"github.com/lunchdesk/lunchdesk/pkg/query"
)

// ListParams defines the query parameters shared by every list endpoint
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// Validate validates the pagination parameters
func (p ListParams) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNegativePagination))
	}
	if p.Limit < 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgNegativeLimit))
	}
	return nil
}

// reservedQueryKeys are the query keys that are not filters
var reservedQueryKeys = map[string]bool{
	"page":                 true,
	"limit":                true,
	query.DefaultSearchKey: true,
}

// getListOptions reads page, limit, search term and filters from the query string.
// Every query argument that is not reserved is a filter; empty values are ignored.
func getListOptions(c *fiber.Ctx) (*models.ListOptions, error) {
	params := ListParams{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", models.DefaultLimit),
		Search: strings.TrimSpace(c.Query(query.DefaultSearchKey)),
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	opts := models.NewListOptions(params.Page, params.Limit)
	opts.Search = params.Search
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if reservedQueryKeys[k] || len(value) == 0 {
			return
		}
		opts.Filters[k] = string(value)
	})
	return opts, nil
}
