// Package models defines the fixture backend's persisted entities
package models

const (
	// DefaultLimit is the page size used when a list request does not send one
	DefaultLimit = 10
	// MaxLimit is the largest page size a list request may ask for
	MaxLimit = 100
)

// ListOptions represents pagination, search and filtering options for list operations
type ListOptions struct {
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Search  string            `json:"search,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
}

// NewListOptions returns list options with page and limit brought into range
func NewListOptions(page, limit int) *ListOptions {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return &ListOptions{
		Page:    page,
		Limit:   limit,
		Filters: map[string]string{},
	}
}

// Offset returns the number of rows to skip for the current page
func (o *ListOptions) Offset() int {
	if o.Page < 1 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}

// TotalPages returns the number of pages needed for total rows, never less than 1
func TotalPages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Page is one page of rows together with the pagination it was produced with
type Page[T any] struct {
	Rows      []T
	Total     int64
	Page      int
	Limit     int
	TotalPage int
}
