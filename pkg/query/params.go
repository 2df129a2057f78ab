package query

import (
	"net/url"
	"strconv"
)

// State is the part of the coordinator state that determines the request
type State struct {
	DebouncedSearchTerm string
	CurrentPage         int
	Filters             Filters
}

// Params are the parameters passed to a fetch
type Params struct {
	Page      int
	Limit     int
	SearchKey string
	Search    string
	Filters   Filters
}

// ComputeParams derives the request parameters from the coordinator state
func ComputeParams(s State, opts Options) Params {
	opts = opts.withDefaults()
	page := s.CurrentPage
	if page < 1 {
		page = 1
	}
	return Params{
		Page:      page,
		Limit:     opts.Limit,
		SearchKey: opts.SearchKey,
		Search:    s.DebouncedSearchTerm,
		Filters:   s.Filters.Clone(),
	}
}

// Values renders the params as query values. Page and limit are always sent;
// the search term and filters are omitted when falsy. Filters are applied
// last, so a filter named like a reserved parameter overrides it.
func (p Params) Values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))

	searchKey := p.SearchKey
	if searchKey == "" {
		searchKey = DefaultSearchKey
	}
	if p.Search != "" {
		q.Set(searchKey, p.Search)
	}

	for k, v := range p.Filters {
		if isFalsy(v) {
			continue
		}
		q.Set(k, formatValue(v))
	}
	return q
}

// Key returns a value-comparable form of the request the params describe
func (p Params) Key() string {
	return p.Values().Encode()
}

// ChangeDetector compares successive params by value
type ChangeDetector struct {
	last   string
	issued bool
}

// Changed reports whether p differs from the last recorded params, and records p
func (d *ChangeDetector) Changed(p Params) bool {
	key := p.Key()
	if d.issued && key == d.last {
		return false
	}
	d.last = key
	d.issued = true
	return true
}

// Reset forgets the last recorded params so the next Changed call reports a change
func (d *ChangeDetector) Reset() {
	d.issued = false
	d.last = ""
}
