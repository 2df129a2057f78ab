package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeParams(t *testing.T) {
	p := ComputeParams(State{
		DebouncedSearchTerm: "acme",
		CurrentPage:         0,
		Filters:             Filters{"status": "pending"},
	}, Options{})

	assert.Equal(t, 1, p.Page, "page below 1 is sent as 1")
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, DefaultSearchKey, p.SearchKey)
	assert.Equal(t, "acme", p.Search)
	assert.Equal(t, Filters{"status": "pending"}, p.Filters)
}

func TestParamsValues(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		expected string
	}{
		{
			name:     "page and limit always sent",
			params:   Params{Page: 1, Limit: 10},
			expected: "limit=10&page=1",
		},
		{
			name:     "search under custom key",
			params:   Params{Page: 2, Limit: 5, SearchKey: "q", Search: "bob"},
			expected: "limit=5&page=2&q=bob",
		},
		{
			name: "falsy filters omitted",
			params: Params{Page: 1, Limit: 10, Filters: Filters{
				"status":  "",
				"date":    "March 3, 2025",
				"deleted": false,
				"min":     0,
				"owner":   nil,
				"paid":    true,
			}},
			expected: "date=March+3%2C+2025&limit=10&page=1&paid=true",
		},
		{
			name:     "filter overrides reserved key",
			params:   Params{Page: 3, Limit: 10, Filters: Filters{"limit": 50}},
			expected: "limit=50&page=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.Values().Encode())
		})
	}
}

func TestFiltersKeyIsStructural(t *testing.T) {
	a := Filters{"status": "pending", "date": "2025-01-01"}
	b := Filters{"date": "2025-01-01", "status": "pending"}
	c := Filters{"status": "complete", "date": "2025-01-01"}

	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "{}", Filters(nil).Key())
	assert.Equal(t, Filters(nil).Key(), Filters{}.Key())
}

func TestChangeDetector(t *testing.T) {
	var d ChangeDetector
	p := Params{Page: 1, Limit: 10}

	assert.True(t, d.Changed(p), "first params always count as a change")
	assert.False(t, d.Changed(p))

	// same request, different map instance
	assert.False(t, d.Changed(Params{Page: 1, Limit: 10, Filters: Filters{}}))

	p.Page = 2
	assert.True(t, d.Changed(p))

	d.Reset()
	assert.True(t, d.Changed(p))
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, 10, o.Limit)
	assert.Equal(t, 600*time.Millisecond, o.Debounce)
	assert.Equal(t, "results", o.ResultsKey)
	assert.Equal(t, "searchTerm", o.SearchKey)
	assert.NotNil(t, o.Clock)

	o = Options{Limit: 4, Debounce: -1, ResultsKey: "company", SearchKey: "q"}.withDefaults()
	assert.Equal(t, 4, o.Limit)
	assert.Equal(t, time.Duration(-1), o.Debounce)
	assert.Equal(t, "company", o.ResultsKey)
	assert.Equal(t, "q", o.SearchKey)
}
