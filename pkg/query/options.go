package query

import "time"

const (
	// DefaultLimit is the page size passed to every fetch
	DefaultLimit = 10
	// DefaultDebounce is the quiet period before a search term is committed
	DefaultDebounce = 600 * time.Millisecond
	// DefaultResultsKey is the envelope field holding the item sequence
	DefaultResultsKey = "results"
	// DefaultSearchKey is the query parameter carrying the search term
	DefaultSearchKey = "searchTerm"
)

// Options configures a Coordinator
type Options struct {
	// Limit is the page size. Zero means DefaultLimit.
	Limit int
	// Debounce is the search quiet period. Zero means DefaultDebounce,
	// a negative value commits every keystroke immediately.
	Debounce time.Duration
	// ResultsKey names the field inside the envelope data holding the items
	ResultsKey string
	// SearchKey names the query parameter for the debounced search term
	SearchKey string
	// Filters is the initial filter set
	Filters Filters
	// Clock schedules the debounce timer. Nil means the real clock.
	Clock Clock
	// OnChange is called after every visible state change, outside any lock
	OnChange func()
}

func (o Options) withDefaults() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Debounce == 0 {
		o.Debounce = DefaultDebounce
	}
	if o.ResultsKey == "" {
		o.ResultsKey = DefaultResultsKey
	}
	if o.SearchKey == "" {
		o.SearchKey = DefaultSearchKey
	}
	if o.Clock == nil {
		o.Clock = RealClock()
	}
	return o
}
