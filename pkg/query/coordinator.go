// Package query coordinates paginated, searchable and filterable list queries.
//
// A Coordinator owns the state of one list view: the raw search term, its
// debounced value, the current page and the filter set. Whenever the committed
// search term or the filters change, the page goes back to 1 before the next
// fetch is issued. Fetching itself (caching, deduplication, retries) belongs to
// the FetchFunc the coordinator is given.
package query

import (
	"context"
	"sync"

	"github.com/lunchdesk/lunchdesk/internal/logger"
)

// FetchFunc fetches one page of results for the given params
type FetchFunc func(ctx context.Context, p Params) (Envelope, error)

// Snapshot is a consistent view of a coordinator's state
type Snapshot[T any] struct {
	SearchTerm          string
	DebouncedSearchTerm string
	CurrentPage         int
	Filters             Filters

	Items      []T
	Page       int
	TotalPages int

	IsLoading bool
	IsError   bool
	Err       error
	// Fetched is true once at least one fetch has settled
	Fetched bool
}

// Coordinator synchronizes search, page and filters into fetch params and
// normalizes the responses. It is safe for concurrent use.
type Coordinator[T any] struct {
	fetch     FetchFunc
	opts      Options
	debouncer *Debouncer[string]

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	searchTerm  string
	debounced   string
	currentPage int
	filters     Filters

	// committed values seen by the last reconcile, used for the page reset
	reconciledSearch  string
	reconciledFilters string

	detector ChangeDetector
	seq      uint64
	inFlight context.CancelFunc

	result    Result[T]
	isLoading bool
	isError   bool
	err       error
	fetched   bool
	closed    bool

	changed chan struct{}
}

// New creates a coordinator and issues the initial fetch
func New[T any](fetch FetchFunc, opts Options) *Coordinator[T] {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	c := &Coordinator[T]{
		fetch:       fetch,
		opts:        opts,
		ctx:         ctx,
		cancel:      cancel,
		currentPage: 1,
		filters:     opts.Filters.Clone(),
		result: Result[T]{
			Items:      []T{},
			Page:       1,
			TotalPages: 1,
		},
		changed: make(chan struct{}),
	}
	c.reconciledFilters = c.filters.Key()
	c.debouncer = NewDebouncer(opts.Debounce, opts.Clock, c.commitSearch)

	c.mu.Lock()
	c.reconcileLocked()
	c.mu.Unlock()
	c.notify()

	return c
}

// SetSearchTerm records the raw search input. Only the debounced value
// reaches the fetch and resets the page.
func (c *Coordinator[T]) SetSearchTerm(v string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.searchTerm = v
	c.broadcastLocked()
	c.mu.Unlock()
	c.notify()

	c.debouncer.Set(v)
}

// SetCurrentPage moves to the given page. The value is not clamped; callers
// keep it within [1, TotalPages].
func (c *Coordinator[T]) SetCurrentPage(page int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.currentPage = page
	c.reconcileLocked()
	c.broadcastLocked()
	c.mu.Unlock()
	c.notify()
}

// SetFilters replaces the filter set wholesale. A structural change resets
// the page to 1.
func (c *Coordinator[T]) SetFilters(f Filters) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.filters = f.Clone()
	c.reconcileLocked()
	c.broadcastLocked()
	c.mu.Unlock()
	c.notify()
}

// Refetch issues the current params again, bypassing change detection.
// The request goes through the fetch function, so a caching layer in front
// of the backend may answer it; invalidate that layer to reach the backend.
func (c *Coordinator[T]) Refetch() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.detector.Reset()
	c.reconcileLocked()
	c.broadcastLocked()
	c.mu.Unlock()
	c.notify()
}

// Flush commits a pending search term without waiting for the quiet period
func (c *Coordinator[T]) Flush() {
	c.debouncer.Flush()
}

// Snapshot returns the current state
func (c *Coordinator[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.result.Items))
	copy(items, c.result.Items)

	return Snapshot[T]{
		SearchTerm:          c.searchTerm,
		DebouncedSearchTerm: c.debounced,
		CurrentPage:         c.currentPage,
		Filters:             c.filters.Clone(),
		Items:               items,
		Page:                c.result.Page,
		TotalPages:          c.result.TotalPages,
		IsLoading:           c.isLoading,
		IsError:             c.isError,
		Err:                 c.err,
		Fetched:             c.fetched,
	}
}

// Wait blocks until the most recently issued fetch has settled
func (c *Coordinator[T]) Wait(ctx context.Context) error {
	for {
		c.mu.Lock()
		if !c.isLoading || c.closed {
			c.mu.Unlock()
			return nil
		}
		ch := c.changed
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops the debounce timer and cancels any in-flight fetch. Results
// arriving afterwards are ignored.
func (c *Coordinator[T]) Close() {
	c.debouncer.Stop()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.isLoading = false
	c.cancel()
	c.broadcastLocked()
	c.mu.Unlock()
}

// commitSearch receives the debounced search term
func (c *Coordinator[T]) commitSearch(v string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.debounced = v
	c.reconcileLocked()
	c.broadcastLocked()
	c.mu.Unlock()
	c.notify()
}

// reconcileLocked resets the page when the committed search term or the
// filters changed since the last reconcile, then issues a fetch if the
// resulting params differ from the last issued ones.
func (c *Coordinator[T]) reconcileLocked() {
	filtersKey := c.filters.Key()
	if c.debounced != c.reconciledSearch || filtersKey != c.reconciledFilters {
		c.reconciledSearch = c.debounced
		c.reconciledFilters = filtersKey
		c.currentPage = 1
	}

	params := ComputeParams(State{
		DebouncedSearchTerm: c.debounced,
		CurrentPage:         c.currentPage,
		Filters:             c.filters,
	}, c.opts)

	if !c.detector.Changed(params) {
		return
	}
	c.issueLocked(params)
}

// issueLocked starts a fetch, superseding the one in flight
func (c *Coordinator[T]) issueLocked(params Params) {
	if c.inFlight != nil {
		c.inFlight()
	}
	c.seq++
	seq := c.seq

	ctx, cancel := context.WithCancel(c.ctx)
	c.inFlight = cancel
	c.isLoading = true

	logger.DebugWithFields("Issuing list fetch", map[string]interface{}{
		"seq":    seq,
		"params": params.Key(),
	})

	go c.run(ctx, cancel, seq, params)
}

func (c *Coordinator[T]) run(ctx context.Context, cancel context.CancelFunc, seq uint64, params Params) {
	defer cancel()

	env, err := c.fetch(ctx, params)

	c.mu.Lock()
	if c.closed || seq != c.seq {
		c.mu.Unlock()
		logger.DebugWithFields("Dropping superseded list result", map[string]interface{}{
			"seq":    seq,
			"params": params.Key(),
		})
		return
	}

	c.inFlight = nil
	c.isLoading = false
	c.fetched = true
	if err != nil {
		// keep the last successful items
		c.isError = true
		c.err = err
	} else {
		c.isError = false
		c.err = nil
		c.result = Normalize[T](env, c.opts.ResultsKey)
	}
	c.broadcastLocked()
	c.mu.Unlock()

	c.notify()
}

func (c *Coordinator[T]) broadcastLocked() {
	close(c.changed)
	c.changed = make(chan struct{})
}

func (c *Coordinator[T]) notify() {
	if c.opts.OnChange != nil {
		c.opts.OnChange()
	}
}
