package query

import (
	"sync"
	"time"
)

// Debouncer delays a rapidly changing value until it has been stable for a
// quiet period, then hands the latest value to its commit callback.
//
// It knows nothing about pagination: page resets are the coordinator's job.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	clock   Clock
	commit  func(T)
	timer   Timer
	gen     uint64
	pending bool
	value   T
}

// NewDebouncer creates a debouncer with the given quiet period. A delay <= 0
// commits every value synchronously.
func NewDebouncer[T any](delay time.Duration, clock Clock, commit func(T)) *Debouncer[T] {
	if clock == nil {
		clock = RealClock()
	}
	return &Debouncer[T]{
		delay:  delay,
		clock:  clock,
		commit: commit,
	}
}

// Set records a new value and restarts the quiet period
func (d *Debouncer[T]) Set(v T) {
	if d.delay <= 0 {
		d.commit(v)
		return
	}

	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.value = v
	d.pending = true
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()
}

// fire commits the pending value if no later Set superseded this timer
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.commit(v)
}

// Flush commits a pending value immediately. It reports whether anything was pending.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	v := d.value
	d.pending = false
	d.mu.Unlock()

	d.commit(v)
	return true
}

// Stop discards any pending value without committing it
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
}

// Pending reports whether a value is waiting for its quiet period to elapse
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
