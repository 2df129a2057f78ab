package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunchdesk/lunchdesk/pkg/query"
)

type countingFetch struct {
	calls atomic.Int32
	err   error
	gate  chan struct{}
}

func (f *countingFetch) fetch(ctx context.Context, p query.Params) (query.Envelope, error) {
	f.calls.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return query.Envelope{}, ctx.Err()
		}
	}
	if f.err != nil {
		return query.Envelope{}, f.err
	}
	return query.Envelope{Success: true, Message: p.Key()}, nil
}

func TestQueryCachesByParams(t *testing.T) {
	s := New(Options{})
	f := &countingFetch{}
	fetch := s.Query("/orders", []string{"ORDER"}, f.fetch)
	ctx := context.Background()

	env, err := fetch(ctx, query.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "limit=10&page=1", env.Message)

	_, err = fetch(ctx, query.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, f.calls.Load(), "second identical request is served from cache")

	_, err = fetch(ctx, query.Params{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.calls.Load())
	assert.Equal(t, 2, s.Len())
}

func TestQuerySeparatesEndpoints(t *testing.T) {
	s := New(Options{})
	f := &countingFetch{}
	ctx := context.Background()
	p := query.Params{Page: 1, Limit: 10}

	_, err := s.Query("/orders", nil, f.fetch)(ctx, p)
	require.NoError(t, err)
	_, err = s.Query("/menus", nil, f.fetch)(ctx, p)
	require.NoError(t, err)

	assert.EqualValues(t, 2, f.calls.Load())
}

func TestQueryDoesNotCacheErrors(t *testing.T) {
	s := New(Options{})
	f := &countingFetch{err: errors.New("502 bad gateway")}
	fetch := s.Query("/orders", nil, f.fetch)
	ctx := context.Background()

	_, err := fetch(ctx, query.Params{Page: 1, Limit: 10})
	assert.Error(t, err)
	_, err = fetch(ctx, query.Params{Page: 1, Limit: 10})
	assert.Error(t, err)

	assert.EqualValues(t, 2, f.calls.Load())
	assert.Equal(t, 0, s.Len())
}

func TestQueryCollapsesConcurrentRequests(t *testing.T) {
	s := New(Options{})
	f := &countingFetch{gate: make(chan struct{})}
	fetch := s.Query("/orders", nil, f.fetch)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fetch(context.Background(), query.Params{Page: 1, Limit: 10})
			assert.NoError(t, err)
		}()
	}

	require.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, time.Millisecond)
	// give the other callers time to join the in-flight request
	time.Sleep(20 * time.Millisecond)
	close(f.gate)
	wg.Wait()

	assert.EqualValues(t, 1, f.calls.Load())
}

func TestInvalidateEvictsAndNotifies(t *testing.T) {
	s := New(Options{})
	orders := &countingFetch{}
	menus := &countingFetch{}
	ctx := context.Background()
	p := query.Params{Page: 1, Limit: 10}

	fetchOrders := s.Query("/orders", []string{"ORDER"}, orders.fetch)
	fetchMenus := s.Query("/menus", []string{"MENU"}, menus.fetch)
	_, _ = fetchOrders(ctx, p)
	_, _ = fetchMenus(ctx, p)

	var notified atomic.Int32
	unsubscribe := s.Subscribe("ORDER", func() { notified.Add(1) })
	s.Subscribe("MENU", func() { t.Error("menu subscribers must not be notified") })

	s.Invalidate("ORDER")
	assert.EqualValues(t, 1, notified.Load())

	_, _ = fetchOrders(ctx, p)
	_, _ = fetchMenus(ctx, p)
	assert.EqualValues(t, 2, orders.calls.Load(), "invalidated entry is fetched again")
	assert.EqualValues(t, 1, menus.calls.Load(), "other tags stay cached")

	unsubscribe()
	s.Invalidate("ORDER")
	assert.EqualValues(t, 1, notified.Load())
}

func TestInvalidateDuringFetchSkipsCaching(t *testing.T) {
	s := New(Options{})
	f := &countingFetch{gate: make(chan struct{})}
	fetch := s.Query("/orders", []string{"ORDER"}, f.fetch)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = fetch(context.Background(), query.Params{Page: 1, Limit: 10})
	}()

	require.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, time.Millisecond)
	s.Invalidate("ORDER")
	close(f.gate)
	<-done

	assert.Equal(t, 0, s.Len(), "a response fetched across an invalidation is not cached")
}

func TestEntriesExpire(t *testing.T) {
	s := New(Options{TTL: 20 * time.Millisecond})
	f := &countingFetch{}
	fetch := s.Query("/orders", nil, f.fetch)
	p := query.Params{Page: 1, Limit: 10}

	_, _ = fetch(context.Background(), p)
	time.Sleep(100 * time.Millisecond)
	_, _ = fetch(context.Background(), p)

	assert.EqualValues(t, 2, f.calls.Load())
}

func TestCancelledCallerLeavesSharedFetchRunning(t *testing.T) {
	s := New(Options{})
	f := &countingFetch{gate: make(chan struct{})}
	fetch := s.Query("/orders", nil, f.fetch)
	p := query.Params{Page: 1, Limit: 10}

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := fetch(ctx, p)
		first <- err
	}()
	require.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	second := make(chan error, 1)
	go func() {
		_, err := fetch(context.Background(), p)
		second <- err
	}()
	time.Sleep(20 * time.Millisecond)
	close(f.gate)

	assert.NoError(t, <-second)
	assert.EqualValues(t, 1, f.calls.Load(), "the second caller joined the running fetch")
	assert.Equal(t, 1, s.Len())
}

func TestInvalidateStartsNewFlight(t *testing.T) {
	s := New(Options{})
	f := &countingFetch{gate: make(chan struct{})}
	fetch := s.Query("/orders", []string{"ORDER"}, f.fetch)
	p := query.Params{Page: 1, Limit: 10}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = fetch(context.Background(), p)
	}()
	require.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, time.Millisecond)

	s.Invalidate("ORDER")
	go func() {
		defer wg.Done()
		_, _ = fetch(context.Background(), p)
	}()
	require.Eventually(t, func() bool { return f.calls.Load() == 2 }, time.Second, time.Millisecond)

	close(f.gate)
	wg.Wait()
	assert.Equal(t, 1, s.Len(), "only the fetch started after the invalidation is cached")
}

func TestCoordinatorRefetchJoinsInFlightRequest(t *testing.T) {
	s := New(Options{})
	var calls atomic.Int32
	slow := func(ctx context.Context, p query.Params) (query.Envelope, error) {
		calls.Add(1)
		select {
		case <-time.After(30 * time.Millisecond):
			return query.NewEnvelope(map[string]any{"orders": []query.Record{{"id": 1}}})
		case <-ctx.Done():
			// tearing down a cancelled request takes a while
			time.Sleep(50 * time.Millisecond)
			return query.Envelope{}, ctx.Err()
		}
	}

	c := query.New[query.Record](s.Query("/orders", []string{"ORDER"}, slow), query.Options{
		ResultsKey: "orders",
		Debounce:   -1,
	})
	defer c.Close()

	time.Sleep(10 * time.Millisecond)
	c.Refetch()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))

	snap := c.Snapshot()
	assert.False(t, snap.IsError, "unexpected error: %v", snap.Err)
	assert.Len(t, snap.Items, 1)
	assert.EqualValues(t, 1, calls.Load())
}

func TestInvalidateRefetchesFromBackend(t *testing.T) {
	s := New(Options{})
	f := &countingFetch{}
	c := query.New[query.Record](s.Query("/orders", []string{"ORDER"}, f.fetch), query.Options{Debounce: -1})
	defer c.Close()

	unsubscribe := s.Subscribe("ORDER", c.Refetch)
	defer unsubscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
	assert.EqualValues(t, 1, f.calls.Load())

	c.Refetch()
	require.NoError(t, c.Wait(ctx))
	assert.EqualValues(t, 1, f.calls.Load(), "a plain refetch is answered from the cache")

	s.Invalidate("ORDER")
	require.NoError(t, c.Wait(ctx))
	assert.EqualValues(t, 2, f.calls.Load(), "an invalidation sends the request to the backend")
	assert.False(t, c.Snapshot().IsError)
}
