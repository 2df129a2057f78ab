// Package store is the data layer behind list coordinators: it caches
// envelopes per request, collapses identical in-flight requests and
// invalidates cached entries by tag after mutations.
package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/lunchdesk/lunchdesk/internal/logger"
	"github.com/lunchdesk/lunchdesk/pkg/query"
)

const (
	// DefaultSize is the number of envelopes kept in the cache
	DefaultSize = 128
	// DefaultTTL is how long a cached envelope stays fresh
	DefaultTTL = time.Minute
	// DefaultTimeout bounds a shared fetch once no caller is left to cancel it
	DefaultTimeout = 30 * time.Second
)

// Options configures a Store
type Options struct {
	Size    int
	TTL     time.Duration
	Timeout time.Duration
}

// Store caches list responses and tracks which tags they were provided under
type Store struct {
	cache   *expirable.LRU[string, query.Envelope]
	group   singleflight.Group
	timeout time.Duration

	mu        sync.Mutex
	epoch     uint64
	keysByTag map[string]map[string]struct{}
	subs      map[string]map[uint64]func()
	nextSub   uint64
}

// New creates a store
func New(opts Options) *Store {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &Store{
		cache:     expirable.NewLRU[string, query.Envelope](opts.Size, nil, opts.TTL),
		timeout:   opts.Timeout,
		keysByTag: make(map[string]map[string]struct{}),
		subs:      make(map[string]map[uint64]func()),
	}
}

// Query wraps fetch with caching and request collapsing. Entries are keyed by
// endpoint and the request the params describe; only successful responses
// are cached.
//
// A shared fetch runs detached from the callers that joined it: a caller whose
// context ends gets ctx.Err() back while the fetch carries on for the others.
// Fetches started before an invalidation are never joined after it.
func (s *Store) Query(endpoint string, tags []string, fetch query.FetchFunc) query.FetchFunc {
	return func(ctx context.Context, p query.Params) (query.Envelope, error) {
		key := endpoint + "?" + p.Key()

		if env, ok := s.cache.Get(key); ok {
			logger.DebugWithFields("Query cache hit", map[string]interface{}{"key": key})
			return env, nil
		}

		s.mu.Lock()
		epoch := s.epoch
		s.mu.Unlock()

		flight := key + "#" + strconv.FormatUint(epoch, 10)
		ch := s.group.DoChan(flight, func() (interface{}, error) {
			fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
			defer cancel()

			env, err := fetch(fetchCtx, p)
			if err != nil {
				return nil, err
			}
			s.put(key, tags, epoch, env)
			return env, nil
		})

		select {
		case res := <-ch:
			if res.Err != nil {
				return query.Envelope{}, res.Err
			}
			if res.Shared {
				logger.DebugWithFields("Query collapsed into in-flight request", map[string]interface{}{"key": key})
			}
			return res.Val.(query.Envelope), nil
		case <-ctx.Done():
			return query.Envelope{}, ctx.Err()
		}
	}
}

// put caches env unless an invalidation happened while it was being fetched
func (s *Store) put(key string, tags []string, epoch uint64, env query.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return
	}
	s.cache.Add(key, env)
	for _, tag := range tags {
		keys, ok := s.keysByTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			s.keysByTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Invalidate evicts every entry provided under the given tags and notifies
// their subscribers
func (s *Store) Invalidate(tags ...string) {
	var keys []string
	var callbacks []func()

	s.mu.Lock()
	s.epoch++
	for _, tag := range tags {
		for key := range s.keysByTag[tag] {
			keys = append(keys, key)
		}
		delete(s.keysByTag, tag)
		for _, fn := range s.subs[tag] {
			callbacks = append(callbacks, fn)
		}
	}
	for _, key := range keys {
		s.cache.Remove(key)
	}
	s.mu.Unlock()

	logger.DebugWithFields("Invalidated query tags", map[string]interface{}{
		"tags":    tags,
		"evicted": len(keys),
	})

	for _, fn := range callbacks {
		fn()
	}
}

// Subscribe registers fn to run whenever tag is invalidated. The returned
// function removes the subscription.
func (s *Store) Subscribe(tag string, fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	if s.subs[tag] == nil {
		s.subs[tag] = make(map[uint64]func())
	}
	s.subs[tag][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[tag], id)
	}
}

// Len returns the number of cached envelopes
func (s *Store) Len() int {
	return s.cache.Len()
}
