// Package cache holds slowly-changing catalog collections under fixed keys and
// refreshes them lazily once they go stale.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/recitebot/internal/ports"
)

const (
	DefaultTTL        = time.Hour
	DefaultRetryAfter = 30 * time.Second
)

// Key names one of the fixed catalog collections.
type Key string

const (
	KeyReciters Key = "reciters"
	KeyChapters Key = "chapters"
)

// FetchFunc loads a fresh copy of a collection from upstream.
type FetchFunc[E any] func(ctx context.Context) ([]E, error)

// Entry is the stored result of the last fetch. Data is nil only before the
// first fetch; a failed fetch is stored as-is together with its error.
type Entry[E any] struct {
	Data      []E
	Err       error
	FetchedAt time.Time
	fetched   bool
}

func (e Entry[E]) usable() bool {
	return e.Err == nil && len(e.Data) > 0
}

// Stale reports whether the entry needs a refresh at now. Usable entries live
// for ttl; empty or failed ones are retried after retryAfter.
func (e Entry[E]) Stale(now time.Time, ttl, retryAfter time.Duration) bool {
	if !e.fetched {
		return true
	}

	maxAge := ttl
	if !e.usable() && retryAfter < ttl {
		maxAge = retryAfter
	}

	return now.Sub(e.FetchedAt) > maxAge
}

type Options struct {
	TTL        time.Duration
	RetryAfter time.Duration
	Clock      ports.Clock
}

type slot[E any] struct {
	mu    sync.Mutex
	entry Entry[E]
}

// Cache is a fixed-key TTL cache. Callers of the same key share one in-flight
// fetch; different keys never block each other.
type Cache[E any] struct {
	ttl        time.Duration
	retryAfter time.Duration
	clock      ports.Clock

	mu    sync.Mutex
	slots map[Key]*slot[E]
}

func New[E any](opts Options) *Cache[E] {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = DefaultRetryAfter
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}

	return &Cache[E]{
		ttl:        opts.TTL,
		retryAfter: opts.RetryAfter,
		clock:      opts.Clock,
		slots:      map[Key]*slot[E]{},
	}
}

// Get returns the stored collection for key, calling fetch first when there is
// no entry or the entry is stale.
func (c *Cache[E]) Get(ctx context.Context, key Key, fetch FetchFunc[E]) ([]E, error) {
	s := c.slot(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := c.clock.Now()
	if s.entry.Stale(now, c.ttl, c.retryAfter) {
		data, err := fetch(ctx)
		s.entry = Entry[E]{Data: data, Err: err, FetchedAt: now, fetched: true}
	}

	return s.entry.Data, s.entry.Err
}

// Peek returns the current entry for key without fetching.
func (c *Cache[E]) Peek(key Key) (Entry[E], bool) {
	s := c.slot(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entry, s.entry.fetched
}

func (c *Cache[E]) slot(key Key) *slot[E] {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[key]
	if !ok {
		s = &slot[E]{}
		c.slots[key] = s
	}
	return s
}
