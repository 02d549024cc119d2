// Package cache keeps recently loaded collections in memory so that the dashboard,
// analytics and list endpoints do not hit the database on every request.
//
// Keys are endpoint paths ("/todos", "/habit-entries?from=2026-01-01"). A mutation
// drops every key under its collection prefix.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value   any
	expires time.Time
}

// loadTimeout bounds a shared load, which outlives the caller that started it.
const loadTimeout = 30 * time.Second

type QueryCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
	// bumped on every invalidation, fills started before it are discarded
	generation uint64

	group singleflight.Group
}

// New returns a cache whose entries live for ttl. A non-positive ttl disables storage
// but still collapses concurrent loads of the same key.
func New(ttl time.Duration) *QueryCache {
	return &QueryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// WithClock replaces the time source. Used by tests.
func (c *QueryCache) WithClock(now func() time.Time) *QueryCache {
	c.now = now
	return c
}

func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.expires) {
		return nil, false
	}
	return e.value, true
}

func (c *QueryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

func (c *QueryCache) set(key string, value any) {
	if c.ttl <= 0 {
		return
	}
	c.entries[key] = entry{value: value, expires: c.now().Add(c.ttl)}
}

// Invalidate removes every key starting with one of prefixes.
func (c *QueryCache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	for key := range c.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(c.entries, key)
				break
			}
		}
	}
}

func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *QueryCache) currentGeneration() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// storeIfCurrent keeps value only when no invalidation happened since gen was read.
func (c *QueryCache) storeIfCurrent(key string, value any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return
	}
	c.set(key, value)
}

// Fetch returns the cached value for key or calls load to produce it. Concurrent misses
// on the same key share a single load, which is not cancelled with any one caller.
// A nil cache always loads.
func Fetch[T any](ctx context.Context, c *QueryCache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	ch := c.group.DoChan(key, func() (any, error) {
		gen := c.currentGeneration()
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.storeIfCurrent(key, v, gen)
		return v, nil
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
