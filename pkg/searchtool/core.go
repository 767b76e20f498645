package searchtool

import (
	"context"
	"time"

	// Packages
	llmtools "github.com/jxlarrea/voice-satellite-card-llm-tools"
	cache "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/cache"
	singleflight "golang.org/x/sync/singleflight"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Fetcher retrieves fresh results from an upstream provider. It is invoked
// only on a cache miss, at most once per call.
type Fetcher[T any] func(ctx context.Context, query string, count int) ([]T, error)

// Core orchestrates caching and fetching for one search tool. It is
// stateless across invocations except through the cache store.
type Core[T any] struct {
	kind       Kind
	fetch      Fetcher[T]
	store      *cache.Store
	ttl        time.Duration
	max        int
	qualifiers map[string]string
	group      singleflight.Group
}

// config collects the non-generic options applied by NewCore.
type config struct {
	store      *cache.Store
	ttl        time.Duration
	max        int
	qualifiers map[string]string
}

// Opt is a functional option for configuring a search core
type Opt func(*config) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCore creates a search core for the given kind and provider fetch
// function.
func NewCore[T any](kind Kind, fetch Fetcher[T], opts ...Opt) (*Core[T], error) {
	if fetch == nil {
		return nil, llmtools.ErrBadParameter.With("fetch function is required")
	}

	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Core[T]{
		kind:       kind,
		fetch:      fetch,
		store:      cfg.store,
		ttl:        cfg.ttl,
		max:        cfg.max,
		qualifiers: cfg.qualifiers,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithStore sets the shared cache store and the TTL applied on reads.
// Without a store the core fetches on every call.
func WithStore(store *cache.Store, ttl time.Duration) Opt {
	return func(c *config) error {
		if store == nil {
			return llmtools.ErrBadParameter.With("store is required")
		}
		c.store = store
		c.ttl = ttl
		return nil
	}
}

// WithMaxResults sets the configured per-provider result count, which acts
// as both the default and the cap for caller-supplied counts.
func WithMaxResults(n int) Opt {
	return func(c *config) error {
		if n < 0 {
			return llmtools.ErrBadParameter.Withf("invalid max results: %d", n)
		}
		c.max = n
		return nil
	}
}

// WithQualifiers adds tool-specific fields to the cache key derivation,
// e.g. the encyclopedia detail level.
func WithQualifiers(qualifiers map[string]string) Opt {
	return func(c *config) error {
		c.qualifiers = qualifiers
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ResolveCount merges a caller-supplied result count with the configured
// maximum, then applies the hard per-kind ceiling.
func (c *Core[T]) ResolveCount(explicit *int) int {
	count := c.max
	if count <= 0 {
		count = DefaultNumResults
	}
	if explicit != nil && *explicit < count {
		count = *explicit
	}
	if ceiling := c.kind.MaxResults(); count > ceiling {
		count = ceiling
	}
	if count < 1 {
		count = 1
	}
	return count
}

// Search returns results for a query, from the cache when a fresh entry
// exists, otherwise from the provider. Non-empty provider results are
// written back to the cache; empty results and errors are never cached, so
// a subsequent identical call retries the upstream. The boolean reports
// whether the results came from the cache.
func (c *Core[T]) Search(ctx context.Context, query string, count int) ([]T, bool, error) {
	key := cache.Key(string(c.kind), query, count, c.qualifiers)

	if c.store != nil {
		if payload, ok := c.store.Get(key, c.ttl); ok {
			if results, ok := payload.([]T); ok {
				return results, true, nil
			}
			// A foreign payload under our key cannot be served
			c.store.Delete(key)
		}
	}

	// Collapse concurrent identical misses into a single upstream call
	payload, err, _ := c.group.Do(key, func() (any, error) {
		results, err := c.fetch(ctx, query, count)
		if err != nil {
			return nil, err
		}
		if len(results) > 0 && c.store != nil {
			c.store.Set(key, results)
		}
		return results, nil
	})
	if err != nil {
		return nil, false, err
	}

	return payload.([]T), false, nil
}
