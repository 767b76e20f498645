/*
cache implements a process-wide keyed store of timestamped entries with
TTL-based expiry, shared by the search-style tools. Entries are evicted
lazily when read after their TTL has elapsed; there is no background sweep.
*/
package cache

import (
	"sync"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type entry struct {
	ts      time.Time
	payload any
}

// Store is a keyed cache of timestamped payloads. The TTL is supplied per
// read, not fixed at construction, since it is configuration-driven.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultTTL is the cache lifetime used when configuration does not
// provide one.
const DefaultTTL = time.Hour

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewStore creates an empty cache store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get returns the payload for a key, or nil and false when the key is absent
// or the entry is older than ttl. Expired entries are deleted on read.
func (s *Store) Get(key string, ttl time.Duration) (any, bool) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	// Lazy expiry
	if time.Since(e.ts) > ttl {
		s.mu.Lock()
		// Re-check under the write lock so a concurrent Set is not discarded
		if e, ok := s.entries[key]; ok && time.Since(e.ts) > ttl {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.payload, true
}

// Set stores a payload under a key, overwriting any previous entry.
// Two concurrent writers for the same key resolve last-write-wins.
func (s *Store) Set(key string, payload any) {
	s.mu.Lock()
	s.entries[key] = entry{ts: time.Now(), payload: payload}
	s.mu.Unlock()
}

// Delete removes a key from the store.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of entries, including any not yet expired-on-read.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
