// Package cache holds fetched page text for the duration of a session.
// The league page is requested once per run but repeated runs during a
// charting session should not re-hit the source, so entries live for a
// short TTL and the whole cache stays in memory.
package cache

import (
	"sync"
	"time"
)

// Cache stores page text keyed by URL.
type Cache interface {
	// Get returns the cached page text and whether it was present and fresh.
	Get(key string) (string, bool)

	// Set stores page text with the given TTL.
	Set(key, text string, ttl time.Duration)

	// Clear removes all entries.
	Clear()
}

type entry struct {
	text      string
	expiresAt time.Time
}

// MemoryCache is an in-memory TTL cache with lazy expiry.
type MemoryCache struct {
	mu    sync.RWMutex
	store map[string]entry
}

// NewMemoryCache creates an empty page cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{store: make(map[string]entry)}
}

// Get returns the cached text for key if present and not expired.
func (mc *MemoryCache) Get(key string) (string, bool) {
	mc.mu.RLock()
	e, ok := mc.store[key]
	mc.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		mc.mu.Lock()
		delete(mc.store, key)
		mc.mu.Unlock()
		return "", false
	}
	return e.text, true
}

// Set stores text under key for ttl.
func (mc *MemoryCache) Set(key, text string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	mc.mu.Lock()
	mc.store[key] = entry{text: text, expiresAt: time.Now().Add(ttl)}
	mc.mu.Unlock()
}

// Clear removes every entry.
func (mc *MemoryCache) Clear() {
	mc.mu.Lock()
	mc.store = make(map[string]entry)
	mc.mu.Unlock()
}
