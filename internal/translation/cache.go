package translation

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a cached translation stays valid.
const DefaultCacheTTL = time.Hour

// TTLCache memoizes translations for a bounded time window. The key is the
// exact (text, target language) pair; entries expire after the TTL and are
// evicted lazily on access or via Sweep. Safe for concurrent use.
type TTLCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
	now     func() time.Time
}

type cacheKey struct {
	text   string
	target string
}

type cacheEntry struct {
	value   string
	expires time.Time
}

// NewTTLCache creates a new translation cache. A non-positive ttl falls back
// to DefaultCacheTTL.
func NewTTLCache(ttl time.Duration) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &TTLCache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
		now:     time.Now,
	}
}

// Get retrieves a cached translation if present and not expired
func (c *TTLCache) Get(text, targetCode string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{text: text, target: targetCode}
	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return "", false
	}
	return entry.value, true
}

// Put stores a translation with the configured TTL
func (c *TTLCache) Put(text, targetCode, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{text: text, target: targetCode}] = cacheEntry{
		value:   translated,
		expires: c.now().Add(c.ttl),
	}
}

// Sweep removes all expired entries
func (c *TTLCache) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of live entries
func (c *TTLCache) Len() int {
	c.Sweep()

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
