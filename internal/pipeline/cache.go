package pipeline

import (
	"sync"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
)

// resultCache maps normalized region keys to validated record sets. Entries
// live for the process lifetime: no eviction, no TTL, no invalidation. Growth
// is bounded only by the number of distinct regions queried in one session.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]domain.RecordSet
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[string]domain.RecordSet)}
}

func (c *resultCache) get(key string) (domain.RecordSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.entries[key]
	return set, ok
}

func (c *resultCache) put(key string, set domain.RecordSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = set
}

func (c *resultCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
