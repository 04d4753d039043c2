package chemkit

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultCacheSize bounds the detection cache when WithCache is used
// without an explicit size.
const DefaultCacheSize = 1024

// detectCache memoizes classification results keyed by an xxhash of the
// header window. Repeatedly classifying the same content (batch ingest of
// duplicated files) skips the rule scan. A hash collision returns a wrong
// format for the colliding input; with a 64-bit key that is acceptable for
// a cache.
type detectCache struct {
	mu      sync.RWMutex
	max     int
	entries map[uint64]Format
	hits    int64
	misses  int64
}

func newDetectCache(max int) *detectCache {
	if max < 1 {
		max = DefaultCacheSize
	}
	return &detectCache{max: max, entries: make(map[uint64]Format)}
}

func (c *detectCache) lookup(window []byte) (Format, bool) {
	key := xxhash.Sum64(window)
	c.mu.RLock()
	f, ok := c.entries[key]
	c.mu.RUnlock()

	c.mu.Lock()
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()
	return f, ok
}

func (c *detectCache) store(window []byte, f Format) {
	key := xxhash.Sum64(window)
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		// Evict an arbitrary entry; detection is cheap enough that a
		// plain bound beats LRU bookkeeping here.
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = f
}

// CacheStatistics contains detection cache metrics.
type CacheStatistics struct {
	Hits   int64
	Misses int64
	Size   int
}

func (c *detectCache) stats() CacheStatistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStatistics{Hits: c.hits, Misses: c.misses, Size: len(c.entries)}
}
