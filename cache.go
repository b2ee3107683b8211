package xterm

import "sync"

// boundedCache is a small fixed-capacity memoization cache. It has no
// maintained recency order (no true LRU eviction): once full, it
// drops an arbitrary entry to make room. §5 and §9 only require the
// caches be "observationally transparent" and bounded to a handful of
// entries (16-64); a strict LRU is more machinery than that calls
// for, so a plain map with ad-hoc eviction is used instead of pulling
// in an external LRU library. No suitable third-party cache exists in
// the example corpus.
type boundedCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]V
}

func newBoundedCache[K comparable, V any](capacity int) *boundedCache[K, V] {
	return &boundedCache[K, V]{
		capacity: capacity,
		entries:  make(map[K]V, capacity),
	}
}

func (c *boundedCache[K, V]) get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[k]
	return v, ok
}

func (c *boundedCache[K, V]) put(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[k]; !ok && len(c.entries) >= c.capacity {
		for evict := range c.entries {
			delete(c.entries, evict)
			break
		}
	}
	c.entries[k] = v
}
