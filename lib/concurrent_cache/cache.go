package concurrent_cache

import (
	"sync"

	"github.com/pyropy/pagecache/lib/hashtable"
	"github.com/pyropy/pagecache/lib/lru_cache"
)

// Cache guards an LRU with a single mutex.
type Cache[V any] struct {
	mu  sync.Mutex
	lru *lru_cache.LRU[V]
}

func NewCache[V any](capacity int, opts ...hashtable.Option) *Cache[V] {
	return &Cache[V]{
		lru: lru_cache.NewLRU[V](capacity, opts...),
	}
}

// OnEvict registers f on the underlying LRU. f runs with the lock held and
// must not call back into the cache.
func (c *Cache[V]) OnEvict(f func(key string, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.OnEvict(f)
}

func (c *Cache[V]) AccessPage(key string, contents V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.AccessPage(key, contents)
}

func (c *Cache[V]) GetPages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.GetPages()
}

func (c *Cache[V]) Peek(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Peek(key)
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}
