// Package lru_cache keeps the N most recently accessed pages. A hash table
// maps each key to its slot in an index-addressed recency list, so lookups,
// promotions and evictions are all O(1).
package lru_cache

import (
	"fmt"

	"github.com/pyropy/pagecache/lib/hashtable"
)

type LRU[V any] struct {
	capacity int
	count    int

	// cache holds slot indexes into list; the list owns the nodes.
	cache *hashtable.HashTable[int]
	list  *recencyList[V]

	onEvict func(key string, value V)
}

// NewLRU panics if capacity is smaller than 1.
func NewLRU[V any](capacity int, opts ...hashtable.Option) *LRU[V] {
	if capacity < 1 {
		panic(fmt.Sprintf("lru_cache: capacity must be at least 1, got %d", capacity))
	}

	return &LRU[V]{
		capacity: capacity,
		cache:    hashtable.New[int](opts...),
		list:     newRecencyList[V](),
	}
}

// OnEvict registers f to be called with every entry dropped for capacity.
func (l *LRU[V]) OnEvict(f func(key string, value V)) {
	l.onEvict = f
}

// AccessPage records an access to key. A resident key gets the new contents
// and becomes the most recently used entry; a new key is inserted at the
// front, evicting the least recently used entry if the cache overflows.
func (l *LRU[V]) AccessPage(key string, contents V) {
	if i, exists := l.cache.Get(key); exists {
		l.list.nodes[i].Val = contents
		l.list.moveToFront(i)
		return
	}

	i := l.list.pushFront(key, contents)
	l.cache.Put(key, i)
	l.count++

	if l.CapacityReached() {
		l.Evict()
	}
}

// GetPages returns the resident keys from most to least recently used.
func (l *LRU[V]) GetPages() []string {
	return l.list.keys(l.count)
}

// Peek returns the contents stored for key without changing its recency.
func (l *LRU[V]) Peek(key string) (V, bool) {
	i, exists := l.cache.Get(key)
	if !exists {
		var zero V
		return zero, false
	}

	return l.list.nodes[i].Val, true
}

func (l *LRU[V]) Len() int {
	return l.count
}

func (l *LRU[V]) Capacity() int {
	return l.capacity
}

func (l *LRU[V]) CapacityReached() bool {
	return l.count > l.capacity
}

// Evict drops the least recently used entry. It is a no-op on an empty cache.
func (l *LRU[V]) Evict() {
	i := l.list.back()
	if i == head {
		return
	}

	lru := l.list.release(i)
	l.cache.Delete(lru.Key)
	l.count--

	if l.onEvict != nil {
		l.onEvict(lru.Key, lru.Val)
	}
}
