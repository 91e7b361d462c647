// Package hashtable implements a string-keyed hash table with separate
// chaining. The bucket array grows and shrinks with the load factor so that
// Put, Get and Delete stay amortized O(1).
//
// HashTable is not safe for concurrent use.
package hashtable

import "fmt"

const (
	// InitialBucketCount is the bucket count of a new table.
	InitialBucketCount = 97
	// MinBucketCount is the size below which the table may be arbitrarily sparse.
	MinBucketCount = 100

	MaxLoadFactor = 0.7
	MinLoadFactor = 0.3
)

type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// Option configures a HashTable.
type Option func(*options)

type options struct {
	hasher Hasher
}

// WithHasher replaces the default Hash function.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

type HashTable[V any] struct {
	buckets   []*entry[V]
	itemCount int
	hasher    Hasher
}

func New[V any](opts ...Option) *HashTable[V] {
	o := options{hasher: Hash}
	for _, opt := range opts {
		opt(&o)
	}

	return &HashTable[V]{
		buckets: make([]*entry[V], InitialBucketCount),
		hasher:  o.hasher,
	}
}

// Put inserts key or overwrites its value. It returns true if key was not
// present before.
func (t *HashTable[V]) Put(key string, value V) bool {
	t.checkSize()

	i := t.bucketIndex(key)
	for e := t.buckets[i]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return false
		}
	}

	t.buckets[i] = &entry[V]{key: key, value: value, next: t.buckets[i]}
	t.itemCount++
	t.resize()

	return true
}

// Get returns the value stored for key. The zero value and false are
// returned when key is absent.
func (t *HashTable[V]) Get(key string) (V, bool) {
	t.checkSize()

	for e := t.buckets[t.bucketIndex(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
func (t *HashTable[V]) Delete(key string) bool {
	t.checkSize()

	// link points at the field holding the current entry, bucket head included.
	for link := &t.buckets[t.bucketIndex(key)]; *link != nil; link = &(*link).next {
		if (*link).key == key {
			*link = (*link).next
			t.itemCount--
			t.resize()
			return true
		}
	}

	return false
}

// Size returns the number of live keys.
func (t *HashTable[V]) Size() int {
	return t.itemCount
}

// BucketCount returns the current length of the bucket array.
func (t *HashTable[V]) BucketCount() int {
	return len(t.buckets)
}

// Range calls f for every entry in bucket order until f returns false.
// f must not mutate the table.
func (t *HashTable[V]) Range(f func(key string, value V) bool) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !f(e.key, e.value) {
				return
			}
		}
	}
}

func (t *HashTable[V]) bucketIndex(key string) int {
	return int(t.hasher(key) % uint64(len(t.buckets)))
}

func (t *HashTable[V]) loadFactor() float64 {
	return float64(t.itemCount) / float64(len(t.buckets))
}

// resize doubles or halves the bucket array when the load factor leaves
// [MinLoadFactor, MaxLoadFactor], then verifies the size invariant.
func (t *HashTable[V]) resize() {
	var newSize int
	switch lf := t.loadFactor(); {
	case lf > MaxLoadFactor:
		newSize = len(t.buckets) * 2
	case lf < MinLoadFactor && len(t.buckets) >= MinBucketCount:
		newSize = len(t.buckets) / 2
	default:
		t.checkSize()
		return
	}

	old := t.buckets
	t.buckets = make([]*entry[V], newSize)
	for _, head := range old {
		for e := head; e != nil; e = e.next {
			i := t.bucketIndex(e.key)
			t.buckets[i] = &entry[V]{key: e.key, value: e.value, next: t.buckets[i]}
		}
	}

	t.checkSize()
}

// checkSize panics if a table of MinBucketCount buckets or more is less
// than MinLoadFactor full.
func (t *HashTable[V]) checkSize() {
	if len(t.buckets) >= MinBucketCount && float64(t.itemCount) < float64(len(t.buckets))*MinLoadFactor {
		panic(fmt.Sprintf("hashtable: %d items in %d buckets is below load factor %.1f",
			t.itemCount, len(t.buckets), MinLoadFactor))
	}
}
