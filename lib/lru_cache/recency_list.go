package lru_cache

// Slots 0 and 1 of every arena are the head and tail sentinels and are
// never released.
const (
	head = 0
	tail = 1
)

type Node[V any] struct {
	Key string
	Val V

	prev int
	next int
}

// recencyList is a doubly linked list whose nodes live in a slice and refer
// to each other by index. Released slots are recycled through free.
type recencyList[V any] struct {
	nodes []Node[V]
	free  []int
}

func newRecencyList[V any]() *recencyList[V] {
	l := &recencyList[V]{nodes: make([]Node[V], 2)}
	l.nodes[head].next = tail
	l.nodes[tail].prev = head

	return l
}

// pushFront stores a new node right after head and returns its slot.
func (l *recencyList[V]) pushFront(key string, value V) int {
	var i int
	if n := len(l.free); n > 0 {
		i = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.nodes = append(l.nodes, Node[V]{})
		i = len(l.nodes) - 1
	}

	l.nodes[i].Key = key
	l.nodes[i].Val = value
	l.insertFront(i)

	return i
}

func (l *recencyList[V]) insertFront(i int) {
	next := l.nodes[head].next

	l.nodes[i].prev = head
	l.nodes[i].next = next

	l.nodes[next].prev = i
	l.nodes[head].next = i
}

func (l *recencyList[V]) unlink(i int) {
	prev, next := l.nodes[i].prev, l.nodes[i].next

	l.nodes[prev].next = next
	l.nodes[next].prev = prev
}

func (l *recencyList[V]) moveToFront(i int) {
	if l.nodes[head].next == i {
		return
	}

	l.unlink(i)
	l.insertFront(i)
}

// back returns the least recently used slot, or head if the list is empty.
func (l *recencyList[V]) back() int {
	return l.nodes[tail].prev
}

// release unlinks slot i and returns its node. The slot is cleared so the
// arena does not keep the value reachable.
func (l *recencyList[V]) release(i int) Node[V] {
	l.unlink(i)

	n := l.nodes[i]
	l.nodes[i] = Node[V]{}
	l.free = append(l.free, i)

	return n
}

// keys walks from head to tail.
func (l *recencyList[V]) keys(n int) []string {
	keys := make([]string, 0, n)
	for i := l.nodes[head].next; i != tail; i = l.nodes[i].next {
		keys = append(keys, l.nodes[i].Key)
	}

	return keys
}
