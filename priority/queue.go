package priority

import "cmp"

type slot[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// Queue is a keyed min-heap. Values are ordered by the comparator given to
// NewQueue; values that compare equal are ordered by ascending key, so the
// order in which equal values leave the queue does not depend on insertion
// order.
type Queue[K cmp.Ordered, V any] struct {
	heap  []slot[K, V]
	index map[K]int // key to position in heap
	less  func(a, b V) bool
}

// NewQueue returns an empty queue ordered by less.
func NewQueue[K cmp.Ordered, V any](less func(a, b V) bool) *Queue[K, V] {
	return NewQueueSize[K, V](0, less)
}

// NewQueueSize returns an empty queue with room for size keys.
func NewQueueSize[K cmp.Ordered, V any](size int, less func(a, b V) bool) *Queue[K, V] {
	return &Queue[K, V]{
		heap:  make([]slot[K, V], 0, size),
		index: make(map[K]int, size),
		less:  less,
	}
}

// Len returns the number of keys in the queue.
func (q *Queue[K, V]) Len() int {
	return len(q.heap)
}

// Get returns the value stored under key.
func (q *Queue[K, V]) Get(key K) (V, bool) {
	pos, ok := q.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return q.heap[pos].value, true
}

// Set stores value under key, replacing any previous value.
func (q *Queue[K, V]) Set(key K, value V) {
	pos, ok := q.index[key]
	if !ok {
		q.heap = append(q.heap, slot[K, V]{key: key, value: value})
		q.siftUp(len(q.heap) - 1)
		return
	}

	old := q.heap[pos].value
	q.heap[pos].value = value
	if q.less(value, old) {
		q.siftUp(pos)
	} else {
		q.siftDown(pos)
	}
}

// Remove deletes key from the queue. Unknown keys are ignored.
func (q *Queue[K, V]) Remove(key K) {
	if pos, ok := q.index[key]; ok {
		q.removeAt(pos)
	}
}

// Pop removes and returns the smallest entry.
func (q *Queue[K, V]) Pop() (key K, value V, ok bool) {
	if len(q.heap) == 0 {
		return key, value, false
	}
	top := q.heap[0]
	q.removeAt(0)
	return top.key, top.value, true
}

// Peek returns the smallest entry without removing it.
func (q *Queue[K, V]) Peek() (key K, value V, ok bool) {
	if len(q.heap) == 0 {
		return key, value, false
	}
	return q.heap[0].key, q.heap[0].value, true
}

func (q *Queue[K, V]) removeAt(pos int) {
	delete(q.index, q.heap[pos].key)

	last := len(q.heap) - 1
	moved := q.heap[last]
	q.heap[last] = slot[K, V]{}
	q.heap = q.heap[:last]
	if pos == last {
		return
	}

	q.heap[pos] = moved
	q.index[moved.key] = pos
	if pos > 0 && q.before(moved, q.heap[(pos-1)/2]) {
		q.siftUp(pos)
	} else {
		q.siftDown(pos)
	}
}

// before orders slots by value, then by key.
func (q *Queue[K, V]) before(a, b slot[K, V]) bool {
	switch {
	case q.less(a.value, b.value):
		return true
	case q.less(b.value, a.value):
		return false
	}
	return a.key < b.key
}

// siftUp moves the slot at pos towards the root, shifting parents down into
// the hole instead of swapping.
func (q *Queue[K, V]) siftUp(pos int) {
	s := q.heap[pos]
	for pos > 0 {
		up := (pos - 1) / 2
		if !q.before(s, q.heap[up]) {
			break
		}
		q.place(pos, q.heap[up])
		pos = up
	}
	q.place(pos, s)
}

// siftDown moves the slot at pos towards the leaves.
func (q *Queue[K, V]) siftDown(pos int) {
	s := q.heap[pos]
	n := len(q.heap)
	for {
		child := 2*pos + 1
		if child >= n {
			break
		}
		if r := child + 1; r < n && q.before(q.heap[r], q.heap[child]) {
			child = r
		}
		if !q.before(q.heap[child], s) {
			break
		}
		q.place(pos, q.heap[child])
		pos = child
	}
	q.place(pos, s)
}

func (q *Queue[K, V]) place(pos int, s slot[K, V]) {
	q.heap[pos] = s
	q.index[s.key] = pos
}
