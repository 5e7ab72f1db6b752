package frontier

import (
	"fmt"

	"github.com/google/btree"
	"github.com/pavelkryukov/patience-sorting/loser"
	"github.com/pavelkryukov/patience-sorting/priority"
)

// Frontier holds the current top of every non-empty pile during a merge.
//
// Pop returns the pile with the least top, lowest pile index first on ties.
// The popped entry leaves the frontier; a following Push for the same pile
// puts the pile's next top back. A pile is pushed at most once while it is in
// the frontier.
type Frontier[V any] interface {
	Push(pile int, top V)
	Pop() (pile int, top V, ok bool)
	Len() int
}

// Kind selects a Frontier implementation.
type Kind int

const (
	// Heap is a keyed binary heap.
	Heap Kind = iota
	// Tournament is a loser tree.
	Tournament
	// Ordered is a B-tree ordered set.
	Ordered
)

var kindNames = map[Kind]string{
	Heap:       "heap",
	Tournament: "tournament",
	Ordered:    "ordered",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every implementation.
func Kinds() []Kind {
	return []Kind{Heap, Tournament, Ordered}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("frontier: unknown kind %q", s)
}

// New returns an empty frontier of the given kind for piles 0..k-1.
func New[V any](kind Kind, k int, less func(a, b V) bool) Frontier[V] {
	switch kind {
	case Tournament:
		return loser.New[V](k, less)
	case Ordered:
		return newOrdered(k, less)
	default:
		return newHeap(k, less)
	}
}

// heap keeps the popped pile in the queue until it is either refilled, which
// updates it in place, or abandoned, which removes it on the next Pop.
type heap[V any] struct {
	q       *priority.Queue[int, V]
	pending int
}

func newHeap[V any](k int, less func(a, b V) bool) *heap[V] {
	return &heap[V]{
		q:       priority.NewQueueSize[int, V](k, less),
		pending: -1,
	}
}

func (h *heap[V]) Push(pile int, top V) {
	if pile == h.pending {
		h.pending = -1
	}
	h.q.Set(pile, top)
}

func (h *heap[V]) Pop() (int, V, bool) {
	if h.pending >= 0 {
		h.q.Remove(h.pending)
		h.pending = -1
	}
	pile, top, ok := h.q.Peek()
	if !ok {
		return -1, top, false
	}
	h.pending = pile
	return pile, top, true
}

func (h *heap[V]) Len() int {
	if h.pending >= 0 {
		return h.q.Len() - 1
	}
	return h.q.Len()
}

type entry[V any] struct {
	pile int
	top  V
}

type ordered[V any] struct {
	tree *btree.BTreeG[entry[V]]
}

func newOrdered[V any](k int, less func(a, b V) bool) *ordered[V] {
	degree := 2
	for degree*degree < k && degree < 32 {
		degree *= 2
	}
	return &ordered[V]{
		tree: btree.NewG[entry[V]](degree, func(a, b entry[V]) bool {
			if less(a.top, b.top) {
				return true
			}
			if less(b.top, a.top) {
				return false
			}
			return a.pile < b.pile
		}),
	}
}

func (o *ordered[V]) Push(pile int, top V) {
	o.tree.ReplaceOrInsert(entry[V]{pile: pile, top: top})
}

func (o *ordered[V]) Pop() (int, V, bool) {
	e, ok := o.tree.DeleteMin()
	if !ok {
		return -1, e.top, false
	}
	return e.pile, e.top, true
}

func (o *ordered[V]) Len() int {
	return o.tree.Len()
}
