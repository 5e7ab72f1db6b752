package patience

import (
	"cmp"
	stdlist "container/list"
	"iter"

	"github.com/pavelkryukov/patience-sorting/list"
)

// Container is a sequence whose values can be visited in order through
// pointers, any number of times.
type Container[E any] interface {
	Slots() iter.Seq[*E]
}

// Splicer is a Container made of list elements that can be relinked in O(1).
// *list.List implements it.
type Splicer[E any] interface {
	Container[E]
	Front() *list.Element[E]
	MoveBefore(e, mark *list.Element[E])
	MoveToBack(e *list.Element[E])
}

// Slice is a slice usable as a Container.
type Slice[E any] []E

// Slots yields a pointer to every element of s.
func (s Slice[E]) Slots() iter.Seq[*E] {
	return Slots(s)
}

// Slots yields a pointer to every element of s in order.
func Slots[E any](s []E) iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// SortRange sorts the values behind r in ascending order.
func SortRange[E cmp.Ordered](r iter.Seq[*E]) {
	SortRangeFunc(r, cmp.Less[E])
}

// SortRangeFunc sorts the values behind r by less.
func SortRangeFunc[E any](r iter.Seq[*E], less func(a, b E) bool) {
	New(less).Range(r)
}

// SortSlice sorts s in ascending order.
func SortSlice[E cmp.Ordered](s []E) {
	SortSliceFunc(s, cmp.Less[E])
}

// SortSliceFunc sorts s by less.
func SortSliceFunc[E any](s []E, less func(a, b E) bool) {
	New(less).Slice(s)
}

// SortSplice sorts l in ascending order by relinking its elements.
func SortSplice[E cmp.Ordered](l Splicer[E]) {
	SortSpliceFunc(l, cmp.Less[E])
}

// SortSpliceFunc sorts l by less, relinking its elements.
func SortSpliceFunc[E any](l Splicer[E], less func(a, b E) bool) {
	New(less).Splice(l)
}

// SortSpliceRangeFunc sorts the elements of l in [first, end) by less,
// relinking them. A nil end means the back of the list.
func SortSpliceRangeFunc[E any](l Splicer[E], first, end *list.Element[E], less func(a, b E) bool) {
	New(less).SpliceRange(l, first, end)
}

// SortList sorts a container/list holding E values by less, relinking its
// elements.
func SortList[E any](l *stdlist.List, less func(a, b E) bool) {
	New(less).List(l)
}

// Sort sorts c in ascending order, relinking elements when c is a Splicer.
func Sort[E cmp.Ordered](c Container[E]) {
	SortFunc(c, cmp.Less[E])
}

// SortFunc sorts c by less, relinking elements when c is a Splicer.
func SortFunc[E any](c Container[E], less func(a, b E) bool) {
	New(less).Sort(c)
}

// IsSorted reports whether seq is ascending by less.
func IsSorted[E any](seq iter.Seq[E], less func(a, b E) bool) bool {
	var prev E
	first := true
	for v := range seq {
		if !first && less(v, prev) {
			return false
		}
		prev, first = v, false
	}
	return true
}
