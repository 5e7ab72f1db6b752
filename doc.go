// Package patience implements patience sort for any sequence that can be
// walked front to back, with a second strategy for linked lists that sorts by
// relinking elements instead of copying values.
//
// # Algorithm
//
// Values are dealt left to right onto piles. Each value goes on the leftmost
// pile whose top is not less than it, found by binary search over the pile
// tops, or opens a new pile on the right. Every pile read top first is then an
// ascending run, and a k-way merge of the runs yields the sorted sequence. The
// merge is driven by a frontier holding the current top of each pile (see
// package frontier).
//
// Inputs made of few ascending or descending runs produce few piles, so nearly
// sorted data merges cheaply. Strictly ascending input, and input that forms a
// single descending pile, skip the merge altogether.
//
// # Strategies
//
// The value strategy (SortRange, SortSlice, Sorter.Range) works on an
// iter.Seq[*E] of value slots. It reads every value into the piles first and
// only then walks the slots again to write the sorted values, so it needs
// nothing but forward traversal.
//
// The splice strategy (SortSplice, SortList, Sorter.Splice) works on linked
// lists. Piles are runs of the list's own elements and every step is a relink;
// values are never copied or moved, and pointers to elements stay attached to
// their values. It keeps only the pile tops and sizes on the side.
//
// Sort and SortFunc pick the splice strategy when the container is a Splicer,
// such as *list.List, and the value strategy otherwise:
//
//	l := list.From(5, 2, 8)
//	patience.Sort[int](l) // relinks elements
//
//	s := []int{5, 2, 8}
//	patience.Sort[int](patience.Slice[int](s)) // writes values back
//
// # Ordering
//
// less must be a strict weak ordering. The sort is not stable: values that
// compare equal come out in a deterministic order (lowest pile first), which
// is not necessarily their input order.
//
// # Configuration
//
// New builds a Sorter with options: WithFrontier picks the merge frontier,
// WithLogger logs each call with github.com/convox/logger, and WithMetrics
// counts calls, elements and piles in a metrics.Registry.
package patience
