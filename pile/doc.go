// Package pile builds the piles of a patience sort.
//
// Values are dealt left to right. Each one goes on the leftmost pile whose top
// is not less than it; when every top is less, it opens a new pile on the
// right. Two invariants follow:
//   - every pile, read bottom to top, is non-increasing
//   - pile tops, read by pile index, are ascending
//
// The second one is what lets Search find the target pile with a binary search.
// Reading each pile top first therefore yields ascending runs, and a k-way merge
// of those runs (see Drain) yields the sorted input.
//
//	s := pile.New(func(a, b int) bool { return a < b })
//	for _, v := range []int{3, 1, 4, 1, 5} {
//	    s.Place(v)
//	}
//	// piles: [3 1 1] [4] [5]
//	d := s.Drain(frontier.New[int](frontier.Heap, s.Len(), less))
//	for v := range d.All() {
//	    fmt.Println(v) // 1 1 3 4 5
//	}
package pile
