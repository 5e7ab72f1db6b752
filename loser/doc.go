// Package loser implements a tournament tree (also known as a loser tree). This
// implementation is based on the work by Bryan Boreham
// (https://github.com/bboreham/go-loser).
//
// A loser tree is a binary tree structure where each internal node holds the "loser" of
// a comparison between its children, and the root holds the overall "winner". Replacing
// the winner costs exactly one comparison per level, which makes it a cheap frontier for
// merging many sorted runs such as the piles of a patience sort.
//
// The tree has a fixed number of leaves. Each leaf holds at most one value:
//   - Push loads or refills a leaf
//   - Pop hands out the winning leaf; it stays in play until the next Pop and is
//     retired then unless it was refilled with Push
//   - Equal values are won by the lower leaf index
//
// Basic usage:
//
//	tree := loser.New[int](3, func(a, b int) bool { return a < b })
//	tree.Push(0, 7)
//	tree.Push(1, 2)
//	tree.Push(2, 5)
//
//	leaf, value, ok := tree.Pop() // 1, 2, true
//	tree.Push(leaf, 9)            // refill the winner
//
// Merge wraps the tree for the common case of merging sorted iter.Seq values:
//
//	for v := range loser.Merge([]iter.Seq[int]{a, b, c}, less) {
//	    fmt.Println(v)
//	}
//
// Implementation Details:
// The tree is laid out in an array where:
//   - For node N, its children are at positions 2N and 2N+1
//   - Leaf nodes are stored in positions k to 2k-1 (where k is the number of leaves)
//   - Internal nodes are stored in positions 1 to k-1
//   - Node 0 is special, containing the current winner
//
// An empty or retired leaf loses against every loaded leaf, which replaces the
// maximum-value sentinel a loser tree usually needs.
package loser
