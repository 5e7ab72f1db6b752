// Package frontier provides the merge frontier of a patience sort: a
// min-priority structure with one entry per non-empty pile.
//
// Three implementations share the Frontier interface and produce the same
// order, ties always going to the lowest pile index:
//   - Heap: keyed binary heap (package priority); the default
//   - Tournament: loser tree (package loser); fewest comparisons per pop
//   - Ordered: B-tree ordered set (github.com/google/btree)
package frontier
