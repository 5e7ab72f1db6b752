// Package priority implements a keyed binary heap. The merge step of patience
// sort uses it as its frontier: one entry per non-empty pile, keyed by the pile
// index and valued by the pile's current top.
//
// Ordering is given by a caller comparator over values. When two values compare
// equal (neither is less than the other) the smaller key wins, so a queue keyed
// by pile index always yields the lowest pile first on ties. This keeps the
// output of a sort deterministic for a given input.
//
// Key features:
//   - Generic over any ordered key type and any value type
//   - O(log n) insertion, update and deletion
//   - O(1) peek
//   - O(1) key lookups
//
// Basic usage:
//
//	pq := priority.NewQueue[int, string](func(a, b string) bool {
//	    return a < b
//	})
//
//	pq.Set(0, "pear")
//	pq.Set(1, "apple")
//	pq.Set(2, "apple")
//
//	key, value, _ := pq.Pop() // 1, "apple"
//
//	// Update the value stored under a key in place
//	pq.Set(2, "zucchini")
//
//	// Remove a key
//	pq.Remove(0)
package priority
