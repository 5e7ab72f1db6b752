package patience

import (
	"github.com/pavelkryukov/patience-sorting/frontier"
	"github.com/pavelkryukov/patience-sorting/pile"
)

// links are the node operations the splice strategy needs. The zero N ends a
// list; moveBefore with a zero mark moves the node to the back.
type links[E any, N comparable] struct {
	next       func(N) N
	value      func(N) E
	moveBefore func(n, mark N)
}

// sortLinks sorts the nodes in [first, end) by relinking them.
//
// Piles live inside the range as contiguous runs, top first, in pile order.
// Pushing a node relinks it in front of its pile's top; a node that opens a
// pile is already behind every dealt node and stays put. The merge then
// relinks the winning node in front of end, so the sorted run grows there
// while the piles drain ahead of it. Only the pile tops and sizes are kept
// on the side.
func sortLinks[E any, N comparable](first, end N, ln links[E, N], less func(a, b E) bool, kind frontier.Kind) (n, piles int) {
	var (
		none  N
		tops  []N
		sizes []int
	)
	top := func(i int) E { return ln.value(tops[i]) }

	for e := first; e != end && e != none; {
		next := ln.next(e)
		i := pile.Search(len(tops), top, ln.value(e), less)
		if i == len(tops) {
			tops = append(tops, e)
			sizes = append(sizes, 1)
		} else {
			ln.moveBefore(e, tops[i])
			tops[i] = e
			sizes[i]++
		}
		n++
		e = next
	}
	piles = len(tops)
	// A single pile read top first is ascending already, and so is a range
	// that opened a pile per node.
	if piles < 2 || piles == n {
		return n, piles
	}

	f := frontier.New[N](kind, piles, func(a, b N) bool {
		return less(ln.value(a), ln.value(b))
	})
	for i, e := range tops {
		f.Push(i, e)
	}
	for {
		i, e, ok := f.Pop()
		if !ok {
			break
		}
		if sizes[i]--; sizes[i] > 0 {
			tops[i] = ln.next(e)
			f.Push(i, tops[i])
		}
		ln.moveBefore(e, end)
	}
	return n, piles
}
