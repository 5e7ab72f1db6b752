// Package loser is a tournament tree over a fixed number of leaves, after
// https://github.com/bboreham/go-loser/blob/iter/tree.go. Thank you Bryan.
package loser

import (
	"iter"
)

// New returns a tree with k empty leaves ordered by less. Leaves that compare
// equal are ordered by index, lowest first.
func New[E any](k int, less func(E, E) bool) *Tree[E] {
	t := Tree[E]{
		nodes:   make([]node[E], k*2),
		k:       k,
		less:    less,
		pending: -1,
	}
	for i := k; i < len(t.nodes); i++ {
		t.nodes[i].done = true
	}
	return &t
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store k leaf nodes in positions k...2k-1, and k-1 internal nodes in positions 1..k-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any] struct {
	nodes   []node[E]
	k       int
	less    func(E, E) bool
	ready   bool
	pending int // leaf handed out by Pop and not refilled yet, or -1
	live    int
}

type node[E any] struct {
	index int  // Position of the losing leaf for internal nodes, of the winner for node 0.
	value E    // Only meaningful for leaf nodes.
	done  bool // Leaf is empty or retired.
}

// Len returns the number of leaves holding a value.
func (t *Tree[E]) Len() int {
	return t.live
}

// Push loads v into leaf i. Before the first Pop any leaf may be loaded; after
// it, pushing the leaf returned by the last Pop replays only its path to the
// root. Pushing any other leaf rebuilds the tree.
func (t *Tree[E]) Push(i int, v E) {
	pos := i + t.k
	n := &t.nodes[pos]
	if n.done || i == t.pending {
		t.live++
	}
	n.value = v
	n.done = false

	if !t.ready {
		return
	}
	if i == t.pending {
		t.pending = -1
		t.replayGames(pos)
		return
	}
	if t.pending >= 0 {
		t.nodes[t.pending+t.k].done = true
		t.pending = -1
	}
	t.initialize()
}

// Pop returns the winning leaf and its value. The leaf stays in the tree until
// the next Pop; refill it with Push before then to keep it in play.
func (t *Tree[E]) Pop() (int, E, bool) {
	var zero E
	if t.k == 0 {
		return -1, zero, false
	}
	switch {
	case !t.ready:
		t.initialize()
		t.ready = true
	case t.pending >= 0:
		pos := t.pending + t.k
		t.nodes[pos].done = true
		t.pending = -1
		t.replayGames(pos)
	}

	w := &t.nodes[t.nodes[0].index]
	if w.done {
		return -1, zero, false
	}
	t.pending = t.nodes[0].index - t.k
	t.live--
	return t.pending, w.value, true
}

func (t *Tree[E]) initialize() {
	t.nodes[0].index = t.playGame(1)
}

// beats reports whether leaf a wins against leaf b.
func (t *Tree[E]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	switch {
	case na.done || nb.done:
		return !na.done || (nb.done && a < b)
	case t.less(na.value, nb.value):
		return true
	case t.less(nb.value, na.value):
		return false
	}
	return a < b
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= t.k {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	winner, loser := left, right
	if !t.beats(left, right) {
		winner, loser = right, left
	}
	t.nodes[pos].index = loser
	return winner
}

// Starting at pos, which is a winner, re-consider all games up to the root.
func (t *Tree[E]) replayGames(pos int) {
	nodes := t.nodes
	for n := parent(pos); n != 0; n = parent(n) {
		if t.beats(nodes[n].index, pos) {
			// Record pos as the loser here, and the old loser is the new winner.
			nodes[n].index, pos = pos, nodes[n].index
		}
	}
	nodes[0].index = pos
}

func parent(i int) int { return i >> 1 }

// Merge merges sorted sequences into one sorted sequence.
func Merge[E any](sequences []iter.Seq[E], less func(E, E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		t := New[E](len(sequences), less)
		nexts := make([]func() (E, bool), len(sequences))
		for i, s := range sequences {
			next, stop := iter.Pull(s)
			//nolint:gocritic // is not a leak.
			defer stop()
			nexts[i] = next
			if v, ok := next(); ok {
				t.Push(i, v)
			}
		}
		for {
			i, v, ok := t.Pop()
			if !ok || !yield(v) {
				return
			}
			if v, ok := nexts[i](); ok {
				t.Push(i, v)
			}
		}
	}
}
