package pile

import (
	"iter"
	"sort"

	"github.com/pavelkryukov/patience-sorting/frontier"
)

// Search returns the leftmost of k piles whose top is not less than x, or k
// if x is greater than every top. Tops must be ascending by pile index.
func Search[E any](k int, top func(i int) E, x E, less func(a, b E) bool) int {
	return sort.Search(k, func(i int) bool {
		return !less(top(i), x)
	})
}

// Set is an ordered collection of piles built from copies of the input values.
//
// Each pile is a stack whose values never increase from bottom to top, and the
// tops read in pile order are ascending.
type Set[E any] struct {
	piles [][]E
	less  func(a, b E) bool
	size  int
}

// New returns an empty pile set ordered by less.
func New[E any](less func(a, b E) bool) *Set[E] {
	return &Set[E]{less: less}
}

// Place puts x on the leftmost pile whose top is not less than x, opening a
// new pile on the right if there is none. It returns the pile index.
func (s *Set[E]) Place(x E) int {
	i := Search(len(s.piles), s.Top, x, s.less)
	if i == len(s.piles) {
		s.piles = append(s.piles, []E{x})
	} else {
		s.piles[i] = append(s.piles[i], x)
	}
	s.size++
	return i
}

// Len returns the number of piles.
func (s *Set[E]) Len() int {
	return len(s.piles)
}

// Size returns the number of values across all piles.
func (s *Set[E]) Size() int {
	return s.size
}

// Top returns the top of pile i.
func (s *Set[E]) Top(i int) E {
	p := s.piles[i]
	return p[len(p)-1]
}

// Pop removes the top of pile i and reports whether the pile still holds values.
func (s *Set[E]) Pop(i int) (top E, more bool) {
	p := s.piles[i]
	last := len(p) - 1
	top = p[last]

	var zero E
	p[last] = zero
	s.piles[i] = p[:last]
	s.size--
	return top, last > 0
}

// Pile returns pile i from bottom to top. The slice aliases the set.
func (s *Set[E]) Pile(i int) []E {
	return s.piles[i]
}

// Tops yields every pile index with its top.
func (s *Set[E]) Tops() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, p := range s.piles {
			if len(p) > 0 && !yield(i, p[len(p)-1]) {
				return
			}
		}
	}
}

// Drain seeds f with every pile top and returns a Drainer emitting the values
// of all piles in ascending order. f must be empty and sized for Len piles.
func (s *Set[E]) Drain(f frontier.Frontier[E]) *Drainer[E] {
	for i, top := range s.Tops() {
		f.Push(i, top)
	}
	return &Drainer[E]{set: s, frontier: f}
}

// Drainer merges the piles of a Set, consuming them.
type Drainer[E any] struct {
	set      *Set[E]
	frontier frontier.Frontier[E]
}

// Next returns the least remaining value.
func (d *Drainer[E]) Next() (E, bool) {
	i, v, ok := d.frontier.Pop()
	if !ok {
		return v, false
	}
	if _, more := d.set.Pop(i); more {
		d.frontier.Push(i, d.set.Top(i))
	}
	return v, true
}

// All yields the remaining values in ascending order.
func (d *Drainer[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := d.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
