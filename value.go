package patience

import (
	"iter"

	"github.com/pavelkryukov/patience-sorting/frontier"
	"github.com/pavelkryukov/patience-sorting/pile"
)

// sortValues deals copies of the values behind r into piles, then walks r a
// second time overwriting each slot with the next merged value. Every slot is
// read before any is written, so r may be read and written through the same
// pointers.
func sortValues[E any](r iter.Seq[*E], less func(a, b E) bool, kind frontier.Kind) (n, piles int) {
	s := pile.New(less)
	for p := range r {
		s.Place(*p)
	}
	n, piles = s.Size(), s.Len()
	// One value per pile means the input was strictly ascending.
	if n < 2 || piles == n {
		return n, piles
	}

	d := s.Drain(frontier.New[E](kind, piles, less))
	for p := range r {
		v, ok := d.Next()
		if !ok {
			break
		}
		*p = v
	}
	return n, piles
}
