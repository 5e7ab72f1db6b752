// Package check holds the smoke checks run by `patience check`.
package check

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"

	patience "github.com/pavelkryukov/patience-sorting"
	"github.com/pavelkryukov/patience-sorting/list"
)

// ErrUnsorted is the cause of every failed check.
var ErrUnsorted = errors.New("output is not sorted")

// Sample is the input every check sorts.
func Sample() []int {
	return []int{1, 5, 1, 5, 12, 4, 104, 15, 2, 8}
}

// A Check sorts Sample one way and returns the result with the order it
// should be in.
type Check struct {
	Name string
	Sort func(in []int) (out []int, less func(a, b int) bool)
}

func greater(a, b int) bool { return a > b }

// All returns the fixed checks in the order they run.
func All() []Check {
	return []Check{
		{
			Name: "value",
			Sort: func(in []int) ([]int, func(a, b int) bool) {
				l := list.From(in...)
				patience.SortRange(l.Slots())
				return l.Values(), cmp.Less[int]
			},
		},
		{
			Name: "splice",
			Sort: func(in []int) ([]int, func(a, b int) bool) {
				l := list.From(in...)
				patience.SortSplice[int](l)
				return l.Values(), cmp.Less[int]
			},
		},
		{
			Name: "dispatch-inverse",
			Sort: func(in []int) ([]int, func(a, b int) bool) {
				l := list.From(in...)
				patience.SortFunc[int](l, greater)
				return l.Values(), greater
			},
		},
		{
			Name: "value-inverse",
			Sort: func(in []int) ([]int, func(a, b int) bool) {
				patience.SortRangeFunc(patience.Slots(in), greater)
				return in, greater
			},
		},
	}
}

// Run runs checks in order and stops at the first failure.
func Run(checks []Check) error {
	for _, c := range checks {
		if err := verify(c); err != nil {
			return errors.Wrapf(err, "check %s", c.Name)
		}
	}
	return nil
}

func verify(c Check) error {
	in := Sample()
	out, less := c.Sort(slices.Clone(in))
	if !patience.IsSorted(slices.Values(out), less) {
		return ErrUnsorted
	}
	slices.Sort(in)
	got := slices.Clone(out)
	slices.Sort(got)
	if !slices.Equal(in, got) {
		return errors.Errorf("output %v is not a permutation of the input", out)
	}
	return nil
}
