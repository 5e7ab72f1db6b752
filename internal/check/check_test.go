package check_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	patience "github.com/pavelkryukov/patience-sorting"
	"github.com/pavelkryukov/patience-sorting/internal/check"
	"github.com/pavelkryukov/patience-sorting/list"
)

func TestAll(t *testing.T) {
	checks := check.All()
	require.Len(t, checks, 4)
	for _, c := range checks {
		t.Run(c.Name, func(t *testing.T) {
			require.NoError(t, check.Run([]check.Check{c}))
		})
	}
	assert.NoError(t, check.Run(checks))
}

func TestRunUnsorted(t *testing.T) {
	checks := []check.Check{
		{
			Name: "identity",
			Sort: func(in []int) ([]int, func(a, b int) bool) { return in, cmp.Less[int] },
		},
	}

	err := check.Run(checks)
	require.Error(t, err)
	assert.Equal(t, check.ErrUnsorted, errors.Cause(err))
	assert.Contains(t, err.Error(), "check identity")
}

func TestRunLostElement(t *testing.T) {
	checks := []check.Check{
		{
			Name: "drop",
			Sort: func(in []int) ([]int, func(a, b int) bool) {
				return []int{1, 2, 3}, cmp.Less[int]
			},
		},
	}

	err := check.Run(checks)
	require.Error(t, err)
	assert.NotEqual(t, check.ErrUnsorted, errors.Cause(err))
	assert.Contains(t, err.Error(), "not a permutation")
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	var ran []string
	mk := func(name string, sorted bool) check.Check {
		return check.Check{
			Name: name,
			Sort: func(in []int) ([]int, func(a, b int) bool) {
				ran = append(ran, name)
				if sorted {
					return check.All()[0].Sort(in)
				}
				return in, cmp.Less[int]
			},
		}
	}

	err := check.Run([]check.Check{mk("a", true), mk("b", false), mk("c", true)})
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestSampleIsFresh(t *testing.T) {
	s := check.Sample()
	s[0] = 99
	assert.Equal(t, 1, check.Sample()[0])
}

func TestValueCheckKeepsElements(t *testing.T) {
	value := check.All()[0]
	require.Equal(t, "value", value.Name)

	l := list.From(check.Sample()...)
	elements := slices.Collect(l.Elements())

	out, less := value.Sort(check.Sample())
	assert.Equal(t, []int{1, 1, 2, 4, 5, 5, 8, 12, 15, 104}, out)
	assert.True(t, less(1, 2))

	// Writing values back through the slots leaves the element order alone.
	patience.SortRange(l.Slots())
	assert.Equal(t, elements, slices.Collect(l.Elements()))
	assert.Equal(t, out, l.Values())
}
