package bench

import (
	"cmp"
	stdlist "container/list"
	"slices"
	"sort"
	"strings"
	"time"

	algosort "github.com/twmb/algoimpl/go/sort"

	patience "github.com/pavelkryukov/patience-sorting"
	"github.com/pavelkryukov/patience-sorting/frontier"
	"github.com/pavelkryukov/patience-sorting/list"
)

// Algorithm sorts a copy of a permutation and reports how long the sort
// itself took. Loading the input into a list is not timed.
type Algorithm struct {
	Name string
	Run  func(perm []int) (time.Duration, error)
}

// Algorithms returns the slice algorithms followed by the list algorithms.
// The patience ones merge through the given frontier.
func Algorithms(kind frontier.Kind) []Algorithm {
	s := patience.New(cmp.Less[int], patience.WithFrontier(kind))
	return []Algorithm{
		onSlice("patience/value", s.Slice),
		onList("patience/splice", func(l *list.List[int]) { s.Splice(l) }),
		onSlice("library", func(x []int) { slices.Sort(x) }),
		onSlice("mergesort", MergeSort[int]),
		onSlice("algoimpl/heapsort", func(x []int) { algosort.HeapSort(sort.IntSlice(x)) }),
		onList("list/patience", func(l *list.List[int]) { s.Sort(l) }),
		onStdList("list/container", s.List),
		onList("list/library", sortListByCopy),
	}
}

// Filter keeps the algorithms whose name contains only. An empty only keeps all.
func Filter(algs []Algorithm, only string) []Algorithm {
	if only == "" {
		return algs
	}
	var kept []Algorithm
	for _, a := range algs {
		if strings.Contains(a.Name, only) {
			kept = append(kept, a)
		}
	}
	return kept
}

func onSlice(name string, f func([]int)) Algorithm {
	return Algorithm{
		Name: name,
		Run: func(perm []int) (time.Duration, error) {
			x := slices.Clone(perm)
			start := time.Now()
			f(x)
			elapsed := time.Since(start)
			if !slices.IsSorted(x) {
				return 0, ErrUnsorted
			}
			return elapsed, nil
		},
	}
}

func onList(name string, f func(*list.List[int])) Algorithm {
	return Algorithm{
		Name: name,
		Run: func(perm []int) (time.Duration, error) {
			l := list.From(perm...)
			start := time.Now()
			f(l)
			elapsed := time.Since(start)
			if l.Len() != len(perm) || !patience.IsSorted(l.All(), cmp.Less[int]) {
				return 0, ErrUnsorted
			}
			return elapsed, nil
		},
	}
}

func onStdList(name string, f func(*stdlist.List)) Algorithm {
	return Algorithm{
		Name: name,
		Run: func(perm []int) (time.Duration, error) {
			l := stdlist.New()
			for _, v := range perm {
				l.PushBack(v)
			}
			start := time.Now()
			f(l)
			elapsed := time.Since(start)
			if l.Len() != len(perm) {
				return 0, ErrUnsorted
			}
			prev := -1
			for e := l.Front(); e != nil; e = e.Next() {
				v, _ := e.Value.(int)
				if v < prev {
					return 0, ErrUnsorted
				}
				prev = v
			}
			return elapsed, nil
		},
	}
}

// sortListByCopy is the list baseline: copy out, sort, write back in place.
func sortListByCopy(l *list.List[int]) {
	values := l.Values()
	slices.Sort(values)
	i := 0
	for p := range l.Slots() {
		*p = values[i]
		i++
	}
}
