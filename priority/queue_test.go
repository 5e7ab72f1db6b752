package priority_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/pavelkryukov/patience-sorting/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	tests := []struct {
		name     string
		ops      []operation
		wantLen  int
		wantPeek *int
		wantKey  int
	}{
		{
			name: "basic min heap operations",
			ops: []operation{
				{opType: opSet, key: 0, value: 5},
				{opType: opSet, key: 1, value: 3},
				{opType: opSet, key: 2, value: 7},
			},
			wantLen:  3,
			wantPeek: ptr(3),
			wantKey:  1,
		},
		{
			name: "update existing key",
			ops: []operation{
				{opType: opSet, key: 0, value: 5},
				{opType: opSet, key: 0, value: 2},
			},
			wantLen:  1,
			wantPeek: ptr(2),
			wantKey:  0,
		},
		{
			name: "update moves key down",
			ops: []operation{
				{opType: opSet, key: 0, value: 1},
				{opType: opSet, key: 1, value: 4},
				{opType: opSet, key: 0, value: 9},
			},
			wantLen:  2,
			wantPeek: ptr(4),
			wantKey:  1,
		},
		{
			name: "remove operations",
			ops: []operation{
				{opType: opSet, key: 0, value: 5},
				{opType: opSet, key: 1, value: 3},
				{opType: opSet, key: 2, value: 7},
				{opType: opRemove, key: 1},
			},
			wantLen:  2,
			wantPeek: ptr(5),
			wantKey:  0,
		},
		{
			name: "remove missing key",
			ops: []operation{
				{opType: opSet, key: 0, value: 5},
				{opType: opRemove, key: 4},
			},
			wantLen:  1,
			wantPeek: ptr(5),
			wantKey:  0,
		},
		{
			name: "pop operations",
			ops: []operation{
				{opType: opSet, key: 0, value: 5},
				{opType: opSet, key: 1, value: 3},
				{opType: opSet, key: 2, value: 7},
				{opType: opPop},
				{opType: opPop},
			},
			wantLen:  1,
			wantPeek: ptr(7),
			wantKey:  2,
		},
		{
			name: "equal values prefer the lowest key",
			ops: []operation{
				{opType: opSet, key: 3, value: 1},
				{opType: opSet, key: 1, value: 1},
				{opType: opSet, key: 2, value: 1},
			},
			wantLen:  3,
			wantPeek: ptr(1),
			wantKey:  1,
		},
		{
			name: "empty queue operations",
			ops: []operation{
				{opType: opPop},
				{opType: opPeek},
			},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := priority.NewQueue[int, int](func(a, b int) bool {
				return a < b
			})

			for _, op := range tt.ops {
				switch op.opType {
				case opSet:
					pq.Set(op.key, op.value)
				case opRemove:
					pq.Remove(op.key)
				case opPop:
					_, _, _ = pq.Pop()
				case opPeek:
					_, _, _ = pq.Peek()
				}
			}

			assert.Equal(t, tt.wantLen, pq.Len())

			key, val, ok := pq.Peek()
			if tt.wantPeek == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, *tt.wantPeek, val)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestQueueGet(t *testing.T) {
	pq := priority.NewQueue[string, int](func(a, b int) bool { return a < b })
	pq.Set("a", 4)

	v, ok := pq.Get("a")
	require.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = pq.Get("b")
	assert.False(t, ok)
}

func TestQueueOrder(t *testing.T) {
	pq := priority.NewQueueSize[int, int](8, func(a, b int) bool {
		return a < b
	})

	input := []struct {
		key   int
		value int
	}{
		{0, 5},
		{1, 3},
		{2, 7},
		{3, 1},
		{4, 4},
		{5, 3},
	}

	for _, in := range input {
		pq.Set(in.key, in.value)
	}

	var keys, values []int
	for pq.Len() > 0 {
		k, v, ok := pq.Pop()
		require.True(t, ok)
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, []int{1, 3, 3, 4, 5, 7}, values)
	assert.Equal(t, []int{3, 1, 5, 4, 0, 2}, keys)
}

func TestQueueRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	pq := priority.NewQueue[int, int](func(a, b int) bool { return a < b })

	const n = 500
	for i := 0; i < n; i++ {
		pq.Set(i, r.Intn(50))
	}
	for i := 0; i < n/5; i++ {
		pq.Remove(r.Intn(n))
	}

	var lastKey, lastValue int
	for first := true; pq.Len() > 0; first = false {
		k, v, _ := pq.Pop()
		if !first {
			require.False(t, v < lastValue, "value %d popped after %d", v, lastValue)
			if v == lastValue {
				require.Greater(t, k, lastKey)
			}
		}
		lastKey, lastValue = k, v
	}
}

func TestQueueTracksKeys(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	pq := priority.NewQueue[int, int](func(a, b int) bool { return a < b })
	model := map[int]int{}

	for i := 0; i < 2000; i++ {
		key := r.Intn(64)
		switch r.Intn(4) {
		case 0:
			pq.Remove(key)
			delete(model, key)
		case 1:
			k, v, ok := pq.Pop()
			if !ok {
				require.Empty(t, model)
				continue
			}
			for mk, mv := range model {
				require.False(t, mv < v || (mv == v && mk < k), "popped %d=%d before %d=%d", k, v, mk, mv)
			}
			delete(model, k)
		default:
			v := r.Intn(100)
			pq.Set(key, v)
			model[key] = v
		}

		require.Equal(t, len(model), pq.Len())
	}

	for k, want := range model {
		got, ok := pq.Get(k)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

type opType int

const (
	opSet opType = iota
	opRemove
	opPop
	opPeek
)

type operation struct {
	opType opType
	key    int
	value  int
}

func ptr(v int) *int { return &v }

func BenchmarkQueue(b *testing.B) {
	b.ReportAllocs()
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Replace_%d", size), func(b *testing.B) {
			pq := priority.NewQueueSize[int, int](size, func(a, b int) bool {
				return a < b
			})
			for i := 0; i < size; i++ {
				pq.Set(i, rand.Intn(10000))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				k, v, _ := pq.Peek()
				pq.Set(k, v+rand.Intn(100))
			}
		})

		b.Run(fmt.Sprintf("Pop_%d", size), func(b *testing.B) {
			pq := priority.NewQueueSize[int, int](size, func(a, b int) bool {
				return a < b
			})

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if pq.Len() == 0 {
					b.StopTimer()
					for j := 0; j < size; j++ {
						pq.Set(j, rand.Intn(10000))
					}
					b.StartTimer()
				}
				_, _, _ = pq.Pop()
			}
		})
	}
}
