package bench

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureUnsorted(t *testing.T) {
	identity := onSlice("identity", func([]int) {})

	_, err := measure(identity, 64, Config{Iterations: 1, Seed: 1})
	require.Error(t, err)
	assert.Equal(t, ErrUnsorted, errors.Cause(err))
	assert.Contains(t, err.Error(), "bug")
	assert.Contains(t, err.Error(), "identity n=64")
}

func TestMeasureShufflesPerIteration(t *testing.T) {
	var seen []int
	probe := Algorithm{
		Name: "probe",
		Run: func(perm []int) (time.Duration, error) {
			seen = append(seen, perm...)
			return time.Microsecond, nil
		},
	}

	r, err := measure(probe, 32, Config{Iterations: 3, Seed: 5})
	require.NoError(t, err)
	assert.Equal(t, time.Microsecond, r.PerOp)
	require.Len(t, seen, 96)
	assert.NotEqual(t, seen[:32], seen[32:64])

	again, err := measure(Algorithm{Name: "again", Run: func(perm []int) (time.Duration, error) {
		assert.Equal(t, seen[:32], perm)
		return 0, errors.New("stop")
	}}, 32, Config{Iterations: 1, Seed: 5})
	assert.Error(t, err)
	assert.Zero(t, again)
}
