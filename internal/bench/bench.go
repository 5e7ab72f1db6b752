// Package bench times patience sort against baseline sorts over
// geometrically growing inputs.
package bench

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/convox/logger"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/pavelkryukov/patience-sorting/frontier"
)

// maxLog caps input sizes at 1<<maxLog elements.
const maxLog = 30

// ErrUnsorted is returned when an algorithm leaves its input unsorted.
var ErrUnsorted = errors.New("bug: output is not sorted")

// Config selects what to measure.
type Config struct {
	Min        int           // log2 of the smallest input
	Max        int           // log2 of the largest input
	Iterations int           // runs per algorithm and size
	Only       string        // keep algorithms whose name contains this
	Frontier   frontier.Kind // merge frontier of the patience algorithms
	Seed       int64         // first shuffle seed; iteration i uses Seed+i
}

// DefaultConfig returns the configuration used by `patience bench`.
func DefaultConfig() Config {
	return Config{
		Min:        0,
		Max:        18,
		Iterations: 5,
		Frontier:   frontier.Heap,
	}
}

// Validate reports a configuration that cannot be run.
func (c Config) Validate() error {
	switch {
	case c.Min < 0 || c.Max > maxLog:
		return errors.Errorf("bench: sizes must lie within 2^0..2^%d", maxLog)
	case c.Min > c.Max:
		return errors.Errorf("bench: min %d exceeds max %d", c.Min, c.Max)
	case c.Iterations < 1:
		return errors.New("bench: iterations must be positive")
	}
	return nil
}

// Sizes returns the input sizes, doubling from 1<<Min to 1<<Max.
func (c Config) Sizes() []int {
	var sizes []int
	for e := c.Min; e <= c.Max; e++ {
		sizes = append(sizes, 1<<e)
	}
	return sizes
}

// Result is the mean time of one algorithm at one size.
type Result struct {
	Algorithm string
	N         int
	PerOp     time.Duration
}

// PerNLogN divides the time per run by n·log2(n). It stays roughly flat
// across sizes for an O(n log n) sort.
func (r Result) PerNLogN() float64 {
	if r.N < 2 {
		return float64(r.PerOp)
	}
	n := float64(r.N)
	return float64(r.PerOp) / (n * math.Log2(n))
}

// Run measures every selected algorithm at every size. Measurements are
// logged to log and a progress bar is drawn on progress; either may be nil.
func Run(cfg Config, log *logger.Logger, progress io.Writer) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	algs := Filter(Algorithms(cfg.Frontier), cfg.Only)
	if len(algs) == 0 {
		return nil, errors.Errorf("bench: no algorithm matches %q", cfg.Only)
	}
	sizes := cfg.Sizes()

	var bar *pb.ProgressBar
	if progress != nil {
		bar = pb.New(len(algs) * len(sizes))
		bar.Output = progress
		bar.Prefix("Measuring... ")
		bar.ShowSpeed = false
		bar.Start()
		defer bar.Finish()
	}

	results := make([]Result, 0, len(algs)*len(sizes))
	for _, a := range algs {
		for _, n := range sizes {
			r, err := measure(a, n, cfg)
			if err != nil {
				return results, err
			}
			if log != nil {
				log.At("measure").Logf("algorithm=%s n=%d per_op=%s", a.Name, n, r.PerOp)
			}
			results = append(results, r)
			if bar != nil {
				bar.Increment()
			}
		}
	}
	return results, nil
}

func measure(a Algorithm, n int, cfg Config) (Result, error) {
	perm := make([]int, n)
	var total time.Duration
	for i := 0; i < cfg.Iterations; i++ {
		for j := range perm {
			perm[j] = j
		}
		r := rand.New(rand.NewSource(cfg.Seed + int64(i)))
		r.Shuffle(n, func(x, y int) { perm[x], perm[y] = perm[y], perm[x] })

		d, err := a.Run(perm)
		if err != nil {
			return Result{}, errors.Wrapf(err, "bench: %s n=%d", a.Name, n)
		}
		total += d
	}
	return Result{Algorithm: a.Name, N: n, PerOp: total / time.Duration(cfg.Iterations)}, nil
}
