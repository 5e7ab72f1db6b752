package patience

import (
	"github.com/convox/logger"
	"github.com/pavelkryukov/patience-sorting/frontier"
	"github.com/pavelkryukov/patience-sorting/metrics"
)

// options defines all configuration options for a Sorter.
type options struct {
	frontier frontier.Kind     // Structure selecting the next pile during the merge
	logger   *logger.Logger    // Receives one line per sort when set
	metrics  *metrics.Registry // Receives per-sort counters when set
}

// Option is a function that configures a Sorter.
type Option func(*options)

// WithFrontier sets the merge frontier implementation.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *options) {
		o.frontier = kind
	}
}

// WithLogger logs every sort call: strategy, element and pile counts, elapsed time.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records every sort call in the registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) {
		o.metrics = r
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		frontier: frontier.Heap,
	}
}
