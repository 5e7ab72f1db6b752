package metrics

import (
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
	Histogram
)

// Metric represents a single metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue represents the value of a metric
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics. It is safe for concurrent use.
type Registry struct {
	metrics map[string]Metric
	values  map[string][]MetricValue
	mu      sync.RWMutex
	now     func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the function stamping recorded values. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string][]MetricValue),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register declares a metric. Values recorded under an unregistered name, or
// with the wrong type, are dropped.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

func (r *Registry) RecordCounter(name string, value float64, labels map[string]string) {
	r.record(name, Counter, value, labels, true)
}

func (r *Registry) RecordHistogram(name string, value float64, labels map[string]string) {
	r.record(name, Histogram, value, labels, true)
}

// RecordGauge replaces the previous value of a gauge.
func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.record(name, Gauge, value, labels, false)
}

func (r *Registry) record(name string, typ MetricType, value float64, labels map[string]string, keep bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	metric, ok := r.metrics[name]
	if !ok || metric.Type != typ {
		return
	}
	v := MetricValue{
		Value:     value,
		Timestamp: r.now(),
		Labels:    labels,
	}
	if keep {
		r.values[name] = append(r.values[name], v)
	} else {
		r.values[name] = []MetricValue{v}
	}
}

func (r *Registry) GetMetrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue)
	for name, values := range r.values {
		result[name] = append([]MetricValue{}, values...)
	}
	return result
}

// Sum adds up every value recorded under name whose labels include match.
func (r *Registry) Sum(name string, match map[string]string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, v := range r.values[name] {
		if matches(v.Labels, match) {
			total += v.Value
		}
	}
	return total
}

func matches(labels, match map[string]string) bool {
	for k, want := range match {
		if labels[k] != want {
			return false
		}
	}
	return true
}
