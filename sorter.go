package patience

import (
	stdlist "container/list"
	"iter"

	"github.com/convox/logger"
	"github.com/pavelkryukov/patience-sorting/list"
	"github.com/pavelkryukov/patience-sorting/metrics"
)

// Strategy names the way a sort call reorders its input.
type Strategy string

const (
	// StrategyValue copies values into piles and writes them back.
	StrategyValue Strategy = "value"
	// StrategySplice relinks list elements and never copies them.
	StrategySplice Strategy = "splice"
)

// Metric names recorded by a Sorter configured WithMetrics, labelled by strategy.
const (
	MetricSorts    = "patience_sorts_total"
	MetricElements = "patience_elements_total"
	MetricPiles    = "patience_piles"
)

// Sorter sorts by a fixed strict ordering. A Sorter holds no per-call state
// and may be used from several goroutines, as long as each call gets its own
// input.
type Sorter[E any] struct {
	less func(a, b E) bool
	opts options
}

// New returns a Sorter ordering values by less, which must be a strict weak
// ordering.
func New[E any](less func(a, b E) bool, opts ...Option) *Sorter[E] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.metrics != nil {
		registerMetrics(o.metrics)
	}

	return &Sorter[E]{less: less, opts: o}
}

func registerMetrics(r *metrics.Registry) {
	r.Register(metrics.Metric{
		Name:        MetricSorts,
		Type:        metrics.Counter,
		Description: "Total number of sort calls",
	})
	r.Register(metrics.Metric{
		Name:        MetricElements,
		Type:        metrics.Counter,
		Description: "Total number of elements sorted",
	})
	r.Register(metrics.Metric{
		Name:        MetricPiles,
		Type:        metrics.Histogram,
		Description: "Piles built per sort call",
	})
}

// Range sorts the values behind r with the value strategy. r is walked twice:
// once to read every value, then once to write the sorted values back.
func (s *Sorter[E]) Range(r iter.Seq[*E]) {
	log := s.start()
	n, piles := sortValues(r, s.less, s.opts.frontier)
	s.done(log, StrategyValue, n, piles)
}

// Slice sorts x with the value strategy.
func (s *Sorter[E]) Slice(x []E) {
	s.Range(Slots(x))
}

// Splice sorts the whole of l by relinking its elements.
func (s *Sorter[E]) Splice(l Splicer[E]) {
	s.SpliceRange(l, l.Front(), nil)
}

// SpliceRange sorts the elements of l from first up to, not including, end by
// relinking them. A nil end means the back of the list. end must be reachable
// from first.
func (s *Sorter[E]) SpliceRange(l Splicer[E], first, end *list.Element[E]) {
	log := s.start()
	n, piles := sortLinks(first, end, links[E, *list.Element[E]]{
		next:  (*list.Element[E]).Next,
		value: func(e *list.Element[E]) E { return e.Value },
		moveBefore: func(e, mark *list.Element[E]) {
			if mark == nil {
				l.MoveToBack(e)
				return
			}
			l.MoveBefore(e, mark)
		},
	}, s.less, s.opts.frontier)
	s.done(log, StrategySplice, n, piles)
}

// List sorts a container/list by relinking its elements. Element values must
// hold an E; any other value compares as the zero E.
func (s *Sorter[E]) List(l *stdlist.List) {
	log := s.start()
	n, piles := sortLinks(l.Front(), nil, links[E, *stdlist.Element]{
		next: (*stdlist.Element).Next,
		value: func(e *stdlist.Element) E {
			v, _ := e.Value.(E)
			return v
		},
		moveBefore: func(e, mark *stdlist.Element) {
			if mark == nil {
				l.MoveToBack(e)
				return
			}
			l.MoveBefore(e, mark)
		},
	}, s.less, s.opts.frontier)
	s.done(log, StrategySplice, n, piles)
}

// Sort relinks the elements of c when it is a Splicer and sorts its values in
// place otherwise.
func (s *Sorter[E]) Sort(c Container[E]) {
	if l, ok := c.(Splicer[E]); ok {
		s.Splice(l)
		return
	}
	s.Range(c.Slots())
}

func (s *Sorter[E]) start() *logger.Logger {
	if s.opts.logger == nil {
		return nil
	}
	return s.opts.logger.At("sort").Start()
}

func (s *Sorter[E]) done(log *logger.Logger, strategy Strategy, n, piles int) {
	if log != nil {
		log.Logf("strategy=%s frontier=%s elements=%d piles=%d", strategy, s.opts.frontier, n, piles)
	}
	if r := s.opts.metrics; r != nil {
		labels := map[string]string{"strategy": string(strategy)}
		r.RecordCounter(MetricSorts, 1, labels)
		r.RecordCounter(MetricElements, float64(n), labels)
		r.RecordHistogram(MetricPiles, float64(piles), labels)
	}
}
