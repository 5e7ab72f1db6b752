package metrics_test

import (
	"testing"
	"time"

	"github.com/pavelkryukov/patience-sorting/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "sorts", Type: metrics.Counter})
	r.Register(metrics.Metric{Name: "piles", Type: metrics.Histogram})
	r.Register(metrics.Metric{Name: "last", Type: metrics.Gauge})

	value := map[string]string{"strategy": "value"}
	splice := map[string]string{"strategy": "splice"}

	r.RecordCounter("sorts", 1, value)
	r.RecordCounter("sorts", 1, splice)
	r.RecordCounter("sorts", 1, value)
	r.RecordHistogram("piles", 4, value)
	r.RecordHistogram("piles", 6, value)
	r.RecordGauge("last", 10, nil)
	r.RecordGauge("last", 20, nil)

	assert.Equal(t, 3.0, r.Sum("sorts", nil))
	assert.Equal(t, 2.0, r.Sum("sorts", value))
	assert.Equal(t, 1.0, r.Sum("sorts", splice))
	assert.Equal(t, 10.0, r.Sum("piles", value))

	got := r.GetMetrics()
	require.Len(t, got["last"], 1)
	assert.Equal(t, 20.0, got["last"][0].Value)
	assert.Len(t, got["piles"], 2)
}

func TestRegistryDropsUnknown(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "sorts", Type: metrics.Counter})

	r.RecordCounter("missing", 1, nil)
	r.RecordGauge("sorts", 5, nil)
	r.RecordHistogram("sorts", 5, nil)

	assert.Empty(t, r.GetMetrics())
	assert.Zero(t, r.Sum("sorts", nil))
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "sorts", Type: metrics.Counter})
	r.RecordCounter("sorts", 1, nil)

	snap := r.GetMetrics()
	snap["sorts"][0].Value = 99
	assert.Equal(t, 1.0, r.Sum("sorts", nil))
}

func TestRegistryClock(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := start
	r := metrics.NewRegistry(metrics.WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}))
	r.Register(metrics.Metric{Name: "sorts", Type: metrics.Counter})
	r.Register(metrics.Metric{Name: "last", Type: metrics.Gauge})

	r.RecordCounter("sorts", 1, nil)
	r.RecordCounter("sorts", 1, nil)
	r.RecordGauge("last", 7, nil)
	r.RecordCounter("unknown", 1, nil)

	got := r.GetMetrics()
	require.Len(t, got["sorts"], 2)
	assert.Equal(t, start.Add(1*time.Second), got["sorts"][0].Timestamp)
	assert.Equal(t, start.Add(2*time.Second), got["sorts"][1].Timestamp)
	require.Len(t, got["last"], 1)
	assert.Equal(t, start.Add(3*time.Second), got["last"][0].Timestamp)
}

func TestRegistryDefaultClock(t *testing.T) {
	r := metrics.NewRegistry()
	r.Register(metrics.Metric{Name: "sorts", Type: metrics.Counter})

	before := time.Now()
	r.RecordCounter("sorts", 1, nil)
	after := time.Now()

	ts := r.GetMetrics()["sorts"][0].Timestamp
	assert.False(t, ts.Before(before))
	assert.False(t, ts.After(after))
}
