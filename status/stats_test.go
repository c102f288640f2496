package status

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestMetricMapStablePointers(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	a := m.Get("x")
	a.Add(3)
	assert.Same(t, a, m.Get("x"))
	assert.Equal(t, int64(3), m.Get("x").Load())
	assert.True(t, m.Has("x"))
	assert.False(t, m.Has("y"))
	assert.Equal(t, 1, m.Count())
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(name string, _ *AtomicFloat) { keys = append(keys, name) })
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("hits").Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1600), m.Get("hits").Load())
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	assert.Zero(t, f.Get())
	f.Set(1.5)
	assert.Equal(t, 2.0, f.Add(0.5))
	assert.Equal(t, 2.0, f.Get())
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Empty(t, s.Load())
	s.Store("enemy_grounded")
	assert.Equal(t, "enemy_grounded", s.Load())
	s.Store("abcdefghijklmnopqrstuvwxyz")
	assert.Len(t, s.Load(), MaxLabelLen)
}

func TestStats(t *testing.T) {
	s, err := New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	s.Add(ctx, PlayerFires, 1)
	s.Add(ctx, PlayerFires, 2)
	s.Add(ctx, "custom", 1)
	s.Add(ctx, EnemyHits, 0)

	assert.Equal(t, int64(3), s.Count(PlayerFires))
	assert.Equal(t, int64(1), s.Count("custom"))

	counters := s.Counters()
	assert.Equal(t, int64(3), counters[PlayerFires])
	assert.Contains(t, counters, EnemyGrounded, "known counters are registered up front")
	assert.Zero(t, counters[EnemyHits])

	s.SetGauge(FrameNumber, 42)
	assert.Equal(t, 42.0, s.Gauge(FrameNumber))

	s.SetLabel(LastEvent, "enemy_hit")
	assert.Equal(t, "enemy_hit", s.Label(LastEvent))
	assert.GreaterOrEqual(t, s.Registry().TotalCount(), len(counterDescriptions)+2)
}

func TestStatsGlobalMeter(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	s.Add(context.Background(), EnemyDown, 1)
	assert.Equal(t, int64(1), s.Count(EnemyDown))
}

type namedInt64Gauge struct {
	metric.Int64ObservableGauge
	name string
}

type namedFloat64Gauge struct {
	metric.Float64ObservableGauge
	name string
}

// recordingMeter names its observable gauges and keeps registered callbacks
type recordingMeter struct {
	metric.Meter
	callbacks   []metric.Callback
	instruments []string
}

func newRecordingMeter() *recordingMeter {
	return &recordingMeter{Meter: noop.NewMeterProvider().Meter("test")}
}

func (m *recordingMeter) Int64ObservableGauge(name string, _ ...metric.Int64ObservableGaugeOption) (metric.Int64ObservableGauge, error) {
	return namedInt64Gauge{name: name}, nil
}

func (m *recordingMeter) Float64ObservableGauge(name string, _ ...metric.Float64ObservableGaugeOption) (metric.Float64ObservableGauge, error) {
	return namedFloat64Gauge{name: name}, nil
}

func (m *recordingMeter) RegisterCallback(f metric.Callback, instruments ...metric.Observable) (metric.Registration, error) {
	m.callbacks = append(m.callbacks, f)
	for _, inst := range instruments {
		switch g := inst.(type) {
		case namedInt64Gauge:
			m.instruments = append(m.instruments, g.name)
		case namedFloat64Gauge:
			m.instruments = append(m.instruments, g.name)
		}
	}
	return noop.Registration{}, nil
}

func (m *recordingMeter) collect(t *testing.T) (map[string]int64, map[string]float64) {
	t.Helper()
	o := &recordingObserver{ints: map[string]int64{}, floats: map[string]float64{}}
	for _, cb := range m.callbacks {
		require.NoError(t, cb(context.Background(), o))
	}
	return o.ints, o.floats
}

type recordingObserver struct {
	metric.Observer
	ints   map[string]int64
	floats map[string]float64
}

func (o *recordingObserver) ObserveInt64(obs metric.Int64Observable, v int64, _ ...metric.ObserveOption) {
	if g, ok := obs.(namedInt64Gauge); ok {
		o.ints[g.name] = v
	}
}

func (o *recordingObserver) ObserveFloat64(obs metric.Float64Observable, v float64, _ ...metric.ObserveOption) {
	if g, ok := obs.(namedFloat64Gauge); ok {
		o.floats[g.name] = v
	}
}

func TestFrameGaugesObserved(t *testing.T) {
	m := newRecordingMeter()
	s, err := New(m)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{FrameNumber, FrameDelta}, m.instruments)

	s.SetGauge(FrameNumber, 42)
	s.SetGauge(FrameDelta, 0.016)

	ints, floats := m.collect(t)
	assert.Equal(t, int64(42), ints[FrameNumber])
	assert.InDelta(t, 0.016, floats[FrameDelta], 1e-12)

	s.SetGauge(FrameDelta, 0.02)
	_, floats = m.collect(t)
	assert.InDelta(t, 0.02, floats[FrameDelta], 1e-12)
}
