// Package status keeps the game's counters and gauges
// Values live in lock-free atomics read by the HUD; counters are mirrored to
// OpenTelemetry instruments, which are no-ops unless an SDK provider is installed
package status

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/pipejesus/chill-out/status"

// Counter names
const (
	PlayerFires    = "player.fires"
	InputDropped   = "input.dropped"
	CommandDropped = "command.dropped"
	EventDropped   = "event.dropped"
	EnemyHits      = "enemy.hits"
	EnemyDown      = "enemy.down"
	EnemyGrounded  = "enemy.grounded"
)

// Gauge names
const (
	FrameNumber = "frame.number"
	FrameDelta  = "frame.dt"
)

// Label names
const (
	LastEvent = "event.last"
)

var counterDescriptions = map[string]string{
	PlayerFires:    "Fire commands executed",
	InputDropped:   "Button activations lost to a full input history",
	CommandDropped: "Fire commands lost to a full command queue",
	EventDropped:   "Notifications lost to a full event queue",
	EnemyHits:      "Shots that hit an enemy",
	EnemyDown:      "Enemies shot down",
	EnemyGrounded:  "Enemies that reached the floor",
}

// Registry groups the metric maps by value type
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
	Labels   *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
		Labels:   NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics of every type
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Labels.Count()
}

// Stats is the frame loop's metrics facade
type Stats struct {
	reg      *Registry
	counters map[string]metric.Int64Counter
	frame    metric.Int64ObservableGauge
	dt       metric.Float64ObservableGauge
}

// New registers instruments on meter; nil uses the global provider
func New(meter metric.Meter) (*Stats, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	s := &Stats{
		reg:      NewRegistry(),
		counters: make(map[string]metric.Int64Counter, len(counterDescriptions)),
	}

	for name, desc := range counterDescriptions {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", name, err)
		}
		s.counters[name] = c
		s.reg.Counters.Get(name)
	}

	var err error
	s.frame, err = meter.Int64ObservableGauge(
		FrameNumber,
		metric.WithDescription("Frames simulated since start"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame gauge: %w", err)
	}

	s.dt, err = meter.Float64ObservableGauge(
		FrameDelta,
		metric.WithDescription("Seconds simulated by the last frame"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame delta gauge: %w", err)
	}

	frame := s.reg.Gauges.Get(FrameNumber)
	dt := s.reg.Gauges.Get(FrameDelta)
	_, err = meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(s.frame, int64(frame.Get()))
			o.ObserveFloat64(s.dt, dt.Get())
			return nil
		},
		s.frame, s.dt,
	)
	if err != nil {
		return nil, fmt.Errorf("registering frame callback: %w", err)
	}

	return s, nil
}

// Registry exposes the backing atomics
func (s *Stats) Registry() *Registry {
	return s.reg
}

// Add increments a counter; unknown names are tracked locally only
func (s *Stats) Add(ctx context.Context, name string, n int64) {
	if n == 0 {
		return
	}
	s.reg.Counters.Get(name).Add(n)
	if c, ok := s.counters[name]; ok {
		c.Add(ctx, n)
	}
}

func (s *Stats) Count(name string) int64 {
	return s.reg.Counters.Get(name).Load()
}

func (s *Stats) SetGauge(name string, v float64) {
	s.reg.Gauges.Get(name).Set(v)
}

func (s *Stats) Gauge(name string) float64 {
	return s.reg.Gauges.Get(name).Get()
}

func (s *Stats) SetLabel(name, v string) {
	s.reg.Labels.Get(name).Store(v)
}

func (s *Stats) Label(name string) string {
	return s.reg.Labels.Get(name).Load()
}

// Counters copies every counter value
func (s *Stats) Counters() map[string]int64 {
	out := make(map[string]int64, s.reg.Counters.Count())
	s.reg.Counters.Range(func(name string, v *atomic.Int64) {
		out[name] = v.Load()
	})
	return out
}
