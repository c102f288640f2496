package engine

import "time"

// TimeProvider is the clock the frame loop reads
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock; time.Now carries a monotonic reading
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
