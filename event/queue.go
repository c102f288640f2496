package event

import (
	"github.com/pipejesus/chill-out/core"
	"github.com/pipejesus/chill-out/parameter"
)

// EventQueue carries cross-actor notifications from the actors that emit them to
// the world, which drains it once per frame
// Thread-Safety: single producer/consumer on the frame loop
//
// Overflow: new notifications are dropped when full, Dropped counts them
type EventQueue struct {
	buf     *core.RingBuffer[Notification]
	dropped uint64
}

// NewEventQueue creates a queue with parameter.EventQueueSize slots
func NewEventQueue() *EventQueue {
	return NewEventQueueSize(parameter.EventQueueSize)
}

// NewEventQueueSize creates a queue with an explicit slot count (minimum 2)
func NewEventQueueSize(size int) *EventQueue {
	return &EventQueue{
		buf: core.MustRingBuffer[Notification](size),
	}
}

// Push enqueues n, returns false if the queue was full
func (eq *EventQueue) Push(n Notification) bool {
	if !eq.buf.Push(n) {
		eq.dropped++
		return false
	}
	return true
}

// Pop dequeues the oldest notification
func (eq *EventQueue) Pop() (Notification, bool) {
	return eq.buf.Pop()
}

// Drain pops every pending notification in FIFO order and returns the count
func (eq *EventQueue) Drain(fn func(Notification)) int {
	n := 0
	for {
		ev, ok := eq.buf.Pop()
		if !ok {
			return n
		}
		fn(ev)
		n++
	}
}

// Len returns the pending count
func (eq *EventQueue) Len() int {
	return eq.buf.Len()
}

// Dropped returns the number of notifications rejected on overflow
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
