// Package command holds deferred player actions
// An input handler enqueues a Command when it observes a discrete activation, the owning
// actor dequeues and invokes at most one per frame
package command

import (
	"github.com/pipejesus/chill-out/core"
	"github.com/pipejesus/chill-out/parameter"
)

// Action is the bound behavior a command executes
type Action func(payload any)

// Command pairs an action with its optional payload
type Command struct {
	Name    string // For logging and journaling
	Action  Action
	Payload any
}

// Invoke runs the bound action, a nil action is a no-op
func (c Command) Invoke() {
	if c.Action == nil {
		return
	}
	c.Action(c.Payload)
}

// Queue is the per-player command ring buffer
// Owned by exactly one producer (input handling) and one consumer (the player update)
type Queue struct {
	buf     *core.RingBuffer[Command]
	dropped uint64
}

// NewQueue creates a queue with parameter.CommandQueueSize slots
func NewQueue() *Queue {
	return NewQueueSize(parameter.CommandQueueSize)
}

// NewQueueSize creates a queue with an explicit slot count (minimum 2)
func NewQueueSize(size int) *Queue {
	return &Queue{
		buf: core.MustRingBuffer[Command](size),
	}
}

// Push enqueues c, returns false and counts a drop when full
func (q *Queue) Push(c Command) bool {
	if !q.buf.Push(c) {
		q.dropped++
		return false
	}
	return true
}

// Pop dequeues the oldest command
func (q *Queue) Pop() (Command, bool) {
	return q.buf.Pop()
}

// Len returns the pending count
func (q *Queue) Len() int {
	return q.buf.Len()
}

// Dropped returns the number of commands rejected on overflow
func (q *Queue) Dropped() uint64 {
	return q.dropped
}
