package core

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned when a ring buffer is constructed with fewer than 2 slots
var ErrCapacity = errors.New("ring buffer capacity must be at least 2")

// RingBuffer is a fixed-capacity circular FIFO queue
// One slot is always kept empty so head == tail means empty and
// (tail+1) mod N == head means full, usable capacity is N-1
//
// Overflow: Push on a full buffer drops the new item, unread items are never overwritten
// Thread-Safety: none, owned by a single producer/consumer pair on the frame loop
type RingBuffer[T any] struct {
	storage []T
	head    int // Read index
	tail    int // Write index
}

// NewRingBuffer allocates a ring buffer with the given slot count
func NewRingBuffer[T any](capacity int) (*RingBuffer[T], error) {
	if capacity < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrCapacity, capacity)
	}
	return &RingBuffer[T]{
		storage: make([]T, capacity),
	}, nil
}

// MustRingBuffer is NewRingBuffer for compile-time capacities
func MustRingBuffer[T any](capacity int) *RingBuffer[T] {
	rb, err := NewRingBuffer[T](capacity)
	if err != nil {
		panic(err)
	}
	return rb
}

// Push appends item at the tail
// Returns false and leaves the buffer unchanged when full
func (rb *RingBuffer[T]) Push(item T) bool {
	next := (rb.tail + 1) % len(rb.storage)
	if next == rb.head {
		return false
	}
	rb.storage[rb.tail] = item
	rb.tail = next
	return true
}

// Pop removes and returns the item at the head
// Returns the zero value and false when empty
func (rb *RingBuffer[T]) Pop() (T, bool) {
	var zero T
	if rb.head == rb.tail {
		return zero, false
	}
	item := rb.storage[rb.head]
	rb.storage[rb.head] = zero // Release references held by the slot
	rb.head = (rb.head + 1) % len(rb.storage)
	return item, true
}

// Peek returns the head item without removing it
func (rb *RingBuffer[T]) Peek() (T, bool) {
	if rb.head == rb.tail {
		var zero T
		return zero, false
	}
	return rb.storage[rb.head], true
}

// Len returns the number of unread items
func (rb *RingBuffer[T]) Len() int {
	n := len(rb.storage)
	return (rb.tail - rb.head + n) % n
}

// Cap returns the usable capacity (slots - 1)
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.storage) - 1
}

// IsEmpty reports head == tail
func (rb *RingBuffer[T]) IsEmpty() bool {
	return rb.head == rb.tail
}

// IsFull reports whether the next Push would be dropped
func (rb *RingBuffer[T]) IsFull() bool {
	return (rb.tail+1)%len(rb.storage) == rb.head
}

// Reset discards all unread items
func (rb *RingBuffer[T]) Reset() {
	clear(rb.storage)
	rb.head = 0
	rb.tail = 0
}
