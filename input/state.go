package input

import (
	"github.com/pipejesus/chill-out/core"
	"github.com/pipejesus/chill-out/parameter"
)

// State normalizes press/release edges for the five logical buttons
// It keeps the current held/timestamp state per button and a bounded read-once history
// of discrete activations
// Thread-Safety: none, fed by Pump on the frame loop
type State struct {
	buttons [buttonCount]ButtonState
	history *core.RingBuffer[ButtonID]
	dropped uint64
}

// NewState creates an input state with parameter.InputHistorySize history slots
func NewState() *State {
	return &State{
		history: core.MustRingBuffer[ButtonID](parameter.InputHistorySize),
	}
}

// Press marks b held at timestamp ts and records the activation in history
// A full history drops the new activation
func (s *State) Press(b ButtonID, ts float64) {
	if !b.Valid() {
		return
	}
	s.buttons[b] = ButtonState{Pressed: true, Timestamp: ts}
	if !s.history.Push(b) {
		s.dropped++
	}
}

// Release marks b not held; history is untouched
func (s *State) Release(b ButtonID) {
	if !b.Valid() {
		return
	}
	s.buttons[b] = ButtonState{}
}

// Button returns the current state of b, zero value for unknown ids
func (s *State) Button(b ButtonID) ButtonState {
	if !b.Valid() {
		return ButtonState{}
	}
	return s.buttons[b]
}

// LastButton pops the oldest unread activation
// Each activation is returned once; ok is false when history is empty
func (s *State) LastButton() (ButtonID, bool) {
	return s.history.Pop()
}

// Dropped returns the number of activations lost to a full history
func (s *State) Dropped() uint64 {
	return s.dropped
}

// Apply folds a button edge into the state
// Returns false for events that are not button edges
func (s *State) Apply(ev Event) bool {
	switch ev.Kind {
	case KindPress:
		s.Press(ev.Button, ev.Time)
		return true
	case KindRelease:
		s.Release(ev.Button)
		return true
	}
	return false
}

// Pump drains every event currently pending on src without blocking
// Button edges are applied, other events are passed to other (may be nil)
// Returns the number of events consumed
func (s *State) Pump(src Source, other func(Event)) int {
	if src == nil {
		return 0
	}
	ch := src.Events()
	n := 0
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return n
			}
			n++
			if !s.Apply(ev) && other != nil {
				other(ev)
			}
		default:
			return n
		}
	}
}
