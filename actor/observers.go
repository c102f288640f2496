package actor

import (
	"slices"

	"github.com/pipejesus/chill-out/event"
)

// Observers is a per-entity registry of observer references
// References are non-owning; a Subscription handle removes its observer on Release,
// callers release before the observer is torn down
// Thread-Safety: none, mutated and notified on the frame loop only
type Observers struct {
	list []Actor
}

// Subscription is the handle returned by AddObserver
type Subscription struct {
	owner    *Observers
	observer Actor
	released bool
}

// Release removes the observer from the channel, repeated calls are no-ops
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.owner.RemoveObserver(s.observer)
}

// Released reports whether Release was called
func (s *Subscription) Released() bool {
	return s.released
}

// AddObserver registers o if not already present
// Always returns a handle; releasing any handle for o removes o
func (c *Observers) AddObserver(o Actor) *Subscription {
	if o != nil && !c.Contains(o) {
		c.list = append(c.list, o)
	}
	return &Subscription{owner: c, observer: o}
}

// RemoveObserver unregisters o, no-op if absent
func (c *Observers) RemoveObserver(o Actor) {
	idx := slices.Index(c.list, o)
	if idx < 0 {
		return
	}
	c.list = slices.Delete(c.list, idx, idx+1)
}

// Contains reports whether o is registered
func (c *Observers) Contains(o Actor) bool {
	return slices.Contains(c.list, o)
}

// Len returns the observer count
func (c *Observers) Len() int {
	return len(c.list)
}

// Notify synchronously calls OnNotify(source, n) on every observer in registration order
// Observers added or removed during the broadcast take effect on the next Notify
func (c *Observers) Notify(source Actor, n event.Notification) {
	if len(c.list) == 0 {
		return
	}
	snapshot := slices.Clone(c.list)
	for _, o := range snapshot {
		o.OnNotify(source, n)
	}
}
