// Package actor defines game entities that update once per frame and exchange
// notifications through an observer channel
package actor

import (
	"github.com/pipejesus/chill-out/event"
)

// Actor is an entity advanced by the frame loop and notified by subjects it observes
// Implementations must be pointer types: observer identity is interface equality
type Actor interface {
	// Update advances the actor by dt seconds; elapsed is seconds since world start
	Update(dt, elapsed float64)

	// OnNotify receives a notification broadcast by source
	OnNotify(source Actor, n event.Notification)
}

// Subject is implemented by actors that broadcast notifications
type Subject interface {
	AddObserver(o Actor) *Subscription
	RemoveObserver(o Actor)
}
