package event

import (
	"github.com/pipejesus/chill-out/vmath"
)

// Notification is the tagged record passed from a subject to its observers
// Frame is stamped by the world when the notification is queued
type Notification struct {
	Type    EventType `json:"type"`
	Origin  string    `json:"origin"` // Emitting entity name
	Frame   int64     `json:"frame"`
	Payload any       `json:"payload,omitempty"`
}

// FirePayload carries the aim ray captured when the fire command executed
type FirePayload struct {
	Ray vmath.Ray `json:"ray"`
}

// HitPayload describes damage applied to an enemy
type HitPayload struct {
	Position vmath.Vec3F `json:"position"`
	Damage   float64     `json:"damage"`
	Health   float64     `json:"health"`
}

// PositionPayload carries a single world position
type PositionPayload struct {
	Position vmath.Vec3F `json:"position"`
}
