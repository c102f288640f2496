package audio

import (
	"time"

	"github.com/pipejesus/chill-out/event"
	"github.com/pipejesus/chill-out/parameter"
)

// Cue is a sound effect tied to a game event
type Cue uint8

const (
	CueFire Cue = iota // Player shot
	CueHit             // Shot connected
	CueFall            // Enemy going down
	CueLand            // Enemy hit the floor
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueHit:
		return "hit"
	case CueFall:
		return "fall"
	case CueLand:
		return "land"
	}
	return "unknown"
}

// Duration returns the cue length
func (c Cue) Duration() time.Duration {
	switch c {
	case CueFire:
		return parameter.AudioFireDuration
	case CueHit:
		return parameter.AudioHitDuration
	case CueFall:
		return parameter.AudioFallDuration
	case CueLand:
		return parameter.AudioLandDuration
	}
	return 0
}

// CueFor maps a notification type to its cue, ok is false for silent events
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.EventPlayerFire:
		return CueFire, true
	case event.EventEnemyHit:
		return CueHit, true
	case event.EventEnemyDown:
		return CueFall, true
	case event.EventEnemyGrounded:
		return CueLand, true
	}
	return 0, false
}
