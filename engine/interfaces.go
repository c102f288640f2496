package engine

import "github.com/pipejesus/chill-out/event"

// Renderer draws a finished frame and never writes back into the world
type Renderer interface {
	Render(s Snapshot) error
}

// SoundSink plays a cue for a drained notification
type SoundSink interface {
	Play(n event.Notification)
}

// Recorder persists drained notifications
type Recorder interface {
	Record(frame int64, n event.Notification) error
}
