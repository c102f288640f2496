package input

// EventKind classifies events delivered by a Source
type EventKind uint8

const (
	KindPress   EventKind = iota // Button went down
	KindRelease                  // Button went up
	KindLook                     // Camera look delta, not a button
	KindQuit                     // User asked to leave
)

// Event is one raw edge from an input source
type Event struct {
	Kind   EventKind
	Button ButtonID
	Time   float64 // Platform clock in milliseconds

	// Look deltas in radians, KindLook only
	Yaw   float64
	Pitch float64
}

// Source is the capability "can deliver button edge events"
// The channel is read by the frame loop; producers run on their own goroutine
// and must not block on a full channel
type Source interface {
	Events() <-chan Event
}

// ScriptedSource is an in-memory Source for tests and headless runs
type ScriptedSource struct {
	ch chan Event
}

// NewScriptedSource creates a source with the given channel depth
func NewScriptedSource(depth int) *ScriptedSource {
	return &ScriptedSource{ch: make(chan Event, depth)}
}

// Events implements Source
func (s *ScriptedSource) Events() <-chan Event {
	return s.ch
}

// Send enqueues ev, returns false if the channel is full
func (s *ScriptedSource) Send(ev Event) bool {
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// Press sends a press edge
func (s *ScriptedSource) Press(b ButtonID, ts float64) bool {
	return s.Send(Event{Kind: KindPress, Button: b, Time: ts})
}

// Release sends a release edge
func (s *ScriptedSource) Release(b ButtonID, ts float64) bool {
	return s.Send(Event{Kind: KindRelease, Button: b, Time: ts})
}

// Close ends the stream
func (s *ScriptedSource) Close() {
	close(s.ch)
}
