package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	// One update pass runs per rendered frame
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFrameRate is the frame rate used when config does not set one
	DefaultFrameRate = 60

	// MaxFrameDelta clamps dt after a stall (debugger, suspended terminal)
	MaxFrameDelta = 250 * time.Millisecond
)

// Queue capacities
// Ring buffers keep one slot empty, usable capacity is N-1
const (
	// EventQueueSize is the capacity of the world event queue
	EventQueueSize = 20

	// CommandQueueSize is the capacity of the player command queue
	CommandQueueSize = 20

	// InputHistorySize is the capacity of the discrete activation history
	// Two unread activations fit, a third is dropped
	InputHistorySize = 3

	// InputEventBuffer is the channel depth between input sources and the frame loop
	InputEventBuffer = 256
)
