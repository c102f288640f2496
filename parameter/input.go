package parameter

import "time"

// Terminal input
const (
	// InputHoldTimeout is how long a key counts as held after its last press or repeat
	// Terminals report no key release, so release is synthesized after this delay
	// Must exceed the terminal auto-repeat initial delay
	InputHoldTimeout = 500 * time.Millisecond

	// InputSweepInterval is how often the terminal source checks for expired holds
	InputSweepInterval = 20 * time.Millisecond
)
