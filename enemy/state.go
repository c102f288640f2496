package enemy

// State is the behavior an enemy runs each update
type State uint8

const (
	StateLive     State = iota // Orbiting, can be hit
	StateFalling               // Easing down to the floor
	StateGrounded              // Resting on the floor
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateFalling:
		return "falling"
	case StateGrounded:
		return "grounded"
	}
	return "unknown"
}

// Trigger drives a state change
type Trigger uint8

const (
	TriggerKilled Trigger = iota // Health reached zero
	TriggerLanded                // Falling reached the floor
)

func (t Trigger) String() string {
	switch t {
	case TriggerKilled:
		return "killed"
	case TriggerLanded:
		return "landed"
	}
	return "unknown"
}

// transitions lists every legal edge; anything absent keeps the current state
var transitions = map[State]map[Trigger]State{
	StateLive:    {TriggerKilled: StateFalling},
	StateFalling: {TriggerLanded: StateGrounded},
}

// Transition returns the state reached from s on t
func Transition(s State, t Trigger) State {
	if next, ok := transitions[s][t]; ok {
		return next
	}
	return s
}
