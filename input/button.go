package input

import "strings"

// ButtonID identifies one of the five logical buttons
type ButtonID uint8

const (
	ButtonUp ButtonID = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonFire

	buttonCount
)

var buttonNames = [buttonCount]string{
	ButtonUp:    "up",
	ButtonDown:  "down",
	ButtonLeft:  "left",
	ButtonRight: "right",
	ButtonFire:  "fire",
}

// String returns the canonical identifier
func (b ButtonID) String() string {
	if !b.Valid() {
		return "unknown"
	}
	return buttonNames[b]
}

// Valid reports whether b is one of the five logical buttons
func (b ButtonID) Valid() bool {
	return b < buttonCount
}

// ButtonByName resolves a canonical identifier
func ButtonByName(name string) (ButtonID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return ButtonID(i), true
		}
	}
	return 0, false
}

// Buttons returns all logical buttons in declaration order
func Buttons() []ButtonID {
	return []ButtonID{ButtonUp, ButtonDown, ButtonLeft, ButtonRight, ButtonFire}
}

// ButtonState is the held flag and press timestamp of one button
// Timestamp is a monotonically increasing clock reading in milliseconds, 0 when not pressed
type ButtonState struct {
	Pressed   bool
	Timestamp float64
}
