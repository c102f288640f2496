package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/pipejesus/chill-out/parameter"
)

// ActionKind classifies what a key binding produces
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionButton
	ActionLook
	ActionQuit
)

// Binding describes a key's effect without function pointers
type Binding struct {
	Kind   ActionKind
	Button ButtonID
	Yaw    float64
	Pitch  float64
}

// KeyTable maps terminal keys to bindings
// Runes are matched case-insensitively
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]Binding

	// Printable keys, lowercased
	Runes map[rune]Binding
}

// DefaultKeyTable returns WASD + space with arrow look keys
func DefaultKeyTable() *KeyTable {
	kt, err := ParseKeyTable(DefaultBindings())
	if err != nil {
		panic(err)
	}
	return kt
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := kt.Runes[unicode.ToLower(ev.Rune())]
		return b, ok
	}
	b, ok := kt.Keys[ev.Key()]
	return b, ok
}

// actionRegistry maps canonical action names to bindings
var actionRegistry = map[string]Binding{
	"up":    {Kind: ActionButton, Button: ButtonUp},
	"down":  {Kind: ActionButton, Button: ButtonDown},
	"left":  {Kind: ActionButton, Button: ButtonLeft},
	"right": {Kind: ActionButton, Button: ButtonRight},
	"fire":  {Kind: ActionButton, Button: ButtonFire},

	"turn_left":  {Kind: ActionLook, Yaw: parameter.CameraTurnStep},
	"turn_right": {Kind: ActionLook, Yaw: -parameter.CameraTurnStep},
	"look_up":    {Kind: ActionLook, Pitch: parameter.CameraPitchStep},
	"look_down":  {Kind: ActionLook, Pitch: -parameter.CameraPitchStep},

	"quit": {Kind: ActionQuit},
}

// ActionNames returns the bindable action names in a stable order
func ActionNames() []string {
	return []string{
		"up", "down", "left", "right", "fire",
		"turn_left", "turn_right", "look_up", "look_down",
		"quit",
	}
}

// DefaultBindings returns action -> key name defaults
func DefaultBindings() map[string]string {
	return map[string]string{
		"up":         "w",
		"down":       "s",
		"left":       "a",
		"right":      "d",
		"fire":       "space",
		"turn_left":  "left",
		"turn_right": "right",
		"look_up":    "up",
		"look_down":  "down",
		"quit":       "escape",
	}
}
