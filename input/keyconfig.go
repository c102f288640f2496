package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written as a bare single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in config
var keyNames = map[string]tcell.Key{
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"page_up":   tcell.KeyPgUp,
	"page_down": tcell.KeyPgDn,
	"ctrl_q":    tcell.KeyCtrlQ,
	"ctrl_c":    tcell.KeyCtrlC,
}

// ParseKeyTable builds a KeyTable from action name -> key name bindings
// Returns error on unknown action names, invalid key names, or a key bound twice
// Ctrl+C always quits
func ParseKeyTable(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  map[tcell.Key]Binding{tcell.KeyCtrlC: {Kind: ActionQuit}},
		Runes: make(map[rune]Binding, len(bindings)),
	}
	owner := make(map[string]string, len(bindings))

	// Sorted iteration keeps error messages deterministic
	actions := make([]string, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	for _, actionName := range actions {
		keyName := bindings[actionName]
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, err
		}

		canon := strings.ToLower(strings.TrimSpace(keyName))
		if prev, dup := owner[canon]; dup {
			return nil, fmt.Errorf("key %q bound to both %q and %q", keyName, prev, actionName)
		}
		owner[canon] = actionName

		if k, ok := keyNames[canon]; ok {
			kt.Keys[k] = entry
			continue
		}
		r, err := resolveRune(canon)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", actionName, err)
		}
		kt.Runes[r] = entry
	}

	return kt, nil
}

// resolveRune converts a key string to a lowercased rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[s]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return unicode.ToLower(runes[0]), nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

// resolveAction converts an action name string to a Binding
func resolveAction(name string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := actionRegistry[name]
	if !ok {
		return Binding{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}
