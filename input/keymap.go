package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// specialKeys maps binding names to tcell keys for non-rune keys.
var specialKeys = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
}

// Keymap translates terminal key events into logical actions.
type Keymap struct {
	runes map[rune]Action
	keys  map[tcell.Key]Action

	// display holds the human-readable key name per action for help screens
	display map[Action]string
}

// DefaultBindings returns the stock key layout.
func DefaultBindings() map[string]string {
	return map[string]string{
		"left":    "left",
		"right":   "right",
		"fire":    "space",
		"confirm": "enter",
		"cancel":  "escape",
		"info":    "i",
		"restart": "r",
		"quit":    "q",
	}
}

// NewKeymap builds a keymap from action-name to key-name bindings, e.g.
// {"fire": "space", "quit": "q"}. Key names are either a single rune,
// "space", or one of the special key names (left, right, enter, escape...).
func NewKeymap(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{
		runes:   make(map[rune]Action),
		keys:    make(map[tcell.Key]Action),
		display: make(map[Action]string),
	}

	for _, action := range Actions() {
		name, ok := bindings[action.Name()]
		if !ok {
			return nil, fmt.Errorf("action %q has no key binding", action.Name())
		}
		if err := km.bind(action, name); err != nil {
			return nil, fmt.Errorf("action %q: %w", action.Name(), err)
		}
	}
	return km, nil
}

func (km *Keymap) bind(action Action, keyName string) error {
	lower := strings.ToLower(keyName)

	if lower == "space" {
		km.runes[' '] = action
		km.display[action] = "space"
		return nil
	}
	if key, ok := specialKeys[lower]; ok {
		km.keys[key] = action
		km.display[action] = lower
		return nil
	}

	runes := []rune(keyName)
	if len(runes) != 1 {
		return fmt.Errorf("unknown key name %q", keyName)
	}
	km.runes[runes[0]] = action
	km.display[action] = string(runes[0])
	return nil
}

// Translate resolves a key event to an action, if one is bound.
func (km *Keymap) Translate(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := km.runes[ev.Rune()]
		return a, ok
	}
	a, ok := km.keys[ev.Key()]
	return a, ok
}

// KeyName returns the display name of the key bound to an action.
func (km *Keymap) KeyName(a Action) string {
	return km.display[a]
}
