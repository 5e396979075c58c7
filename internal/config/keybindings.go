package config

import "fmt"

// Key is a symbolic key name as written in the settings file, e.g. "Up",
// "PageDown", "LControl", "H". Single-character names are letters or digits.
type Key string

// Named keys. Letters and digits use their character directly ("A".."Z",
// "0".."9"), so only non-character keys need constants.
const (
	KeyUp       Key = "Up"
	KeyDown     Key = "Down"
	KeyLeft     Key = "Left"
	KeyRight    Key = "Right"
	KeyPageUp   Key = "PageUp"
	KeyPageDown Key = "PageDown"
	KeyHome     Key = "Home"
	KeyEnd      Key = "End"
	KeyInsert   Key = "Insert"
	KeyDelete   Key = "Delete"
	KeyEscape   Key = "Escape"
	KeySpace    Key = "Space"
	KeyTab      Key = "Tab"
	KeyEnter    Key = "Enter"
	KeyLControl Key = "LControl"
	KeyRControl Key = "RControl"
	KeyLShift   Key = "LShift"
	KeyRShift   Key = "RShift"
	KeyLAlt     Key = "LAlt"
	KeyRAlt     Key = "RAlt"
)

var namedKeys = map[Key]struct{}{
	KeyUp: {}, KeyDown: {}, KeyLeft: {}, KeyRight: {},
	KeyPageUp: {}, KeyPageDown: {}, KeyHome: {}, KeyEnd: {},
	KeyInsert: {}, KeyDelete: {}, KeyEscape: {}, KeySpace: {},
	KeyTab: {}, KeyEnter: {},
	KeyLControl: {}, KeyRControl: {}, KeyLShift: {}, KeyRShift: {},
	KeyLAlt: {}, KeyRAlt: {},
}

// Valid reports whether the key name is recognized. Function keys F1..F24
// are accepted alongside letters, digits, and the named keys.
func (k Key) Valid() bool {
	if _, ok := namedKeys[k]; ok {
		return true
	}
	if len(k) == 1 {
		c := k[0]
		return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	}
	if len(k) >= 2 && len(k) <= 3 && k[0] == 'F' {
		n := 0
		for _, c := range k[1:] {
			if c < '0' || c > '9' {
				return false
			}
			n = n*10 + int(c-'0')
		}
		return n >= 1 && n <= 24
	}
	return false
}

// Binding is the key combination for one action: every listed key must be
// held for the action to fire.
type Binding []Key

// KeyBindings maps every hotkey action to its key combination.
type KeyBindings struct {
	Up            Binding `toml:"up"`
	Down          Binding `toml:"down"`
	Left          Binding `toml:"left"`
	Right         Binding `toml:"right"`
	ScaleIncrease Binding `toml:"scale_increase"`
	ScaleDecrease Binding `toml:"scale_decrease"`
	CycleMonitor  Binding `toml:"cycle_monitor"`
	ToggleHidden  Binding `toml:"toggle_hidden"`
	ToggleAdjust  Binding `toml:"toggle_adjust"`
	PickColor     Binding `toml:"pick_color"`
}

// DefaultKeyBindings returns the stock bindings: arrows move, page keys
// scale, and Ctrl-chords handle the toggles.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:            Binding{KeyUp},
		Down:          Binding{KeyDown},
		Left:          Binding{KeyLeft},
		Right:         Binding{KeyRight},
		ScaleIncrease: Binding{KeyPageUp},
		ScaleDecrease: Binding{KeyPageDown},
		CycleMonitor:  Binding{KeyLControl, "M"},
		ToggleHidden:  Binding{KeyLControl, "H"},
		ToggleAdjust:  Binding{KeyLControl, "J"},
		PickColor:     Binding{KeyLControl, "K"},
	}
}

// All returns the bindings in a fixed order matching hotkey action indices.
func (b *KeyBindings) All() []Binding {
	return []Binding{
		b.Up, b.Down, b.Left, b.Right,
		b.ScaleIncrease, b.ScaleDecrease,
		b.CycleMonitor, b.ToggleHidden, b.ToggleAdjust, b.PickColor,
	}
}

// Validate checks every bound key name. An empty binding is allowed and
// simply leaves that action without a hotkey.
func (b *KeyBindings) Validate() error {
	for _, binding := range b.All() {
		for _, k := range binding {
			if !k.Valid() {
				return fmt.Errorf("unknown key name %q in key_bindings", k)
			}
		}
	}
	return nil
}
