package overlay

// Mode is the interaction state of the overlay.
type Mode int

const (
	// ModeNormal draws the crosshair and ignores adjustment hotkeys.
	ModeNormal Mode = iota
	// ModeAdjust draws the crosshair and lets hotkeys move and scale it.
	ModeAdjust
	// ModeHidden draws nothing. Adjustment is unavailable until shown again.
	ModeHidden
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdjust:
		return "adjust"
	case ModeHidden:
		return "hidden"
	}
	return "unknown"
}

// Visible reports whether the crosshair is drawn in this mode.
func (m Mode) Visible() bool { return m != ModeHidden }

// Adjusting reports whether adjustment hotkeys apply in this mode.
func (m Mode) Adjusting() bool { return m == ModeAdjust }

// Event is a mode-changing input.
type Event int

const (
	// EventToggleVisible flips between hidden and shown.
	EventToggleVisible Event = iota
	// EventToggleAdjust flips adjustment on and off.
	EventToggleAdjust
)

// transitions is the full mode table. Hiding always leaves adjust mode, so
// unhiding lands in a predictable state; toggling adjust while hidden does
// nothing.
var transitions = map[Mode]map[Event]Mode{
	ModeNormal: {
		EventToggleVisible: ModeHidden,
		EventToggleAdjust:  ModeAdjust,
	},
	ModeAdjust: {
		EventToggleVisible: ModeHidden,
		EventToggleAdjust:  ModeNormal,
	},
	ModeHidden: {
		EventToggleVisible: ModeNormal,
		EventToggleAdjust:  ModeHidden,
	},
}

// Next returns the mode after applying the event.
func (m Mode) Next(e Event) Mode {
	return transitions[m][e]
}
