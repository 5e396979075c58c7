// Package hotkey turns polled keyboard state into overlay actions. Keys are
// sampled once per frame rather than hooked globally, so the overlay never
// swallows input from other applications.
package hotkey

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/overlaykit/reticle/internal/config"
)

var hkLog = log.With().Str("module", "hotkey").Logger()

// Action identifies one hotkey-triggered operation. The values index into
// config.KeyBindings.All.
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionScaleIncrease
	ActionScaleDecrease
	ActionCycleMonitor
	ActionToggleHidden
	ActionToggleAdjust
	ActionPickColor

	numActions
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionScaleIncrease:
		return "scale-increase"
	case ActionScaleDecrease:
		return "scale-decrease"
	case ActionCycleMonitor:
		return "cycle-monitor"
	case ActionToggleHidden:
		return "toggle-hidden"
	case ActionToggleAdjust:
		return "toggle-adjust"
	case ActionPickColor:
		return "pick-color"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Poller reports instantaneous key state. Implementations query the OS on
// every call.
type Poller interface {
	// Down reports whether the key is currently held.
	Down(k config.Key) bool
}

// Static is a fixed key-state map, used in tests.
type Static map[config.Key]bool

func (s Static) Down(k config.Key) bool { return s[k] }

// Movement accelerates the longer a key is held. The first frame moves one
// pixel so a tap is always a precise single step, then a pause stage stops
// drift before the ramp kicks in.
var speedRamp = [...]int{1, 0, 1, 4, 16, 32, 64}

// rampStageFrames is how many polled frames each ramp stage past the first
// lasts. At the default 60 FPS a stage is half a second.
const rampStageFrames = 30

func rampStep(held int) int {
	stage := 0
	if held > 0 {
		stage = 1 + (held-1)/rampStageFrames
		if stage >= len(speedRamp) {
			stage = len(speedRamp) - 1
		}
	}
	return speedRamp[stage]
}

// Manager compiles key bindings into bitmasks and tracks per-action state
// across Poll calls. An action fires when every key in its binding is held;
// edge detection separates a fresh press from a continued hold.
type Manager struct {
	poller Poller
	keys   []config.Key
	masks  [numActions]uint64
	prev   uint32
	cur    uint32
	held   [numActions]int
}

// NewManager compiles the bindings against the given poller. Actions with an
// empty binding are left unbound and never fire.
func NewManager(p Poller, bindings *config.KeyBindings) (*Manager, error) {
	m := &Manager{poller: p}
	bits := make(map[config.Key]int)
	for i, binding := range bindings.All() {
		var mask uint64
		for _, k := range binding {
			bit, ok := bits[k]
			if !ok {
				bit = len(m.keys)
				if bit >= 64 {
					return nil, fmt.Errorf("key_bindings reference more than 64 distinct keys")
				}
				bits[k] = bit
				m.keys = append(m.keys, k)
			}
			mask |= 1 << bit
		}
		m.masks[i] = mask
	}
	return m, nil
}

// Poll samples the keyboard once and advances the edge-detection state.
// Call it exactly once per frame, before reading any action.
func (m *Manager) Poll() {
	var state uint64
	for bit, k := range m.keys {
		if m.poller.Down(k) {
			state |= 1 << bit
		}
	}

	m.prev = m.cur
	m.cur = 0
	for a := Action(0); a < numActions; a++ {
		mask := m.masks[a]
		if mask != 0 && state&mask == mask {
			m.cur |= 1 << a
		}
	}

	for a := Action(0); a < numActions; a++ {
		switch {
		case !m.down(a):
			m.held[a] = 0
		case m.justPressed(a):
			m.held[a] = 0
		default:
			m.held[a]++
		}
	}
}

func (m *Manager) down(a Action) bool        { return m.cur&(1<<a) != 0 }
func (m *Manager) justPressed(a Action) bool { return m.cur&(1<<a) != 0 && m.prev&(1<<a) == 0 }

// JustPressed reports whether the action fired on the most recent Poll and
// was not firing on the one before. Toggles key off this so holding the
// chord does not flap state every frame.
func (m *Manager) JustPressed(a Action) bool { return m.justPressed(a) }

// MoveDelta returns the offset adjustment for the current frame, derived
// from the held arrow actions and their ramp stage.
func (m *Manager) MoveDelta() (dx, dy int) {
	if m.down(ActionMoveUp) {
		dy -= rampStep(m.held[ActionMoveUp])
	}
	if m.down(ActionMoveDown) {
		dy += rampStep(m.held[ActionMoveDown])
	}
	if m.down(ActionMoveLeft) {
		dx -= rampStep(m.held[ActionMoveLeft])
	}
	if m.down(ActionMoveRight) {
		dx += rampStep(m.held[ActionMoveRight])
	}
	return dx, dy
}

// ScaleDelta returns the size adjustment for the current frame, using the
// same ramp as movement.
func (m *Manager) ScaleDelta() int {
	d := 0
	if m.down(ActionScaleIncrease) {
		d += rampStep(m.held[ActionScaleIncrease])
	}
	if m.down(ActionScaleDecrease) {
		d -= rampStep(m.held[ActionScaleDecrease])
	}
	return d
}
