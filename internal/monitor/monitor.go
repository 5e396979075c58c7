// Package monitor enumerates the displays attached to the system.
package monitor

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/overlaykit/reticle/internal/geometry"
)

// ErrNoMonitors is returned when enumeration succeeds but finds nothing.
var ErrNoMonitors = errors.New("no monitors detected")

var monLog = log.With().Str("module", "monitor").Logger()

// Monitor represents a display attached to the system, in virtual-desktop
// pixel coordinates.
type Monitor struct {
	Name    string  `json:"name"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   float64 `json:"scale"`
	Primary bool    `json:"primary"`
}

// Bounds returns the monitor's pixel rectangle.
func (m Monitor) Bounds() geometry.Rect {
	return geometry.Rect{X: m.X, Y: m.Y, W: m.Width, H: m.Height}
}

// Provider exposes the current ordered monitor list. Implementations query
// the OS on every call; callers decide how often to refresh.
type Provider interface {
	Monitors() ([]Monitor, error)
}

// Detect returns the platform monitor provider.
func Detect() Provider {
	return platformProvider()
}

// Static is a fixed monitor list, used in tests and as the degraded
// fallback when enumeration is unavailable.
type Static []Monitor

func (s Static) Monitors() ([]Monitor, error) {
	if len(s) == 0 {
		return nil, ErrNoMonitors
	}
	return s, nil
}

// FallbackMonitor is the assumed display when enumeration fails: geometry
// math still needs some bounds to work against, and 1080p at the origin is
// the least surprising guess.
func FallbackMonitor() Monitor {
	return Monitor{Name: "fallback", Width: 1920, Height: 1080, Scale: 1}
}
