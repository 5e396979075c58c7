//go:build linux

package monitor

import (
	"fmt"
	"os/exec"

	"github.com/bytedance/sonic"
)

// hyprctlMonitor mirrors the JSON emitted by `hyprctl monitors -j`.
type hyprctlMonitor struct {
	Name    string  `json:"name"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Scale   float64 `json:"scale"`
	Focused bool    `json:"focused"`
}

type hyprctlProvider struct{}

func platformProvider() Provider {
	return hyprctlProvider{}
}

// Monitors queries the compositor. Only Hyprland (and compatible wlroots
// compositors exposing hyprctl) is supported on Linux.
func (hyprctlProvider) Monitors() ([]Monitor, error) {
	out, err := exec.Command("hyprctl", "monitors", "-j").Output()
	if err != nil {
		return nil, fmt.Errorf("running hyprctl monitors: %w", err)
	}

	var raw []hyprctlMonitor
	if err := sonic.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parsing hyprctl monitors JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoMonitors
	}

	monitors := make([]Monitor, len(raw))
	for i, m := range raw {
		monitors[i] = Monitor{
			Name:    m.Name,
			X:       m.X,
			Y:       m.Y,
			Width:   m.Width,
			Height:  m.Height,
			Scale:   m.Scale,
			Primary: m.Focused,
		}
	}
	return monitors, nil
}
