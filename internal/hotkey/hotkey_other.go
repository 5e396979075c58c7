//go:build !windows

package hotkey

import "github.com/overlaykit/reticle/internal/config"

type nullPoller struct{}

// NewPoller returns the platform keyboard poller. On platforms without
// global key-state polling it reports every key as released, which leaves
// the tray menu as the only control surface.
func NewPoller() Poller {
	hkLog.Warn().Msg("global hotkeys are not supported on this platform, use the tray menu")
	return nullPoller{}
}

func (nullPoller) Down(config.Key) bool { return false }
