//go:build !cgo && !windows

package systray

import "github.com/rs/zerolog/log"

// Stub implementation for non-CGO builds.
// The system tray requires CGO on this platform and is not available.

type Manager struct{}

func New(bool) *Manager {
	return &Manager{}
}

func (m *Manager) VisibleChan() <-chan struct{}   { return make(chan struct{}) }
func (m *Manager) AdjustChan() <-chan struct{}    { return make(chan struct{}) }
func (m *Manager) LoadImageChan() <-chan struct{} { return make(chan struct{}) }
func (m *Manager) PickColorChan() <-chan struct{} { return make(chan struct{}) }
func (m *Manager) ResetChan() <-chan struct{}     { return make(chan struct{}) }
func (m *Manager) QuitChan() <-chan struct{}      { return make(chan struct{}) }
func (m *Manager) OnReady()                       {}
func (m *Manager) OnExit()                        {}
func (m *Manager) SetVisibleChecked(bool)         {}
func (m *Manager) SetAdjustChecked(bool)          {}

func Run(*Manager) {
	log.Fatal().Msg("system tray not available: this build was compiled without CGO support")
}

func Quit() {}
