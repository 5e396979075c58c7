//go:build cgo || windows

// Package systray owns the tray icon and menu. Menu clicks are forwarded as
// signals on per-action channels; the overlay loop applies the state change
// and calls back to keep the checkboxes truthful.
package systray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"fyne.io/systray"
	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

var trayLog = log.With().Str("module", "systray").Logger()

// Manager handles the system tray icon and menu
type Manager struct {
	// Menu items
	mVisible   *systray.MenuItem
	mAdjust    *systray.MenuItem
	mLoadImage *systray.MenuItem
	mPickColor *systray.MenuItem
	mReset     *systray.MenuItem
	mQuit      *systray.MenuItem

	// Channels for communication
	visibleChan   chan struct{}
	adjustChan    chan struct{}
	loadImageChan chan struct{}
	pickColorChan chan struct{}
	resetChan     chan struct{}
	quitChan      chan struct{}

	// Initial checkbox state, applied in OnReady
	startVisible bool

	icon []byte
}

// New creates a new systray manager. startVisible seeds the Visible
// checkbox so it matches the overlay before the first click.
func New(startVisible bool) *Manager {
	m := &Manager{
		visibleChan:   make(chan struct{}, 1),
		adjustChan:    make(chan struct{}, 1),
		loadImageChan: make(chan struct{}, 1),
		pickColorChan: make(chan struct{}, 1),
		resetChan:     make(chan struct{}, 1),
		quitChan:      make(chan struct{}, 1),
		startVisible:  startVisible,
	}
	m.icon = renderIcon()
	return m
}

// renderIcon draws the tray icon at 64x64 and downsamples to the 32x32 the
// tray expects. Drawing large and shrinking keeps the ring edge smooth
// without a real rasterizer.
func renderIcon() []byte {
	const size = 64
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	crosshairRed := color.NRGBA{R: 0xFF, A: 0xFF}

	const (
		c        = size / 2
		outer    = size/2 - 2
		inner    = size/2 - 10
		dot      = 6
		armWidth = 4
	)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-c, y-c
			d2 := dx*dx + dy*dy
			ring := d2 <= outer*outer && d2 >= inner*inner
			center := d2 <= dot*dot
			arm := (abs(dx) < armWidth/2 || abs(dy) < armWidth/2) && d2 <= outer*outer
			if ring || center || arm {
				img.SetNRGBA(x, y, crosshairRed)
			}
		}
	}

	small := resize.Resize(32, 32, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := png.Encode(&buf, small); err != nil {
		trayLog.Error().Err(err).Msg("failed to encode tray icon")
		return nil
	}
	return buf.Bytes()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// VisibleChan signals a click on the Visible checkbox
func (m *Manager) VisibleChan() <-chan struct{} { return m.visibleChan }

// AdjustChan signals a click on the Adjust checkbox
func (m *Manager) AdjustChan() <-chan struct{} { return m.adjustChan }

// LoadImageChan signals a click on Load Image
func (m *Manager) LoadImageChan() <-chan struct{} { return m.loadImageChan }

// PickColorChan signals a click on Pick Color
func (m *Manager) PickColorChan() <-chan struct{} { return m.pickColorChan }

// ResetChan signals a click on Reset
func (m *Manager) ResetChan() <-chan struct{} { return m.resetChan }

// QuitChan signals a click on Quit
func (m *Manager) QuitChan() <-chan struct{} { return m.quitChan }

// OnReady is called when the systray is ready
func (m *Manager) OnReady() {
	if m.icon != nil {
		systray.SetIcon(m.icon)
	}
	systray.SetTitle("Reticle")
	systray.SetTooltip("Reticle - crosshair overlay")

	m.mVisible = systray.AddMenuItemCheckbox("Visible", "Show or hide the crosshair", m.startVisible)
	m.mAdjust = systray.AddMenuItemCheckbox("Adjust", "Enable hotkeys to move and scale", false)
	systray.AddSeparator()
	m.mLoadImage = systray.AddMenuItem("Load Image...", "Use a PNG as the crosshair")
	m.mPickColor = systray.AddMenuItem("Pick Color...", "Change the crosshair color")
	m.mReset = systray.AddMenuItem("Reset", "Restore default position, size, and color")
	systray.AddSeparator()
	m.mQuit = systray.AddMenuItem("Quit", "Save settings and exit")

	go m.handleClicks()
}

// OnExit is called when the systray is exiting
func (m *Manager) OnExit() {}

// handleClicks handles menu item clicks
func (m *Manager) handleClicks() {
	for {
		select {
		case <-m.mVisible.ClickedCh:
			signal(m.visibleChan)
		case <-m.mAdjust.ClickedCh:
			signal(m.adjustChan)
		case <-m.mLoadImage.ClickedCh:
			signal(m.loadImageChan)
		case <-m.mPickColor.ClickedCh:
			signal(m.pickColorChan)
		case <-m.mReset.ClickedCh:
			signal(m.resetChan)
		case <-m.mQuit.ClickedCh:
			signal(m.quitChan)
			return
		}
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// SetVisibleChecked syncs the Visible checkbox with the overlay state. The
// overlay loop calls this for both menu and hotkey driven changes.
func (m *Manager) SetVisibleChecked(checked bool) {
	if m.mVisible == nil {
		return
	}
	if checked {
		m.mVisible.Check()
	} else {
		m.mVisible.Uncheck()
	}
}

// SetAdjustChecked syncs the Adjust checkbox with the overlay mode.
func (m *Manager) SetAdjustChecked(checked bool) {
	if m.mAdjust == nil {
		return
	}
	if checked {
		m.mAdjust.Check()
	} else {
		m.mAdjust.Uncheck()
	}
}

// Run blocks on the tray event loop until Quit.
func Run(m *Manager) {
	systray.Run(m.OnReady, m.OnExit)
}

// Quit ends a blocked Run. Safe from any goroutine.
func Quit() {
	systray.Quit()
}
