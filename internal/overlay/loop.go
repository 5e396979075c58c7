package overlay

import (
	"context"
	"time"

	"github.com/overlaykit/reticle/internal/dialog"
	"github.com/overlaykit/reticle/internal/hotkey"
	"github.com/overlaykit/reticle/internal/notify"
)

// monitorRefreshInterval bounds how stale the cached monitor list can get
// when displays are plugged or unplugged mid-session.
const monitorRefreshInterval = 2 * time.Second

// Tray is the menu surface the loop listens to. Satisfied by
// systray.Manager.
type Tray interface {
	VisibleChan() <-chan struct{}
	AdjustChan() <-chan struct{}
	LoadImageChan() <-chan struct{}
	PickColorChan() <-chan struct{}
	ResetChan() <-chan struct{}
	QuitChan() <-chan struct{}
	SetVisibleChecked(bool)
	SetAdjustChecked(bool)
}

// Loop drives the overlay: it blocks on tray signals and the hotkey tick,
// applies state changes through the controller, and redraws exactly when
// the dirty flag says so. Dialogs run synchronously on this goroutine, so
// hotkey polling pauses while a picker is open.
type Loop struct {
	Controller *Controller
	Hotkeys    *hotkey.Manager
	Tray       Tray
	Dialogs    dialog.Service
}

// Run blocks until the tray Quit item fires or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	fps := l.Controller.Settings().FPS
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()
	monTick := time.NewTicker(monitorRefreshInterval)
	defer monTick.Stop()

	l.syncTray()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.Tray.QuitChan():
			return nil
		case <-l.Tray.VisibleChan():
			l.toggleVisible()
		case <-l.Tray.AdjustChan():
			l.Controller.ToggleAdjust()
			l.syncTray()
		case <-l.Tray.LoadImageChan():
			l.loadImage()
		case <-l.Tray.PickColorChan():
			// Color picking is an adjustment, same as the hotkey.
			if l.Controller.Mode().Adjusting() {
				l.pickColor()
			}
		case <-l.Tray.ResetChan():
			if err := l.Controller.Reset(); err != nil {
				ovlLog.Warn().Err(err).Msg("failed to show window on reset")
			}
			l.syncTray()
		case <-tick.C:
			l.pollHotkeys()
		case <-monTick.C:
			l.Controller.RefreshMonitors()
		}

		if _, err := l.Controller.RedrawIfDirty(); err != nil {
			ovlLog.Error().Err(err).Msg("redraw failed")
		}
	}
}

// pollHotkeys samples the keyboard once and applies every triggered action.
func (l *Loop) pollHotkeys() {
	hk := l.Hotkeys
	hk.Poll()

	dx, dy := hk.MoveDelta()
	l.Controller.Move(dx, dy)
	l.Controller.Scale(hk.ScaleDelta())

	if hk.JustPressed(hotkey.ActionCycleMonitor) {
		l.Controller.CycleMonitor()
	}
	if hk.JustPressed(hotkey.ActionToggleHidden) {
		l.toggleVisible()
	}
	if hk.JustPressed(hotkey.ActionToggleAdjust) {
		l.Controller.ToggleAdjust()
		l.syncTray()
	}
	if hk.JustPressed(hotkey.ActionPickColor) && l.Controller.Mode().Adjusting() {
		l.pickColor()
	}
}

func (l *Loop) toggleVisible() {
	if err := l.Controller.ToggleVisible(); err != nil {
		ovlLog.Warn().Err(err).Msg("failed to toggle window visibility")
	}
	l.syncTray()
}

// syncTray keeps the menu checkboxes matching the actual mode, whichever
// input surface caused the change.
func (l *Loop) syncTray() {
	mode := l.Controller.Mode()
	l.Tray.SetVisibleChecked(mode.Visible())
	l.Tray.SetAdjustChecked(mode.Adjusting())
}

func (l *Loop) loadImage() {
	path, ok, err := l.Dialogs.PickImage()
	if err != nil {
		ovlLog.Warn().Err(err).Msg("image picker failed")
		notify.PickerFailed(err)
		return
	}
	if !ok {
		return
	}
	if err := l.Controller.LoadImage(path); err != nil {
		ovlLog.Warn().Str("path", path).Err(err).Msg("rejected crosshair image")
		notify.ImageLoadFailed(path, err)
	}
}

func (l *Loop) pickColor() {
	cur := uint32(l.Controller.Settings().Color)
	picked, ok, err := l.Dialogs.PickColor(cur)
	if err != nil {
		ovlLog.Warn().Err(err).Msg("color picker failed")
		notify.PickerFailed(err)
		return
	}
	if !ok {
		return
	}
	l.Controller.SetColor(picked)
}
