package overlay

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/overlaykit/reticle/internal/config"
	"github.com/overlaykit/reticle/internal/geometry"
	"github.com/overlaykit/reticle/internal/monitor"
	"github.com/overlaykit/reticle/internal/raster"
)

var ovlLog = log.With().Str("module", "overlay").Logger()

// Controller owns the overlay window state: current mode, the dirty flag,
// and the cached monitor list. Every mutation funnels through the settings
// mutators so the dirty flag is exact: it is set when and only when a
// change requires a redraw.
type Controller struct {
	settings *config.Settings
	backend  Backend
	provider monitor.Provider

	mode     Mode
	dirty    bool
	monitors []monitor.Monitor
}

// NewController wires the settings to a window backend and monitor
// provider. Call Create before the first redraw.
func NewController(s *config.Settings, b Backend, p monitor.Provider) *Controller {
	return &Controller{
		settings: s,
		backend:  b,
		provider: p,
	}
}

// Create queries monitors and makes the native window at the initial rect.
func (c *Controller) Create() error {
	c.RefreshMonitors()
	if err := c.backend.Create(c.windowRect()); err != nil {
		return fmt.Errorf("creating overlay window: %w", err)
	}
	c.dirty = true
	return nil
}

// Close releases the native window.
func (c *Controller) Close() error {
	return c.backend.Close()
}

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// Dirty reports whether a redraw is pending.
func (c *Controller) Dirty() bool { return c.dirty }

// Settings exposes the live settings for read access.
func (c *Controller) Settings() *config.Settings { return c.settings }

// RefreshMonitors re-queries the monitor list. Enumeration failure keeps
// the previous list, or falls back to an assumed monitor when there is
// none. A monitor index left dangling by an unplugged display folds back
// to 0.
func (c *Controller) RefreshMonitors() {
	mons, err := c.provider.Monitors()
	if err != nil || len(mons) == 0 {
		if len(c.monitors) > 0 {
			ovlLog.Warn().Err(err).Msg("monitor enumeration failed, keeping previous list")
			return
		}
		ovlLog.Warn().Err(err).Msg("monitor enumeration failed, assuming a single 1080p display")
		mons = []monitor.Monitor{monitor.FallbackMonitor()}
	}
	c.monitors = mons
	if c.settings.ClampMonitor(len(mons)) {
		ovlLog.Warn().
			Int("monitors", len(mons)).
			Msg("monitor index out of range, falling back to monitor 0")
		c.dirty = true
	}
}

// CurrentMonitor returns the monitor the crosshair targets.
func (c *Controller) CurrentMonitor() monitor.Monitor {
	if len(c.monitors) == 0 {
		return monitor.FallbackMonitor()
	}
	return c.monitors[c.settings.MonitorIndex]
}

// Move nudges the offset. Ignored outside adjust mode.
func (c *Controller) Move(dx, dy int) {
	if !c.mode.Adjusting() {
		return
	}
	if c.settings.Nudge(dx, dy) {
		c.dirty = true
	}
}

// Scale resizes the crosshair. Ignored outside adjust mode.
func (c *Controller) Scale(delta int) {
	if !c.mode.Adjusting() {
		return
	}
	if c.settings.Rescale(delta) {
		c.dirty = true
	}
}

// CycleMonitor moves the crosshair to the next monitor, wrapping. Ignored
// outside adjust mode.
func (c *Controller) CycleMonitor() {
	if !c.mode.Adjusting() {
		return
	}
	c.RefreshMonitors()
	if c.settings.CycleMonitor(len(c.monitors)) {
		c.dirty = true
	}
}

// SetColor applies a picked crosshair color.
func (c *Controller) SetColor(argb uint32) {
	if c.settings.SetColor(argb) {
		c.dirty = true
	}
}

// LoadImage decodes a PNG and makes it the crosshair. Size snaps to the
// image's native width so it first appears unscaled; offset and monitor
// are untouched. On error the previous state is kept.
func (c *Controller) LoadImage(path string) error {
	img, err := raster.LoadPNG(path)
	if err != nil {
		return err
	}
	c.settings.SetImage(path, img)
	c.settings.SetSize(img.Width)
	c.dirty = true
	return nil
}

// ToggleVisible flips between hidden and shown. Unhiding forces a redraw
// so a buffer gone stale behind the hidden window never shows.
func (c *Controller) ToggleVisible() error {
	c.mode = c.mode.Next(EventToggleVisible)
	c.settings.SetVisible(c.mode.Visible())
	if c.mode.Visible() {
		c.dirty = true
	}
	return c.backend.SetVisible(c.mode.Visible())
}

// ToggleAdjust flips adjust mode. No-op while hidden.
func (c *Controller) ToggleAdjust() {
	c.mode = c.mode.Next(EventToggleAdjust)
}

// Reset restores default settings, clears any custom image, and returns to
// the shown normal mode.
func (c *Controller) Reset() error {
	c.settings.Reset()
	c.mode = ModeNormal
	c.dirty = true
	return c.backend.SetVisible(true)
}

// windowRect computes the current overlay rect. The built-in cross is a
// square of side Size; a custom image keeps its aspect ratio with Size as
// the displayed width. Both stay centered on the monitor center plus
// offset.
func (c *Controller) windowRect() geometry.Rect {
	mon := c.CurrentMonitor().Bounds()
	s := c.settings
	if s.Image != nil {
		w := s.Size
		h := imageHeight(s.Image.Width, s.Image.Height, w)
		return geometry.ImageWindowRect(mon, w, h, s.OffsetX, s.OffsetY)
	}
	return geometry.WindowRect(mon, s.Size, s.OffsetX, s.OffsetY)
}

// imageHeight scales the native height to the displayed width, keeping at
// least one pixel.
func imageHeight(nativeW, nativeH, w int) int {
	if nativeW < 1 {
		return 1
	}
	h := (nativeH*w + nativeW/2) / nativeW
	if h < 1 {
		h = 1
	}
	return h
}

// RedrawIfDirty renders and presents when the dirty flag is set, then
// clears it. While hidden the flag is left alone so pending changes draw
// on the next unhide. Returns whether a present happened.
func (c *Controller) RedrawIfDirty() (bool, error) {
	if !c.dirty || !c.mode.Visible() {
		return false, nil
	}
	rect := c.windowRect()
	var pix []uint32
	if img := c.settings.Image; img != nil {
		pix = raster.Blit(img, rect.W, rect.H)
	} else {
		pix = raster.Cross(rect.W, rect.H, c.settings.Size, uint32(c.settings.Color))
	}
	if err := c.backend.Present(rect, pix); err != nil {
		return false, fmt.Errorf("presenting overlay: %w", err)
	}
	c.dirty = false
	return true, nil
}
