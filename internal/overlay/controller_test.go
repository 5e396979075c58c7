package overlay

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/overlaykit/reticle/internal/config"
	"github.com/overlaykit/reticle/internal/geometry"
	"github.com/overlaykit/reticle/internal/monitor"
	"github.com/overlaykit/reticle/internal/raster"
)

func testMonitors() monitor.Static {
	return monitor.Static{
		{Name: "DP-1", Width: 1920, Height: 1080, Primary: true, Scale: 1},
		{Name: "HDMI-1", X: 1920, Width: 2560, Height: 1440, Scale: 1},
	}
}

func newTestController(t *testing.T) (*Controller, *Headless) {
	t.Helper()
	backend := &Headless{}
	c := NewController(config.Default(), backend, testMonitors())
	if err := c.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return c, backend
}

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	path := filepath.Join(t.TempDir(), "crosshair.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return path
}

func TestAdjustResizeKeepsCenter(t *testing.T) {
	c, backend := newTestController(t)

	if _, err := c.RedrawIfDirty(); err != nil {
		t.Fatalf("initial redraw: %v", err)
	}
	want := geometry.Rect{X: 950, Y: 530, W: 20, H: 20}
	if backend.Rect != want {
		t.Fatalf("initial rect = %+v, want %+v", backend.Rect, want)
	}

	c.ToggleAdjust()
	c.Scale(1)
	c.Scale(1)
	if _, err := c.RedrawIfDirty(); err != nil {
		t.Fatalf("redraw after resize: %v", err)
	}

	s := c.Settings()
	if s.Size != 22 || s.OffsetX != 0 || s.OffsetY != 0 {
		t.Fatalf("after +1 +1: size=%d offset=(%d,%d), want size=22 offset=(0,0)", s.Size, s.OffsetX, s.OffsetY)
	}
	want = geometry.Rect{X: 949, Y: 529, W: 22, H: 22}
	if backend.Rect != want {
		t.Fatalf("resized rect = %+v, want %+v", backend.Rect, want)
	}
}

func TestRedrawOnlyWhenDirty(t *testing.T) {
	c, backend := newTestController(t)

	if drew, _ := c.RedrawIfDirty(); !drew {
		t.Fatal("initial state should be dirty")
	}
	presents := backend.Presents

	// No-op mutations must not trigger a redraw.
	c.ToggleAdjust()
	c.Move(0, 0)
	c.Scale(0)
	c.SetColor(uint32(c.Settings().Color))
	if drew, _ := c.RedrawIfDirty(); drew {
		t.Fatal("redraw fired with no pending change")
	}
	if backend.Presents != presents {
		t.Fatalf("present count changed: %d -> %d", presents, backend.Presents)
	}

	c.Move(1, 0)
	if drew, _ := c.RedrawIfDirty(); !drew {
		t.Fatal("move did not trigger a redraw")
	}
}

func TestMoveIgnoredOutsideAdjust(t *testing.T) {
	c, _ := newTestController(t)
	c.RedrawIfDirty()

	c.Move(10, 10)
	c.Scale(5)
	if c.Dirty() {
		t.Fatal("adjustment applied in normal mode")
	}
	s := c.Settings()
	if s.OffsetX != 0 || s.OffsetY != 0 || s.Size != config.DefaultSize {
		t.Fatalf("settings mutated in normal mode: %+v", s.Persisted)
	}
}

func TestUnhideForcesRedraw(t *testing.T) {
	c, backend := newTestController(t)
	c.RedrawIfDirty()
	presents := backend.Presents

	if err := c.ToggleVisible(); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if backend.Visible {
		t.Fatal("backend still visible after hide")
	}
	if drew, _ := c.RedrawIfDirty(); drew {
		t.Fatal("redraw while hidden")
	}

	if err := c.ToggleVisible(); err != nil {
		t.Fatalf("unhide: %v", err)
	}
	if !backend.Visible {
		t.Fatal("backend not visible after unhide")
	}
	if drew, _ := c.RedrawIfDirty(); !drew {
		t.Fatal("unhide must force a redraw")
	}
	if backend.Presents != presents+1 {
		t.Fatalf("present count = %d, want %d", backend.Presents, presents+1)
	}
}

func TestChangesWhileHiddenDrawOnUnhide(t *testing.T) {
	c, backend := newTestController(t)
	c.RedrawIfDirty()

	c.ToggleVisible()
	c.SetColor(0xFF00FF00)
	if drew, _ := c.RedrawIfDirty(); drew {
		t.Fatal("redraw while hidden")
	}

	c.ToggleVisible()
	c.RedrawIfDirty()

	// The center pixel carries the new color, premultiplied.
	rect := backend.Rect
	center := backend.Pix[(rect.H/2)*rect.W+rect.W/2]
	if center != raster.PremultiplyARGB(0xFF00FF00) {
		t.Fatalf("center pixel = %08X, want %08X", center, raster.PremultiplyARGB(0xFF00FF00))
	}
}

func TestCycleMonitorWraps(t *testing.T) {
	c, _ := newTestController(t)
	c.ToggleAdjust()

	c.CycleMonitor()
	if got := c.Settings().MonitorIndex; got != 1 {
		t.Fatalf("monitor index = %d, want 1", got)
	}
	if c.CurrentMonitor().Name != "HDMI-1" {
		t.Fatalf("current monitor = %s, want HDMI-1", c.CurrentMonitor().Name)
	}

	c.CycleMonitor()
	if got := c.Settings().MonitorIndex; got != 0 {
		t.Fatalf("monitor index after wrap = %d, want 0", got)
	}
}

func TestCycleMonitorIgnoredOutsideAdjust(t *testing.T) {
	c, _ := newTestController(t)
	c.RedrawIfDirty()
	c.CycleMonitor()
	if c.Settings().MonitorIndex != 0 || c.Dirty() {
		t.Fatal("cycle applied in normal mode")
	}
}

func TestDanglingMonitorIndexFoldsToZero(t *testing.T) {
	s := config.Default()
	s.MonitorIndex = 5
	backend := &Headless{}
	c := NewController(s, backend, testMonitors())
	if err := c.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.MonitorIndex != 0 {
		t.Fatalf("monitor index = %d, want 0", s.MonitorIndex)
	}
	if !c.Dirty() {
		t.Fatal("clamping the monitor index must dirty")
	}
}

func TestLoadImageKeepsPlacement(t *testing.T) {
	c, backend := newTestController(t)
	c.ToggleAdjust()
	c.Move(5, 6)
	c.CycleMonitor()
	c.RedrawIfDirty()

	path := writeTestPNG(t, 8, 4)
	if err := c.LoadImage(path); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	s := c.Settings()
	if s.OffsetX != 5 || s.OffsetY != 6 || s.MonitorIndex != 1 {
		t.Fatalf("image load disturbed placement: %+v", s.Persisted)
	}
	if s.Size != 8 {
		t.Fatalf("size = %d, want native image width 8", s.Size)
	}

	c.RedrawIfDirty()
	if backend.Rect.W != 8 || backend.Rect.H != 4 {
		t.Fatalf("image rect = %+v, want 8x4", backend.Rect)
	}
}

func TestLoadImageRejectionKeepsState(t *testing.T) {
	c, _ := newTestController(t)
	c.RedrawIfDirty()

	path := filepath.Join(t.TempDir(), "nope.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := c.LoadImage(path); err == nil {
		t.Fatal("expected a decode error")
	}
	if c.Settings().Image != nil || c.Settings().ImagePath != "" || c.Dirty() {
		t.Fatal("failed load must leave prior state untouched")
	}
}

func TestResetClearsImageAndShows(t *testing.T) {
	c, backend := newTestController(t)
	c.ToggleAdjust()
	c.Move(5, 6)
	path := writeTestPNG(t, 8, 4)
	if err := c.LoadImage(path); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	c.ToggleVisible()

	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	s := c.Settings()
	if s.Image != nil || s.ImagePath != "" {
		t.Fatal("reset must clear the custom image")
	}
	if s.OffsetX != 0 || s.OffsetY != 0 || s.Size != config.DefaultSize {
		t.Fatalf("reset left non-default values: %+v", s.Persisted)
	}
	if c.Mode() != ModeNormal {
		t.Fatalf("mode after reset = %v, want normal", c.Mode())
	}
	if !backend.Visible {
		t.Fatal("reset must show the window")
	}
	if drew, _ := c.RedrawIfDirty(); !drew {
		t.Fatal("reset must redraw")
	}
}
