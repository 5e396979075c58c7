package monitor

import (
	"errors"
	"testing"

	"github.com/overlaykit/reticle/internal/geometry"
)

func TestStaticMonitors(t *testing.T) {
	list := Static{
		{Name: "DP-1", Width: 2560, Height: 1440, Primary: true, Scale: 1},
		{Name: "HDMI-1", X: 2560, Width: 1920, Height: 1080, Scale: 1},
	}
	got, err := list.Monitors()
	if err != nil {
		t.Fatalf("Monitors: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 monitors, got %d", len(got))
	}
	if got[0].Name != "DP-1" || !got[0].Primary {
		t.Errorf("primary monitor not first: %+v", got[0])
	}
}

func TestStaticEmpty(t *testing.T) {
	_, err := Static{}.Monitors()
	if !errors.Is(err, ErrNoMonitors) {
		t.Fatalf("expected ErrNoMonitors, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	m := Monitor{Name: "DP-1", X: 2560, Y: -120, Width: 1920, Height: 1080}
	want := geometry.Rect{X: 2560, Y: -120, W: 1920, H: 1080}
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestFallbackMonitor(t *testing.T) {
	m := FallbackMonitor()
	if m.Width != 1920 || m.Height != 1080 {
		t.Errorf("unexpected fallback geometry: %+v", m)
	}
	if m.X != 0 || m.Y != 0 {
		t.Errorf("fallback monitor not at origin: %+v", m)
	}
}
