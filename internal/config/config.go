// Package config holds the canonical crosshair settings and their TOML
// persistence. All runtime mutation goes through the Settings mutators, each
// of which reports whether the change requires a redraw; unchanged values
// never do.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/overlaykit/reticle/internal/raster"
)

const (
	// DefaultConfigDir is the default configuration directory, relative to
	// the user's home directory.
	DefaultConfigDir = ".config/reticle"
	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"
)

// Compiled-in defaults. DefaultColor is 70%-alpha red.
const (
	DefaultSize  = 20
	DefaultColor = 0xB2FF0000
	DefaultFPS   = 60

	maxFPS = 500
)

var cfgLog = log.With().Str("module", "config").Logger()

// Persisted is the on-disk portion of the settings. Field names map to the
// TOML document keys.
type Persisted struct {
	OffsetX      int         `toml:"offset_x"`
	OffsetY      int         `toml:"offset_y"`
	Size         int         `toml:"size"`
	Color        HexColor    `toml:"color"`
	MonitorIndex int         `toml:"monitor_index"`
	ImagePath    string      `toml:"image_path,omitempty"`
	FPS          int         `toml:"fps"`
	Bindings     KeyBindings `toml:"key_bindings"`
}

// Settings is the live settings value: the persisted fields plus state
// derived or held only for the process lifetime.
type Settings struct {
	Persisted

	// Image is the decoded custom crosshair, nil when the built-in cross is
	// active. Not persisted directly; re-decoded from ImagePath at load.
	Image *raster.Image

	// Visible is session state, always true at startup.
	Visible bool
}

// Default returns the compiled-in default settings.
func Default() *Settings {
	return &Settings{
		Persisted: Persisted{
			Size:     DefaultSize,
			Color:    DefaultColor,
			FPS:      DefaultFPS,
			Bindings: DefaultKeyBindings(),
		},
		Visible: true,
	}
}

// Nudge moves the crosshair offset by (dx, dy) pixels.
func (s *Settings) Nudge(dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	s.OffsetX += dx
	s.OffsetY += dy
	return true
}

// SetOffset sets the absolute offset from the monitor center.
func (s *Settings) SetOffset(x, y int) bool {
	if s.OffsetX == x && s.OffsetY == y {
		return false
	}
	s.OffsetX = x
	s.OffsetY = y
	return true
}

// Rescale grows or shrinks the crosshair by delta, never below 1.
func (s *Settings) Rescale(delta int) bool {
	return s.SetSize(s.Size + delta)
}

// SetSize sets the nominal crosshair size, clamped to a minimum of 1.
func (s *Settings) SetSize(size int) bool {
	if size < 1 {
		size = 1
	}
	if s.Size == size {
		return false
	}
	s.Size = size
	return true
}

// SetColor sets the crosshair color (straight-alpha ARGB).
func (s *Settings) SetColor(c uint32) bool {
	if uint32(s.Color) == c {
		return false
	}
	s.Color = HexColor(c)
	return true
}

// SetMonitor selects the target monitor by index.
func (s *Settings) SetMonitor(index int) bool {
	if s.MonitorIndex == index {
		return false
	}
	s.MonitorIndex = index
	return true
}

// CycleMonitor advances to the next monitor, wrapping modulo count.
func (s *Settings) CycleMonitor(count int) bool {
	if count < 1 {
		count = 1
	}
	return s.SetMonitor((s.MonitorIndex + 1) % count)
}

// ClampMonitor folds an out-of-range monitor index back to 0, for when the
// live monitor list shrinks.
func (s *Settings) ClampMonitor(count int) bool {
	if s.MonitorIndex >= 0 && s.MonitorIndex < count {
		return false
	}
	return s.SetMonitor(0)
}

// SetVisible shows or hides the crosshair.
func (s *Settings) SetVisible(v bool) bool {
	if s.Visible == v {
		return false
	}
	s.Visible = v
	return true
}

// SetImage replaces the custom crosshair image. The image must already be
// decoded and validated; path is recorded for persistence.
func (s *Settings) SetImage(path string, img *raster.Image) bool {
	s.ImagePath = path
	s.Image = img
	return true
}

// ClearImage removes the custom image, reverting to the built-in cross.
func (s *Settings) ClearImage() bool {
	if s.ImagePath == "" && s.Image == nil {
		return false
	}
	s.ImagePath = ""
	s.Image = nil
	return true
}

// Reset restores the user-editable fields to compiled-in defaults. Key
// bindings and FPS survive a reset: they are only editable by hand in the
// config file, so a hand-edited value should stick.
func (s *Settings) Reset() bool {
	s.OffsetX = 0
	s.OffsetY = 0
	s.Size = DefaultSize
	s.Color = DefaultColor
	s.MonitorIndex = 0
	s.ImagePath = ""
	s.Image = nil
	s.Visible = true
	return true
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigDir
	}
	return filepath.Join(home, DefaultConfigDir)
}

// DefaultPath returns the default settings file path.
func DefaultPath() string {
	return filepath.Join(GetConfigDir(), ConfigFileName)
}

// Load reads settings from path. A missing, unreadable, or invalid file
// falls back to defaults: the returned settings are always usable, and the
// error is informational for the caller to report.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading settings: %w", err)
	}

	s := Default()
	if err := toml.Unmarshal(data, &s.Persisted); err != nil {
		return Default(), fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return Default(), fmt.Errorf("invalid settings: %w", err)
	}

	s.loadImage()
	return s, nil
}

// validate rejects values a hand-edited file could contain; callers fall
// back to defaults on error.
func (s *Settings) validate() error {
	if s.Size < 1 {
		return fmt.Errorf("size must be >= 1, got %d", s.Size)
	}
	if s.MonitorIndex < 0 {
		return fmt.Errorf("monitor_index must be >= 0, got %d", s.MonitorIndex)
	}
	if s.FPS < 1 || s.FPS > maxFPS {
		return fmt.Errorf("fps must be in 1..%d, got %d", maxFPS, s.FPS)
	}
	return s.Bindings.Validate()
}

// loadImage re-decodes a persisted image path. Failure is recoverable: the
// built-in cross is used instead and the path is dropped so the next save
// does not repeat the warning.
func (s *Settings) loadImage() {
	if s.ImagePath == "" {
		return
	}
	img, err := raster.LoadPNG(s.ImagePath)
	if err != nil {
		cfgLog.Warn().Err(err).Str("path", s.ImagePath).Msg("could not load saved crosshair image, using built-in cross")
		s.ImagePath = ""
		return
	}
	s.Image = img
}

// Save writes the persisted settings to path, creating the directory if
// needed.
func Save(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&s.Persisted); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return nil
}
