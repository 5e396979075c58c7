//go:build !windows

package overlay

// NewBackend returns the native overlay window backend. No native layered
// window exists on this platform, so the overlay runs headless: state and
// settings still work and persist, nothing is drawn on screen.
func NewBackend() Backend {
	ovlLog.Warn().Msg("native overlay rendering is not supported on this platform, running headless")
	return &Headless{}
}
