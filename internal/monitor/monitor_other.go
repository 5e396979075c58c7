//go:build !linux && !windows

package monitor

func platformProvider() Provider {
	monLog.Warn().Msg("monitor enumeration is not supported on this platform, assuming a single 1080p display")
	return Static{FallbackMonitor()}
}
