// Package notify sends desktop notifications. The overlay has no window
// chrome of its own, so user-facing errors surface here instead.
package notify

import (
	"os/exec"

	"github.com/rs/zerolog/log"
)

var ntfLog = log.With().Str("module", "notify").Logger()

// Urgency levels for notifications
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// Send sends a desktop notification using notify-send. When no notification
// daemon is reachable the message is logged instead of lost.
func Send(title, body string, urgency Urgency, icon string) error {
	args := []string{title, body}

	if urgency != "" {
		args = append(args, "--urgency="+string(urgency))
	}

	if icon != "" {
		args = append(args, "--icon="+icon)
	}

	if _, err := exec.LookPath("notify-send"); err != nil {
		ntfLog.Info().Str("title", title).Str("body", body).Msg("notification (no notify-send)")
		return nil
	}

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// Info sends an informational notification
func Info(title, body string) error {
	return Send(title, body, UrgencyNormal, "preferences-desktop-display")
}

// Warning sends a warning notification
func Warning(title, body string) error {
	return Send(title, body, UrgencyLow, "dialog-warning")
}

// Error sends an error notification
func Error(title, body string) error {
	return Send(title, body, UrgencyCritical, "dialog-error")
}

// ImageLoadFailed notifies that a PNG could not be used as the crosshair
func ImageLoadFailed(path string, reason error) error {
	return Error("Reticle", "Could not load "+path+": "+reason.Error())
}

// ConfigLoadFailed notifies that saved settings were unreadable and
// defaults are in use
func ConfigLoadFailed(reason error) error {
	return Warning("Reticle", "Settings could not be read, using defaults: "+reason.Error())
}

// ConfigSaveFailed notifies that settings could not be written at exit
func ConfigSaveFailed(reason error) error {
	return Error("Reticle", "Settings could not be saved: "+reason.Error())
}

// PickerFailed notifies that a file or color picker broke
func PickerFailed(reason error) error {
	return Error("Reticle", "Picker failed: "+reason.Error())
}
