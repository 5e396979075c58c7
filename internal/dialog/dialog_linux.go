//go:build linux

package dialog

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type zenityService struct{}

func platformService() Service {
	if _, err := exec.LookPath("zenity"); err != nil {
		dlgLog.Warn().Msg("zenity not found, file and color pickers are unavailable")
		return unavailableService{}
	}
	return zenityService{}
}

// run executes zenity and separates user cancellation (exit code 1) from
// real failures.
func (zenityService) run(args ...string) (string, bool, error) {
	out, err := exec.Command("zenity", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("zenity: %w", err)
	}
	return strings.TrimSpace(string(out)), true, nil
}

func (z zenityService) PickImage() (string, bool, error) {
	return z.run("--file-selection",
		"--title=Load Image",
		"--file-filter=PNG images | *.png *.PNG")
}

func (z zenityService) PickColor(cur uint32) (uint32, bool, error) {
	out, ok, err := z.run("--color-selection",
		"--title=Pick Color",
		"--color="+formatRGB(cur))
	if err != nil || !ok {
		return 0, false, err
	}
	picked, hasAlpha, err := parseColor(out)
	if err != nil {
		return 0, false, err
	}
	if !hasAlpha {
		picked |= cur & 0xFF000000
	}
	return picked, true, nil
}

type unavailableService struct{}

func (unavailableService) PickImage() (string, bool, error) {
	return "", false, errors.New("no dialog backend available, install zenity")
}

func (unavailableService) PickColor(uint32) (uint32, bool, error) {
	return 0, false, errors.New("no dialog backend available, install zenity")
}
