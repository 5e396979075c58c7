//go:build windows

package dialog

import (
	"fmt"
	"os/exec"
	"strings"
)

type powershellService struct{}

func platformService() Service {
	return powershellService{}
}

func run(script string) (string, bool, error) {
	out, err := exec.Command("powershell", "-NoProfile", "-Sta", "-Command", script).Output()
	if err != nil {
		return "", false, fmt.Errorf("powershell: %w", err)
	}
	s := strings.TrimSpace(string(out))
	if s == "" {
		// Cancelled dialogs print nothing.
		return "", false, nil
	}
	return s, true, nil
}

func (powershellService) PickImage() (string, bool, error) {
	const script = `Add-Type -AssemblyName System.Windows.Forms
$d = New-Object System.Windows.Forms.OpenFileDialog
$d.Title = 'Load Image'
$d.Filter = 'PNG images (*.png)|*.png'
if ($d.ShowDialog() -eq [System.Windows.Forms.DialogResult]::OK) { $d.FileName }`
	return run(script)
}

func (powershellService) PickColor(cur uint32) (uint32, bool, error) {
	script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms
Add-Type -AssemblyName System.Drawing
$d = New-Object System.Windows.Forms.ColorDialog
$d.FullOpen = $true
$d.Color = [System.Drawing.Color]::FromArgb(0x%06X)
if ($d.ShowDialog() -eq [System.Windows.Forms.DialogResult]::OK) {
  '#{0:X2}{1:X2}{2:X2}' -f $d.Color.R, $d.Color.G, $d.Color.B
}`, cur&0xFFFFFF)
	out, ok, err := run(script)
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
