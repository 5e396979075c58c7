// Package deps checks for the external tools reticle shells out to. None
// are hard requirements: the overlay itself runs without them, but pickers,
// notifications, and monitor detection degrade when they are missing.
package deps

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Dependency represents an external tool reticle can use
type Dependency struct {
	Name        string // Command name (e.g., "zenity")
	Description string // Human-readable description
	Degraded    string // What stops working without it
}

// CheckResult contains the result of checking a dependency
type CheckResult struct {
	Dependency Dependency
	Available  bool
	Path       string // Path to the executable if found
	Error      error  // Error if check failed
}

// LinuxDeps lists the tools used on Linux. Windows talks to the OS
// directly and needs none of these.
var LinuxDeps = []Dependency{
	{
		Name:        "zenity",
		Description: "Native file and color picker dialogs",
		Degraded:    "Load Image and Pick Color are unavailable",
	},
	{
		Name:        "notify-send",
		Description: "Desktop notifications",
		Degraded:    "errors are only logged, not shown",
	},
	{
		Name:        "hyprctl",
		Description: "Monitor enumeration on Hyprland",
		Degraded:    "a single 1080p monitor is assumed",
	},
}

// ForPlatform returns the dependency list for the running OS.
func ForPlatform() []Dependency {
	if runtime.GOOS == "linux" {
		return LinuxDeps
	}
	return nil
}

// Check verifies if a single dependency is available
func Check(dep Dependency) CheckResult {
	result := CheckResult{Dependency: dep}

	path, err := exec.LookPath(dep.Name)
	if err != nil {
		result.Available = false
		result.Error = err
	} else {
		result.Available = true
		result.Path = path
	}

	return result
}

// CheckAll verifies every platform dependency
func CheckAll() []CheckResult {
	var results []CheckResult
	for _, dep := range ForPlatform() {
		results = append(results, Check(dep))
	}
	return results
}

// Missing returns the dependencies that were not found
func Missing() []CheckResult {
	var missing []CheckResult
	for _, r := range CheckAll() {
		if !r.Available {
			missing = append(missing, r)
		}
	}
	return missing
}

// FormatMissing returns a formatted string of missing dependencies
func FormatMissing(results []CheckResult) string {
	if len(results) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Missing tools:\n\n")

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("  • %s\n", r.Dependency.Name))
		sb.WriteString(fmt.Sprintf("    %s; without it %s.\n\n", r.Dependency.Description, r.Dependency.Degraded))
	}

	return sb.String()
}
