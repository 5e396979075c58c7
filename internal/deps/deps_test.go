package deps

import (
	"strings"
	"testing"
)

func TestCheckFound(t *testing.T) {
	r := Check(Dependency{Name: "sh", Description: "shell"})
	if !r.Available {
		t.Skip("no sh on this system")
	}
	if r.Path == "" || r.Error != nil {
		t.Errorf("found dependency has path=%q err=%v", r.Path, r.Error)
	}
}

func TestCheckMissing(t *testing.T) {
	r := Check(Dependency{Name: "reticle-no-such-tool", Description: "nope"})
	if r.Available || r.Error == nil {
		t.Errorf("missing dependency reported available=%v err=%v", r.Available, r.Error)
	}
}

func TestFormatMissing(t *testing.T) {
	if got := FormatMissing(nil); got != "" {
		t.Errorf("empty missing list formatted as %q", got)
	}
	out := FormatMissing([]CheckResult{
		{Dependency: Dependency{Name: "zenity", Description: "pickers", Degraded: "no dialogs"}},
	})
	if !strings.Contains(out, "zenity") || !strings.Contains(out, "no dialogs") {
		t.Errorf("formatted output missing content: %q", out)
	}
}
