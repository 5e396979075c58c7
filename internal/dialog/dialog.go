// Package dialog opens native file and color pickers. Calls block until the
// user confirms or cancels, so run them from a goroutine that may pause.
package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var dlgLog = log.With().Str("module", "dialog").Logger()

// Service opens modal pickers. The second return value is false when the
// user cancelled, which is not an error.
type Service interface {
	// PickImage asks for a PNG path.
	PickImage() (path string, ok bool, err error)
	// PickColor asks for a crosshair color, seeded with the current one.
	// The alpha channel of cur is preserved when the picker has no alpha
	// control.
	PickColor(cur uint32) (color uint32, ok bool, err error)
}

// New returns the platform picker service.
func New() Service {
	return platformService()
}

// parseColor accepts the formats common pickers emit: "#RRGGBB",
// "rgb(r,g,b)", and "rgba(r,g,b,a)" with a as a 0..1 float. The returned
// value is ARGB; hasAlpha reports whether the input carried its own alpha.
func parseColor(s string) (argb uint32, hasAlpha bool, err error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return 0, false, fmt.Errorf("unexpected color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false, fmt.Errorf("unexpected color %q", s)
		}
		return uint32(v), false, nil
	}

	var body string
	alpha := false
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[len("rgba(") : len(s)-1]
		alpha = true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[len("rgb(") : len(s)-1]
	default:
		return 0, false, fmt.Errorf("unexpected color %q", s)
	}
	parts := strings.Split(body, ",")
	want := 3
	if alpha {
		want = 4
	}
	if len(parts) != want {
		return 0, false, fmt.Errorf("unexpected color %q", s)
	}

	var rgb [3]uint32
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return 0, false, fmt.Errorf("unexpected color %q", s)
		}
		rgb[i] = uint32(n)
	}
	argb = rgb[0]<<16 | rgb[1]<<8 | rgb[2]
	if alpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return 0, false, fmt.Errorf("unexpected color %q", s)
		}
		argb |= uint32(f*255+0.5) << 24
	}
	return argb, alpha, nil
}

func formatRGB(argb uint32) string {
	return fmt.Sprintf("#%06X", argb&0xFFFFFF)
}
