//go:build windows

package hotkey

import (
	"golang.org/x/sys/windows"

	"github.com/overlaykit/reticle/internal/config"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// virtualKeys maps the named settings-file keys to Win32 virtual-key codes.
// Letters, digits, and function keys are derived in vkFor.
var virtualKeys = map[config.Key]int{
	config.KeyUp:       0x26,
	config.KeyDown:     0x28,
	config.KeyLeft:     0x25,
	config.KeyRight:    0x27,
	config.KeyPageUp:   0x21,
	config.KeyPageDown: 0x22,
	config.KeyHome:     0x24,
	config.KeyEnd:      0x23,
	config.KeyInsert:   0x2D,
	config.KeyDelete:   0x2E,
	config.KeyEscape:   0x1B,
	config.KeySpace:    0x20,
	config.KeyTab:      0x09,
	config.KeyEnter:    0x0D,
	config.KeyLControl: 0xA2,
	config.KeyRControl: 0xA3,
	config.KeyLShift:   0xA0,
	config.KeyRShift:   0xA1,
	config.KeyLAlt:     0xA4,
	config.KeyRAlt:     0xA5,
}

func vkFor(k config.Key) (int, bool) {
	if vk, ok := virtualKeys[k]; ok {
		return vk, true
	}
	if len(k) == 1 {
		// Letter and digit virtual-key codes match ASCII.
		return int(k[0]), true
	}
	if len(k) >= 2 && k[0] == 'F' {
		n := 0
		for _, c := range k[1:] {
			n = n*10 + int(c-'0')
		}
		if n >= 1 && n <= 24 {
			return 0x70 + n - 1, true
		}
	}
	return 0, false
}

type asyncKeyPoller struct{}

// NewPoller returns the platform keyboard poller.
func NewPoller() Poller {
	return asyncKeyPoller{}
}

func (asyncKeyPoller) Down(k config.Key) bool {
	vk, ok := vkFor(k)
	if !ok {
		return false
	}
	// High bit of GetAsyncKeyState is the held state.
	state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(state)&0x8000 != 0
}
