//go:build windows

package monitor

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
)

const monitorinfofPrimary = 1

type winRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type monitorInfoExW struct {
	Size    uint32
	Monitor winRect
	Work    winRect
	Flags   uint32
	Device  [32]uint16
}

type winProvider struct{}

func platformProvider() Provider {
	return winProvider{}
}

// Monitors walks the display list via EnumDisplayMonitors. The primary
// monitor is moved to index 0 so a default monitor_index of 0 means "the
// primary display" regardless of enumeration order.
func (winProvider) Monitors() ([]Monitor, error) {
	var monitors []Monitor

	cb := syscall.NewCallback(func(hMonitor, hdc, lprc, lparam uintptr) uintptr {
		var mi monitorInfoExW
		mi.Size = uint32(unsafe.Sizeof(mi))

		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret != 0 {
			monitors = append(monitors, Monitor{
				Name:    windows.UTF16ToString(mi.Device[:]),
				X:       int(mi.Monitor.Left),
				Y:       int(mi.Monitor.Top),
				Width:   int(mi.Monitor.Right - mi.Monitor.Left),
				Height:  int(mi.Monitor.Bottom - mi.Monitor.Top),
				Scale:   1,
				Primary: mi.Flags&monitorinfofPrimary != 0,
			})
		}
		return 1
	})

	procEnumDisplayMonitors.Call(0, 0, cb, 0)
	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}

	for i, m := range monitors {
		if m.Primary && i != 0 {
			monitors[0], monitors[i] = monitors[i], monitors[0]
			break
		}
	}
	return monitors, nil
}
