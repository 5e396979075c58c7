//go:build windows

package overlay

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/overlaykit/reticle/internal/geometry"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procRegisterClassExW    = user32.NewProc("RegisterClassExW")
	procCreateWindowExW     = user32.NewProc("CreateWindowExW")
	procDefWindowProcW      = user32.NewProc("DefWindowProcW")
	procDestroyWindow       = user32.NewProc("DestroyWindow")
	procPostMessageW        = user32.NewProc("PostMessageW")
	procPostQuitMessage     = user32.NewProc("PostQuitMessage")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procShowWindow          = user32.NewProc("ShowWindow")
	procUpdateLayeredWindow = user32.NewProc("UpdateLayeredWindow")
	procGetDC               = user32.NewProc("GetDC")
	procReleaseDC           = user32.NewProc("ReleaseDC")

	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procCreateDIBSection   = gdi32.NewProc("CreateDIBSection")
	procSelectObject       = gdi32.NewProc("SelectObject")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
)

const (
	wsExLayered     = 0x00080000
	wsExTransparent = 0x00000020
	wsExTopmost     = 0x00000008
	wsExToolWindow  = 0x00000080
	wsExNoActivate  = 0x08000000
	wsPopup         = 0x80000000

	swHide           = 0
	swShowNoActivate = 4

	wmClose   = 0x0010
	wmDestroy = 0x0002

	ulwAlpha     = 0x00000002
	acSrcOver    = 0x00
	acSrcAlpha   = 0x01
	biRGB        = 0
	dibRGBColors = 0
)

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type point struct {
	X, Y int32
}

type size struct {
	CX, CY int32
}

type msg struct {
	Hwnd    windows.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type blendFunction struct {
	BlendOp             byte
	BlendFlags          byte
	SourceConstantAlpha byte
	AlphaFormat         byte
}

const windowClassName = "ReticleOverlay"

// winBackend is a layered, topmost, click-through tool window. The window
// is created and its messages pumped on a dedicated locked OS thread;
// UpdateLayeredWindow and ShowWindow are safe from the loop goroutine.
type winBackend struct {
	hwnd windows.Handle
	done chan struct{}
}

// NewBackend returns the native overlay window backend.
func NewBackend() Backend {
	return &winBackend{done: make(chan struct{})}
}

func wndProc(hwnd, message, wparam, lparam uintptr) uintptr {
	switch message {
	case wmDestroy:
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, message, wparam, lparam)
	return ret
}

func (w *winBackend) Create(rect geometry.Rect) error {
	created := make(chan error, 1)
	go func() {
		// The window and its message queue belong to this thread for the
		// process lifetime.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := w.createWindow(rect); err != nil {
			created <- err
			return
		}
		created <- nil
		w.pump()
		close(w.done)
	}()
	return <-created
}

func (w *winBackend) createWindow(rect geometry.Rect) error {
	inst, err := windows.GetModuleHandle(nil)
	if err != nil {
		return fmt.Errorf("GetModuleHandle: %w", err)
	}

	className, err := windows.UTF16PtrFromString(windowClassName)
	if err != nil {
		return err
	}
	wc := wndClassExW{
		Size:      uint32(unsafe.Sizeof(wndClassExW{})),
		WndProc:   syscall.NewCallback(wndProc),
		Instance:  inst,
		ClassName: className,
	}
	if atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return fmt.Errorf("RegisterClassExW: %w", callErr)
	}

	title, err := windows.UTF16PtrFromString("Reticle")
	if err != nil {
		return err
	}
	hwnd, _, callErr := procCreateWindowExW.Call(
		wsExLayered|wsExTransparent|wsExTopmost|wsExToolWindow|wsExNoActivate,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		wsPopup,
		uintptr(rect.X), uintptr(rect.Y), uintptr(rect.W), uintptr(rect.H),
		0, 0, uintptr(inst), 0,
	)
	if hwnd == 0 {
		return fmt.Errorf("CreateWindowExW: %w", callErr)
	}
	w.hwnd = windows.Handle(hwnd)
	procShowWindow.Call(hwnd, swShowNoActivate)
	return nil
}

func (w *winBackend) pump() {
	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// Present blits a premultiplied ARGB buffer and moves the window in one
// UpdateLayeredWindow call. The uint32 pixels are already in the BGRA byte
// order GDI expects on little-endian Windows.
func (w *winBackend) Present(rect geometry.Rect, pix []uint32) error {
	if w.hwnd == 0 {
		return fmt.Errorf("overlay window not created")
	}
	if len(pix) < rect.W*rect.H {
		return fmt.Errorf("pixel buffer too small: %d < %d", len(pix), rect.W*rect.H)
	}

	screen, _, callErr := procGetDC.Call(0)
	if screen == 0 {
		return fmt.Errorf("GetDC: %w", callErr)
	}
	defer procReleaseDC.Call(0, screen)

	memDC, _, callErr := procCreateCompatibleDC.Call(screen)
	if memDC == 0 {
		return fmt.Errorf("CreateCompatibleDC: %w", callErr)
	}
	defer procDeleteDC.Call(memDC)

	// Negative height selects a top-down DIB matching the buffer layout.
	bi := bitmapInfoHeader{
		Size:        uint32(unsafe.Sizeof(bitmapInfoHeader{})),
		Width:       int32(rect.W),
		Height:      -int32(rect.H),
		Planes:      1,
		BitCount:    32,
		Compression: biRGB,
	}
	var bits uintptr
	hbm, _, callErr := procCreateDIBSection.Call(
		screen,
		uintptr(unsafe.Pointer(&bi)),
		dibRGBColors,
		uintptr(unsafe.Pointer(&bits)),
		0, 0,
	)
	if hbm == 0 || bits == 0 {
		return fmt.Errorf("CreateDIBSection: %w", callErr)
	}
	defer procDeleteObject.Call(hbm)

	dst := unsafe.Slice((*uint32)(unsafe.Pointer(bits)), rect.W*rect.H)
	copy(dst, pix)

	old, _, _ := procSelectObject.Call(memDC, hbm)
	defer procSelectObject.Call(memDC, old)

	pos := point{X: int32(rect.X), Y: int32(rect.Y)}
	sz := size{CX: int32(rect.W), CY: int32(rect.H)}
	src := point{}
	blend := blendFunction{
		BlendOp:             acSrcOver,
		SourceConstantAlpha: 255,
		AlphaFormat:         acSrcAlpha,
	}
	ret, _, callErr := procUpdateLayeredWindow.Call(
		uintptr(w.hwnd),
		screen,
		uintptr(unsafe.Pointer(&pos)),
		uintptr(unsafe.Pointer(&sz)),
		memDC,
		uintptr(unsafe.Pointer(&src)),
		0,
		uintptr(unsafe.Pointer(&blend)),
		ulwAlpha,
	)
	if ret == 0 {
		return fmt.Errorf("UpdateLayeredWindow: %w", callErr)
	}
	return nil
}

func (w *winBackend) SetVisible(visible bool) error {
	if w.hwnd == 0 {
		return fmt.Errorf("overlay window not created")
	}
	cmd := uintptr(swHide)
	if visible {
		cmd = swShowNoActivate
	}
	procShowWindow.Call(uintptr(w.hwnd), cmd)
	return nil
}

// Close asks the pump thread to destroy the window and waits for it.
func (w *winBackend) Close() error {
	if w.hwnd == 0 {
		return nil
	}
	procPostMessageW.Call(uintptr(w.hwnd), wmClose, 0, 0)
	<-w.done
	w.hwnd = 0
	return nil
}
