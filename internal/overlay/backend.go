package overlay

import "github.com/overlaykit/reticle/internal/geometry"

// Backend abstracts the native overlay window. Pixel buffers are
// premultiplied ARGB, row-major, rect.W*rect.H entries.
type Backend interface {
	// Create makes the window at the given rect, initially visible.
	Create(rect geometry.Rect) error
	// Present moves and resizes the window to rect and blits the buffer in
	// one operation.
	Present(rect geometry.Rect, pix []uint32) error
	// SetVisible shows or hides the window without destroying it.
	SetVisible(visible bool) error
	// Close destroys the window. Safe to call more than once.
	Close() error
}

// Headless is a Backend that records calls instead of touching the OS. It
// backs tests and platforms without a native implementation.
type Headless struct {
	Created  bool
	Visible  bool
	Rect     geometry.Rect
	Pix      []uint32
	Presents int
	Closed   bool
}

func (h *Headless) Create(rect geometry.Rect) error {
	h.Created = true
	h.Visible = true
	h.Rect = rect
	return nil
}

func (h *Headless) Present(rect geometry.Rect, pix []uint32) error {
	h.Rect = rect
	h.Pix = pix
	h.Presents++
	return nil
}

func (h *Headless) SetVisible(visible bool) error {
	h.Visible = visible
	return nil
}

func (h *Headless) Close() error {
	h.Closed = true
	return nil
}
