// Package geometry computes overlay window placement and crosshair layout.
//
// Everything in here is pure integer math. The tricky part is parity: a
// monitor whose width is even has its geometric center on a pixel boundary,
// while an odd width puts it in the middle of a pixel. To keep the crosshair
// centered exactly (not off by half a pixel), the overlay window dimension
// must share the monitor dimension's parity along each axis, and the cross
// stroke must share the window dimension's parity.
package geometry

// Parity classifies a pixel dimension as even or odd.
type Parity int

const (
	Even Parity = iota
	Odd
)

// ParityOf returns the parity of a pixel dimension.
func ParityOf(n int) Parity {
	if n%2 == 0 {
		return Even
	}
	return Odd
}

func (p Parity) String() string {
	if p == Even {
		return "even"
	}
	return "odd"
}

// Rect is a pixel rectangle in virtual-desktop coordinates. X and Y may be
// negative for monitors left of or above the primary.
type Rect struct {
	X, Y int
	W, H int
}

// Center2 returns the rectangle's geometric center in half-pixel units.
// Working in half pixels keeps the math exact when a dimension is odd.
func (r Rect) Center2() (cx2, cy2 int) {
	return 2*r.X + r.W, 2*r.Y + r.H
}

// MatchParity grows size by one pixel if needed so it shares the parity of
// dim. Growing (rather than shrinking) keeps size >= 1 intact.
func MatchParity(size, dim int) int {
	if size%2 != dim%2 {
		return size + 1
	}
	return size
}

// WindowRect places an overlay window for a crosshair of nominal size on the
// given monitor, with the crosshair center displaced from the monitor center
// by (offsetX, offsetY). The returned rectangle may extend beyond, or lie
// entirely outside, the monitor bounds; callers must not clamp it.
//
// The window dimensions are the nominal size adjusted to match the monitor's
// parity per axis, so the window center lands exactly on the monitor's
// geometric center plus the offset.
func WindowRect(mon Rect, size, offsetX, offsetY int) Rect {
	w := MatchParity(size, mon.W)
	h := MatchParity(size, mon.H)
	return Rect{
		X: mon.X + (mon.W-w)/2 + offsetX,
		Y: mon.Y + (mon.H-h)/2 + offsetY,
		W: w,
		H: h,
	}
}

// ImageWindowRect places an overlay window of the exact pixel dimensions
// (w, h), centered on the monitor center plus offset. Used for custom images,
// whose dimensions are fixed by the source rather than derived from size.
// When the image parity differs from the monitor parity the center is off by
// half a pixel; that is inherent to the image and not correctable.
func ImageWindowRect(mon Rect, w, h, offsetX, offsetY int) Rect {
	return Rect{
		X: mon.X + divFloor(mon.W-w, 2) + offsetX,
		Y: mon.Y + divFloor(mon.H-h, 2) + offsetY,
		W: w,
		H: h,
	}
}

// Stroke returns the thickness in pixels of the cross bars for a crosshair of
// nominal size rendered into a window dimension dim. The base thickness is a
// non-decreasing step function of size; it is then widened by one pixel when
// its parity disagrees with dim, so the bar straddles the window center
// exactly.
func Stroke(size, dim int) int {
	t := 1 + size/24
	if t%2 != dim%2 {
		t++
	}
	if t > dim {
		t = dim
	}
	return t
}

// CenterSpan returns the first index and count of the center rows (or
// columns) covered by a bar of the given stroke in a window dimension dim.
// Stroke and dim must share parity, which Stroke guarantees.
func CenterSpan(dim, stroke int) (start, n int) {
	return (dim - stroke) / 2, stroke
}

// divFloor divides rounding toward negative infinity. Go's integer division
// truncates toward zero, which is wrong for negative window coordinates.
func divFloor(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
