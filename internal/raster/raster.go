// Package raster renders crosshair pixel buffers.
//
// Output buffers are dense rows of 32-bit ARGB words with premultiplied
// alpha, which is what layered-window compositors expect. A zero word is a
// fully transparent pixel.
package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/overlaykit/reticle/internal/geometry"
)

// Image is a decoded custom crosshair image: straight-alpha RGBA pixels in
// row-major order, 4 bytes per pixel.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// Cross renders the built-in crosshair into a w×h buffer: a horizontal and a
// vertical bar through the window center, stroke derived from the nominal
// size. Pixels outside the bars are fully transparent. color is straight
// ARGB; the output is premultiplied.
func Cross(w, h, size int, color uint32) []uint32 {
	buf := make([]uint32, w*h)
	c := PremultiplyARGB(color)

	// not enough pixels for a cross shape, draw a dot instead
	if w <= 2 || h <= 2 {
		for i := range buf {
			buf[i] = c
		}
		return buf
	}

	// horizontal bar
	hStroke := geometry.Stroke(size, h)
	rowStart, rows := geometry.CenterSpan(h, hStroke)
	for y := rowStart; y < rowStart+rows; y++ {
		row := buf[y*w : (y+1)*w]
		for x := range row {
			row[x] = c
		}
	}

	// vertical bar
	vStroke := geometry.Stroke(size, w)
	colStart, cols := geometry.CenterSpan(w, vStroke)
	for y := 0; y < h; y++ {
		for x := colStart; x < colStart+cols; x++ {
			buf[y*w+x] = c
		}
	}

	return buf
}

// Blit copies a custom image into a w×h buffer. When the target size differs
// from the image's native dimensions the image is point-sampled with
// nearest-neighbor so single-pixel boundaries stay crisp.
func Blit(img *Image, w, h int) []uint32 {
	src := &image.RGBA{
		Pix:    img.Pix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}

	pix := img.Pix
	if w != img.Width || h != img.Height {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.NearestNeighbor.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)
		pix = dst.Pix
	}

	buf := make([]uint32, w*h)
	for i := range buf {
		r := pix[i*4]
		g := pix[i*4+1]
		b := pix[i*4+2]
		a := pix[i*4+3]
		buf[i] = uint32(a)<<24 |
			uint32(mulChannel(r, a))<<16 |
			uint32(mulChannel(g, a))<<8 |
			uint32(mulChannel(b, a))
	}
	return buf
}

// Transparent returns a fully transparent w×h buffer.
func Transparent(w, h int) []uint32 {
	return make([]uint32, w*h)
}

// PremultiplyARGB multiplies the color channels of a straight-alpha ARGB
// word by its alpha.
func PremultiplyARGB(c uint32) uint32 {
	a := uint8(c >> 24)
	r := uint8(c >> 16)
	g := uint8(c >> 8)
	b := uint8(c)
	return uint32(a)<<24 |
		uint32(mulChannel(r, a))<<16 |
		uint32(mulChannel(g, a))<<8 |
		uint32(mulChannel(b, a))
}

// mulChannel computes a*b/255 rounded to nearest. The intermediate product
// needs 16 bits; adding 127 before dividing rounds instead of truncating.
func mulChannel(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
