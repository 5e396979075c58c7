package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ErrNoAlphaChannel is returned for PNGs without a straight RGBA color type.
// Grayscale, indexed, and RGB-without-alpha images are rejected rather than
// converted: an overlay with no alpha data would render as an opaque block.
var ErrNoAlphaChannel = errors.New("png has no alpha channel: only 8-bit RGBA color type is supported")

// DecodePNG decodes a crosshair image, requiring the RGBA color type.
func DecodePNG(r io.Reader) (*Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding png: %w", err)
	}

	// png.Decode yields *image.NRGBA only for true 8-bit RGBA input; every
	// other color type decodes to a different concrete type.
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		return nil, ErrNoAlphaChannel
	}

	b := nrgba.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &Image{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		copy(out.Pix[y*w*4:], src)
	}
	return out, nil
}

// LoadPNG reads and decodes a crosshair image from disk.
func LoadPNG(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return DecodePNG(f)
}
