package raster

import "testing"

func argb(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func TestCrossOddSizeSingleStroke(t *testing.T) {
	// 21x21 odd window: exactly one center row and one center column
	const dim = 21
	color := argb(0xFF, 0xFF, 0, 0)
	buf := Cross(dim, dim, 20, color)

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			px := buf[y*dim+x]
			onBar := y == 10 || x == 10
			if onBar && px != color {
				t.Fatalf("(%d,%d): bar pixel = %08X, want %08X", x, y, px, color)
			}
			if !onBar && px != 0 {
				t.Fatalf("(%d,%d): background pixel = %08X, want transparent", x, y, px)
			}
		}
	}
}

func TestCrossEvenSizeDoubleStroke(t *testing.T) {
	// 20x20 even window: two center rows and two center columns
	const dim = 20
	color := argb(0xFF, 0, 0xFF, 0)
	buf := Cross(dim, dim, 20, color)

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			px := buf[y*dim+x]
			onBar := y == 9 || y == 10 || x == 9 || x == 10
			if onBar && px != color {
				t.Fatalf("(%d,%d): bar pixel = %08X, want %08X", x, y, px, color)
			}
			if !onBar && px != 0 {
				t.Fatalf("(%d,%d): background pixel = %08X, want transparent", x, y, px)
			}
		}
	}
}

func TestCrossDotFallback(t *testing.T) {
	color := argb(0xFF, 0xFF, 0xFF, 0xFF)
	buf := Cross(2, 2, 1, color)
	for i, px := range buf {
		if px != color {
			t.Fatalf("pixel %d = %08X, want solid fill", i, px)
		}
	}
}

func TestCrossPremultipliesAlpha(t *testing.T) {
	// 70% alpha red: channels must be scaled by alpha in the output
	buf := Cross(1, 1, 1, 0xB2FF0000)
	want := PremultiplyARGB(0xB2FF0000)
	if buf[0] != want {
		t.Fatalf("got %08X, want %08X", buf[0], want)
	}
	if buf[0] == 0xB2FF0000 {
		t.Fatal("output was not premultiplied")
	}
}

func TestPremultiplyARGB(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{0xFF112233, 0xFF112233}, // opaque is unchanged
		{0x00FFFFFF, 0x00000000}, // fully transparent zeroes all channels
		{0x7FFF0000, 0x7F7F0000}, // half alpha halves red (rounded)
	}
	for _, tt := range tests {
		if got := PremultiplyARGB(tt.in); got != tt.want {
			t.Errorf("PremultiplyARGB(%08X) = %08X, want %08X", tt.in, got, tt.want)
		}
	}
}

func TestMulChannelRounding(t *testing.T) {
	if mulChannel(255, 255) != 255 {
		t.Error("255*255/255 != 255")
	}
	if mulChannel(255, 0) != 0 {
		t.Error("255*0/255 != 0")
	}
	if mulChannel(255, 127) != 127 {
		t.Error("255*127/255 != 127")
	}
	// 100*128/255 = 50.19..., rounds to 50
	if got := mulChannel(100, 128); got != 50 {
		t.Errorf("mulChannel(100, 128) = %d, want 50", got)
	}
}

func checkerboard(w, h int) *Image {
	img := &Image{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if (x+y)%2 == 0 {
				img.Pix[i] = 0xFF   // r
				img.Pix[i+3] = 0xFF // a
			}
			// odd cells stay fully transparent
		}
	}
	return img
}

func TestBlitNativeSize(t *testing.T) {
	img := checkerboard(4, 4)
	buf := Blit(img, 4, 4)
	if buf[0] != argb(0xFF, 0xFF, 0, 0) {
		t.Errorf("pixel 0 = %08X", buf[0])
	}
	if buf[1] != 0 {
		t.Errorf("transparent source pixel survived as %08X", buf[1])
	}
}

func TestBlitNearestNeighborScaling(t *testing.T) {
	// 2x2 checkerboard doubled to 4x4: nearest-neighbor must keep hard
	// edges, so each source pixel becomes an exact 2x2 block
	img := checkerboard(2, 2)
	buf := Blit(img, 4, 4)

	red := argb(0xFF, 0xFF, 0, 0)
	want := []uint32{
		red, red, 0, 0,
		red, red, 0, 0,
		0, 0, red, red,
		0, 0, red, red,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("pixel %d = %08X, want %08X (smoothing detected?)", i, buf[i], want[i])
		}
	}
}

func TestBlitPremultiplies(t *testing.T) {
	img := &Image{Width: 1, Height: 1, Pix: []uint8{0xFF, 0xFF, 0xFF, 0x7F}}
	buf := Blit(img, 1, 1)
	if buf[0] != argb(0x7F, 0x7F, 0x7F, 0x7F) {
		t.Errorf("got %08X, want 7F7F7F7F", buf[0])
	}
}

func TestTransparent(t *testing.T) {
	buf := Transparent(3, 3)
	if len(buf) != 9 {
		t.Fatalf("len = %d", len(buf))
	}
	for i, px := range buf {
		if px != 0 {
			t.Errorf("pixel %d = %08X", i, px)
		}
	}
}
