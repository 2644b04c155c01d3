package swayimg

import (
	"image/color"
	"testing"

	"github.com/gcorrad/swayimg/internal/interp"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(5, 5, red)

	if got := pm.GetPixel(5, 5); got != red {
		t.Errorf("GetPixel(5,5) = %+v, want red", got)
	}
	if got := pm.GetPixel(4, 5); got != (color.NRGBA{}) {
		t.Errorf("GetPixel(4,5) = %+v, want zero", got)
	}
}

func TestPixmap_SetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(blue)

	for _, p := range []Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}} {
		pm.SetPixel(p.X, p.Y, red)
	}
	for i, v := range pm.Data() {
		want := uint8(0)
		switch i % 4 {
		case 2, 3:
			want = 0xff
		}
		if v != want {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmap_FillClipped(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Fill(Rect{X: 6, Y: 6, Width: 10, Height: 10}, red)

	if pm.GetPixel(7, 7) != red {
		t.Error("pixel inside clipped fill not set")
	}
	if pm.GetPixel(5, 5) != (color.NRGBA{}) {
		t.Error("pixel outside fill modified")
	}

	// fully outside region is a no-op
	pm.Fill(Rect{X: -20, Y: 0, Width: 10, Height: 10}, green)
	if pm.GetPixel(0, 0) != (color.NRGBA{}) {
		t.Error("out-of-bounds fill modified pixels")
	}
}

func TestPixmap_Grid(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Grid(Rect{Width: 8, Height: 8}, 2, red, green)

	if pm.GetPixel(0, 0) != red {
		t.Errorf("cell (0,0) = %+v, want first color", pm.GetPixel(0, 0))
	}
	if pm.GetPixel(2, 0) != green {
		t.Errorf("cell (2,0) = %+v, want second color", pm.GetPixel(2, 0))
	}
	if pm.GetPixel(2, 2) != red {
		t.Errorf("cell (2,2) = %+v, want first color", pm.GetPixel(2, 2))
	}
	if pm.GetPixel(0, 2) != green {
		t.Errorf("cell (0,2) = %+v, want second color", pm.GetPixel(0, 2))
	}
}

func TestPixmap_PutScaled(t *testing.T) {
	src := NewPixmap(2, 2)
	src.SetPixel(0, 0, red)
	src.SetPixel(1, 0, green)
	src.SetPixel(0, 1, green)
	src.SetPixel(1, 1, red)

	dst := NewPixmap(8, 8)
	dst.Put(src, 0, 0, 4.0, false, interp.Nearest)

	// each source pixel expands into a 4x4 block
	if dst.GetPixel(1, 1) != red || dst.GetPixel(3, 3) != red {
		t.Error("top-left block not red")
	}
	if dst.GetPixel(5, 1) != green {
		t.Error("top-right block not green")
	}
	if dst.GetPixel(6, 6) != red {
		t.Error("bottom-right block not red")
	}
}

func TestPixmap_PutClipped(t *testing.T) {
	src := NewPixmap(4, 4)
	src.Clear(red)

	dst := NewPixmap(8, 8)
	dst.Put(src, -2, -2, 1.0, false, interp.Nearest)

	if dst.GetPixel(0, 0) != red || dst.GetPixel(1, 1) != red {
		t.Error("visible part of the clipped image not drawn")
	}
	if dst.GetPixel(2, 2) != (color.NRGBA{}) {
		t.Error("pixels beyond the image extent modified")
	}
}

func TestPixmap_PutAlphaBlend(t *testing.T) {
	src := NewPixmap(1, 1)
	src.SetPixel(0, 0, color.NRGBA{R: 0xff, A: 0x80}) // half-transparent red

	dst := NewPixmap(1, 1)
	dst.Clear(color.NRGBA{B: 0xff, A: 0xff})

	dst.Put(src, 0, 0, 1.0, true, interp.Nearest)

	got := dst.GetPixel(0, 0)
	if got.R < 0x70 || got.R > 0x90 || got.B < 0x70 || got.B > 0x90 {
		t.Errorf("blend result = %+v, want roughly half red half blue", got)
	}
	if got.A != 0xff {
		t.Errorf("blend alpha = %#x, want opaque", got.A)
	}
}

func TestPixmap_FromImageRoundtrip(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.SetPixel(1, 2, red)
	pm.SetPixel(2, 0, blue)

	got := FromImage(pm.ToImage())
	if got.GetPixel(1, 2) != red || got.GetPixel(2, 0) != blue {
		t.Error("pixels lost in image roundtrip")
	}
}
