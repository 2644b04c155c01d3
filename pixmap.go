package swayimg

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gcorrad/swayimg/internal/interp"
)

// Pixmap represents a rectangular pixel buffer (RGBA, 4 bytes per
// pixel).
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-bounds
// coordinates return transparent black.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Fill fills a rectangular region with a color. The region is clipped
// to the pixmap bounds.
func (p *Pixmap) Fill(r Rect, c color.NRGBA) {
	r = r.Intersect(Rect{Width: p.width, Height: p.height})
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		i := (y*p.width + r.X) * 4
		for x := 0; x < r.Width; x++ {
			p.data[i+0] = c.R
			p.data[i+1] = c.G
			p.data[i+2] = c.B
			p.data[i+3] = c.A
			i += 4
		}
	}
}

// Grid fills a rectangular region with a two-color checkered grid
// (used as the transparency background). step is the cell size in
// pixels; the pattern is anchored at the pixmap origin so scrolling
// does not shift it.
func (p *Pixmap) Grid(r Rect, step int, c1, c2 color.NRGBA) {
	if step <= 0 {
		step = 1
	}
	r = r.Intersect(Rect{Width: p.width, Height: p.height})
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		i := (y*p.width + r.X) * 4
		for x := r.X; x < r.Right(); x++ {
			c := c1
			if (x/step+y/step)%2 == 1 {
				c = c2
			}
			p.data[i+0] = c.R
			p.data[i+1] = c.G
			p.data[i+2] = c.B
			p.data[i+3] = c.A
			i += 4
		}
	}
}

// Put draws src scaled by scale with its top-left corner at (x, y),
// clipped to the pixmap bounds. When alpha is set the source is
// composited over the existing content, otherwise it overwrites it.
// mode selects the sampling kernel.
func (p *Pixmap) Put(src *Pixmap, x, y int, scale float64, alpha bool, mode interp.Mode) {
	if scale <= 0 || src.width == 0 || src.height == 0 {
		return
	}

	dst := Rect{
		X:      x,
		Y:      y,
		Width:  int(scale * float64(src.width)),
		Height: int(scale * float64(src.height)),
	}
	dst = dst.Intersect(Rect{Width: p.width, Height: p.height})
	if dst.Empty() {
		return
	}

	for dy := dst.Y; dy < dst.Bottom(); dy++ {
		fy := (float64(dy-y) + 0.5) / scale
		i := (dy*p.width + dst.X) * 4
		for dx := dst.X; dx < dst.Right(); dx++ {
			fx := (float64(dx-x) + 0.5) / scale
			r, g, b, a := interp.Sample(src.data, src.width, src.height, fx, fy, mode)
			if alpha && a != 255 {
				bg := 255 - int(a)
				r = uint8((int(r)*int(a) + int(p.data[i+0])*bg) / 255)
				g = uint8((int(g)*int(a) + int(p.data[i+1])*bg) / 255)
				b = uint8((int(b)*int(a) + int(p.data[i+2])*bg) / 255)
				a = uint8(min(255, int(a)+(int(p.data[i+3])*bg)/255))
			}
			p.data[i+0] = r
			p.data[i+1] = g
			p.data[i+2] = b
			p.data[i+3] = a
			i += 4
		}
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 {
		copy(pm.data, nrgba.Pix)
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.SetPixel(x, y, c)
		}
	}

	return pm
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
