package swayimg

import (
	"image/color"

	"github.com/gcorrad/swayimg/internal/interp"
)

// Render draws the image into the window pixmap according to the
// current viewport state: window background around the image, image
// background behind transparent images, then the scaled image itself.
//
// The renderer calls this once per frame on the consumer goroutine.
func (c *Canvas) Render(img *Image, wnd *Pixmap) {
	full := Rect{Width: wnd.Width(), Height: wnd.Height()}
	vis := c.Placement().Intersect(full)

	// clear window background
	wndColor := color.NRGBA{}
	if c.windowBkg.Mode == BackgroundColor {
		wndColor = c.windowBkg.Color
		wndColor.A = 0xff
	}
	if vis.Height < full.Height {
		wnd.Fill(Rect{Width: full.Width, Height: vis.Y}, wndColor)
		wnd.Fill(Rect{Y: vis.Bottom(), Width: full.Width, Height: full.Height - vis.Bottom()}, wndColor)
	}
	if vis.Width < full.Width {
		wnd.Fill(Rect{Y: vis.Y, Width: vis.X, Height: vis.Height}, wndColor)
		wnd.Fill(Rect{X: vis.Right(), Y: vis.Y, Width: full.Width - vis.Right(), Height: vis.Height}, wndColor)
	}

	if img == nil || img.Pixmap() == nil {
		return
	}

	// clear image background
	if img.Alpha {
		switch c.imageBkg.Mode {
		case BackgroundGrid:
			wnd.Grid(vis, gridStep*c.hidpi, gridColor1, gridColor2)
		case BackgroundColor:
			ic := c.imageBkg.Color
			ic.A = 0xff
			wnd.Fill(vis, ic)
		default:
			wnd.Fill(vis, wndColor)
		}
	}

	// put image on window surface
	mode := interp.Nearest
	if c.antialias {
		mode = interp.Bicubic
	}
	wnd.Put(img.Pixmap(), c.image.X, c.image.Y, c.scale, img.Alpha, mode)
}
