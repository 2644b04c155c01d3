package swayimg

import (
	"fmt"
	"strconv"
)

// Scale thresholds.
const (
	// MinScalePx is the minimum size of the scaled image in pixels:
	// zooming out stops once the shorter dimension reaches this floor.
	MinScalePx = 10

	// MaxScale is the maximum scale factor (10000%).
	MaxScale = 100.0
)

// ScaleMode is a named policy for deriving the scale factor from the
// image and window dimensions.
type ScaleMode int

const (
	// ScaleFitOptimal fits the image to the window but never upscales
	// past 100%.
	ScaleFitOptimal ScaleMode = iota
	// ScaleFitWindow fits the image to the window, upscaling if needed.
	ScaleFitWindow
	// ScaleFitWidth fits the image width to the window width.
	ScaleFitWidth
	// ScaleFitHeight fits the image height to the window height.
	ScaleFitHeight
	// ScaleFillWindow fills the window, cropping the longer dimension.
	ScaleFillWindow
	// ScaleRealSize shows the image at its native size (100%).
	ScaleRealSize
)

var scaleModeNames = [...]string{
	ScaleFitOptimal: "optimal",
	ScaleFitWindow:  "fit",
	ScaleFitWidth:   "width",
	ScaleFitHeight:  "height",
	ScaleFillWindow: "fill",
	ScaleRealSize:   "real",
}

// String returns the configuration name of the scale mode.
func (m ScaleMode) String() string {
	if m < 0 || int(m) >= len(scaleModeNames) {
		return "unknown"
	}
	return scaleModeNames[m]
}

// ParseScaleMode converts a configuration name to a ScaleMode.
func ParseScaleMode(s string) (ScaleMode, error) {
	for i, name := range scaleModeNames {
		if s == name {
			return ScaleMode(i), nil
		}
	}
	return ScaleFitOptimal, fmt.Errorf("invalid scale mode %q", s)
}

// Canvas is the viewport transform engine: it owns the current scale
// factor and the image placement rectangle relative to a window of
// known size.
//
// All methods are synchronous and must be called from the consumer
// goroutine only; Canvas performs no internal locking.
type Canvas struct {
	imageBkg  Background
	windowBkg Background
	antialias bool

	initialScale ScaleMode
	scale        float64

	image  Rect // X,Y: placement; Width,Height: native image size
	window Size
	hidpi  int
}

// NewCanvas creates a canvas with the given options.
func NewCanvas(opts ...CanvasOption) *Canvas {
	c := &Canvas{
		imageBkg:     Background{Mode: BackgroundGrid},
		windowBkg:    Background{Mode: BackgroundTransparent},
		initialScale: ScaleFitOptimal,
		hidpi:        1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// scaledSize returns the image dimensions under the current scale.
func (c *Canvas) scaledSize() Size {
	return Size{
		Width:  int(c.scale * float64(c.image.Width)),
		Height: int(c.scale * float64(c.image.Height)),
	}
}

// fixViewport restores the placement invariants after any mutating
// operation: an image smaller than the window on an axis is forced to
// the exact center of that axis; an oversized image is snapped so that
// no gap opens between its edges and the window edges. The rule order
// (overflow side checks, then force-center, X before Y) is part of the
// contract: for near-equal dimensions the later rules win.
func (c *Canvas) fixViewport() {
	img := Rect{X: c.image.X, Y: c.image.Y}
	img.Width = int(c.scale * float64(c.image.Width))
	img.Height = int(c.scale * float64(c.image.Height))

	if img.X > 0 && img.Right() > c.window.Width {
		c.image.X = 0
	}
	if img.Y > 0 && img.Bottom() > c.window.Height {
		c.image.Y = 0
	}
	if img.X < 0 && img.Right() < c.window.Width {
		c.image.X = c.window.Width - img.Width
	}
	if img.Y < 0 && img.Bottom() < c.window.Height {
		c.image.Y = c.window.Height - img.Height
	}
	if img.Width <= c.window.Width {
		c.image.X = c.window.Width/2 - img.Width/2
	}
	if img.Height <= c.window.Height {
		c.image.Y = c.window.Height/2 - img.Height/2
	}
}

// ResetWindow sets the window size and HiDPI factor, then re-clamps the
// image placement. It reports whether this was the first-ever call, so
// the caller can run one-time setup.
func (c *Canvas) ResetWindow(width, height, hidpi int) bool {
	first := c.window.Width == 0

	c.window.Width = width
	c.window.Height = height
	if hidpi < 1 {
		hidpi = 1
	}
	c.hidpi = hidpi

	c.fixViewport()

	return first
}

// ResetImage sets the native image size and applies the initial scale
// mode to compute scale and centered placement.
func (c *Canvas) ResetImage(width, height int) {
	c.image = Rect{Width: width, Height: height}
	c.scale = 0
	c.SetScale(c.initialScale)
}

// SetScale applies a fixed scale mode, re-centers the image in the
// window and clamps the placement.
func (c *Canvas) SetScale(mode ScaleMode) {
	if c.image.Width == 0 || c.image.Height == 0 {
		return
	}

	scaleW := float64(c.window.Width) / float64(c.image.Width)
	scaleH := float64(c.window.Height) / float64(c.image.Height)

	switch mode {
	case ScaleFitOptimal:
		c.scale = min(scaleW, scaleH)
		if c.scale > 1.0 {
			c.scale = 1.0
		}
	case ScaleFitWindow:
		c.scale = min(scaleW, scaleH)
	case ScaleFitWidth:
		c.scale = scaleW
	case ScaleFitHeight:
		c.scale = scaleH
	case ScaleFillWindow:
		c.scale = max(scaleW, scaleH)
	case ScaleRealSize:
		c.scale = 1.0
	}

	// center viewport
	sz := c.scaledSize()
	c.image.X = c.window.Width/2 - sz.Width/2
	c.image.Y = c.window.Height/2 - sz.Height/2

	c.fixViewport()
}

// Zoom adjusts the scale by the given percentage of the current scale,
// clamped to [minScale, MaxScale] where minScale keeps the scaled image
// at least MinScalePx pixels on its more restrictive axis.
//
// The zoom is anchor-preserving around the window center: the image
// point under the center of the window stays under it after scaling, so
// incremental zoom gestures do not jump.
func (c *Canvas) Zoom(percent int) {
	if c.image.Width == 0 || c.image.Height == 0 {
		return
	}

	old := c.scaledSize()
	step := (c.scale / 100) * float64(percent)

	if percent > 0 {
		c.scale += step
		if c.scale > MaxScale {
			c.scale = MaxScale
		}
	} else {
		scaleW := float64(MinScalePx) / float64(c.image.Width)
		scaleH := float64(MinScalePx) / float64(c.image.Height)
		scaleMin := max(scaleW, scaleH)
		c.scale += step
		if c.scale < scaleMin {
			c.scale = scaleMin
		}
	}

	// move viewport to keep the window center on the same image point
	if old.Width > 0 && old.Height > 0 {
		sz := c.scaledSize()
		deltaW := old.Width - sz.Width
		deltaH := old.Height - sz.Height
		cntrX := c.window.Width/2 - c.image.X
		cntrY := c.window.Height/2 - c.image.Y
		c.image.X += int(float64(cntrX) / float64(old.Width) * float64(deltaW))
		c.image.Y += int(float64(cntrY) / float64(old.Height) * float64(deltaH))
	}

	c.fixViewport()
}

// Move pans the image by percent of the window dimension along the
// chosen axis. It reports whether the position actually changed after
// clamping.
func (c *Canvas) Move(horizontal bool, percent int) bool {
	oldX := c.image.X
	oldY := c.image.Y

	if horizontal {
		c.image.X += (c.window.Width / 100) * percent
	} else {
		c.image.Y += (c.window.Height / 100) * percent
	}

	c.fixViewport()

	return c.image.X != oldX || c.image.Y != oldY
}

// Drag pans the image by raw pixel deltas. It reports whether the
// position actually changed after clamping.
func (c *Canvas) Drag(dx, dy int) bool {
	oldX := c.image.X
	oldY := c.image.Y

	c.image.X += dx
	c.image.Y += dy
	c.fixViewport()

	return c.image.X != oldX || c.image.Y != oldY
}

// SwapDimensions exchanges the image width and height in place (for
// orientation changes), shifting the placement so the visual center is
// preserved.
func (c *Canvas) SwapDimensions() {
	diff := c.image.Width - c.image.Height
	shift := int(c.scale*float64(diff)) / 2

	c.image.X += shift
	c.image.Y -= shift
	c.image.Width, c.image.Height = c.image.Height, c.image.Width

	c.fixViewport()
}

// ApplyZoom interprets a zoom operation string: either a scale mode
// name ("optimal", "fit", "width", "height", "fill", "real") or a
// signed percentage in (-1000, 1000) excluding zero.
func (c *Canvas) ApplyZoom(op string) error {
	if op == "" {
		return fmt.Errorf("empty zoom operation")
	}

	if mode, err := ParseScaleMode(op); err == nil {
		c.SetScale(mode)
		return nil
	}

	percent, err := strconv.Atoi(op)
	if err != nil || percent == 0 || percent <= -1000 || percent >= 1000 {
		return fmt.Errorf("invalid zoom operation %q", op)
	}
	c.Zoom(percent)
	return nil
}

// Scale returns the current scale factor.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Placement returns the scaled image rectangle in window coordinates.
// The renderer reads it once per frame.
func (c *Canvas) Placement() Rect {
	sz := c.scaledSize()
	return Rect{X: c.image.X, Y: c.image.Y, Width: sz.Width, Height: sz.Height}
}

// Window returns the current window size.
func (c *Canvas) Window() Size {
	return c.window
}

// HiDPI returns the window scale factor.
func (c *Canvas) HiDPI() int {
	return c.hidpi
}

// Antialiasing reports whether bicubic interpolation is enabled.
func (c *Canvas) Antialiasing() bool {
	return c.antialias
}

// SwitchAntialiasing toggles bicubic interpolation and returns the new
// state.
func (c *Canvas) SwitchAntialiasing() bool {
	c.antialias = !c.antialias
	return c.antialias
}
