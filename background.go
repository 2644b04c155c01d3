package swayimg

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Background grid parameters.
const (
	gridStep = 10
)

var (
	gridColor1 = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	gridColor2 = color.NRGBA{R: 0x4c, G: 0x4c, B: 0x4c, A: 0xff}
)

// BackgroundMode selects how the area behind the image or around it is
// painted.
type BackgroundMode int

const (
	// BackgroundTransparent leaves the area fully transparent.
	BackgroundTransparent BackgroundMode = iota
	// BackgroundGrid paints a checkered grid (image background only).
	BackgroundGrid
	// BackgroundColor paints a solid color.
	BackgroundColor
)

// Background describes one background layer.
type Background struct {
	Mode  BackgroundMode
	Color color.NRGBA
}

// ParseBackground interprets a configuration value: "none" for
// transparent, "grid" for the checkered pattern, or a hex color
// ("#RGB", "#RRGGBB", "#RRGGBBAA").
func ParseBackground(s string) (Background, error) {
	switch s {
	case "none":
		return Background{Mode: BackgroundTransparent}, nil
	case "grid":
		return Background{Mode: BackgroundGrid}, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return Background{}, err
	}
	return Background{Mode: BackgroundColor, Color: c}, nil
}

// ParseColor parses a hex color string. Supported formats: "RGB",
// "RGBA", "RRGGBB", "RRGGBBAA", with an optional leading '#'.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	expand := func(nibbles string) string {
		var b strings.Builder
		for _, c := range nibbles {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		return b.String()
	}

	switch len(hex) {
	case 3, 4:
		hex = expand(hex)
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	if len(hex) == 6 {
		return color.NRGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xff,
		}, nil
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
