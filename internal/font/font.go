// Package font provides text measurement for the info overlay layout.
//
// The Shaped measurer wraps go-text/typesetting: it parses a TTF/OTF
// file and measures strings through HarfBuzz shaping, so key/value
// columns line up with what the renderer actually draws. Fixed is a
// cell-based fallback for environments without a configured font file.
package font

import (
	"bytes"
	"os"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// DefaultSize is the font size in pixels used when none is configured.
const DefaultSize = 14

// Shaped measures text through HarfBuzz shaping.
//
// Shaped is not safe for concurrent use: the overlay layout runs on the
// consumer goroutine only, and both font.Face and HarfbuzzShaper keep
// mutable state.
type Shaped struct {
	face   *font.Face
	shaper shaping.HarfbuzzShaper

	size  float64 // configured size in pixels
	scale int     // HiDPI multiplier

	lineHeight int
}

// Load parses a font file and creates a measurer with the given pixel
// size.
func Load(path string, size float64) (*Shaped, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}

	s := &Shaped{face: face, size: size, scale: 1}
	s.lineHeight = s.measureLineHeight()
	return s, nil
}

// SetScale applies the HiDPI window scale factor to all measurements.
func (s *Shaped) SetScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	s.scale = scale
	s.lineHeight = s.measureLineHeight()
}

// shape runs one LTR shaping pass over the string.
func (s *Shaped) shape(text string) shaping.Output {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      fixed.Int26_6(s.size * float64(s.scale) * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	return s.shaper.Shape(input)
}

// TextWidth implements swayimg.TextMeasurer.
func (s *Shaped) TextWidth(text string) int {
	if text == "" {
		return 0
	}
	out := s.shape(text)
	return fixedCeil(out.Advance)
}

// LineHeight implements swayimg.TextMeasurer.
func (s *Shaped) LineHeight() int {
	return s.lineHeight
}

func (s *Shaped) measureLineHeight() int {
	out := s.shape("Mg")
	lb := out.LineBounds
	return fixedCeil(lb.Ascent - lb.Descent + lb.Gap)
}

// fixedCeil converts a 26.6 fixed-point value to pixels, rounding up.
func fixedCeil(v fixed.Int26_6) int {
	return int((v + 63) >> 6)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Fixed is a cell-grid measurer: every rune advances by the same width.
type Fixed struct {
	Advance int
	Height  int
}

// TextWidth implements swayimg.TextMeasurer.
func (f Fixed) TextWidth(text string) int {
	return f.Advance * len([]rune(text))
}

// LineHeight implements swayimg.TextMeasurer.
func (f Fixed) LineHeight() int {
	return f.Height
}
