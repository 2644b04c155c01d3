package swayimg

import "fmt"

// textPadding is the space between a text block and the window edge.
const textPadding = 10

// InfoPosition selects the window corner of an info block.
type InfoPosition int

const (
	// InfoTopLeft places the block in the top-left corner.
	InfoTopLeft InfoPosition = iota
	// InfoTopRight places the block in the top-right corner.
	InfoTopRight
	// InfoBottomLeft places the block in the bottom-left corner.
	InfoBottomLeft
	// InfoBottomRight places the block in the bottom-right corner.
	InfoBottomRight
)

// InfoLine is one "key: value" row of the info overlay. A line without
// a key renders the value only.
type InfoLine struct {
	Key, Value string
}

// TextMeasurer reports rendered text dimensions in window pixels. The
// font subsystem provides the implementation; the overlay only needs
// geometry.
type TextMeasurer interface {
	// TextWidth returns the rendered width of s.
	TextWidth(s string) int
	// LineHeight returns the font line height.
	LineHeight() int
}

// PlacedText is a text run positioned in window coordinates.
type PlacedText struct {
	Pt   Point
	Text string
}

// Info tracks the state of the info overlay: current mode label, status
// text and the help overlay flag.
type Info struct {
	enabled bool
	mode    string
	status  string
	help    bool
}

// NewInfo creates an enabled overlay with no mode label.
func NewInfo() *Info {
	return &Info{enabled: true}
}

// Enabled reports whether the overlay is shown at all.
func (in *Info) Enabled() bool { return in.enabled }

// Switch sets the overlay scheme: a mode label enables the overlay for
// that mode, "off" hides it, an empty value toggles visibility.
func (in *Info) Switch(scheme string) {
	switch scheme {
	case "":
		in.enabled = !in.enabled
	case "off":
		in.enabled = false
	default:
		in.enabled = true
		in.mode = scheme
	}
}

// Mode returns the declared mode label.
func (in *Info) Mode() string { return in.mode }

// UpdateStatus formats and stores the status text.
func (in *Info) UpdateStatus(format string, args ...any) {
	in.status = fmt.Sprintf(format, args...)
}

// Status returns the current status text.
func (in *Info) Status() string { return in.status }

// SwitchHelp toggles the help overlay and returns the new state.
func (in *Info) SwitchHelp() bool {
	in.help = !in.help
	return in.help
}

// HelpActive reports whether the help overlay is shown.
func (in *Info) HelpActive() bool { return in.help }

// LayoutLines places key/value rows in the given window corner. Keys
// are left-aligned in their own column ("key: value"); rows without a
// key span the full block width.
func LayoutLines(lines []InfoLine, pos InfoPosition, wnd Size, m TextMeasurer) []PlacedText {
	height := m.LineHeight()
	sep := ": "
	sepWidth := m.TextWidth(sep)

	// max width of keys
	maxKeyWidth := 0
	for _, l := range lines {
		if l.Key != "" {
			if w := m.TextWidth(l.Key) + sepWidth; w > maxKeyWidth {
				maxKeyWidth = w
			}
		}
	}

	var out []PlacedText
	for i, l := range lines {
		keyWidth := 0
		if l.Key != "" {
			keyWidth = m.TextWidth(l.Key) + sepWidth
		}
		valWidth := m.TextWidth(l.Value)

		var ptKey, ptVal Point
		switch pos {
		case InfoTopLeft:
			if keyWidth > 0 {
				ptKey = Pt(textPadding, textPadding+i*height)
				ptVal = Pt(textPadding+maxKeyWidth, ptKey.Y)
			} else {
				ptVal = Pt(textPadding, textPadding+i*height)
			}
		case InfoTopRight:
			ptVal = Pt(wnd.Width-textPadding-valWidth, textPadding+i*height)
			if keyWidth > 0 {
				ptKey = Pt(ptVal.X-keyWidth, ptVal.Y)
			}
		case InfoBottomLeft:
			y := wnd.Height - textPadding - height*len(lines) + i*height
			if keyWidth > 0 {
				ptKey = Pt(textPadding, y)
				ptVal = Pt(textPadding+maxKeyWidth, y)
			} else {
				ptVal = Pt(textPadding, y)
			}
		case InfoBottomRight:
			y := wnd.Height - textPadding - height*len(lines) + i*height
			ptVal = Pt(wnd.Width-textPadding-valWidth, y)
			if keyWidth > 0 {
				ptKey = Pt(ptVal.X-keyWidth, ptVal.Y)
			}
		}

		if keyWidth > 0 {
			out = append(out, PlacedText{Pt: ptKey, Text: l.Key + sep})
		}
		out = append(out, PlacedText{Pt: ptVal, Text: l.Value})
	}
	return out
}

// LayoutCenter places lines as a centered block, split into columns
// when they do not fit the window height (used by the help overlay).
func LayoutCenter(lines []string, wnd Size, m TextMeasurer) []PlacedText {
	if len(lines) == 0 {
		return nil
	}

	height := m.LineHeight()
	rowMax := (wnd.Height - textPadding*2) / height
	if rowMax < 1 {
		rowMax = 1
	}
	columns := len(lines) / rowMax
	if len(lines)%rowMax != 0 {
		columns++
	}
	rows := len(lines) / columns
	if len(lines)%columns != 0 {
		rows++
	}
	colSpace := m.TextWidth("  ")

	// total block width
	totalWidth := 0
	colWidths := make([]int, columns)
	for c := 0; c < columns; c++ {
		for r := 0; r < rows; r++ {
			index := r + c*rows
			if index >= len(lines) {
				break
			}
			if w := m.TextWidth(lines[index]); w > colWidths[c] {
				colWidths[c] = w
			}
		}
		totalWidth += colWidths[c]
	}
	totalWidth += colSpace * (columns - 1)

	// top left corner of the centered block
	topLeft := Pt(textPadding, textPadding)
	if totalWidth < wnd.Width {
		topLeft.X = wnd.Width/2 - totalWidth/2
	}
	if rows*height < wnd.Height {
		topLeft.Y = wnd.Height/2 - rows*height/2
	}

	var out []PlacedText
	x := topLeft.X
	for c := 0; c < columns; c++ {
		y := topLeft.Y
		for r := 0; r < rows; r++ {
			index := r + c*rows
			if index >= len(lines) {
				break
			}
			out = append(out, PlacedText{Pt: Pt(x, y), Text: lines[index]})
			y += height
		}
		x += colWidths[c] + colSpace
	}
	return out
}
