package swayimg

import "testing"

// charMeasurer measures text at a fixed width per rune, which keeps
// layout expectations easy to compute by hand.
type charMeasurer struct {
	charWidth  int
	lineHeight int
}

func (m charMeasurer) TextWidth(s string) int { return len([]rune(s)) * m.charWidth }
func (m charMeasurer) LineHeight() int        { return m.lineHeight }

func TestInfo_Switch(t *testing.T) {
	in := NewInfo()
	if !in.Enabled() {
		t.Fatal("new overlay must start enabled")
	}

	in.Switch("off")
	if in.Enabled() {
		t.Error("overlay enabled after Switch(\"off\")")
	}

	in.Switch("")
	if !in.Enabled() {
		t.Error("overlay not toggled back on")
	}

	in.Switch("gallery")
	if !in.Enabled() || in.Mode() != "gallery" {
		t.Errorf("Switch(scheme) = enabled %v mode %q", in.Enabled(), in.Mode())
	}
}

func TestInfo_Status(t *testing.T) {
	in := NewInfo()
	in.UpdateStatus("Scale: %d%%", 150)
	if got := in.Status(); got != "Scale: 150%" {
		t.Errorf("Status() = %q", got)
	}
}

func TestInfo_SwitchHelp(t *testing.T) {
	in := NewInfo()
	if in.HelpActive() {
		t.Fatal("help must start hidden")
	}
	if !in.SwitchHelp() || !in.HelpActive() {
		t.Error("first toggle must show help")
	}
	if in.SwitchHelp() || in.HelpActive() {
		t.Error("second toggle must hide help")
	}
}

func TestLayoutLines_TopLeft(t *testing.T) {
	m := charMeasurer{charWidth: 10, lineHeight: 20}
	lines := []InfoLine{
		{Key: "name", Value: "cat.png"},
		{Key: "scale", Value: "100%"},
		{Value: "plain"},
	}
	wnd := Size{Width: 800, Height: 600}

	out := LayoutLines(lines, InfoTopLeft, wnd, m)
	if len(out) != 5 {
		t.Fatalf("got %d runs, want 5", len(out))
	}

	// key column is as wide as the widest key plus separator:
	// "scale" (5 runes) + ": " (2 runes) = 70px
	if out[0].Text != "name: " || out[0].Pt != Pt(textPadding, textPadding) {
		t.Errorf("run 0 = %+v", out[0])
	}
	if out[1].Text != "cat.png" || out[1].Pt.X != textPadding+70 {
		t.Errorf("value not aligned to key column: %+v", out[1])
	}
	if out[3].Pt.Y != textPadding+20 {
		t.Errorf("second row y = %d, want %d", out[3].Pt.Y, textPadding+20)
	}
	// keyless line starts at the block edge
	if out[4].Text != "plain" || out[4].Pt != Pt(textPadding, textPadding+2*20) {
		t.Errorf("keyless run = %+v", out[4])
	}
}

func TestLayoutLines_BottomRight(t *testing.T) {
	m := charMeasurer{charWidth: 10, lineHeight: 20}
	lines := []InfoLine{{Value: "12/34"}}
	wnd := Size{Width: 800, Height: 600}

	out := LayoutLines(lines, InfoBottomRight, wnd, m)
	if len(out) != 1 {
		t.Fatalf("got %d runs, want 1", len(out))
	}
	wantX := wnd.Width - textPadding - 5*10
	wantY := wnd.Height - textPadding - 20
	if out[0].Pt != Pt(wantX, wantY) {
		t.Errorf("placement = %+v, want (%d,%d)", out[0].Pt, wantX, wantY)
	}
}

func TestLayoutLines_TopRightKeyBeforeValue(t *testing.T) {
	m := charMeasurer{charWidth: 10, lineHeight: 20}
	out := LayoutLines([]InfoLine{{Key: "k", Value: "v"}}, InfoTopRight, Size{Width: 400, Height: 300}, m)
	if len(out) != 2 {
		t.Fatalf("got %d runs, want 2", len(out))
	}
	if out[0].Pt.X+m.TextWidth(out[0].Text) != out[1].Pt.X {
		t.Errorf("key run at %d does not abut value run at %d", out[0].Pt.X, out[1].Pt.X)
	}
	if out[1].Pt.X+m.TextWidth(out[1].Text) != 400-textPadding {
		t.Error("value run not right-aligned")
	}
}

func TestLayoutCenter_SingleColumn(t *testing.T) {
	m := charMeasurer{charWidth: 10, lineHeight: 20}
	lines := []string{"first", "second", "x"}
	wnd := Size{Width: 400, Height: 300}

	out := LayoutCenter(lines, wnd, m)
	if len(out) != 3 {
		t.Fatalf("got %d runs, want 3", len(out))
	}

	// block is 60px wide ("second"), 60px tall, centered
	wantX := 400/2 - 60/2
	wantY := 300/2 - 60/2
	if out[0].Pt != Pt(wantX, wantY) {
		t.Errorf("first line at %+v, want (%d,%d)", out[0].Pt, wantX, wantY)
	}
	if out[1].Pt.Y != wantY+20 || out[2].Pt.Y != wantY+40 {
		t.Error("lines not stacked by line height")
	}
	if out[2].Pt.X != wantX {
		t.Error("lines not left-aligned within the column")
	}
}

func TestLayoutCenter_SplitsIntoColumns(t *testing.T) {
	m := charMeasurer{charWidth: 10, lineHeight: 20}
	// window fits 4 rows; 6 lines force a second column
	wnd := Size{Width: 800, Height: textPadding*2 + 4*20}

	lines := []string{"a1", "a2", "a3", "b1", "b2", "b3"}
	out := LayoutCenter(lines, wnd, m)
	if len(out) != 6 {
		t.Fatalf("got %d runs, want 6", len(out))
	}

	if out[0].Pt.Y != out[3].Pt.Y {
		t.Error("column heads not on the same row")
	}
	if out[3].Pt.X <= out[0].Pt.X {
		t.Error("second column not placed to the right of the first")
	}
	// column gap is two spaces wide
	if got := out[3].Pt.X - out[0].Pt.X; got != 2*10+2*10 {
		t.Errorf("column offset = %d, want col width 20 + gap 20", got)
	}
}

func TestLayoutCenter_Empty(t *testing.T) {
	m := charMeasurer{charWidth: 10, lineHeight: 20}
	if out := LayoutCenter(nil, Size{Width: 100, Height: 100}, m); out != nil {
		t.Errorf("got %d runs for no lines", len(out))
	}
}
