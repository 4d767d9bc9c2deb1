package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGetBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got != (Cell{Rune: 'X', Color: ColorRed}) {
		t.Errorf("GetCell(5, 5) = %+v", got)
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(0, 0, "abcd", ColorGreen)
	s.Clear()

	if got := s.GetCell(2, 0); got != blank {
		t.Errorf("after Clear cell = %+v, expected blank", got)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")

	if s.Row(0)[18:] != "He" {
		t.Errorf("row tail = %q, expected %q", s.Row(0)[18:], "He")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "→ok")

	if s.Get(0, 0) != '→' || s.Get(1, 0) != 'o' || s.Get(2, 0) != 'k' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered: row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColor(NewRect(1, 1, 5, 4), ColorCyan)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		c := s.GetCell(pos[0], pos[1])
		if c.Rune != want || c.Color != ColorCyan {
			t.Errorf("corner %v = %+v, expected %q cyan", pos, c, want)
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}
	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("String() has %d lines, expected 2", len(lines))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should leave a cleared buffer")
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  Color
	}{
		{0, ColorGray},
		{2, ColorWhite},
		{4, ColorBrightWhite},
		{8, ColorYellow},
		{1024, ColorBrightCyan},
		{2048, ColorBrightBlue},
		{4096, ColorBrightMagenta},
		{8192, ColorWhite},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 20, 10).Centered(6, 4)
	if r != (Rect{X: 7, Y: 3, W: 6, H: 4}) {
		t.Errorf("Centered = %+v", r)
	}
	if !r.Contains(7, 3) || r.Contains(13, 3) {
		t.Error("Contains should include top-left and exclude right edge")
	}
}

func TestFrame(t *testing.T) {
	f := Frame(ActionLeft, ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) || f.Has(ActionUp) {
		t.Errorf("Frame actions = %v", f.Actions)
	}
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestScreenDrawGrid(t *testing.T) {
	s := NewScreen(12, 6)
	s.DrawGrid(0, 0, 2, 2, 4, 2, ColorGray)

	expected := []string{
		"┌───┬───┐   ",
		"│   │   │   ",
		"├───┼───┤   ",
		"│   │   │   ",
		"└───┴───┘   ",
		"            ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, want %q", y, got, want)
		}
	}
	if s.GetCell(4, 2).Color != ColorGray {
		t.Error("grid lines should use the given colour")
	}
}

func TestScreenDrawMessage(t *testing.T) {
	s := NewScreen(20, 7)
	s.Fill('x')
	s.DrawMessage(NewRect(0, 0, 20, 7), ColorRed, "HI", "there")

	// "there" is 5 wide: box is 9×4 centered at (5, 1).
	if s.Get(5, 1) != '┌' || s.Get(13, 4) != '┘' {
		t.Errorf("message box misplaced:\n%s", s)
	}
	if !strings.Contains(s.Row(3), "there") {
		t.Errorf("row 3 = %q, want the second line", s.Row(3))
	}
	if s.Get(0, 0) != 'x' {
		t.Error("DrawMessage should not touch cells outside the box")
	}
}
