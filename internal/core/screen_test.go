package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorBlack)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if !s.GetCell(5, 5).Set {
		t.Error("Set should mark the cell as drawn")
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorBlack)
	s.Set(100, 0, 'A', ColorBlack)
	s.Set(0, -1, 'A', ColorBlack)
	s.Set(0, 100, 'A', ColorBlack)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorBlack)

	s.Clear(ColorGray)

	if s.Background() != ColorGray {
		t.Errorf("Background() = %v, expected gray", s.Background())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
			if s.GetCell(x, y).Set {
				t.Errorf("After Clear, cell (%d, %d) should not be marked as drawn", x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorBlack)

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello", ColorBlack)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorBlack)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorBlack)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edges should be '─' at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edges should be '│' at y=%d", y)
		}
	}
}

func TestScreenFillPolygonScalesViewport(t *testing.T) {
	// 300x400 viewport on a 30x20 grid: one cell is 10x20 units.
	s := NewScreen(30, 20)
	s.SetViewport(300, 400)

	// Covers cells x in [10, 20), y in [5, 10).
	square := Polygon{V(100, 100), V(200, 100), V(200, 200), V(100, 200)}
	s.FillPolygon(square, ColorCyan)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			inside := x >= 10 && x < 20 && y >= 5 && y < 10
			got := s.Get(x, y) == FillRune
			if got != inside {
				t.Fatalf("cell (%d, %d) filled=%v, expected %v", x, y, got, inside)
			}
		}
	}
	if s.GetCell(15, 7).Color != ColorCyan {
		t.Error("filled cells should carry the polygon color")
	}
}

func TestScreenStrokeLineKeepsFillColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillPolygon(Polygon{V(0, 0), V(10, 0), V(10, 10), V(0, 10)}, ColorGreen)
	s.StrokeLine(V(0.5, 5.5), V(9.5, 5.5), 1, ColorBlack)

	for x := 0; x < 10; x++ {
		cell := s.GetCell(x, 5)
		if cell.Rune != OutlineRune {
			t.Errorf("cell (%d, 5) = %q, expected outline", x, cell.Rune)
		}
		if cell.Color != ColorGreen {
			t.Errorf("outline over a fill should keep the fill color at x=%d", x)
		}
	}

	s.Clear(ColorWhite)
	s.StrokeLine(V(0.5, 0.5), V(0.5, 9.5), 1, ColorBlack)
	if s.GetCell(0, 3).Color != ColorBlack {
		t.Error("outline on background should use the line color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorBlack)
	s.DrawText(0, 1, "BBBBB", ColorBlack)
	s.DrawText(0, 2, "CCCCC", ColorBlack)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := strings.Split(s.String(), "\n")[3]; row != strings.Repeat(" ", 8) {
		t.Errorf("resized screen should be blank, row 3 = %q", row)
	}
}

func TestScreenDrawTextRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorBlack)

	rows := strings.Split(s.String(), "\n")
	if len(rows) != 5 {
		t.Fatalf("String() should have 5 rows, got %d", len(rows))
	}
	if !strings.HasPrefix(rows[2], "Test") {
		t.Errorf("row 2 should start with 'Test', got %q", rows[2])
	}
	if len([]rune(rows[2])) != 10 {
		t.Errorf("row length should be 10, got %d", len([]rune(rows[2])))
	}
}
