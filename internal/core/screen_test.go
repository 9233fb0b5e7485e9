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

	// Check that it's initialized with spaces
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

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetColored(0, -1, 'A', White)
	s.SetColored(0, 100, 'A', White)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '#', PanelBlue)

	cell := s.GetCell(1, 2)
	if cell.Rune != '#' || !cell.Styled || cell.FG != PanelBlue {
		t.Errorf("GetCell(1, 2) = %+v, expected styled '#' in PanelBlue", cell)
	}

	s.Set(1, 2, '.')
	if s.GetCell(1, 2).Styled {
		t.Error("Set should reset the cell to the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', White)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(20, 1)
	s.DrawTextColored(0, 0, "Fábrica", White)

	if got := strings.TrimRight(s.Row(0), " "); got != "Fábrica" {
		t.Errorf("Row(0) = %q, expected %q", got, "Fábrica")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", White)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', Grass)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	if s.Get(1, 1) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
	if s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), White)

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

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should discard old content")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
