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
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 4)

	s.SetColored(3, 2, 'Z', ColorGreen)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'Z' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 2) = %+v, expected Z/green", cell)
	}

	// Out of bounds writes are dropped, reads are blank
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	s.Set(0, 4, 'A')
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "HI", ColorRed)
	if row := s.Row(1); row != "    HI     " {
		t.Errorf("Row(1) = %q", row)
	}
	if s.GetCell(4, 1).Color != ColorRed {
		t.Error("centered text should carry its color")
	}

	// Clipped at the right edge
	s.DrawText(9, 0, "abc")
	if row := s.Row(0); !strings.HasSuffix(row, "ab") {
		t.Errorf("Row(0) = %q, expected clipped text", row)
	}
}

func TestScreenFillRectAndResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(1, 1, 2, 2), '#', ColorGray)

	count := strings.Count(s.String(), "#")
	if count != 4 {
		t.Errorf("FillRect drew %d cells, expected 4", count)
	}

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if strings.Contains(s.String(), "#") {
		t.Error("Resize should clear the buffer")
	}
	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("String() has %d lines, expected 2", len(lines))
	}
}
