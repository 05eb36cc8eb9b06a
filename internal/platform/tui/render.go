package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// palette holds the ANSI color for each core.Color, indexed by value.
var palette = [...]lipgloss.Color{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		styles[i] = lipgloss.NewStyle()
		if c != "" {
			styles[i] = styles[i].Foreground(c)
		}
	}
	return styles
}()

func paint(c core.Color, text string) string {
	if c == core.ColorDefault || int(c) >= len(cellStyles) {
		return text
	}
	return cellStyles[c].Render(text)
}

// RenderScreen turns the screen buffer into terminal text. Neighbouring cells
// of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var out strings.Builder
	out.Grow(w*h*2 + h)

	var run strings.Builder
	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		run.Reset()
		color := core.ColorDefault
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != color && run.Len() > 0 {
				out.WriteString(paint(color, run.String()))
				run.Reset()
			}
			color = cell.Color
			run.WriteRune(cell.Rune)
		}
		out.WriteString(paint(color, run.String()))
	}
	return out.String()
}
