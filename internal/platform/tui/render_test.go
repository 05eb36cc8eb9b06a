package tui

import (
	"regexp"
	"testing"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

var sgr = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(1, 1, "xyz")
	s.SetColored(5, 1, '#', core.Color(250))

	got := sgr.ReplaceAllString(RenderScreen(s), "")
	if want := "abcd  \n xyz #"; got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if got := RenderScreen(core.NewScreen(0, 0)); got != "" {
		t.Errorf("RenderScreen(0x0) = %q, want empty", got)
	}
}
