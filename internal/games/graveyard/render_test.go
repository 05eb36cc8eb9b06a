package graveyard

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

func TestViewportCells(t *testing.T) {
	v := newViewport(80, 25, 240)
	if v.cellW != 5 || v.cellH != 10 {
		t.Fatalf("cell = %vx%v, want 5x10", v.cellW, v.cellH)
	}
	if v.worldW() != 400 || v.worldH() != 240 {
		t.Errorf("view = %vx%v, want 400x240", v.worldW(), v.worldH())
	}

	tests := []struct {
		name string
		box  core.Box
		want core.Rect
	}{
		{"player", core.Box{X: 10, Y: 20, W: 21, H: 32}, core.NewRect(2, 3, 5, 4)},
		{"tiny box covers a cell", core.Box{X: 11, Y: 11, W: 1, H: 1}, core.NewRect(2, 2, 1, 1)},
		{"above the view stays below the HUD", core.Box{X: 0, Y: -30, W: 5, H: 40}, core.NewRect(0, 1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.cells(tt.box); got != tt.want {
				t.Errorf("cells(%+v) = %+v, want %+v", tt.box, got, tt.want)
			}
		})
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{1, "█████"},
		{0, "░░░░░"},
		{0.4, "██░░░"},
		{2, "█████"},
		{-1, "░░░░░"},
	}
	for _, tt := range tests {
		if got := bar(tt.frac, 5); got != tt.want {
			t.Errorf("bar(%v) = %q, want %q", tt.frac, got, tt.want)
		}
	}
}

func TestRenderDrawsWorldAndHUD(t *testing.T) {
	g := newTestGame(t, Crypt())
	for range 60 {
		g.Step(core.NewInput())
	}

	screen := core.NewScreen(80, 25)
	g.Render(screen)

	if hud := screen.Row(0); !strings.HasPrefix(hud, "HP ") || !strings.Contains(hud, "TORCH ready") {
		t.Errorf("HUD row = %q", hud)
	}
	out := screen.String()
	if !strings.Contains(out, "@") {
		t.Error("player glyph missing")
	}
	// Ground top at y 192 is row 192/10 + 1
	if row := screen.Row(20); !strings.Contains(row, "█") {
		t.Errorf("ground row = %q", row)
	}

	// Standing on the ground the player spans rows 17 to 20
	if row := screen.Row(18); !strings.Contains(row, "@") {
		t.Errorf("player missing from row 18: %q", row)
	}
}

func TestRenderEndScreens(t *testing.T) {
	g := newTestGame(t, Crypt())
	g.Step(core.NewInput(core.KeyPause))

	screen := core.NewScreen(80, 25)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause message missing")
	}

	g.Step(core.NewInput(core.KeyPause))
	g.Run().Player().SetHealth(0)
	g.Step(core.NewInput())

	screen.Clear()
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Press R to restart") {
		t.Errorf("game over screen missing:\n%s", out)
	}
}

func TestRenderFollowsResize(t *testing.T) {
	g := newTestGame(t, Crypt())

	screen := core.NewScreen(120, 41)
	g.Render(screen)
	if g.view.cols != 120 || g.view.rows != 40 {
		t.Errorf("viewport = %dx%d, want 120x40", g.view.cols, g.view.rows)
	}
	if g.camera.H != 240 || g.camera.W != 360 {
		t.Errorf("camera = %vx%v, want 360x240", g.camera.W, g.camera.H)
	}
}
