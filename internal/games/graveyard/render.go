package graveyard

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/entity"
	"github.com/vovakirdan/tui-graveyard/internal/game"
)

const (
	hudRows = 1
	// cellAspect is the height of a terminal cell over its width.
	cellAspect = 2
	// blinkBeat is how many ticks a blinking actor stays visible or hidden.
	blinkBeat = 4
)

// viewport maps world pixels to terminal cells. The whole world height always
// fits below the HUD.
type viewport struct {
	cols, rows   int
	cellW, cellH float64
}

func newViewport(screenW, screenH int, worldH float64) viewport {
	v := viewport{cols: max(screenW, 1), rows: max(screenH-hudRows, 1)}
	v.cellH = worldH / float64(v.rows)
	v.cellW = v.cellH / cellAspect
	return v
}

func (v viewport) worldW() float64 { return float64(v.cols) * v.cellW }
func (v viewport) worldH() float64 { return float64(v.rows) * v.cellH }

func (v viewport) matches(dst *core.Screen) bool {
	return v.cols == max(dst.Width(), 1) && v.rows == max(dst.Height()-hudRows, 1)
}

// toWorld returns the view-relative world position of a cell's center.
func (v viewport) toWorld(col, row float64) (x, y float64) {
	return (col + 0.5) * v.cellW, (row - hudRows + 0.5) * v.cellH
}

// cells returns the cells covered by a view-relative box. Every visible box
// covers at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X / v.cellW))
	x1 := max(int(math.Ceil(b.Right()/v.cellW)), x0+1)
	y0 := int(math.Floor(b.Y/v.cellH)) + hudRows
	y1 := max(int(math.Ceil(b.Bottom()/v.cellH))+hudRows, y0+1)
	y0 = max(y0, hudRows)
	return core.NewRect(x0, y0, x1-x0, max(y1-y0, 0))
}

// Render draws the visible part of the world, the HUD and any end screen.
func (g *Game) Render(dst *core.Screen) {
	if g.run == nil {
		drawMessage(dst, "LEVEL ERROR", fmt.Sprint(g.err), core.ColorBrightRed)
		return
	}

	if !g.view.matches(dst) {
		g.view = newViewport(dst.Width(), dst.Height(), g.level.Height)
		g.camera.W, g.camera.H = g.view.worldW(), g.view.worldH()
		g.camera.Follow(g.run.Player().Body(), g.level.Width, g.level.Height)
	}

	ticks := g.run.Stats().Ticks
	for layer := range layers {
		for _, a := range g.run.Actors() {
			if layerOf(a.Kind()) != layer || !g.camera.Visible(a.Body()) {
				continue
			}
			if hidden(a, ticks) {
				continue
			}
			r, c := glyph(a)
			dst.FillRect(g.view.cells(g.camera.Project(a.Body())), r, c)
		}
	}

	g.drawHUD(dst)

	switch {
	case g.run.Phase() == game.PhaseGameWon:
		drawMessage(dst, "YOU ESCAPED", fmt.Sprintf("Score: %d  |  Press R to restart", g.run.Score()), core.ColorBrightGreen)
	case g.run.Over():
		drawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.run.Score()), core.ColorBrightRed)
	case g.paused:
		drawMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

const layers = 4

// layerOf orders drawing: geometry, enemies, projectiles, player.
func layerOf(k arena.Kind) int {
	switch {
	case entity.IsStatic(k):
		return 0
	case k == entity.KindZombie || k == entity.KindPlant:
		return 1
	case k == entity.KindPlayer:
		return 3
	}
	return 2
}

// hidden reports whether a has no frame to show or is on the off beat of a
// blink.
func hidden(a arena.Actor, ticks int) bool {
	an, ok := a.(arena.Animated)
	if !ok {
		return false
	}
	frame, ok := an.Frame()
	if !ok {
		return true
	}
	return frame.Blinking && (ticks/blinkBeat)%2 == 1
}

func glyph(a arena.Actor) (rune, core.Color) {
	switch v := a.(type) {
	case *entity.Platform:
		switch {
		case v.Kind() == entity.KindLadder:
			return 'H', core.ColorYellow
		case v.Kind() == entity.KindGraveStone:
			return '▒', core.ColorGray
		case v.Damage() > 0:
			return '≈', core.ColorBlue
		}
		return '█', core.ColorBrown
	case *entity.Door:
		if v.State().Action == anim.ActionOpen {
			return '░', core.ColorBrightGreen
		}
		return '▓', core.ColorMagenta
	case *entity.Player:
		return '@', core.ColorBrightWhite
	case *entity.Zombie:
		return 'Z', core.ColorGreen
	case *entity.Plant:
		return 'Ψ', core.ColorBrightGreen
	case *entity.Torch:
		return '!', core.ColorOrange
	case *entity.Flame:
		return '^', core.ColorBrightRed
	case *entity.EyeBall:
		return 'o', core.ColorBrightMagenta
	}
	return '?', core.ColorDefault
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.run.Player()
	stats := g.run.Stats()

	torch := "ready"
	if cd := p.ThrowCooldown(); cd > 0 && p.ThrowInterval() > 0 {
		torch = bar(1-float64(cd)/float64(p.ThrowInterval()), 5)
	}
	progress := int(core.ClampF(stats.FurthestX/g.level.Goal(), 0, 1) * 100)

	dst.FillRect(core.NewRect(0, 0, dst.Width(), hudRows), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, fmt.Sprintf("HP %s %3.0f", bar(p.Health()/p.MaxHealth(), 10), p.Health()), core.ColorBrightRed)
	dst.DrawTextColored(20, 0, fmt.Sprintf("TORCH %-5s  KILLS %d  SCORE %d  %3d%%", torch, stats.Kills, g.run.Score(), progress), core.ColorBrightWhite)
}

// bar renders frac in [0, 1] as a fixed-width gauge.
func bar(frac float64, width int) string {
	n := int(math.Round(core.ClampF(frac, 0, 1) * float64(width)))
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.FillRect(core.NewRect(boxX, boxY, boxW, 1), '─', c)
	dst.FillRect(core.NewRect(boxX, boxY+boxH-1, boxW, 1), '─', c)
	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
