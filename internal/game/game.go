// Package game specializes the arena into the graveyard ruleset. It wires the
// gameplay collision handlers, drains the initial spawn queue, evaluates the
// win and loss conditions and spawns enemies near the player during a run.
package game

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/entity"
)

// Phase is the state of a run.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseGameWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseGameWon:
		return "game_won"
	}
	return "unknown"
}

// Scoring.
const (
	KillPoints = 100
	WinBonus   = 1000
	// DistanceDivisor converts the furthest x reached into points.
	DistanceDivisor = 10
)

// Stats accumulates over a run.
type Stats struct {
	Ticks     int
	Kills     int
	Spawned   int
	FurthestX float64
}

// Option configures a Game.
type Option func(*Game)

// WithSettings replaces the default settings.
func WithSettings(s config.Settings) Option {
	return func(g *Game) { g.settings = s }
}

// WithSeed makes the spawn rolls reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithDifficulty sets the difficulty manager scaling spawn chances and enemy
// damage. By default one is built from the settings.
func WithDifficulty(d *config.DifficultyManager) Option {
	return func(g *Game) { g.difficulty = d }
}

// Game is an Arena running the graveyard rules.
type Game struct {
	*arena.Arena

	settings   config.Settings
	rng        *rand.Rand
	logger     *log.Logger
	difficulty *config.DifficultyManager

	phase  Phase
	stats  Stats
	player *entity.Player
	doors  []*entity.Door
}

// New creates a game of the given world size and spawns the queue, player
// first. The queue must hold exactly one player.
func New(width, height float64, queue []arena.Actor, opts ...Option) (*Game, error) {
	g := &Game{
		settings: config.DefaultSettings(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.settings.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.difficulty == nil {
		g.difficulty = config.NewDifficultyManager(g.settings.Difficulty)
	}

	registry := arena.NewRegistry()
	g.registerHandlers(registry)
	a, err := arena.New(width, height, arena.WithRegistry(registry), arena.WithExemption(exempt))
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.Arena = a

	if err := g.drain(queue); err != nil {
		return nil, err
	}
	return g, nil
}

// drain spawns the queue with the player moved to the front.
func (g *Game) drain(queue []arena.Actor) error {
	rest := make([]arena.Actor, 0, len(queue))
	for _, a := range queue {
		switch v := a.(type) {
		case nil:
			continue
		case *entity.Player:
			if g.player != nil {
				return fmt.Errorf("game: %w: more than one player in the spawn queue", entity.ErrInvalidArgument)
			}
			g.player = v
			continue
		case *entity.Door:
			g.doors = append(g.doors, v)
		}
		rest = append(rest, a)
	}
	if g.player == nil {
		return fmt.Errorf("game: %w: no player in the spawn queue", entity.ErrInvalidArgument)
	}
	g.Spawn(g.player)
	for _, a := range rest {
		g.Spawn(a)
	}
	g.Commit()
	return nil
}

// exempt keeps the player and level geometry when they leave the bounds.
func exempt(a arena.Actor) bool {
	return a.Kind() == entity.KindPlayer || entity.IsStatic(a.Kind())
}

// essential actors are never removed by the distance cull.
func essential(k arena.Kind) bool {
	return k == entity.KindPlayer || entity.IsStatic(k)
}

func (g *Game) Phase() Phase              { return g.phase }
func (g *Game) Stats() Stats              { return g.stats }
func (g *Game) Settings() config.Settings { return g.settings }
func (g *Game) Player() *entity.Player    { return g.player }
func (g *Game) Doors() []*entity.Door     { return g.doors }
func (g *Game) Over() bool                { return g.phase != PhasePlaying }

// Score is the current score: kills, distance and the win bonus.
func (g *Game) Score() int {
	score := g.stats.Kills*KillPoints + int(g.stats.FurthestX/DistanceDivisor)
	if g.phase == PhaseGameWon {
		score += WinBonus
	}
	return score
}

// Tick advances the run by one frame and returns the resulting phase. Once the
// run is over Tick does nothing.
func (g *Game) Tick(in core.Input) Phase {
	if g.phase != PhasePlaying {
		return g.phase
	}
	if !g.guard() {
		return g.phase
	}

	g.cullFar()
	g.Arena.Tick(in)

	g.stats.Ticks++
	g.stats.FurthestX = max(g.stats.FurthestX, g.player.Body().X)
	g.spawnEnemies()
	return g.phase
}

// guard evaluates the end conditions before a tick. It reports whether the
// tick should run.
func (g *Game) guard() bool {
	p := g.player
	if p == nil || !g.Contains(p) || p.Dead() {
		g.end(PhaseGameOver, "player dead")
		return false
	}
	if p.Health() <= 0 {
		p.Die()
	}
	if !g.InBounds(p) {
		p.SetHealth(0)
		g.end(PhaseGameOver, "player left the world")
		return false
	}
	for _, d := range g.doors {
		if d.Passed() {
			g.end(PhaseGameWon, "door passed")
			return false
		}
	}
	return true
}

func (g *Game) end(phase Phase, reason string) {
	g.phase = phase
	g.logger.Info("run ended", "phase", phase, "reason", reason,
		"ticks", g.stats.Ticks, "kills", g.stats.Kills, "score", g.Score())
}

// cullFar removes non-essential actors too far from the player.
func (g *Game) cullFar() {
	limit := g.settings.Game.Defaults.CullDistance
	if limit <= 0 {
		return
	}
	origin := g.player.Body()
	culled := 0
	for _, a := range g.Actors() {
		if essential(a.Kind()) {
			continue
		}
		b := a.Body()
		if math.Hypot(b.X-origin.X, b.Y-origin.Y) > limit {
			g.Kill(a)
			culled++
		}
	}
	if culled > 0 {
		g.logger.Debug("distance cull", "actors", culled)
	}
}

// spawnEnemies rolls one independent spawn chance per enemy kind.
func (g *Game) spawnEnemies() {
	gd := g.settings.Game.Defaults
	score, ticks := g.Score(), g.stats.Ticks

	if g.rng.Float64() < g.difficulty.SpawnChance(gd.ZombieSpawnChance, score, ticks) {
		z, ok := entity.AutoZombie(g.rng, g.player.Body(), g.Actors(), g.settings.Zombie.Defaults, gd.SpawnShortlist)
		if ok {
			z.SetDamage(g.difficulty.Damage(z.Damage(), score, ticks))
			g.place(z)
		} else {
			g.logger.Debug("no spawn point", "kind", entity.KindName(entity.KindZombie))
		}
	}
	if g.rng.Float64() < g.difficulty.SpawnChance(gd.PlantSpawnChance, score, ticks) {
		p, ok := entity.AutoPlant(g.rng, g.player.Body(), g.Actors(), g.settings.Plant.Defaults, g.settings.EyeBall.Defaults, gd.SpawnShortlist)
		if ok {
			p.SetProjectileDamage(g.difficulty.Damage(g.settings.Plant.Defaults.ProjectileDamage, score, ticks))
			g.place(p)
		} else {
			g.logger.Debug("no spawn point", "kind", entity.KindName(entity.KindPlant))
		}
	}
}

// place adds a dynamically spawned enemy right away so it is visible before
// the next tick.
func (g *Game) place(a arena.Actor) {
	g.Spawn(a)
	g.Commit()
	g.stats.Spawned++
	b := a.Body()
	g.logger.Debug("spawned", "kind", entity.KindName(a.Kind()), "x", b.X, "y", b.Y)
}
