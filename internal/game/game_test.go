package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
	"github.com/vovakirdan/tui-graveyard/internal/entity"
)

// quietSettings turns off the random enemy spawns.
func quietSettings() config.Settings {
	s := config.DefaultSettings()
	s.Game.Defaults.ZombieSpawnChance = 0
	s.Game.Defaults.PlantSpawnChance = 0
	return s
}

func newTestGame(t *testing.T, w, h float64, s config.Settings, queue ...arena.Actor) *Game {
	t.Helper()
	g, err := New(w, h, queue, WithSettings(s), WithSeed(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func newTestPlayer(t *testing.T, x, y float64) *entity.Player {
	t.Helper()
	p, err := entity.NewPlayer(x, y, config.DefaultSettings().Player.Defaults)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func ground(t *testing.T, x, y, w, h float64) *entity.Platform {
	t.Helper()
	p, err := entity.NewPlatform("ground", core.Box{X: x, Y: y, W: w, H: h}, 0, core.AllSurfaces)
	if err != nil {
		t.Fatalf("NewPlatform: %v", err)
	}
	return p
}

func mustZombie(t *testing.T, x, y float64, cfg config.ZombieDefaults) *entity.Zombie {
	t.Helper()
	z, err := entity.NewZombie(x, y, core.DirRight, cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewZombie: %v", err)
	}
	return z
}

func count(g *Game, k arena.Kind) (n int) {
	for _, a := range g.Actors() {
		if a.Kind() == k {
			n++
		}
	}
	return n
}

func TestNewRequiresOnePlayer(t *testing.T) {
	s := quietSettings()
	if _, err := New(100, 100, []arena.Actor{ground(t, 0, 50, 100, 10)}, WithSettings(s)); !errors.Is(err, entity.ErrInvalidArgument) {
		t.Errorf("no player: error = %v", err)
	}
	two := []arena.Actor{newTestPlayer(t, 0, 0), newTestPlayer(t, 10, 0)}
	if _, err := New(100, 100, two, WithSettings(s)); !errors.Is(err, entity.ErrInvalidArgument) {
		t.Errorf("two players: error = %v", err)
	}
	if _, err := New(0, 100, []arena.Actor{newTestPlayer(t, 0, 0)}); !errors.Is(err, arena.ErrInvalidArgument) {
		t.Errorf("zero width: error = %v", err)
	}
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	s := quietSettings()
	s.Player.Defaults.MaxHealth = 0
	if _, err := New(100, 100, []arena.Actor{newTestPlayer(t, 0, 0)}, WithSettings(s)); err == nil {
		t.Error("invalid settings accepted")
	}
}

func TestQueueSpawnsPlayerFirst(t *testing.T) {
	floor := ground(t, 0, 132, 500, 20)
	player := newTestPlayer(t, 100, 100)
	g := newTestGame(t, 500, 240, quietSettings(), floor, player)

	actors := g.Actors()
	if len(actors) != 2 || actors[0] != player {
		t.Fatalf("actors = %v, expected the player first", actors)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing", g.Phase())
	}
}

// Torch thrown at speed 7 and gravity 0.7 lands on a platform: exactly one
// flame at the impact point, the torch is gone.
func TestTorchLandingLeavesFlame(t *testing.T) {
	d := config.DefaultSettings()
	player := newTestPlayer(t, 20, 100)
	torch, err := entity.NewTorch(200, 100, core.DirRight, d.Torch.Defaults, d.Flame.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, 1000, 400, quietSettings(),
		player,
		ground(t, 0, 132, 100, 20),
		ground(t, 150, 150, 850, 20),
		torch,
	)

	ticks := 0
	for g.Contains(torch) && ticks < 100 {
		g.Tick(core.Input{})
		ticks++
	}
	if g.Contains(torch) {
		t.Fatal("torch never landed")
	}
	if ticks != 19 {
		t.Errorf("torch landed after %d ticks, expected 19", ticks)
	}
	if n := count(g, entity.KindFlame); n != 1 {
		t.Fatalf("flames = %d, expected 1", n)
	}
	var flame *entity.Flame
	for _, a := range g.Actors() {
		if f, ok := a.(*entity.Flame); ok {
			flame = f
		}
	}
	// the torch landed at x = 200 + 19*7, its 16 px body centered at 341
	b := flame.Body()
	if b.X != 341-17 {
		t.Errorf("flame x = %v, expected %v", b.X, 341-17)
	}
	if math.Abs(b.Bottom()-150) > 1e-9 {
		t.Errorf("flame bottom = %v, expected on the platform at 150", b.Bottom())
	}
}

func TestPlayerFallingOutEndsTheRun(t *testing.T) {
	player := newTestPlayer(t, 50, 0)
	g := newTestGame(t, 200, 100, quietSettings(), player)

	for range 100 {
		if g.Tick(core.Input{}) != PhasePlaying {
			break
		}
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected game over", g.Phase())
	}
	if player.Health() != 0 {
		t.Errorf("health = %v, expected 0", player.Health())
	}

	ticks := g.Stats().Ticks
	g.Tick(core.Input{})
	if g.Stats().Ticks != ticks {
		t.Error("game kept ticking after the run ended")
	}
}

func TestDeadPlayerEndsTheRun(t *testing.T) {
	player := newTestPlayer(t, 100, 100)
	g := newTestGame(t, 500, 240, quietSettings(), player, ground(t, 0, 132, 500, 20))
	g.Tick(core.Input{})
	player.SetHealth(0)
	if g.Tick(core.Input{}) != PhaseGameOver {
		t.Errorf("phase = %s, expected game over", g.Phase())
	}
}

func TestStandingInDoorWins(t *testing.T) {
	s := quietSettings()
	s.Door.Defaults.PassageDelay = 3
	door, err := entity.NewDoor(90, 68, s.Door.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, 500, 240, s, newTestPlayer(t, 100, 100), ground(t, 0, 132, 500, 20), door)

	for range 10 {
		if g.Tick(core.Input{}) != PhasePlaying {
			break
		}
	}
	if g.Phase() != PhaseGameWon {
		t.Fatalf("phase = %s, expected game won", g.Phase())
	}
	if g.Score() < WinBonus {
		t.Errorf("score = %d, expected the win bonus", g.Score())
	}
}

func TestLeavingTheDoorClosesIt(t *testing.T) {
	s := quietSettings()
	door, err := entity.NewDoor(300, 68, s.Door.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, 500, 240, s, newTestPlayer(t, 100, 100), ground(t, 0, 132, 500, 20), door)
	door.Open()
	g.Tick(core.Input{})
	if door.State().Action != anim.ActionClose || door.Timer() != 0 {
		t.Errorf("door %s with timer %d, expected the free handler to close it", door.State(), door.Timer())
	}
}

func TestLadderFreeHandlerDetaches(t *testing.T) {
	player := newTestPlayer(t, 100, 100)
	ladder, err := entity.NewLadder("ladder", core.Box{X: 95, Y: 40, W: 30, H: 100})
	if err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, 500, 240, quietSettings(), player, ground(t, 0, 132, 500, 20), ladder)

	up := core.NewInput(core.KeyUp)
	attached := false
	for range 100 {
		g.Tick(up)
		if player.Laddered() {
			attached = true
		} else if attached {
			break
		}
	}
	if !attached {
		t.Fatal("player never attached to the ladder")
	}
	if player.Laddered() {
		t.Error("player still laddered after climbing off the top")
	}
	if player.Body().Bottom() > 40+1e-6 {
		t.Errorf("player bottom = %v, expected above the ladder top", player.Body().Bottom())
	}
}

func TestZombieContactHurtsOnce(t *testing.T) {
	s := quietSettings()
	player := newTestPlayer(t, 100, 100)
	zombie := mustZombie(t, 105, 100, s.Zombie.Defaults)
	zombie.StartWalking()
	g := newTestGame(t, 500, 240, s, player, ground(t, 0, 132, 500, 20), zombie)

	g.Tick(core.Input{})
	if player.Health() != 70 {
		t.Fatalf("health = %v, expected 70", player.Health())
	}
	g.Tick(core.Input{})
	if player.Health() != 70 {
		t.Errorf("health = %v, invincibility should block the second hit", player.Health())
	}
}

func TestTorchKillsCountTowardScore(t *testing.T) {
	s := quietSettings()
	g := newTestGame(t, 500, 240, s, newTestPlayer(t, 100, 100))
	zombie := mustZombie(t, 300, 100, s.Zombie.Defaults)

	for i := range 2 {
		torch, err := entity.NewTorch(300, 100, core.DirRight, s.Torch.Defaults, s.Flame.Defaults)
		if err != nil {
			t.Fatal(err)
		}
		g.torchHit(torch, zombie, g)
		if !torch.Dead() {
			t.Errorf("torch %d survived the hit", i)
		}
		if _, kills := g.Pending(); kills != i+1 {
			t.Errorf("staged kills = %d, expected %d", kills, i+1)
		}
	}
	if !zombie.Dead() {
		t.Fatal("two torches should kill a zombie")
	}
	if g.Stats().Kills != 1 {
		t.Errorf("kills = %d, expected 1", g.Stats().Kills)
	}
	if g.Score() != KillPoints {
		t.Errorf("score = %d, expected %d", g.Score(), KillPoints)
	}

	// a dead zombie is not counted twice
	flame, err := entity.NewFlame(300, 132, s.Flame.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	g.flameHit(flame, zombie, g)
	if g.Stats().Kills != 1 {
		t.Errorf("kills = %d after hitting a corpse", g.Stats().Kills)
	}
}

func TestEyeBallKillsDoNotScore(t *testing.T) {
	s := quietSettings()
	g := newTestGame(t, 500, 240, s, newTestPlayer(t, 100, 100))
	zombie := mustZombie(t, 300, 100, s.Zombie.Defaults)
	eyeCfg := s.EyeBall.Defaults
	eyeCfg.Damage = 1000
	eye, err := entity.NewEyeBall(300, 100, core.DirLeft, eyeCfg)
	if err != nil {
		t.Fatal(err)
	}
	g.eyeBallHit(eye, zombie, g)
	if !zombie.Dead() {
		t.Fatal("eyeball should hurt zombies")
	}
	if g.Stats().Kills != 0 {
		t.Errorf("kills = %d, expected enemy fire not to score", g.Stats().Kills)
	}
	if _, kills := g.Pending(); kills != 1 {
		t.Errorf("staged kills = %d, expected the eyeball", kills)
	}
}

func TestDistanceCull(t *testing.T) {
	d := config.DefaultSettings()
	far, err := entity.NewEyeBall(1500, 50, core.DirLeft, d.EyeBall.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	near, err := entity.NewEyeBall(300, 50, core.DirLeft, d.EyeBall.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	wall := ground(t, 2000, 0, 10, 240)
	g := newTestGame(t, 3000, 240, quietSettings(), newTestPlayer(t, 100, 100), ground(t, 0, 132, 3000, 20), far, near, wall)

	g.Tick(core.Input{})
	if g.Contains(far) {
		t.Error("far eyeball survived the distance cull")
	}
	if !g.Contains(near) || !g.Contains(wall) {
		t.Error("near eyeball and level geometry must stay")
	}
}

func TestRandomSpawnsNearPlayer(t *testing.T) {
	s := quietSettings()
	s.Game.Defaults.ZombieSpawnChance = 1
	g := newTestGame(t, 1000, 240, s, newTestPlayer(t, 500, 100), ground(t, 0, 132, 1000, 20))

	g.Tick(core.Input{})
	if n := count(g, entity.KindZombie); n != 1 {
		t.Fatalf("zombies = %d, expected 1 after a certain spawn roll", n)
	}
	if g.Stats().Spawned != 1 {
		t.Errorf("spawned = %d, expected 1", g.Stats().Spawned)
	}
	if count(g, entity.KindPlant) != 0 {
		t.Error("plant spawned with a zero chance")
	}
}

func TestRandomSpawnWithoutPlatformsIsSkipped(t *testing.T) {
	s := quietSettings()
	s.Game.Defaults.ZombieSpawnChance = 1
	s.Game.Defaults.PlantSpawnChance = 1
	g := newTestGame(t, 1000, 2000, s, newTestPlayer(t, 500, 100))

	g.Tick(core.Input{})
	if g.Stats().Spawned != 0 {
		t.Errorf("spawned = %d without any platform", g.Stats().Spawned)
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{PhasePlaying: "playing", PhaseGameOver: "game_over", PhaseGameWon: "game_won", Phase(9): "unknown"} {
		if p.String() != want {
			t.Errorf("%d.String() = %q, expected %q", p, p.String(), want)
		}
	}
}

func TestSpentProjectilesHitNothing(t *testing.T) {
	s := quietSettings()
	player := newTestPlayer(t, 100, 100)
	g := newTestGame(t, 500, 240, s, player)
	zombie := mustZombie(t, 300, 100, s.Zombie.Defaults)

	torch, err := entity.NewTorch(300, 100, core.DirRight, s.Torch.Defaults, s.Flame.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	torch.Hit(0)
	health := zombie.Health()
	g.torchHit(torch, zombie, g)
	if zombie.Health() != health {
		t.Errorf("zombie health = %v, a spent torch should not burn (was %v)", zombie.Health(), health)
	}

	eye, err := entity.NewEyeBall(100, 100, core.DirLeft, s.EyeBall.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	eye.Hit(0)
	health = player.Health()
	g.eyeBallHit(eye, player, g)
	if player.Health() != health {
		t.Errorf("player health = %v, a spent eyeball should not hurt (was %v)", player.Health(), health)
	}

	if _, kills := g.Pending(); kills != 0 {
		t.Errorf("staged kills = %d, expected none", kills)
	}
}
