package entity

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-graveyard/internal/anim"
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/config"
	"github.com/vovakirdan/tui-graveyard/internal/core"
)

func newTestPlant(t *testing.T, cfg config.PlantDefaults) *Plant {
	t.Helper()
	p, err := NewPlant(200, 100, core.DirLeft, cfg, config.DefaultSettings().EyeBall.Defaults)
	if err != nil {
		t.Fatalf("NewPlant: %v", err)
	}
	return p
}

func TestPlantGrowsFromTheGround(t *testing.T) {
	p := newTestPlant(t, config.DefaultSettings().Plant.Defaults)
	if b := p.Body(); b.H != 8 || b.Bottom() != 132 {
		t.Fatalf("spawning body = %+v, expected 8 px tall standing on 132", b)
	}

	w := newFakeWorld()
	for range 50 {
		p.Move(w)
	}
	if p.State().Action != anim.ActionIdle {
		t.Fatalf("action = %s, expected idle after growing", p.State().Action)
	}
	if b := p.Body(); b.H != 32 || b.Bottom() != 132 {
		t.Errorf("grown body = %+v, expected 32 px tall standing on 132", b)
	}
}

func TestPlantFiresAtPlayer(t *testing.T) {
	cfg := config.DefaultSettings().Plant.Defaults
	cfg.AttackInterval = 2
	p := newTestPlant(t, cfg)

	player, err := NewPlayer(500, 100, config.DefaultSettings().Player.Defaults)
	if err != nil {
		t.Fatal(err)
	}
	w := newFakeWorld()
	w.actors = []arena.Actor{player}

	for range 200 {
		p.Move(w)
		if len(w.spawned) > 0 {
			break
		}
	}
	if got := w.spawnedOf(KindEyeBall); got != 1 {
		t.Fatalf("spawned %d eyeballs, expected 1", got)
	}
	eye := w.spawned[0].(*EyeBall)
	if eye.Direction() != core.DirRight {
		t.Errorf("eyeball flies %s, expected right toward the player", eye.Direction())
	}
	if x := eye.Body().X; x != p.Body().Right()+eyeBallGap {
		t.Errorf("eyeball x = %v, expected %v", x, p.Body().Right()+eyeBallGap)
	}
	if eye.Damage() != cfg.ProjectileDamage {
		t.Errorf("eyeball damage = %v, expected the plant's %v", eye.Damage(), cfg.ProjectileDamage)
	}
	if p.State().Action != anim.ActionIdle || p.State().Direction != core.DirRight {
		t.Errorf("plant state = %s, expected idle/right", p.State())
	}
}

func TestPlantWithoutPlayerStaysIdle(t *testing.T) {
	cfg := config.DefaultSettings().Plant.Defaults
	cfg.AttackInterval = 1
	p := newTestPlant(t, cfg)
	w := newFakeWorld()
	for range 200 {
		p.Move(w)
	}
	if len(w.spawned) != 0 {
		t.Errorf("plant fired %d times with nobody around", len(w.spawned))
	}
}

func TestPlantContactDamageInterval(t *testing.T) {
	cfg := config.DefaultSettings().Plant.Defaults
	cfg.DamageInterval = 5
	p := newTestPlant(t, cfg)
	target := &hitCounter{}

	p.OnPlayer(target)
	if target.hits != 0 {
		t.Fatal("growing plant should not hurt")
	}
	w := newFakeWorld()
	for range 50 {
		p.Move(w)
	}
	for range 10 {
		p.OnPlayer(target)
		p.Move(w)
	}
	if target.hits != 2 {
		t.Errorf("hits = %d over 10 ticks, expected 2", target.hits)
	}
}

func TestPlantDies(t *testing.T) {
	p := newTestPlant(t, config.DefaultSettings().Plant.Defaults)
	p.Hit(15)
	if p.Health() != 25 || p.Dead() {
		t.Fatalf("health = %v dead = %v", p.Health(), p.Dead())
	}
	p.Hit(100)
	if !p.Dead() {
		t.Error("plant survived lethal damage")
	}
}

func TestNewPlantValidates(t *testing.T) {
	cfg := config.DefaultSettings().Plant.Defaults
	cfg.MaxHealth = 0
	if _, err := NewPlant(0, 0, core.DirLeft, cfg, config.DefaultSettings().EyeBall.Defaults); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v, expected ErrInvalidArgument", err)
	}
	if _, err := NewPlant(0, 0, core.DirUp, config.DefaultSettings().Plant.Defaults, config.DefaultSettings().EyeBall.Defaults); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v, expected ErrInvalidArgument", err)
	}
}
