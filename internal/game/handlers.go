package game

import (
	"github.com/vovakirdan/tui-graveyard/internal/arena"
	"github.com/vovakirdan/tui-graveyard/internal/entity"
)

func (g *Game) registerHandlers(r *arena.Registry) {
	r.Register(entity.KindPlayer, entity.KindPlatform, g.playerPlatform)
	r.Register(entity.KindPlayer, entity.KindGraveStone, g.playerPlatform)
	r.Register(entity.KindPlayer, entity.KindLadder, g.playerLadder)
	r.RegisterFree(entity.KindPlayer, entity.KindLadder, playerOffLadder)
	r.Register(entity.KindPlayer, entity.KindDoor, playerDoor)
	r.RegisterFree(entity.KindPlayer, entity.KindDoor, playerOffDoor)

	// zombies walk through gravestones
	r.Register(entity.KindZombie, entity.KindPlatform, g.zombiePlatform)
	r.Register(entity.KindZombie, entity.KindPlayer, zombiePlayer)

	for _, k := range []arena.Kind{entity.KindZombie, entity.KindPlant, entity.KindEyeBall} {
		r.Register(entity.KindTorch, k, g.torchHit)
		r.Register(entity.KindFlame, k, g.flameHit)
	}
	r.Register(entity.KindTorch, entity.KindPlatform, torchPlatform)
	r.Register(entity.KindTorch, entity.KindGraveStone, torchPlatform)
	r.Register(entity.KindFlame, entity.KindPlatform, flamePlatform)
	r.Register(entity.KindFlame, entity.KindGraveStone, flamePlatform)

	r.Register(entity.KindEyeBall, entity.KindPlayer, g.eyeBallHit)
	r.Register(entity.KindEyeBall, entity.KindPlatform, g.eyeBallHit)
	r.Register(entity.KindEyeBall, entity.KindZombie, g.eyeBallHit)

	r.Register(entity.KindPlant, entity.KindPlatform, plantPlatform)
	r.Register(entity.KindPlant, entity.KindPlayer, plantPlayer)
}

// exchange applies contact damage both ways and reports whether anything was
// hit. Actors without the capability are skipped.
func (g *Game) exchange(a, b arena.Actor) bool {
	hit := g.strike(a, b)
	if g.strike(b, a) {
		hit = true
	}
	return hit
}

func (g *Game) strike(src, dst arena.Actor) bool {
	d, ok := src.(arena.Damaging)
	if !ok {
		return false
	}
	target, ok := dst.(arena.Damageable)
	if !ok {
		return false
	}
	alive := !arena.IsDead(dst)
	target.Hit(d.Damage())
	if alive && arena.IsDead(dst) && playerWeapon(src.Kind()) && enemy(dst.Kind()) {
		g.stats.Kills++
		g.logger.Debug("enemy killed", "kind", entity.KindName(dst.Kind()), "by", entity.KindName(src.Kind()))
	}
	return true
}

func playerWeapon(k arena.Kind) bool { return k == entity.KindTorch || k == entity.KindFlame }
func enemy(k arena.Kind) bool        { return k == entity.KindZombie || k == entity.KindPlant }

func (g *Game) playerPlatform(a, b arena.Actor, _ arena.World) {
	player, ok := a.(*entity.Player)
	if !ok {
		return
	}
	g.exchange(a, b)
	if solid, ok := b.(arena.Solid); ok {
		player.OnPlatform(solid.Resolve(player.Body()))
	}
}

func (g *Game) playerLadder(a, b arena.Actor, w arena.World) {
	player, ok := a.(*entity.Player)
	if !ok {
		return
	}
	g.exchange(a, b)
	player.OnLadder(w.Keys(), b.Body())
}

func playerOffLadder(a, _ arena.Actor, _ arena.World) {
	if player, ok := a.(*entity.Player); ok {
		player.LeaveLadder()
	}
}

func playerDoor(_, b arena.Actor, _ arena.World) {
	if door, ok := b.(*entity.Door); ok {
		door.Open()
	}
}

func playerOffDoor(_, b arena.Actor, _ arena.World) {
	if door, ok := b.(*entity.Door); ok {
		door.Close()
	}
}

func (g *Game) zombiePlatform(a, b arena.Actor, _ arena.World) {
	zombie, ok := a.(*entity.Zombie)
	if !ok {
		return
	}
	g.exchange(a, b)
	if solid, ok := b.(arena.Solid); ok {
		zombie.OnPlatform(solid.Resolve(zombie.Body()))
	}
}

func zombiePlayer(a, b arena.Actor, _ arena.World) {
	zombie, ok := a.(*entity.Zombie)
	if !ok {
		return
	}
	if target, ok := b.(arena.Damageable); ok {
		zombie.OnPlayer(target)
	}
}

// torchHit burns what the torch touches. A torch that dealt or took damage is
// spent and hits nothing else.
func (g *Game) torchHit(a, b arena.Actor, w arena.World) {
	if arena.IsDead(a) {
		return
	}
	if g.exchange(a, b) {
		w.Kill(a)
	}
}

func (g *Game) flameHit(a, b arena.Actor, _ arena.World) {
	g.exchange(a, b)
}

func torchPlatform(a, b arena.Actor, w arena.World) {
	torch, ok := a.(*entity.Torch)
	if !ok {
		return
	}
	if solid, ok := b.(arena.Solid); ok {
		torch.OnPlatform(solid.Resolve(torch.Body()), w)
	}
}

func flamePlatform(a, b arena.Actor, _ arena.World) {
	flame, ok := a.(*entity.Flame)
	if !ok {
		return
	}
	if solid, ok := b.(arena.Solid); ok {
		flame.OnPlatform(solid.Resolve(flame.Body()))
	}
}

// eyeBallHit damages the target and removes the eyeball. An eyeball that
// already hit something, or ran out of range, is harmless.
func (g *Game) eyeBallHit(a, b arena.Actor, w arena.World) {
	if arena.IsDead(a) {
		return
	}
	g.exchange(a, b)
	w.Kill(a)
}

func plantPlatform(a, b arena.Actor, _ arena.World) {
	plant, ok := a.(*entity.Plant)
	if !ok {
		return
	}
	if solid, ok := b.(arena.Solid); ok {
		plant.OnPlatform(solid.Resolve(plant.Body()))
	}
}

func plantPlayer(a, b arena.Actor, _ arena.World) {
	plant, ok := a.(*entity.Plant)
	if !ok {
		return
	}
	if target, ok := b.(arena.Damageable); ok {
		plant.OnPlayer(target)
	}
}
