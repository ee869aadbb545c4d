package neonvoid

import (
	"math"

	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
)

// newPlayer creates the player ship centered horizontally at the start row.
func newPlayer(cfg config.ShooterConfig) *Entity {
	return &Entity{
		Kind:   KindPlayer,
		Pos:    core.V(cfg.Arena.Width/2, cfg.Player.StartY),
		Size:   core.V(cfg.Player.Width, cfg.Player.Height),
		Health: NewHealth(cfg.Player.MaxHP),
		Weapon: WeaponLaser,
	}
}

// enemyStats returns the configured stats of an enemy class.
func enemyStats(cfg config.EnemiesConfig, class EnemyClass) config.EnemyConfig {
	switch class {
	case EnemyZigzag:
		return cfg.Zigzag
	case EnemyTank:
		return cfg.Tank
	default:
		return cfg.Standard
	}
}

// newEnemy creates an enemy of the given class at pos, moving down at speed.
func newEnemy(cfg config.EnemiesConfig, class EnemyClass, pos core.Vec2, speed float64) *Entity {
	stats := enemyStats(cfg, class)
	return &Entity{
		Kind:   KindEnemy,
		Class:  class,
		Pos:    pos,
		Vel:    core.V(0, speed),
		Size:   core.V(cfg.Width, cfg.Height),
		Health: NewHealth(stats.HP),
	}
}

// newBullet creates a bullet of the given weapon at pos travelling by vel each tick.
func newBullet(mode WeaponMode, pos, vel, size core.Vec2) *Entity {
	return &Entity{Kind: KindBullet, Weapon: mode, Pos: pos, Vel: vel, Size: size}
}

// newParticle creates a single burst particle with random velocity and lifetime.
func newParticle(cfg config.ParticlesConfig, pos core.Vec2, rng Rand) *Entity {
	vel := core.V(
		uniform(rng, -cfg.MaxSpeed, cfg.MaxSpeed),
		uniform(rng, -cfg.MaxSpeed, cfg.MaxSpeed),
	)
	return &Entity{
		Kind: KindParticle,
		Pos:  pos,
		Vel:  vel,
		Size: core.V(cfg.Size, cfg.Size),
		Life: between(rng, cfg.MinLife, cfg.MaxLife),
	}
}

// newPowerUp creates a drop of the given kind drifting down from pos.
func newPowerUp(cfg config.DropsConfig, kind PowerUpKind, pos core.Vec2) *Entity {
	return &Entity{
		Kind: KindPowerUp,
		Drop: kind,
		Pos:  pos,
		Vel:  core.V(0, cfg.FallSpeed),
		Size: core.V(cfg.Size, cfg.Size),
	}
}

// muzzle returns the bullets fired by one shot of the given weapon mode from
// a ship centered at pos. The slice order is left to right.
func muzzle(cfg config.WeaponsConfig, mode WeaponMode, pos core.Vec2) []*Entity {
	switch mode {
	case WeaponSpread:
		s := cfg.Spread
		size := core.V(s.Width, s.Height)
		shots := make([]*Entity, 0, 3)
		for _, dx := range []float64{-s.LateralSpeed, 0, s.LateralSpeed} {
			at := core.V(pos.X+dx*s.Offset, pos.Y)
			shots = append(shots, newBullet(WeaponSpread, at, core.V(dx, -s.Speed), size))
		}
		return shots

	case WeaponCharge:
		c := cfg.Charge
		return []*Entity{newBullet(WeaponCharge, pos, core.V(0, -c.Speed), core.V(c.Width, c.Height))}

	default:
		l := cfg.Laser
		return []*Entity{newBullet(WeaponLaser, pos, core.V(0, -l.Speed), core.V(l.Width, l.Height))}
	}
}

// updateEntity advances one entity by a single tick. It only touches the
// entity itself; cross-entity effects belong to the collision pass.
func (g *Game) updateEntity(e *Entity) {
	switch e.Kind {
	case KindPlayer:
		if e.tickWeapon() {
			g.emit(core.EventWeaponExpired, e.Pos, 0, WeaponLaser.String())
		}

	case KindBullet:
		e.Pos = e.Pos.Add(e.Vel)
		if e.Box().Bottom() < 0 {
			e.Dead = true
		}

	case KindEnemy:
		e.Pos.Y += e.Vel.Y
		if e.Class == EnemyZigzag {
			e.Pos.X += g.cfg.Enemies.ZigzagAmplitude * math.Sin(e.Phase)
			e.Phase += g.cfg.Enemies.ZigzagPhaseStep
		}
		if e.Box().Top() > g.cfg.Arena.Height {
			e.Dead = true
		}

	case KindParticle:
		e.Pos = e.Pos.Add(e.Vel)
		e.Life--
		if e.Life <= 0 {
			e.Dead = true
		}

	case KindPowerUp:
		e.Pos.Y += e.Vel.Y
		if e.Box().Top() > g.cfg.Arena.Height {
			e.Dead = true
		}
	}
}

// tryFire spawns the current weapon's bullets if the cooldown has run out.
// Returns true when a shot was fired.
func (g *Game) tryFire() bool {
	p := g.world.player
	if p.Cooldown > 0 {
		return false
	}

	for _, b := range muzzle(g.cfg.Weapons, p.Weapon, p.Pos) {
		g.world.add(b)
	}
	p.Cooldown = g.cfg.Player.FireCooldown
	g.shots++
	return true
}

// spawnEnemy instantiates a queued wave record as a live enemy.
func (g *Game) spawnEnemy(rec SpawnRecord) *Entity {
	base := enemyStats(g.cfg.Enemies, rec.Class).Speed
	speed := g.difficulty.EnemySpeed(base, g.waves.Wave())
	return g.world.add(newEnemy(g.cfg.Enemies, rec.Class, rec.Pos, speed))
}
