package neonvoid

import "github.com/vovakirdan/neon-void/internal/core"

// resolveCollisions runs the three collision passes in order. It runs after
// every entity has moved, so all passes see the same positions. Destruction
// only sets Dead; entities are removed by sweep at the end of the tick.
func (g *Game) resolveCollisions() {
	g.resolveBulletHits()
	g.resolvePlayerRams()
	if !g.gameOver {
		g.resolvePickups()
	}
}

// resolveBulletHits applies bullet damage to every enemy each live bullet
// overlaps. A bullet is consumed after its full hit set for the tick.
func (g *Game) resolveBulletHits() {
	if !Collides(LayerBullet, LayerEnemy) {
		return
	}

	for _, b := range g.world.bullets {
		if b.Dead {
			continue
		}
		box := b.Box()
		hit := false

		for _, e := range g.world.enemies {
			if e.Dead || !box.Overlaps(e.Box()) {
				continue
			}
			hit = true
			if e.Health.TakeDamage(g.cfg.Combat.BulletDamage) {
				g.destroyEnemy(e)
			}
		}

		if hit {
			b.Dead = true
		}
	}
}

// destroyEnemy marks a shot-down enemy, awards score, bursts particles and
// rolls for a drop. The Dead check keeps an enemy from scoring twice.
func (g *Game) destroyEnemy(e *Entity) {
	if e.Dead {
		return
	}
	e.Dead = true
	g.score += g.cfg.Combat.KillScore
	g.kills++
	g.emit(core.EventEnemyDestroyed, e.Pos, g.cfg.Combat.KillScore, e.Class.String())

	for range g.cfg.Particles.Burst {
		g.world.add(newParticle(g.cfg.Particles, e.Pos, g.rng))
	}

	if chance(g.rng, g.cfg.Drops.Chance) {
		kind := PowerUpKind(g.rng.Intn(2))
		g.world.add(newPowerUp(g.cfg.Drops, kind, e.Pos))
	}
}

// resolvePlayerRams destroys every enemy touching the player outright.
// The player takes collision damage once per tick no matter how many
// enemies it touched. Rammed enemies award no score.
func (g *Game) resolvePlayerRams() {
	p := g.world.player
	if p.Dead || !Collides(LayerPlayer, LayerEnemy) {
		return
	}

	box := p.Box()
	rammed := false
	for _, e := range g.world.enemies {
		if e.Dead || !box.Overlaps(e.Box()) {
			continue
		}
		e.Dead = true
		rammed = true
	}
	if !rammed {
		return
	}

	destroyed := p.Health.TakeDamage(g.cfg.Combat.CollisionDamage)
	g.emit(core.EventPlayerHit, p.Pos, p.Health.HP, "")
	if destroyed {
		p.Dead = true
		g.endMatch(EndDestroyed)
	}
}

// resolvePickups applies every power-up the player touches.
func (g *Game) resolvePickups() {
	p := g.world.player
	if p.Dead || !Collides(LayerPlayer, LayerPowerUp) {
		return
	}

	box := p.Box()
	for _, u := range g.world.powerups {
		if u.Dead || !box.Overlaps(u.Box()) {
			continue
		}
		u.Dead = true
		g.applyPowerUp(p, u.Drop)
		g.emit(core.EventPowerUpCollected, u.Pos, p.Health.HP, u.Drop.String())
	}
}

// applyPowerUp applies a drop's effect to the player.
func (g *Game) applyPowerUp(p *Entity, kind PowerUpKind) {
	switch kind {
	case PowerUpHeal:
		p.Health.Heal(g.cfg.Drops.HealAmount)
	case PowerUpWeapon:
		mode := upgradeModes[g.rng.Intn(len(upgradeModes))]
		p.UpgradeWeapon(mode, g.cfg.Weapons.UpgradeDuration)
	}
}
