package neonvoid

// World owns the live entities. Every entity sits in the all-entities list and
// in exactly one role list; both are compacted together by sweep.
type World struct {
	nextID    int
	all       []*Entity
	player    *Entity
	enemies   []*Entity
	bullets   []*Entity
	particles []*Entity
	powerups  []*Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		all:       make([]*Entity, 0, 128),
		enemies:   make([]*Entity, 0, 32),
		bullets:   make([]*Entity, 0, 32),
		particles: make([]*Entity, 0, 64),
		powerups:  make([]*Entity, 0, 8),
	}
}

// add registers an entity in the all-entities list and its role list.
func (w *World) add(e *Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	e.Layer = layerOf(e.Kind)

	w.all = append(w.all, e)
	switch e.Kind {
	case KindPlayer:
		w.player = e
	case KindEnemy:
		w.enemies = append(w.enemies, e)
	case KindBullet:
		w.bullets = append(w.bullets, e)
	case KindParticle:
		w.particles = append(w.particles, e)
	case KindPowerUp:
		w.powerups = append(w.powerups, e)
	}
	return e
}

// sweep removes every entity marked Dead from all lists at once.
// The player slot is kept so its final state stays readable after game over.
func (w *World) sweep() {
	w.all = compact(w.all)
	w.enemies = compact(w.enemies)
	w.bullets = compact(w.bullets)
	w.particles = compact(w.particles)
	w.powerups = compact(w.powerups)
}

// liveEnemies counts enemies not marked for removal.
func (w *World) liveEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}

// Count returns the number of entities of the given kind still in the world.
func (w *World) Count(k Kind) int {
	switch k {
	case KindPlayer:
		if w.player != nil && !w.player.Dead {
			return 1
		}
		return 0
	case KindEnemy:
		return len(w.enemies)
	case KindBullet:
		return len(w.bullets)
	case KindParticle:
		return len(w.particles)
	case KindPowerUp:
		return len(w.powerups)
	default:
		return 0
	}
}

// compact filters out dead entities in place.
func compact(list []*Entity) []*Entity {
	kept := list[:0]
	for _, e := range list {
		if !e.Dead {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}
