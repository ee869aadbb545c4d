package neonvoid

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// EntitySnapshot is the comparable state of one entity.
type EntitySnapshot struct {
	ID     int
	Kind   Kind
	X, Y   float64
	HP     int
	Weapon WeaponMode
	Timer  int
	Class  EnemyClass
	Life   int
	Drop   PowerUpKind
}

// Snapshot captures the simulation state for determinism checks.
type Snapshot struct {
	Tick      int
	Score     int
	Kills     int
	Wave      int
	Cursor    int
	Phase     WavePhase
	PlayerHP  int
	Cooldown  int
	GameOver  bool
	EndReason string
	Entities  []EntitySnapshot
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	p := g.world.player
	s := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Kills:     g.kills,
		Wave:      g.waves.Wave(),
		Cursor:    g.waves.Cursor(),
		Phase:     g.waves.Phase(),
		PlayerHP:  p.Health.HP,
		Cooldown:  p.Cooldown,
		GameOver:  g.gameOver,
		EndReason: g.endReason,
		Entities:  make([]EntitySnapshot, 0, len(g.world.all)),
	}
	for _, e := range g.world.all {
		s.Entities = append(s.Entities, EntitySnapshot{
			ID:     e.ID,
			Kind:   e.Kind,
			X:      e.Pos.X,
			Y:      e.Pos.Y,
			HP:     e.Health.HP,
			Weapon: e.Weapon,
			Timer:  e.WeaponTimer,
			Class:  e.Class,
			Life:   e.Life,
			Drop:   e.Drop,
		})
	}
	return s
}

// Hash returns an FNV-1a digest of the snapshot. Two runs with the same seed
// and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	writeInt(s.Tick)
	writeInt(s.Score)
	writeInt(s.Kills)
	writeInt(s.Wave)
	writeInt(s.Cursor)
	writeInt(int(s.Phase))
	writeInt(s.PlayerHP)
	writeInt(s.Cooldown)
	if s.GameOver {
		writeInt(1)
	} else {
		writeInt(0)
	}
	h.Write([]byte(s.EndReason))

	for _, e := range s.Entities {
		writeInt(e.ID)
		writeInt(int(e.Kind))
		writeFloat(e.X)
		writeFloat(e.Y)
		writeInt(e.HP)
		writeInt(int(e.Weapon))
		writeInt(e.Timer)
		writeInt(int(e.Class))
		writeInt(e.Life)
		writeInt(int(e.Drop))
	}
	return h.Sum64()
}
