package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventWaveStarted EventKind = iota
	EventWaveCleared
	EventEnemyDestroyed
	EventPlayerHit
	EventPowerUpCollected
	EventWeaponExpired
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWaveStarted:
		return "wave_started"
	case EventWaveCleared:
		return "wave_cleared"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventWeaponExpired:
		return "weapon_expired"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a game in StepResult. Platforms use events for logging
// and statistics; the simulation never reads them back.
type Event struct {
	Kind   EventKind
	Tick   int
	Pos    Vec2   // Where it happened, if meaningful
	Value  int    // Kind-specific value (wave number, points, remaining HP)
	Detail string // Kind-specific label (enemy class, power-up kind)
}
