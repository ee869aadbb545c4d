package neonvoid

import "github.com/vovakirdan/neon-void/internal/core"

// Kind tags the variant of an Entity. The set is closed: every switch over
// Kind in this package handles all five values.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindParticle
	KindPowerUp
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindParticle:
		return "particle"
	case KindPowerUp:
		return "powerup"
	default:
		return "?"
	}
}

// Layer is a collision layer bitmask.
type Layer uint8

const (
	LayerPlayer Layer = 1 << iota
	LayerEnemy
	LayerBullet
	LayerPowerUp

	LayerNone Layer = 0 // Particles never collide
)

// collisionMask lists, per layer, the layers it is tested against.
var collisionMask = map[Layer]Layer{
	LayerPlayer: LayerEnemy | LayerPowerUp,
	LayerBullet: LayerEnemy,
}

// Collides reports whether entities on layer a are tested against layer b.
func Collides(a, b Layer) bool {
	return collisionMask[a]&b != 0
}

// layerOf returns the fixed collision layer of a kind.
func layerOf(k Kind) Layer {
	switch k {
	case KindPlayer:
		return LayerPlayer
	case KindEnemy:
		return LayerEnemy
	case KindBullet:
		return LayerBullet
	case KindPowerUp:
		return LayerPowerUp
	default:
		return LayerNone
	}
}

// EnemyClass is the enemy type tag.
type EnemyClass uint8

const (
	EnemyStandard EnemyClass = iota
	EnemyZigzag
	EnemyTank
)

// String returns the name of the enemy class.
func (c EnemyClass) String() string {
	switch c {
	case EnemyStandard:
		return "standard"
	case EnemyZigzag:
		return "zigzag"
	case EnemyTank:
		return "tank"
	default:
		return "?"
	}
}

// WeaponMode is the player's current fire behavior.
type WeaponMode uint8

const (
	WeaponLaser WeaponMode = iota // Default mode
	WeaponSpread
	WeaponCharge
)

// String returns the name of the weapon mode.
func (m WeaponMode) String() string {
	switch m {
	case WeaponLaser:
		return "laser"
	case WeaponSpread:
		return "spread"
	case WeaponCharge:
		return "charge"
	default:
		return "?"
	}
}

// upgradeModes are the modes a weapon power-up can grant.
var upgradeModes = []WeaponMode{WeaponSpread, WeaponCharge}

// PowerUpKind is the effect carried by a power-up.
type PowerUpKind uint8

const (
	PowerUpHeal PowerUpKind = iota
	PowerUpWeapon
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHeal:
		return "heal"
	case PowerUpWeapon:
		return "weapon"
	default:
		return "?"
	}
}

// Health is a hit-point pool shared by actors that can be destroyed by damage.
type Health struct {
	HP  int
	Max int
}

// NewHealth returns a full pool.
func NewHealth(max int) Health {
	return Health{HP: max, Max: max}
}

// TakeDamage subtracts amount and reports whether the pool is depleted.
// Negative amounts are treated as zero. HP itself may go below zero, and any
// value at or below zero counts as destroyed.
func (h *Health) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	h.HP -= amount
	return h.HP <= 0
}

// Heal restores HP up to Max.
func (h *Health) Heal(amount int) {
	if amount < 0 {
		return
	}
	h.HP = min(h.Max, h.HP+amount)
}

// Entity is every simulated object. Kind selects which of the kind-specific
// fields below are meaningful.
type Entity struct {
	ID     int
	Kind   Kind
	Layer  Layer
	Pos    core.Vec2 // Center, arena units
	Vel    core.Vec2 // Displacement per tick
	Size   core.Vec2
	Health Health // Player and enemies only
	Dead   bool   // Marked for removal at end of tick

	// Player; bullets keep the mode that fired them
	Weapon      WeaponMode
	WeaponTimer int // Ticks until the weapon reverts to laser; 0 when inactive
	Cooldown    int // Ticks until the next shot is accepted

	// Enemy
	Class EnemyClass
	Phase float64 // Zigzag oscillation angle

	// Particle
	Life int

	// PowerUp
	Drop PowerUpKind
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.BoxAt(e.Pos, e.Size)
}

// Alive reports whether the entity has not been marked for removal.
func (e *Entity) Alive() bool {
	return !e.Dead
}

// Move shifts the player horizontally by speed*dir and keeps its bounding box
// inside [0, arenaW]. dir is -1, 0 or +1.
func (e *Entity) Move(dir int, speed, arenaW float64) {
	half := e.Size.X / 2
	e.Pos.X = core.ClampF(e.Pos.X+float64(dir)*speed, half, arenaW-half)
}

// UpgradeWeapon switches the weapon mode for duration ticks.
func (e *Entity) UpgradeWeapon(mode WeaponMode, duration int) {
	e.Weapon = mode
	e.WeaponTimer = duration
}

// tickWeapon advances the upgrade countdown by one tick.
// Returns true on the tick the weapon reverts to laser.
func (e *Entity) tickWeapon() bool {
	if e.WeaponTimer <= 0 {
		return false
	}
	e.WeaponTimer--
	if e.WeaponTimer == 0 {
		e.Weapon = WeaponLaser
		return true
	}
	return false
}
