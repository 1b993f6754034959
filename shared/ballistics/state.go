package ballistics

import "github.com/automoto/ricochet/shared/gamemath"

// ColliderID identifies a struck body. Zero means "none".
type ColliderID uint64

// State is the per-projectile record mutated by ProcessCollision and by the
// projectile's own integration step.
type State struct {
	Position     gamemath.Vec3
	PrevPosition gamemath.Vec3
	Velocity     gamemath.Vec3
	Damage       float64

	BounceCount      int
	PenetrationCount int

	// LastColliderID and CollisionCooldown let the caller ignore repeat hits
	// against a body it just pierced. The caller decays the cooldown.
	LastColliderID    ColliderID
	CollisionCooldown float64
}

// NewState returns a fresh state for a projectile spawned at position.
func NewState(position, velocity gamemath.Vec3, damage float64) State {
	return State{
		Position:     position,
		PrevPosition: position,
		Velocity:     velocity,
		Damage:       max(0, damage),
	}
}

// Suppressed reports whether a hit against id should be ignored because the
// projectile pierced that same body within the cooldown window.
func (s *State) Suppressed(id ColliderID) bool {
	return id != 0 && id == s.LastColliderID && s.CollisionCooldown > 0
}

// DecayCooldown runs the cooldown timer down by dt seconds.
func (s *State) DecayCooldown(dt float64) {
	if s.CollisionCooldown > 0 {
		s.CollisionCooldown = max(0, s.CollisionCooldown-dt)
	}
}

// Context describes one collision event. It is built by the collision
// detection code and discarded after ProcessCollision returns.
type Context struct {
	HitPosition  gamemath.Vec3
	HitNormal    gamemath.Vec3 // may be zero when no modifier needs it
	NextPosition gamemath.Vec3 // continuation point past the hit
	ColliderID   ColliderID
	IsEnemy      bool // struck body is a damageable hostile, not geometry
	Radius       float64

	// DefaultDeactivate is returned when no modifier handles the event.
	DefaultDeactivate bool
}
