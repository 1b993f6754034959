// Package ballistics resolves projectile collisions: given a projectile's
// mutable state, its archetype's behavior modifiers and one collision event,
// it decides whether the projectile bounces, pierces or terminates.
//
// It has no dependencies on donburi or resolv and never allocates.
package ballistics

import "github.com/automoto/ricochet/shared/gamemath"

// BounceConfig reflects the projectile off the struck surface.
type BounceConfig struct {
	DamageReduction float64 // fraction of current damage removed per bounce
	Bounciness      float64 // scale applied to the reflected velocity
	MaxBounces      int
}

// NewBounceConfig clamps the parameters into their valid ranges. It returns
// nil when maxBounces is not positive, since such a modifier can never fire.
func NewBounceConfig(damageReduction, bounciness float64, maxBounces int) *BounceConfig {
	if maxBounces <= 0 {
		return nil
	}
	return &BounceConfig{
		DamageReduction: gamemath.Clamp01(damageReduction),
		Bounciness:      max(0, bounciness),
		MaxBounces:      maxBounces,
	}
}

// PierceConfig lets the projectile pass through enemies.
type PierceConfig struct {
	DamageReduction float64 // fraction of current damage removed per penetration
	VelocityFactor  float64 // velocity multiplier per penetration
	MaxPenetrations int
	Cooldown        float64 // seconds the pierced collider is ignored afterwards
}

// NewPierceConfig clamps the parameters into their valid ranges. It returns
// nil when maxPenetrations is not positive.
func NewPierceConfig(damageReduction, velocityFactor float64, maxPenetrations int, cooldown float64) *PierceConfig {
	if maxPenetrations <= 0 {
		return nil
	}
	return &PierceConfig{
		DamageReduction: gamemath.Clamp01(damageReduction),
		VelocityFactor:  gamemath.Clamp01(velocityFactor),
		MaxPenetrations: maxPenetrations,
		Cooldown:        max(0, cooldown),
	}
}

// HomingConfig steers the projectile toward the nearest enemy in flight.
// The processor ignores it.
type HomingConfig struct {
	Radius      float64
	Strength    float64 // blend factor per tick, 0..1
	RampSeconds float64 // time to ramp strength up from zero
}

func NewHomingConfig(radius, strength, rampSeconds float64) *HomingConfig {
	return &HomingConfig{
		Radius:      max(0, radius),
		Strength:    gamemath.Clamp01(strength),
		RampSeconds: max(0, rampSeconds),
	}
}

// ExplosiveConfig deals area damage around every hit. The processor ignores it.
type ExplosiveConfig struct {
	Radius           float64
	DamageMultiplier float64
}

func NewExplosiveConfig(radius, damageMultiplier float64) *ExplosiveConfig {
	return &ExplosiveConfig{
		Radius:           max(0, radius),
		DamageMultiplier: max(0, damageMultiplier),
	}
}

// Behavior is the immutable modifier set shared by every projectile of an
// archetype. A nil field means the modifier is absent.
type Behavior struct {
	Bounce    *BounceConfig
	Pierce    *PierceConfig
	Homing    *HomingConfig
	Explosive *ExplosiveConfig
}

// NoModifiers is the shared behavior for archetypes without modifiers.
var NoModifiers = &Behavior{}

// NewBehavior returns NoModifiers when every modifier is absent.
func NewBehavior(bounce *BounceConfig, pierce *PierceConfig, homing *HomingConfig, explosive *ExplosiveConfig) *Behavior {
	if bounce == nil && pierce == nil && homing == nil && explosive == nil {
		return NoModifiers
	}
	return &Behavior{
		Bounce:    bounce,
		Pierce:    pierce,
		Homing:    homing,
		Explosive: explosive,
	}
}

func (b *Behavior) bounceEligible() bool {
	return b != nil && b.Bounce != nil && b.Bounce.MaxBounces > 0
}

func (b *Behavior) pierceEligible() bool {
	return b != nil && b.Pierce != nil && b.Pierce.MaxPenetrations > 0
}
