package components

import (
	"github.com/automoto/ricochet/shared/ballistics"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Archetype string
	Behavior  *ballistics.Behavior // shared per archetype, never mutated
	State     ballistics.State

	Radius          float64
	LifeRemaining   float64
	GravityScale    float64
	DestroyOnImpact bool

	// Homing strength ramps from 0 to the configured value
	HomingRamp     *gween.Tween
	HomingStrength float64

	Owner donburi.Entity
}

var Projectile = donburi.NewComponentType[ProjectileData]()
