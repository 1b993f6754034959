package components

import (
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/yohamta/donburi"
)

type TurretData struct {
	Archetype string
	Muzzle    gamemath.Vec3
	Cooldown  float64 // seconds until next shot
	Interval  float64
	Range     float64
}

var Turret = donburi.NewComponentType[TurretData]()
