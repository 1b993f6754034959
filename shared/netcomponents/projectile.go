package netcomponents

import "github.com/yohamta/donburi"

type NetProjectileData struct {
	X, Y, Z          float64
	VelX, VelY, VelZ float64 // Client extrapolation between snapshots
	Archetype        string
	Damage           float64
	BounceCount      int
	PenetrationCount int
}

var NetProjectile = donburi.NewComponentType[NetProjectileData]()

// LerpNetProjectile interpolates between two projectile snapshots
func LerpNetProjectile(from, to NetProjectileData, t float64) *NetProjectileData {
	return &NetProjectileData{
		X:                from.X + (to.X-from.X)*t,
		Y:                from.Y + (to.Y-from.Y)*t,
		Z:                from.Z + (to.Z-from.Z)*t,
		VelX:             to.VelX,
		VelY:             to.VelY,
		VelZ:             to.VelZ,
		Archetype:        to.Archetype,
		Damage:           to.Damage,
		BounceCount:      to.BounceCount,
		PenetrationCount: to.PenetrationCount,
	}
}
