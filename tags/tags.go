package tags

import "github.com/yohamta/donburi"

var (
	Agent      = donburi.NewTag().SetName("Agent")
	Wall       = donburi.NewTag().SetName("Wall")
	Turret     = donburi.NewTag().SetName("Turret")
	Target     = donburi.NewTag().SetName("Target")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid      = "solid"
	ResolvAgent      = "Agent"
	ResolvTurret     = "Turret"
	ResolvProjectile = "Projectile"
)
