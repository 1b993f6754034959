package systems

import (
	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/automoto/ricochet/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var projectileQuery = donburi.NewQuery(filter.Contains(components.Projectile))

type shot struct {
	archetype string
	from, dir gamemath.Vec3
	owner     donburi.Entity
}

// UpdateTurrets fires at the nearest live agent in range once each turret's
// cooldown has elapsed. Fire is held while the projectile cap is reached.
func UpdateTurrets(ecs *ecs.ECS) {
	w := ecs.World
	dt := cfg.Server.Dt()

	live := projectileQuery.Count(w)
	var shots []shot

	components.Turret.Each(w, func(e *donburi.Entry) {
		t := components.Turret.Get(e)
		if t.Cooldown > 0 {
			t.Cooldown -= dt
			if t.Cooldown > 0 {
				return
			}
		}

		if cfg.Sim.MaxProjectiles > 0 && live+len(shots) >= cfg.Sim.MaxProjectiles {
			return
		}

		target, ok := nearestAgent(w, t.Muzzle, t.Range)
		if !ok {
			return
		}

		shots = append(shots, shot{
			archetype: t.Archetype,
			from:      t.Muzzle,
			dir:       aimAt(t.Archetype, t.Muzzle, target),
			owner:     e.Entity(),
		})
		t.Cooldown = t.Interval
	})

	for _, s := range shots {
		factory.CreateProjectile(ecs, s.archetype, s.from, s.dir, s.owner)
	}
}

// aimAt returns a launch direction toward target. Archetypes affected by
// gravity get a first-order lift so they arc onto it.
func aimAt(archetype string, from, target gamemath.Vec3) gamemath.Vec3 {
	to := target.Sub(from)
	typ, ok := cfg.ProjectileType(archetype)
	if !ok || typ.GravityScale == 0 || typ.Speed <= 0 {
		return to.Normalized()
	}
	flight := to.Length() / typ.Speed
	to.Y += 0.5 * cfg.Sim.Gravity * typ.GravityScale * flight * flight
	return to.Normalized()
}
