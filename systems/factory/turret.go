package factory

import (
	"log"

	"github.com/automoto/ricochet/archetypes"
	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/automoto/ricochet/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTurret places a turret centered on (x, z) firing the named archetype
// from the given muzzle height.
func CreateTurret(ecs *ecs.ECS, x, z, height float64, archetype string) *donburi.Entry {
	if _, ok := cfg.ProjectileType(archetype); !ok {
		log.Printf("[sim] unknown turret archetype %q, using %q", archetype, cfg.Projectiles.Default)
		archetype = cfg.Projectiles.Default
	}

	turret := archetypes.Turret.Spawn(ecs)

	size := cfg.Turret.Size
	obj := newObject(x-size/2, z-size/2, size, size, tags.ResolvTurret)
	obj.Data = turret
	components.Object.SetValue(turret, components.ObjectData{Object: obj})
	components.Collider.SetValue(turret, components.ColliderData{ID: nextColliderID()})

	components.Turret.SetValue(turret, components.TurretData{
		Archetype: archetype,
		Muzzle:    gamemath.FromGround(x, z, height),
		Cooldown:  cfg.Turret.FireInterval,
		Interval:  cfg.Turret.FireInterval,
		Range:     cfg.Turret.Range,
	})

	addToSpace(ecs.World, obj)

	return turret
}

// CreateTarget marks a fixed point agents chase.
func CreateTarget(ecs *ecs.ECS, name string, x, z float64) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	components.Target.SetValue(target, components.TargetData{
		Name:     name,
		Position: gamemath.FromGround(x, z, 0),
	})
	return target
}
