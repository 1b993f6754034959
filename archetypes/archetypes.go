package archetypes

import (
	"github.com/automoto/ricochet/components"
	"github.com/automoto/ricochet/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Stats = newArchetype(
		components.Stats,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Collider,
	)
	Agent = newArchetype(
		tags.Agent,
		components.Agent,
		components.Object,
		components.Collider,
		components.Health,
	)
	Turret = newArchetype(
		tags.Turret,
		components.Turret,
		components.Object,
		components.Collider,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
