package factory

import (
	"github.com/automoto/ricochet/archetypes"
	"github.com/automoto/ricochet/components"
	"github.com/automoto/ricochet/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a full-height wall with footprint (x, z, w, d).
func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// resolv Y is world Z
	obj := newObject(x, z, w, d, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Collider.SetValue(wall, components.ColliderData{ID: nextColliderID()})

	addToSpace(ecs.World, obj)

	return wall
}
