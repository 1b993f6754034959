package factory

import (
	"math"

	"github.com/automoto/ricochet/archetypes"
	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PixelsPerUnit scales world units into resolv space, which works in whole
// pixels when mapping objects to cells.
const PixelsPerUnit = 16.0

// ToSpace converts a world length or coordinate into resolv space.
func ToSpace(v float64) float64 { return v * PixelsPerUnit }

// FromSpace converts a resolv length or coordinate back into world units.
func FromSpace(v float64) float64 { return v / PixelsPerUnit }

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateArenaSpace sizes the broadphase for a width x depth arena in world
// units, using the configured cell size.
func CreateArenaSpace(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	cell := int(math.Max(1, math.Round(ToSpace(float64(cfg.Sim.CellSize)))))
	return CreateSpace(ecs,
		int(math.Ceil(ToSpace(width))),
		int(math.Ceil(ToSpace(depth))),
		cell, cell)
}

// CreateStats spawns the world's event counters.
func CreateStats(ecs *ecs.ECS) *donburi.Entry {
	stats := archetypes.Stats.Spawn(ecs)
	components.Stats.Set(stats, &components.StatsData{})
	return stats
}

// newObject creates a resolv rectangle from a world-space footprint.
func newObject(x, z, w, d float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(ToSpace(x), ToSpace(z), ToSpace(w), ToSpace(d), tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, ToSpace(w), ToSpace(d)))
	return obj
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
