package factory

import (
	"log"

	"github.com/automoto/ricochet/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena populates an empty world from parsed arena data: the
// broadphase space, walls, agents, turrets, targets and the stats singleton.
func CreateArena(ecs *ecs.ECS, data *leveldata.ArenaData) {
	CreateArenaSpace(ecs, data.Width, data.Depth)
	CreateStats(ecs)

	for _, w := range data.Walls {
		CreateWall(ecs, w.X, w.Z, w.W, w.D)
	}
	for _, s := range data.AgentSpawns {
		CreateAgent(ecs, s.X, s.Z, s.Index, s.Speed)
	}
	for _, t := range data.Turrets {
		CreateTurret(ecs, t.X, t.Z, t.Height, t.Archetype)
	}
	for _, t := range data.Targets {
		CreateTarget(ecs, t.Name, t.X, t.Z)
	}

	log.Printf("[sim] arena built: %d walls, %d agents, %d turrets, %d targets, %.0fx%.0f",
		len(data.Walls), len(data.AgentSpawns), len(data.Turrets), len(data.Targets), data.Width, data.Depth)
}
