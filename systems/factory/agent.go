package factory

import (
	"github.com/automoto/ricochet/archetypes"
	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/automoto/ricochet/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAgent spawns an AI agent standing at (x, z). A speed of 0 uses the
// configured default.
func CreateAgent(ecs *ecs.ECS, x, z float64, spawnIndex int, speed float64) *donburi.Entry {
	if speed <= 0 {
		speed = cfg.Agent.Speed
	}
	r := cfg.Agent.Radius

	agent := archetypes.Agent.Spawn(ecs)

	obj := newObject(x-r, z-r, 2*r, 2*r, tags.ResolvAgent)
	obj.Data = agent
	components.Object.SetValue(agent, components.ObjectData{Object: obj})
	components.Collider.SetValue(agent, components.ColliderData{ID: nextColliderID()})

	spawn := gamemath.FromGround(x, z, 0)
	components.Agent.SetValue(agent, components.AgentData{
		Position:   spawn,
		Spawn:      spawn,
		Speed:      speed,
		Radius:     r,
		Height:     cfg.Agent.Height,
		SpawnIndex: spawnIndex,
	})
	components.Health.SetValue(agent, components.HealthData{
		Current: float64(cfg.Agent.Health),
		Max:     float64(cfg.Agent.Health),
	})

	addToSpace(ecs.World, obj)

	return agent
}

// SyncAgentObject moves the agent's resolv object to its current position.
func SyncAgentObject(agent *donburi.Entry) {
	a := components.Agent.Get(agent)
	obj := components.Object.Get(agent).Object
	obj.X = ToSpace(a.Position.X - a.Radius)
	obj.Y = ToSpace(a.Position.Z - a.Radius)
	obj.Update()
}
