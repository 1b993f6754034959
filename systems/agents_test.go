package systems

import (
	"testing"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/automoto/ricochet/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestAgentStopsAtWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 8, 0, 2, 10)
	agent := factory.CreateAgent(e, 5, 5, 0, 0)

	a := components.Agent.Get(agent)
	a.HasTarget = true
	a.Velocity = gamemath.Vec3{X: 4}

	stepN(e, 120, UpdateAgents)

	assert.InDelta(t, 7.6, a.Position.X, 1e-9)
	assert.Zero(t, a.Velocity.X)
	assert.InDelta(t, 5.0, a.Position.Z, 1e-9)
}

func TestAgentSlidesAlongOpenAxis(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 8, 0, 2, 20)
	agent := factory.CreateAgent(e, 7.6, 5, 0, 0)

	a := components.Agent.Get(agent)
	a.HasTarget = true
	a.Velocity = gamemath.Vec3{X: 2, Z: 2}

	stepN(e, 30, UpdateAgents)

	assert.InDelta(t, 7.6, a.Position.X, 1e-9)
	assert.InDelta(t, 6.0, a.Position.Z, 1e-6)
}

func TestIdleAgentCoastsToStop(t *testing.T) {
	e := newTestECS(t)
	agent := factory.CreateAgent(e, 10, 10, 0, 0)

	a := components.Agent.Get(agent)
	a.Velocity = gamemath.Vec3{X: 2}

	stepN(e, 30, UpdateAgents)

	assert.Zero(t, a.Velocity.X)
	assert.Greater(t, a.Position.X, 10.0)
}

func TestAgentDiesAndRespawns(t *testing.T) {
	withConfig(t)
	cfg.Agent.RespawnSeconds = 0.5

	e := newTestECS(t)
	agent := factory.CreateAgent(e, 10, 10, 0, 0)
	a := components.Agent.Get(agent)
	a.Position = gamemath.Vec3{X: 12, Z: 12}
	components.Health.Get(agent).Current = 0

	UpdateAgents(e)
	assert.True(t, agent.HasComponent(components.Death))
	assert.Equal(t, 1, statsOf(e.World).Kills)

	stepN(e, 31, UpdateAgents)
	assert.False(t, agent.HasComponent(components.Death))
	assert.Equal(t, 100.0, components.Health.Get(agent).Current)
	pos := components.Agent.Get(agent).Position
	assert.InDelta(t, 10.0, pos.X, 1e-9)
	assert.InDelta(t, 10.0, pos.Z, 1e-9)
}
