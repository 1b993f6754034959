package systems

import (
	"testing"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/automoto/ricochet/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestBasicProjectileDestroyedOnWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 10, 0, 2, 10)
	p := factory.CreateProjectile(e, "basic", gamemath.Vec3{X: 5, Y: 1, Z: 5}, gamemath.Vec3{X: 1}, donburi.Null)

	stepN(e, 20, UpdateProjectiles)

	assert.False(t, p.Valid())
	stats := statsOf(e.World)
	assert.Equal(t, 1, stats.Shots)
	assert.Equal(t, 1, stats.Impacts)
	assert.Equal(t, 0, stats.Bounces)
}

func TestRicochetBouncesOffWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 10, 0, 2, 10)
	p := factory.CreateProjectile(e, "ricochet", gamemath.Vec3{X: 5, Y: 1, Z: 5}, gamemath.Vec3{X: 1}, donburi.Null)

	stepN(e, 20, UpdateProjectiles)

	data := projectileData(t, p)
	assert.Equal(t, 1, data.State.BounceCount)
	assert.InDelta(t, -14.4, data.State.Velocity.X, 1e-9)
	assert.InDelta(t, 9.6, data.State.Damage, 1e-9)
	assert.Less(t, data.State.Position.X, 9.9)
	assert.Equal(t, 1, statsOf(e.World).Bounces)
}

func TestPiercerPassesThroughAgentOnce(t *testing.T) {
	e := newTestECS(t)
	agent := factory.CreateAgent(e, 10, 5, 0, 0)
	p := factory.CreateProjectile(e, "piercer", gamemath.Vec3{X: 5, Y: 1, Z: 5}, gamemath.Vec3{X: 1}, donburi.Null)

	stepN(e, 20, UpdateProjectiles)

	assert.Equal(t, 80.0, components.Health.Get(agent).Current)

	data := projectileData(t, p)
	assert.Equal(t, 1, data.State.PenetrationCount)
	assert.InDelta(t, 15.0, data.State.Damage, 1e-9)
	assert.InDelta(t, 27.0, data.State.Velocity.X, 1e-9)
	assert.Greater(t, data.State.Position.X, 11.0)
	assert.Zero(t, data.State.LastColliderID, "clear step resets the last collider")

	stats := statsOf(e.World)
	assert.Equal(t, 1, stats.Pierces)
	assert.Equal(t, 1, stats.Impacts)
}

func TestSlowPiercerHitsAgentOnce(t *testing.T) {
	withConfig(t)
	slow := cfg.Projectiles.Types["piercer"]
	slow.Name = "slow-piercer"
	slow.Speed = 2
	cfg.Projectiles.Types[slow.Name] = slow

	e := newTestECS(t)
	agent := factory.CreateAgent(e, 10, 5, 0, 0)
	p := factory.CreateProjectile(e, slow.Name, gamemath.Vec3{X: 9, Y: 1, Z: 5}, gamemath.Vec3{X: 1}, donburi.Null)

	// long enough to enter, cross and leave the agent's body
	stepN(e, 100, UpdateProjectiles)

	assert.Equal(t, 80.0, components.Health.Get(agent).Current)

	data := projectileData(t, p)
	assert.Equal(t, 1, data.State.PenetrationCount)
	assert.Greater(t, data.State.Position.X, 10.5)

	stats := statsOf(e.World)
	assert.Equal(t, 1, stats.Impacts)
	assert.Equal(t, 1, stats.Pierces)
}

func TestPiercerStopsAtWallBehindAgent(t *testing.T) {
	e := newTestECS(t)
	agent := factory.CreateAgent(e, 10, 5, 0, 0)
	factory.CreateWall(e, 10.6, 0, 0.2, 10)
	p := factory.CreateProjectile(e, "piercer", gamemath.Vec3{X: 5, Y: 1, Z: 5}, gamemath.Vec3{X: 1}, donburi.Null)

	stepN(e, 20, UpdateProjectiles)

	assert.False(t, p.Valid(), "piercer must not tunnel through the wall")
	assert.Equal(t, 80.0, components.Health.Get(agent).Current)

	stats := statsOf(e.World)
	assert.Equal(t, 2, stats.Impacts)
	assert.Equal(t, 1, stats.Pierces)
}

func TestSuppressedHitStillFindsWallBehind(t *testing.T) {
	e := newTestECS(t)
	agent := factory.CreateAgent(e, 10, 5, 0, 0)
	factory.CreateWall(e, 10.6, 0, 0.2, 10)
	entry := factory.CreateProjectile(e, "piercer", gamemath.Vec3{X: 9, Y: 1, Z: 5}, gamemath.Vec3{X: 1}, donburi.Null)

	p := projectileData(t, entry)
	p.State.LastColliderID = components.Collider.Get(agent).ID
	p.State.CollisionCooldown = 1

	// one step from x=9 to x=12 crosses both bodies
	alive := stepProjectile(e.World, spaceOf(e.World), p, 0.1, statsOf(e.World))

	assert.False(t, alive)
	assert.Equal(t, 100.0, components.Health.Get(agent).Current)
	assert.InDelta(t, 10.6, p.State.Position.X, 1e-9)

	stats := statsOf(e.World)
	assert.Equal(t, 1, stats.Suppressed)
	assert.Equal(t, 1, stats.Impacts)
}

func TestSuppressedHitWithNothingBehindKeepsCollider(t *testing.T) {
	e := newTestECS(t)
	agent := factory.CreateAgent(e, 10, 5, 0, 0)
	entry := factory.CreateProjectile(e, "piercer", gamemath.Vec3{X: 9, Y: 1, Z: 5}, gamemath.Vec3{X: 1}, donburi.Null)

	p := projectileData(t, entry)
	id := components.Collider.Get(agent).ID
	p.State.LastColliderID = id
	p.State.CollisionCooldown = 1

	require.True(t, stepProjectile(e.World, spaceOf(e.World), p, 0.1, statsOf(e.World)))
	assert.InDelta(t, 12.0, p.State.Position.X, 1e-9)
	assert.Equal(t, id, p.State.LastColliderID)
	assert.Equal(t, 100.0, components.Health.Get(agent).Current)
}

func TestGrenadeBouncesAndExplodes(t *testing.T) {
	e := newTestECS(t)
	agent := factory.CreateAgent(e, 6, 5, 0, 0)
	p := factory.CreateProjectile(e, "grenade", gamemath.Vec3{X: 5, Y: 1, Z: 5}, gamemath.Vec3{Y: -1}, donburi.Null)

	for i := 0; i < 30 && components.Projectile.Get(p).State.BounceCount == 0; i++ {
		UpdateProjectiles(e)
	}

	data := projectileData(t, p)
	require.Equal(t, 1, data.State.BounceCount)
	assert.Greater(t, data.State.Velocity.Y, 0.0)
	assert.Equal(t, 25.0, data.State.Damage)
	assert.Equal(t, 87.5, components.Health.Get(agent).Current)
}

func TestExplodeRadius(t *testing.T) {
	e := newTestECS(t)
	near := factory.CreateAgent(e, 5, 5, 0, 0)
	far := factory.CreateAgent(e, 20, 20, 1, 0)

	explode(e.World, gamemath.Vec3{X: 6, Z: 5}, 3, 12.5)

	assert.Equal(t, 87.5, components.Health.Get(near).Current)
	assert.Equal(t, 100.0, components.Health.Get(far).Current)
}

func TestSeekerTurnsTowardAgent(t *testing.T) {
	e := newTestECS(t)
	factory.CreateAgent(e, 10, 8, 0, 0)
	p := factory.CreateProjectile(e, "seeker", gamemath.Vec3{X: 5, Y: 1, Z: 5}, gamemath.Vec3{X: 1}, donburi.Null)

	stepN(e, 5, UpdateProjectiles)

	v := projectileData(t, p).State.Velocity
	assert.Greater(t, v.Z, 0.0)
	assert.InDelta(t, 12.0, v.Length(), 1e-6)
}

func TestSeekerRampReachesFullStrength(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreateProjectile(e, "seeker", gamemath.Vec3{X: 20, Y: 10, Z: 20}, gamemath.Vec3{Y: 1}, donburi.Null)

	data := projectileData(t, p)
	require.NotNil(t, data.HomingRamp)
	assert.Zero(t, data.HomingStrength)

	stepN(e, 40, UpdateProjectiles)

	data = projectileData(t, p)
	assert.Nil(t, data.HomingRamp)
	assert.InDelta(t, 0.15, data.HomingStrength, 1e-9)
}

func TestProjectileExpires(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreateProjectile(e, "basic", gamemath.Vec3{X: 20, Y: 10, Z: 20}, gamemath.Vec3{Y: 1}, donburi.Null)

	stepN(e, 185, UpdateProjectiles)

	assert.False(t, p.Valid())
	assert.Equal(t, 1, statsOf(e.World).Expired)
}

func TestUnknownArchetypeFallsBack(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreateProjectile(e, "nope", gamemath.Vec3{Y: 5}, gamemath.Zero, donburi.Null)

	data := projectileData(t, p)
	assert.Equal(t, "basic", data.Archetype)
	assert.InDelta(t, 20.0, data.State.Velocity.Length(), 1e-9)
}
