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

func TestTurretFiresAfterCooldown(t *testing.T) {
	withConfig(t)
	cfg.Turret.FireInterval = 0.5

	e := newTestECS(t)
	turret := factory.CreateTurret(e, 5, 5, 1, "ricochet")
	factory.CreateAgent(e, 15, 5, 0, 0)

	stepN(e, 29, UpdateTurrets)
	assert.Equal(t, 0, projectileQuery.Count(e.World))

	stepN(e, 2, UpdateTurrets)
	require.Equal(t, 1, projectileQuery.Count(e.World))

	var p *components.ProjectileData
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p = components.Projectile.Get(entry)
	})
	assert.Equal(t, "ricochet", p.Archetype)
	assert.Equal(t, turret.Entity(), p.Owner)
	assert.Greater(t, p.State.Velocity.X, 0.0)
	assert.Equal(t, 1, statsOf(e.World).Shots)
}

func TestTurretHoldsWithoutTarget(t *testing.T) {
	withConfig(t)
	cfg.Turret.Range = 5

	e := newTestECS(t)
	factory.CreateTurret(e, 5, 5, 1, "basic")
	factory.CreateAgent(e, 15, 5, 0, 0)

	stepN(e, 200, UpdateTurrets)
	assert.Equal(t, 0, projectileQuery.Count(e.World))
}

func TestTurretRespectsProjectileCap(t *testing.T) {
	withConfig(t)
	cfg.Sim.MaxProjectiles = 1
	cfg.Turret.FireInterval = 0.1

	e := newTestECS(t)
	factory.CreateTurret(e, 5, 5, 1, "basic")
	factory.CreateTurret(e, 5, 15, 1, "basic")
	factory.CreateAgent(e, 15, 10, 0, 0)

	stepN(e, 30, UpdateTurrets)
	assert.Equal(t, 1, projectileQuery.Count(e.World))
}

func TestAimCompensatesGravity(t *testing.T) {
	flat := aimAt("basic", gamemath.Vec3{Y: 1}, gamemath.Vec3{X: 10, Y: 1})
	assert.Equal(t, gamemath.Vec3{X: 1}, flat)

	lob := aimAt("grenade", gamemath.Vec3{Y: 1}, gamemath.Vec3{X: 10, Y: 1})
	assert.Greater(t, lob.Y, 0.0)
	assert.InDelta(t, 1.0, lob.Length(), 1e-9)
}
