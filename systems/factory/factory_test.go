package factory

import (
	"os"
	"testing"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateArena(t *testing.T) {
	data, err := leveldata.LoadArena(os.DirFS("../../shared/leveldata/testdata"), "arena.tmx")
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	CreateArena(e, data)

	_, ok := components.Space.First(e.World)
	require.True(t, ok)

	objects := 0
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		assert.NotNil(t, obj.Space, "object not added to the space")
		linked, ok := obj.Data.(*donburi.Entry)
		if assert.True(t, ok) {
			assert.Equal(t, entry.Entity(), linked.Entity())
		}
		objects++
	})
	assert.Equal(t, 37+2+1, objects)

	agents := 0
	components.Agent.Each(e.World, func(entry *donburi.Entry) {
		agents++
		a := components.Agent.Get(entry)
		assert.Equal(t, 0.0, a.Position.Y)
		if a.SpawnIndex == 0 {
			assert.Equal(t, 3.5, a.Speed)
		}
	})
	assert.Equal(t, 2, agents)

	turret, ok := components.Turret.First(e.World)
	require.True(t, ok)
	assert.Equal(t, "ricochet", components.Turret.Get(turret).Archetype)
	assert.Equal(t, 1.5, components.Turret.Get(turret).Muzzle.Y)

	_, ok = components.Stats.First(e.World)
	assert.True(t, ok)
}

func TestColliderIDsAreUnique(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateArenaSpace(e, 10, 10)

	seen := map[uint64]bool{cfg.Sim.GroundColliderID: true}
	for i := 0; i < 20; i++ {
		w := CreateWall(e, float64(i%5)*2, 0, 2, 2)
		id := uint64(components.Collider.Get(w).ID)
		assert.False(t, seen[id], "duplicate collider id %d", id)
		seen[id] = true
	}
}

func TestBehaviorForIsShared(t *testing.T) {
	typ := cfg.Projectiles.Types["grenade"]
	a := BehaviorFor(typ)
	b := BehaviorFor(typ)
	assert.Same(t, a, b)
	require.NotNil(t, a.Bounce)
	require.NotNil(t, a.Explosive)
	assert.Nil(t, a.Pierce)
	assert.Equal(t, 2, a.Bounce.MaxBounces)
}

func TestBehaviorForTracksEditedArchetype(t *testing.T) {
	typ := cfg.Projectiles.Types["ricochet"]
	before := BehaviorFor(typ)

	edited := typ
	edited.Bounce = &cfg.BounceTypeConfig{DamageReduction: 0.5, Bounciness: 1, MaxBounces: 7}
	after := BehaviorFor(edited)

	assert.NotSame(t, before, after)
	require.NotNil(t, after.Bounce)
	assert.Equal(t, 7, after.Bounce.MaxBounces)
	assert.Equal(t, 3, BehaviorFor(typ).Bounce.MaxBounces)

	renamed := typ
	renamed.Name = "ricochet-copy"
	assert.Same(t, before, BehaviorFor(renamed))
}

func TestUnknownTurretArchetype(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateArenaSpace(e, 10, 10)
	turret := CreateTurret(e, 5, 5, 1, "laser")
	assert.Equal(t, cfg.Projectiles.Default, components.Turret.Get(turret).Archetype)
}

func TestSpaceScaling(t *testing.T) {
	assert.Equal(t, 1.5, FromSpace(ToSpace(1.5)))
	e := ecs.NewECS(donburi.NewWorld())
	space := components.Space.Get(CreateArenaSpace(e, 40, 20))
	assert.Equal(t, int(ToSpace(float64(cfg.Sim.CellSize))), space.CellWidth)
	assert.Equal(t, space.CellWidth, space.CellHeight)
}
