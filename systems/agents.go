package systems

import (
	"log"
	"math"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/automoto/ricochet/systems/factory"
	"github.com/automoto/ricochet/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAgents integrates agent movement every tick and handles death and
// respawn. Steering is written by the AI manager.
func UpdateAgents(ecs *ecs.ECS) {
	w := ecs.World
	dt := cfg.Server.Dt()
	stats := statsOf(w)

	var killed, respawned []*donburi.Entry
	components.Agent.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			death := components.Death.Get(e)
			death.Timer -= dt
			if death.Timer <= 0 {
				respawned = append(respawned, e)
			}
			return
		}

		if !components.Health.Get(e).Alive() {
			killed = append(killed, e)
			return
		}

		moveAgent(e, dt)
	})

	for _, e := range killed {
		donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Agent.RespawnSeconds})
		a := components.Agent.Get(e)
		a.Velocity = gamemath.Zero
		a.HasTarget = false
		stats.Kills++
		log.Printf("[sim] agent %d down at (%.1f, %.1f)", a.SpawnIndex, a.Position.X, a.Position.Z)
	}

	for _, e := range respawned {
		e.RemoveComponent(components.Death)
		a := components.Agent.Get(e)
		a.Position = a.Spawn
		a.Velocity = gamemath.Zero
		a.Evaluated = false
		h := components.Health.Get(e)
		h.Current = h.Max
		factory.SyncAgentObject(e)
	}
}

func moveAgent(e *donburi.Entry, dt float64) {
	a := components.Agent.Get(e)
	obj := components.Object.Get(e).Object

	if !a.HasTarget {
		a.Velocity = gamemath.ApplyFrictionXZ(a.Velocity, cfg.Agent.Friction*dt)
	}
	a.Velocity.X = gamemath.ClampSpeed(a.Velocity.X, a.Speed)
	a.Velocity.Z = gamemath.ClampSpeed(a.Velocity.Z, a.Speed)

	dx := a.Velocity.X * dt
	dz := a.Velocity.Z * dt

	if dx != 0 {
		if contact, blocked := blockingContact(obj, dx, 0); blocked {
			dx = contact.X
			a.Velocity.X = 0
		}
		obj.X += factory.ToSpace(dx)
	}
	if dz != 0 {
		if contact, blocked := blockingContact(obj, 0, dz); blocked {
			dz = contact.Z
			a.Velocity.Z = 0
		}
		obj.Y += factory.ToSpace(dz)
	}
	obj.Update()

	a.Position.X = factory.FromSpace(obj.X) + a.Radius
	a.Position.Z = factory.FromSpace(obj.Y) + a.Radius
}

// blockingContact checks a world-space move of (dx, dz) against walls and
// turrets. When blocked it returns the world delta that brings obj into
// contact with the nearest blocker.
func blockingContact(obj *resolv.Object, dx, dz float64) (gamemath.Vec3, bool) {
	sdx, sdz := factory.ToSpace(dx), factory.ToSpace(dz)
	check := obj.Check(sdx, sdz, tags.ResolvSolid, tags.ResolvTurret)
	if check == nil {
		return gamemath.Zero, false
	}

	var nearest gamemath.Vec3
	blocked := false
	for _, other := range check.Objects {
		if !overlapsAfter(obj, other, sdx, sdz) {
			continue
		}
		contact := gamemath.FromContact(check.ContactWithObject(other)).Scale(1 / factory.PixelsPerUnit)
		if !blocked || math.Abs(contact.X)+math.Abs(contact.Z) < math.Abs(nearest.X)+math.Abs(nearest.Z) {
			nearest = contact
			blocked = true
		}
	}
	return nearest, blocked
}

// overlapsAfter reports whether obj moved by (dx, dy) in space units would
// overlap other.
func overlapsAfter(obj, other *resolv.Object, dx, dy float64) bool {
	x, y := obj.X+dx, obj.Y+dy
	return x < other.X+other.W && x+obj.W > other.X &&
		y < other.Y+other.H && y+obj.H > other.Y
}
