package systems

import (
	"log"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/ballistics"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every live projectile by one fixed step and
// resolves at most one impact each.
func UpdateProjectiles(ecs *ecs.ECS) {
	w := ecs.World
	dt := cfg.Server.Dt()
	space := spaceOf(w)
	stats := statsOf(w)

	var dead []donburi.Entity
	components.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if !stepProjectile(w, space, p, dt, stats) {
			dead = append(dead, e.Entity())
		}
	})

	for _, ent := range dead {
		if w.Valid(ent) {
			w.Remove(ent)
		}
	}
}

// stepProjectile reports whether the projectile is still alive.
func stepProjectile(w donburi.World, space *resolv.Space, p *components.ProjectileData, dt float64, stats *components.StatsData) bool {
	s := &p.State

	p.LifeRemaining -= dt
	if p.LifeRemaining <= 0 {
		stats.Expired++
		return false
	}

	s.DecayCooldown(dt)

	s.PrevPosition = s.Position
	steerHoming(w, p, dt)
	if p.GravityScale != 0 {
		s.Velocity.Y -= cfg.Sim.Gravity * p.GravityScale * dt
	}

	next := s.Position.Add(s.Velocity.Scale(dt))

	hit, ok := sweep(space, s.Position, next, p.Radius, p.Owner, 0)
	suppressed := ok && s.Suppressed(hit.Collider)
	if suppressed {
		// Look past the ignored body for anything else along the step
		stats.Suppressed++
		hit, ok = sweep(space, s.Position, next, p.Radius, p.Owner, hit.Collider)
	}
	if !ok {
		s.Position = next
		if !suppressed {
			s.LastColliderID = 0
		}
		return true
	}

	if hit.IsEnemy && hit.Entry != nil {
		damageAgent(hit.Entry, s.Damage)
	}
	if x := p.Behavior.Explosive; x != nil {
		explode(w, hit.Point, x.Radius, s.Damage*x.DamageMultiplier)
	}

	terminate, outcome := ballistics.Resolve(s, p.Behavior, ballistics.Context{
		HitPosition:       hit.Point,
		HitNormal:         hit.Normal,
		NextPosition:      next,
		ColliderID:        hit.Collider,
		IsEnemy:           hit.IsEnemy,
		Radius:            p.Radius,
		DefaultDeactivate: p.DestroyOnImpact,
	})

	stats.Impacts++
	switch outcome {
	case ballistics.OutcomeBounced:
		stats.Bounces++
	case ballistics.OutcomePierced:
		stats.Pierces++
	}

	if cfg.Debug.LogCollisions {
		log.Printf("[sim] %s hit collider %d at (%.2f, %.2f, %.2f): %s, damage %.2f",
			p.Archetype, hit.Collider, hit.Point.X, hit.Point.Y, hit.Point.Z, outcome, s.Damage)
	}

	return !terminate
}

// steerHoming bends the velocity toward the nearest live agent in range.
func steerHoming(w donburi.World, p *components.ProjectileData, dt float64) {
	h := p.Behavior.Homing
	if h == nil {
		return
	}

	if p.HomingRamp != nil {
		v, done := p.HomingRamp.Update(float32(dt))
		p.HomingStrength = float64(v)
		if done {
			p.HomingRamp = nil
			p.HomingStrength = h.Strength
		}
	}
	if p.HomingStrength <= 0 {
		return
	}

	target, ok := nearestAgent(w, p.State.Position, h.Radius)
	if !ok {
		return
	}
	p.State.Velocity = gamemath.SteerToward(p.State.Position, p.State.Velocity, target, p.HomingStrength)
}

// nearestAgent returns the body center of the closest live agent within radius.
func nearestAgent(w donburi.World, from gamemath.Vec3, radius float64) (gamemath.Vec3, bool) {
	best := radius * radius
	var target gamemath.Vec3
	found := false

	components.Agent.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		a := components.Agent.Get(e)
		center := a.Position.Add(gamemath.Vec3{Y: a.Height / 2})
		if d := from.DistanceSquaredTo(center); d <= best {
			best = d
			target = center
			found = true
		}
	})

	return target, found
}

// explode damages every live agent whose body center is within radius.
func explode(w donburi.World, at gamemath.Vec3, radius, damage float64) {
	if radius <= 0 || damage <= 0 {
		return
	}
	r2 := radius * radius
	components.Agent.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		a := components.Agent.Get(e)
		center := a.Position.Add(gamemath.Vec3{Y: a.Height / 2})
		if at.DistanceSquaredTo(center) <= r2 {
			damageAgent(e, damage)
		}
	})
}

// damageAgent only lowers health; UpdateAgents turns lethal damage into a
// death so archetypes never change mid-iteration.
func damageAgent(e *donburi.Entry, amount float64) {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	components.Health.Get(e).Damage(amount)
}
