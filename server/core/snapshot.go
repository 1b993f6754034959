package core

import (
	"log"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/netcomponents"
	"github.com/automoto/ricochet/shared/netconfig"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	unsyncedProjectiles = donburi.NewQuery(filter.And(
		filter.Contains(components.Projectile),
		filter.Not(filter.Contains(netcomponents.NetProjectile)),
	))
	unsyncedAgents = donburi.NewQuery(filter.And(
		filter.Contains(components.Agent),
		filter.Not(filter.Contains(netcomponents.NetAgent)),
	))
)

func (s *Server) createSimState() {
	ent := s.world.Create(netcomponents.NetSimState)
	if !s.networked {
		return
	}
	// Counters, no interpolation
	if err := srvsync.NetworkSync(s.world, &ent, netcomponents.NetSimState); err != nil {
		log.Printf("[server] failed to sync sim state: %v", err)
	}
}

// publishSnapshot copies simulation state into the replicated components.
// It runs last each tick, so every entity spawned this tick is picked up.
func (s *Server) publishSnapshot(ecs *ecs.ECS) {
	w := ecs.World

	var fresh []donburi.Entity
	unsyncedProjectiles.Each(w, func(e *donburi.Entry) {
		fresh = append(fresh, e.Entity())
	})
	for _, ent := range fresh {
		w.Entry(ent).AddComponent(netcomponents.NetProjectile)
		s.track(&ent, netcomponents.NetProjectile)
	}

	fresh = fresh[:0]
	unsyncedAgents.Each(w, func(e *donburi.Entry) {
		fresh = append(fresh, e.Entity())
	})
	for _, ent := range fresh {
		w.Entry(ent).AddComponent(netcomponents.NetAgent)
		s.track(&ent, netcomponents.NetAgent)
	}

	live := 0
	netcomponents.NetProjectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		st := &p.State
		netcomponents.NetProjectile.SetValue(e, netcomponents.NetProjectileData{
			X: st.Position.X, Y: st.Position.Y, Z: st.Position.Z,
			VelX: st.Velocity.X, VelY: st.Velocity.Y, VelZ: st.Velocity.Z,
			Archetype:        p.Archetype,
			Damage:           st.Damage,
			BounceCount:      st.BounceCount,
			PenetrationCount: st.PenetrationCount,
		})
		live++
	})

	netcomponents.NetAgent.Each(w, func(e *donburi.Entry) {
		a := components.Agent.Get(e)
		netcomponents.NetAgent.SetValue(e, netcomponents.NetAgentData{
			X:      a.Position.X,
			Z:      a.Position.Z,
			Health: components.Health.Get(e).Current,
			State:  agentState(e, a),
		})
	})

	if e, ok := netcomponents.NetSimState.First(w); ok {
		stats := components.MustStats(w)
		netcomponents.NetSimState.SetValue(e, netcomponents.NetSimStateData{
			Frame:       stats.Frame,
			Projectiles: live,
			Shots:       stats.Shots,
			Impacts:     stats.Impacts,
			Kills:       stats.Kills,
		})
	}
}

// track registers a freshly tagged entity with the sync layer.
func (s *Server) track(ent *donburi.Entity, c donburi.IComponentType) {
	if !s.networked {
		return
	}
	if err := srvsync.NetworkSync(s.world, ent, srvsync.WithInterp(c)); err != nil {
		log.Printf("[server] failed to sync entity: %v", err)
	}
}

func agentState(e *donburi.Entry, a *components.AgentData) netconfig.AgentStateID {
	switch {
	case e.HasComponent(components.Death):
		return netconfig.AgentDown
	case !a.HasTarget:
		return netconfig.AgentIdle
	case a.LastDistance <= cfg.Agent.ArriveDistance:
		return netconfig.AgentArrived
	}
	return netconfig.AgentChasing
}
