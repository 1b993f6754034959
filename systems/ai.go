package systems

import (
	"log"
	"slices"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/aisched"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AIManager owns the ordered agent population and spreads steering
// re-evaluation across frames under a per-frame budget.
type AIManager struct {
	agents []donburi.Entity
	known  map[donburi.Entity]struct{}
	cursor aisched.Cursor
}

func NewAIManager() *AIManager {
	return &AIManager{
		known: make(map[donburi.Entity]struct{}),
	}
}

// Register appends an agent to the population. Duplicates are ignored.
func (m *AIManager) Register(e donburi.Entity) bool {
	if _, ok := m.known[e]; ok {
		return false
	}
	m.known[e] = struct{}{}
	m.agents = append(m.agents, e)
	return true
}

// Unregister removes an agent, keeping the order of the rest.
func (m *AIManager) Unregister(e donburi.Entity) bool {
	if _, ok := m.known[e]; !ok {
		return false
	}
	delete(m.known, e)
	m.agents = slices.DeleteFunc(m.agents, func(x donburi.Entity) bool { return x == e })
	return true
}

// RegisterAll registers every agent currently in the world.
func (m *AIManager) RegisterAll(w donburi.World) int {
	n := 0
	components.Agent.Each(w, func(e *donburi.Entry) {
		if m.Register(e.Entity()) {
			n++
		}
	})
	return n
}

func (m *AIManager) Len() int {
	return len(m.agents)
}

// Cursor returns the index the next slice starts at.
func (m *AIManager) Cursor() int {
	return m.cursor.Position()
}

// Update re-evaluates this frame's slice of agents.
func (m *AIManager) Update(ecs *ecs.ECS) {
	w := ecs.World
	stats := statsOf(w)

	m.prune(w)
	m.cursor.Clamp(len(m.agents))

	targets := collectTargets(w)
	slice := m.cursor.Next(len(m.agents), cfg.AI.MaxUpdatesPerFrame)

	for idx := range slice.Indices() {
		e := w.Entry(m.agents[idx])
		if e.HasComponent(components.Death) {
			continue
		}
		if evaluateAgent(components.Agent.Get(e), targets, stats.Frame) {
			stats.AIEvals++
		}
	}

	if cfg.Debug.LogAI && slice.Count > 0 {
		log.Printf("[ai] frame %d: slice start=%d count=%d of %d", stats.Frame, slice.Start, slice.Count, slice.Total)
	}
}

// prune drops entities that were removed from the world or lost their agent
// component.
func (m *AIManager) prune(w donburi.World) {
	m.agents = slices.DeleteFunc(m.agents, func(e donburi.Entity) bool {
		if w.Valid(e) && w.Entry(e).HasComponent(components.Agent) {
			return false
		}
		delete(m.known, e)
		return true
	})
}

func collectTargets(w donburi.World) []gamemath.Vec3 {
	var out []gamemath.Vec3
	components.Target.Each(w, func(e *donburi.Entry) {
		out = append(out, components.Target.Get(e).Position)
	})
	return out
}

// lodInterval is how many frames must pass between evaluations at distance d.
func lodInterval(d float64) uint64 {
	if !cfg.AI.EnableLod {
		return 1
	}
	switch {
	case d > cfg.AI.FarRange && cfg.AI.FarIntervalFrames > 1:
		return uint64(cfg.AI.FarIntervalFrames)
	case d > cfg.AI.MidRange && cfg.AI.MidIntervalFrames > 1:
		return uint64(cfg.AI.MidIntervalFrames)
	}
	return 1
}

// evaluateAgent picks the nearest target and sets the steering velocity. It
// reports false when LOD gating skipped the agent this frame.
func evaluateAgent(a *components.AgentData, targets []gamemath.Vec3, frame uint64) bool {
	if a.Evaluated && frame-a.LastEvalFrame < lodInterval(a.LastDistance) {
		return false
	}
	a.Evaluated = true
	a.LastEvalFrame = frame

	limit := cfg.AI.MaxConsiderDistance
	best := limit * limit
	found := false
	for _, t := range targets {
		flat := gamemath.Vec3{X: t.X - a.Position.X, Z: t.Z - a.Position.Z}
		if d := flat.LengthSquared(); d <= best {
			best = d
			a.Target = t
			found = true
		}
	}

	a.HasTarget = found
	if !found {
		a.LastDistance = limit
		return true
	}

	to := gamemath.Vec3{X: a.Target.X - a.Position.X, Z: a.Target.Z - a.Position.Z}
	a.LastDistance = to.Length()
	if a.LastDistance <= cfg.Agent.ArriveDistance {
		a.Velocity.X, a.Velocity.Z = 0, 0
		return true
	}
	v := to.Normalized().Scale(a.Speed)
	a.Velocity.X, a.Velocity.Z = v.X, v.Z
	return true
}
