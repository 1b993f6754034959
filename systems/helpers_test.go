package systems

import (
	"maps"
	"testing"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns a world with a 40x40 broadphase space and stats.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArenaSpace(e, 40, 40)
	factory.CreateStats(e)
	return e
}

// withConfig restores the mutable config sections after the test.
func withConfig(t *testing.T) {
	t.Helper()
	server, sim, ai, agent, turret := cfg.Server, cfg.Sim, cfg.AI, cfg.Agent, cfg.Turret
	projectiles := cfg.Projectiles
	cfg.Projectiles.Types = maps.Clone(projectiles.Types)
	t.Cleanup(func() {
		cfg.Server, cfg.Sim, cfg.AI, cfg.Agent, cfg.Turret = server, sim, ai, agent, turret
		cfg.Projectiles = projectiles
	})
}

func stepN(e *ecs.ECS, n int, fn func(*ecs.ECS)) {
	for i := 0; i < n; i++ {
		fn(e)
	}
}

func projectileData(t *testing.T, entry *donburi.Entry) *components.ProjectileData {
	t.Helper()
	if !entry.Valid() {
		t.Fatalf("projectile was removed")
	}
	return components.Projectile.Get(entry)
}
