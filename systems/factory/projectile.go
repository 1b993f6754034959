package factory

import (
	"log"
	"sync"

	"github.com/automoto/ricochet/archetypes"
	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/ballistics"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// behaviorKey is the value of every modifier an archetype configures, so an
// edited archetype never resolves to a stale behavior.
type behaviorKey struct {
	bounce    cfg.BounceTypeConfig
	pierce    cfg.PierceTypeConfig
	homing    cfg.HomingTypeConfig
	explosive cfg.ExplosiveTypeConfig
	has       [4]bool
}

func keyOf(typ cfg.ProjectileTypeConfig) behaviorKey {
	var k behaviorKey
	if typ.Bounce != nil {
		k.bounce, k.has[0] = *typ.Bounce, true
	}
	if typ.Pierce != nil {
		k.pierce, k.has[1] = *typ.Pierce, true
	}
	if typ.Homing != nil {
		k.homing, k.has[2] = *typ.Homing, true
	}
	if typ.Explosive != nil {
		k.explosive, k.has[3] = *typ.Explosive, true
	}
	return k
}

var (
	behaviorMu    sync.Mutex
	behaviorCache = map[behaviorKey]*ballistics.Behavior{}
)

// BehaviorFor returns the shared modifier set for an archetype. Archetypes
// with identical modifiers share one behavior.
func BehaviorFor(typ cfg.ProjectileTypeConfig) *ballistics.Behavior {
	key := keyOf(typ)

	behaviorMu.Lock()
	defer behaviorMu.Unlock()

	if b, ok := behaviorCache[key]; ok {
		return b
	}

	var bounce *ballistics.BounceConfig
	if typ.Bounce != nil {
		bounce = ballistics.NewBounceConfig(typ.Bounce.DamageReduction, typ.Bounce.Bounciness, typ.Bounce.MaxBounces)
	}
	var pierce *ballistics.PierceConfig
	if typ.Pierce != nil {
		pierce = ballistics.NewPierceConfig(typ.Pierce.DamageReduction, typ.Pierce.VelocityFactor,
			typ.Pierce.MaxPenetrations, typ.Pierce.Cooldown)
	}
	var homing *ballistics.HomingConfig
	if typ.Homing != nil {
		homing = ballistics.NewHomingConfig(typ.Homing.Radius, typ.Homing.Strength, typ.Homing.RampSeconds)
	}
	var explosive *ballistics.ExplosiveConfig
	if typ.Explosive != nil {
		explosive = ballistics.NewExplosiveConfig(typ.Explosive.Radius, typ.Explosive.DamageMultiplier)
	}

	b := ballistics.NewBehavior(bounce, pierce, homing, explosive)
	behaviorCache[key] = b
	return b
}

// CreateProjectile launches an archetype projectile from pos along dir.
// Unknown archetypes fall back to the default.
func CreateProjectile(ecs *ecs.ECS, archetype string, pos, dir gamemath.Vec3, owner donburi.Entity) *donburi.Entry {
	typ, ok := cfg.ProjectileType(archetype)
	if !ok {
		log.Printf("[sim] unknown projectile archetype %q, using %q", archetype, cfg.Projectiles.Default)
		typ = cfg.Projectiles.Types[cfg.Projectiles.Default]
	}

	dir = dir.Normalized()
	if dir == gamemath.Zero {
		dir = gamemath.Forward
	}

	p := archetypes.Projectile.Spawn(ecs)

	data := components.ProjectileData{
		Archetype:       typ.Name,
		Behavior:        BehaviorFor(typ),
		State:           ballistics.NewState(pos, dir.Scale(typ.Speed), typ.Damage),
		Radius:          typ.Radius,
		LifeRemaining:   typ.Lifetime,
		GravityScale:    typ.GravityScale,
		DestroyOnImpact: typ.DestroyOnImpact,
		Owner:           owner,
	}

	if h := data.Behavior.Homing; h != nil {
		if h.RampSeconds > 0 {
			data.HomingRamp = gween.New(0, float32(h.Strength), float32(h.RampSeconds), ease.OutQuad)
		} else {
			data.HomingStrength = h.Strength
		}
	}

	components.Projectile.SetValue(p, data)

	if stats, ok := components.Stats.First(ecs.World); ok {
		components.Stats.Get(stats).Shots++
	}

	return p
}
