package config

// BounceTypeConfig describes the bounce modifier of an archetype
type BounceTypeConfig struct {
	DamageReduction float64 // fraction lost per bounce, clamped to [0,1]
	Bounciness      float64 // speed retained along the reflected direction
	MaxBounces      int
}

// PierceTypeConfig describes the pierce modifier of an archetype
type PierceTypeConfig struct {
	DamageReduction float64
	VelocityFactor  float64
	MaxPenetrations int
	Cooldown        float64 // seconds the pierced collider is ignored
}

// HomingTypeConfig describes steering toward nearby agents
type HomingTypeConfig struct {
	Radius      float64
	Strength    float64 // per-tick blend toward the target direction
	RampSeconds float64 // time to reach full strength after launch
}

// ExplosiveTypeConfig describes area damage on every processed hit
type ExplosiveTypeConfig struct {
	Radius           float64
	DamageMultiplier float64
}

// ProjectileTypeConfig contains configuration for a projectile archetype
type ProjectileTypeConfig struct {
	Name            string
	Radius          float64
	Speed           float64
	Damage          float64
	Lifetime        float64 // seconds
	GravityScale    float64 // multiplier on Sim.Gravity
	DestroyOnImpact bool    // deactivate when no modifier handles a hit

	Bounce    *BounceTypeConfig
	Pierce    *PierceTypeConfig
	Homing    *HomingTypeConfig
	Explosive *ExplosiveTypeConfig
}

// ProjectileConfig contains the archetype table
type ProjectileConfig struct {
	Types   map[string]ProjectileTypeConfig
	Default string
}

// Projectiles holds every projectile archetype keyed by name
var Projectiles ProjectileConfig

func init() {
	Projectiles = ProjectileConfig{
		Default: "basic",
		Types: map[string]ProjectileTypeConfig{
			"basic": {
				Name:            "basic",
				Radius:          0.1,
				Speed:           20.0,
				Damage:          10.0,
				Lifetime:        3.0,
				DestroyOnImpact: true,
			},
			"ricochet": {
				Name:            "ricochet",
				Radius:          0.1,
				Speed:           18.0,
				Damage:          12.0,
				Lifetime:        5.0,
				DestroyOnImpact: true,
				Bounce: &BounceTypeConfig{
					DamageReduction: 0.2,
					Bounciness:      0.8,
					MaxBounces:      3,
				},
			},
			"piercer": {
				Name:            "piercer",
				Radius:          0.08,
				Speed:           30.0,
				Damage:          20.0,
				Lifetime:        2.0,
				DestroyOnImpact: true,
				Pierce: &PierceTypeConfig{
					DamageReduction: 0.25,
					VelocityFactor:  0.9,
					MaxPenetrations: 2,
					Cooldown:        0.1,
				},
			},
			"seeker": {
				Name:            "seeker",
				Radius:          0.12,
				Speed:           12.0,
				Damage:          8.0,
				Lifetime:        6.0,
				DestroyOnImpact: true,
				Homing: &HomingTypeConfig{
					Radius:      12.0,
					Strength:    0.15,
					RampSeconds: 0.5,
				},
			},
			"grenade": {
				Name:            "grenade",
				Radius:          0.15,
				Speed:           10.0,
				Damage:          25.0,
				Lifetime:        4.0,
				GravityScale:    1.0,
				DestroyOnImpact: true,
				Bounce: &BounceTypeConfig{
					DamageReduction: 0.0,
					Bounciness:      0.5,
					MaxBounces:      2,
				},
				Explosive: &ExplosiveTypeConfig{
					Radius:           3.0,
					DamageMultiplier: 0.5,
				},
			},
		},
	}
}

// ProjectileType looks up an archetype by name.
func ProjectileType(name string) (ProjectileTypeConfig, bool) {
	t, ok := Projectiles.Types[name]
	return t, ok
}
