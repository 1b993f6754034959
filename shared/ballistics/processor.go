package ballistics

import "github.com/automoto/ricochet/shared/gamemath"

const (
	// MinSurfaceOffset is the smallest distance a bouncing projectile is
	// pushed off the surface it hit.
	MinSurfaceOffset = 0.01

	minNormalLengthSq = 1e-4
)

// Outcome names the branch ProcessCollision took.
type Outcome int

const (
	OutcomeDefault Outcome = iota
	OutcomeBounced
	OutcomePierced
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBounced:
		return "bounced"
	case OutcomePierced:
		return "pierced"
	default:
		return "default"
	}
}

// ProcessCollision resolves one collision event against state and reports
// whether the projectile should be deactivated.
func ProcessCollision(state *State, behavior *Behavior, ctx Context) (terminate bool) {
	terminate, _ = Resolve(state, behavior, ctx)
	return terminate
}

// Resolve is ProcessCollision that also reports which branch was taken.
//
// Bounce is checked first. A configured bounce that has run out of bounces
// ends in the default branch even if a pierce modifier would apply. A zero hit
// normal leaves the bounce ineligible for this event.
func Resolve(state *State, behavior *Behavior, ctx Context) (terminate bool, outcome Outcome) {
	state.LastColliderID = ctx.ColliderID

	if behavior.bounceEligible() {
		b := behavior.Bounce
		if state.BounceCount >= b.MaxBounces {
			return resolveDefault(state, ctx), OutcomeDefault
		}
		if ctx.HitNormal.LengthSquared() > minNormalLengthSq {
			bounce(state, b, ctx)
			return false, OutcomeBounced
		}
	}

	if behavior.pierceEligible() && ctx.IsEnemy && state.PenetrationCount < behavior.Pierce.MaxPenetrations {
		pierce(state, behavior.Pierce, ctx)
		return false, OutcomePierced
	}

	return resolveDefault(state, ctx), OutcomeDefault
}

func bounce(state *State, b *BounceConfig, ctx Context) {
	n := ctx.HitNormal.Normalized()

	state.Velocity = state.Velocity.Reflect(n).Scale(max(0, b.Bounciness))
	state.Damage *= 1 - gamemath.Clamp01(b.DamageReduction)

	offset := max(MinSurfaceOffset, ctx.Radius)
	state.Position = ctx.HitPosition.Add(n.Scale(offset))
	state.PrevPosition = state.Position

	state.BounceCount++
	state.CollisionCooldown = 0
}

func pierce(state *State, p *PierceConfig, ctx Context) {
	state.Damage *= 1 - gamemath.Clamp01(p.DamageReduction)
	state.Velocity = state.Velocity.Scale(gamemath.Clamp01(p.VelocityFactor))

	state.Position = ctx.NextPosition
	state.PrevPosition = state.Position

	state.PenetrationCount++
	state.CollisionCooldown = max(0, p.Cooldown)
	state.LastColliderID = ctx.ColliderID
}

func resolveDefault(state *State, ctx Context) bool {
	state.Position = ctx.HitPosition
	state.CollisionCooldown = 0
	return ctx.DefaultDeactivate
}
