package gamemath

// CalculateHomingVelocity returns a velocity of the given speed pointing from
// pos toward target. Returns Zero when the two points coincide.
func CalculateHomingVelocity(pos, target Vec3, speed float64) Vec3 {
	dir := target.Sub(pos).Normalized()
	return dir.Scale(speed)
}

// BlendDirections mixes two headings by t in [0,1] and returns a unit vector.
// Degenerate inputs fall back to Forward, and opposite headings fall back to
// desired.
func BlendDirections(current, desired Vec3, t float64) Vec3 {
	t = Clamp01(t)
	a := current.Normalized()
	if a == Zero {
		a = Forward
	}
	b := desired.Normalized()
	if b == Zero {
		b = Forward
	}
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := a.Scale(1 - t).Add(b.Scale(t))
	if mix.LengthSquared() < 1e-8 {
		return b
	}
	return mix.Normalized()
}

// SteerToward turns vel toward target by strength while keeping its speed.
func SteerToward(pos, vel, target Vec3, strength float64) Vec3 {
	speed := vel.Length()
	if speed == 0 {
		return vel
	}
	return BlendDirections(vel, target.Sub(pos), strength).Scale(speed)
}
