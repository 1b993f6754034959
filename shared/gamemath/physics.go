package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyFrictionXZ slows ground-plane velocity by friction, preserving heading.
func ApplyFrictionXZ(v Vec3, friction float64) Vec3 {
	flat := Vec3{X: v.X, Z: v.Z}
	speed := flat.Length()
	reduced := ApplyFriction(speed, friction)
	if speed == 0 || reduced == 0 {
		return Vec3{Y: v.Y}
	}
	flat = flat.Scale(reduced / speed)
	return Vec3{X: flat.X, Y: v.Y, Z: flat.Z}
}

// Integrate advances position by velocity over dt, with gravity pulling along -Y.
func Integrate(pos, vel Vec3, gravity, dt float64) (newPos, newVel Vec3) {
	if gravity != 0 {
		vel.Y -= gravity * dt
	}
	return pos.Add(vel.Scale(dt)), vel
}
