package gamemath

import (
	"math"
	"testing"

	"github.com/kvartborg/vector"
	"github.com/stretchr/testify/assert"
)

func TestReflect(t *testing.T) {
	v := Vec3{X: 1, Y: -1}
	assert.Equal(t, Vec3{X: 1, Y: 1}, v.Reflect(Up))
	assert.Equal(t, Vec3{Z: -3}, Vec3{Z: 3}.Reflect(Vec3{Z: 1}))
}

func TestNormalizedZero(t *testing.T) {
	assert.Equal(t, Zero, Zero.Normalized())
	assert.InDelta(t, 1.0, Vec3{X: 3, Y: 4}.Normalized().Length(), 1e-12)
}

func TestFromContact(t *testing.T) {
	assert.Equal(t, Vec3{X: 2, Z: -1}, FromContact(vector.Vector{2, -1}))
	assert.Equal(t, Zero, FromContact(nil))
}

func TestApplyFriction(t *testing.T) {
	assert.Equal(t, 1.5, ApplyFriction(2, 0.5))
	assert.Equal(t, -1.5, ApplyFriction(-2, 0.5))
	assert.Equal(t, 0.0, ApplyFriction(0.2, 0.5))
}

func TestApplyFrictionXZ(t *testing.T) {
	v := ApplyFrictionXZ(Vec3{X: 3, Y: 7, Z: 4}, 1)
	assert.InDelta(t, 2.4, v.X, 1e-12)
	assert.InDelta(t, 3.2, v.Z, 1e-12)
	assert.Equal(t, 7.0, v.Y)

	assert.Equal(t, Vec3{Y: 1}, ApplyFrictionXZ(Vec3{X: 0.1, Y: 1}, 1))
}

func TestIntegrate(t *testing.T) {
	pos, vel := Integrate(Zero, Vec3{X: 2}, 10, 0.5)
	assert.Equal(t, Vec3{Y: -5}, Vec3{Y: vel.Y})
	assert.InDelta(t, 1.0, pos.X, 1e-12)
	assert.InDelta(t, -2.5, pos.Y, 1e-12)
}

func TestSteerTowardKeepsSpeed(t *testing.T) {
	vel := SteerToward(Zero, Vec3{Z: -10}, Vec3{X: 5}, 0.5)
	assert.InDelta(t, 10.0, vel.Length(), 1e-9)
	assert.Greater(t, vel.X, 0.0)

	full := SteerToward(Zero, Vec3{Z: -10}, Vec3{X: 5}, 1)
	assert.InDelta(t, 10.0, full.X, 1e-9)
}

func TestBlendDirectionsOpposite(t *testing.T) {
	got := BlendDirections(Vec3{X: 1}, Vec3{X: -1}, 0.5)
	assert.Equal(t, Vec3{X: -1}, got)
}

func TestCalculateHomingVelocity(t *testing.T) {
	v := CalculateHomingVelocity(Zero, Vec3{X: 3, Z: 4}, 10)
	assert.InDelta(t, 6.0, v.X, 1e-12)
	assert.InDelta(t, 8.0, v.Z, 1e-12)
	assert.Equal(t, Zero, CalculateHomingVelocity(Up, Up, 10))
	assert.False(t, math.IsNaN(v.Y))
}
