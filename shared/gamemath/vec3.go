package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// Vec3 is a world-space 3D vector. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero    = Vec3{}
	Up      = Vec3{Y: 1}
	Forward = Vec3{Z: -1}
)

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) LengthSquared() float64 { return a.Dot(a) }

func (a Vec3) Length() float64 { return math.Sqrt(a.LengthSquared()) }

// Normalized returns the unit vector, or Zero for vectors shorter than 1e-9.
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	if l < 1e-9 {
		return Zero
	}
	return a.Scale(1 / l)
}

// Reflect mirrors a across the plane with unit normal n: a - 2(a·n)n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Lerp blends a toward b by t without clamping.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

func (a Vec3) DistanceSquaredTo(b Vec3) float64 { return b.Sub(a).LengthSquared() }

func (a Vec3) DistanceTo(b Vec3) float64 { return b.Sub(a).Length() }

// XZ projects onto the ground plane used by the collision space.
func (a Vec3) XZ() (x, z float64) { return a.X, a.Z }

// FromGround lifts a ground-plane point back into 3D at height y.
func FromGround(x, z, y float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// FromContact converts a resolv contact delta (ground plane) into a world delta.
func FromContact(c vector.Vector) Vec3 {
	if len(c) < 2 {
		return Zero
	}
	return Vec3{X: c.X(), Z: c.Y()}
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp clamps v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
