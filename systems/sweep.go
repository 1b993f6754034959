package systems

import (
	"math"

	"github.com/automoto/ricochet/components"
	cfg "github.com/automoto/ricochet/config"
	"github.com/automoto/ricochet/shared/ballistics"
	"github.com/automoto/ricochet/shared/gamemath"
	"github.com/automoto/ricochet/systems/factory"
	"github.com/automoto/ricochet/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// sweepHit is the earliest contact along a projectile's step.
type sweepHit struct {
	T        float64       // fraction of the step, 0..1
	Point    gamemath.Vec3 // on the struck surface
	Center   gamemath.Vec3 // sphere centre at contact
	Normal   gamemath.Vec3
	Collider ballistics.ColliderID
	Entry    *donburi.Entry // nil for the ground plane
	IsEnemy  bool
}

// box is an axis-aligned volume in world space.
type box struct {
	Min, Max gamemath.Vec3
}

func (b box) expand(r float64) box {
	d := gamemath.Vec3{X: r, Y: r, Z: r}
	return box{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

func (b box) contains(p gamemath.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// segmentBox intersects the segment from->to with b. It returns the entry
// fraction and the face normal. A segment starting inside or on b is leaving
// it and reports no contact.
func segmentBox(from, to gamemath.Vec3, b box) (t float64, normal gamemath.Vec3, ok bool) {
	if b.contains(from) {
		return 0, gamemath.Zero, false
	}
	d := to.Sub(from)
	tEnter, tExit := math.Inf(-1), math.Inf(1)

	axes := [3]struct {
		p, d, lo, hi float64
		nLo, nHi     gamemath.Vec3 // outward normals of the low and high faces
	}{
		{from.X, d.X, b.Min.X, b.Max.X, gamemath.Vec3{X: -1}, gamemath.Vec3{X: 1}},
		{from.Y, d.Y, b.Min.Y, b.Max.Y, gamemath.Vec3{Y: -1}, gamemath.Vec3{Y: 1}},
		{from.Z, d.Z, b.Min.Z, b.Max.Z, gamemath.Vec3{Z: -1}, gamemath.Vec3{Z: 1}},
	}

	for _, a := range axes {
		if math.Abs(a.d) < 1e-12 {
			if a.p < a.lo || a.p > a.hi {
				return 0, gamemath.Zero, false
			}
			continue
		}
		t1 := (a.lo - a.p) / a.d
		t2 := (a.hi - a.p) / a.d
		n := a.nLo
		if t1 > t2 {
			t1, t2 = t2, t1
			n = a.nHi
		}
		if t1 > tEnter {
			tEnter = t1
			normal = n
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return 0, gamemath.Zero, false
		}
	}

	if tExit < 0 || tEnter < 0 || tEnter > 1 {
		return 0, gamemath.Zero, false
	}
	return tEnter, normal, true
}

// groundHit tests the step against the y=0 plane for a sphere of radius r.
func groundHit(from, to gamemath.Vec3, r float64) (sweepHit, bool) {
	if to.Y > r || to.Y >= from.Y {
		return sweepHit{}, false
	}
	t := 0.0
	if from.Y > r {
		t = (from.Y - r) / (from.Y - to.Y)
	}
	center := from.Lerp(to, t)
	return sweepHit{
		T:        t,
		Point:    gamemath.Vec3{X: center.X, Z: center.Z},
		Center:   center,
		Normal:   gamemath.Up,
		Collider: ballistics.ColliderID(cfg.Sim.GroundColliderID),
	}, true
}

// colliderBox returns the world volume of a broadphase object.
func colliderBox(obj *resolv.Object, e *donburi.Entry) box {
	x, z := factory.FromSpace(obj.X), factory.FromSpace(obj.Y)
	b := box{
		Min: gamemath.Vec3{X: x, Y: 0, Z: z},
		Max: gamemath.Vec3{X: x + factory.FromSpace(obj.W), Y: math.Inf(1), Z: z + factory.FromSpace(obj.H)},
	}
	switch {
	case e.HasComponent(components.Agent):
		b.Max.Y = components.Agent.Get(e).Height
	case e.HasComponent(components.Turret):
		b.Max.Y = components.Turret.Get(e).Muzzle.Y
	}
	return b
}

// sweep finds the earliest hit of a sphere moving from->to, skipping the
// owner and the ignore collider (0 ignores nothing). The resolv space narrows
// candidates to the cells the step touches.
func sweep(space *resolv.Space, from, to gamemath.Vec3, radius float64, owner donburi.Entity, ignore ballistics.ColliderID) (sweepHit, bool) {
	best, found := groundHit(from, to, radius)
	if found && ignore != 0 && best.Collider == ignore {
		best, found = sweepHit{}, false
	}

	if space == nil {
		return best, found
	}

	// Pad by a cell so thin steps still cover every neighbouring cell
	padX := factory.ToSpace(radius) + float64(space.CellWidth)
	padZ := factory.ToSpace(radius) + float64(space.CellHeight)
	minX := factory.ToSpace(math.Min(from.X, to.X)) - padX
	maxX := factory.ToSpace(math.Max(from.X, to.X)) + padX
	minZ := factory.ToSpace(math.Min(from.Z, to.Z)) - padZ
	maxZ := factory.ToSpace(math.Max(from.Z, to.Z)) + padZ

	probe := resolv.NewObject(minX, minZ, maxX-minX, maxZ-minZ, tags.ResolvProjectile)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid, tags.ResolvAgent, tags.ResolvTurret)
	if check == nil {
		return best, found
	}

	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || e == nil || !e.Valid() {
			continue
		}
		if e.Entity() == owner {
			continue
		}
		if e.HasComponent(components.Death) {
			continue
		}
		id := components.Collider.Get(e).ID
		if ignore != 0 && id == ignore {
			continue
		}

		t, n, ok := segmentBox(from, to, colliderBox(obj, e).expand(radius))
		if !ok {
			continue
		}
		if found && t >= best.T {
			continue
		}

		center := from.Lerp(to, t)
		best = sweepHit{
			T:        t,
			Point:    center.Sub(n.Scale(radius)),
			Center:   center,
			Normal:   n,
			Collider: id,
			Entry:    e,
			IsEnemy:  e.HasComponent(components.Agent),
		}
		found = true
	}

	return best, found
}
