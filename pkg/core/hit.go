package core

import "math"

// hitEpsilon is the tolerance used when comparing a hit's reported
// distance against an independently computed distance to decide
// whether two hits refer to the same surface point.
const hitEpsilon = 4e-3

// HitData describes where a ray struck a shape.
type HitData[S Space] struct {
	HitPoint Point3[S]
	DistTo   float64
}

// ApproxEqual reports whether two hits agree on distance to within
// hitEpsilon. The visibility test in pkg/scene does not use it; it
// applies its own, coarser tolerance.
func (h HitData[S]) ApproxEqual(other HitData[S]) bool {
	return math.Abs(h.DistTo-other.DistTo) < hitEpsilon
}

// Hit intersects the ray with the box using the slab method, returning
// the nearest entry distance within [tMin, tMax] if the ray hits.
func (a AABB[S]) Hit(ray Ray[S], tMin, tMax float64) (float64, bool) {
	minC := [3]float64{a.Min.X, a.Min.Y, a.Min.Z}
	maxC := [3]float64{a.Max.X, a.Max.Y, a.Max.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Dir.X, ray.Dir.Y, ray.Dir.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < 1e-8 {
			if origin[axis] < minC[axis] || origin[axis] > maxC[axis] {
				return 0, false
			}
			continue
		}
		invD := 1.0 / dir[axis]
		t0 := (minC[axis] - origin[axis]) * invD
		t1 := (maxC[axis] - origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return 0, false
		}
	}
	return tMin, true
}
