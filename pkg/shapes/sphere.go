package shapes

import (
	"math"

	"github.com/goplotter/hlines/pkg/core"
)

// Sphere is centered at Center with the given Radius.
type Sphere struct {
	core.ShapeBase
	Center  core.Point3[core.World]
	Radius  float64
	radius2 float64
}

// NewSphere creates a sphere at center with the given radius.
func NewSphere(center core.Point3[core.World], radius float64) *Sphere {
	return &Sphere{ShapeBase: core.NewShapeBase(), Center: center, Radius: radius, radius2: radius * radius}
}

// HitBy solves the ray-sphere quadric analytically. Of the two roots,
// the smaller positive one wins; if it is negative (ray origin inside
// or past the sphere along that branch) the larger root is tried
// instead, and the ray misses only if both roots are behind it. This
// is what keeps a ray leaving the sphere's own surface from
// re-intersecting it a hairsbreadth later.
func (s *Sphere) HitBy(ray core.Ray[core.World], tMin, tMax float64) (core.HitData[core.World], bool) {
	lVec := s.Center.Subtract(ray.Origin)
	tCa := lVec.Dot(ray.Dir)
	d2 := lVec.Dot(lVec) - tCa*tCa

	if d2 >= s.radius2 {
		return core.HitData[core.World]{}, false
	}

	tHc := math.Sqrt(s.radius2 - d2)
	t0 := tCa - tHc
	t1 := tCa + tHc

	if t0 < 0 && t1 < 0 {
		return core.HitData[core.World]{}, false
	}

	t := t0
	if t0 < 0 {
		t = t1
	}
	if t < tMin || t > tMax {
		return core.HitData[core.World]{}, false
	}

	return core.HitData[core.World]{HitPoint: ray.At(t), DistTo: t}, true
}

// Paths returns no edges: a sphere's visible outline in a hidden-line
// renderer would be a silhouette curve, not a set of straight edges,
// and approximating one is out of scope here.
func (s *Sphere) Paths() []core.LineSegment[core.World] {
	return nil
}

// BoundingBox returns the sphere's axis-aligned bounding cube.
func (s *Sphere) BoundingBox() (core.AABB[core.World], bool) {
	r := core.NewVec3[core.World](s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Add(r.Negate()), s.Center.Add(r)), true
}
