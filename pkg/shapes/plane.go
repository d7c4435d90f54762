package shapes

import "github.com/goplotter/hlines/pkg/core"

// Plane is an infinite plane through Point with the given Normal. It
// has no finite extent, so it reports no bounding box (it lives in
// the BVH's unbounded bucket) and draws no edges of its own.
type Plane struct {
	core.ShapeBase
	Point  core.Point3[core.World]
	Normal core.Vec3[core.World]
}

// NewPlane creates a plane through point with the given normal.
func NewPlane(point core.Point3[core.World], normal core.Vec3[core.World]) *Plane {
	return &Plane{ShapeBase: core.NewShapeBase(), Point: point, Normal: normal}
}

// HitBy tests the ray against the plane. A ray parallel to the plane
// (rdn == 0) or pointing away from it (t < 0) misses.
func (p *Plane) HitBy(ray core.Ray[core.World], tMin, tMax float64) (core.HitData[core.World], bool) {
	rdn := ray.Dir.Dot(p.Normal)
	if rdn == 0 {
		return core.HitData[core.World]{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / rdn
	if t < tMin || t > tMax {
		return core.HitData[core.World]{}, false
	}

	return core.HitData[core.World]{HitPoint: ray.At(t), DistTo: t}, true
}

// Paths returns no edges: an infinite plane has no finite boundary to
// draw, so it contributes nothing to the rendered line set directly
// (it is still hit-tested for occlusion).
func (p *Plane) Paths() []core.LineSegment[core.World] {
	return nil
}

// BoundingBox reports that the plane is unbounded.
func (p *Plane) BoundingBox() (core.AABB[core.World], bool) {
	return core.AABB[core.World]{}, false
}
