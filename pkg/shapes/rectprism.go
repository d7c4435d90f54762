// Package shapes provides the concrete world-space primitives that
// satisfy the core.Shape capability: rectangular prisms, triangles,
// infinite planes, and spheres.
package shapes

import (
	"github.com/goplotter/hlines/pkg/core"
)

// rectPrismInflate is how far each drawn edge is pushed outward from the
// shape's body, so that coincident faces of adjoining shapes don't
// z-fight into a single dropped or flickering line when rendered.
const rectPrismInflate = 0.0015

// RectPrism is an axis-aligned box between Min and Max.
type RectPrism struct {
	core.ShapeBase
	Min, Max core.Point3[core.World]
	Tag      uint64
}

// NewRectPrism creates an untagged box; its edges get a fresh tag.
func NewRectPrism(min, max core.Point3[core.World]) *RectPrism {
	return TaggedRectPrism(min, max, core.NextTag())
}

// TaggedRectPrism creates a box whose edges carry the given tag.
func TaggedRectPrism(min, max core.Point3[core.World], tag uint64) *RectPrism {
	return &RectPrism{ShapeBase: core.NewShapeBase(), Min: min, Max: max, Tag: tag}
}

// HitBy intersects the ray with the box via the slab method.
func (r *RectPrism) HitBy(ray core.Ray[core.World], tMin, tMax float64) (core.HitData[core.World], bool) {
	box := core.NewAABB(r.Min, r.Max)
	dist, ok := box.Hit(ray, tMin, tMax)
	if !ok {
		return core.HitData[core.World]{}, false
	}
	return core.HitData[core.World]{HitPoint: ray.At(dist), DistTo: dist}, true
}

// Paths returns the box's 12 edges, each nudged outward from the box
// body by rectPrismInflate so they render cleanly flush with adjoining
// geometry instead of being clipped by it.
func (r *RectPrism) Paths() []core.LineSegment[core.World] {
	expand := r.Max.Subtract(r.Min).Normalize().Multiply(rectPrismInflate)
	pathMin := r.Min.Add(expand.Negate())
	pathMax := r.Max.Add(expand)

	x1, y1, z1 := pathMin.X, pathMin.Y, pathMin.Z
	x2, y2, z2 := pathMax.X, pathMax.Y, pathMax.Z

	p1 := core.NewPoint3[core.World](x1, y1, z1)
	p2 := core.NewPoint3[core.World](x2, y1, z1)
	p3 := core.NewPoint3[core.World](x2, y1, z2)
	p4 := core.NewPoint3[core.World](x1, y1, z2)
	p5 := core.NewPoint3[core.World](x1, y2, z1)
	p6 := core.NewPoint3[core.World](x2, y2, z1)
	p7 := core.NewPoint3[core.World](x2, y2, z2)
	p8 := core.NewPoint3[core.World](x1, y2, z2)

	return []core.LineSegment[core.World]{
		core.NewLineSegment(p1, p2, r.Tag),
		core.NewLineSegment(p2, p3, r.Tag),
		core.NewLineSegment(p3, p4, r.Tag),
		core.NewLineSegment(p4, p1, r.Tag),
		core.NewLineSegment(p5, p6, r.Tag),
		core.NewLineSegment(p6, p7, r.Tag),
		core.NewLineSegment(p7, p8, r.Tag),
		core.NewLineSegment(p8, p5, r.Tag),
		core.NewLineSegment(p1, p5, r.Tag),
		core.NewLineSegment(p2, p6, r.Tag),
		core.NewLineSegment(p3, p7, r.Tag),
		core.NewLineSegment(p4, p8, r.Tag),
	}
}

// BoundingBox returns the prism's own extent.
func (r *RectPrism) BoundingBox() (core.AABB[core.World], bool) {
	return core.NewAABB(r.Min, r.Max), true
}
