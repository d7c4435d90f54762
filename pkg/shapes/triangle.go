package shapes

import "github.com/goplotter/hlines/pkg/core"

// triangleInflate is how far each vertex is pushed outward from the
// triangle's centroid when drawing its edges, matching the inflation
// applied to RectPrism edges for the same reason.
const triangleInflate = 0.015

// Triangle is a flat triangular facet with precomputed edge vectors
// and supporting plane, used for both the hit test and the edge draw.
type Triangle struct {
	core.ShapeBase
	verts [3]core.Point3[core.World]
	edges [3]core.Vec3[core.World]
	plane Plane
	Tag   uint64
}

// NewTriangle creates an untagged triangle; its edges get a fresh tag.
func NewTriangle(v0, v1, v2 core.Point3[core.World]) *Triangle {
	return TaggedTriangle(v0, v1, v2, core.NextTag())
}

// TaggedTriangle creates a triangle whose edges carry the given tag.
func TaggedTriangle(v0, v1, v2 core.Point3[core.World], tag uint64) *Triangle {
	edges := [3]core.Vec3[core.World]{
		v1.Subtract(v0),
		v2.Subtract(v1),
		v0.Subtract(v2),
	}
	normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return &Triangle{
		ShapeBase: core.NewShapeBase(),
		verts:     [3]core.Point3[core.World]{v0, v1, v2},
		edges:     edges,
		plane:     Plane{Point: v0, Normal: normal},
		Tag:       tag,
	}
}

// HitBy hits the supporting plane, then tests the hit point against
// each edge: the point is inside iff the cross product of every edge
// with the vector from that edge's origin vertex to the hit point
// agrees in sign with the triangle's normal, consistently for all
// three edges.
func (t *Triangle) HitBy(ray core.Ray[core.World], tMin, tMax float64) (core.HitData[core.World], bool) {
	hit, ok := t.plane.HitBy(ray, tMin, tMax)
	if !ok {
		return core.HitData[core.World]{}, false
	}

	normal := t.plane.Normal
	gtz, ltz := true, true
	for i := 0; i < 3; i++ {
		vp := hit.HitPoint.Subtract(t.verts[i])
		c := t.edges[i].Cross(vp)
		nc := normal.Dot(c)
		gtz = gtz && nc > 0
		ltz = ltz && nc < 0
		if !gtz && !ltz {
			return core.HitData[core.World]{}, false
		}
	}
	return hit, true
}

// Paths returns the triangle's three edges, each vertex nudged
// outward from the centroid by triangleInflate.
func (t *Triangle) Paths() []core.LineSegment[core.World] {
	sum := t.verts[0].Vector().Add(t.verts[1].Vector()).Add(t.verts[2].Vector())
	centroidPt := core.NewPoint3[core.World](sum.X/3, sum.Y/3, sum.Z/3)

	v0 := t.verts[0].Add(t.verts[0].Subtract(centroidPt).Normalize().Multiply(triangleInflate))
	v1 := t.verts[1].Add(t.verts[1].Subtract(centroidPt).Normalize().Multiply(triangleInflate))
	v2 := t.verts[2].Add(t.verts[2].Subtract(centroidPt).Normalize().Multiply(triangleInflate))

	return []core.LineSegment[core.World]{
		core.NewLineSegment(v0, v1, t.Tag),
		core.NewLineSegment(v1, v2, t.Tag),
		core.NewLineSegment(v2, v0, t.Tag),
	}
}

// BoundingBox returns the smallest box enclosing all three vertices.
func (t *Triangle) BoundingBox() (core.AABB[core.World], bool) {
	return core.NewAABBFromPoints(t.verts[0], t.verts[1], t.verts[2]), true
}
