// Package scene binds a fixed set of shapes to a bounding volume
// hierarchy, and binds a Scene to a Camera to produce the final
// visible, simplified, projected line segments.
package scene

import (
	"math"

	"github.com/goplotter/hlines/pkg/bvh"
	"github.com/goplotter/hlines/pkg/core"
)

// visibilityEpsilon is how close the distance of a hit along the
// target-to-eye ray must be to the eye's own distance from the target
// for that hit not to count as occluding the target.
// Coarse on purpose: tighter values leave holes at grazing angles,
// looser ones bleed light through thin walls.
const visibilityEpsilon = 1e-1

// Scene owns an immutable list of shapes and the BVH built over them.
type Scene struct {
	shapes []core.Shape
	bvh    *bvh.BVH
	logger core.Logger
}

// New takes ownership of shapes and eagerly builds the BVH over them.
func New(shapes []core.Shape, logger core.Logger) *Scene {
	if logger == nil {
		logger = core.NopLogger{}
	}
	owned := make([]core.Shape, len(shapes))
	copy(owned, shapes)
	return &Scene{
		shapes: owned,
		bvh:    bvh.New(owned, logger),
		logger: logger,
	}
}

// Shapes returns the scene's shapes. The returned slice must not be
// mutated; it is shared with every concurrent reader of the scene.
func (s *Scene) Shapes() []core.Shape {
	return s.shapes
}

// Intersects finds the closest hit along ray among every shape in the
// scene, delegating entirely to the BVH.
func (s *Scene) Intersects(ray core.Ray[core.World]) (core.HitData[core.World], bool) {
	return s.bvh.Intersects(ray)
}

// Visible reports whether the target point is visible from the eye:
// a ray is cast from the target toward the eye (not the other way
// around) so that the shape owning the target never reports a
// self-intersection at distance zero. The target is visible when the
// ray hits nothing, or when the closest hit lies within
// visibilityEpsilon of the eye's distance from the target; any other
// hit, whether nearer than the eye or beyond it, counts as occluding.
func (s *Scene) Visible(eye, target core.Point3[core.World]) bool {
	v := eye.Subtract(target)
	length := v.Length()
	if length == 0 {
		return true
	}
	ray := core.NewRay(target, v)

	hit, ok := s.Intersects(ray)
	if !ok {
		return true
	}
	return math.Abs(hit.DistTo-length) < visibilityEpsilon
}
