// Package core provides the space-tagged geometric primitives shared by
// the rest of the renderer: points and vectors, axis-aligned bounding
// boxes, rays, hit records, line segments, the Shape capability, and the
// Logger sink the rest of the core writes diagnostics to.
package core

// Space is a phantom marker type distinguishing the coordinate frame a
// Point3, Vec3, AABB, or Transform is expressed in. A value is tagged by
// instantiating a generic type with one of World, Camera, or Canvas as
// the type parameter; the compiler then refuses to mix frames (e.g.
// applying a World->Camera transform to a Point3[Canvas]).
type Space interface {
	spaceName() string
}

// World is the frame shapes are authored and the BVH is built in.
type World struct{}

// Camera is the eye-relative frame after the look-at transform.
type Camera struct{}

// Canvas is the final 2D pixel frame, x in [0,width], y in [0,height].
type Canvas struct{}

func (World) spaceName() string  { return "World" }
func (Camera) spaceName() string { return "Camera" }
func (Canvas) spaceName() string { return "Canvas" }
