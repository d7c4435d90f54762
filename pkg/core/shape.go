package core

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// tagCounter hands out the monotonically increasing Tag values that
// identify a shape's edges to the simplification pass. Tags only need
// to be unique and stable for the lifetime of a single render; they
// are never persisted or compared across runs.
var tagCounter uint64

// NextTag returns a fresh, process-unique tag for a shape's edges.
func NextTag() uint64 {
	return atomic.AddUint64(&tagCounter, 1)
}

// Shape is anything that can be intersected by a ray and can describe
// its own visible edges as line segments. Implementations live in
// pkg/shapes; core only depends on the capability, never a concrete
// shape, so that the BVH, camera, and scene packages stay agnostic to
// what they are rendering.
type Shape interface {
	// HitBy intersects the ray with the shape, returning the nearest
	// hit within [tMin, tMax] if any.
	HitBy(ray Ray[World], tMin, tMax float64) (HitData[World], bool)

	// Paths returns the shape's edges as world-space line segments.
	Paths() []LineSegment[World]

	// BoundingBox returns the shape's world-space bounding box, or
	// false if the shape is unbounded (e.g. an infinite plane).
	BoundingBox() (AABB[World], bool)

	// DebugID returns a stable identifier for logging and diagnostics.
	// It is never consulted for correctness.
	DebugID() uuid.UUID
}

// ShapeBase provides the bookkeeping every concrete shape embeds: a
// random debug identity. Edge tags are not held here; shapes draw them
// from NextTag themselves.
type ShapeBase struct {
	id uuid.UUID
}

// NewShapeBase creates a fresh identity for a shape.
func NewShapeBase() ShapeBase {
	return ShapeBase{id: uuid.New()}
}

// DebugID returns the shape's stable debug identifier.
func (b ShapeBase) DebugID() uuid.UUID {
	return b.id
}
