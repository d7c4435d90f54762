package core

import "github.com/go-gl/mathgl/mgl64"

// Transform is a 4x4 homogeneous transform (affine or perspective)
// from space Src to space Dst. It
// wraps mgl64.Mat4 rather than hand-rolling matrix math, and the type
// parameters make it impossible to apply a transform to a point tagged
// with the wrong source space.
type Transform[Src, Dst Space] struct {
	mat mgl64.Mat4
}

// NewTransform wraps a raw matrix as a tagged transform.
func NewTransform[Src, Dst Space](mat mgl64.Mat4) Transform[Src, Dst] {
	return Transform[Src, Dst]{mat: mat}
}

// Identity returns the transform that leaves coordinates unchanged.
func Identity[Src, Dst Space]() Transform[Src, Dst] {
	return Transform[Src, Dst]{mat: mgl64.Ident4()}
}

// Matrix returns the underlying matrix.
func (t Transform[Src, Dst]) Matrix() mgl64.Mat4 {
	return t.mat
}

// Point applies the transform to a point, returning false if the
// point lands behind the camera (w <= 0) and so has no valid
// projection.
func (t Transform[Src, Dst]) Point(p Point3[Src]) (Point3[Dst], bool) {
	v := t.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if v[3] == 0 {
		return Point3[Dst]{}, false
	}
	if v[3] != 1 {
		inv := 1.0 / v[3]
		return Point3[Dst]{v[0] * inv, v[1] * inv, v[2] * inv}, v[3] > 0
	}
	return Point3[Dst]{v[0], v[1], v[2]}, true
}

// Vector applies the transform's linear part to a direction vector,
// ignoring translation.
func (t Transform[Src, Dst]) Vector(v Vec3[Src]) Vec3[Dst] {
	r := t.mat.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3[Dst]{r[0], r[1], r[2]}
}

// Segment applies the transform to both endpoints of a segment,
// preserving its tag. It reports false if either endpoint fails to
// project (behind the camera, or w = 0), in which case the segment
// must be silently dropped rather than rendered with garbage
// coordinates.
func (t Transform[Src, Dst]) Segment(l LineSegment[Src]) (LineSegment[Dst], bool) {
	p1, ok1 := t.Point(l.P1)
	if !ok1 {
		return LineSegment[Dst]{}, false
	}
	p2, ok2 := t.Point(l.P2)
	if !ok2 {
		return LineSegment[Dst]{}, false
	}
	return LineSegment[Dst]{P1: p1, P2: p2, Tag: l.Tag}, true
}

// Then composes this transform with a following transform, producing
// the combined Src->Dst transform.
func Then[Src, Mid, Dst Space](first Transform[Src, Mid], second Transform[Mid, Dst]) Transform[Src, Dst] {
	return Transform[Src, Dst]{mat: second.mat.Mul4(first.mat)}
}

// Inverse returns the inverse transform, swapping its space direction.
func (t Transform[Src, Dst]) Inverse() Transform[Dst, Src] {
	return Transform[Dst, Src]{mat: t.mat.Inv()}
}
