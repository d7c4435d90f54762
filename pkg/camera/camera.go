// Package camera builds the world-to-canvas viewing transform and
// provides the adaptive chopper that subdivides world-space edges
// into roughly pixel-sized chunks before visibility sampling.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/goplotter/hlines/pkg/core"
)

// Looking is the intermediate state between look-at and perspective;
// it exists so that Perspective can be called with the eye already
// fixed, mirroring the two-stage builder.
type Looking struct {
	eye    core.Point3[core.World]
	center core.Vec3[core.World]
	up     core.Vec3[core.World]
	toCam  core.Transform[core.World, core.Camera]
}

// Camera carries the composed world->camera->canvas-precursor transform
// plus the viewport and clipping parameters needed by chop_segment.
type Camera struct {
	Eye    core.Point3[core.World]
	Center core.Vec3[core.World]
	Up     core.Vec3[core.World]

	FovY   float64
	Width  float64
	Height float64
	Aspect float64
	ZNear  float64
	ZFar   float64

	Matrix core.Transform[core.World, core.Canvas]

	MinStepSize float64
	MaxStepSize float64
}

// LookAt computes world->camera using mgl64's right-handed look-at
// construction (equivalent to the orthonormal s/u/f basis: s = f×up,
// u = s×f, with f pointing from eye to center). A degenerate basis
// (collinear eye/center/up) is a programmer error and panics rather
// than silently producing NaNs.
func LookAt(eye core.Point3[core.World], center, up core.Vec3[core.World]) Looking {
	upN := up.Normalize()
	eyeV := mgl64.Vec3{eye.X, eye.Y, eye.Z}
	centerV := mgl64.Vec3{center.X, center.Y, center.Z}
	upV := mgl64.Vec3{upN.X, upN.Y, upN.Z}

	f := centerV.Sub(eyeV)
	s := f.Cross(upV)
	if s.Len() == 0 {
		panic("camera: degenerate look-at basis (eye, center, up are collinear)")
	}

	worldToCam := mgl64.LookAtV(eyeV, centerV, upV)
	if hasNaN(worldToCam) {
		panic("camera: non-invertible look-at matrix")
	}

	return Looking{
		eye:    eye,
		center: center,
		up:     upN,
		toCam:  core.NewTransform[core.World, core.Camera](worldToCam),
	}
}

func hasNaN(m mgl64.Mat4) bool {
	for _, v := range m {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Perspective composes an OpenGL-style perspective frustum (built with
// mgl64.Frustum) with the look-at matrix, and precomputes the
// near/far pixel-width step sizes used by ChopSegment.
func (look Looking) Perspective(fovyDegrees, width, height, znear, zfar float64) Camera {
	aspect := width / height
	ymax := znear * math.Tan(fovyDegrees*math.Pi/360.0)
	xmax := ymax * aspect

	frustumMat := mgl64.Frustum(-xmax, xmax, -ymax, ymax, znear, zfar)
	camToCanvas := core.NewTransform[core.Camera, core.Canvas](frustumMat)
	matrix := core.Then(look.toCam, camToCanvas)

	yfar := zfar * math.Tan(fovyDegrees*math.Pi/360.0)
	xfar := yfar * aspect

	return Camera{
		Eye:    look.eye,
		Center: look.center,
		Up:     look.up,
		FovY:   fovyDegrees,
		Width:  width,
		Height: height,
		Aspect: aspect,
		ZNear:  znear,
		ZFar:   zfar,
		Matrix: matrix,

		MinStepSize: math.Min(2*ymax/height, 2*xmax/width),
		MaxStepSize: math.Min(2*yfar/height, 2*xfar/width),
	}
}

// ChopSegment subdivides a world-space edge into roughly pixel-sized
// sub-segments, denser near the camera and coarser far away. Segments
// shorter than the locally appropriate pixel width are dropped
// entirely rather than returned whole: a lone sub-pixel chunk would be
// overdrawn by its neighbours anyway, and keeping it produces visible
// dotted artifacts at the horizon. A camera whose step sizes are both
// zero returns every segment whole, unchopped.
func (c Camera) ChopSegment(seg core.LineSegment[core.World]) []core.LineSegment[core.World] {
	if c.MinStepSize == 0 && c.MaxStepSize == 0 {
		return []core.LineSegment[core.World]{seg}
	}
	p1, p2 := seg.P1, seg.P2
	midpoint := p1.Lerp(p2, 0.5)

	d1 := p1.Subtract(c.Eye).Length()
	d2 := p2.Subtract(c.Eye).Length()
	dm := midpoint.Subtract(c.Eye).Length()
	closest := math.Min(d1, math.Min(d2, dm))

	t := (closest - c.ZNear) / (c.ZFar - c.ZNear)
	roughStep := c.MinStepSize + t*(c.MaxStepSize-c.MinStepSize)

	length := p2.Subtract(p1).Length()
	if length < roughStep {
		return nil
	}

	chunkCount := int(roundHalfToEven(length / roughStep))
	if chunkCount < 1 {
		chunkCount = 1
	}

	segments := make([]core.LineSegment[core.World], 0, chunkCount)
	for i := 0; i < chunkCount; i++ {
		t0 := float64(i) / float64(chunkCount)
		t1 := float64(i+1) / float64(chunkCount)
		segments = append(segments, core.LineSegment[core.World]{
			P1:  p1.Lerp(p2, t0),
			P2:  p1.Lerp(p2, t1),
			Tag: seg.Tag,
		})
	}
	return segments
}

// roundHalfToEven implements banker's rounding so that a long run of
// segments straddling a .5 boundary doesn't all round the same
// direction and introduce a systematic bias in chunk density.
func roundHalfToEven(x float64) float64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}

// FinalTransform returns the composite world->canvas transform used by
// render: the camera's world->canvas-precursor matrix followed by the
// (1,1,0) translate and (width/2,height/2,0) scale that turns NDC
// [-1,1]^2 into pixel coordinates [0,width]x[0,height].
func (c Camera) FinalTransform() core.Transform[core.World, core.Canvas] {
	post := mgl64.Mat4{
		c.Width / 2, 0, 0, 0,
		0, c.Height / 2, 0, 0,
		0, 0, 0, 0,
		c.Width / 2, c.Height / 2, 0, 1,
	}
	postTransform := core.NewTransform[core.Canvas, core.Canvas](post)
	return core.Then(c.Matrix, postTransform)
}
