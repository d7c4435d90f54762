package camera

import (
	"math"
	"testing"

	"github.com/goplotter/hlines/pkg/core"
)

func TestLookAtPerspectiveDoesNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	eye := core.NewPoint3[core.World](4, 3, 2)
	center := core.NewVec3[core.World](0, 0, 0)
	up := core.NewVec3[core.World](0, 0, 1)

	cam := LookAt(eye, center, up).Perspective(50, 1024, 1024, 0.1, 10)
	if cam.MinStepSize <= 0 || cam.MaxStepSize <= 0 {
		t.Errorf("expected positive step sizes, got min=%f max=%f", cam.MinStepSize, cam.MaxStepSize)
	}
	if cam.MaxStepSize <= cam.MinStepSize {
		t.Errorf("expected max step size > min step size, got min=%f max=%f", cam.MinStepSize, cam.MaxStepSize)
	}
}

func TestLookAtDegenerateBasisPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for collinear eye/center/up")
		}
	}()
	eye := core.NewPoint3[core.World](0, 0, 0)
	center := core.NewVec3[core.World](0, 0, 1)
	up := core.NewVec3[core.World](0, 0, 1)
	LookAt(eye, center, up)
}

func TestChopSegmentRoundTrip(t *testing.T) {
	cam := LookAt(
		core.NewPoint3[core.World](0, 0, 5),
		core.NewVec3[core.World](0, 0, 0),
		core.NewVec3[core.World](0, 1, 0),
	).Perspective(50, 800, 600, 0.1, 100)

	seg := core.NewLineSegment(core.NewPoint3[core.World](-2, 0, 0), core.NewPoint3[core.World](2, 0, 0), 1)
	chunks := cam.ChopSegment(seg)
	if len(chunks) == 0 {
		t.Fatalf("expected at least one chunk for a 4-unit segment near the camera")
	}

	total := core.NewVec3[core.World](0, 0, 0)
	for _, c := range chunks {
		total = total.Add(c.Vector())
	}
	want := seg.Vector()
	if !total.ApproxEqual(want, 1e-9) {
		t.Errorf("chunk vectors should sum to the original segment vector: got %v want %v", total, want)
	}
	// chunks must be contiguous and tagged consistently
	for i, c := range chunks {
		if c.Tag != seg.Tag {
			t.Errorf("chunk %d has wrong tag: got %d want %d", i, c.Tag, seg.Tag)
		}
	}
	for i := 1; i < len(chunks); i++ {
		if !chunks[i-1].P2.ApproxEqual(chunks[i].P1, 1e-9) {
			t.Errorf("chunk %d is not contiguous with chunk %d", i-1, i)
		}
	}
}

func TestChopSegmentCullsSubPixel(t *testing.T) {
	cam := LookAt(
		core.NewPoint3[core.World](0, 0, 5),
		core.NewVec3[core.World](0, 0, 0),
		core.NewVec3[core.World](0, 1, 0),
	).Perspective(50, 800, 600, 0.1, 100)

	tiny := cam.MinStepSize / 1000
	seg := core.NewLineSegment(
		core.NewPoint3[core.World](0, 0, 0),
		core.NewPoint3[core.World](tiny, 0, 0),
		1,
	)
	if chunks := cam.ChopSegment(seg); chunks != nil {
		t.Errorf("expected sub-pixel segment to be culled, got %d chunks", len(chunks))
	}
}

func TestRoundHalfToEven(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{3.5, 4},
		{1.2, 1},
		{1.8, 2},
	}
	for _, c := range cases {
		if got := roundHalfToEven(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("roundHalfToEven(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
