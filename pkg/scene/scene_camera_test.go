package scene

import (
	"testing"

	"github.com/goplotter/hlines/pkg/camera"
	"github.com/goplotter/hlines/pkg/core"
	"github.com/goplotter/hlines/pkg/shapes"
)

// TestRenderCubeHidesBackFacingEdges reproduces the canonical cube
// smoke scenario: a unit cube viewed obliquely from outside should
// render only its outward-facing edges, with the three edges hidden
// behind the solid body absent from the final output.
func TestRenderCubeHidesBackFacingEdges(t *testing.T) {
	cube := shapes.NewRectPrism(core.NewPoint3[core.World](0, 0, 0), core.NewPoint3[core.World](1, 1, 1))
	s := New([]core.Shape{cube}, nil)

	cam := camera.LookAt(
		core.NewPoint3[core.World](4, 3, 2),
		core.NewVec3[core.World](0, 0, 0),
		core.NewVec3[core.World](0, 0, 1),
	).Perspective(50, 1024, 1024, 0.1, 10)

	sc := s.AttachCamera(cam)
	if sc.SegmentCount() == 0 {
		t.Fatalf("expected attach_camera to produce chopped segments")
	}

	rendered := sc.Render()
	if len(rendered) == 0 {
		t.Fatalf("expected render to produce visible segments")
	}
	if len(rendered) > 12 {
		t.Errorf("expected at most 12 simplified segments (one cube has 12 edges), got %d", len(rendered))
	}
	if len(rendered) >= sc.SegmentCount() {
		t.Errorf("expected occlusion + simplification to shrink the chopped segment count: chopped=%d rendered=%d",
			sc.SegmentCount(), len(rendered))
	}

	for _, seg := range rendered {
		if seg.P1 == seg.P2 {
			t.Errorf("rendered a degenerate zero-length segment: %v", seg)
		}
	}
}

// TestRenderEmptySceneProducesNoSegments exercises the empty-result
// path required when a scene has no shapes at all.
func TestRenderEmptySceneProducesNoSegments(t *testing.T) {
	s := New(nil, nil)
	cam := camera.LookAt(
		core.NewPoint3[core.World](4, 3, 2),
		core.NewVec3[core.World](0, 0, 0),
		core.NewVec3[core.World](0, 0, 1),
	).Perspective(50, 1024, 1024, 0.1, 10)

	rendered := s.AttachCamera(cam).Render()
	if len(rendered) != 0 {
		t.Errorf("expected no segments for an empty scene, got %d", len(rendered))
	}
}
