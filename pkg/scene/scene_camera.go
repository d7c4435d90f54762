package scene

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/goplotter/hlines/pkg/camera"
	"github.com/goplotter/hlines/pkg/core"
	"github.com/goplotter/hlines/pkg/simplify"
)

// simplifyEpsilon is the tolerance used when collapsing collinear
// chunks during render, distinct from (and tighter than) the
// visibility epsilon used when deciding occlusion.
const simplifyEpsilon = 1e-6

// SceneCamera is an ephemeral binding of a Scene to a Camera. Creating
// one eagerly extracts every shape's edges and chops them into
// roughly pixel-sized world-space sub-segments, grouped by the shape
// that produced them so that simplification never merges across shape
// boundaries.
type SceneCamera struct {
	scene  *Scene
	camera camera.Camera
	groups [][]core.LineSegment[core.World]
	count  int
}

// AttachCamera extracts and chops every shape's edges against cam, in
// parallel across shapes, and caches the result.
func (s *Scene) AttachCamera(cam camera.Camera) *SceneCamera {
	shapes := s.shapes
	groups := make([][]core.LineSegment[core.World], len(shapes))

	g, _ := errgroup.WithContext(context.Background())
	for i, shape := range shapes {
		i, shape := i, shape
		g.Go(func() error {
			var chopped []core.LineSegment[core.World]
			for _, path := range shape.Paths() {
				chopped = append(chopped, cam.ChopSegment(path)...)
			}
			groups[i] = chopped
			return nil
		})
	}
	_ = g.Wait()

	count := 0
	for _, group := range groups {
		count += len(group)
	}
	s.logger.Printf("scene: attached camera, %d shapes produced %d chopped segments", len(shapes), count)

	return &SceneCamera{scene: s, camera: cam, groups: groups, count: count}
}

// SegmentCount returns the total number of chopped world-space
// sub-segments cached across every shape, for diagnostics.
func (sc *SceneCamera) SegmentCount() int {
	return sc.count
}

// Render filters each shape's chopped segments by visibility,
// simplifies the collinear runs that survive, and projects the result
// into canvas space. Every stage happens per-group (per-shape) in
// parallel; filtering and simplification must happen before
// projection so that simplification operates on world-space geometry
// and can merge chunks that only became contiguous once an occluded
// neighbour was dropped.
func (sc *SceneCamera) Render() []core.LineSegment[core.Canvas] {
	transform := sc.camera.FinalTransform()

	results := make([][]core.LineSegment[core.Canvas], len(sc.groups))

	g, _ := errgroup.WithContext(context.Background())
	for i, group := range sc.groups {
		i, group := i, group
		g.Go(func() error {
			results[i] = sc.renderGroup(group, transform)
			return nil
		})
	}
	_ = g.Wait()

	out := []core.LineSegment[core.Canvas]{}
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func (sc *SceneCamera) renderGroup(
	group []core.LineSegment[core.World],
	transform core.Transform[core.World, core.Canvas],
) []core.LineSegment[core.Canvas] {
	visible := make([]core.LineSegment[core.World], 0, len(group))
	for _, seg := range group {
		if seg.P1.Subtract(sc.camera.Eye).Length() > sc.camera.ZFar {
			continue
		}
		midpoint := seg.P1.Lerp(seg.P2, 0.5)
		if sc.scene.Visible(sc.camera.Eye, midpoint) {
			visible = append(visible, seg)
		}
	}

	simplified := simplify.Segments(visible, simplifyEpsilon)

	projected := make([]core.LineSegment[core.Canvas], 0, len(simplified))
	for _, seg := range simplified {
		if p, ok := transform.Segment(seg); ok {
			projected = append(projected, p)
		}
	}
	return projected
}
