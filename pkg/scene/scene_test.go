package scene

import (
	"math"
	"testing"

	"github.com/goplotter/hlines/pkg/core"
	"github.com/goplotter/hlines/pkg/shapes"
)

func TestSceneIntersectsFindsClosest(t *testing.T) {
	s := New([]core.Shape{
		shapes.NewSphere(core.NewPoint3[core.World](10, 0, 0), 1),
		shapes.NewSphere(core.NewPoint3[core.World](20, 0, 0), 1),
	}, nil)

	ray := core.NewRay(core.NewPoint3[core.World](0, 0, 0), core.NewVec3[core.World](1, 0, 0))
	hit, ok := s.Intersects(ray)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if math.Abs(hit.DistTo-9) > 1e-9 {
		t.Errorf("expected to hit the nearer sphere at distance 9, got %f", hit.DistTo)
	}
}

func TestSceneVisibleWithNoOccluder(t *testing.T) {
	s := New(nil, nil)
	if !s.Visible(core.NewPoint3[core.World](0, 0, 0), core.NewPoint3[core.World](5, 0, 0)) {
		t.Errorf("expected target to be visible with no shapes in the scene")
	}
}

func TestSceneVisibleSelfHitIsNotOcclusion(t *testing.T) {
	sphere := shapes.NewSphere(core.NewPoint3[core.World](5, 0, 0), 1)
	s := New([]core.Shape{sphere}, nil)

	surfacePoint := core.NewPoint3[core.World](4, 0, 0)
	if !s.Visible(core.NewPoint3[core.World](0, 0, 0), surfacePoint) {
		t.Errorf("expected a point on the sphere's own near surface to be visible from the eye")
	}
}

func TestSceneVisibleBlockedByCloserShape(t *testing.T) {
	nearSphere := shapes.NewSphere(core.NewPoint3[core.World](5, 0, 0), 1)
	farTarget := core.NewPoint3[core.World](20, 0, 0)
	s := New([]core.Shape{nearSphere}, nil)

	if s.Visible(core.NewPoint3[core.World](0, 0, 0), farTarget) {
		t.Errorf("expected far target to be occluded by the nearer sphere")
	}
}
