package core

import (
	"math"
	"testing"
)

func TestEmptyAABBUnion(t *testing.T) {
	box := NewAABB(NewPoint3[World](1, 2, 3), NewPoint3[World](4, 5, 6))
	union := EmptyAABB[World]().Union(box)
	if union != box {
		t.Errorf("union with empty box should yield the real box, got %v want %v", union, box)
	}
}

func TestAABBIsValid(t *testing.T) {
	valid := NewAABB(NewPoint3[World](0, 0, 0), NewPoint3[World](1, 1, 1))
	if !valid.IsValid() {
		t.Errorf("expected box to be valid")
	}
	if EmptyAABB[World]().IsValid() {
		t.Errorf("empty box should not be valid")
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(NewPoint3[World](0, 0, 0), NewPoint3[World](1, 5, 2))
	if got := box.LongestAxis(); got != AxisY {
		t.Errorf("LongestAxis: got %v want AxisY", got)
	}
}

func TestAABBHitStraightOn(t *testing.T) {
	box := NewAABB(NewPoint3[World](0, 0, 0), NewPoint3[World](1, 1, 1))
	ray := NewRay(NewPoint3[World](-1, 0.5, 0.5), NewVec3[World](1, 0, 0))

	dist, ok := box.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(dist-1.0) > 1e-9 {
		t.Errorf("dist: got %f want 1.0", dist)
	}
}

func TestAABBMissParallel(t *testing.T) {
	box := NewAABB(NewPoint3[World](0, 0, 0), NewPoint3[World](1, 1, 1))
	ray := NewRay(NewPoint3[World](-1, 5, 0.5), NewVec3[World](1, 0, 0))

	if _, ok := box.Hit(ray, 0, math.Inf(1)); ok {
		t.Errorf("expected miss for ray parallel to and outside box")
	}
}

func TestAABBHitBehindRayMisses(t *testing.T) {
	box := NewAABB(NewPoint3[World](0, 0, 0), NewPoint3[World](1, 1, 1))
	ray := NewRay(NewPoint3[World](2, 0.5, 0.5), NewVec3[World](1, 0, 0))

	if _, ok := box.Hit(ray, 0, math.Inf(1)); ok {
		t.Errorf("expected miss for box behind ray origin")
	}
}
