// Package scenes builds the shape lists for the built-in demo scenes
// shared by cmd/hlines and web, so both front ends render the same
// set of named scenes.
package scenes

import (
	"fmt"

	"github.com/goplotter/hlines/pkg/core"
	"github.com/goplotter/hlines/pkg/shapes"
)

// Build constructs the shape list for a named demo scene.
func Build(sceneType string) ([]core.Shape, error) {
	switch sceneType {
	case "cube":
		return []core.Shape{
			shapes.NewRectPrism(core.NewPoint3[core.World](0, 0, 0), core.NewPoint3[core.World](1, 1, 1)),
		}, nil
	case "cubegrid":
		return CubeGrid(6), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// CubeGrid lays out an n x n grid of unit cubes spaced two units
// apart, large enough to meaningfully exercise the BVH's split logic.
func CubeGrid(n int) []core.Shape {
	result := make([]core.Shape, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			min := core.NewPoint3[core.World](float64(i)*2, float64(j)*2, 0)
			max := min.Add(core.NewVec3[core.World](1, 1, 1))
			result = append(result, shapes.NewRectPrism(min, max))
		}
	}
	return result
}
