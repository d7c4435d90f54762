// Command hlines renders a built-in demo scene to an SVG file of
// visible line segments, suitable for a pen plotter.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goplotter/hlines/internal/scenes"
	"github.com/goplotter/hlines/pkg/camera"
	"github.com/goplotter/hlines/pkg/core"
	"github.com/goplotter/hlines/pkg/logging"
	"github.com/goplotter/hlines/pkg/scene"
	"github.com/goplotter/hlines/pkg/svgwriter"
)

// Config holds all the configuration needed to render a scene.
type Config struct {
	SceneType string
	Output    string
	Width     int
	Height    int
	FovY      float64
	ZNear     float64
	ZFar      float64
	EyeX      float64
	EyeY      float64
	EyeZ      float64
	Help      bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	logger, err := logging.NewZapLogger()
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	shapeList, err := scenes.Build(config.SceneType)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	sceneObj := scene.New(shapeList, logger)
	cam := camera.LookAt(
		core.NewPoint3[core.World](config.EyeX, config.EyeY, config.EyeZ),
		core.NewVec3[core.World](0, 0, 0),
		core.NewVec3[core.World](0, 0, 1),
	).Perspective(config.FovY, float64(config.Width), float64(config.Height), config.ZNear, config.ZFar)

	rendered := sceneObj.AttachCamera(cam).Render()
	logger.Printf("hlines: rendered %d canvas segments for scene %q", len(rendered), config.SceneType)

	if err := writeOutput(config.Output, rendered, float64(config.Width), float64(config.Height)); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d segments to %s\n", len(rendered), config.Output)
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "cube", "Scene to render: 'cube' or 'cubegrid'")
	flag.StringVar(&config.Output, "output", "output/render.svg", "Output SVG file path")
	flag.IntVar(&config.Width, "width", 1024, "Canvas width in pixels")
	flag.IntVar(&config.Height, "height", 1024, "Canvas height in pixels")
	flag.Float64Var(&config.FovY, "fovy", 50, "Vertical field of view in degrees")
	flag.Float64Var(&config.ZNear, "znear", 0.1, "Near clipping distance")
	flag.Float64Var(&config.ZFar, "zfar", 100, "Far clipping distance")
	flag.Float64Var(&config.EyeX, "eye-x", 4, "Eye position X")
	flag.Float64Var(&config.EyeY, "eye-y", 3, "Eye position Y")
	flag.Float64Var(&config.EyeZ, "eye-z", 2, "Eye position Z")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("hlines - hidden-line renderer")
	fmt.Println("Usage: hlines [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  cube      - a single unit cube")
	fmt.Println("  cubegrid  - a grid of cubes, exercises the BVH")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  hlines --scene=cube --output=output/cube.svg")
	fmt.Println("  hlines --scene=cubegrid --eye-x=20 --eye-y=15 --eye-z=10")
}

// writeOutput creates the output directory if needed and writes the
// rendered segments as an SVG document.
func writeOutput(path string, segments []core.LineSegment[core.Canvas], width, height float64) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return svgwriter.Write(f, segments, width, height, svgwriter.DefaultOptions())
}
