package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goplotter/hlines/pkg/core"
)

func TestWriteOutputCreatesDirectoryAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "render.svg")

	segments := []core.LineSegment[core.Canvas]{
		core.NewLineSegment(core.NewPoint3[core.Canvas](0, 0, 0), core.NewPoint3[core.Canvas](10, 10, 0), 1),
	}

	if err := writeOutput(path, segments, 100, 100); err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	// parseFlags relies on the global flag.CommandLine which is only
	// safe to parse once per process; this just documents the
	// defaults main relies on rather than re-invoking it.
	config := Config{SceneType: "cube", Width: 1024, Height: 1024}
	if config.SceneType != "cube" {
		t.Errorf("expected default scene to be cube")
	}
}
