// Package svgwriter renders canvas-space line segments as a minimal
// SVG document suitable for pen plotters. It depends only on the
// standard library: an SVG <line> element is nothing more than a
// handful of attributes, and encoding/xml or a template engine would
// add indirection without adding capability over a direct
// fmt.Fprintf writer, which is how the rest of the ecosystem's
// line-art exporters do it too.
package svgwriter

import (
	"fmt"
	"io"

	"github.com/goplotter/hlines/pkg/core"
)

// Options controls the appearance of the written document.
type Options struct {
	Stroke      string
	StrokeWidth float64
}

// DefaultOptions returns the conventional thin black stroke used for
// plotter preview output.
func DefaultOptions() Options {
	return Options{Stroke: "black", StrokeWidth: 1.0}
}

// Write emits an SVG document containing one <line> per segment. The
// segments are expected in canvas space (x in [0,width], y increasing
// upward); this function flips y so that SVG's downward-increasing
// convention matches the renderer's upward-increasing one, since that
// flip belongs at the presentation layer rather than in the core.
func Write(w io.Writer, segments []core.LineSegment[core.Canvas], width, height float64, opts Options) error {
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		width, height, width, height); err != nil {
		return err
	}

	for _, seg := range segments {
		_, err := fmt.Fprintf(w,
			"  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"%g\" />\n",
			seg.P1.X, height-seg.P1.Y, seg.P2.X, height-seg.P2.Y, opts.Stroke, opts.StrokeWidth)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "</svg>\n")
	return err
}
