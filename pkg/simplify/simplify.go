// Package simplify collapses maximal runs of collinear, endpoint-
// sharing line segments into single segments, in a single streaming
// pass over an already-ordered list.
package simplify

import (
	"github.com/goplotter/hlines/pkg/core"
)

// Segments collapses maximal runs of collinear, endpoint-sharing
// segments sharing the same tag into single segments. Segments from
// different shapes (different tags) are never merged even when
// collinear, and merging never crosses a tag boundary even mid-run.
//
// The algorithm is a single streaming pass: it tracks the segment
// under construction (curr) and whether curr has already been emitted
// (pushed). When a run ends, the finished run is emitted and the
// segment that broke it becomes the new, not yet emitted curr, which
// is emitted after the loop if nothing merges into it. Order matters — callers must not
// reorder segments within a tag's run before calling this.
func Segments[S core.Space](segments []core.LineSegment[S], eps float64) []core.LineSegment[S] {
	var result []core.LineSegment[S]
	var curr core.LineSegment[S]
	haveCurr := false
	pushed := true

	for _, seg := range segments {
		if !haveCurr {
			curr = seg
			haveCurr = true
			pushed = false
			continue
		}

		sameDir := sameDirection(curr, seg, eps)
		sameTag := curr.Tag == seg.Tag

		if sameDir && sameTag {
			switch {
			case curr.P1.ApproxEqual(seg.P1, eps):
				curr = core.LineSegment[S]{P1: seg.P2, P2: curr.P2, Tag: curr.Tag}
			case curr.P1.ApproxEqual(seg.P2, eps):
				curr = core.LineSegment[S]{P1: seg.P1, P2: curr.P2, Tag: curr.Tag}
			case curr.P2.ApproxEqual(seg.P1, eps):
				curr = core.LineSegment[S]{P1: seg.P2, P2: curr.P1, Tag: curr.Tag}
			case curr.P2.ApproxEqual(seg.P2, eps):
				curr = core.LineSegment[S]{P1: seg.P1, P2: curr.P1, Tag: curr.Tag}
			default:
				result = append(result, curr)
				curr = seg
				pushed = false
				continue
			}
			pushed = false
		} else {
			result = append(result, curr)
			curr = seg
			pushed = false
		}
	}

	if haveCurr && !pushed {
		result = append(result, curr)
	}

	return result
}

// sameDirection reports whether a and b point the same way (or
// exactly opposite, since a segment's direction is unsigned for the
// purpose of merging) within eps on each component.
func sameDirection[S core.Space](a, b core.LineSegment[S], eps float64) bool {
	da := a.Vector().Normalize()
	db := b.Vector().Normalize()
	return da.ApproxEqual(db, eps) || da.ApproxEqual(db.Negate(), eps)
}
