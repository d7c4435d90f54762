// Package bvh builds and traverses a median-split bounding volume
// hierarchy over world-space shapes. The split search and the
// interval-clipped traversal are both ported line-for-line in spirit
// from a bounding-volume hierarchy that partitions leaves by the
// median of their children's bounding-box coordinates on whichever
// axis yields the most balanced split, falling back to a single leaf
// when no axis does better than a 0.85 imbalance threshold.
package bvh

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/goplotter/hlines/pkg/core"
)

const leafThreshold = 8

// splitScoreFloor sets the acceptance threshold for a split: its
// partition score (the larger of the two child sizes) must be strictly
// below floor(0.85 * the leaf's shape count). This mirrors the ported reference's tolerance for a somewhat imbalanced
// split over not splitting at all.
const splitScoreFloor = 0.85

// boundedShape pairs a shape with its precomputed bounding box so the
// split search never calls BoundingBox twice for the same shape.
type boundedShape struct {
	shape core.Shape
	aabb  core.AABB[core.World]
}

// node is either a leaf (no children; shapes holds its contents, and
// may be empty) or a parent (left/right set).
type node struct {
	shapes      []boundedShape
	axis        core.Axis
	splitPoint  float64
	left, right *node
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// BVH is a bounding volume hierarchy over a fixed set of world-space
// shapes, plus a linear bucket of shapes with no finite bounding box
// (infinite planes and the like) that must be tested by brute force.
type BVH struct {
	aabb      core.AABB[core.World]
	root      *node
	unbounded []core.Shape
	logger    core.Logger
}

// New builds a BVH over shapes, splitting parent nodes in parallel.
// Shapes reporting no bounding box are set aside into an unbounded
// bucket tested by linear scan at query time.
func New(shapes []core.Shape, logger core.Logger) *BVH {
	if logger == nil {
		logger = core.NopLogger{}
	}
	logger.Printf("bvh: building hierarchy for %d shapes", len(shapes))

	bounded := make([]boundedShape, 0, len(shapes))
	var unbounded []core.Shape
	for _, s := range shapes {
		if box, ok := s.BoundingBox(); ok {
			bounded = append(bounded, boundedShape{shape: s, aabb: box})
		} else {
			unbounded = append(unbounded, s)
		}
	}

	aabb := unionBoundingBoxes(bounded)

	var root *node
	depth := 0
	if len(shapes) > 0 {
		root, depth = buildNode(bounded)
	}
	logger.Printf("bvh: built hierarchy with depth %d, %d unbounded shapes", depth, len(unbounded))

	return &BVH{aabb: aabb, root: root, unbounded: unbounded, logger: logger}
}

func unionBoundingBoxes(shapes []boundedShape) core.AABB[core.World] {
	box := core.EmptyAABB[core.World]()
	for _, s := range shapes {
		box = box.Union(s.aabb)
	}
	return box
}

// parallelBuildFloor is the shape count above which left and right
// subtrees are split on separate goroutines instead of sequentially;
// below it the fork-join overhead outweighs the benefit.
const parallelBuildFloor = 64

// buildNode recursively splits shapes into a node tree, returning the
// resulting subtree and its depth.
func buildNode(shapes []boundedShape) (*node, int) {
	n := &node{shapes: shapes}
	if len(shapes) < leafThreshold {
		return n, 1
	}

	axis, point, ok := findBestSplit(shapes)
	if !ok {
		return n, 1
	}

	left, right := partitionShapes(axis, point, shapes)

	var leftNode, rightNode *node
	var leftDepth, rightDepth int

	if len(shapes) > parallelBuildFloor {
		g, _ := errgroup.WithContext(context.Background())
		g.Go(func() error {
			leftNode, leftDepth = buildNode(left)
			return nil
		})
		g.Go(func() error {
			rightNode, rightDepth = buildNode(right)
			return nil
		})
		_ = g.Wait()
	} else {
		leftNode, leftDepth = buildNode(left)
		rightNode, rightDepth = buildNode(right)
	}

	depth := leftDepth
	if rightDepth > depth {
		depth = rightDepth
	}

	return &node{axis: axis, splitPoint: point, left: leftNode, right: rightNode}, depth + 1
}

// findBestSplit searches the median of each axis's min/max coordinates
// for the split that most evenly divides shapes, accepting a split
// only if its worse side is smaller than splitScoreFloor of the total.
func findBestSplit(shapes []boundedShape) (core.Axis, float64, bool) {
	xs := make([]float64, 0, len(shapes)*2)
	ys := make([]float64, 0, len(shapes)*2)
	zs := make([]float64, 0, len(shapes)*2)
	for _, s := range shapes {
		xs = append(xs, s.aabb.Min.X, s.aabb.Max.X)
		ys = append(ys, s.aabb.Min.Y, s.aabb.Max.Y)
		zs = append(zs, s.aabb.Min.Z, s.aabb.Max.Z)
	}
	sort.Float64s(xs)
	sort.Float64s(ys)
	sort.Float64s(zs)

	mx, my, mz := median(xs), median(ys), median(zs)

	best := uint64(float64(len(shapes)) * splitScoreFloor)
	found := false
	var bestAxis core.Axis
	var bestPoint float64

	if score := partitionScore(core.AxisX, mx, shapes); score < best {
		best, bestAxis, bestPoint, found = score, core.AxisX, mx, true
	}
	if score := partitionScore(core.AxisY, my, shapes); score < best {
		best, bestAxis, bestPoint, found = score, core.AxisY, my, true
	}
	if score := partitionScore(core.AxisZ, mz, shapes); score < best {
		best, bestAxis, bestPoint, found = score, core.AxisZ, mz, true
	}
	return bestAxis, bestPoint, found
}

// partitionScore returns the size of the larger side a split on axis
// at point would produce, counting shapes straddling the split on
// both sides.
func partitionScore(axis core.Axis, point float64, shapes []boundedShape) uint64 {
	var left, right uint64
	for _, s := range shapes {
		l, r := straddles(axis, s.aabb, point)
		if l {
			left++
		}
		if r {
			right++
		}
	}
	if left >= right {
		return left
	}
	return right
}

func straddles(axis core.Axis, box core.AABB[core.World], point float64) (left, right bool) {
	min, max := box.Min.Component(axis), box.Max.Component(axis)
	return min <= point, max >= point
}

// partitionShapes duplicates straddling shapes into both children, as
// required by a median split over bounding boxes rather than points.
func partitionShapes(axis core.Axis, point float64, shapes []boundedShape) ([]boundedShape, []boundedShape) {
	left := make([]boundedShape, 0, len(shapes))
	right := make([]boundedShape, 0, len(shapes))
	for _, s := range shapes {
		l, r := straddles(axis, s.aabb, point)
		if l {
			left = append(left, s)
		}
		if r {
			right = append(right, s)
		}
	}
	return left, right
}

func median(sorted []float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return 0
	case n%2 == 1:
		return sorted[n/2]
	default:
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
}

// Intersects finds the closest hit along ray among every shape in the
// hierarchy, merging the bounded-tree result with a linear scan of
// the unbounded bucket.
func (b *BVH) Intersects(ray core.Ray[core.World]) (core.HitData[core.World], bool) {
	bestHit, bestOK := b.intersectsBounded(ray)
	for _, shape := range b.unbounded {
		if hit, ok := shape.HitBy(ray, 0, math.Inf(1)); ok {
			if !bestOK || hit.DistTo < bestHit.DistTo {
				bestHit, bestOK = hit, true
			}
		}
	}
	return bestHit, bestOK
}

func (b *BVH) intersectsBounded(ray core.Ray[core.World]) (core.HitData[core.World], bool) {
	if b.root == nil {
		return core.HitData[core.World]{}, false
	}
	tmin, tmax := boundingBoxIntersects(b.aabb, ray)
	if tmax < tmin || tmax <= 0 {
		return core.HitData[core.World]{}, false
	}
	return intersectsNode(b.root, ray, tmin, tmax)
}

// boundingBoxIntersects computes the slab entry/exit distances for
// ray against box without clamping to a [0, +Inf) range, matching the
// traversal's own min/max tracking.
func boundingBoxIntersects(box core.AABB[core.World], ray core.Ray[core.World]) (float64, float64) {
	v1 := componentDiv(box.Min.Subtract(ray.Origin), ray.Dir)
	v2 := componentDiv(box.Max.Subtract(ray.Origin), ray.Dir)

	ov1 := v1.Min(v2)
	ov2 := v1.Max(v2)

	t1 := math.Max(math.Max(ov1.X, ov1.Y), ov1.Z)
	t2 := math.Min(math.Min(ov2.X, ov2.Y), ov2.Z)
	return t1, t2
}

func componentDiv(v core.Vec3[core.World], by core.Vec3[core.World]) core.Vec3[core.World] {
	return core.Vec3[core.World]{X: v.X / by.X, Y: v.Y / by.Y, Z: v.Z / by.Z}
}

func intersectsNode(n *node, ray core.Ray[core.World], tmin, tmax float64) (core.HitData[core.World], bool) {
	if n.isLeaf() {
		return intersectsLeaf(n.shapes, ray)
	}
	return intersectsParent(n, ray, tmin, tmax)
}

func intersectsLeaf(shapes []boundedShape, ray core.Ray[core.World]) (core.HitData[core.World], bool) {
	var best core.HitData[core.World]
	found := false
	for _, s := range shapes {
		if hit, ok := s.shape.HitBy(ray, 0, math.Inf(1)); ok {
			if !found || hit.DistTo < best.DistTo {
				best, found = hit, true
			}
		}
	}
	return best, found
}

// intersectsParent implements the split-then-clipped-interval descent:
// it decides which child the ray enters first, intersects that child
// against [tmin, tsplit], and only visits the second child over the
// tightened interval [tsplit, min(tmax, closest hit so far)].
func intersectsParent(n *node, ray core.Ray[core.World], tmin, tmax float64) (core.HitData[core.World], bool) {
	rp := ray.Origin.Component(n.axis)
	rd := ray.Dir.Component(n.axis)

	tsplit := (n.splitPoint - rp) / rd
	leftFirst := rp < n.splitPoint || (rp == n.splitPoint && rd <= 0)

	first, second := n.left, n.right
	if !leftFirst {
		first, second = n.right, n.left
	}

	if tsplit > tmax || tsplit <= 0 {
		return intersectsNode(first, ray, tmin, tmax)
	}
	if tsplit < tmin {
		return intersectsNode(second, ray, tmin, tmax)
	}

	h1, h1ok := intersectsNode(first, ray, tmin, tsplit)
	if h1ok && h1.DistTo <= tsplit {
		return h1, true
	}

	h1t := math.MaxFloat64
	if h1ok {
		h1t = h1.DistTo
	}

	h2, h2ok := intersectsNode(second, ray, tsplit, math.Min(tmax, h1t))
	h2t := math.MaxFloat64
	if h2ok {
		h2t = h2.DistTo
	}

	if h1t < h2t {
		return h1, h1ok
	}
	return h2, h2ok
}
