package geometry

import (
	"fmt"
	"sort"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// BVHNode is a node in the bounding volume hierarchy. Internal nodes hold
// two child shapes (which may themselves be BVH nodes); a single-element
// range produces a degenerate leaf where both children alias that element.
type BVHNode struct {
	left  core.Shape
	right core.Shape
	box   core.AABB
}

// NewBVH builds a BVH over the shapes of a list. Construction sorts a copy
// of the list, so the input is left untouched. The rng drives the per-node
// split-axis choice, which decorrelates axis-aligned scene layouts from a
// fixed split order. Any shape that cannot report a bounding box makes
// construction fail: that signals a malformed primitive and is unrecoverable.
func NewBVH(list *HittableList, rng *core.RNG) (*BVHNode, error) {
	if len(list.Objects) == 0 {
		return nil, fmt.Errorf("bvh: cannot build over an empty list")
	}

	objects := make([]core.Shape, len(list.Objects))
	copy(objects, list.Objects)

	for _, object := range objects {
		if _, ok := object.BoundingBox(); !ok {
			return nil, fmt.Errorf("bvh: shape without bounding box")
		}
	}

	return buildBVH(objects, 0, len(objects), rng)
}

// buildBVH recursively builds the hierarchy over objects[start:end).
// All shapes are known to have bounding boxes by this point.
func buildBVH(objects []core.Shape, start, end int, rng *core.RNG) (*BVHNode, error) {
	// Sort key: bounding-box minimum coordinate on a random axis. Box-minimum
	// is the contract here, not centroid.
	axis := rng.IntRange(0, 2)
	less := func(a, b core.Shape) bool {
		boxA, _ := a.BoundingBox()
		boxB, _ := b.BoundingBox()
		return boxA.Min.Axis(axis) < boxB.Min.Axis(axis)
	}

	node := &BVHNode{}
	span := end - start

	switch {
	case span == 1:
		node.left = objects[start]
		node.right = objects[start]
	case span == 2:
		if less(objects[start], objects[start+1]) {
			node.left = objects[start]
			node.right = objects[start+1]
		} else {
			node.left = objects[start+1]
			node.right = objects[start]
		}
	default:
		subrange := objects[start:end]
		sort.Slice(subrange, func(i, j int) bool {
			return less(subrange[i], subrange[j])
		})

		mid := start + span/2
		var err error
		if node.left, err = buildBVH(objects, start, mid, rng); err != nil {
			return nil, err
		}
		if node.right, err = buildBVH(objects, mid, end, rng); err != nil {
			return nil, err
		}
	}

	boxLeft, okLeft := node.left.BoundingBox()
	boxRight, okRight := node.right.BoundingBox()
	if !okLeft || !okRight {
		return nil, fmt.Errorf("bvh: child without bounding box")
	}
	node.box = boxLeft.Union(boxRight)

	return node, nil
}

// Hit tests the ray against this subtree. A miss on the node's own box
// prunes the whole subtree in one test. Both children are always queried:
// the right query's upper bound shrinks to the left hit's t, so a right
// result can never be farther than the left one and wins when present.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(ray, tMin, tMax)

	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	rightHit, hitRight := n.right.Hit(ray, tMin, rightMax)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached union of the children's boxes
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.box, true
}
