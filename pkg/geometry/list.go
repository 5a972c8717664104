package geometry

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// HittableList is a flat, unordered collection of shapes. It serves as the
// linear-scan fallback and as the build-time input to the BVH.
type HittableList struct {
	Objects []core.Shape
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends a shape to the list
func (l *HittableList) Add(shapes ...core.Shape) {
	l.Objects = append(l.Objects, shapes...)
}

// Clear removes all shapes from the list
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit scans all members for the closest intersection. Each probe is limited
// by the closest t found so far, so later members can only replace the
// record with a strictly closer hit.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes. It reports failure for
// an empty list or when any member lacks a box.
func (l *HittableList) BoundingBox() (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		memberBox, ok := object.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = memberBox
		} else {
			box = box.Union(memberBox)
		}
	}
	return box, true
}
