package core

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection in [tMin, tMax], if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	// BoundingBox returns the shape's bounds; false means the shape cannot
	// report one, which makes it unusable inside a BVH
	BoundingBox() (AABB, bool)
}

// Material interface for surfaces that can scatter rays
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, rng *RNG) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted() Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always oriented against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
