package material

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base reflective color
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The scatter direction is the surface normal plus a uniform unit vector,
// which biases rays toward the normal. When the sum cancels to near zero
// the normal itself is used, avoiding a degenerate ray.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(rng))

	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
