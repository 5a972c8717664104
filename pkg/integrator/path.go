package integrator

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Epsilon below which intersections are ignored, so a bounced ray cannot
// immediately re-hit the surface it just left due to floating-point reentry
const tMinEpsilon = 0.001

// PathIntegrator accumulates emitted and attenuated radiance along a bounce
// chain. The loop is written iteratively on purpose: accumulator state is
// carried across iterations instead of call frames.
type PathIntegrator struct {
	MaxDepth  int       // Maximum number of bounces per path
	SkyTop    core.Vec3 // Zenith color of the background gradient
	SkyBottom core.Vec3 // Horizon color of the background gradient
}

// NewPathIntegrator creates an integrator with the default sky gradient
func NewPathIntegrator(maxDepth int) *PathIntegrator {
	return &PathIntegrator{
		MaxDepth:  maxDepth,
		SkyTop:    core.NewVec3(0.5, 0.7, 1.0),
		SkyBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor computes the radiance carried back along a camera ray.
// Exhausting MaxDepth without terminating returns black, silently dropping
// the path's remaining energy; that bias is accepted here in exchange for a
// bounded loop.
func (pi *PathIntegrator) RayColor(ray core.Ray, world core.Shape, rng *core.RNG) core.Vec3 {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	emission := core.NewVec3(0.0, 0.0, 0.0)

	for bounce := 0; bounce < pi.MaxDepth; bounce++ {
		hit, isHit := world.Hit(ray, tMinEpsilon, math.Inf(1))
		if !isHit {
			return emission.Add(attenuation.MultiplyVec(pi.skyGradient(ray)))
		}

		// Light emitted by this surface is dimmed by every surface the path
		// already bounced off
		if emitter, isEmitter := hit.Material.(core.Emitter); isEmitter {
			emission = emission.Add(attenuation.MultiplyVec(emitter.Emitted()))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, rng)
		if !didScatter {
			// Absorbed: the path ends with whatever was emitted along it
			return emission
		}

		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.NewVec3(0, 0, 0)
}

// skyGradient blends horizon to zenith color by the ray's vertical direction
func (pi *PathIntegrator) skyGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return pi.SkyBottom.Multiply(1.0 - t).Add(pi.SkyTop.Multiply(t))
}
