package material

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Color      core.Vec3 // Emitted light color
	Brightness float64   // Scalar intensity multiplier
}

// NewEmissive creates a new emissive material
func NewEmissive(color core.Vec3, brightness float64) *Emissive {
	return &Emissive{Color: color, Brightness: brightness}
}

// Scatter implements the Material interface for emissive materials.
// Emissive surfaces absorb all incoming rays; they only emit.
func (e *Emissive) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the emitted radiance, constant regardless of incidence
func (e *Emissive) Emitted() core.Vec3 {
	return e.Color.Multiply(e.Brightness)
}
