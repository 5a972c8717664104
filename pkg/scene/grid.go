package scene

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/geometry"
	"github.com/tracelab/go-pathtracer/pkg/material"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
)

// NewGridScene creates a 4x4x4 grid of small spheres with a random mix of
// gold metal, matte red, emissive and glass materials, seen from above.
// This scene exercises every material variant in one render.
func NewGridScene(aspectRatio float64, rng *core.RNG) *Scene {
	s := NewScene(renderer.CameraConfig{
		LookFrom:    core.NewVec3(1, 5.0, 1.0),
		LookAt:      core.NewVec3(0, 0.1, -2.5),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: aspectRatio,
	})

	ground := material.NewLambertian(core.NewVec3(0.1, 0.1, 0.1))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05)
	red := material.NewLambertian(core.NewVec3(0.9, 0.1, 0.1))
	emission := material.NewEmissive(core.NewVec3(4.0, 4.0, 2.0), 1.3)

	s.Objects.Add(geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, ground))

	const (
		gridSize     = 4
		sphereRadius = 0.1
		spacing      = 0.26
	)
	centerOffset := core.NewVec3(-0.5, 0.0, -2.5)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			for k := 0; k < gridSize; k++ {
				pos := centerOffset.Add(core.NewVec3(
					float64(i)*spacing,
					float64(j)*spacing,
					float64(k)*spacing,
				))

				var mat core.Material
				choose := rng.Float64()
				switch {
				case choose < 0.2:
					mat = gold
				case choose < 0.5:
					mat = red
				case choose < 0.55:
					mat = emission
				default:
					mat = glass
				}

				s.Objects.Add(geometry.NewSphere(pos, sphereRadius, mat))
			}
		}
	}

	return s
}
