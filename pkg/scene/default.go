package scene

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/geometry"
	"github.com/tracelab/go-pathtracer/pkg/material"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates the default still life: five matte spheres over a
// large sand-colored ground sphere, lit only by the sky gradient
func NewDefaultScene(aspectRatio float64) *Scene {
	s := NewScene(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: aspectRatio,
	})

	ground := material.NewLambertian(core.NewVec3(0.92, 0.86, 0.70))
	red := material.NewLambertian(core.NewVec3(0.62, 0.12, 0.09))
	white := material.NewLambertian(core.NewVec3(0.96, 0.94, 0.85))
	gold := material.NewLambertian(core.NewVec3(0.70, 0.50, 0.20))
	blue := material.NewLambertian(core.NewVec3(0.27, 0.36, 0.36))

	s.Objects.Add(
		geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, ground),
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.5), 0.5, red),
		geometry.NewSphere(core.NewVec3(-0.6, -0.3, -0.8), 0.2, white),
		geometry.NewSphere(core.NewVec3(0.8, -0.2, -1.0), 0.3, gold),
		geometry.NewSphere(core.NewVec3(-1.5, 0.2, -2.5), 0.7, blue),
	)

	return s
}
