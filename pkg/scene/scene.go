package scene

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/geometry"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
)

// Scene holds everything assembled before a render: the primitives, the
// camera parameters, and the background gradient. Assembly is
// single-threaded; once BuildBVH has run, the scene is read-only for the
// rest of the process.
type Scene struct {
	Camera    renderer.CameraConfig
	Objects   *geometry.HittableList
	SkyTop    core.Vec3
	SkyBottom core.Vec3
}

// NewScene creates an empty scene with the default sky gradient
func NewScene(camera renderer.CameraConfig) *Scene {
	return &Scene{
		Camera:    camera,
		Objects:   geometry.NewHittableList(),
		SkyTop:    core.NewVec3(0.5, 0.7, 1.0),
		SkyBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// BuildBVH constructs the acceleration structure over the scene's objects.
// A failure here means a malformed primitive and aborts the render.
func (s *Scene) BuildBVH(rng *core.RNG) (core.Shape, error) {
	return geometry.NewBVH(s.Objects, rng)
}
