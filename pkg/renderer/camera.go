package renderer

import (
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// CameraConfig holds the parameters that position and aim a camera
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // World up direction
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// Camera generates rays through a sampling plane one focal length in front
// of the camera, derived from an orthonormal look-from/look-at basis
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay generates a ray through normalized screen coordinates (s, t),
// where (0,0) is the lower-left corner and (1,1) the upper-right
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
