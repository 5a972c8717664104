package renderer

import (
	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Framebuffer is a fixed-size grid of averaged linear color, one cell per
// pixel, stored row-major with the top row first. During rendering exactly
// one worker ever writes a given cell, so no synchronization guards it.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color at pixel (x, y), with y=0 the top row
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// At returns the color at pixel (x, y), with y=0 the top row
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}
