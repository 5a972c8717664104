package main

import (
	"bufio"
	"bytes"
	"fmt"
	"testing"

	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/integrator"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
	"github.com/tracelab/go-pathtracer/pkg/scene"
)

// Exercises the full pipeline at thumbnail size: scene assembly, BVH build,
// parallel render and PPM encode, then parses the output back
func TestPipeline_DefaultScenePPM(t *testing.T) {
	const (
		width   = 32
		height  = 18
		samples = 4
	)

	sc := scene.NewDefaultScene(float64(width) / float64(height))
	world, err := sc.BuildBVH(core.NewRNG(42))
	if err != nil {
		t.Fatalf("BVH construction failed: %v", err)
	}

	camera := renderer.NewCamera(sc.Camera)
	pathIntegrator := integrator.NewPathIntegrator(10)

	r := renderer.NewRenderer(world, camera, pathIntegrator, renderer.Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		Workers:         4,
		Seed:            42,
	}, nil)

	fb, stats := r.Render()
	if stats.TotalPixels != width*height {
		t.Errorf("expected %d pixels rendered, got %d", width*height, stats.TotalPixels)
	}

	var buf bytes.Buffer
	if err := renderer.WritePPM(&buf, fb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	for _, want := range []string{"P3", fmt.Sprintf("%d %d", width, height), "255"} {
		if !scanner.Scan() {
			t.Fatal("truncated PPM header")
		}
		if scanner.Text() != want {
			t.Fatalf("header line %q, want %q", scanner.Text(), want)
		}
	}

	pixels := 0
	bright := 0
	for scanner.Scan() {
		var r8, g8, b8 int
		if _, err := fmt.Sscanf(scanner.Text(), "%d %d %d", &r8, &g8, &b8); err != nil {
			t.Fatalf("unparseable pixel line %q: %v", scanner.Text(), err)
		}
		for _, v := range []int{r8, g8, b8} {
			if v < 0 || v > 255 {
				t.Fatalf("channel value %d out of range", v)
			}
		}
		if r8+g8+b8 > 0 {
			bright++
		}
		pixels++
	}
	if pixels != width*height {
		t.Errorf("expected %d pixel lines, got %d", width*height, pixels)
	}
	// The sky alone guarantees a mostly non-black image
	if bright < pixels/2 {
		t.Errorf("image implausibly dark: %d of %d pixels non-black", bright, pixels)
	}
}

func TestPipeline_GridSceneRenders(t *testing.T) {
	rng := core.NewRNG(42)
	sc := scene.NewGridScene(16.0/9.0, rng)
	world, err := sc.BuildBVH(rng)
	if err != nil {
		t.Fatalf("BVH construction failed: %v", err)
	}

	camera := renderer.NewCamera(sc.Camera)
	pathIntegrator := integrator.NewPathIntegrator(8)
	pathIntegrator.SkyTop = sc.SkyTop
	pathIntegrator.SkyBottom = sc.SkyBottom

	r := renderer.NewRenderer(world, camera, pathIntegrator, renderer.Config{
		Width:           16,
		Height:          9,
		SamplesPerPixel: 2,
		Workers:         2,
		Seed:            42,
	}, nil)

	fb, _ := r.Render()
	allBlack := true
	for _, p := range fb.Pixels {
		if p.X > 0 || p.Y > 0 || p.Z > 0 {
			allBlack = false
			break
		}
	}
	if allBlack {
		t.Error("grid scene rendered entirely black")
	}
}
