package renderer

import (
	"bytes"
	"image/png"
	"strconv"
	"strings"
	"testing"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

func TestWritePPM_ExactFormat(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(0, 0, 0))
	fb.Set(1, 0, core.NewVec3(1, 1, 1))
	fb.Set(0, 1, core.NewVec3(0.25, 0.25, 0.25))
	fb.Set(1, 1, core.NewVec3(0.5, 0, 1))

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3+4 {
		t.Fatalf("expected 3 header lines + 4 pixel lines, got %d", len(lines))
	}
	if lines[0] != "P3" || lines[1] != "2 2" || lines[2] != "255" {
		t.Errorf("bad header: %q", lines[:3])
	}

	// Gamma-2 curve: 0→0, 1→clamped 0.999→255, 0.25→sqrt 0.5→128
	if lines[3] != "0 0 0" {
		t.Errorf("black pixel: expected \"0 0 0\", got %q", lines[3])
	}
	if lines[4] != "255 255 255" {
		t.Errorf("white pixel: expected \"255 255 255\", got %q", lines[4])
	}
	if lines[5] != "128 128 128" {
		t.Errorf("quarter gray: expected \"128 128 128\", got %q", lines[5])
	}
}

func TestWritePPM_PixelLineCountAndRange(t *testing.T) {
	const width, height = 7, 5
	fb := NewFramebuffer(width, height)
	rng := core.NewRNG(42)
	for i := range fb.Pixels {
		// Include out-of-gamut values to exercise the clamp
		fb.Pixels[i] = core.NewVec3(rng.Float64Range(0, 2), rng.Float64(), rng.Float64())
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	pixelLines := lines[3:]
	if len(pixelLines) != width*height {
		t.Fatalf("expected %d pixel lines, got %d", width*height, len(pixelLines))
	}

	for i, line := range pixelLines {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			t.Fatalf("pixel line %d: expected 3 integers, got %q", i, line)
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				t.Fatalf("pixel line %d: non-integer %q", i, f)
			}
			if v < 0 || v > 255 {
				t.Fatalf("pixel line %d: channel %d out of [0,255]", i, v)
			}
		}
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(2, 1, core.NewVec3(0, 0, 0.25))

	var buf bytes.Buffer
	if err := WritePNG(&buf, fb); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 3 || bounds.Dy() != 2 {
		t.Errorf("expected 3x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	r, _, _, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("expected saturated red at (0,0), got %d", r>>8)
	}
	_, _, b, _ := img.At(2, 1).RGBA()
	if b>>8 != 128 {
		t.Errorf("expected blue 128 at (2,1), got %d", b>>8)
	}
}

func TestFramebuffer_RowMajorTopFirst(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 0, core.NewVec3(1, 2, 3))

	if !fb.Pixels[2].Equals(core.NewVec3(1, 2, 3)) {
		t.Error("pixel (2,0) must land at flat index 2 (top row first)")
	}
	if !fb.At(2, 0).Equals(core.NewVec3(1, 2, 3)) {
		t.Error("At must read back what Set stored")
	}
}
