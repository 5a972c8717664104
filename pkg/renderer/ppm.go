package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// WritePPM encodes the framebuffer as plain-text PPM (P3): a "P3" header
// line, a "<width> <height>" line, a "255" line, then one line per pixel of
// three space-separated integers, row-major with the top row first. The
// textual format is exact, for consumers that compare byte-for-byte.
func WritePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}

	for _, pixel := range fb.Pixels {
		ir, ig, ib := quantize(pixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", ir, ig, ib); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WritePNG encodes the framebuffer as a PNG image
func WritePNG(w io.Writer, fb *Framebuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			ir, ig, ib := quantize(fb.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: uint8(ir), G: uint8(ig), B: uint8(ib), A: 255})
		}
	}
	return png.Encode(w, img)
}

// quantize applies the gamma-2 tone curve and maps linear color to 8-bit
// channels. The clamp to [0, 0.999] before the 256 scale keeps the result
// in [0, 255].
func quantize(c core.Vec3) (int, int, int) {
	r := math.Sqrt(c.X)
	g := math.Sqrt(c.Y)
	b := math.Sqrt(c.Z)

	ir := int(256 * clamp(r, 0.0, 0.999))
	ig := int(256 * clamp(g, 0.0, 0.999))
	ib := int(256 * clamp(b, 0.0, 0.999))
	return ir, ig, ib
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
