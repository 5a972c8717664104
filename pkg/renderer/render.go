package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

// Integrator computes the radiance carried back along a single camera ray
type Integrator interface {
	RayColor(ray core.Ray, world core.Shape, rng *core.RNG) core.Vec3
}

// Config contains rendering configuration
type Config struct {
	Width           int    // Image width in pixels
	Height          int    // Image height in pixels
	SamplesPerPixel int    // Number of jittered rays per pixel
	Workers         int    // Worker goroutines; <= 0 means one per CPU
	Seed            uint32 // Base RNG seed; row j is sampled with seed Seed + j
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		Workers:         0,
		Seed:            core.DefaultSeed,
	}
}

// Renderer drives the parallel sampling loop. The scene and camera are
// read-only once rendering starts, which is what licenses lock-free reads
// from every worker.
type Renderer struct {
	world      core.Shape
	camera     *Camera
	integrator Integrator
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer over a prepared (immutable) scene root
func NewRenderer(world core.Shape, camera *Camera, integrator Integrator, config Config, logger core.Logger) *Renderer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.SilentLogger{}
	}
	return &Renderer{
		world:      world,
		camera:     camera,
		integrator: integrator,
		config:     config,
		logger:     logger,
	}
}

// Render traces the whole image and returns the framebuffer. Work is
// distributed dynamically by image row: workers pull row indices from a
// shared channel, which balances the variable per-pixel cost of deep bounce
// chains. Each row gets its own RNG seeded Seed + rowIndex, exclusively
// owned by whichever worker pulls the row; that keeps streams independent
// without shared state and makes the image a pure function of the seed,
// regardless of worker count or scheduling. Rows are written by exactly one
// worker, so the loop needs no locks; the only synchronization is the
// final join.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	cfg := r.config
	fb := NewFramebuffer(cfg.Width, cfg.Height)

	start := time.Now()
	rows := make(chan int)
	var wg sync.WaitGroup

	for workerID := 0; workerID < cfg.Workers; workerID++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				r.renderRow(fb, j, core.NewRNG(cfg.Seed+uint32(j)))
			}
		}()
	}

	for j := 0; j < cfg.Height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		TotalPixels:  cfg.Width * cfg.Height,
		TotalSamples: cfg.Width * cfg.Height * cfg.SamplesPerPixel,
		Workers:      cfg.Workers,
		Elapsed:      time.Since(start),
	}
	r.logger.Printf("rendered %d pixels (%d samples) on %d workers in %v",
		stats.TotalPixels, stats.TotalSamples, stats.Workers, stats.Elapsed)

	return fb, stats
}

// renderRow samples every pixel of row j (counted from the bottom of the
// image) and stores averaged colors into the framebuffer's flipped row
func (r *Renderer) renderRow(fb *Framebuffer, j int, rng *core.RNG) {
	cfg := r.config
	invSamples := 1.0 / float64(cfg.SamplesPerPixel)

	for i := 0; i < cfg.Width; i++ {
		accum := core.NewVec3(0, 0, 0)

		for s := 0; s < cfg.SamplesPerPixel; s++ {
			u := (float64(i) + rng.Float64()) / float64(cfg.Width-1)
			v := (float64(j) + rng.Float64()) / float64(cfg.Height-1)
			ray := r.camera.GetRay(u, v)
			accum = accum.Add(r.integrator.RayColor(ray, r.world, rng))
		}

		fb.Set(i, cfg.Height-1-j, accum.Multiply(invSamples))
	}
}
