package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels  int           // Number of pixels rendered
	TotalSamples int           // Number of primary rays traced
	Workers      int           // Number of workers used
	Elapsed      time.Duration // Wall-clock render time
}
