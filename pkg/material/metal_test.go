package material

import (
	"testing"

	"github.com/tracelab/go-pathtracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectMirrorReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	rng := core.NewRNG(42)

	// Ray hitting the surface at 45 degrees
	incoming := core.NewVec3(0, -1, -1).Normalize()
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), incoming)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, rng)
	if !didScatter {
		t.Fatal("metal at 45 degrees must scatter")
	}

	// With zero fuzz the scattered direction is the exact reflection
	expected := reflect(incoming, hit.Normal)
	if !scatter.Scattered.Direction.Equals(expected) {
		t.Errorf("expected exact mirror reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("attenuation must equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzPerturbsReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	rng := core.NewRNG(42)

	incoming := core.NewVec3(0, -1, -1).Normalize()
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), incoming)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	mirror := reflect(incoming, hit.Normal)
	perturbed := false
	for i := 0; i < 100; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, rng)
		if !didScatter {
			continue
		}
		// The perturbation stays within the fuzz radius of the mirror direction
		if delta := scatter.Scattered.Direction.Subtract(mirror).Length(); delta > 0.5+1e-12 {
			t.Fatalf("perturbation %f exceeds fuzz radius", delta)
		} else if delta > 0 {
			perturbed = true
		}
	}
	if !perturbed {
		t.Error("fuzz 0.5 never perturbed the reflection")
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	// At grazing incidence with full fuzz, roughly half the perturbed rays
	// end up below the surface and must be absorbed
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	rng := core.NewRNG(42)

	incoming := core.NewVec3(1, 0, -0.01).Normalize()
	rayIn := core.NewRay(core.NewVec3(-1, 0, 1), incoming)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	absorbed := 0
	for i := 0; i < 200; i++ {
		if _, didScatter := metal.Scatter(rayIn, hit, rng); !didScatter {
			absorbed++
		}
	}
	if absorbed == 0 {
		t.Error("grazing fuzzy metal never absorbed a ray")
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v        core.Vec3
		n        core.Vec3
		expected core.Vec3
	}{
		{"Head on", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1)},
		{"45 degrees", core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 0)},
		{"Grazing", core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reflect(tt.v, tt.n); got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("reflect(%v, %v): expected %v, got %v", tt.v, tt.n, tt.expected, got)
			}
		})
	}
}
