package cpu

import (
	"math/rand"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/tracer/cpu/integrator"
	"github.com/achilleasa/lumen/types"
)

// Options for the antialiasing sampler.
type SamplerOptions struct {
	// Stop sampling a pixel once its running average moves by less than
	// this amount between consecutive samples. Zero disables early exit.
	Converge float64

	// Samples taken before convergence is checked.
	MinSamples uint32
}

// Estimate the color of pixel (x, y) by averaging cam.AA jittered camera
// samples.
func SamplePixel(sc *scene.Scene, cam *scene.Camera, rng *rand.Rand, x, y uint32, opts SamplerOptions) types.Vec3 {
	samples := cam.AA
	if samples == 0 {
		samples = 1
	}

	var acc, avg types.Vec3
	var taken uint32
	for taken < samples {
		ray := cam.MakeRay(float64(x)+rng.Float64(), float64(y)+rng.Float64())
		acc = acc.Add(integrator.Radiance(sc, ray, cam.Bounces, cam.Branch, rng))
		taken++

		next := acc.Div(float64(taken))
		if opts.Converge > 0 && taken > opts.MinSamples && taken > 1 &&
			next.Sub(avg).Abs().MaxComponent() < opts.Converge {
			return next
		}
		avg = next
	}

	return avg
}
