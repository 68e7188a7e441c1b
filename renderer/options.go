package renderer

import "github.com/achilleasa/lumen/tracer/cpu"

type Options struct {
	// Number of cpu tracers. Zero selects one per available cpu.
	Workers int

	// Base seed; tracer i seeds its generator with Seed+i.
	Seed int64

	// Antialiasing sampler settings shared by all tracers.
	Sampler cpu.SamplerOptions

	// Log render progress every ProgressStep percent. Zero disables
	// progress reporting.
	ProgressStep float64
}
