package integrator

import (
	"math"
	"math/rand"

	"github.com/achilleasa/lumen/types"
)

// Pick a point uniformly inside the unit sphere using rejection sampling.
func RandomInUnitSphere(rng *rand.Rand) types.Vec3 {
	for {
		p := types.XYZ(
			2*rng.Float64()-1,
			2*rng.Float64()-1,
			2*rng.Float64()-1,
		)
		if p.LenSq() < 1.0 {
			return p
		}
	}
}

// Calculate the Schlick Fresnel weight for a surface whose index of
// refraction is derived from its specular parameter. Cosine is the cosine
// of the angle between the surface normal and the reversed incident ray.
func Fresnel(specular, cosine float64) float64 {
	sqrtSpec := math.Sqrt(specular)
	ior := (1 - 0.28*sqrtSpec) / (1 + 0.28*sqrtSpec)

	r0 := (1 - ior) / (1 + ior)
	r0 *= r0

	f := r0 + (1-r0)*math.Pow(1-cosine, 5)
	return math.Max(0, math.Min(1, f))
}
