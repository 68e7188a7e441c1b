package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/achilleasa/lumen/types"
)

func TestRandomInUnitSphere(t *testing.T) {
	const numSamples = 20000
	rng := rand.New(rand.NewSource(1))

	var sum types.Vec3
	for i := 0; i < numSamples; i++ {
		p := RandomInUnitSphere(rng)
		if p.LenSq() >= 1.0 {
			t.Fatalf("[sample %d] expected squared length < 1; got %f", i, p.LenSq())
		}
		sum = sum.Add(p)
	}

	mean := sum.Div(numSamples)
	if mean.Len() > 0.02 {
		t.Fatalf("expected sample mean to be close to the origin; got %v", mean)
	}
}

func TestFresnel(t *testing.T) {
	type spec struct {
		specular float64
		cosine   float64
		exp      float64
	}
	specs := []spec{
		// specular 0 gives ior 1 so r0 is 0
		{0, 1, 0},
		{0, 0, 1},
		{0, 0.5, math.Pow(0.5, 5)},
	}

	for index, s := range specs {
		if got := Fresnel(s.specular, s.cosine); math.Abs(got-s.exp) > testEpsilon {
			t.Fatalf("[spec %d] expected fresnel weight %f; got %f", index, s.exp, got)
		}
	}

	for _, specular := range []float64{0, 0.25, 0.5, 1} {
		for _, cosine := range []float64{-1, 0, 0.3, 1, 2} {
			got := Fresnel(specular, cosine)
			if got < 0 || got > 1 {
				t.Fatalf("expected fresnel weight for specular %f, cosine %f to be clamped to [0, 1]; got %f", specular, cosine, got)
			}
		}
	}

	// Higher specular values yield stronger head-on reflection.
	if Fresnel(1, 1) <= Fresnel(0.25, 1) {
		t.Fatal("expected head-on reflectance to grow with the specular parameter")
	}
}
