package integrator

import (
	"math/rand"
	"testing"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/types"
)

func TestRadianceMissReturnsBackground(t *testing.T) {
	bg := scene.Emissive(types.XYZ(0.5, 0.25, 1), 0.8)
	sc := scene.NewScene(bg)
	sc.AddTraceable(scene.NewSphere(types.XYZ(0, 0, -5), 1, scene.Dielectric(types.XYZ(1, 1, 1), 0, 1)))

	rng := rand.New(rand.NewSource(1))
	for _, depth := range []uint32{0, 1, 4} {
		got := Radiance(sc, types.NewRay(types.Vec3{}, types.XYZ(0, 0, 1)), depth, 4, rng)
		if got != bg.Color.Mul(bg.Emission) {
			t.Fatalf("[depth %d] expected background radiance %v; got %v", depth, bg.Color.Mul(bg.Emission), got)
		}
	}
}

func TestRadianceOutOfBounces(t *testing.T) {
	sc := scene.NewScene(scene.Sky())
	sc.AddTraceable(scene.NewSphere(types.XYZ(0, 0, -5), 1, scene.Dielectric(types.XYZ(1, 1, 1), 0, 1)))
	sc.AddMarchable(scene.NewFieldSphere(types.XYZ(0, 0, 5), 1, scene.Metal(types.XYZ(1, 1, 1), 1, 0)))
	sc.AddTraceable(scene.NewSphere(types.XYZ(5, 0, 0), 1, scene.Emissive(types.XYZ(1, 0.5, 1), 4)))

	type spec struct {
		dir types.Vec3
		exp types.Vec3
	}
	specs := []spec{
		{types.XYZ(0, 0, -1), types.Vec3{}},
		{types.XYZ(0, 0, 1), types.Vec3{}},
		// an exhausted path ending on a light keeps the light's emission
		{types.XYZ(1, 0, 0), types.XYZ(4, 2, 4)},
	}

	rng := rand.New(rand.NewSource(1))
	for index, s := range specs {
		got := Radiance(sc, types.NewRay(types.Vec3{}, s.dir), 0, 4, rng)
		if got != s.exp {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
		}
	}
}

func TestRadianceEmissiveSurface(t *testing.T) {
	sc := scene.NewScene(black)
	sc.AddTraceable(scene.NewSphere(types.XYZ(0, 0, -5), 1, scene.Emissive(types.XYZ(1, 1, 1), 3)))

	rng := rand.New(rand.NewSource(1))
	for _, depth := range []uint32{1, 2, 3} {
		got := Radiance(sc, types.NewRay(types.Vec3{}, types.XYZ(0, 0, -1)), depth, 3, rng)
		if got.Sub(types.XYZ(3, 3, 3)).Len() > testEpsilon {
			t.Fatalf("[depth %d] expected emitted radiance (3, 3, 3); got %v", depth, got)
		}
	}
}

func TestRadianceMirrorReflectsLight(t *testing.T) {
	// A perfect metal mirror facing the camera with a lamp behind the camera.
	sc := scene.NewScene(black)
	sc.AddTraceable(scene.NewPlane(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1), scene.Metal(types.XYZ(1, 0.5, 0.25), 1, 0)))
	sc.AddTraceable(scene.NewSphere(types.XYZ(0, 0, 10), 2, scene.Emissive(types.XYZ(1, 1, 1), 2)))

	rng := rand.New(rand.NewSource(1))
	got := Radiance(sc, types.NewRay(types.Vec3{}, types.XYZ(0, 0, -1)), 2, 2, rng)

	// metallic layer = specular * color; specular sample sees the lamp.
	exp := types.XYZ(2, 1, 0.5)
	if got.Sub(exp).Len() > testEpsilon {
		t.Fatalf("expected mirrored radiance %v; got %v", exp, got)
	}
}

func TestRadianceIsDeterministicForSeed(t *testing.T) {
	sc := scene.NewScene(scene.Sky())
	sc.AddTraceable(scene.NewPlane(types.XYZ(0, -1, 0), types.XYZ(0, 1, 0), scene.Dielectric(types.XYZ(0.8, 0.8, 0.8), 0.5, 0.3)))
	sc.AddMarchable(scene.NewFieldSphere(types.XYZ(0, 0, -4), 1, scene.Metal(types.XYZ(0.9, 0.8, 0.5), 0.5, 0.2)))

	ray := types.NewRay(types.Vec3{}, types.XYZ(0, -0.2, -1))
	a := Radiance(sc, ray, 3, 4, rand.New(rand.NewSource(42)))
	b := Radiance(sc, ray, 3, 4, rand.New(rand.NewSource(42)))
	if a != b {
		t.Fatalf("expected identical radiance for identical seeds; got %v and %v", a, b)
	}
	if !a.IsFinite() {
		t.Fatalf("expected finite radiance; got %v", a)
	}
}

func TestRadianceDielectricLayer(t *testing.T) {
	sky := scene.Emissive(types.XYZ(1, 1, 1), 1)
	grey := types.XYZ(0.5, 0.5, 0.5)

	type spec struct {
		marched   bool
		specular  float64
		roughness float64
	}
	specs := []spec{
		{false, 0, 1},
		{true, 0, 1},
		{false, 0.5, 0},
		{true, 0.5, 0},
		{false, 1, 0.5},
		{true, 1, 0.5},
	}

	for index, s := range specs {
		mat := scene.Dielectric(grey, s.specular, s.roughness)
		sc := scene.NewScene(sky)
		if s.marched {
			sc.AddMarchable(scene.NewFieldSphere(types.XYZ(0, 0, -5), 1, mat))
		} else {
			sc.AddTraceable(scene.NewSphere(types.XYZ(0, 0, -5), 1, mat))
		}

		// Head-on: every secondary ray leaves the convex sphere and sees the sky.
		fresnel := Fresnel(s.specular, 1)
		exp := sky.Radiance().Mul(fresnel).Add(grey.MulVec(sky.Radiance()).Mul(1 - fresnel))

		rng := rand.New(rand.NewSource(int64(index)))
		got := Radiance(sc, types.NewRay(types.Vec3{}, types.XYZ(0, 0, -1)), 1, 4, rng)
		if got.Sub(exp).Len() > testEpsilon {
			t.Fatalf("[spec %d] expected dielectric radiance %v; got %v", index, exp, got)
		}
	}

	if got := Fresnel(0, 1); got != 0 {
		t.Fatalf("expected zero head-on reflectance for specular 0; got %f", got)
	}
}

func TestRadianceBranchFactor(t *testing.T) {
	// Two facing planes; every ray spawned between them hits a surface so
	// the recursion always runs to the bounce limit.
	type spec struct {
		roughness float64
		depth     uint32
		branch    uint32
		expCasts  int
	}
	specs := []spec{
		// mirrors pass the branch factor through unchanged
		{0, 1, 3, 5},
		{0, 2, 4, 19},
		{0, 3, 4, 48},
		// rough lobes halve it on each bounce
		{0.01, 2, 1, 7},
		{0.01, 2, 4, 33},
		{0.01, 3, 4, 81},
	}

	for index, s := range specs {
		mat := scene.Dielectric(types.XYZ(0.5, 0.5, 0.5), 0.5, s.roughness)
		sc := scene.NewScene(scene.Sky())
		sc.AddTraceable(scene.NewPlane(types.XYZ(0, 0, -5), types.XYZ(0, 0, 1), mat))
		sc.AddTraceable(scene.NewPlane(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1), mat))

		st := &pathState{sc: sc, rng: rand.New(rand.NewSource(1))}
		st.radiance(types.NewRay(types.Vec3{}, types.XYZ(0, 0, -1)), s.depth, s.branch)
		if st.casts != s.expCasts {
			t.Fatalf("[spec %d] expected %d cast rays; got %d", index, s.expCasts, st.casts)
		}
	}
}
