package scene

import (
	"math"

	"github.com/achilleasa/lumen/types"
)

const (
	// Mandelbulb escape radius.
	bulbBailout = 2.0

	// Beyond this radius the bulb is approximated by its bounding sphere.
	bulbBoundRadius = 2.5
)

type MarchKind uint8

const (
	MarchSphere MarchKind = iota
	MarchMandelbulb
)

func (k MarchKind) String() string {
	switch k {
	case MarchSphere:
		return "sphere"
	case MarchMandelbulb:
		return "mandelbulb"
	}
	return "unknown"
}

// A primitive described by a signed distance estimate. The set of kinds is
// closed; Distance dispatches on Kind.
type Marchable struct {
	Kind MarchKind

	Origin types.Vec3

	// Sphere radius.
	Radius float64

	// Mandelbulb power and iteration count.
	Power      float64
	Iterations int

	Material Material
}

// Create a distance field sphere.
func NewFieldSphere(center types.Vec3, radius float64, material Material) Marchable {
	return Marchable{
		Kind:     MarchSphere,
		Origin:   center,
		Radius:   radius,
		Material: material,
	}
}

// Create a mandelbulb fractal centered at position.
func NewMandelbulb(position types.Vec3, power float64, iterations int, material Material) Marchable {
	return Marchable{
		Kind:       MarchMandelbulb,
		Origin:     position,
		Power:      power,
		Iterations: iterations,
		Material:   material,
	}
}

// Estimate the signed distance from point to the surface. Negative values
// are inside.
func (m *Marchable) Distance(point types.Vec3) float64 {
	switch m.Kind {
	case MarchSphere:
		return point.Sub(m.Origin).Len() - m.Radius
	case MarchMandelbulb:
		return m.bulbDistance(point)
	}
	return math.Inf(1)
}

func (m *Marchable) bulbDistance(point types.Vec3) float64 {
	c := point.Sub(m.Origin)
	z := c
	r := z.Len()
	if r > bulbBoundRadius {
		return r - bulbBailout
	}

	dr := 1.0
	for i := 0; i < m.Iterations; i++ {
		r = z.Len()
		if r > bulbBailout || r == 0 {
			break
		}

		theta := math.Atan2(math.Hypot(z[0], z[1]), z[2]) * m.Power
		phi := math.Atan2(z[1], z[0]) * m.Power
		zr := math.Pow(r, m.Power)
		dr = math.Pow(r, m.Power-1)*m.Power*dr + 1

		sinTheta := math.Sin(theta)
		z = types.XYZ(
			zr*sinTheta*math.Cos(phi),
			zr*sinTheta*math.Sin(phi),
			zr*math.Cos(theta),
		).Add(c)
	}

	if r == 0 {
		return 0
	}
	return 0.5 * math.Log(r) * r / dr
}
