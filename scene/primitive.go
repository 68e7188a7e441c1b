package scene

import (
	"math"

	"github.com/achilleasa/lumen/types"
)

// Intersections at or below this distance are treated as misses so rays
// spawned from a surface do not hit the surface they left.
const Epsilon = 1e-3

// Denominators smaller than this are treated as parallel/degenerate.
const parallelEpsilon = 1e-12

type TraceKind uint8

const (
	TraceSphere TraceKind = iota
	TracePlane
	TraceTriangle
)

func (k TraceKind) String() string {
	switch k {
	case TraceSphere:
		return "sphere"
	case TracePlane:
		return "plane"
	case TraceTriangle:
		return "triangle"
	}
	return "unknown"
}

// A primitive with an analytic ray intersection test. The set of kinds is
// closed; Trace dispatches on Kind.
type Traceable struct {
	Kind TraceKind

	// Sphere center or a point on the plane.
	Origin types.Vec3

	// Sphere radius.
	Radius float64

	// Unit plane normal.
	Normal types.Vec3

	// Triangle vertices.
	Verts [3]types.Vec3

	Material Material
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float64, material Material) Traceable {
	return Traceable{
		Kind:     TraceSphere,
		Origin:   center,
		Radius:   radius,
		Material: material,
	}
}

// Create new plane primitive passing through point with the given normal.
func NewPlane(point, normal types.Vec3, material Material) Traceable {
	return Traceable{
		Kind:     TracePlane,
		Origin:   point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Create new triangle primitive. The normal follows the (b-a)x(c-a) winding.
func NewTriangle(a, b, c types.Vec3, material Material) Traceable {
	return Traceable{
		Kind:     TraceTriangle,
		Verts:    [3]types.Vec3{a, b, c},
		Material: material,
	}
}

// Intersect the primitive with a ray. It returns the parametric hit distance
// and the unit surface normal. Hits closer than Epsilon and non-finite
// results are reported as misses.
func (p *Traceable) Trace(ray types.Ray) (float64, types.Vec3, bool) {
	var (
		t  float64
		n  types.Vec3
		ok bool
	)

	switch p.Kind {
	case TraceSphere:
		t, n, ok = p.traceSphere(ray)
	case TracePlane:
		t, n, ok = p.tracePlane(ray)
	case TraceTriangle:
		t, n, ok = p.traceTriangle(ray)
	}

	if !ok || !(t > Epsilon) || math.IsInf(t, 0) || !n.IsFinite() {
		return 0, types.Vec3{}, false
	}
	return t, n, true
}

func (p *Traceable) traceSphere(ray types.Ray) (float64, types.Vec3, bool) {
	oc := ray.Origin.Sub(p.Origin)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - p.Radius*p.Radius
	disc := halfB*halfB - a*c
	if disc < 0 || a < parallelEpsilon || p.Radius <= 0 {
		return 0, types.Vec3{}, false
	}

	sqrtDisc := math.Sqrt(disc)
	t := (-halfB - sqrtDisc) / a
	if t <= Epsilon {
		// Origin inside the sphere or near root too close; try the far root.
		t = (-halfB + sqrtDisc) / a
	}
	if t <= Epsilon {
		return 0, types.Vec3{}, false
	}

	n := ray.PointAt(t).Sub(p.Origin).Normalize()
	return t, n, true
}

func (p *Traceable) tracePlane(ray types.Ray) (float64, types.Vec3, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return 0, types.Vec3{}, false
	}

	t := p.Origin.Sub(ray.Origin).Dot(p.Normal) / denom
	return t, p.Normal, t > 0
}

// Möller-Trumbore.
func (p *Traceable) traceTriangle(ray types.Ray) (float64, types.Vec3, bool) {
	e1 := p.Verts[1].Sub(p.Verts[0])
	e2 := p.Verts[2].Sub(p.Verts[0])

	n := e1.Cross(e2)
	if n.LenSq() < parallelEpsilon {
		return 0, types.Vec3{}, false
	}

	pv := ray.Direction.Cross(e2)
	det := e1.Dot(pv)
	if math.Abs(det) < parallelEpsilon {
		return 0, types.Vec3{}, false
	}
	invDet := 1 / det

	s := ray.Origin.Sub(p.Verts[0])
	u := s.Dot(pv) * invDet
	if u < 0 || u > 1 {
		return 0, types.Vec3{}, false
	}

	q := s.Cross(e1)
	v := ray.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, types.Vec3{}, false
	}

	return e2.Dot(q) * invDet, n.Normalize(), true
}
