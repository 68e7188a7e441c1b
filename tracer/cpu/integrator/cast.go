package integrator

import (
	"math"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/types"
)

const (
	// Surface contact threshold and self-intersection guard.
	Epsilon = scene.Epsilon

	// Max sphere tracing iterations per ray.
	MaxSteps = 128

	// Far plane for sphere tracing.
	MaxDepth = 40.0
)

// Find the closest surface hit along ray by combining the closest analytic
// intersection with the result of sphere tracing the scene distance field.
// The second return value is false when the ray escapes the scene.
func Cast(sc *scene.Scene, ray types.Ray) (scene.Hit, bool) {
	ray.Direction = ray.Direction.Normalize()

	traceHit, traceOk := TraceClosest(sc, ray)
	marchHit, _, marchOk := MarchField(sc, ray)

	switch {
	case traceOk && marchOk:
		// The marcher stops up to Epsilon short of the surface so distances
		// within Epsilon of each other are a tie; the exact result wins.
		if marchHit.Distance+Epsilon < traceHit.Distance {
			return marchHit, true
		}
		return traceHit, true
	case traceOk:
		return traceHit, true
	case marchOk:
		return marchHit, true
	}

	return scene.NoHit(sc.Background), false
}

// Intersect ray with all traceable primitives and return the closest hit.
func TraceClosest(sc *scene.Scene, ray types.Ray) (scene.Hit, bool) {
	best := scene.NoHit(sc.Background)

	for i := 0; i < sc.NumTraceables(); i++ {
		prim := sc.Traceable(scene.TraceHandle(i))
		dist, normal, ok := prim.Trace(ray)
		if !ok || !(dist < best.Distance) {
			continue
		}

		best = scene.Hit{
			Hit:      true,
			Distance: dist,
			Normal:   normal,
			Material: prim.Material,
		}
	}

	return best, best.Hit
}

// Sphere trace the scene distance field along ray. It also returns the
// number of field evaluation steps that were performed.
func MarchField(sc *scene.Scene, ray types.Ray) (scene.Hit, int, bool) {
	if sc.NumMarchables() == 0 {
		return scene.NoHit(sc.Background), 0, false
	}

	// Contacts only count once the ray has left the contact shell it
	// started in.
	depth := Epsilon
	escaped := false
	for step := 0; step < MaxSteps; step++ {
		point := ray.PointAt(depth)
		dist, mat, _ := sc.Field(point)
		if math.IsNaN(dist) {
			break
		}

		if dist <= Epsilon {
			if escaped {
				return scene.Hit{
					Hit:      true,
					Distance: depth,
					Normal:   FieldNormal(sc, point),
					Material: mat,
				}, step + 1, true
			}
			dist = math.Max(dist, Epsilon)
		} else {
			escaped = true
		}

		depth += dist
		if depth > MaxDepth {
			return scene.NoHit(sc.Background), step + 1, false
		}
	}

	return scene.NoHit(sc.Background), MaxSteps, false
}

// Estimate the distance field normal at point using central differences.
func FieldNormal(sc *scene.Scene, p types.Vec3) types.Vec3 {
	return types.XYZ(
		fieldAt(sc, types.XYZ(p[0]+Epsilon, p[1], p[2]))-fieldAt(sc, types.XYZ(p[0]-Epsilon, p[1], p[2])),
		fieldAt(sc, types.XYZ(p[0], p[1]+Epsilon, p[2]))-fieldAt(sc, types.XYZ(p[0], p[1]-Epsilon, p[2])),
		fieldAt(sc, types.XYZ(p[0], p[1], p[2]+Epsilon))-fieldAt(sc, types.XYZ(p[0], p[1], p[2]-Epsilon)),
	).Normalize()
}

func fieldAt(sc *scene.Scene, p types.Vec3) float64 {
	d, _, _ := sc.Field(p)
	return d
}
