package scene

import (
	"math"

	"github.com/achilleasa/lumen/types"
)

// Stable index of a traceable primitive inside a scene.
type TraceHandle int

// Stable index of a marchable primitive inside a scene.
type MarchHandle int

// A scene owns all of its primitives by value. Once rendering starts the
// scene is shared read-only between all tracers.
type Scene struct {
	traceables []Traceable
	marchables []Marchable

	// Material returned for rays that escape the scene.
	Background Material
}

// Create an empty scene with the given background material.
func NewScene(bg Material) *Scene {
	return &Scene{
		traceables: make([]Traceable, 0),
		marchables: make([]Marchable, 0),
		Background: bg,
	}
}

// Add a traceable primitive to the scene.
func (s *Scene) AddTraceable(p Traceable) TraceHandle {
	s.traceables = append(s.traceables, p)
	return TraceHandle(len(s.traceables) - 1)
}

// Add a marchable primitive to the scene.
func (s *Scene) AddMarchable(m Marchable) MarchHandle {
	s.marchables = append(s.marchables, m)
	return MarchHandle(len(s.marchables) - 1)
}

// Lookup a traceable primitive by handle.
func (s *Scene) Traceable(h TraceHandle) *Traceable {
	return &s.traceables[h]
}

// Lookup a marchable primitive by handle.
func (s *Scene) Marchable(h MarchHandle) *Marchable {
	return &s.marchables[h]
}

// Get the number of traceable primitives.
func (s *Scene) NumTraceables() int {
	return len(s.traceables)
}

// Get the number of marchable primitives.
func (s *Scene) NumMarchables() int {
	return len(s.marchables)
}

// Evaluate the combined distance field at point. It returns the minimum
// distance over all marchables and the material of the first object that
// produced it. NaN estimates never win. The returned flag is false when the
// scene has no marchables.
func (s *Scene) Field(point types.Vec3) (float64, Material, bool) {
	minDist := math.Inf(1)
	mat := s.Background
	found := false

	for i := range s.marchables {
		d := s.marchables[i].Distance(point)
		if d < minDist {
			minDist = d
			mat = s.marchables[i].Material
			found = true
		}
	}

	return minDist, mat, found
}
