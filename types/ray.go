package types

// A ray with an origin point and a direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// Create a ray with a normalized direction.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// Get the point at parametric distance t along the ray.
func (r Ray) PointAt(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
