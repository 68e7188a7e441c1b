package types

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Vec3 is a 3 component vector used for positions, directions and RGB colors.
type Vec3 f64.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Add a scalar to each component.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

// Subtract a scalar from each component.
func (v Vec3) SubScalar(s float64) Vec3 {
	return Vec3{v[0] - s, v[1] - s, v[2] - s}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Component-wise multiplication.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Divide by a scalar. Division by zero yields a large finite value instead
// of an infinity.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{div(v[0], s), div(v[1], s), div(v[2], s)}
}

// Component-wise division with the same zero handling as Div.
func (v Vec3) DivVec(v2 Vec3) Vec3 {
	return Vec3{div(v[0], v2[0]), div(v[1], v2[1]), div(v[2], v2[2])}
}

// Negate vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Get squared vector length.
func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Get 3 component vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize 3 component vector. The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Reflect v around normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Linearly interpolate towards v2.
func (v Vec3) Lerp(v2 Vec3, t float64) Vec3 {
	return v.Mul(1 - t).Add(v2.Mul(t))
}

// Largest component.
func (v Vec3) MaxComponent() float64 {
	return math.Max(v[0], math.Max(v[1], v[2]))
}

// Component-wise absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}

// Returns true if no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	return Vec3{math.Min(v1[0], v2[0]), math.Min(v1[1], v2[1]), math.Min(v1[2], v2[2])}
}

// Calc maxcomponent from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	return Vec3{math.Max(v1[0], v2[0]), math.Max(v1[1], v2[1]), math.Max(v1[2], v2[2])}
}

func div(a, b float64) float64 {
	q := a / b
	switch {
	case math.IsInf(q, 1):
		return math.MaxFloat64
	case math.IsInf(q, -1):
		return -math.MaxFloat64
	case math.IsNaN(q) && b == 0:
		// 0/0
		return 0
	}
	return q
}
