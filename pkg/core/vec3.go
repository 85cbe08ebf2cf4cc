package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 represents a 3D vector (a direction or displacement)
type Vec3 r3.Vec

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3(r3.Add(r3.Vec(v), r3.Vec(other)))
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3(r3.Sub(r3.Vec(v), r3.Vec(other)))
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3(r3.Scale(scalar, r3.Vec(v)))
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3(r3.Scale(1/scalar, r3.Vec(v)))
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(other))
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3(r3.Cross(r3.Vec(v), r3.Vec(other)))
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return r3.Norm(r3.Vec(v))
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return r3.Norm2(r3.Vec(v))
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Normalize returns a unit vector in the same direction.
// A zero vector has no direction and yields ErrZeroVector; NaN or infinite
// components yield ErrNonFiniteVector.
func (v Vec3) Normalize() (Vec3, error) {
	if !v.IsFinite() {
		return Vec3{}, ErrNonFiniteVector
	}
	length := v.Length()
	if length == 0 {
		return Vec3{}, ErrZeroVector
	}
	if math.IsInf(length, 0) {
		// Finite components whose squares overflow: rescale by the largest magnitude first
		v = v.Divide(max(math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)))
		length = v.Length()
	}
	return v.Divide(length), nil
}

// IsFinite reports whether every component is neither NaN nor infinite
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// ApproxEqual compares component-wise within eps
func (v Vec3) ApproxEqual(other Vec3, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps &&
		math.Abs(v.Y-other.Y) <= eps &&
		math.Abs(v.Z-other.Z) <= eps
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
