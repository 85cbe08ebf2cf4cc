package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 represents a location in 3D space
type Point3 r3.Vec

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Translate returns the point displaced by a vector
func (p Point3) Translate(v Vec3) Point3 {
	return Point3(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// Subtract returns the displacement vector from other to p
func (p Point3) Subtract(other Point3) Vec3 {
	return Vec3(r3.Sub(r3.Vec(p), r3.Vec(other)))
}

// IsFinite reports whether every coordinate is neither NaN nor infinite
func (p Point3) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// ApproxEqual compares coordinate-wise within eps
func (p Point3) ApproxEqual(other Point3, eps float64) bool {
	return math.Abs(p.X-other.X) <= eps &&
		math.Abs(p.Y-other.Y) <= eps &&
		math.Abs(p.Z-other.Z) <= eps
}

// Centroid returns the arithmetic mean of the given points
func Centroid(points ...Point3) (Point3, error) {
	if len(points) == 0 {
		return Point3{}, ErrNoPoints
	}

	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, r3.Vec(p))
	}
	return Point3(r3.Scale(1/float64(len(points)), sum)), nil
}
