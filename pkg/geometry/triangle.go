package geometry

import (
	"fmt"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// The front face is the side from which v0, v1, v2 appear counter-clockwise.
// The vertices are fixed at construction; only the material may change.
type Triangle struct {
	Material   core.Material
	v0, v1, v2 core.Point3
	normal     core.Vec3 // cached
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Point3, material core.Material) (*Triangle, error) {
	normal, err := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	if err != nil || !v0.IsFinite() || !v1.IsFinite() || !v2.IsFinite() {
		return nil, fmt.Errorf("%w: triangle %v %v %v is degenerate", ErrInvalidShape, v0, v1, v2)
	}

	return &Triangle{
		Material: material,
		v0:       v0,
		v1:       v1,
		v2:       v2,
		normal:   normal,
	}, nil
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := tr.v1.Subtract(tr.v0)
	edge2 := tr.v2.Subtract(tr.v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return core.HitRecord{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tr.v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.HitRecord{}, false
	}

	t := f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	hitRecord := core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: tr.Material,
	}
	hitRecord.SetFaceNormal(ray, tr.normal)

	return hitRecord, true
}

// Vertices returns the triangle's corners in winding order
func (tr *Triangle) Vertices() (v0, v1, v2 core.Point3) {
	return tr.v0, tr.v1, tr.v2
}

// Normal returns the triangle's geometric normal
func (tr *Triangle) Normal() core.Vec3 {
	return tr.normal
}
