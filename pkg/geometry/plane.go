package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Point3   // A point on the plane
	Normal   core.Vec3     // Unit normal; its side is the front face
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point core.Point3, normal core.Vec3, material core.Material) (*Plane, error) {
	unit, err := normal.Normalize()
	if err != nil || !point.IsFinite() || !unit.IsFinite() {
		return nil, fmt.Errorf("%w: plane through %v with normal %v", ErrInvalidShape, point, normal)
	}
	return &Plane{
		Point:    point,
		Normal:   unit,
		Material: material,
	}, nil
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return core.HitRecord{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	hitRecord := core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}
