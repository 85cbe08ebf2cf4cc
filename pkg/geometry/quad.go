package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors.
// The geometry is fixed at construction; only the material may change.
type Quad struct {
	Material core.Material // Material of the quad
	corner   core.Point3
	u, v     core.Vec3
	normal   core.Vec3 // unit normal along u × v
	w        core.Vec3 // n / (n · (u × v)), for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner core.Point3, u, v core.Vec3, material core.Material) (*Quad, error) {
	cross := u.Cross(v)
	normal, err := cross.Normalize()
	w := cross.Divide(cross.LengthSquared())
	if err != nil || !corner.IsFinite() || !u.IsFinite() || !v.IsFinite() ||
		!normal.IsFinite() || !w.IsFinite() || w == (core.Vec3{}) {
		return nil, fmt.Errorf("%w: quad at %v with edges %v, %v", ErrInvalidShape, corner, u, v)
	}

	return &Quad{
		Material: material,
		corner:   corner,
		u:        u,
		v:        v,
		normal:   normal,
		w:        w,
	}, nil
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.normal)
	if math.Abs(denominator) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := q.corner.Subtract(ray.Origin).Dot(q.normal) / denominator
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	hitPoint := ray.At(t)

	// Planar coordinates of the hit point along U and V
	hitVector := hitPoint.Subtract(q.corner)
	alpha := q.w.Dot(hitVector.Cross(q.v))
	beta := q.w.Dot(q.u.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}

	hitRecord := core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.normal)

	return hitRecord, true
}

// Corner returns the quad's reference corner
func (q *Quad) Corner() core.Point3 { return q.corner }

// Edges returns the two edge vectors leaving the corner
func (q *Quad) Edges() (u, v core.Vec3) { return q.u, q.v }

// Normal returns the unit normal along u × v
func (q *Quad) Normal() core.Vec3 { return q.normal }
