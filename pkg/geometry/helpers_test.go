package geometry

import (
	"testing"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

func mustRay(t *testing.T, origin core.Point3, direction core.Vec3) core.Ray {
	t.Helper()
	ray, err := core.NewRay(origin, direction)
	if err != nil {
		t.Fatalf("NewRay(%v, %v): %v", origin, direction, err)
	}
	return ray
}

// fixedHit reports a hit at a fixed t whenever that t lies within the queried range
type fixedHit struct {
	t     float64
	label string
}

func (f fixedHit) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if f.t < tMin || f.t > tMax {
		return core.HitRecord{}, false
	}
	rec := core.HitRecord{T: f.t, Point: ray.At(f.t), Material: labelMaterial(f.label)}
	rec.SetFaceNormal(ray, ray.Direction.Negate())
	return rec, true
}

// miss never reports a hit
type miss struct{}

func (miss) Hit(core.Ray, float64, float64) (core.HitRecord, bool) {
	return core.HitRecord{}, false
}

// rogue reports a hit regardless of the queried range
type rogue struct{ t float64 }

func (r rogue) Hit(ray core.Ray, _, _ float64) (core.HitRecord, bool) {
	return core.HitRecord{T: r.t, Point: ray.At(r.t)}, true
}

// labelMaterial identifies which object produced a hit
type labelMaterial string

func (labelMaterial) Shade(core.Ray, core.HitRecord) core.Vec3 { return core.Vec3{} }
