package geometry

import (
	"math"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// NearestHit tests every object against the ray and returns the hit with the smallest t.
//
// When nothing is hit the returned bool is false and the record is the sentinel
// with T == tMax, so callers comparing T against tMax keep working. A genuine hit
// exactly at tMax is still reported with true.
func NearestHit(ray core.Ray, objects []core.Intersectable, tMin, tMax float64) (core.HitRecord, bool) {
	closest := core.HitRecord{T: tMax}
	if math.IsNaN(tMin) || math.IsNaN(tMax) || tMin > tMax {
		return closest, false
	}

	hitAnything := false
	for _, object := range objects {
		if object == nil {
			continue
		}

		candidate, isHit := object.Hit(ray, tMin, tMax)
		if !isHit || !(candidate.T >= tMin && candidate.T <= tMax) {
			continue
		}

		if !hitAnything || candidate.T < closest.T {
			closest = candidate
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Group is an ordered collection of objects that is itself Intersectable
type Group []core.Intersectable

// Hit returns the nearest hit among the group's members
func (g Group) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return NearestHit(ray, g, tMin, tMax)
}
