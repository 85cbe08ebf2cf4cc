package core

// Ray represents a half-line with an origin and a unit-length direction.
// Build rays with NewRay or NewRayTowards so the direction is normalized.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a ray from an origin and a direction, normalizing the direction
func NewRay(origin Point3, direction Vec3) (Ray, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: unit}, nil
}

// NewRayTowards creates a ray starting at origin and pointing at target
func NewRayTowards(origin, target Point3) (Ray, error) {
	return NewRay(origin, target.Subtract(origin))
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.Origin.Translate(r.Direction.Multiply(t))
}
