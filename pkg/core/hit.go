package core

// Material is the shading collaborator attached to a surface.
// A nil Material on a HitRecord means the surface has none.
type Material interface {
	Shade(ray Ray, hit HitRecord) Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Point3   // Point of intersection
	Normal    Vec3     // Surface normal, always opposing the incoming ray
	T         float64  // Parameter t along the ray
	Material  Material // Material at the hit, may be nil
	FrontFace bool     // Whether the outward normal already faced the ray
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Intersectable is implemented by anything a ray can hit.
// Hit reports the smallest t in [tMin, tMax] at which the ray meets the object.
// Implementations must not mutate shared state, so one object can be tested from many goroutines.
type Intersectable interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
}
