package material

import (
	"github.com/df07/go-prism-raycaster/pkg/core"
)

// DefaultLightDirection points from surfaces toward the key light (up, right and toward the viewer)
var DefaultLightDirection = core.NewVec3(1, 2, 1)

// DefaultAmbient is the fraction of the albedo returned for surfaces facing away from the light
const DefaultAmbient = 0.1

// Lambertian is a flat diffuse material lit by a single directional light
type Lambertian struct {
	Albedo  ColorSource // Base color/reflectance (can be solid or procedural)
	toLight core.Vec3   // Unit vector toward the light
	Ambient float64
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a new lambertian material with a color source
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	l := &Lambertian{Albedo: albedo, Ambient: DefaultAmbient}
	l.SetLightDirection(DefaultLightDirection)
	return l
}

// SetLightDirection sets the direction toward the light. A zero vector turns the
// light into a headlight that always shines along the incoming ray.
func (l *Lambertian) SetLightDirection(dir core.Vec3) {
	unit, err := dir.Normalize()
	if err != nil {
		l.toLight = core.Vec3{}
		return
	}
	l.toLight = unit
}

// Shade implements core.Material using Lambert's cosine law
func (l *Lambertian) Shade(ray core.Ray, hit core.HitRecord) core.Vec3 {
	toLight := l.toLight
	if toLight == (core.Vec3{}) {
		toLight = ray.Direction.Negate()
	}

	cosTheta := hit.Normal.Dot(toLight)
	intensity := l.Ambient + (1-l.Ambient)*max(0, cosTheta)

	return l.Albedo.Evaluate(hit.Point).Multiply(intensity)
}
