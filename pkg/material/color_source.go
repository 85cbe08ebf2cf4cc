package material

import (
	"math"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at a world-space point
	Evaluate(point core.Point3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(core.Point3) core.Vec3 {
	return s.Color
}

// Checker alternates two colors on a 3D lattice of cubes with edge Size
type Checker struct {
	Even, Odd core.Vec3
	Size      float64
}

// NewChecker creates a procedural checker pattern
func NewChecker(size float64, even, odd core.Vec3) *Checker {
	return &Checker{Even: even, Odd: odd, Size: size}
}

// Evaluate picks a color by the parity of the cell containing point
func (c *Checker) Evaluate(point core.Point3) core.Vec3 {
	if c.Size <= 0 {
		return c.Even
	}
	ix := int(math.Floor(point.X / c.Size))
	iy := int(math.Floor(point.Y / c.Size))
	iz := int(math.Floor(point.Z / c.Size))
	if (ix+iy+iz)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
