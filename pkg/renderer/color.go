package renderer

import (
	"math"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// gammaCorrect raises each channel to 1/gamma; gamma <= 0 leaves the color unchanged
func gammaCorrect(v core.Vec3, gamma float64) core.Vec3 {
	if gamma <= 0 {
		return v
	}
	invGamma := 1.0 / gamma
	return core.Vec3{
		X: math.Pow(math.Max(v.X, 0), invGamma),
		Y: math.Pow(math.Max(v.Y, 0), invGamma),
		Z: math.Pow(math.Max(v.Z, 0), invGamma),
	}
}

// clamp returns a vector with components clamped to [minVal, maxVal]
func clamp(v core.Vec3, minVal, maxVal float64) core.Vec3 {
	return core.Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}
