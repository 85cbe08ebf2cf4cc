package renderer

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/geometry"
)

// RenderConfig contains the ray range and output settings
type RenderConfig struct {
	TMin  float64 // Smallest ray parameter accepted as a hit
	TMax  float64 // Largest ray parameter accepted as a hit
	Gamma float64 // Gamma applied when converting to 8-bit color
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TMin:  0.001,
		TMax:  1000.0,
		Gamma: 2.0,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetObjects() []core.Intersectable
}

// Raycaster casts one ray per pixel center, resolves the nearest hit and shades it.
// Rendering is a single pass on the calling goroutine.
type Raycaster struct {
	scene  Scene
	shader Shader
	config RenderConfig
	logger core.Logger
}

// NewRaycaster creates a raycaster; a nil logger discards output
func NewRaycaster(scene Scene, shader Shader, logger core.Logger) *Raycaster {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raycaster{
		scene:  scene,
		shader: shader,
		config: DefaultRenderConfig(),
		logger: logger,
	}
}

// SetRenderConfig updates the render configuration
func (rc *Raycaster) SetRenderConfig(config RenderConfig) {
	rc.config = config
}

// CastRay returns the color seen along a single ray and whether it hit anything
func (rc *Raycaster) CastRay(ray core.Ray) (core.Vec3, bool) {
	hit, isHit := geometry.NearestHit(ray, rc.scene.GetObjects(), rc.config.TMin, rc.config.TMax)
	if !isHit {
		return rc.backgroundGradient(ray), false
	}
	return rc.shader.Shade(ray, hit), true
}

// Render produces the image for the scene camera.
// The context is checked between scanlines; on cancellation the partial image is returned with the error.
func (rc *Raycaster) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	camera := rc.scene.GetCamera()
	img := image.NewRGBA(image.Rect(0, 0, camera.Width(), camera.Height()))
	stats := RenderStats{TotalPixels: camera.Len()}
	start := time.Now()

	for y := 0; y < camera.Height(); y++ {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			rc.logger.Printf("Render stopped at row %d/%d: %v\n", y, camera.Height(), err)
			return img, stats, err
		}

		for pixel, ray := range camera.Row(y) {
			colorVec, isHit := rc.CastRay(ray)
			stats.record(isHit)
			img.SetRGBA(pixel.X, pixel.Y, rc.vec3ToColor(colorVec))
		}
	}

	stats.Duration = time.Since(start)
	rc.logger.Printf("Rendered %dx%d: %d hits, %d misses in %v\n",
		camera.Width(), camera.Height(), stats.Hits, stats.Misses, stats.Duration)
	return img, stats, nil
}

// backgroundGradient returns a gradient color based on ray direction
func (rc *Raycaster) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rc.scene.GetBackgroundColors()

	// Map direction y from [-1,1] to [0,1]
	t := 0.5 * (r.Direction.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func (rc *Raycaster) vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = gammaCorrect(colorVec, rc.config.Gamma)
	colorVec = clamp(colorVec, 0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}
