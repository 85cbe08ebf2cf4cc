package renderer

import (
	"fmt"
	"iter"
	"math"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// CameraConfig describes a camera pose and its screen geometry
type CameraConfig struct {
	Position       core.Point3 // Eye point
	Aim            core.Point3 // Point the camera looks at
	Up             core.Vec3   // Up hint, stored but not used by the basis
	ScreenDistance float64     // Distance from position to the view plane
	ScreenHeight   float64     // Physical height of the view plane
	ScreenWidth    float64     // Physical width of the view plane
	PixelHeight    int         // Image height in pixels
	PixelWidth     int         // Image width in pixels
}

// Pixel is an integer image coordinate, (0,0) being the top-left pixel
type Pixel struct {
	X, Y int
}

// Camera generates one ray per pixel center.
// All derived geometry is computed in NewCamera and never changes afterwards,
// so a Camera can be shared freely between goroutines.
type Camera struct {
	config      CameraConfig
	basis       core.Basis
	pixelDeltaU core.Vec3   // Offset from one pixel to the next along a row
	pixelDeltaV core.Vec3   // Offset from one row to the one above
	pixel00     core.Point3 // Center of the top-left pixel
}

// NewCamera validates the configuration and precomputes the screen geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := validateCameraConfig(config); err != nil {
		return nil, err
	}

	basis, err := core.BuildBasis(config.Position.Subtract(config.Aim))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateCamera, err)
	}

	w, u, v := basis.W(), basis.U(), basis.V()

	screenCenter := config.Position.Translate(w.Multiply(-config.ScreenDistance))
	topLeft := screenCenter.
		Translate(u.Multiply(-config.ScreenWidth / 2)).
		Translate(v.Multiply(config.ScreenHeight / 2))

	pixelDeltaU := u.Multiply(config.ScreenWidth / float64(config.PixelWidth))
	pixelDeltaV := v.Multiply(config.ScreenHeight / float64(config.PixelHeight))
	pixel00 := topLeft.
		Translate(pixelDeltaU.Multiply(0.5)).
		Translate(pixelDeltaV.Multiply(-0.5))

	camera := &Camera{
		config:      config,
		basis:       basis,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		pixel00:     pixel00,
	}

	// Every ray direction lies inside the cone of the corner rays
	corners := [][2]int{{0, 0}, {config.PixelWidth - 1, 0}, {0, config.PixelHeight - 1}, {config.PixelWidth - 1, config.PixelHeight - 1}}
	for _, c := range corners {
		offset := camera.pixelCenter(c[0], c[1]).Subtract(config.Position)
		if _, err := offset.Normalize(); err != nil {
			return nil, fmt.Errorf("%w: pixel (%d,%d) has no finite direction: %w", ErrDegenerateCamera, c[0], c[1], err)
		}
	}
	return camera, nil
}

func validateCameraConfig(config CameraConfig) error {
	if config.PixelWidth <= 0 || config.PixelHeight <= 0 {
		return fmt.Errorf("%w: pixel dimensions must be positive, got %dx%d",
			ErrDegenerateCamera, config.PixelWidth, config.PixelHeight)
	}

	screen := []struct {
		name  string
		value float64
	}{
		{"screen distance", config.ScreenDistance},
		{"screen height", config.ScreenHeight},
		{"screen width", config.ScreenWidth},
	}
	for _, s := range screen {
		if !(s.value > 0) || math.IsInf(s.value, 1) {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrDegenerateCamera, s.name, s.value)
		}
	}

	if !config.Position.IsFinite() || !config.Aim.IsFinite() {
		return fmt.Errorf("%w: position %v and aim %v must be finite", ErrDegenerateCamera, config.Position, config.Aim)
	}
	if config.Position == config.Aim {
		return fmt.Errorf("%w: position and aim coincide at %v", ErrDegenerateCamera, config.Position)
	}
	return nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// Position returns the eye point shared by every generated ray
func (c *Camera) Position() core.Point3 { return c.config.Position }

// Aim returns the look-at point
func (c *Camera) Aim() core.Point3 { return c.config.Aim }

// Up returns the up hint
func (c *Camera) Up() core.Vec3 { return c.config.Up }

// Basis returns the camera frame: W backward, U horizontal, V vertical
func (c *Camera) Basis() core.Basis { return c.basis }

// PixelDeltaU returns the step between horizontally adjacent pixel centers
func (c *Camera) PixelDeltaU() core.Vec3 { return c.pixelDeltaU }

// PixelDeltaV returns the step between vertically adjacent pixel centers
func (c *Camera) PixelDeltaV() core.Vec3 { return c.pixelDeltaV }

// Pixel00 returns the center of the top-left pixel
func (c *Camera) Pixel00() core.Point3 { return c.pixel00 }

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.config.PixelWidth }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.config.PixelHeight }

// Len returns the number of rays in the sequence
func (c *Camera) Len() int { return c.config.PixelWidth * c.config.PixelHeight }

// PixelCenter returns the world-space center of pixel (x, y)
func (c *Camera) PixelCenter(x, y int) (core.Point3, error) {
	if x < 0 || x >= c.config.PixelWidth || y < 0 || y >= c.config.PixelHeight {
		return core.Point3{}, fmt.Errorf("%w: (%d, %d) outside %dx%d",
			ErrPixelOutOfRange, x, y, c.config.PixelWidth, c.config.PixelHeight)
	}
	return c.pixelCenter(x, y), nil
}

// RayAt returns the ray through the center of pixel (x, y)
func (c *Camera) RayAt(x, y int) (core.Ray, error) {
	if _, err := c.PixelCenter(x, y); err != nil {
		return core.Ray{}, err
	}
	return c.rayAt(x, y), nil
}

// RayAtIndex returns the ray for row-major index i = y*width + x
func (c *Camera) RayAtIndex(i int) (core.Ray, error) {
	if i < 0 || i >= c.Len() {
		return core.Ray{}, fmt.Errorf("%w: index %d outside [0, %d)", ErrPixelOutOfRange, i, c.Len())
	}
	return c.rayAt(i%c.config.PixelWidth, i/c.config.PixelWidth), nil
}

// Rays yields every pixel and its ray in row-major order: row 0 left to right, then row 1, and so on.
// Each call starts a fresh pass, and separate passes may run concurrently.
func (c *Camera) Rays() iter.Seq2[Pixel, core.Ray] {
	return c.Span(0, c.Len())
}

// Span yields the pixels with row-major indices in [start, end), clamped to the image
func (c *Camera) Span(start, end int) iter.Seq2[Pixel, core.Ray] {
	start = max(start, 0)
	end = min(end, c.Len())

	return func(yield func(Pixel, core.Ray) bool) {
		for i := start; i < end; i++ {
			x, y := i%c.config.PixelWidth, i/c.config.PixelWidth
			if !yield(Pixel{X: x, Y: y}, c.rayAt(x, y)) {
				return
			}
		}
	}
}

// Row yields the pixels of scanline y from left to right
func (c *Camera) Row(y int) iter.Seq2[Pixel, core.Ray] {
	if y < 0 || y >= c.config.PixelHeight {
		return c.Span(0, 0)
	}
	return c.Span(y*c.config.PixelWidth, (y+1)*c.config.PixelWidth)
}

func (c *Camera) pixelCenter(x, y int) core.Point3 {
	return c.pixel00.
		Translate(c.pixelDeltaU.Multiply(float64(x))).
		Translate(c.pixelDeltaV.Multiply(-float64(y)))
}

// rayAt never fails: NewCamera checked the corner offsets, and every other offset is bounded by them
func (c *Camera) rayAt(x, y int) core.Ray {
	direction, _ := c.pixelCenter(x, y).Subtract(c.config.Position).Normalize()
	return core.Ray{
		Origin:    c.config.Position,
		Direction: direction,
	}
}
