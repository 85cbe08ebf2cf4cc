package scene

import (
	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/geometry"
	"github.com/df07/go-prism-raycaster/pkg/material"
	"github.com/df07/go-prism-raycaster/pkg/renderer"
)

// defaultCameraConfig frames the origin from slightly above at a 16:9 aspect.
// A screen height of 0.728 at distance 1 gives roughly a 40 degree vertical field of view.
func defaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Position:       core.NewPoint3(0, 0.75, 2),
		Aim:            core.NewPoint3(0, 0.5, -1),
		Up:             core.NewVec3(0, 1, 0),
		ScreenDistance: 1.0,
		ScreenHeight:   0.728,
		ScreenWidth:    0.728 * 16.0 / 9.0,
		PixelHeight:    225,
		PixelWidth:     400,
	}
}

// NewDefaultScene creates a default scene with spheres on a checkered ground plane
func NewDefaultScene() (*Scene, error) {
	s, err := New("default", defaultCameraConfig())
	if err != nil {
		return nil, err
	}

	// Create materials
	ground := material.NewTexturedLambertian(material.NewChecker(0.5,
		core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6),
		core.NewVec3(0.9, 0.9, 0.9)))
	blue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	red := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	silver := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	gold := material.NewLambertian(core.NewVec3(0.8, 0.6, 0.2))

	groundPlane, err := geometry.NewPlane(core.NewPoint3(0, 0, 0), core.NewVec3(0, 1, 0), ground)
	if err != nil {
		return nil, err
	}
	s.Add(groundPlane)

	spheres := []struct {
		center core.Point3
		radius float64
		mat    core.Material
	}{
		{core.NewPoint3(0, 0.5, -1), 0.5, red},
		{core.NewPoint3(-1, 0.5, -1), 0.5, silver},
		{core.NewPoint3(1, 0.5, -1), 0.5, gold},
		{core.NewPoint3(0.5, 0.25, -0.5), 0.25, blue},
	}
	for _, sc := range spheres {
		sphere, err := geometry.NewSphere(sc.center, sc.radius, sc.mat)
		if err != nil {
			return nil, err
		}
		s.Add(sphere)
	}

	return s, nil
}
