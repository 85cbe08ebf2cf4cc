package scene

import (
	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/geometry"
	"github.com/df07/go-prism-raycaster/pkg/material"
	"github.com/df07/go-prism-raycaster/pkg/renderer"
)

// NewTriangleScene creates a square pyramid built from triangles standing on a ground quad
func NewTriangleScene() (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Position:       core.NewPoint3(2, 1.5, 4),
		Aim:            core.NewPoint3(0, 0.5, 0),
		Up:             core.NewVec3(0, 1, 0),
		ScreenDistance: 1.0,
		ScreenHeight:   0.6,
		ScreenWidth:    0.8,
		PixelHeight:    300,
		PixelWidth:     400,
	}

	s, err := New("triangles", cameraConfig)
	if err != nil {
		return nil, err
	}
	s.TopColor = core.NewVec3(0.2, 0.2, 0.3)
	s.BottomColor = core.NewVec3(0.9, 0.8, 0.7)

	ground, err := geometry.NewQuad(
		core.NewPoint3(-3, 0, -3),
		core.NewVec3(6, 0, 0),
		core.NewVec3(0, 0, 6),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)
	if err != nil {
		return nil, err
	}
	s.Add(ground)

	apex := core.NewPoint3(0, 1.5, 0)
	base := []core.Point3{
		core.NewPoint3(-1, 0, 1),
		core.NewPoint3(1, 0, 1),
		core.NewPoint3(1, 0, -1),
		core.NewPoint3(-1, 0, -1),
	}
	colors := []core.Vec3{
		core.NewVec3(0.8, 0.2, 0.2),
		core.NewVec3(0.2, 0.8, 0.2),
		core.NewVec3(0.2, 0.2, 0.8),
		core.NewVec3(0.8, 0.8, 0.2),
	}

	// Faces wind counter-clockwise seen from outside so normals point outward
	for i := range base {
		next := base[(i+1)%len(base)]
		face, err := geometry.NewTriangle(base[i], next, apex, material.NewLambertian(colors[i]))
		if err != nil {
			return nil, err
		}
		s.Add(face)
	}

	return s, nil
}
