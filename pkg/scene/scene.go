package scene

import (
	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/renderer"
)

// Scene contains everything needed to cast rays: a camera, the objects and a background
type Scene struct {
	Name        string
	Camera      *renderer.Camera
	Objects     []core.Intersectable // Tested in order by the nearest-hit scan
	TopColor    core.Vec3            // Background color straight up
	BottomColor core.Vec3            // Background color straight down
}

// New creates an empty scene with a validated camera and the default sky gradient
func New(name string, cameraConfig renderer.CameraConfig) (*Scene, error) {
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:        name,
		Camera:      camera,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}, nil
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...core.Intersectable) {
	s.Objects = append(s.Objects, objects...)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetObjects returns the scene objects
func (s *Scene) GetObjects() []core.Intersectable {
	return s.Objects
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
