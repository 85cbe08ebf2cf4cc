package scene

import (
	"encoding/json"
	"fmt"

	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/geometry"
	"github.com/df07/go-prism-raycaster/pkg/material"
	"github.com/df07/go-prism-raycaster/pkg/renderer"
)

// Config is the on-disk description of a scene, shared by the TOML and JSON loaders
type Config struct {
	Name        string         `toml:"name" json:"name"`
	Description string         `toml:"description" json:"description,omitempty"`
	Camera      CameraCfg      `toml:"camera" json:"camera"`
	Background  *BackgroundCfg `toml:"background" json:"background,omitempty"`
	Spheres     []SphereCfg    `toml:"spheres" json:"spheres,omitempty"`
	Planes      []PlaneCfg     `toml:"planes" json:"planes,omitempty"`
	Triangles   []TriangleCfg  `toml:"triangles" json:"triangles,omitempty"`
	Quads       []QuadCfg      `toml:"quads" json:"quads,omitempty"`
}

// Vec3Cfg is a coordinate or color triple. Both decoders require exactly three elements.
type Vec3Cfg [3]float64

// UnmarshalJSON rejects arrays that are not exactly three numbers long
func (v *Vec3Cfg) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) != len(v) {
		return fmt.Errorf("expected array length %d; got JSON array of length %d", len(v), len(values))
	}
	copy(v[:], values)
	return nil
}

// CameraCfg mirrors renderer.CameraConfig with plain arrays for coordinates
type CameraCfg struct {
	Position       Vec3Cfg `toml:"position" json:"position"`
	Aim            Vec3Cfg `toml:"aim" json:"aim"`
	Up             Vec3Cfg `toml:"up" json:"up"`
	ScreenDistance float64 `toml:"screen_distance" json:"screenDistance"`
	ScreenHeight   float64 `toml:"screen_height" json:"screenHeight"`
	ScreenWidth    float64 `toml:"screen_width" json:"screenWidth"`
	PixelHeight    int     `toml:"pixel_height" json:"pixelHeight"`
	PixelWidth     int     `toml:"pixel_width" json:"pixelWidth"`
}

// BackgroundCfg holds the sky gradient colors
type BackgroundCfg struct {
	Top    Vec3Cfg `toml:"top" json:"top"`
	Bottom Vec3Cfg `toml:"bottom" json:"bottom"`
}

// SphereCfg describes a sphere and its optional color
type SphereCfg struct {
	Center Vec3Cfg  `toml:"center" json:"center"`
	Radius float64  `toml:"radius" json:"radius"`
	Color  *Vec3Cfg `toml:"color" json:"color,omitempty"`
}

// PlaneCfg describes an infinite plane by a point and a normal, which need not be unit length
type PlaneCfg struct {
	Point  Vec3Cfg  `toml:"point" json:"point"`
	Normal Vec3Cfg  `toml:"normal" json:"normal"`
	Color  *Vec3Cfg `toml:"color" json:"color,omitempty"`
}

// TriangleCfg describes a triangle by its vertices
type TriangleCfg struct {
	V0    Vec3Cfg  `toml:"v0" json:"v0"`
	V1    Vec3Cfg  `toml:"v1" json:"v1"`
	V2    Vec3Cfg  `toml:"v2" json:"v2"`
	Color *Vec3Cfg `toml:"color" json:"color,omitempty"`
}

// QuadCfg describes a parallelogram by a corner and two edge vectors
type QuadCfg struct {
	Corner Vec3Cfg  `toml:"corner" json:"corner"`
	U      Vec3Cfg  `toml:"u" json:"u"`
	V      Vec3Cfg  `toml:"v" json:"v"`
	Color  *Vec3Cfg `toml:"color" json:"color,omitempty"`
}

// materialFor returns a lambertian material for the optional color, or nil
func materialFor(color *Vec3Cfg) core.Material {
	if color == nil {
		return nil
	}
	return material.NewLambertian(vec(*color))
}

func point(a Vec3Cfg) core.Point3 { return core.NewPoint3(a[0], a[1], a[2]) }
func vec(a Vec3Cfg) core.Vec3     { return core.NewVec3(a[0], a[1], a[2]) }

// CameraConfig converts the file section to a renderer camera configuration
func (c CameraCfg) CameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Position:       point(c.Position),
		Aim:            point(c.Aim),
		Up:             vec(c.Up),
		ScreenDistance: c.ScreenDistance,
		ScreenHeight:   c.ScreenHeight,
		ScreenWidth:    c.ScreenWidth,
		PixelHeight:    c.PixelHeight,
		PixelWidth:     c.PixelWidth,
	}
}

// Build validates the configuration and creates the scene.
// Objects are added in file order: spheres, planes, triangles, then quads.
func (cfg Config) Build() (*Scene, error) {
	s, err := New(cfg.Name, cfg.Camera.CameraConfig())
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	if cfg.Background != nil {
		s.TopColor = vec(cfg.Background.Top)
		s.BottomColor = vec(cfg.Background.Bottom)
	}

	for i, sc := range cfg.Spheres {
		sphere, err := geometry.NewSphere(point(sc.Center), sc.Radius, materialFor(sc.Color))
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Add(sphere)
	}

	for i, pc := range cfg.Planes {
		plane, err := geometry.NewPlane(point(pc.Point), vec(pc.Normal), materialFor(pc.Color))
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		s.Add(plane)
	}

	for i, tc := range cfg.Triangles {
		triangle, err := geometry.NewTriangle(point(tc.V0), point(tc.V1), point(tc.V2), materialFor(tc.Color))
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		s.Add(triangle)
	}

	for i, qc := range cfg.Quads {
		quad, err := geometry.NewQuad(point(qc.Corner), vec(qc.U), vec(qc.V), materialFor(qc.Color))
		if err != nil {
			return nil, fmt.Errorf("quad %d: %w", i, err)
		}
		s.Add(quad)
	}

	return s, nil
}
