package renderer

import (
	"fmt"
	"sort"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// Shader turns a resolved hit into a linear RGB color
type Shader interface {
	Shade(ray core.Ray, hit core.HitRecord) core.Vec3
}

// NormalShader maps the oriented normal from [-1,1] to [0,1] per channel
type NormalShader struct{}

func (NormalShader) Shade(_ core.Ray, hit core.HitRecord) core.Vec3 {
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

// DepthShader renders near hits bright and far hits dark
type DepthShader struct {
	Near, Far float64
}

func (d DepthShader) Shade(_ core.Ray, hit core.HitRecord) core.Vec3 {
	span := d.Far - d.Near
	if span <= 0 {
		return core.NewVec3(1, 1, 1)
	}
	g := 1 - (hit.T-d.Near)/span
	g = max(0, min(1, g))
	return core.NewVec3(g, g, g)
}

// MaskShader paints every hit with one color
type MaskShader struct {
	Color core.Vec3
}

func (m MaskShader) Shade(core.Ray, core.HitRecord) core.Vec3 {
	return m.Color
}

// MaterialShader defers to the hit's material and uses Fallback for surfaces without one
type MaterialShader struct {
	Fallback Shader
}

func (m MaterialShader) Shade(ray core.Ray, hit core.HitRecord) core.Vec3 {
	if hit.Material != nil {
		return hit.Material.Shade(ray, hit)
	}
	if m.Fallback == nil {
		return core.Vec3{}
	}
	return m.Fallback.Shade(ray, hit)
}

var shaderFactories = map[string]func(config RenderConfig) Shader{
	"normal": func(RenderConfig) Shader { return NormalShader{} },
	"depth": func(config RenderConfig) Shader {
		return DepthShader{Near: config.TMin, Far: config.TMax}
	},
	"mask": func(RenderConfig) Shader { return MaskShader{Color: core.NewVec3(1, 1, 1)} },
	"material": func(RenderConfig) Shader {
		return MaterialShader{Fallback: NormalShader{}}
	},
}

// NewShader returns the named built-in shader
func NewShader(name string, config RenderConfig) (Shader, error) {
	factory, ok := shaderFactories[name]
	if !ok {
		return nil, fmt.Errorf("unknown shader %q (available: %v)", name, ShaderNames())
	}
	return factory(config), nil
}

// ShaderNames lists the built-in shaders in sorted order
func ShaderNames() []string {
	names := make([]string, 0, len(shaderFactories))
	for name := range shaderFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
