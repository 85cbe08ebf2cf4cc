package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/geometry"
)

// MockScene implements Scene for testing
type MockScene struct {
	camera     *Camera
	objects    []core.Intersectable
	background core.Vec3
}

func (m MockScene) GetCamera() *Camera                          { return m.camera }
func (m MockScene) GetObjects() []core.Intersectable            { return m.objects }
func (m MockScene) GetBackgroundColors() (core.Vec3, core.Vec3) { return m.background, m.background }

// recordingLogger captures formatted log lines
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// solidMaterial shades every hit with a fixed color
type solidMaterial struct {
	color core.Vec3
}

func (s solidMaterial) Shade(core.Ray, core.HitRecord) core.Vec3 { return s.color }

func newSphereScene(t *testing.T, material core.Material) MockScene {
	t.Helper()
	camera := mustCamera(t, CameraConfig{
		Position: core.NewPoint3(0, 0, 0), Aim: core.NewPoint3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
		ScreenDistance: 1, ScreenHeight: 2, ScreenWidth: 2, PixelHeight: 9, PixelWidth: 9,
	})
	sphere, err := geometry.NewSphere(core.NewPoint3(0, 0, -5), 1, material)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return MockScene{camera: camera, objects: []core.Intersectable{sphere}}
}

func TestRaycaster_CastRay(t *testing.T) {
	scene := newSphereScene(t, nil)
	rc := NewRaycaster(scene, MaskShader{Color: core.NewVec3(1, 0, 0)}, nil)

	center, _ := scene.camera.RayAt(4, 4)
	colorVec, isHit := rc.CastRay(center)
	if !isHit || colorVec != core.NewVec3(1, 0, 0) {
		t.Errorf("Center ray: expected red hit, got %v (hit=%t)", colorVec, isHit)
	}

	corner, _ := scene.camera.RayAt(0, 0)
	colorVec, isHit = rc.CastRay(corner)
	if isHit || colorVec != (core.Vec3{}) {
		t.Errorf("Corner ray: expected black background miss, got %v (hit=%t)", colorVec, isHit)
	}
}

func TestRaycaster_Render(t *testing.T) {
	scene := newSphereScene(t, nil)
	logger := &recordingLogger{}
	rc := NewRaycaster(scene, MaskShader{Color: core.NewVec3(1, 1, 1)}, logger)

	img, stats, err := rc.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 9 || b.Dy() != 9 {
		t.Fatalf("Expected 9x9 image, got %v", b)
	}
	if stats.TotalPixels != 81 || stats.Rays != 81 || stats.Hits+stats.Misses != 81 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.Hits == 0 || stats.Misses == 0 {
		t.Errorf("Expected both hits and misses, got %+v", stats)
	}

	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	if got := img.RGBAAt(4, 4); got != white {
		t.Errorf("Center pixel: expected white, got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != black {
		t.Errorf("Corner pixel: expected black, got %v", got)
	}

	// Count white pixels to cross-check stats
	whites := 0
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if img.RGBAAt(x, y) == white {
				whites++
			}
		}
	}
	if whites != stats.Hits {
		t.Errorf("Expected %d white pixels, got %d", stats.Hits, whites)
	}

	if len(logger.lines) != 1 {
		t.Errorf("Expected one log line, got %v", logger.lines)
	}
}

func TestRaycaster_RenderCancelled(t *testing.T) {
	scene := newSphereScene(t, nil)
	logger := &recordingLogger{}
	rc := NewRaycaster(scene, NormalShader{}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, stats, err := rc.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if img == nil {
		t.Fatal("Expected partial image on cancellation")
	}
	if stats.Rays != 0 {
		t.Errorf("Expected no rays cast after cancellation, got %d", stats.Rays)
	}
	if len(logger.lines) != 1 {
		t.Errorf("Expected cancellation to be logged, got %v", logger.lines)
	}
}

func TestMaterialShader(t *testing.T) {
	ray, _ := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))

	withMaterial := core.HitRecord{T: 1, Normal: core.NewVec3(0, 0, 1), Material: solidMaterial{core.NewVec3(0.2, 0.4, 0.6)}}
	withoutMaterial := core.HitRecord{T: 1, Normal: core.NewVec3(0, 0, 1)}

	shader := MaterialShader{Fallback: NormalShader{}}
	if got := shader.Shade(ray, withMaterial); got != core.NewVec3(0.2, 0.4, 0.6) {
		t.Errorf("Expected material color, got %v", got)
	}
	if got := shader.Shade(ray, withoutMaterial); got != core.NewVec3(0.5, 0.5, 1) {
		t.Errorf("Expected normal-shaded fallback, got %v", got)
	}
	if got := (MaterialShader{}).Shade(ray, withoutMaterial); got != (core.Vec3{}) {
		t.Errorf("Expected black without fallback, got %v", got)
	}
}

func TestDepthShader(t *testing.T) {
	shader := DepthShader{Near: 0, Far: 10}

	tests := []struct {
		t        float64
		expected float64
	}{
		{0, 1},
		{5, 0.5},
		{10, 0},
		{20, 0},
	}

	for _, tt := range tests {
		got := shader.Shade(core.Ray{}, core.HitRecord{T: tt.t})
		if math.Abs(got.X-tt.expected) > 1e-12 {
			t.Errorf("t=%v: expected %v, got %v", tt.t, tt.expected, got.X)
		}
	}
}

func TestNewShader(t *testing.T) {
	for _, name := range ShaderNames() {
		if _, err := NewShader(name, DefaultRenderConfig()); err != nil {
			t.Errorf("NewShader(%q): %v", name, err)
		}
	}
	if _, err := NewShader("phong", DefaultRenderConfig()); err == nil {
		t.Error("Expected error for unknown shader")
	}
}

func TestEncode(t *testing.T) {
	scene := newSphereScene(t, nil)
	img, _, err := NewRaycaster(scene, NormalShader{}, nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	signatures := map[string][]byte{
		"png": []byte("\x89PNG"),
		"bmp": []byte("BM"),
	}
	for format, magic := range signatures {
		var buf bytes.Buffer
		if err := Encode(&buf, img, format); err != nil {
			t.Fatalf("Encode(%s): %v", format, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), magic) {
			t.Errorf("%s output does not start with %q", format, magic)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		wantErr  bool
	}{
		{"out/render.png", "png", false},
		{"RENDER.BMP", "bmp", false},
		{"render.jpg", "", true},
		{"render", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestRenderStats_Coverage(t *testing.T) {
	var stats RenderStats
	if stats.Coverage() != 0 {
		t.Errorf("Expected zero coverage for empty stats")
	}
	stats.record(true)
	stats.record(false)
	stats.record(true)
	stats.record(true)
	if stats.Coverage() != 0.75 {
		t.Errorf("Expected coverage 0.75, got %v", stats.Coverage())
	}
}
