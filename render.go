package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/renderer"
	"github.com/df07/go-prism-raycaster/pkg/scene"
	"github.com/df07/go-prism-raycaster/pkg/watcher"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	scene     string
	scenesDir string
	output    string
	format    string
	shader    string
	tMin      float64
	tMax      float64
	watch     bool
	debounce  time.Duration
}

func newRenderCmd() *cobra.Command {
	defaults := renderer.DefaultRenderConfig()
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image",
		Long: `Render casts one ray per pixel and shades the nearest hit.
Without --out the image is saved as output/<scene>/render_<timestamp>.<format>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runRender(ctx, opts, newLogger())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.scene, "scene", "s", "default", "Built-in scene, scene ID or scene file path")
	flags.StringVar(&opts.scenesDir, "scenes-dir", defaultScenesDir, "Directory searched for scene IDs")
	flags.StringVarP(&opts.output, "out", "o", "", "Output image path (.png or .bmp)")
	flags.StringVarP(&opts.format, "format", "f", "png", "Image format when --out is not set (png or bmp)")
	flags.StringVar(&opts.shader, "shader", "material", fmt.Sprintf("Shader: %v", renderer.ShaderNames()))
	flags.Float64Var(&opts.tMin, "tmin", defaults.TMin, "Smallest ray parameter counted as a hit")
	flags.Float64Var(&opts.tMax, "tmax", defaults.TMax, "Largest ray parameter counted as a hit")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Re-render whenever the scene file changes")
	flags.DurationVar(&opts.debounce, "debounce", 200*time.Millisecond, "Quiet period before a change triggers a re-render")

	return cmd
}

func runRender(ctx context.Context, opts renderOptions, logger core.Logger) error {
	if !opts.watch {
		_, err := renderOnce(ctx, opts, logger)
		return err
	}

	if isBuiltin(opts.scene) {
		return fmt.Errorf("--watch needs a scene file, %q is built in", opts.scene)
	}
	path, err := scene.LocateFile(opts.scene, opts.scenesDir)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(opts.debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(path); err != nil {
		return err
	}

	// A broken scene file should not stop the watch loop
	if _, err := renderOnce(ctx, opts, logger); err != nil {
		logger.Printf("Render failed: %v\n", err)
	}
	logger.Printf("Watching %s for changes (Ctrl+C to stop)\n", path)

	err = fw.Run(ctx, func(changed string) {
		logger.Printf("Scene changed: %s\n", changed)
		if _, err := renderOnce(ctx, opts, logger); err != nil {
			logger.Printf("Render failed: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isBuiltin(name string) bool {
	for _, info := range scene.ListBuiltinScenes() {
		if info.ID == name {
			return true
		}
	}
	return false
}

// renderOnce loads the scene fresh, renders it and saves the image, returning its path
func renderOnce(ctx context.Context, opts renderOptions, logger core.Logger) (string, error) {
	s, err := createScene(opts.scene, opts.scenesDir)
	if err != nil {
		return "", err
	}

	config := renderer.DefaultRenderConfig()
	config.TMin = opts.tMin
	config.TMax = opts.tMax

	shader, err := renderer.NewShader(opts.shader, config)
	if err != nil {
		return "", err
	}

	filename := opts.output
	if filename == "" {
		filename = defaultOutputPath(s.Name, opts.format, time.Now())
	}
	// Check the format before spending time on the render
	if _, err := renderer.FormatFromPath(filename); err != nil {
		return "", err
	}

	logger.Printf("Rendering %s (%dx%d, %d objects, %s shader)\n",
		s.Name, s.Camera.Width(), s.Camera.Height(), len(s.Objects), opts.shader)

	raycaster := renderer.NewRaycaster(s, shader, logger)
	raycaster.SetRenderConfig(config)

	img, stats, err := raycaster.Render(ctx)
	if err != nil {
		return "", err
	}

	if err := renderer.SaveImage(filename, img); err != nil {
		return "", err
	}

	logger.Printf("Render saved as %s (%.1f%% coverage)\n", filename, stats.Coverage()*100)
	return filename, nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.<format>, using the file stem for path-like names
func defaultOutputPath(sceneName, format string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "scene"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", base, fmt.Sprintf("render_%s.%s", timestamp, format))
}
