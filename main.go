package main

import (
	"fmt"
	"log"
	"os"

	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/scene"
	"github.com/spf13/cobra"
)

const defaultScenesDir = "scenes"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prism",
		Short: "Pinhole-camera raycaster",
		Long: `prism casts one ray through the center of every pixel of a pinhole camera,
finds the nearest surface each ray meets and writes a debug-shaded image.
Scenes are built in or loaded from TOML and JSON files.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRenderCmd(), newInfoCmd(), newScenesCmd())
	return rootCmd
}

// newLogger returns the logger used by every command; progress goes to stderr
func newLogger() core.Logger {
	return log.New(os.Stderr, "", log.LstdFlags)
}

// createScene resolves a built-in scene name, a scene ID in scenesDir, or a scene file path
func createScene(sceneType, scenesDir string) (*scene.Scene, error) {
	s, err := scene.Resolve(sceneType, scenesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %q: %w", sceneType, err)
	}
	return s, nil
}

func formatVector(x, y, z float64) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", x, y, z)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
