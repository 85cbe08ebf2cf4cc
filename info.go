package main

import (
	"fmt"
	"io"

	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/df07/go-prism-raycaster/pkg/scene"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var scenesDir string

	cmd := &cobra.Command{
		Use:   "info [scene]",
		Short: "Display camera geometry for a scene",
		Long:  "Show the camera configuration, the orthonormal basis derived from it and the pixel grid placement.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "default"
			if len(args) == 1 {
				name = args[0]
			}

			s, err := createScene(name, scenesDir)
			if err != nil {
				return err
			}
			return printInfo(cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().StringVar(&scenesDir, "scenes-dir", defaultScenesDir, "Directory searched for scene IDs")
	return cmd
}

func vecString(v core.Vec3) string     { return formatVector(v.X, v.Y, v.Z) }
func pointString(p core.Point3) string { return formatVector(p.X, p.Y, p.Z) }

func printInfo(w io.Writer, s *scene.Scene) error {
	camera := s.Camera
	config := camera.Config()
	basis := camera.Basis()

	det, err := basis.Matrix().Det()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Scene: %s\n", s.Name)
	fmt.Fprintf(w, "Objects: %d\n\n", len(s.Objects))

	fmt.Fprintln(w, "Camera:")
	fmt.Fprintf(w, "  Position: %s\n", pointString(config.Position))
	fmt.Fprintf(w, "  Aim: %s\n", pointString(config.Aim))
	fmt.Fprintf(w, "  Up (unused): %s\n", vecString(config.Up))
	fmt.Fprintf(w, "  Screen: %.6f x %.6f at distance %.6f\n", config.ScreenWidth, config.ScreenHeight, config.ScreenDistance)
	fmt.Fprintf(w, "  Pixels: %d x %d (%d rays)\n\n", camera.Width(), camera.Height(), camera.Len())

	fmt.Fprintln(w, "Basis:")
	fmt.Fprintf(w, "  W (backward): %s\n", vecString(basis.W()))
	fmt.Fprintf(w, "  U (right): %s\n", vecString(basis.U()))
	fmt.Fprintf(w, "  V (up): %s\n", vecString(basis.V()))
	fmt.Fprintf(w, "  Determinant: %.6f\n", det)
	fmt.Fprintf(w, "  Matrix:\n%v\n\n", basis.Matrix())

	fmt.Fprintln(w, "Pixel grid:")
	fmt.Fprintf(w, "  Pixel (0,0) center: %s\n", pointString(camera.Pixel00()))
	fmt.Fprintf(w, "  Delta U: %s\n", vecString(camera.PixelDeltaU()))
	fmt.Fprintf(w, "  Delta V: %s\n", vecString(camera.PixelDeltaV()))
	return nil
}
