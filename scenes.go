package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/df07/go-prism-raycaster/pkg/scene"
	"github.com/spf13/cobra"
)

func newScenesCmd() *cobra.Command {
	var (
		scenesDir string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes and scene files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes, err := scene.ListAllScenes(scenesDir, newLogger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(scenes)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tDESCRIPTION")
			for _, s := range scenes {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Type, s.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&scenesDir, "scenes-dir", defaultScenesDir, "Directory scanned for .toml and .json scenes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the list as JSON")
	return cmd
}
