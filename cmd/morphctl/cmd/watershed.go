package cmd

import (
	"context"
	"fmt"

	"github.com/jpfielding/morph/pkg/morph/engine"
	"github.com/spf13/cobra"
)

// NewWatershedCmd wires Watershed/Basins onto the CLI: src is read from
// --in, markers from --markers, and the flooded marker image (label plus,
// for Watershed, the dividing line) is written to --out.
func NewWatershedCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watershed",
		Short: "marker-driven watershed segmentation (or --basins for no dividing line)",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadImage(cmd)
			if err != nil {
				return fmt.Errorf("load src: %w", err)
			}

			markerPath, _ := cmd.Flags().GetString("markers")
			if markerPath == "" {
				return fmt.Errorf("--markers is required")
			}
			marker, err := loadDepth32Path(cmd, markerPath)
			if err != nil {
				return fmt.Errorf("load markers: %w", err)
			}

			kind, err := resolveGrid(cmd)
			if err != nil {
				return err
			}

			maxLevel, _ := cmd.Flags().GetInt("max-level")
			if maxLevel == 0 {
				maxLevel = currentConfig().MaxLevel
			}

			basins, _ := cmd.Flags().GetBool("basins")
			var errv error
			if basins {
				errv = engine.Basins(src.Field(), marker.Field(), kind, maxLevel)
			} else {
				errv = engine.Watershed(src.Field(), marker.Field(), kind, maxLevel)
			}
			if errv != nil {
				return errv
			}
			return saveImage(cmd, marker)
		},
	}
	addPixelFlags(cmd)
	cmd.Flags().String("markers", "", "marker raw pixel blob path (depth-32)")
	cmd.Flags().Int("max-level", 0, "flood ceiling; 0 uses the config value (where 0 means all levels)")
	cmd.Flags().Bool("basins", false, "run Basins instead of Watershed")
	return cmd
}
