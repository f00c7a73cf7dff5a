package cmd

import (
	"context"
	"fmt"

	"github.com/jpfielding/morph/pkg/morph"
	"github.com/jpfielding/morph/pkg/morph/engine"
	"github.com/spf13/cobra"
)

// NewDistanceCmd wires DistanceTransform onto the CLI: a depth-1 set image
// is read from --in and a depth-32 distance map is written to --out.
func NewDistanceCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "binary distance transform",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadImage(cmd)
			if err != nil {
				return fmt.Errorf("load src: %w", err)
			}
			kind, err := resolveGrid(cmd)
			if err != nil {
				return err
			}
			edgeName, _ := cmd.Flags().GetString("edge")
			edge, err := resolveEdge(edgeName)
			if err != nil {
				return err
			}

			dest, err := morph.NewImage(src.Width, src.Height, morph.Depth32)
			if err != nil {
				return err
			}
			if errv := engine.DistanceTransform(src.Field(), dest.Field(), kind, edge); errv != nil {
				return errv
			}
			return saveImage(cmd, dest)
		},
	}
	addPixelFlags(cmd)
	cmd.Flags().String("edge", "", "edge policy: empty, filled (defaults to the config value)")
	return cmd
}
