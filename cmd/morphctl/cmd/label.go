package cmd

import (
	"context"
	"fmt"

	"github.com/jpfielding/morph/pkg/morph"
	"github.com/jpfielding/morph/pkg/morph/engine"
	"github.com/spf13/cobra"
)

// NewLabelCmd wires Label onto the CLI: a source image of the --depth given
// is read from --in and a depth-32 label image is written to --out; the object count is
// printed to stdout.
func NewLabelCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "connected-component labeling",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadImage(cmd)
			if err != nil {
				return fmt.Errorf("load src: %w", err)
			}
			kind, err := resolveGrid(cmd)
			if err != nil {
				return err
			}

			low, _ := cmd.Flags().GetInt("label-low")
			high, _ := cmd.Flags().GetInt("label-high")
			if low == 0 && high == 0 {
				low, high = currentConfig().LabelLow, currentConfig().LabelHigh
			}

			dest, err := morph.NewImage(src.Width, src.Height, morph.Depth32)
			if err != nil {
				return err
			}
			nb, errv := engine.Label(src.Field(), dest.Field(), kind, uint32(low), uint32(high))
			if errv != nil {
				return errv
			}
			fmt.Printf("objects: %d\n", nb)
			return saveImage(cmd, dest)
		},
	}
	addPixelFlags(cmd)
	cmd.Flags().Int("label-low", 0, "low end of the external label range (defaults to the config value)")
	cmd.Flags().Int("label-high", 0, "high end (exclusive) of the external label range (defaults to the config value)")
	return cmd
}
