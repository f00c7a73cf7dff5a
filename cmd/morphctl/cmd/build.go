package cmd

import (
	"context"
	"fmt"

	"github.com/jpfielding/morph/pkg/morph/engine"
	"github.com/spf13/cobra"
)

// NewBuildCmd wires Build and its dual (--dual) onto the CLI: mask is read
// from --in, seed from --seed, and the reconstructed seed is written to
// --out.
func NewBuildCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "geodesic reconstruction by dilation (or erosion, with --dual)",
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := loadImage(cmd)
			if err != nil {
				return fmt.Errorf("load mask: %w", err)
			}

			seedPath, _ := cmd.Flags().GetString("seed")
			if seedPath == "" {
				return fmt.Errorf("--seed is required")
			}
			seed, err := loadImagePath(cmd, seedPath)
			if err != nil {
				return fmt.Errorf("load seed: %w", err)
			}

			kind, err := resolveGrid(cmd)
			if err != nil {
				return err
			}

			dual, _ := cmd.Flags().GetBool("dual")
			var errv error
			if dual {
				if e := engine.DualBuild(mask.Field(), seed.Field(), kind); e != nil {
					errv = e
				}
			} else {
				if e := engine.Build(mask.Field(), seed.Field(), kind); e != nil {
					errv = e
				}
			}
			if errv != nil {
				return errv
			}
			return saveImage(cmd, seed)
		},
	}
	addPixelFlags(cmd)
	cmd.Flags().String("seed", "", "seed (marker) raw pixel blob path")
	cmd.Flags().Bool("dual", false, "run DualBuild instead of Build")
	return cmd
}
