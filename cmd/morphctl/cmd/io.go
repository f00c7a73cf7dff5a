package cmd

import (
	"fmt"
	"os"

	"github.com/jpfielding/morph/pkg/morph"
	"github.com/jpfielding/morph/pkg/morph/grid"
	"github.com/spf13/cobra"
)

func addPixelFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input raw pixel blob path")
	pf.StringP("out", "o", "", "output raw pixel blob path")
	pf.Int("width", 0, "image width")
	pf.Int("height", 0, "image height")
	pf.Int("depth", 8, "pixel depth: 1, 8 or 32")
	pf.String("grid", "", "connectivity: square, hexagonal, cubic, fcc (defaults to the config value)")
}

func loadImage(cmd *cobra.Command) (*morph.Image, error) {
	path, _ := cmd.Flags().GetString("in")
	return loadImagePath(cmd, path)
}

func loadImagePath(cmd *cobra.Command, path string) (*morph.Image, error) {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	depthFlag, _ := cmd.Flags().GetInt("depth")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, err := morph.NewImage(width, height, morph.Depth(depthFlag))
	if err != nil {
		return nil, err
	}
	if err := img.Load(data); err != nil {
		return nil, err
	}
	return img, nil
}

func loadDepth32Path(cmd *cobra.Command, path string) (*morph.Image, error) {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, err := morph.NewImage(width, height, morph.Depth32)
	if err != nil {
		return nil, err
	}
	if err := img.Load(data); err != nil {
		return nil, err
	}
	return img, nil
}

func saveImage(cmd *cobra.Command, img *morph.Image) error {
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		return nil
	}
	return os.WriteFile(path, img.Extract(), 0o644)
}

func resolveGrid(cmd *cobra.Command) (grid.Kind, error) {
	name, _ := cmd.Flags().GetString("grid")
	if name == "" {
		name = currentConfig().Grid
	}
	switch name {
	case "square":
		return grid.Square, nil
	case "hexagonal":
		return grid.Hexagonal, nil
	case "cubic":
		return grid.Cubic, nil
	case "fcc":
		return grid.FCC, nil
	default:
		return 0, fmt.Errorf("unknown grid %q", name)
	}
}

func resolveEdge(name string) (morph.EdgePolicy, error) {
	if name == "" {
		name = currentConfig().Edge
	}
	switch name {
	case "empty":
		return morph.EmptyEdge, nil
	case "filled":
		return morph.FilledEdge, nil
	default:
		return 0, fmt.Errorf("unknown edge policy %q", name)
	}
}
