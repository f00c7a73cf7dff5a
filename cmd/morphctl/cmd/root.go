package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jpfielding/morph/internal/config"
	"github.com/jpfielding/morph/internal/obslog"
	"github.com/spf13/cobra"
)

var activeConfig = config.Default()

func currentConfig() config.Config {
	return activeConfig
}

// NewRoot builds the morphctl root command: the engine's operators become
// the build (--dual for DualBuild), watershed (--basins for Basins),
// distance and label subcommands operating on raw depth-tagged pixel blobs.
func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	root := &cobra.Command{
		Use:   "morphctl",
		Short: "drive mathematical-morphology operators from the command line",
		Long:  "morphctl exposes the reconstruction, watershed, distance-transform and labeling engine over raw pixel buffers.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				level = slog.LevelInfo
			}
			slog.SetDefault(obslog.Logger(os.Stdout, false, level))

			if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					slog.WarnContext(ctx, "failed to load config, using defaults", "path", cfgPath, "error", err)
				} else {
					activeConfig = cfg
				}
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
	}
	root.AddCommand(
		NewVersionCmd(gitsha),
		NewBuildCmd(ctx),
		NewWatershedCmd(ctx),
		NewDistanceCmd(ctx),
		NewLabelCmd(ctx),
	)
	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("config", "", "path to a YAML config file overriding the built-in defaults")
	return root
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Println(strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, sub := range cmd.Commands() {
		printCommandTree(sub, indent+1)
	}
}

func NewVersionCmd(gitsha string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitsha)
		},
	}
}
