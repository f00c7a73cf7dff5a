package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	cmd "github.com/jpfielding/morph/cmd/morphctl/cmd"
	"github.com/jpfielding/morph/internal/obslog"
)

var (
	GitSHA string = "NA"
)

func main() {
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()
	go func() {
		defer cnc()
		<-ctx.Done()
	}()
	slog.SetDefault(obslog.Logger(os.Stdout, false, slog.LevelInfo))
	ctx = obslog.AppendCtx(ctx,
		slog.Group("morph",
			slog.String("name", "morphctl"),
			slog.String("git", GitSHA),
		))
	cmd.NewRoot(ctx, GitSHA).Execute()
}
