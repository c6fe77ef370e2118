package main

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/window"
	"log"
	"os"
	"time"
)

var renderFlags *config.Flags

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set once and show it in a window",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	renderFlags = config.Bind(cmd.Flags())

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := renderFlags.Resolve()
	if err != nil {
		return err
	}

	start := time.Now()
	img, err := render.RenderContext(cmd.Context(), cfg.Width, cfg.Height, cfg.Viewport, cfg.MaxIterations)
	if err != nil {
		return err
	}
	log.Printf("rendered %dx%d of %v in %s", cfg.Width, cfg.Height, cfg.Viewport, time.Since(start))

	return window.Show("Mandelbrot", img, cfg.Border.X, cfg.Border.Y)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
