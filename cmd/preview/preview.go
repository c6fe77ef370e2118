package main

import (
	"context"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/surface"
	"github.com/willbeason/mandelbrot/pkg/terminal"
	"os"
	"os/signal"
	"syscall"
)

var renderFlags *config.Flags

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the Mandelbrot set in the terminal",
		Long: "Render the Mandelbrot set in a true-color terminal, two pixels per cell.\n" +
			"The terminal size replaces --width and --height. Quit with q or Escape.",
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	err = screen.Init()
	if err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return terminal.Run(ctx, screen, func(ctx context.Context, width, height int) (*surface.Surface, error) {
		return render.RenderContext(ctx, width, height, cfg.Viewport, cfg.MaxIterations)
	})
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
