package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/render"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	renderFlags *config.Flags
	out         string
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the Mandelbrot set to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	renderFlags = config.Bind(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "",
		"output file; defaults to out/<timestamp>.png")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := renderFlags.Resolve()
	if err != nil {
		return err
	}

	img, err := render.RenderContext(cmd.Context(), cfg.Width, cfg.Height, cfg.Viewport, cfg.MaxIterations)
	if err != nil {
		return err
	}

	path := out
	if path == "" {
		path = fmt.Sprintf("out/%s.png", time.Now().Format("20060102150405"))
	}

	err = os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return err
	}

	log.Printf("wrote %dx%d image to %s", cfg.Width, cfg.Height, path)

	return f.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
