package main

import (
	"context"
	"errors"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/web"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var (
	renderFlags *config.Flags
	addr        string
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Render the Mandelbrot set once and serve it to browsers",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	renderFlags = config.Bind(cmd.Flags())
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")

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

	handler, err := web.NewHandler(img, "Mandelbrot")
	if err != nil {
		return err
	}
	srv := web.NewServer(addr, handler)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", addr)
	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
