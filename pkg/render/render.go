package render

import (
	"context"
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/palette"
	"github.com/willbeason/mandelbrot/pkg/plane"
	"github.com/willbeason/mandelbrot/pkg/surface"
)

// Render colors every pixel of a width x height Surface by the escape time of
// the plane point it maps to in viewport.
//
// Pixel (x, y) samples viewport.ReMin + x*step + (viewport.ImMin + y*step)i,
// where step is viewport.Step(width, height). Invalid dimensions, budgets or
// bounds are reported as plane.ErrInvalidArgument before any work is done.
func Render(width, height int, viewport plane.Viewport, maxIterations int) (*surface.Surface, error) {
	return RenderContext(context.Background(), width, height, viewport, maxIterations)
}

// RenderContext is Render with a cancellation check between columns.
// A cancelled render returns the context's error and no Surface.
func RenderContext(ctx context.Context, width, height int, viewport plane.Viewport, maxIterations int) (*surface.Surface, error) {
	err := Validate(width, height, viewport, maxIterations)
	if err != nil {
		return nil, err
	}

	img := surface.New(width, height)
	step := viewport.Step(width, height)

	for x := 0; x < width; x++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for y := 0; y < height; y++ {
			cRe, cIm := viewport.At(x, y, step)
			n := escape.Evaluate(cRe, cIm, maxIterations)
			img.Set(x, y, palette.Color(n, maxIterations))
		}
	}

	return img, nil
}

// Validate checks the arguments of Render.
func Validate(width, height int, viewport plane.Viewport, maxIterations int) error {
	if width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", plane.ErrInvalidArgument, width)
	}
	if height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", plane.ErrInvalidArgument, height)
	}
	if maxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", plane.ErrInvalidArgument, maxIterations)
	}

	return viewport.Validate()
}
