package config

import (
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/plane"
	"github.com/willbeason/mandelbrot/pkg/render"
)

const (
	DefaultWidth         = 740
	DefaultHeight        = 605
	DefaultBorder        = 25
	DefaultMaxIterations = 50
)

// Config describes one render and how it is framed when displayed.
type Config struct {
	// Width and Height are the size of the rendered Surface in pixels.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// MaxIterations is the escape-time budget per pixel.
	MaxIterations int `toml:"max_iterations" yaml:"max_iterations"`

	Viewport plane.Viewport `toml:"viewport" yaml:"viewport"`

	// Border is the margin, in pixels, left around the Surface on each side
	// when it is shown in a window.
	Border Border `toml:"border" yaml:"border"`
}

type Border struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

// Default returns the reference setup: the whole set on a 740x605 canvas
// with a 25 pixel border and 50 iterations.
func Default() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxIterations: DefaultMaxIterations,
		Viewport:      plane.Reference,
		Border: Border{
			X: DefaultBorder,
			Y: DefaultBorder,
		},
	}
}

// Validate reports the first setting that cannot be rendered or displayed.
func (c Config) Validate() error {
	err := render.Validate(c.Width, c.Height, c.Viewport, c.MaxIterations)
	if err != nil {
		return err
	}

	if c.Border.X < 0 || c.Border.Y < 0 {
		return fmt.Errorf("%w: border must not be negative, got %dx%d",
			plane.ErrInvalidArgument, c.Border.X, c.Border.Y)
	}

	return nil
}

// WindowSize is the size of a window holding the Surface and its border.
func (c Config) WindowSize() (int, int) {
	return c.Width + 2*c.Border.X, c.Height + 2*c.Border.Y
}
