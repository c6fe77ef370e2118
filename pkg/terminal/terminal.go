// Package terminal shows a rendered Surface in a true-color terminal.
//
// Every cell holds two vertically stacked pixels: the upper half block is
// drawn in the foreground color of the top pixel on a background of the
// bottom pixel.
package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/willbeason/mandelbrot/pkg/surface"
)

const upperHalfBlock = '▀'

// RenderFunc produces a Surface of exactly width x height pixels.
type RenderFunc func(ctx context.Context, width, height int) (*surface.Surface, error)

// PixelSize is the number of Surface pixels a screen of cols x rows cells holds.
func PixelSize(cols, rows int) (int, int) {
	return cols, 2 * rows
}

// Draw copies img onto screen starting at the top-left cell. Pixels beyond
// the screen are clipped; an odd last row is drawn on the default background.
func Draw(screen tcell.Screen, img *surface.Surface) {
	cols, rows := screen.Size()

	for x := 0; x < img.Width() && x < cols; x++ {
		for row := 0; row < rows && 2*row < img.Height(); row++ {
			style := tcell.StyleDefault.Foreground(convertColor(img.Color(x, 2*row)))
			if 2*row+1 < img.Height() {
				style = style.Background(convertColor(img.Color(x, 2*row+1)))
			}
			screen.SetContent(x, row, upperHalfBlock, nil, style)
		}
	}
}

// Run draws render's output to fill screen and waits until the user quits
// with Escape, q or Ctrl-C, or ctx is done. A resize renders again at the
// new size. The screen must already be initialised, and the caller finalises
// it after Run returns.
func Run(ctx context.Context, screen tcell.Screen, render RenderFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalised.
			ev := screen.PollEvent()
			if ev == nil {
				return
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	redraw := func() error {
		w, h := PixelSize(screen.Size())
		img, err := render(ctx, w, h)
		if err != nil {
			return err
		}

		screen.Clear()
		Draw(screen, img)
		screen.Show()
		return nil
	}

	if err := redraw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				if err := redraw(); err != nil {
					return err
				}
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func convertColor(c colorful.Color) tcell.Color {
	if !c.IsValid() {
		return tcell.ColorDefault
	}

	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
