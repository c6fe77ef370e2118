package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Unset marks a cell that has not been written since the Surface was created.
var Unset = colorful.Color{R: math.NaN(), G: math.NaN(), B: math.NaN()}

// Surface is a fixed-size grid of colors with float channels in [0, 1].
//
// Cells are stored column by column, so Surface[x][y] is pix[x*height+y].
// A Surface is also an image.Image with its origin at (0, 0).
type Surface struct {
	width, height int
	pix           []colorful.Color
}

// New returns a width x height Surface with every cell Unset.
// Both dimensions must be positive.
func New(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		panic("surface dimensions must be positive")
	}

	pix := make([]colorful.Color, width*height)
	for i := range pix {
		pix[i] = Unset
	}

	return &Surface{
		width:  width,
		height: height,
		pix:    pix,
	}
}

func (s *Surface) Width() int {
	return s.width
}

func (s *Surface) Height() int {
	return s.height
}

// Set writes the color of cell (x, y).
func (s *Surface) Set(x, y int, c colorful.Color) {
	s.pix[x*s.height+y] = c
}

// Color returns the color of cell (x, y).
func (s *Surface) Color(x, y int) colorful.Color {
	return s.pix[x*s.height+y]
}

// Complete reports whether every cell holds a valid color.
func (s *Surface) Complete() bool {
	for _, c := range s.pix {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements image.Image. Points outside the Surface and Unset cells are
// transparent.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return color.RGBA{}
	}

	c := s.Color(x, y)
	if !c.IsValid() {
		return color.RGBA{}
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (s *Surface) Opaque() bool {
	return s.Complete()
}

var _ image.Image = (*Surface)(nil)
