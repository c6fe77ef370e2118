package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// InSet colors points whose orbit stayed bounded for the whole iteration
// budget. It is the web color purple, #800080, which the escape gradient
// never produces: the gradient's green channel is only zero for black.
var InSet = colorful.Color{R: 128.0 / 255.0, G: 0, B: 128.0 / 255.0}

// Color maps an escape time n in [0, maxIterations] to a color.
//
// Escaped points run from black through green (n at half the budget) to
// white. Red and blue always match and carry the upper half of the ramp.
func Color(n, maxIterations int) colorful.Color {
	if n == maxIterations {
		return InSet
	}

	high, low := Channels(n, maxIterations)
	return colorful.Color{
		R: low / 255.0,
		G: high / 255.0,
		B: low / 255.0,
	}
}

// Channels returns the two 0-255 ramp values for escape time n.
// high saturates at the midpoint of the budget, low starts there.
func Channels(n, maxIterations int) (high, low float64) {
	t := float64(n) / float64(maxIterations)

	high = math.Min(255*2*t, 255)
	low = math.Max(255*(2*t-1), 0)

	return high, low
}
