package escape

import (
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

const (
	// BailoutRadius is the magnitude beyond which an orbit is considered diverging.
	BailoutRadius = 2.0

	// BailoutSquared is compared against re*re + im*im to avoid a square root.
	BailoutSquared = BailoutRadius * BailoutRadius
)

var mandelbrot = transforms.Mandelbrot{}

// Evaluate returns the escape time of c = cRe + cIm*i.
//
// The orbit starts at z = 0. The result is the 0-based index of the iteration
// after which |z| reached the bailout radius, or maxIterations if the orbit
// stayed bounded for the whole budget. maxIterations must be positive.
func Evaluate(cRe, cIm float64, maxIterations int) int {
	re, im := 0.0, 0.0

	for i := 0; i < maxIterations; i++ {
		re, im = mandelbrot.Next(re, im, cRe, cIm)

		if re*re+im*im >= BailoutSquared {
			return i
		}
	}

	return maxIterations
}
