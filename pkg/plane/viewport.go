package plane

import (
	"fmt"
	"math"
)

// Viewport is a rectangle in the complex plane.
//
// Re spans the real axis and Im the imaginary axis. A valid Viewport has
// ReMax > ReMin and ImMax > ImMin.
type Viewport struct {
	ReMin float64 `toml:"re_min" yaml:"re_min"`
	ReMax float64 `toml:"re_max" yaml:"re_max"`
	ImMin float64 `toml:"im_min" yaml:"im_min"`
	ImMax float64 `toml:"im_max" yaml:"im_max"`
}

// Reference shows the whole set with a little room on every side.
var Reference = Viewport{
	ReMin: -2,
	ReMax: 1,
	ImMin: -1.2,
	ImMax: 1.2,
}

// Validate reports an error wrapping ErrInvalidArgument if the bounds are
// not finite or are inverted or degenerate.
func (v Viewport) Validate() error {
	for _, b := range []float64{v.ReMin, v.ReMax, v.ImMin, v.ImMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: viewport bound %v is not finite", ErrInvalidArgument, b)
		}
	}

	if v.ReMax <= v.ReMin {
		return fmt.Errorf("%w: viewport real range [%v, %v] is empty", ErrInvalidArgument, v.ReMin, v.ReMax)
	}
	if v.ImMax <= v.ImMin {
		return fmt.Errorf("%w: viewport imaginary range [%v, %v] is empty", ErrInvalidArgument, v.ImMin, v.ImMax)
	}

	return nil
}

// Step is the plane distance between neighbouring pixels on a width x height
// surface.
//
// The same step is used on both axes so pixels stay square. When the aspect
// ratio of the surface differs from the viewport's, the axis needing the
// coarser step covers its full range and the other overshoots or falls short
// of its max bound.
func (v Viewport) Step(width, height int) float64 {
	return math.Max(
		(v.ReMax-v.ReMin)/float64(width),
		(v.ImMax-v.ImMin)/float64(height),
	)
}

// At maps pixel (x, y) to a point in the plane.
func (v Viewport) At(x, y int, step float64) (float64, float64) {
	return v.ReMin + float64(x)*step, v.ImMin + float64(y)*step
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%v, %v] x [%v, %v]i", v.ReMin, v.ReMax, v.ImMin, v.ImMax)
}
