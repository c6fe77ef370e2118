package transforms

// Mandelbrot is the quadratic map z -> z*z + c.
//
// The complex arithmetic is spelled out on the real and imaginary parts so the
// result does not depend on how the compiler lowers complex128 multiplication.
type Mandelbrot struct{}

func (m Mandelbrot) Next(re, im, cRe, cIm float64) (float64, float64) {
	return re*re - im*im + cRe, 2*re*im + cIm
}
