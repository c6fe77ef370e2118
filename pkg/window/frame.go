package window

import (
	"image"
)

// Frame places a width x height image inside a border.
type Frame struct {
	Width, Height    int
	BorderX, BorderY int
}

// Size is the size of the whole window.
func (f Frame) Size() (int, int) {
	return f.Width + 2*f.BorderX, f.Height + 2*f.BorderY
}

// Canvas is where the image is drawn, in window coordinates.
func (f Frame) Canvas() image.Rectangle {
	return image.Rect(f.BorderX, f.BorderY, f.BorderX+f.Width, f.BorderY+f.Height)
}
