package halftone

import (
	"fmt"
	"image"
	"math"
)

// Placement describes where a scale-fitted image lands on a canvas.
// X, Y, Width and Height are exact (unrounded) canvas coordinates.
type Placement struct {
	Scale         float64
	X, Y          float64
	Width, Height float64
}

// Fit computes the largest centered placement of a srcW×srcH image inside
// a dstW×dstH canvas that preserves the source aspect ratio.
func Fit(srcW, srcH, dstW, dstH int) (Placement, error) {
	if srcW <= 0 || srcH <= 0 {
		return Placement{}, fmt.Errorf("%w: source size %dx%d", ErrInvalidImage, srcW, srcH)
	}
	if dstW <= 0 || dstH <= 0 {
		return Placement{}, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfiguration, dstW, dstH)
	}

	scale := math.Min(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	w := float64(srcW) * scale
	h := float64(srcH) * scale
	return Placement{
		Scale:  scale,
		X:      (float64(dstW) - w) / 2,
		Y:      (float64(dstH) - h) / 2,
		Width:  w,
		Height: h,
	}, nil
}

// Rect rounds the placement to whole pixels. The result is empty only when
// the scaled image is thinner than half a pixel.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(p.X)),
		int(math.Round(p.Y)),
		int(math.Round(p.X+p.Width)),
		int(math.Round(p.Y+p.Height)),
	)
}

// SizeForContainer returns the canvas size used for a container of the
// given width: full width, height 3/4 of it capped at 600 pixels.
func SizeForContainer(width int) (w, h int) {
	return width, min(600, width*3/4)
}
