package halftone

import (
	"image"
	"image/color"
	"io"

	xdraw "golang.org/x/image/draw"

	intImage "github.com/gogpu/halftone/internal/image"
)

// Canvas is a fixed-size RGBA8 raster surface. It is the drawing target of
// the scale-fit drawer and the halftone transform.
//
// Canvas implements draw.Image. Pixels are stored premultiplied, which is
// the same as straight alpha for the opaque pixels the renderer produces.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a transparent canvas with the given dimensions.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Pix returns the raw pixel data, 4 bytes per pixel in R, G, B, A order,
// rows packed without padding.
func (c *Canvas) Pix() []uint8 {
	return c.img.Pix
}

// Reset clears every pixel to transparent black.
func (c *Canvas) Reset() {
	clear(c.img.Pix)
}

// Clear fills the entire canvas with an opaque color.
func (c *Canvas) Clear(col RGB) {
	c.FillRect(c.img.Rect, col)
}

// FillRect fills r, clipped to the canvas, with an opaque color.
func (c *Canvas) FillRect(r image.Rectangle, col RGB) {
	r = r.Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	px := col.Color()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.img.Pix[c.img.PixOffset(r.Min.X, y):c.img.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = px.R
			row[i+1] = px.G
			row[i+2] = px.B
			row[i+3] = px.A
		}
	}
}

// DrawImage scales src into dst using the given interpolation, compositing
// over the existing content.
func (c *Canvas) DrawImage(src image.Image, dst image.Rectangle, interp Interpolation) {
	if dst.Empty() {
		return
	}
	interp.kernel().Scale(c.img, dst, src, src.Bounds(), xdraw.Over, nil)
}

// DrawImageFit draws src at its scale-fit placement: as large as possible,
// centered, aspect ratio preserved. Areas outside the placement keep their
// current content.
func (c *Canvas) DrawImageFit(src image.Image, interp Interpolation) (Placement, error) {
	if src == nil {
		return Placement{}, ErrInvalidImage
	}
	b := src.Bounds()
	p, err := Fit(b.Dx(), b.Dy(), c.Width(), c.Height())
	if err != nil {
		return Placement{}, err
	}
	c.DrawImage(src, p.Rect(), interp)
	return p, nil
}

// Snapshot returns a straight-alpha copy of the full canvas, the way an
// HTML canvas reports its image data.
func (c *Canvas) Snapshot() *image.NRGBA {
	out := image.NewNRGBA(c.img.Rect)
	xdraw.Draw(out, out.Rect, c.img, image.Point{}, xdraw.Src)
	return out
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	out := NewCanvas(c.Width(), c.Height())
	copy(out.img.Pix, c.img.Pix)
	return out
}

// ToImage returns a copy of the canvas as an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	return c.Clone().img
}

// EncodePNG encodes the canvas as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return intImage.EncodePNG(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return intImage.SavePNG(path, c.img)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
