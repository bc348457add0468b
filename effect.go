package halftone

import (
	"fmt"
	"image"
	"image/color"
	"time"
)

// RadiusDivisor maps the 0..255 gray range onto dot radii: a white cell gets
// a radius of DotSize*255/512, just under half the dot size. The value is
// part of the output format and must not be changed.
const RadiusDivisor = 512

// Dot is one planned grid dot.
type Dot struct {
	X, Y   float64 // center in canvas coordinates
	Radius float64
	Gray   float64 // sampled brightness, 0..255
}

// Gray returns the unweighted channel average of r, g and b.
func Gray(r, g, b uint8) float64 {
	return (float64(r) + float64(g) + float64(b)) / 3
}

// Radius returns the dot radius for a cell of the given brightness.
// It is zero for black and grows linearly with gray.
func Radius(dotSize int, gray float64) float64 {
	return float64(dotSize) * gray / RadiusDivisor
}

// Plan computes the dot grid for a sampled image. Cells start at the
// sample's top-left corner and advance by p.Step() in both directions;
// each cell is sampled at its top-left pixel and its dot is centered half
// a step further in.
func Plan(sample image.Image, p Params) ([]Dot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := sample.Bounds()
	step := p.Step()
	half := float64(step) / 2
	cols := (b.Dx() + step - 1) / step
	rows := (b.Dy() + step - 1) / step

	dots := make([]Dot, 0, max(cols*rows, 0))
	for y := 0; y < b.Dy(); y += step {
		for x := 0; x < b.Dx(); x += step {
			c := sampleAt(sample, b.Min.X+x, b.Min.Y+y)
			gray := Gray(c.R, c.G, c.B)
			dots = append(dots, Dot{
				X:      float64(x) + half,
				Y:      float64(y) + half,
				Radius: Radius(p.DotSize, gray),
				Gray:   gray,
			})
		}
	}
	return dots, nil
}

// sampleAt reads one straight-alpha pixel, with a fast path for the
// snapshots produced by Canvas.
func sampleAt(img image.Image, x, y int) color.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// Apply replaces the canvas content with its halftone rendition.
//
// The current canvas pixels are captured as the sample source, the canvas
// is filled with p.Background, and one p.DotColor circle is drawn per grid
// cell. Invalid parameters leave the canvas untouched.
//
// Apply samples whatever the canvas holds; the caller must draw the source
// first, typically with DrawImageFit. A canvas that was never drawn samples
// as black and comes out as plain background. Editor.Apply performs both
// steps and reports ErrNotReady when no image is loaded.
func Apply(c *Canvas, p Params, mode RasterizerMode) error {
	if c == nil || c.Width() == 0 || c.Height() == 0 {
		return fmt.Errorf("%w: no canvas to sample", ErrNotReady)
	}
	start := time.Now()

	sample := c.Snapshot()
	dots, err := Plan(sample, p)
	if err != nil {
		return err
	}

	c.Clear(p.Background)
	drawn := 0
	for _, d := range dots {
		if d.Radius <= 0 {
			continue
		}
		c.FillCircle(d.X, d.Y, d.Radius, p.DotColor, mode)
		drawn++
	}

	Logger().Debug("halftone applied",
		"size", fmt.Sprintf("%dx%d", c.Width(), c.Height()),
		"step", p.Step(),
		"cells", len(dots),
		"drawn", drawn,
		"rasterizer", mode,
		"elapsed", time.Since(start),
	)
	return nil
}
