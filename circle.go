package halftone

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// RasterizerMode controls how dots are turned into pixels.
//
// The mode is per-Editor, not global. Both modes produce deterministic
// output for the same input.
type RasterizerMode int

const (
	// RasterizerAntialiased computes exact area coverage per pixel, giving
	// soft dot edges like an HTML canvas arc fill (default).
	RasterizerAntialiased RasterizerMode = iota

	// RasterizerAliased paints a pixel iff its center lies inside the circle.
	// Output contains only the background and dot colors.
	RasterizerAliased
)

// String returns the rasterizer mode name.
func (m RasterizerMode) String() string {
	switch m {
	case RasterizerAntialiased:
		return "Antialiased"
	case RasterizerAliased:
		return "Aliased"
	default:
		return "Unknown"
	}
}

// kappa places cubic Bézier control points so that four arcs approximate a circle.
const kappa = 0.5522847498307936

// FillCircle fills a circle centered at (cx, cy) with an opaque color.
// Circles with a non-positive radius draw nothing.
func (c *Canvas) FillCircle(cx, cy, radius float64, col RGB, mode RasterizerMode) {
	if !(radius > 0) {
		return
	}
	// Work area never exceeds the canvas, however large the radius.
	w, h := float64(c.Width()), float64(c.Height())
	bbox := image.Rect(
		int(math.Max(math.Floor(cx-radius), 0)),
		int(math.Max(math.Floor(cy-radius), 0)),
		int(math.Min(math.Ceil(cx+radius), w)),
		int(math.Min(math.Ceil(cy+radius), h)),
	).Intersect(c.img.Rect)
	if bbox.Empty() {
		return
	}
	if coversRect(cx, cy, radius, bbox) {
		c.FillRect(bbox, col)
		return
	}
	switch mode {
	case RasterizerAliased:
		c.fillCircleAliased(bbox, cx, cy, radius, col)
	default:
		c.fillCircleAntialiased(bbox, cx, cy, radius, col)
	}
}

// coversRect reports whether every corner of r lies inside the circle, in
// which case the circle covers r completely.
func coversRect(cx, cy, radius float64, r image.Rectangle) bool {
	dx := math.Max(math.Abs(float64(r.Min.X)-cx), math.Abs(float64(r.Max.X)-cx))
	dy := math.Max(math.Abs(float64(r.Min.Y)-cy), math.Abs(float64(r.Max.Y)-cy))
	return dx*dx+dy*dy <= radius*radius
}

func (c *Canvas) fillCircleAliased(bbox image.Rectangle, cx, cy, radius float64, col RGB) {
	r2 := radius * radius
	px := col.Color()
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		dy := float64(y) + 0.5 - cy
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.img.SetRGBA(x, y, px)
			}
		}
	}
}

// fillCircleAntialiased rasterizes the circle into a coverage mask covering
// bbox, the circle's bounds already clipped to the canvas, then composites
// the dot color through the mask. Path points outside the mask are clamped
// by the rasterizer, so a circle larger than the canvas still fills it.
func (c *Canvas) fillCircleAntialiased(bbox image.Rectangle, cx, cy, radius float64, col RGB) {
	w, h := bbox.Dx(), bbox.Dy()
	ox := float32(cx) - float32(bbox.Min.X)
	oy := float32(cy) - float32(bbox.Min.Y)
	r := float32(radius)
	k := float32(kappa) * r

	z := vector.NewRasterizer(w, h)
	z.MoveTo(ox+r, oy)
	z.CubeTo(ox+r, oy+k, ox+k, oy+r, ox, oy+r)
	z.CubeTo(ox-k, oy+r, ox-r, oy+k, ox-r, oy)
	z.CubeTo(ox-r, oy-k, ox-k, oy-r, ox, oy-r)
	z.CubeTo(ox+k, oy-r, ox+r, oy-k, ox+r, oy)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	xdraw.DrawMask(c.img, bbox, image.NewUniform(col.Color()), image.Point{}, mask, image.Point{}, xdraw.Over)
}
