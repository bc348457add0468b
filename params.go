package halftone

import "fmt"

// Default effect parameters.
const (
	DefaultDotSize    = 5
	DefaultDotSpacing = 0
)

// Range is an inclusive integer interval, used to describe slider bounds.
type Range struct {
	Min, Max int
}

// Slider bounds offered by interactive front ends. Params outside these
// ranges are still valid as long as Validate accepts them.
var (
	DotSizeRange    = Range{Min: 2, Max: 20}
	DotSpacingRange = Range{Min: 1, Max: 10}
)

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp restricts v to the range.
func (r Range) Clamp(v int) int {
	return max(r.Min, min(v, r.Max))
}

// Params controls the dot effect.
type Params struct {
	// DotSize is the nominal dot diameter in pixels. The drawn radius is
	// DotSize*gray/RadiusDivisor, so a white cell yields a dot just under
	// DotSize/2 in radius.
	DotSize int

	// DotSpacing is the gap added between grid cells.
	DotSpacing int

	// DotColor fills every dot.
	DotColor RGB

	// Background fills the canvas before dots are drawn.
	Background RGB
}

// DefaultParams returns the parameters the editor starts with.
func DefaultParams() Params {
	return Params{
		DotSize:    DefaultDotSize,
		DotSpacing: DefaultDotSpacing,
		DotColor:   White,
		Background: DefaultBackground,
	}
}

// Step returns the grid pitch, DotSize + DotSpacing.
func (p Params) Step() int {
	return p.DotSize + p.DotSpacing
}

// Validate reports ErrInvalidConfiguration when the parameters cannot
// produce a dot grid.
func (p Params) Validate() error {
	if p.DotSize < 1 {
		return fmt.Errorf("%w: dot size %d < 1", ErrInvalidConfiguration, p.DotSize)
	}
	if p.DotSpacing < 0 {
		return fmt.Errorf("%w: dot spacing %d < 0", ErrInvalidConfiguration, p.DotSpacing)
	}
	if p.Step() < 1 {
		return fmt.Errorf("%w: step %d < 1", ErrInvalidConfiguration, p.Step())
	}
	return nil
}

// InSliderRange reports whether both dimensions fall inside the slider bounds.
func (p Params) InSliderRange() bool {
	return DotSizeRange.Contains(p.DotSize) && DotSpacingRange.Contains(p.DotSpacing)
}

// geometryChanged reports whether q differs from p in a way that moves or
// resizes dots. Color changes alone do not count.
func (p Params) geometryChanged(q Params) bool {
	return p.DotSize != q.DotSize || p.DotSpacing != q.DotSpacing
}
