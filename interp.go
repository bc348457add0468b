package halftone

import (
	"fmt"

	xdraw "golang.org/x/image/draw"
)

// Interpolation selects the resampling kernel used when the source image is
// scaled onto the canvas.
type Interpolation int

const (
	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	// It is the default and the closest match to browser canvas scaling.
	InterpBilinear Interpolation = iota

	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest

	// InterpApproxBilinear is a faster, lower quality bilinear approximation.
	InterpApproxBilinear

	// InterpBicubic performs Catmull-Rom cubic interpolation.
	// Highest quality but slower than bilinear.
	InterpBicubic
)

var interpNames = map[Interpolation]string{
	InterpBilinear:       "bilinear",
	InterpNearest:        "nearest",
	InterpApproxBilinear: "approx-bilinear",
	InterpBicubic:        "bicubic",
}

// String returns the interpolation name as accepted by ParseInterpolation.
func (i Interpolation) String() string {
	if s, ok := interpNames[i]; ok {
		return s
	}
	return "unknown"
}

// ParseInterpolation returns the interpolation with the given name.
func ParseInterpolation(name string) (Interpolation, error) {
	for i, s := range interpNames {
		if s == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidConfiguration, name)
}

func (i Interpolation) kernel() xdraw.Interpolator {
	switch i {
	case InterpNearest:
		return xdraw.NearestNeighbor
	case InterpApproxBilinear:
		return xdraw.ApproxBiLinear
	case InterpBicubic:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}
