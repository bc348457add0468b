package halftone

import "errors"

// Error kinds reported by the renderer. Operations wrap them with context,
// so callers should test with [errors.Is].
var (
	// ErrInvalidImage is returned when a source image is missing, cannot be
	// decoded, or has a zero width or height.
	ErrInvalidImage = errors.New("halftone: invalid image")

	// ErrNotReady is returned when an effect or export is requested before
	// the state it depends on exists (no image loaded, no effect applied).
	ErrNotReady = errors.New("halftone: not ready")

	// ErrInvalidConfiguration is returned for parameters that cannot produce
	// a grid: DotSize < 1, DotSpacing < 0, a step below 1, a non-positive
	// canvas size or a malformed color.
	ErrInvalidConfiguration = errors.New("halftone: invalid configuration")
)
