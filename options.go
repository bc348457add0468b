package halftone

// Default canvas dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// EditorOption configures an Editor during creation.
// Use functional options to customize Editor behavior.
//
// Example:
//
//	// Default 800x600 canvas, antialiased dots
//	ed := halftone.NewEditor()
//
//	// Crisp dots on a custom canvas
//	ed := halftone.NewEditor(
//	    halftone.WithSize(1024, 768),
//	    halftone.WithRasterizer(halftone.RasterizerAliased),
//	)
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	width, height int
	params        Params
	rasterizer    RasterizerMode
	interp        Interpolation
}

// defaultOptions returns the default editor options.
func defaultOptions() editorOptions {
	return editorOptions{
		width:      DefaultWidth,
		height:     DefaultHeight,
		params:     DefaultParams(),
		rasterizer: RasterizerAntialiased,
		interp:     InterpBilinear,
	}
}

// WithSize sets the canvas dimensions. Non-positive values keep the default.
func WithSize(width, height int) EditorOption {
	return func(o *editorOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithParams sets the initial effect parameters. Parameters that fail
// Validate are ignored and the defaults are kept.
func WithParams(p Params) EditorOption {
	return func(o *editorOptions) {
		if p.Validate() == nil {
			o.params = p
		}
	}
}

// WithRasterizer selects how dots are rasterized.
func WithRasterizer(m RasterizerMode) EditorOption {
	return func(o *editorOptions) {
		o.rasterizer = m
	}
}

// WithInterpolation selects the kernel used to scale the source image.
func WithInterpolation(i Interpolation) EditorOption {
	return func(o *editorOptions) {
		o.interp = i
	}
}
