// Package halftone renders images as a grid of dots whose radius follows the
// brightness of the source.
//
// # Overview
//
// An Editor owns a fixed-size Canvas. Loading an image draws it scale-fitted:
// as large as possible, centered, aspect ratio preserved. Applying the effect
// samples the canvas on a regular grid and replaces it with one filled circle
// per cell on a solid background. The result is exported as PNG.
//
// # Quick Start
//
//	import "github.com/gogpu/halftone"
//
//	ed := halftone.NewEditor(halftone.WithSize(800, 600))
//	if err := ed.LoadImage(img); err != nil {
//		return err
//	}
//	if err := ed.Apply(); err != nil {
//		return err
//	}
//	ed.ExportFile("halftone.png")
//
// # Grid
//
// The grid pitch (step) is DotSize + DotSpacing. For the cell whose top-left
// pixel is (x, y), the gray level is the mean of that pixel's R, G and B, and
// the dot is centered at (x + step/2, y + step/2) with radius
// DotSize * gray / 512. Black cells get no dot.
//
// # Editor states
//
// An Editor moves between StateNoImage, StateImageLoaded and
// StateEffectApplied. Once an effect is applied, changing the dot size or
// spacing re-renders it from the original image; color changes show on the
// next Apply. Failed operations leave the state and canvas untouched.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Editor, Canvas, Params, RGB, Fit
//   - source: file, data: URL and HTTP image loading
//   - internal/image: decoders and PNG encoding
//   - cmd/halftone: command-line front end
package halftone
