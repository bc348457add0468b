package halftone

import (
	"fmt"
	"image"
	"io"
	"sync"

	xdraw "golang.org/x/image/draw"

	intImage "github.com/gogpu/halftone/internal/image"
)

// State is the editor lifecycle stage.
type State int

const (
	// StateNoImage means no source image is loaded; the canvas is blank.
	StateNoImage State = iota

	// StateImageLoaded means the canvas shows the scale-fitted source.
	StateImageLoaded

	// StateEffectApplied means the canvas shows the halftone rendition.
	StateEffectApplied
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNoImage:
		return "NoImage"
	case StateImageLoaded:
		return "ImageLoaded"
	case StateEffectApplied:
		return "EffectApplied"
	default:
		return "Unknown"
	}
}

// Editor owns a source image, effect parameters and the canvas showing
// either the plain scale-fitted image or its halftone rendition.
//
// Every transition validates its preconditions first and renders into a
// scratch canvas, so a failed call leaves state and canvas as they were.
// An Editor is safe for concurrent use; transitions are serialized.
type Editor struct {
	mu sync.Mutex

	state      State
	src        image.Image
	params     Params
	canvas     *Canvas
	rasterizer RasterizerMode
	interp     Interpolation
}

// NewEditor creates an editor with an empty canvas.
func NewEditor(opts ...EditorOption) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Editor{
		state:      StateNoImage,
		params:     o.params,
		canvas:     NewCanvas(o.width, o.height),
		rasterizer: o.rasterizer,
		interp:     o.interp,
	}
}

// State returns the current lifecycle stage.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Params returns the stored effect parameters.
func (e *Editor) Params() Params {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.params
}

// Size returns the canvas dimensions.
func (e *Editor) Size() (width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canvas.Width(), e.canvas.Height()
}

// Canvas returns a copy of the current canvas.
func (e *Editor) Canvas() *Canvas {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canvas.Clone()
}

// LoadImage makes img the source image and shows its scale-fitted preview.
// Any previously applied effect is discarded. The editor keeps a private
// copy, so img may be modified afterwards.
func (e *Editor) LoadImage(img image.Image) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if img == nil {
		return e.reject("load image", fmt.Errorf("%w: nil image", ErrInvalidImage))
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return e.reject("load image", fmt.Errorf("%w: size %dx%d", ErrInvalidImage, b.Dx(), b.Dy()))
	}

	src := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(src, src.Rect, img, b.Min, xdraw.Src)

	next, err := renderCanvas(src, e.canvas.Width(), e.canvas.Height(), e.params, false, e.rasterizer, e.interp)
	if err != nil {
		return e.reject("load image", err)
	}
	e.src = src
	e.commit(next, StateImageLoaded)
	return nil
}

// Unload drops the source image and blanks the canvas.
func (e *Editor) Unload() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.src = nil
	e.commit(NewCanvas(e.canvas.Width(), e.canvas.Height()), StateNoImage)
}

// SetParams stores new effect parameters. If an effect is currently shown
// and the dot size or spacing changed, the effect is re-rendered from a
// fresh scale-fitted draw of the source. Otherwise nothing is drawn.
func (e *Editor) SetParams(p Params) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setParams(p)
}

// SetDotSize changes only the dot size. See SetParams.
func (e *Editor) SetDotSize(size int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.params
	p.DotSize = size
	return e.setParams(p)
}

// SetDotSpacing changes only the dot spacing. See SetParams.
func (e *Editor) SetDotSpacing(spacing int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.params
	p.DotSpacing = spacing
	return e.setParams(p)
}

// SetDotColor changes only the dot color. The new color shows on the next Apply.
func (e *Editor) SetDotColor(c RGB) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.params
	p.DotColor = c
	return e.setParams(p)
}

func (e *Editor) setParams(p Params) error {
	if err := p.Validate(); err != nil {
		return e.reject("set params", err)
	}
	if e.state == StateEffectApplied && e.params.geometryChanged(p) {
		next, err := renderCanvas(e.src, e.canvas.Width(), e.canvas.Height(), p, true, e.rasterizer, e.interp)
		if err != nil {
			return e.reject("set params", err)
		}
		e.params = p
		e.commit(next, StateEffectApplied)
		return nil
	}
	e.params = p
	Logger().Debug("halftone: params stored", "state", e.state, "dotSize", p.DotSize, "dotSpacing", p.DotSpacing)
	return nil
}

// Apply redraws the scale-fitted source and replaces it with its halftone
// rendition using the stored parameters.
func (e *Editor) Apply() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateNoImage {
		return e.reject("apply", fmt.Errorf("%w: no image loaded", ErrNotReady))
	}
	next, err := renderCanvas(e.src, e.canvas.Width(), e.canvas.Height(), e.params, true, e.rasterizer, e.interp)
	if err != nil {
		return e.reject("apply", err)
	}
	e.commit(next, StateEffectApplied)
	return nil
}

// Resize changes the canvas dimensions and re-renders whatever is shown.
func (e *Editor) Resize(width, height int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width <= 0 || height <= 0 {
		return e.reject("resize", fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfiguration, width, height))
	}
	if e.state == StateNoImage {
		e.commit(NewCanvas(width, height), StateNoImage)
		return nil
	}
	next, err := renderCanvas(e.src, width, height, e.params, e.state == StateEffectApplied, e.rasterizer, e.interp)
	if err != nil {
		return e.reject("resize", err)
	}
	e.commit(next, e.state)
	return nil
}

// Export writes the halftone rendition as PNG. It fails with ErrNotReady,
// writing nothing, unless an effect is currently applied.
func (e *Editor) Export(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateEffectApplied {
		return e.reject("export", fmt.Errorf("%w: no effect applied", ErrNotReady))
	}
	return e.canvas.EncodePNG(w)
}

// ExportFile writes the halftone rendition to a PNG file. See Export.
func (e *Editor) ExportFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateEffectApplied {
		return e.reject("export", fmt.Errorf("%w: no effect applied", ErrNotReady))
	}
	return intImage.SavePNG(path, e.canvas.img)
}

func (e *Editor) commit(next *Canvas, s State) {
	if e.state != s {
		Logger().Debug("halftone: state change", "from", e.state, "to", s)
	}
	e.canvas = next
	e.state = s
}

func (e *Editor) reject(op string, err error) error {
	Logger().Warn("halftone: operation rejected", "op", op, "state", e.state, "err", err)
	return fmt.Errorf("%s: %w", op, err)
}

// renderCanvas draws src scale-fitted onto a fresh transparent canvas and,
// when effect is set, halftones it.
func renderCanvas(src image.Image, width, height int, p Params, effect bool, mode RasterizerMode, interp Interpolation) (*Canvas, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no image loaded", ErrNotReady)
	}
	if effect {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	c := NewCanvas(width, height)
	if _, err := c.DrawImageFit(src, interp); err != nil {
		return nil, err
	}
	if effect {
		if err := Apply(c, p, mode); err != nil {
			return nil, err
		}
	}
	return c, nil
}
