package halftone

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
		want                   Placement
		wantRect               image.Rectangle
	}{
		{
			name: "same aspect fills canvas",
			srcW: 400, srcH: 300, dstW: 800, dstH: 600,
			want:     Placement{Scale: 2, X: 0, Y: 0, Width: 800, Height: 600},
			wantRect: image.Rect(0, 0, 800, 600),
		},
		{
			name: "square is pillarboxed",
			srcW: 100, srcH: 100, dstW: 800, dstH: 600,
			want:     Placement{Scale: 6, X: 100, Y: 0, Width: 600, Height: 600},
			wantRect: image.Rect(100, 0, 700, 600),
		},
		{
			name: "wide is letterboxed and shrunk",
			srcW: 1000, srcH: 10, dstW: 100, dstH: 100,
			want:     Placement{Scale: 0.1, X: 0, Y: 49.5, Width: 100, Height: 1},
			wantRect: image.Rect(0, 50, 100, 51),
		},
		{
			name: "identity",
			srcW: 64, srcH: 48, dstW: 64, dstH: 48,
			want:     Placement{Scale: 1, Width: 64, Height: 48},
			wantRect: image.Rect(0, 0, 64, 48),
		},
	}
	approx := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fit(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
			if err != nil {
				t.Fatalf("Fit() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Fit() mismatch (-want +got):\n%s", diff)
			}
			if r := got.Rect(); r != tt.wantRect {
				t.Errorf("Rect() = %v, want %v", r, tt.wantRect)
			}
		})
	}
}

func TestFit_Errors(t *testing.T) {
	if _, err := Fit(0, 10, 100, 100); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Fit(0x10) error = %v, want ErrInvalidImage", err)
	}
	if _, err := Fit(10, 0, 100, 100); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Fit(10x0) error = %v, want ErrInvalidImage", err)
	}
	if _, err := Fit(10, 10, 0, 100); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Fit(canvas 0x100) error = %v, want ErrInvalidConfiguration", err)
	}
}

// TestFit_Properties checks that every placement keeps the aspect ratio,
// touches the canvas on at least one axis and stays inside it after rounding.
func TestFit_Properties(t *testing.T) {
	sizes := []int{1, 2, 3, 7, 10, 99, 100, 333, 640, 1001, 4000}
	for _, sw := range sizes {
		for _, sh := range sizes {
			for _, d := range [][2]int{{800, 600}, {333, 249}, {1, 1}, {50, 400}} {
				dw, dh := d[0], d[1]
				p, err := Fit(sw, sh, dw, dh)
				if err != nil {
					t.Fatalf("Fit(%d, %d, %d, %d) error = %v", sw, sh, dw, dh, err)
				}
				srcAspect := float64(sw) / float64(sh)
				if got := p.Width / p.Height; math.Abs(got-srcAspect) > 1e-9*srcAspect {
					t.Errorf("Fit(%dx%d -> %dx%d) aspect = %v, want %v", sw, sh, dw, dh, got, srcAspect)
				}
				fillsW := math.Abs(p.Width-float64(dw)) < 1e-9
				fillsH := math.Abs(p.Height-float64(dh)) < 1e-9
				if !fillsW && !fillsH {
					t.Errorf("Fit(%dx%d -> %dx%d) = %+v does not touch the canvas edges", sw, sh, dw, dh, p)
				}
				if r := p.Rect(); !r.In(image.Rect(0, 0, dw, dh)) && !r.Empty() {
					t.Errorf("Fit(%dx%d -> %dx%d).Rect() = %v exceeds canvas", sw, sh, dw, dh, r)
				}
			}
		}
	}
}

func TestSizeForContainer(t *testing.T) {
	tests := []struct{ width, wantW, wantH int }{
		{800, 800, 600},
		{400, 400, 300},
		{1200, 1200, 600},
		{333, 333, 249},
	}
	for _, tt := range tests {
		w, h := SizeForContainer(tt.width)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("SizeForContainer(%d) = (%d, %d), want (%d, %d)", tt.width, w, h, tt.wantW, tt.wantH)
		}
	}
}
