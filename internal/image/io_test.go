package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := range 4 {
		for x := range 6 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 60), B: 100, A: 255})
		}
	}
	return img
}

func TestDecodeBytes_Formats(t *testing.T) {
	src := testImage()
	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"jpeg": func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) },
		"gif":  func(b *bytes.Buffer) error { return gif.Encode(b, src, nil) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := enc(&buf); err != nil {
				t.Fatalf("encode %s: %v", name, err)
			}
			img, format, err := DecodeBytes(buf.Bytes())
			if err != nil {
				t.Fatalf("DecodeBytes() error = %v", err)
			}
			if format != name {
				t.Errorf("format = %q, want %q", format, name)
			}
			if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
				t.Errorf("bounds = %v, want 6x4", img.Bounds())
			}
		})
	}
}

func TestDecodeBytes_Errors(t *testing.T) {
	if _, _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, _, err := DecodeBytes([]byte("definitely not an image")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeBytes(text) error = %v, want ErrUnsupportedFormat", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	_, _, err := DecodeBytes(truncated)
	if err == nil || errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeBytes(truncated PNG) error = %v, want a decode error", err)
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	if err := EncodePNG(&buf, src); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	r, g, b, a := img.At(5, 3).RGBA()
	wr, wg, wb, wa := src.At(5, 3).RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("pixel = (%d, %d, %d, %d), want (%d, %d, %d, %d)", r, g, b, a, wr, wg, wb, wa)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	if err := SavePNG(path, testImage()); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	img, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Errorf("bounds = %v, want 6x4", img.Bounds())
	}

	if _, _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
	if err := SavePNG(filepath.Join(dir, "no", "such", "dir.png"), testImage()); err == nil {
		t.Error("SavePNG() into missing directory error = nil")
	}
}
