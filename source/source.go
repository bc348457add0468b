// Package source turns user-supplied image references into decoded rasters
// for the halftone editor.
//
// A reference is a file path, a "data:" URL (as produced by browser file
// readers) or an http(s) URL. Every failure to obtain a usable raster is
// reported as halftone.ErrInvalidImage, wrapping the underlying cause.
package source

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gogpu/halftone"
	intImage "github.com/gogpu/halftone/internal/image"
)

// DefaultMaxBytes caps the size of fetched image bodies.
const DefaultMaxBytes = 32 << 20

// Decode decodes an encoded image held in memory.
func Decode(data []byte) (image.Image, error) {
	img, format, err := intImage.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", halftone.ErrInvalidImage, err)
	}
	halftone.Logger().Debug("source: decoded", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// FromReader decodes an image from r.
func FromReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", halftone.ErrInvalidImage, err)
	}
	return Decode(data)
}

// FromFile decodes the image file at path.
func FromFile(path string) (image.Image, error) {
	img, _, err := intImage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", halftone.ErrInvalidImage, err)
	}
	return img, nil
}

// FromDataURL decodes a "data:" URL carrying an image, for example
// "data:image/png;base64,iVBORw0...". Media types other than image/* are
// rejected.
func FromDataURL(s string) (image.Image, error) {
	data, err := parseDataURL(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", halftone.ErrInvalidImage, err)
	}
	return Decode(data)
}

func parseDataURL(s string) ([]byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, errors.New("not a data URL")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, errors.New("data URL has no payload")
	}

	parts := strings.Split(header, ";")
	mediaType := strings.ToLower(strings.TrimSpace(parts[0]))
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("data URL media type %q is not an image", parts[0])
	}

	if parts[len(parts)-1] == "base64" {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(payload)
		}
		if err != nil {
			return nil, fmt.Errorf("data URL base64: %w", err)
		}
		return data, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("data URL payload: %w", err)
	}
	return []byte(data), nil
}

// Fetcher downloads images over HTTP.
type Fetcher struct {
	// Client performs the requests. If nil, a client with a 30 second
	// timeout is used.
	Client *http.Client

	// MaxBytes caps the response body size. Zero means DefaultMaxBytes.
	MaxBytes int64
}

var defaultClient = &http.Client{Timeout: 30 * time.Second}

// Fetch downloads and decodes the image at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (image.Image, error) {
	client := f.Client
	if client == nil {
		client = defaultClient
	}
	limit := f.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", halftone.ErrInvalidImage, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch: %w", halftone.ErrInvalidImage, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetch %s: %s", halftone.ErrInvalidImage, rawURL, resp.Status)
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", halftone.ErrInvalidImage, rawURL, err)
	}
	if n > limit {
		return nil, fmt.Errorf("%w: fetch %s: body exceeds %d bytes", halftone.ErrInvalidImage, rawURL, limit)
	}
	halftone.Logger().Debug("source: fetched", "url", rawURL, "bytes", n,
		"contentType", resp.Header.Get("Content-Type"))
	return Decode(buf.Bytes())
}

// Load resolves a reference of any supported kind using a default Fetcher.
func Load(ctx context.Context, ref string) (image.Image, error) {
	var f Fetcher
	return f.Load(ctx, ref)
}

// Load resolves a reference of any supported kind.
func (f *Fetcher) Load(ctx context.Context, ref string) (image.Image, error) {
	switch {
	case ref == "":
		return nil, fmt.Errorf("%w: empty reference", halftone.ErrInvalidImage)
	case strings.HasPrefix(ref, "data:"):
		return FromDataURL(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return f.Fetch(ctx, ref)
	default:
		return FromFile(ref)
	}
}
