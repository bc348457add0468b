package halftone

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0x00, 0x00, 0x00}
	White = RGB{0xff, 0xff, 0xff}

	// DefaultBackground is the fill behind the dots (#a2badb).
	DefaultBackground = RGB{0xa2, 0xba, 0xdb}
)

// Color converts the color to an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// FromColor converts a standard color.Color to RGB, dropping alpha.
// The color is unpremultiplied first, so a half-transparent red stays red.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ParseHex parses a color from a hex string.
// Supports formats: "RGB", "RRGGBB", each with an optional leading '#'.
// Malformed input reports ErrInvalidConfiguration.
func ParseHex(s string) (RGB, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	}
	if !ok {
		return RGB{}, fmt.Errorf("%w: color %q is not #RGB or #RRGGBB", ErrInvalidConfiguration, s)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level color literals.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex accumulates hex digits of s into val, reporting false on the
// first non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
