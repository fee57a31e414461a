// Package colour provides the colour model: RGB and HSL representations,
// conversions between them, and shade derivation.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
)

// RGB represents a colour in 8-bit-per-channel RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Decimal returns the channels as comma-separated decimal values
// (e.g. "51, 102, 153"). This is the format used when copying a colour
// as RGB text.
func (c RGB) Decimal() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// ToColor converts the colour to a color.Color with full opacity.
func (c RGB) ToColor() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromColor converts a color.Color to RGB.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses a "#rrggbb" colour string. The input must be exactly
// seven characters: '#' followed by six hex digits, upper or lower case.
// Malformed input fails with MalformedColourError rather than propagating
// garbage channel values.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, &MalformedColourError{Input: s}
	}

	hex := s[1:]

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, &MalformedColourError{Input: s}
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, &MalformedColourError{Input: s}
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, &MalformedColourError{Input: s}
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
