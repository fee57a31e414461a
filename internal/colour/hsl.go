package colour

import (
	"fmt"
	"math"
)

// HSL represents a colour in hue/saturation/lightness form. Hue is in
// degrees [0, 360); saturation and lightness are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the colour as "h, s%, l%" with each value rounded to the
// nearest integer. This is the format used when copying a colour as HSL
// text.
func (hsl HSL) String() string {
	return fmt.Sprintf("%d, %d%%, %d%%",
		int(math.Round(hsl.H)), int(math.Round(hsl.S)), int(math.Round(hsl.L)))
}

// RGBToHSL converts an RGB colour to HSL using the standard six-sector
// formula.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	// Lightness.
	l := (maxVal + minVal) / 2.0

	if maxVal == minVal {
		// Achromatic: hue and saturation are zero by convention.
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxVal - minVal

	// Saturation.
	var s float64
	if l > 0.5 {
		s = d / (2.0 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	// Hue, by maximal channel.
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToRGB converts an HSL colour back to RGB.
func HSLToRGB(hsl HSL) RGB {
	h := hsl.H / 360.0
	s := hsl.S / 100.0
	l := hsl.L / 100.0

	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: uint8(math.Round(hueToChannel(p, q, h+1.0/3.0) * 255)),
		G: uint8(math.Round(hueToChannel(p, q, h) * 255)),
		B: uint8(math.Round(hueToChannel(p, q, h-1.0/3.0) * 255)),
	}
}

// hueToChannel is a helper for HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
