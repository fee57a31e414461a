package colour

import (
	"math"
	"testing"
)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: HSL{H: 0, S: 100, L: 50},
		},
		{
			name: "green",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: HSL{H: 120, S: 100, L: 50},
		},
		{
			name: "blue",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: HSL{H: 240, S: 100, L: 50},
		},
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: HSL{H: 0, S: 0, L: 0},
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: HSL{H: 0, S: 0, L: 100},
		},
		{
			name: "steel blue",
			rgb:  RGB{R: 51, G: 102, B: 153},
			want: HSL{H: 210, S: 50, L: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb)
			if !hslClose(got, tt.want, 0.5) {
				t.Errorf("RGBToHSL(%+v) = %+v, want approximately %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestRGBToHSLRanges(t *testing.T) {
	// Hue must stay in [0, 360), saturation and lightness in [0, 100],
	// across a spread of channel combinations.
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				hsl := RGBToHSL(RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
				if hsl.H < 0 || hsl.H >= 360 {
					t.Fatalf("RGBToHSL(%d,%d,%d) hue = %v, want [0,360)", r, g, b, hsl.H)
				}
				if hsl.S < 0 || hsl.S > 100 {
					t.Fatalf("RGBToHSL(%d,%d,%d) saturation = %v, want [0,100]", r, g, b, hsl.S)
				}
				if hsl.L < 0 || hsl.L > 100 {
					t.Fatalf("RGBToHSL(%d,%d,%d) lightness = %v, want [0,100]", r, g, b, hsl.L)
				}
			}
		}
	}
}

func TestRGBToHSLAchromatic(t *testing.T) {
	// Equal channels have zero saturation and zero hue for any value.
	for v := 0; v <= 255; v++ {
		hsl := RGBToHSL(RGB{R: uint8(v), G: uint8(v), B: uint8(v)})
		if hsl.S != 0 {
			t.Fatalf("RGBToHSL(%d,%d,%d) saturation = %v, want 0", v, v, v, hsl.S)
		}
		if hsl.H != 0 {
			t.Fatalf("RGBToHSL(%d,%d,%d) hue = %v, want 0", v, v, v, hsl.H)
		}
	}
}

func TestHSLToRGBRoundTrip(t *testing.T) {
	// RGB -> HSL -> RGB must land within a channel of the original;
	// the conversion itself is lossless up to float rounding.
	colours := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 51, G: 102, B: 153},
		{R: 128, G: 128, B: 128},
		{R: 1, G: 254, B: 77},
		{R: 200, G: 13, B: 13},
	}

	for _, c := range colours {
		got := HSLToRGB(RGBToHSL(c))
		if !channelClose(got.R, c.R, 1) || !channelClose(got.G, c.G, 1) || !channelClose(got.B, c.B, 1) {
			t.Errorf("HSLToRGB(RGBToHSL(%+v)) = %+v", c, got)
		}
	}
}

func TestHSLString(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want string
	}{
		{
			name: "integral values",
			hsl:  HSL{H: 210, S: 50, L: 40},
			want: "210, 50%, 40%",
		},
		{
			name: "rounds to nearest",
			hsl:  HSL{H: 209.6, S: 49.5, L: 40.2},
			want: "210, 50%, 40%",
		},
		{
			name: "achromatic",
			hsl:  HSL{H: 0, S: 0, L: 100},
			want: "0, 0%, 100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hsl.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// hslClose reports whether two HSL values agree within tol on every field.
func hslClose(a, b HSL, tol float64) bool {
	return math.Abs(a.H-b.H) <= tol && math.Abs(a.S-b.S) <= tol && math.Abs(a.L-b.L) <= tol
}

// channelClose reports whether two channel values differ by at most tol.
func channelClose(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}
