package colour

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{
			name:  "lowercase",
			input: "#336699",
			want:  RGB{R: 51, G: 102, B: 153},
		},
		{
			name:  "uppercase",
			input: "#33AAFF",
			want:  RGB{R: 51, G: 170, B: 255},
		},
		{
			name:  "black",
			input: "#000000",
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "white",
			input: "#ffffff",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "mixed case",
			input: "#aAbBcC",
			want:  RGB{R: 170, G: 187, B: 204},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "missing prefix", input: "336699"},
		{name: "too short", input: "#fff"},
		{name: "too long", input: "#12345678"},
		{name: "bad digit", input: "#33669g"},
		{name: "embedded sign", input: "#+36699"},
		{name: "only prefix", input: "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			if err == nil {
				t.Fatalf("ParseHex(%q) succeeded, want MalformedColourError", tt.input)
			}

			var malformed *MalformedColourError
			if !errors.As(err, &malformed) {
				t.Fatalf("ParseHex(%q) error = %v, want MalformedColourError", tt.input, err)
			}
			if malformed.Input != tt.input {
				t.Errorf("error names input %q, want %q", malformed.Input, tt.input)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	// Re-encoding the parsed triple must reproduce the original string.
	inputs := []string{"#000000", "#ffffff", "#336699", "#1a2b3c", "#deadbe", "#0f0f0f"}

	for _, input := range inputs {
		rgb, err := ParseHex(input)
		if err != nil {
			t.Fatalf("ParseHex(%q) returned error: %v", input, err)
		}
		if got := rgb.Hex(); got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
	}
}

func TestRGBFormats(t *testing.T) {
	c := RGB{R: 51, G: 102, B: 153}

	if got := c.Hex(); got != "#336699" {
		t.Errorf("Hex() = %q, want %q", got, "#336699")
	}
	if got := c.String(); got != "rgb(51, 102, 153)" {
		t.Errorf("String() = %q, want %q", got, "rgb(51, 102, 153)")
	}
	if got := c.Decimal(); got != "51, 102, 153" {
		t.Errorf("Decimal() = %q, want %q", got, "51, 102, 153")
	}
}

func TestFromColor(t *testing.T) {
	c := RGB{R: 12, G: 200, B: 99}

	if got := FromColor(c.ToColor()); got != c {
		t.Errorf("FromColor(ToColor()) = %+v, want %+v", got, c)
	}
}
