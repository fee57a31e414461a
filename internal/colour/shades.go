package colour

// DefaultShadeCount is the number of shades derived for a base colour.
const DefaultShadeCount = 5

// ShadeRamp derives count progressively darker variants of base, holding
// hue and saturation fixed and scaling lightness by 1 - i*0.2 for shade i.
// The first shade has the base lightness and the sequence of lightness
// values is non-increasing. Shades are returned as hex strings.
func ShadeRamp(base HSL, count int) []string {
	if count <= 0 {
		count = DefaultShadeCount
	}

	shades := make([]string, count)
	for i := range shades {
		factor := 1.0 - float64(i)*0.2
		if factor < 0 {
			factor = 0
		}
		shade := HSL{H: base.H, S: base.S, L: base.L * factor}
		shades[i] = HSLToRGB(shade).Hex()
	}
	return shades
}
