package colour

import (
	"fmt"
	"math"
	"strings"
)

// ANSI escape codes for 24-bit terminal colour.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	defaultSwatchWidth = 8
)

// Swatch returns an ANSI-coloured preview block for c, width characters
// wide. Uses background colour with spaces for a solid block.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a preview block with a text overlay. The text
// colour is black or white, whichever contrasts better with c.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	var fg RGB
	if Luminance(c) <= 0.5 {
		fg = RGB{R: 255, G: 255, B: 255}
	}

	display := text
	if len(display) > width {
		display = display[:width]
	}
	if len(display) < width {
		display += strings.Repeat(" ", width-len(display))
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)
	return bg + fgSeq + display + ansiReset
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0, between 0 (darkest) and 1 (lightest).
func Luminance(c RGB) float64 {
	rf := gammaCorrect(float64(c.R) / 255.0)
	gf := gammaCorrect(float64(c.G) / 255.0)
	bf := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
