package palette

// labelWords are the fixed adjectives combined with a hex fragment to form
// default entry names.
var labelWords = [8]string{
	"velvet",
	"ember",
	"drift",
	"hollow",
	"lumen",
	"frost",
	"cinder",
	"bloom",
}

// Label builds a default display name for a colour: a randomly chosen word
// joined by a hyphen to the first three hex digits of the colour (the red
// pair plus the first green digit). Labels are not guaranteed unique across
// entries. The input must be a "#rrggbb" string.
func (g *Generator) Label(hex string) string {
	word := labelWords[g.rng.IntN(len(labelWords))]
	return word + "-" + hex[1:4]
}
