// Package palette owns the live palette session: generated colour entries,
// their display names, and the pending adjustment record.
package palette

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	mathrand "math/rand/v2"
	"slices"

	"github.com/kmarchant/chromat/internal/colour"
)

// Mode determines how palette colours are generated.
type Mode string

const (
	// ModeRandom emits independent uniformly random 24-bit colours per slot.
	ModeRandom Mode = "random"
	// ModeHarmonious rotates a base hue by 360/size per slot at fixed
	// saturation and lightness.
	ModeHarmonious Mode = "harmonious"
)

// ValidModes returns the list of valid generation modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeHarmonious}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid generation mode: %s (valid: random, harmonious)", s)
}

// Saturation and lightness used for harmonious generation.
const (
	harmoniousSaturation = 70
	harmoniousLightness  = 55
)

// Config holds configuration for a Generator.
type Config struct {
	Seed    *uint64  // Seed value; nil draws a seed from crypto/rand
	Mode    Mode     // Generation mode; empty defaults to ModeRandom
	BaseHue *float64 // Base hue for harmonious mode; nil picks a random hue
}

// Generator produces palette colours and default entry labels. A Generator
// with a fixed seed is fully deterministic, which makes palettes
// reproducible across runs.
type Generator struct {
	rng     *mathrand.Rand
	seed    uint64
	mode    Mode
	baseHue *float64
}

// New creates a Generator from cfg.
func New(cfg Config) *Generator {
	seed := uint64(0)
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		var b [8]byte
		if _, err := rand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		}
	}

	mode := cfg.Mode
	if mode == "" {
		mode = ModeRandom
	}

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	// #nosec G404 -- deterministic colour generation, not cryptography
	return &Generator{
		rng:     mathrand.New(mathrand.NewChaCha8(key)),
		seed:    seed,
		mode:    mode,
		baseHue: cfg.BaseHue,
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Mode returns the generation mode.
func (g *Generator) Mode() Mode {
	return g.mode
}

// Palette produces size colours according to the generator's mode.
func (g *Generator) Palette(size int) []colour.RGB {
	if g.mode == ModeHarmonious {
		base := g.rng.Float64() * 360
		if g.baseHue != nil {
			base = *g.baseHue
		}
		return g.rotated(base, size)
	}
	return g.random(size)
}

// random emits size independent uniformly random colours. Slots carry no
// hue relationship to each other.
func (g *Generator) random(size int) []colour.RGB {
	out := make([]colour.RGB, size)
	for i := range out {
		out[i] = colour.RGB{
			R: uint8(g.rng.IntN(256)),
			G: uint8(g.rng.IntN(256)),
			B: uint8(g.rng.IntN(256)),
		}
	}
	return out
}

// rotated emits size colours spaced 360/size degrees apart around base.
func (g *Generator) rotated(base float64, size int) []colour.RGB {
	out := make([]colour.RGB, size)
	for i := range out {
		h := math.Mod(base+float64(i)*360.0/float64(size), 360)
		out[i] = colour.HSLToRGB(colour.HSL{
			H: h,
			S: harmoniousSaturation,
			L: harmoniousLightness,
		})
	}
	return out
}
