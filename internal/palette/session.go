package palette

import (
	"fmt"
	"math"

	"github.com/kmarchant/chromat/internal/colour"
)

// DefaultSize is the number of entries in a freshly generated session.
const DefaultSize = 5

// Entry pairs a colour with its user-editable display name. Entries are
// addressed by position in the session; there is no stable identity, so a
// rename targets whatever currently sits at that index.
type Entry struct {
	Colour colour.RGB
	Name   string
}

// AdjustmentField names one of the session's pending adjustment values.
type AdjustmentField string

const (
	AdjustHue        AdjustmentField = "hue"
	AdjustSaturation AdjustmentField = "saturation"
	AdjustBrightness AdjustmentField = "brightness"
)

// Adjustment ranges, enforced at the model boundary.
const (
	hueRange       = 180
	satBrightRange = 100
)

// Adjustments holds the pending hue/saturation/brightness offsets. The
// offsets shift displayed colours only; exports always carry the base
// colours.
type Adjustments struct {
	Hue        float64 // degrees, [-180, 180]
	Saturation float64 // percentage points, [-100, 100]
	Brightness float64 // percentage points, [-100, 100]
}

// Session is the live palette state: an ordered entry list plus the
// pending adjustment record. All mutation goes through its methods.
type Session struct {
	gen     *Generator
	size    int
	entries []Entry
	adjust  Adjustments
}

// NewSession creates a session backed by gen and populates it with one
// generated palette of size entries.
func NewSession(gen *Generator, size int) *Session {
	if size <= 0 {
		size = DefaultSize
	}
	s := &Session{gen: gen, size: size}
	s.Regenerate()
	return s
}

// NewSessionFrom creates a session holding previously exported entries.
// A later Regenerate replaces them with gen's output at the same size.
func NewSessionFrom(gen *Generator, entries []Entry) *Session {
	s := &Session{gen: gen, size: len(entries)}
	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)
	return s
}

// Regenerate replaces the whole entry list with a freshly generated
// palette and default names. Prior user-entered names are discarded; the
// adjustment record is left as-is.
func (s *Session) Regenerate() {
	colours := s.gen.Palette(s.size)
	entries := make([]Entry, len(colours))
	for i, c := range colours {
		entries[i] = Entry{Colour: c, Name: s.gen.Label(c.Hex())}
	}
	s.entries = entries
}

// Len returns the number of entries in the session.
func (s *Session) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the current entry list.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the entry at index.
// Returns an error if the index is out of bounds.
func (s *Session) Entry(index int) (Entry, error) {
	if index < 0 || index >= len(s.entries) {
		return Entry{}, &IndexOutOfRangeError{Index: index, Len: len(s.entries)}
	}
	return s.entries[index], nil
}

// Rename replaces the display name of the entry at index, leaving its
// colour untouched. Out-of-bounds indices fail with IndexOutOfRangeError;
// the session is not modified.
func (s *Session) Rename(index int, name string) error {
	if index < 0 || index >= len(s.entries) {
		return &IndexOutOfRangeError{Index: index, Len: len(s.entries)}
	}
	s.entries[index].Name = name
	return nil
}

// SetAdjustment sets one pending adjustment value, clamped to the field's
// range: hue to [-180, 180], saturation and brightness to [-100, 100].
// Returns an error for an unknown field name.
func (s *Session) SetAdjustment(field AdjustmentField, value float64) error {
	switch field {
	case AdjustHue:
		s.adjust.Hue = clamp(value, -hueRange, hueRange)
	case AdjustSaturation:
		s.adjust.Saturation = clamp(value, -satBrightRange, satBrightRange)
	case AdjustBrightness:
		s.adjust.Brightness = clamp(value, -satBrightRange, satBrightRange)
	default:
		return fmt.Errorf("unknown adjustment field: %s", field)
	}
	return nil
}

// Adjustments returns the pending adjustment record.
func (s *Session) Adjustments() Adjustments {
	return s.adjust
}

// AdjustedColours applies the pending adjustment record to each entry's
// colour: hue rotated by the hue offset, saturation and lightness shifted
// by their offsets and clamped to [0, 100]. A zero record returns the base
// colours unchanged.
func (s *Session) AdjustedColours() []colour.RGB {
	out := make([]colour.RGB, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Colour
		if s.adjust == (Adjustments{}) {
			continue
		}

		hsl := colour.RGBToHSL(e.Colour)
		hsl.H = math.Mod(hsl.H+s.adjust.Hue+360, 360)
		hsl.S = clamp(hsl.S+s.adjust.Saturation, 0, 100)
		hsl.L = clamp(hsl.L+s.adjust.Brightness, 0, 100)
		out[i] = colour.HSLToRGB(hsl)
	}
	return out
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
