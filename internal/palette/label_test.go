package palette

import (
	"slices"
	"strings"
	"testing"
)

func TestLabelFormat(t *testing.T) {
	gen := New(Config{Seed: u64(3)})

	for range 50 {
		label := gen.Label("#336699")

		word, frag, ok := strings.Cut(label, "-")
		if !ok {
			t.Fatalf("label %q is not hyphen-joined", label)
		}
		if !slices.Contains(labelWords[:], word) {
			t.Errorf("label word %q is not one of the fixed words", word)
		}
		if frag != "336" {
			t.Errorf("label fragment = %q, want %q", frag, "336")
		}
	}
}

func TestLabelDeterminism(t *testing.T) {
	a := New(Config{Seed: u64(21)})
	b := New(Config{Seed: u64(21)})

	for range 10 {
		la, lb := a.Label("#aabbcc"), b.Label("#aabbcc")
		if la != lb {
			t.Fatalf("same seed produced labels %q and %q", la, lb)
		}
	}
}

func TestLabelCoversAllWords(t *testing.T) {
	// With enough draws every word should appear at least once.
	gen := New(Config{Seed: u64(5)})
	seen := make(map[string]bool)

	for range 500 {
		word, _, _ := strings.Cut(gen.Label("#000000"), "-")
		seen[word] = true
	}

	for _, w := range labelWords {
		if !seen[w] {
			t.Errorf("word %q never chosen in 500 draws", w)
		}
	}
}
