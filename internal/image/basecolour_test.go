package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/kmarchant/chromat/internal/colour"
)

func solidImage(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestMeanColourSolid(t *testing.T) {
	img := solidImage(color.RGBA{R: 51, G: 102, B: 153, A: 255}, 64, 64)

	if got := MeanColour(img); got != (colour.RGB{R: 51, G: 102, B: 153}) {
		t.Errorf("MeanColour = %+v, want {51 102 153}", got)
	}
}

func TestMeanColourHalves(t *testing.T) {
	// Left half black, right half white: the mean sits near mid-grey.
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(0)
			if x >= 32 {
				v = 255
			}
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	got := MeanColour(img)
	if got.R < 120 || got.R > 135 {
		t.Errorf("mean of half black, half white = %+v, want mid-grey", got)
	}
}

func TestMeanColourEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if got := MeanColour(img); got != (colour.RGB{}) {
		t.Errorf("MeanColour of empty image = %+v, want zero value", got)
	}
}
