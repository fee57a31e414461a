package image

import (
	"image"

	"github.com/kmarchant/chromat/internal/colour"
)

// MeanColour computes the average colour of img over a sampled pixel grid.
// Sampling keeps the cost flat for large images; up to roughly 100 samples
// are taken per axis.
func MeanColour(img image.Image) colour.RGB {
	bounds := img.Bounds()
	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)

	var rSum, gSum, bSum, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
			n++
		}
	}

	if n == 0 {
		return colour.RGB{}
	}
	return colour.RGB{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
	}
}
