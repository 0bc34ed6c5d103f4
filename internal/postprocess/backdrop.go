package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Composite places img over a backdrop stretched to img's size and returns
// the result. A nil backdrop returns img unchanged (transparent background).
func Composite(img *image.NRGBA, backdrop *image.NRGBA) *image.NRGBA {
	if backdrop == nil {
		return img
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)

	// Bilinear stretch of the backdrop onto the frame.
	draw.BiLinear.Scale(out, b, backdrop, backdrop.Bounds(), draw.Src, nil)

	draw.Draw(out, b, img, b.Min, draw.Over)
	return out
}
