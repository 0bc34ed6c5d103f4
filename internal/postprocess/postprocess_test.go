package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleSize(t *testing.T) {
	out := Downsample(solid(64, 32, color.NRGBA{10, 200, 30, 255}), 32, 16)
	assert.Equal(t, image.Rect(0, 0, 32, 16), out.Bounds())
	c := out.NRGBAAt(16, 8)
	assert.InDelta(t, 200, int(c.G), 1)
	assert.Equal(t, uint8(255), c.A)
}

func TestDownsampleNoOpWhenSmall(t *testing.T) {
	img := solid(8, 8, color.NRGBA{1, 2, 3, 255})
	assert.Same(t, img, Downsample(img, 8, 8))
}

func TestDownsampleNoDarkHalo(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	out := Downsample(img, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := out.NRGBAAt(x, y)
			if c.A > 16 {
				assert.Greater(t, c.R, uint8(200), "edge pixel (%d,%d) darkened", x, y)
			}
		}
	}
}

func TestCompositeOverBackdrop(t *testing.T) {
	fg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fg.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})
	bg := solid(2, 2, color.NRGBA{0, 0, 255, 255})

	out := Composite(fg, bg)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, out.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, out.NRGBAAt(3, 3))
	assert.Same(t, fg, Composite(fg, nil))
}

func TestCompositeStretchesBackdrop(t *testing.T) {
	bg := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	bg.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	bg.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})
	fg := image.NewNRGBA(image.Rect(0, 0, 16, 4))

	out := Composite(fg, bg)
	assert.Equal(t, fg.Bounds(), out.Bounds())

	// Left edge keeps the dark texel, right edge the light one, and the
	// ramp between them is interpolated rather than a hard step.
	assert.Less(t, out.NRGBAAt(0, 2).R, uint8(40))
	assert.Greater(t, out.NRGBAAt(15, 2).R, uint8(215))
	mid := out.NRGBAAt(8, 2).R
	assert.Greater(t, mid, uint8(40))
	assert.Less(t, mid, uint8(215))
	for x := 1; x < 16; x++ {
		assert.GreaterOrEqual(t, out.NRGBAAt(x, 2).R, out.NRGBAAt(x-1, 2).R, "x=%d", x)
		assert.Equal(t, uint8(255), out.NRGBAAt(x, 2).A)
	}
}
